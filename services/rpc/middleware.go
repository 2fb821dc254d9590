package rpc

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cloakchain/cloaknode/errors"
	"github.com/labstack/echo/v4"
)

// failedResponse is the envelope for failures raised by the pipeline itself:
// body parse errors, permission rejections and contained panics.
type failedResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// rpcErrorResponse is the envelope for domain errors returned by a handler
// through the error channel.
type rpcErrorResponse struct {
	ErrorCode    int32  `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

const parseFailureMessage = "Failed to parse request body as JSON"

// middleware wraps a route's handler with the cross-cutting gates every
// request passes through: request logging, CORS header injection, body
// validation, the permission check and the panic containment boundary. Each
// gate short-circuits the rest of the pipeline on failure.
func (s *RPCServer) middleware(r route) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.logger.Debugf("Incoming %s request: %s", c.Request().Method, c.Request().URL.Path)

		if corsHeader := s.settings.RPC.CORSHeader; corsHeader != "" {
			c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, corsHeader)
		}

		var body []byte

		if r.bodyRequired {
			body, _ = io.ReadAll(c.Request().Body)

			if !json.Valid(body) {
				if len(body) == 0 {
					s.logger.Debugf("Received empty body for %s", c.Request().URL.Path)
					return s.failRequest(c, http.StatusBadRequest, parseFailureMessage)
				}

				warning := "Warning: received body is not JSON encoded!\n" +
					"Key/value parameters are NOT supported.\n" +
					"Body:\n" + string(body)

				s.logger.Infof("%s", warning)

				return s.failRequest(c, http.StatusBadRequest, warning+"\n"+parseFailureMessage)
			}
		}

		if r.permissions > s.mode {
			return s.failRequest(c, http.StatusForbidden, permissionDeniedMessage(r.permissions))
		}

		payload, status, rpcErr, recovered := s.invokeHandler(c, r, body)

		if recovered != nil {
			s.logger.Errorf("Caught unexpected panic in %s handler: %v", r.path, recovered)
			return s.failRequest(c, http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", recovered))
		}

		if rpcErr != nil {
			if errors.Is(rpcErr, errors.ErrMissingParam) {
				s.logger.Errorf("Missing required json parameter: %s", rpcErr.Message())
				return s.failRequest(c, http.StatusBadRequest, rpcErr.Message())
			}

			return c.JSON(http.StatusBadRequest, rpcErrorResponse{
				ErrorCode:    int32(rpcErr.Code()),
				ErrorMessage: rpcErr.Message(),
			})
		}

		return c.JSON(status, payload)
	}
}

// invokeHandler is the containment boundary: a panic inside a handler is
// recovered here and reported to the caller instead of escaping to the
// transport layer.
func (s *RPCServer) invokeHandler(c echo.Context, r route, body []byte) (payload interface{}, status int, rpcErr *errors.Error, recovered error) {
	defer func() {
		if rec := recover(); rec != nil {
			recovered = fmt.Errorf("%v", rec)
		}
	}()

	payload, status, rpcErr = r.handler(c, body)

	return
}

// permissionDeniedMessage names the CLI flag that would unlock the tier the
// rejected route requires.
func permissionDeniedMessage(required RPCMode) string {
	flag := "--enable-blockexplorer"
	if required == RPCModeAllMethodsEnabled {
		flag += "-detailed"
	}

	return "You do not have permission to access this method. Please " +
		"relaunch your daemon with the " + flag +
		" command line option to access this method."
}

func (s *RPCServer) failRequest(c echo.Context, status int, message string) error {
	return c.JSON(status, failedResponse{
		Status: "Failed",
		Error:  message,
	})
}

// handleOptions answers the OPTIONS catch-all. It runs outside the pipeline:
// preflight must succeed regardless of the caller's tier, and no body or
// permission gate applies.
func (s *RPCServer) handleOptions(c echo.Context) error {
	s.logger.Debugf("Incoming %s request: %s", c.Request().Method, c.Request().URL.Path)

	corsHeader := s.settings.RPC.CORSHeader

	supported := "OPTIONS, GET, POST"
	if corsHeader == "" {
		supported = ""
	}

	if c.Request().Header.Get("Access-Control-Request-Method") != "" {
		c.Response().Header().Set(echo.HeaderAccessControlAllowMethods, supported)
	} else {
		c.Response().Header().Set("Allow", supported)
	}

	if corsHeader != "" {
		c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, corsHeader)
		c.Response().Header().Set(echo.HeaderAccessControlAllowHeaders,
			"Origin, X-Requested-With, Content-Type, Accept, X-API-KEY")
	}

	return c.NoContent(http.StatusOK)
}
