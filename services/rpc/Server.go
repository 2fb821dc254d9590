// Package rpc implements the daemon's HTTP/JSON front end: a fixed route
// table, a middleware pipeline enforcing CORS, body parsing and the permission
// tier, and the handlers serving chain state to external callers.
package rpc

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cloakchain/cloaknode/errors"
	"github.com/cloakchain/cloaknode/services/blockchain"
	"github.com/cloakchain/cloaknode/services/netsync"
	"github.com/cloakchain/cloaknode/services/p2p"
	"github.com/cloakchain/cloaknode/settings"
	"github.com/cloakchain/cloaknode/ulogger"
	"github.com/cloakchain/cloaknode/util"
	"github.com/labstack/echo/v4"
	"github.com/ordishs/gocore"
)

// RPCMode is the ordered permission tier the server runs at. A route is
// served iff its required mode does not exceed the server's mode.
type RPCMode int

const (
	RPCModeDefault RPCMode = iota
	RPCModeBlockExplorerEnabled
	RPCModeAllMethodsEnabled
)

// handlerFunc is the shape of every endpoint handler. body is the raw request
// body, already validated as JSON when the route requires one. On success the
// returned payload is serialized with the proposed HTTP status; a non-nil
// error takes precedence and is rendered by the middleware.
type handlerFunc func(c echo.Context, body []byte) (interface{}, int, *errors.Error)

// route describes one entry of the route table. The table is built once in
// New and never mutated.
type route struct {
	method       string
	path         string
	handler      handlerFunc
	permissions  RPCMode
	bodyRequired bool
}

// RPCServer owns the HTTP engine and the collaborator clients. It holds no
// per-request state; handlers and middleware are safe to invoke concurrently.
type RPCServer struct {
	logger           ulogger.Logger
	settings         *settings.Settings
	mode             RPCMode
	e                *echo.Echo
	blockchainClient blockchain.ClientI
	p2pClient        p2p.ClientI
	syncClient       netsync.ClientI
	startTime        time.Time

	mu      sync.Mutex
	host    string
	port    int
	stopped bool
}

// New builds the server, validating the configured fee address and
// registering the route table. The permission tier and CORS configuration are
// fixed here for the server's lifetime.
func New(
	logger ulogger.Logger,
	tSettings *settings.Settings,
	blockchainClient blockchain.ClientI,
	p2pClient p2p.ClientI,
	syncClient netsync.ClientI,
) (*RPCServer, error) {
	initPrometheusMetrics()

	if feeAddress := tSettings.RPC.FeeAddress; feeAddress != "" {
		if err := util.ValidateAddress(feeAddress, tSettings.ChainCfgParams); err != nil {
			return nil, errors.NewConfigurationError("fee address given is not valid", err)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &RPCServer{
		logger:           logger,
		settings:         tSettings,
		mode:             modeFromSettings(&tSettings.RPC),
		e:                e,
		blockchainClient: blockchainClient,
		p2pClient:        p2pClient,
		syncClient:       syncClient,
		startTime:        time.Now(),
		host:             tSettings.RPC.Host,
		port:             tSettings.RPC.Port,
	}

	for _, r := range s.routes() {
		e.Add(r.method, r.path, s.middleware(r))
	}

	// CORS preflight must succeed even for routes the caller isn't
	// authorized to call, so the catch-all skips the pipeline.
	e.OPTIONS("/*", s.handleOptions)

	e.GET("/alive", func(c echo.Context) error {
		return c.String(http.StatusOK, fmt.Sprintf("RPC service is alive. Uptime: %s\n", time.Since(s.startTime)))
	})

	e.GET("/health", func(c echo.Context) error {
		status, details, _ := s.Health(c.Request().Context(), false)
		return c.String(status, details)
	})

	if prefix := tSettings.StatsPrefix; prefix != "" {
		e.GET(prefix+"stats", echo.WrapHandler(http.HandlerFunc(gocore.HandleStats)))
		e.GET(prefix+"reset", echo.WrapHandler(http.HandlerFunc(gocore.ResetStats)))
	}

	return s, nil
}

func modeFromSettings(rpcSettings *settings.RPCSettings) RPCMode {
	switch {
	case rpcSettings.BlockExplorerDetailedEnabled:
		return RPCModeAllMethodsEnabled
	case rpcSettings.BlockExplorerEnabled:
		return RPCModeBlockExplorerEnabled
	default:
		return RPCModeDefault
	}
}

func (s *RPCServer) routes() []route {
	const (
		bodyRequired    = true
		bodyNotRequired = false
	)

	return []route{
		{http.MethodGet, "/info", s.info, RPCModeDefault, bodyNotRequired},
		{http.MethodGet, "/fee", s.fee, RPCModeDefault, bodyNotRequired},
		{http.MethodGet, "/height", s.height, RPCModeDefault, bodyNotRequired},
		{http.MethodGet, "/peers", s.peers, RPCModeDefault, bodyNotRequired},
		{http.MethodPost, "/sendrawtransaction", s.sendTransaction, RPCModeDefault, bodyRequired},
		{http.MethodPost, "/getrandom_outs", s.getRandomOuts, RPCModeDefault, bodyRequired},
	}
}

// Init implements the service contract. All setup happens in New.
func (s *RPCServer) Init(_ context.Context) error {
	return nil
}

// Start binds the configured address and serves until ctx is canceled or
// Stop is called. A bind failure is returned to the caller, which treats it
// as fatal.
func (s *RPCServer) Start(ctx context.Context) error {
	s.mu.Lock()
	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	s.mu.Unlock()

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.NewServiceError("failed to start RPC server on %s", addr, err)
	}

	s.setConnectionInfo(listener.Addr())

	s.logger.Infof("RPC server listening on %s", listener.Addr())

	go func() {
		<-ctx.Done()

		if err := s.Stop(context.Background()); err != nil {
			s.logger.Errorf("RPC server shutdown error: %s", err)
		}
	}()

	s.e.Listener = listener

	if err := s.e.Start(""); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Stop shuts the listener down and waits for in-flight requests up to the
// context deadline. Calling Stop more than once is a no-op.
func (s *RPCServer) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}

	s.stopped = true
	s.mu.Unlock()

	return s.e.Shutdown(ctx)
}

// ConnectionInfo returns the host and port the server is (or will be) bound
// to. After Start it reflects the actual listener address.
func (s *RPCServer) ConnectionInfo() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.host, s.port
}

func (s *RPCServer) setConnectionInfo(addr net.Addr) {
	host, portStr, err := net.SplitHostPort(addr.String())
	if err != nil {
		return
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.host = host
	s.port = port
	s.mu.Unlock()
}

// Health reports the front end's health. With checkLiveness the check stops
// at the service itself, otherwise the chain engine is probed too.
func (s *RPCServer) Health(ctx context.Context, checkLiveness bool) (int, string, error) {
	if checkLiveness {
		return http.StatusOK, "OK", nil
	}

	if _, _, err := s.blockchainClient.Health(ctx, false); err != nil {
		return http.StatusServiceUnavailable, "blockchain engine unreachable", err
	}

	return http.StatusOK, "OK", nil
}
