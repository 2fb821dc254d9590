package errors

// ERR identifies the failure class of an Error. Zero is reserved for success
// and never appears on a constructed error.
type ERR int32

const (
	ERR_UNKNOWN               ERR = 0
	ERR_INVALID_ARGUMENT      ERR = 1
	ERR_MISSING_PARAM         ERR = 2
	ERR_NOT_FOUND             ERR = 3
	ERR_PROCESSING            ERR = 4
	ERR_CONFIGURATION         ERR = 5
	ERR_SERVICE_UNAVAILABLE   ERR = 6
	ERR_SERVICE_NOT_STARTED   ERR = 7
	ERR_SERVICE_ERROR         ERR = 8
	ERR_BLOCK_NOT_FOUND       ERR = 20
	ERR_TX_INVALID            ERR = 30
	ERR_TX_REJECTED           ERR = 31
	ERR_CANT_GET_FAKE_OUTPUTS ERR = 40
)

var ERR_name = map[int32]string{
	0:  "ERR_UNKNOWN",
	1:  "ERR_INVALID_ARGUMENT",
	2:  "ERR_MISSING_PARAM",
	3:  "ERR_NOT_FOUND",
	4:  "ERR_PROCESSING",
	5:  "ERR_CONFIGURATION",
	6:  "ERR_SERVICE_UNAVAILABLE",
	7:  "ERR_SERVICE_NOT_STARTED",
	8:  "ERR_SERVICE_ERROR",
	20: "ERR_BLOCK_NOT_FOUND",
	30: "ERR_TX_INVALID",
	31: "ERR_TX_REJECTED",
	40: "ERR_CANT_GET_FAKE_OUTPUTS",
}

func (e ERR) Enum() string {
	name, ok := ERR_name[int32(e)]
	if !ok {
		return "ERR_UNKNOWN"
	}

	return name
}

var (
	ErrUnknown            = New(ERR_UNKNOWN, "unknown error")
	ErrInvalidArgument    = New(ERR_INVALID_ARGUMENT, "invalid argument")
	ErrMissingParam       = New(ERR_MISSING_PARAM, "missing required parameter")
	ErrNotFound           = New(ERR_NOT_FOUND, "not found")
	ErrProcessing         = New(ERR_PROCESSING, "error processing")
	ErrConfiguration      = New(ERR_CONFIGURATION, "configuration error")
	ErrServiceUnavailable = New(ERR_SERVICE_UNAVAILABLE, "service unavailable")
	ErrServiceNotStarted  = New(ERR_SERVICE_NOT_STARTED, "service not started")
	ErrServiceError       = New(ERR_SERVICE_ERROR, "service error")
	ErrBlockNotFound      = New(ERR_BLOCK_NOT_FOUND, "block not found")
	ErrTxInvalid          = New(ERR_TX_INVALID, "tx invalid")
	ErrTxRejected         = New(ERR_TX_REJECTED, "tx rejected by pool")
	ErrCantGetFakeOutputs = New(ERR_CANT_GET_FAKE_OUTPUTS, "cannot get fake outputs")
)

// errors initialization functions

func NewUnknownError(message string, params ...interface{}) *Error {
	return New(ERR_UNKNOWN, message, params...)
}

func NewInvalidArgumentError(message string, params ...interface{}) *Error {
	return New(ERR_INVALID_ARGUMENT, message, params...)
}

func NewMissingParamError(message string, params ...interface{}) *Error {
	return New(ERR_MISSING_PARAM, message, params...)
}

func NewNotFoundError(message string, params ...interface{}) *Error {
	return New(ERR_NOT_FOUND, message, params...)
}

func NewProcessingError(message string, params ...interface{}) *Error {
	return New(ERR_PROCESSING, message, params...)
}

func NewConfigurationError(message string, params ...interface{}) *Error {
	return New(ERR_CONFIGURATION, message, params...)
}

func NewServiceUnavailableError(message string, params ...interface{}) *Error {
	return New(ERR_SERVICE_UNAVAILABLE, message, params...)
}

func NewServiceNotStartedError(message string, params ...interface{}) *Error {
	return New(ERR_SERVICE_NOT_STARTED, message, params...)
}

func NewServiceError(message string, params ...interface{}) *Error {
	return New(ERR_SERVICE_ERROR, message, params...)
}

func NewBlockNotFoundError(message string, params ...interface{}) *Error {
	return New(ERR_BLOCK_NOT_FOUND, message, params...)
}

func NewTxInvalidError(message string, params ...interface{}) *Error {
	return New(ERR_TX_INVALID, message, params...)
}

func NewTxRejectedError(message string, params ...interface{}) *Error {
	return New(ERR_TX_REJECTED, message, params...)
}

func NewCantGetFakeOutputsError(message string, params ...interface{}) *Error {
	return New(ERR_CANT_GET_FAKE_OUTPUTS, message, params...)
}
