package middlewares

const (
	// CtxRequestID is the gin context key carrying the request id set by
	// RequestID and read back by the logger and response helpers.
	CtxRequestID = "request_id"
)
