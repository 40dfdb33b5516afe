package helper

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// RequestIDHeader is read from incoming requests and echoed on responses.
const RequestIDHeader = "X-Request-ID"
