package types

// Headers shared by the middleware that sets them and the writers that echo
// them into error bodies.
const (
	RequestIDHeader = "X-Request-Id"
	SessionHeader   = "X-Session-Id"
)

// SuccessEnvelope wraps every 2xx body.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the public face of a failed request. RequestID matches the
// X-Request-Id response header so a shopper report can be traced in the logs.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
