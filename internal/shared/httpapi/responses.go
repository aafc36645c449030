// Package httpapi defines the response envelopes shared by every HTTP handler.
package httpapi

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the uniform acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}
