package models

// APIResponse is the envelope every post-module endpoint answers with.
// Status mirrors the HTTP status code; Data is omitted when nil.
type APIResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
