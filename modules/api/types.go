package api

// ErrorResponse is the body returned on every error.
type ErrorResponse struct {
	Message string `json:"message"`
}
