// Package api defines the shared request and response shapes of the HTTP
// transport layer. Handlers bind requests with Gin's binding tags and map
// domain entities into these types before serializing.
package api

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a signed JWT after a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}
