package handler

import "github.com/venity/venity-gateway/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// successResponse is returned by mutations whose backend function reports
// only success (user update/delete).
type successResponse struct {
	Success bool `json:"success"`
}

// authResponse is returned by register and login: a bearer token plus the
// identity it encodes, exactly as the backend function returned it.
type authResponse struct {
	Token string          `json:"token"`
	User  domain.Identity `json:"user"`
}
