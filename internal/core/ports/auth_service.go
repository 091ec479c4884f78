package ports

import (
	"context"

	"github.com/venity/venity-gateway/internal/core/domain"
)

// AuthResult bundles a freshly issued token with the identity it encodes.
type AuthResult struct {
	Token    string
	Identity domain.Identity
}

// AuthService implements registration and login on top of the users backend.
type AuthService interface {
	Register(ctx context.Context, user NewUser) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
}
