package ports

import (
	"context"

	"github.com/venity/venity-gateway/internal/core/domain"
)

// NewUser is the DTO forwarded to the backend's users:create mutation.
// The password travels in clear text; hashing is owned by the backend
// function, not the gateway.
type NewUser struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// UserPatch carries the optional fields for users:updateUser. Nil fields are
// left untouched by the backend.
type UserPatch struct {
	Name  *string
	Email *string
	Role  *string
}

// UserBackend is the remote function contract for the users table.
type UserBackend interface {
	// Create invokes users:create and returns the new identity (id + role).
	Create(ctx context.Context, user NewUser) (domain.Identity, error)
	// Login invokes users:login. Wrong password and unknown email both
	// surface as domain.ErrInvalidCredentials / domain.ErrUserNotFound.
	Login(ctx context.Context, email, password string) (domain.Identity, error)
	// Get invokes users:getUser. The returned user never carries a password hash.
	Get(ctx context.Context, id string) (*domain.User, error)
	// List invokes users:listUsers, optionally filtered by role.
	List(ctx context.Context, role string) ([]domain.User, error)
	// Update invokes users:updateUser.
	Update(ctx context.Context, id string, patch UserPatch) error
	// Delete invokes users:deleteUser.
	Delete(ctx context.Context, id string) error
}
