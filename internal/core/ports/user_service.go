package ports

import (
	"context"

	"github.com/venity/venity-gateway/internal/core/domain"
)

// UserService exposes the user read/update/delete operations behind /api/users.
type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, role string) ([]domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) error
	Delete(ctx context.Context, id string) error
}
