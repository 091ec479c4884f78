package ports

import (
	"context"

	"github.com/venity/venity-gateway/internal/core/domain"
)

// OrderService fronts the orders backend.
type OrderService interface {
	Get(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, order NewOrder) (string, error)
}
