package ports

import (
	"context"

	"github.com/venity/venity-gateway/internal/core/domain"
)

// NewOrder is the DTO forwarded to the backend's orders:create mutation.
type NewOrder struct {
	CustomerID  string
	Products    []domain.OrderItem
	TotalAmount float64
	Status      string
}

// OrderBackend is the remote function contract for the orders table.
type OrderBackend interface {
	// Get returns domain.ErrOrderNotFound when the id resolves to nothing.
	Get(ctx context.Context, id string) (*domain.Order, error)
	// Create returns the id of the newly inserted order.
	Create(ctx context.Context, order NewOrder) (string, error)
}
