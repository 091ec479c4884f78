package ports

import (
	"context"

	"github.com/venity/venity-gateway/internal/core/domain"
)

// NewProduct is the DTO forwarded to the backend's products:create mutation.
type NewProduct struct {
	Name        string
	Description string
	Price       float64
	VendorID    string
	ImageURL    string
	Category    string
	Stock       int
}

// ProductBackend is the remote function contract for the products table.
type ProductBackend interface {
	List(ctx context.Context) ([]domain.Product, error)
	// Get returns domain.ErrProductNotFound when the id resolves to nothing.
	Get(ctx context.Context, id string) (*domain.Product, error)
	// Create returns the id of the newly inserted product.
	Create(ctx context.Context, product NewProduct) (string, error)
}
