package ports

import (
	"context"

	"github.com/venity/venity-gateway/internal/core/domain"
)

// ProductService fronts the products backend and owns the list cache.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product NewProduct) (string, error)
}

// ProductCache caches the full product list between backend reads.
type ProductCache interface {
	// Get returns the cached list and whether the cache held one.
	Get(ctx context.Context) ([]domain.Product, bool, error)
	Set(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}
