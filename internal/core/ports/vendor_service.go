package ports

import (
	"context"

	"github.com/venity/venity-gateway/internal/core/domain"
)

// VendorService fronts the vendors backend.
type VendorService interface {
	List(ctx context.Context) ([]domain.Vendor, error)
	Get(ctx context.Context, id string) (*domain.Vendor, error)
	Create(ctx context.Context, vendor NewVendor) (string, error)
}
