package ports

import (
	"context"

	"github.com/venity/venity-gateway/internal/core/domain"
)

// NewVendor is the DTO forwarded to the backend's vendors:create mutation.
type NewVendor struct {
	UserID      string
	Description string
	Rating      *float64 // optional, [0,5]
}

// VendorBackend is the remote function contract for the vendors table.
type VendorBackend interface {
	List(ctx context.Context) ([]domain.Vendor, error)
	// Get returns domain.ErrVendorNotFound when the id resolves to nothing.
	Get(ctx context.Context, id string) (*domain.Vendor, error)
	// Create returns the id of the newly inserted vendor.
	Create(ctx context.Context, vendor NewVendor) (string, error)
}
