package convex

import (
	"context"
	"fmt"

	"github.com/venity/venity-gateway/internal/core/domain"
	"github.com/venity/venity-gateway/internal/core/ports"
)

// VendorBackend maps the vendors port onto the backend's vendors module.
type VendorBackend struct {
	client *Client
}

// NewVendorBackend returns a VendorBackend backed by the given client.
func NewVendorBackend(client *Client) *VendorBackend {
	return &VendorBackend{client: client}
}

func (b *VendorBackend) List(ctx context.Context) ([]domain.Vendor, error) {
	var vendors []domain.Vendor
	if err := b.client.Query(ctx, "vendors:list", nil, &vendors); err != nil {
		return nil, fmt.Errorf("vendors:list: %w", err)
	}
	return vendors, nil
}

func (b *VendorBackend) Get(ctx context.Context, id string) (*domain.Vendor, error) {
	// vendors:get returns null for an unknown id rather than throwing.
	var vendor *domain.Vendor
	if err := b.client.Query(ctx, "vendors:get", map[string]any{"id": id}, &vendor); err != nil {
		return nil, fmt.Errorf("vendors:get: %w", err)
	}
	if vendor == nil {
		return nil, domain.ErrVendorNotFound
	}
	return vendor, nil
}

func (b *VendorBackend) Create(ctx context.Context, vendor ports.NewVendor) (string, error) {
	args := map[string]any{
		"userId":      vendor.UserID,
		"description": vendor.Description,
	}
	if vendor.Rating != nil {
		args["rating"] = *vendor.Rating
	}

	var id string
	if err := b.client.Mutation(ctx, "vendors:create", args, &id); err != nil {
		return "", fmt.Errorf("vendors:create: %w", err)
	}
	return id, nil
}
