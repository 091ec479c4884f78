package convex

import (
	"context"
	"fmt"

	"github.com/venity/venity-gateway/internal/core/domain"
	"github.com/venity/venity-gateway/internal/core/ports"
)

// ProductBackend maps the products port onto the backend's products module.
type ProductBackend struct {
	client *Client
}

// NewProductBackend returns a ProductBackend backed by the given client.
func NewProductBackend(client *Client) *ProductBackend {
	return &ProductBackend{client: client}
}

func (b *ProductBackend) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := b.client.Query(ctx, "products:list", nil, &products); err != nil {
		return nil, fmt.Errorf("products:list: %w", err)
	}
	return products, nil
}

func (b *ProductBackend) Get(ctx context.Context, id string) (*domain.Product, error) {
	// products:get returns null for an unknown id rather than throwing.
	var product *domain.Product
	if err := b.client.Query(ctx, "products:get", map[string]any{"id": id}, &product); err != nil {
		return nil, fmt.Errorf("products:get: %w", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (b *ProductBackend) Create(ctx context.Context, product ports.NewProduct) (string, error) {
	args := map[string]any{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"vendorId":    product.VendorID,
		"imageUrl":    product.ImageURL,
		"category":    product.Category,
		"stock":       product.Stock,
	}

	var id string
	if err := b.client.Mutation(ctx, "products:create", args, &id); err != nil {
		return "", fmt.Errorf("products:create: %w", err)
	}
	return id, nil
}
