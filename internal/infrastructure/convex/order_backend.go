package convex

import (
	"context"
	"fmt"

	"github.com/venity/venity-gateway/internal/core/domain"
	"github.com/venity/venity-gateway/internal/core/ports"
)

// OrderBackend maps the orders port onto the backend's orders module.
type OrderBackend struct {
	client *Client
}

// NewOrderBackend returns an OrderBackend backed by the given client.
func NewOrderBackend(client *Client) *OrderBackend {
	return &OrderBackend{client: client}
}

func (b *OrderBackend) Get(ctx context.Context, id string) (*domain.Order, error) {
	// orders:get returns null for an unknown id rather than throwing.
	var order *domain.Order
	if err := b.client.Query(ctx, "orders:get", map[string]any{"id": id}, &order); err != nil {
		return nil, fmt.Errorf("orders:get: %w", err)
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (b *OrderBackend) Create(ctx context.Context, order ports.NewOrder) (string, error) {
	items := make([]map[string]any, 0, len(order.Products))
	for _, item := range order.Products {
		items = append(items, map[string]any{
			"productId": item.ProductID,
			"quantity":  item.Quantity,
		})
	}

	args := map[string]any{
		"customerId":  order.CustomerID,
		"products":    items,
		"totalAmount": order.TotalAmount,
		"status":      order.Status,
	}

	var id string
	if err := b.client.Mutation(ctx, "orders:create", args, &id); err != nil {
		return "", fmt.Errorf("orders:create: %w", err)
	}
	return id, nil
}
