package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/venity/venity-gateway/internal/core/domain"
	"github.com/venity/venity-gateway/internal/core/ports"
)

// orderService is a thin pass-through to the orders backend.
type orderService struct {
	backend ports.OrderBackend
	log     zerolog.Logger
}

// NewOrderService returns an OrderService implementation.
func NewOrderService(backend ports.OrderBackend, log zerolog.Logger) ports.OrderService {
	return &orderService{backend: backend, log: log}
}

func (s *orderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.backend.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrOrderNotFound) {
			s.log.Error().Err(err).Str("order_id", id).Msg("fetch order failed")
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return order, nil
}

func (s *orderService) Create(ctx context.Context, order ports.NewOrder) (string, error) {
	id, err := s.backend.Create(ctx, order)
	if err != nil {
		s.log.Error().Err(err).Str("customer_id", order.CustomerID).Msg("create order failed")
		return "", fmt.Errorf("create order: %w", err)
	}

	s.log.Info().Str("order_id", id).Str("customer_id", order.CustomerID).Msg("order created")
	return id, nil
}
