package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/venity/venity-gateway/internal/api/metrics"
	"github.com/venity/venity-gateway/internal/core/domain"
	"github.com/venity/venity-gateway/internal/core/ports"
)

// productService fronts the products backend and keeps the full product list
// in a shared cache between backend reads. Cache failures are never fatal:
// a broken cache degrades to a backend read.
type productService struct {
	backend ports.ProductBackend
	cache   ports.ProductCache
	log     zerolog.Logger
}

// NewProductService returns a ProductService implementation. cache may be
// nil, in which case every List hits the backend.
func NewProductService(backend ports.ProductBackend, cache ports.ProductCache, log zerolog.Logger) ports.ProductService {
	return &productService{backend: backend, cache: cache, log: log}
}

func (s *productService) List(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		products, hit, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("product cache read failed, falling back to backend")
		} else if hit {
			metrics.CacheTotal.WithLabelValues("hit").Inc()
			return products, nil
		}
		metrics.CacheTotal.WithLabelValues("miss").Inc()
	}

	products, err := s.backend.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list products failed")
		return nil, fmt.Errorf("list products: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, products); err != nil {
			s.log.Warn().Err(err).Msg("product cache write failed")
		}
	}
	return products, nil
}

func (s *productService) Get(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.backend.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrProductNotFound) {
			s.log.Error().Err(err).Str("product_id", id).Msg("fetch product failed")
		}
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return product, nil
}

func (s *productService) Create(ctx context.Context, product ports.NewProduct) (string, error) {
	id, err := s.backend.Create(ctx, product)
	if err != nil {
		s.log.Error().Err(err).Str("name", product.Name).Msg("create product failed")
		return "", fmt.Errorf("create product: %w", err)
	}

	// A new product makes the cached list stale.
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warn().Err(err).Msg("product cache invalidation failed")
		}
	}

	s.log.Info().Str("product_id", id).Str("name", product.Name).Msg("product created")
	return id, nil
}
