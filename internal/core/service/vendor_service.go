package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/venity/venity-gateway/internal/core/domain"
	"github.com/venity/venity-gateway/internal/core/ports"
)

// vendorService is a thin pass-through to the vendors backend.
type vendorService struct {
	backend ports.VendorBackend
	log     zerolog.Logger
}

// NewVendorService returns a VendorService implementation.
func NewVendorService(backend ports.VendorBackend, log zerolog.Logger) ports.VendorService {
	return &vendorService{backend: backend, log: log}
}

func (s *vendorService) List(ctx context.Context) ([]domain.Vendor, error) {
	vendors, err := s.backend.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list vendors failed")
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	return vendors, nil
}

func (s *vendorService) Get(ctx context.Context, id string) (*domain.Vendor, error) {
	vendor, err := s.backend.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrVendorNotFound) {
			s.log.Error().Err(err).Str("vendor_id", id).Msg("fetch vendor failed")
		}
		return nil, fmt.Errorf("get vendor %s: %w", id, err)
	}
	return vendor, nil
}

func (s *vendorService) Create(ctx context.Context, vendor ports.NewVendor) (string, error) {
	id, err := s.backend.Create(ctx, vendor)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", vendor.UserID).Msg("create vendor failed")
		return "", fmt.Errorf("create vendor: %w", err)
	}

	s.log.Info().Str("vendor_id", id).Str("user_id", vendor.UserID).Msg("vendor created")
	return id, nil
}
