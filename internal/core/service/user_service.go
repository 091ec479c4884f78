package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/venity/venity-gateway/internal/core/domain"
	"github.com/venity/venity-gateway/internal/core/ports"
)

// userService is a thin pass-through to the users backend. It exists so the
// transport layer never talks to remote functions directly and every remote
// failure is logged with its entity context.
type userService struct {
	backend ports.UserBackend
	log     zerolog.Logger
}

// NewUserService returns a UserService implementation.
func NewUserService(backend ports.UserBackend, log zerolog.Logger) ports.UserService {
	return &userService{backend: backend, log: log}
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.backend.Get(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", id).Msg("fetch user failed")
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, role string) ([]domain.User, error) {
	users, err := s.backend.List(ctx, role)
	if err != nil {
		s.log.Error().Err(err).Str("role", role).Msg("list users failed")
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) Update(ctx context.Context, id string, patch ports.UserPatch) error {
	if err := s.backend.Update(ctx, id, patch); err != nil {
		s.log.Error().Err(err).Str("user_id", id).Msg("update user failed")
		return fmt.Errorf("update user %s: %w", id, err)
	}
	return nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.backend.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("user_id", id).Msg("delete user failed")
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}
