package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/venity/venity-gateway/internal/core/ports"
)

// authService implements registration and login as pass-through calls to the
// users backend, plus token issuance on success.
type authService struct {
	backend ports.UserBackend
	tokens  ports.TokenService
	log     zerolog.Logger
}

// NewAuthService returns an AuthService implementation.
func NewAuthService(backend ports.UserBackend, tokens ports.TokenService, log zerolog.Logger) ports.AuthService {
	return &authService{backend: backend, tokens: tokens, log: log}
}

func (s *authService) Register(ctx context.Context, user ports.NewUser) (ports.AuthResult, error) {
	identity, err := s.backend.Create(ctx, user)
	if err != nil {
		s.log.Error().Err(err).Str("email", user.Email).Msg("register failed")
		return ports.AuthResult{}, fmt.Errorf("register: %w", err)
	}

	token, err := s.tokens.Issue(identity)
	if err != nil {
		return ports.AuthResult{}, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Str("user_id", identity.UserID).Str("role", identity.Role).Msg("user registered")
	return ports.AuthResult{Token: token, Identity: identity}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (ports.AuthResult, error) {
	identity, err := s.backend.Login(ctx, email, password)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("login failed")
		return ports.AuthResult{}, fmt.Errorf("login: %w", err)
	}

	token, err := s.tokens.Issue(identity)
	if err != nil {
		return ports.AuthResult{}, fmt.Errorf("login: %w", err)
	}

	return ports.AuthResult{Token: token, Identity: identity}, nil
}
