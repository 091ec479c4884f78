package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/venity/venity-gateway/internal/core/domain"
	"github.com/venity/venity-gateway/internal/core/ports"
)

const defaultTokenTTL = 2 * time.Hour

// tokenService signs and verifies HS256 bearer tokens. The secret and TTL
// are injected at construction; nothing here is process-global.
type tokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService returns a TokenService signing with the given secret.
// A non-positive ttl falls back to two hours.
func NewTokenService(secret string, ttl time.Duration) ports.TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &tokenService{secret: []byte(secret), ttl: ttl}
}

func (s *tokenService) Issue(identity domain.Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": identity.UserID,
		"role":   identity.Role,
		"iat":    now.Unix(),
		"exp":    now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *tokenService) Verify(token string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	userID, _ := claims["userId"].(string)
	role, _ := claims["role"].(string)
	if userID == "" {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	return domain.Identity{UserID: userID, Role: role}, nil
}
