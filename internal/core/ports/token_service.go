package ports

import "github.com/venity/venity-gateway/internal/core/domain"

// TokenService issues and verifies the bearer tokens the gateway hands out.
type TokenService interface {
	// Issue signs a time-limited token embedding the identity payload.
	Issue(identity domain.Identity) (string, error)
	// Verify checks signature and expiry and decodes the identity. Any
	// failure surfaces as domain.ErrInvalidToken.
	Verify(token string) (domain.Identity, error)
}
