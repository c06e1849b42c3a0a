package ports

import (
	"time"

	"github.com/pulse-social/pulse-api/internal/core/domain"
)

// TokenClaims is the verified content of a signed token.
type TokenClaims struct {
	Subject   string
	Role      domain.Role
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies compact signed tokens. Verification
// failures map onto domain.ErrTokenExpired, domain.ErrTokenMalformed and
// domain.ErrTokenSignatureInvalid; a role claim outside the closed enum is
// treated as malformed.
type TokenService interface {
	Issue(subject string, role domain.Role, ttl time.Duration, extra map[string]any) (string, error)
	Verify(token string) (*TokenClaims, error)
	ExtractUsername(token string) (string, error)
	ExtractRole(token string) (domain.Role, error)
	// IsValid reports whether Verify would succeed; it never returns an error.
	IsValid(token string) bool
}
