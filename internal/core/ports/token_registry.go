package ports

import (
	"context"
	"time"

	"github.com/pulse-social/pulse-api/internal/core/domain"
)

// TokenRegistry is the server-side record of live refresh tokens, keyed by the
// raw token string. It is the one piece of revocable session state; entries
// disappear on logout or when the TTL lapses. Implementations must be safe for
// concurrent use from multiple request handlers.
type TokenRegistry interface {
	Save(ctx context.Context, token string, session domain.Session, ttl time.Duration) error
	// Find returns domain.ErrInvalidRefreshToken when the token is not registered.
	Find(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}
