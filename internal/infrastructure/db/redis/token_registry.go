package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pulse-social/pulse-api/internal/core/domain"
)

// TokenRegistry keeps live refresh tokens in Redis.
// Key format: refresh:<token>, value: JSON-encoded session. Expiry is handled
// by Redis TTL, so a lapsed token simply stops resolving.
type TokenRegistry struct {
	client *redis.Client
}

// NewTokenRegistry creates a TokenRegistry wrapping the given Redis client.
func NewTokenRegistry(client *redis.Client) *TokenRegistry {
	return &TokenRegistry{client: client}
}

// Save records the session under the refresh token for the given TTL.
func (r *TokenRegistry) Save(ctx context.Context, token string, session domain.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return r.client.Set(ctx, r.key(token), payload, ttl).Err()
}

// Find resolves a refresh token back to its session. A missing key means the
// token was never issued, was revoked, or has expired.
func (r *TokenRegistry) Find(ctx context.Context, token string) (*domain.Session, error) {
	payload, err := r.client.Get(ctx, r.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("registry lookup: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete revokes the refresh token.
func (r *TokenRegistry) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.key(token)).Err()
}

func (r *TokenRegistry) key(token string) string {
	return "refresh:" + token
}
