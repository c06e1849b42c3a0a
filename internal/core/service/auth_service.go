package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulse-social/pulse-api/internal/api/metrics"
	"github.com/pulse-social/pulse-api/internal/core/domain"
	"github.com/pulse-social/pulse-api/internal/core/ports"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// AuthService orchestrates login, token refresh and logout. The refresh-token
// registry is its only persistent side effect.
type AuthService struct {
	users      ports.UserRepository
	tokens     ports.TokenService
	registry   ports.TokenRegistry
	accessTTL  time.Duration
	refreshTTL time.Duration
	log        zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	tokens ports.TokenService,
	registry ports.TokenRegistry,
	accessTTL, refreshTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &AuthService{
		users:      users,
		tokens:     tokens,
		registry:   registry,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		log:        log,
	}
}

// Authenticate verifies credentials and issues an access/refresh token pair.
// The identifier is an email when it contains '@', a username otherwise.
func (s *AuthService) Authenticate(ctx context.Context, identifier, password string) (*ports.TokenPair, error) {
	if identifier == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	var (
		user *domain.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.users.FindByEmail(ctx, identifier)
	} else {
		user, err = s.users.FindByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.AuthFailuresTotal.WithLabelValues("unknown_user").Inc()
		}
		return nil, err
	}
	if user.Locked {
		metrics.AuthFailuresTotal.WithLabelValues("locked").Inc()
		return nil, domain.ErrUserLocked
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.AuthFailuresTotal.WithLabelValues("bad_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	extra := map[string]any{"userId": user.ID}
	accessToken, err := s.tokens.Issue(user.Username, user.Role, s.accessTTL, extra)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refreshToken, err := s.tokens.Issue(user.Username, user.Role, s.refreshTTL, extra)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	session := domain.Session{UserID: user.ID, Username: user.Username, Role: user.Role}
	if err := s.registry.Save(ctx, refreshToken, session, s.refreshTTL); err != nil {
		return nil, fmt.Errorf("register refresh token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues(string(user.Role)).Inc()
	s.log.Info().Str("username", user.Username).Msg("user authenticated")

	return &ports.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh exchanges a registered refresh token for a new access token. The
// token must verify, and its subject must match the session recorded for that
// exact token string.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidRefreshToken, err)
	}

	session, err := s.registry.Find(ctx, refreshToken)
	if err != nil {
		return "", domain.ErrInvalidRefreshToken
	}
	if session.Username != claims.Subject {
		return "", domain.ErrInvalidRefreshToken
	}

	accessToken, err := s.tokens.Issue(claims.Subject, claims.Role, s.accessTTL, map[string]any{"userId": session.UserID})
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}

	metrics.TokenRefreshesTotal.Inc()
	return accessToken, nil
}

// Logout removes the refresh token from the registry. Revocation is permanent
// for that token string.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidRefreshToken, err)
	}

	session, err := s.registry.Find(ctx, refreshToken)
	if err != nil {
		return domain.ErrInvalidRefreshToken
	}
	if session.Username != claims.Subject {
		return domain.ErrInvalidRefreshToken
	}

	if err := s.registry.Delete(ctx, refreshToken); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}

	s.log.Info().Str("username", claims.Subject).Msg("refresh token revoked")
	return nil
}

func (s *AuthService) IsTokenValid(token string) bool {
	return s.tokens.IsValid(token)
}
