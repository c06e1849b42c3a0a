package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulse-social/pulse-api/internal/api/metrics"
	"github.com/pulse-social/pulse-api/internal/core/domain"
)

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &domain.User{
		ID:           "u1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}
}

func newAuthService(users *stubUserRepository, registry *memoryRegistry) *AuthService {
	tokens := NewTokenService("test-secret")
	return NewAuthService(users, tokens, registry, 0, 0, zerolog.Nop())
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	user := testUser(t, "secret")
	users := &stubUserRepository{
		findByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			if username != "alice" {
				return nil, domain.ErrUserNotFound
			}
			return user, nil
		},
	}
	registry := newMemoryRegistry()
	svc := newAuthService(users, registry)

	pair, err := svc.Authenticate(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("incomplete token pair: %+v", pair)
	}

	claims, err := NewTokenService("test-secret").Verify(pair.AccessToken)
	if err != nil {
		t.Fatalf("verify access token: %v", err)
	}
	if claims.Subject != "alice" || claims.UserID != "u1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	session, err := registry.Find(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh token not registered: %v", err)
	}
	if session.Username != "alice" || session.UserID != "u1" {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestAuthService_Authenticate_ByEmail(t *testing.T) {
	user := testUser(t, "secret")
	users := &stubUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			if email != "alice@example.com" {
				return nil, domain.ErrUserNotFound
			}
			return user, nil
		},
		findByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			t.Fatalf("username lookup should not be used for an email identifier")
			return nil, nil
		},
	}
	svc := newAuthService(users, newMemoryRegistry())

	if _, err := svc.Authenticate(context.Background(), "alice@example.com", "secret"); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
}

func TestAuthService_Authenticate_Locked(t *testing.T) {
	user := testUser(t, "secret")
	user.Locked = true
	users := &stubUserRepository{
		findByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return user, nil
		},
	}
	svc := newAuthService(users, newMemoryRegistry())

	if _, err := svc.Authenticate(context.Background(), "alice", "secret"); !errors.Is(err, domain.ErrUserLocked) {
		t.Fatalf("expected ErrUserLocked, got %v", err)
	}
}

func TestAuthService_Authenticate_BadPassword(t *testing.T) {
	user := testUser(t, "secret")
	users := &stubUserRepository{
		findByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return user, nil
		},
	}
	registry := newMemoryRegistry()
	svc := newAuthService(users, registry)

	if _, err := svc.Authenticate(context.Background(), "alice", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if registry.size() != 0 {
		t.Fatalf("no refresh token should be registered on failed login")
	}
}

func TestAuthService_Authenticate_EmptyInput(t *testing.T) {
	svc := newAuthService(&stubUserRepository{}, newMemoryRegistry())

	if _, err := svc.Authenticate(context.Background(), "", "secret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "alice", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_CountsFailureReasons(t *testing.T) {
	user := testUser(t, "secret")
	locked := testUser(t, "secret")
	locked.Locked = true

	users := &stubUserRepository{
		findByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			switch username {
			case "alice":
				return user, nil
			case "carol":
				return locked, nil
			default:
				return nil, domain.ErrUserNotFound
			}
		},
	}
	svc := newAuthService(users, newMemoryRegistry())

	// Counters are process-global, so assert on deltas.
	failures := func(reason string) float64 {
		return testutil.ToFloat64(metrics.AuthFailuresTotal.WithLabelValues(reason))
	}

	before := failures("unknown_user")
	if _, err := svc.Authenticate(context.Background(), "ghost", "secret"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if got := failures("unknown_user") - before; got != 1 {
		t.Fatalf("unknown_user failures: expected +1, got +%v", got)
	}

	before = failures("locked")
	if _, err := svc.Authenticate(context.Background(), "carol", "secret"); !errors.Is(err, domain.ErrUserLocked) {
		t.Fatalf("expected ErrUserLocked, got %v", err)
	}
	if got := failures("locked") - before; got != 1 {
		t.Fatalf("locked failures: expected +1, got +%v", got)
	}

	before = failures("bad_credentials")
	if _, err := svc.Authenticate(context.Background(), "alice", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if got := failures("bad_credentials") - before; got != 1 {
		t.Fatalf("bad_credentials failures: expected +1, got +%v", got)
	}
}

func TestAuthService_Refresh(t *testing.T) {
	user := testUser(t, "secret")
	users := &stubUserRepository{
		findByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return user, nil
		},
	}
	svc := newAuthService(users, newMemoryRegistry())

	pair, err := svc.Authenticate(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	accessToken, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	claims, err := NewTokenService("test-secret").Verify(accessToken)
	if err != nil {
		t.Fatalf("verify refreshed token: %v", err)
	}
	if claims.Subject != "alice" || claims.UserID != "u1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Refresh_UnregisteredToken(t *testing.T) {
	svc := newAuthService(&stubUserRepository{}, newMemoryRegistry())

	// Token verifies fine but was never registered (or its registry entry
	// expired).
	token, err := NewTokenService("test-secret").Issue("alice", domain.RoleUser, time.Hour, nil)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), token); !errors.Is(err, domain.ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthService_Refresh_SubjectMismatch(t *testing.T) {
	registry := newMemoryRegistry()
	svc := newAuthService(&stubUserRepository{}, registry)

	token, err := NewTokenService("test-secret").Issue("alice", domain.RoleUser, time.Hour, nil)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	// Registry entry recorded for a different account than the token subject.
	if err := registry.Save(context.Background(), token, domain.Session{UserID: "u2", Username: "bob", Role: domain.RoleUser}, time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), token); !errors.Is(err, domain.ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthService_Refresh_Garbage(t *testing.T) {
	svc := newAuthService(&stubUserRepository{}, newMemoryRegistry())

	if _, err := svc.Refresh(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthService_Logout_RevokesRefreshToken(t *testing.T) {
	user := testUser(t, "secret")
	users := &stubUserRepository{
		findByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return user, nil
		},
	}
	registry := newMemoryRegistry()
	svc := newAuthService(users, registry)

	pair, err := svc.Authenticate(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	if err := svc.Logout(context.Background(), pair.RefreshToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if registry.size() != 0 {
		t.Fatalf("refresh token still registered after logout")
	}

	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, domain.ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken after logout, got %v", err)
	}
}

func TestAuthService_IsTokenValid(t *testing.T) {
	svc := newAuthService(&stubUserRepository{}, newMemoryRegistry())

	token, err := NewTokenService("test-secret").Issue("alice", domain.RoleUser, time.Hour, nil)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if !svc.IsTokenValid(token) {
		t.Fatalf("expected token to be valid")
	}
	if svc.IsTokenValid("garbage") {
		t.Fatalf("expected garbage token to be invalid")
	}
}
