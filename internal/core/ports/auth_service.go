package ports

import "context"

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService owns the login session lifecycle: credential verification,
// token pair issuance, refresh and revocation.
type AuthService interface {
	// Authenticate resolves the identifier (email when it contains '@',
	// username otherwise), verifies the password and issues a token pair.
	Authenticate(ctx context.Context, identifier, password string) (*TokenPair, error)
	// Refresh exchanges a registered refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	// Logout revokes the refresh token; subsequent Refresh calls with the
	// same token fail with domain.ErrInvalidRefreshToken.
	Logout(ctx context.Context, refreshToken string) error
	IsTokenValid(token string) bool
}
