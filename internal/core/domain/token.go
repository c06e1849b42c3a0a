package domain

import "errors"

var (
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrInvalidRefreshToken   = errors.New("invalid refresh token")
)

// Principal is the authenticated identity attached to a request after the
// bearer token has been verified.
type Principal struct {
	ID       string
	Username string
	Role     Role
}

// IsAdmin reports whether the principal carries the ADMIN role.
func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// Session is what the refresh-token registry records per refresh token: the
// identity the token was issued to. Revoking the token removes the session.
type Session struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
