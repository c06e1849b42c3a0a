package domain

import (
	"errors"
	"time"
)

// Role is the closed set of authorization roles. Free-form role strings from
// the outside (requests, token claims) must go through ParseRole.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole maps a raw string onto the Role enum. The second return value is
// false for anything outside the closed set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserLocked         = errors.New("user account is locked")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccessDenied       = errors.New("access denied")
)

// User models an account. PasswordHash is a bcrypt hash; the plaintext
// password never leaves the service boundary.
type User struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Username       string    `json:"username" bson:"username"`
	Email          string    `json:"email" bson:"email"`
	PasswordHash   string    `json:"-" bson:"password_hash"`
	Role           Role      `json:"role" bson:"role"`
	Locked         bool      `json:"locked" bson:"locked"`
	Private        bool      `json:"private" bson:"private"`
	Salutation     string    `json:"salutation,omitempty" bson:"salutation,omitempty"`
	Country        string    `json:"country,omitempty" bson:"country,omitempty"`
	ProfilePicture string    `json:"profile_picture,omitempty" bson:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}
