package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pulse-social/pulse-api/internal/core/domain"
	"github.com/pulse-social/pulse-api/internal/core/ports"
)

// TokenService issues and verifies HS256-signed JWTs. Issuer and verifier are
// the same process, so a symmetric secret is sufficient.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token with sub, role, iat and exp claims plus any extras.
// Roles outside the closed enum are rejected up front so a bad role can never
// be minted into a credential.
func (s *TokenService) Issue(subject string, role domain.Role, ttl time.Duration, extra map[string]any) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("issue: empty subject: %w", domain.ErrTokenMalformed)
	}
	if _, ok := domain.ParseRole(string(role)); !ok {
		return "", fmt.Errorf("issue: unknown role %q: %w", role, domain.ErrTokenMalformed)
	}

	now := time.Now()
	claims := jwt.MapClaims{}
	for k, v := range extra {
		claims[k] = v
	}
	claims["sub"] = subject
	claims["role"] = string(role)
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(ttl).Unix()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token, returning typed failures for the three
// ways a token can be bad: wrong signature, past expiry, unreadable structure.
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenSignatureInvalid
		default:
			return nil, domain.ErrTokenMalformed
		}
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenMalformed
	}

	sub, _ := claims["sub"].(string)
	roleStr, _ := claims["role"].(string)
	role, ok := domain.ParseRole(roleStr)
	if sub == "" || !ok {
		return nil, domain.ErrTokenMalformed
	}

	out := &ports.TokenClaims{Subject: sub, Role: role}
	if uid, ok := claims["userId"].(string); ok {
		out.UserID = uid
	}
	if iat, ok := claims["iat"].(float64); ok {
		out.IssuedAt = time.Unix(int64(iat), 0)
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return out, nil
}

func (s *TokenService) ExtractUsername(token string) (string, error) {
	claims, err := s.Verify(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (s *TokenService) ExtractRole(token string) (domain.Role, error) {
	claims, err := s.Verify(token)
	if err != nil {
		return "", err
	}
	return claims.Role, nil
}

func (s *TokenService) IsValid(token string) bool {
	_, err := s.Verify(token)
	return err == nil
}
