package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pulse-social/pulse-api/internal/core/domain"
	"github.com/pulse-social/pulse-api/internal/core/ports"
)

// PrincipalKey is the echo context key holding the authenticated principal.
const PrincipalKey = "principal"

// Auth verifies the bearer token when one is present and stores the resulting
// principal in the request context. Requests without an Authorization header
// pass through anonymously; the route guards decide whether that is enough.
// A header that is present but unverifiable is rejected with 401.
//
// Routes named in skipPaths bypass verification entirely. That is for routes
// whose response IS a statement about the token (the validity check), where a
// bad token must reach the handler instead of being cut off with 401.
func Auth(tokens ports.TokenService, skipPaths ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, p := range skipPaths {
				if c.Path() == p {
					return next(c)
				}
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			// An earlier middleware (tests, mostly) may have planted a
			// principal already; keep the first one.
			if _, ok := c.Get(PrincipalKey).(domain.Principal); !ok {
				c.Set(PrincipalKey, domain.Principal{
					ID:       claims.UserID,
					Username: claims.Subject,
					Role:     claims.Role,
				})
			}

			return next(c)
		}
	}
}
