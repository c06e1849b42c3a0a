package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulse-social/pulse-api/internal/api/middleware"
	"github.com/pulse-social/pulse-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware. Routes
// calling this sit behind RequireAuth, so a missing principal means the guard
// chain is miswired; fail with 401 rather than panicking.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := c.Get(middleware.PrincipalKey).(domain.Principal)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}
