package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dfulfagar/portfolio-api/internal/auth"
)

// AdminGate protects the contacts listing with a bearer token when a token
// manager is configured. A nil manager leaves the route public, matching the
// historical behavior of the API.
func AdminGate(tokens *auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if tokens == nil {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "missing bearer token"})
			}

			claims, err := tokens.Verify(strings.TrimSpace(raw))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "invalid bearer token"})
			}

			c.Set(ContextKeyAdminSubject, claims.Subject)
			return next(c)
		}
	}
}
