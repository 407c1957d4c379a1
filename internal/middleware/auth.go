package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"sushishop/pkg/tokens"
)

type Auth struct {
	JWTSecret []byte
}

func NewAuth(secret []byte) *Auth {
	return &Auth{JWTSecret: secret}
}

// RequireAuth verifies the bearer token and puts the caller's id and role
// into the echo context.
func (m *Auth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		if raw == header || raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "malformed authorization header")
		}

		claims, err := tokens.AccessClaimsFromToken(raw, m.JWTSecret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		userID, err := claims.UserID()
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
		}

		c.Set("user_id", userID)
		c.Set("role", claims.Role)

		return next(c)
	}
}

// RequireAdmin is RequireAuth plus the Admin role claim.
func (m *Auth) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireAuth(func(c echo.Context) error {
		if role, _ := c.Get("role").(string); role != tokens.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin role required")
		}
		return next(c)
	})
}

// UserID returns the id RequireAuth stored for the current request.
func UserID(c echo.Context) uint {
	id, _ := c.Get("user_id").(uint)
	return id
}
