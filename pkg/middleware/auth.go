package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"dalu/pkg/respond"
)

// BearerAuth requires "Authorization: Bearer <token>" when enabled. When
// enabled=false it simply passes through (local development).
func BearerAuth(enabled bool, token string) echo.MiddlewareFunc {
	want := []byte(token)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled || c.Request().Method == http.MethodOptions {
				return next(c)
			}
			got, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(got)), want) != 1 {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				return respond.Detail(c, http.StatusUnauthorized, "not authenticated")
			}
			return next(c)
		}
	}
}
