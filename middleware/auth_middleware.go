package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"fieldboard/port/auth_port"
)

const (
	// SessionCookieName is the browser session cookie set by the auth frontend.
	SessionCookieName = "fieldboard_session"

	// UserContextKey is where the resolved identity lands on the echo context.
	UserContextKey = "user_context"
)

// SessionAuthMiddleware guards the workspace API. The token comes from the
// Authorization bearer header or the session cookie; the auth service
// resolves it to the opaque user id. The image proxy is deliberately not
// behind this.
func SessionAuthMiddleware(authPort auth_port.AuthPort) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := sessionToken(c)
			if token == "" {
				return c.String(http.StatusUnauthorized, "Authentication required")
			}

			userContext, err := authPort.ValidateSession(c.Request().Context(), token)
			if err != nil {
				return c.String(http.StatusUnauthorized, "Authentication required")
			}

			c.Set(UserContextKey, userContext)
			return next(c)
		}
	}
}

func sessionToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
