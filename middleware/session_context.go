package middleware

import (
	"storefront-gateway/internal/domain"

	"github.com/labstack/echo/v4"
)

// sessionKey is the echo context key holding the decoded session.
const sessionKey = "session"

// SessionContext decodes the session cookie once per request and stashes
// the result in the echo context. A missing or invalid cookie yields an
// anonymous request, never an error: downstream guards and handlers decide
// what anonymity means for them. No upstream call is made here.
func SessionContext(codec domain.SessionCodec, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err == nil && cookie.Value != "" {
				if session, decodeErr := codec.Decode(cookie.Value); decodeErr == nil {
					c.Set(sessionKey, session)
				}
			}
			return next(c)
		}
	}
}

// SessionFrom returns the decoded session for the request, or nil for an
// anonymous request.
func SessionFrom(c echo.Context) *domain.Session {
	session, _ := c.Get(sessionKey).(*domain.Session)
	return session
}
