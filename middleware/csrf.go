package middleware

import (
	"net/http"

	"storefront-gateway/internal/domain"

	"github.com/labstack/echo/v4"
)

// csrfHeader is where clients present the token issued by /auth/csrf.
const csrfHeader = "X-CSRF-Token"

// CSRFCheck verifies the CSRF token on unsafe methods of protected data
// routes. Safe methods and anonymous requests pass through: anonymity is
// handled by the usecase precondition, not here. A nil generator (no CSRF
// secret configured) disables the check.
func CSRFCheck(generator domain.CSRFTokenGenerator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if generator == nil {
				return next(c)
			}

			switch c.Request().Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
				return next(c)
			}

			session := SessionFrom(c)
			if !session.Authenticated() {
				return next(c)
			}

			presented := c.Request().Header.Get(csrfHeader)
			if presented == "" {
				return echo.NewHTTPError(http.StatusForbidden, "missing CSRF token")
			}
			if err := generator.Verify(session.User.ID, presented); err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid CSRF token")
			}

			return next(c)
		}
	}
}
