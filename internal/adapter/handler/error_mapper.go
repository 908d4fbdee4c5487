package handler

import (
	"errors"
	"net/http"

	"storefront-gateway/internal/domain"

	"github.com/labstack/echo/v4"
)

// mapDomainError converts a domain error into an appropriate echo.HTTPError.
// Credential and validation failures carry their message so the form can
// display the upstream's own wording; everything else gets a generic string.
func mapDomainError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	case errors.Is(err, domain.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())

	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrSessionInvalid):
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")

	case errors.Is(err, domain.ErrCSRFInvalid):
		return echo.NewHTTPError(http.StatusForbidden, "invalid CSRF token")

	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return echo.NewHTTPError(http.StatusBadGateway, "upstream service unavailable")

	case errors.Is(err, domain.ErrUpstreamRejected):
		return echo.NewHTTPError(http.StatusBadGateway, "upstream rejected the request")

	case errors.Is(err, domain.ErrSessionSecretWeak),
		errors.Is(err, domain.ErrCSRFSecretMissing):
		return echo.NewHTTPError(http.StatusInternalServerError, "token generation error")

	case errors.Is(err, domain.ErrRateLimited):
		return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
