package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"storefront-gateway/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     int
		contains string
	}{
		{
			name:     "validation carries its message",
			err:      fmt.Errorf("%w: email and password are required", domain.ErrValidation),
			code:     http.StatusBadRequest,
			contains: "email and password",
		},
		{
			name:     "invalid credentials carry the upstream message",
			err:      fmt.Errorf("%w: Incorrect email or password", domain.ErrInvalidCredentials),
			code:     http.StatusUnauthorized,
			contains: "Incorrect email or password",
		},
		{
			name:     "unauthenticated is generic",
			err:      domain.ErrUnauthenticated,
			code:     http.StatusUnauthorized,
			contains: "authentication required",
		},
		{
			name:     "invalid session is generic",
			err:      domain.ErrSessionInvalid,
			code:     http.StatusUnauthorized,
			contains: "authentication required",
		},
		{
			name: "csrf failure",
			err:  domain.ErrCSRFInvalid,
			code: http.StatusForbidden,
		},
		{
			name: "upstream unreachable",
			err:  fmt.Errorf("%w: connection refused", domain.ErrUpstreamUnavailable),
			code: http.StatusBadGateway,
		},
		{
			name: "upstream rejection",
			err:  domain.ErrUpstreamRejected,
			code: http.StatusBadGateway,
		},
		{
			name: "weak secret does not leak detail",
			err:  domain.ErrSessionSecretWeak,
			code: http.StatusInternalServerError,
		},
		{
			name: "missing csrf secret does not leak detail",
			err:  domain.ErrCSRFSecretMissing,
			code: http.StatusInternalServerError,
		},
		{
			name: "rate limited",
			err:  domain.ErrRateLimited,
			code: http.StatusTooManyRequests,
		},
		{
			name: "unknown errors are internal",
			err:  errors.New("boom"),
			code: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := mapDomainError(tt.err)

			assert.Equal(t, tt.code, httpErr.Code)
			if tt.contains != "" {
				assert.Contains(t, fmt.Sprint(httpErr.Message), tt.contains)
			}
		})
	}
}

func TestMapDomainError_NeverLeaksSecretDetail(t *testing.T) {
	httpErr := mapDomainError(fmt.Errorf("%w: secret is 5 bytes", domain.ErrSessionSecretWeak))

	assert.NotContains(t, fmt.Sprint(httpErr.Message), "5 bytes")
}
