package domain

import "errors"

// Authentication errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrSessionInvalid     = errors.New("session cookie invalid")
)

// Upstream errors.
var (
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUpstreamRejected    = errors.New("upstream rejected request")
)

// Token errors.
var (
	ErrSessionSecretWeak = errors.New("session secret too weak")
	ErrCSRFSecretMissing = errors.New("CSRF secret not configured")
	ErrCSRFInvalid       = errors.New("CSRF token invalid")
)

// Input errors.
var (
	ErrValidation = errors.New("validation failed")
)

// Rate limiting errors.
var (
	ErrRateLimited = errors.New("rate limit exceeded")
)
