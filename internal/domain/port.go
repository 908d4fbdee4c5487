package domain

import (
	"context"
	"encoding/json"
)

// CredentialVerifier exchanges credentials for a verified session against
// the upstream auth endpoints.
type CredentialVerifier interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, reg Registration) (*Session, error)
}

// UpstreamCaller performs a single authenticated call-through to the
// upstream API, attaching the opaque token and returning the raw body
// verbatim alongside the upstream status code.
type UpstreamCaller interface {
	Do(ctx context.Context, token, method, path string, body any) (json.RawMessage, int, error)
}

// SessionCodec signs and decodes the session cookie artifact.
type SessionCodec interface {
	Issue(session *Session) (string, error)
	Decode(cookie string) (*Session, error)
}

// WishlistMirror caches the set of wishlisted product ids per user. It is
// derived, never authoritative; mutations must invalidate it.
type WishlistMirror interface {
	Get(userID string) ([]string, bool)
	Set(userID string, ids []string)
	Invalidate(userID string)
}

// CSRFTokenGenerator issues and checks CSRF tokens bound to a user id.
type CSRFTokenGenerator interface {
	Generate(userID string) (string, error)
	Verify(userID, token string) error
}
