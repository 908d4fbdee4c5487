package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"storefront-gateway/internal/domain"
)

// upstreamEnvelope extracts the message field the upstream includes in
// most of its response bodies.
type upstreamEnvelope struct {
	Message string `json:"message"`
}

// callProtected performs an authenticated call-through and folds the
// upstream outcome into a structured Result. A session without a token
// never reaches the upstream: the call fails fast with ErrUnauthenticated
// so callers can redirect to login or return their null sentinel.
func callProtected(ctx context.Context, caller domain.UpstreamCaller, session *domain.Session, method, path string, body any) (*domain.Result, error) {
	if !session.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	raw, status, err := caller.Do(ctx, session.Token, method, path, body)
	if err != nil {
		return nil, err
	}

	var envelope upstreamEnvelope
	_ = json.Unmarshal(raw, &envelope)

	if status < 200 || status >= 300 {
		message := envelope.Message
		if message == "" {
			message = fmt.Sprintf("upstream returned status %d", status)
		}
		return domain.Rejected(message, raw), nil
	}

	return domain.Accepted(envelope.Message, raw), nil
}

// callPublic performs an unauthenticated read against the upstream API and
// returns the body verbatim.
func callPublic(ctx context.Context, caller domain.UpstreamCaller, path string) (json.RawMessage, error) {
	raw, status, err := caller.Do(ctx, "", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: status %d for %s", domain.ErrUpstreamRejected, status, path)
	}
	return raw, nil
}
