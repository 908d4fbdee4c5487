package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront-gateway/internal/domain"
)

const tokenHeader = "token"

// ShopClient talks to the upstream e-commerce REST API. It implements
// domain.CredentialVerifier and domain.UpstreamCaller.
type ShopClient struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// NewShopClient creates a new upstream client with tuned HTTP transport.
func NewShopClient(baseURL string, timeout time.Duration) *ShopClient {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	}

	return &ShopClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		timeout: timeout,
	}
}

// authPayload is the upstream signin/signup envelope.
type authPayload struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    struct {
		ID    string `json:"_id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

// SignIn exchanges credentials for a verified session.
func (c *ShopClient) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	return c.authenticate(ctx, "/auth/signin", map[string]string{
		"email":    email,
		"password": password,
	})
}

// SignUp registers a new account. The upstream issues a token on signup,
// so the result is an immediately usable session.
func (c *ShopClient) SignUp(ctx context.Context, reg domain.Registration) (*domain.Session, error) {
	return c.authenticate(ctx, "/auth/signup", reg)
}

func (c *ShopClient) authenticate(ctx context.Context, path string, body any) (*domain.Session, error) {
	raw, status, err := c.Do(ctx, "", http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}

	var payload authPayload
	if jsonErr := json.Unmarshal(raw, &payload); jsonErr != nil {
		return nil, fmt.Errorf("%w: malformed auth response: %w", domain.ErrUpstreamUnavailable, jsonErr)
	}

	if status < 200 || status >= 300 {
		message := payload.Message
		if message == "" {
			message = fmt.Sprintf("upstream auth returned status %d", status)
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, message)
	}

	// A success without a token would produce a partially-authenticated
	// session; fail atomically instead.
	if payload.Token == "" {
		return nil, fmt.Errorf("%w: auth response missing token", domain.ErrUpstreamUnavailable)
	}

	return &domain.Session{
		User: domain.User{
			ID:    payload.User.ID,
			Name:  payload.User.Name,
			Email: payload.User.Email,
			Role:  payload.User.Role,
		},
		Token: payload.Token,
	}, nil
}

// Do performs a single call-through to the upstream API. A non-empty token
// is attached as the "token" header, matching the upstream contract. The
// body is returned verbatim; non-2xx statuses are not errors here, callers
// interpret the upstream envelope themselves.
func (c *ShopClient) Do(ctx context.Context, token, method, path string, body any) (json.RawMessage, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}

	if token != "" {
		req.Header.Set(tokenHeader, token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Cart, order and address state is mutable and session-specific.
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}

	return raw, resp.StatusCode, nil
}
