package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"storefront-gateway/internal/domain"

	"github.com/go-playground/validator/v10"
)

// LoginResult carries the verified session and its signed cookie value.
type LoginResult struct {
	Session *domain.Session
	Cookie  string
}

// Login orchestrates credential verification and session issuance. The two
// steps are atomic: a verification that yields no token, or a cookie that
// cannot be signed, produces no session at all.
type Login struct {
	verifier domain.CredentialVerifier
	codec    domain.SessionCodec
	validate *validator.Validate
	logger   *slog.Logger
}

// NewLogin creates a new Login usecase.
func NewLogin(v domain.CredentialVerifier, c domain.SessionCodec, l *slog.Logger) *Login {
	return &Login{
		verifier: v,
		codec:    c,
		validate: validator.New(),
		logger:   l,
	}
}

// Execute verifies credentials against the upstream auth endpoint and signs
// a session cookie. The password is never logged.
func (uc *Login) Execute(ctx context.Context, creds domain.Credentials) (*LoginResult, error) {
	if err := uc.validate.Struct(creds); err != nil {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	session, err := uc.verifier.SignIn(ctx, creds.Email, creds.Password)
	if err != nil {
		uc.logger.WarnContext(ctx, "signin rejected", "email", creds.Email, "error", err)
		return nil, err
	}

	cookie, err := uc.codec.Issue(session)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to issue session cookie", "error", err)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "login succeeded", "user_id", session.User.ID)
	return &LoginResult{Session: session, Cookie: cookie}, nil
}
