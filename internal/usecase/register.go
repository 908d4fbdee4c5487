package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"storefront-gateway/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Register orchestrates account signup. The upstream issues a token on
// signup, so a successful registration logs the user in immediately.
type Register struct {
	verifier domain.CredentialVerifier
	codec    domain.SessionCodec
	validate *validator.Validate
	logger   *slog.Logger
}

// NewRegister creates a new Register usecase.
func NewRegister(v domain.CredentialVerifier, c domain.SessionCodec, l *slog.Logger) *Register {
	return &Register{
		verifier: v,
		codec:    c,
		validate: validator.New(),
		logger:   l,
	}
}

// Execute validates the signup payload, registers the account upstream and
// signs a session cookie for the new user.
func (uc *Register) Execute(ctx context.Context, reg domain.Registration) (*LoginResult, error) {
	if err := uc.validate.Struct(reg); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, validationMessage(err))
	}

	session, err := uc.verifier.SignUp(ctx, reg)
	if err != nil {
		uc.logger.WarnContext(ctx, "signup rejected", "email", reg.Email, "error", err)
		return nil, err
	}

	cookie, err := uc.codec.Issue(session)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to issue session cookie", "error", err)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "registration succeeded", "user_id", session.User.ID)
	return &LoginResult{Session: session, Cookie: cookie}, nil
}

// validationMessage flattens validator errors into a single display string.
func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "invalid payload"
	}
	first := errs[0]
	return fmt.Sprintf("field %s failed %s validation", first.Field(), first.Tag())
}
