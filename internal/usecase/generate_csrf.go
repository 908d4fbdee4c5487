package usecase

import (
	"context"
	"log/slog"

	"storefront-gateway/internal/domain"
)

// GenerateCSRF issues a CSRF token for an authenticated session.
type GenerateCSRF struct {
	csrf   domain.CSRFTokenGenerator
	logger *slog.Logger
}

// NewGenerateCSRF creates a new GenerateCSRF usecase.
func NewGenerateCSRF(csrf domain.CSRFTokenGenerator, logger *slog.Logger) *GenerateCSRF {
	return &GenerateCSRF{csrf: csrf, logger: logger}
}

// Execute generates a CSRF token bound to the session's user id.
func (uc *GenerateCSRF) Execute(ctx context.Context, session *domain.Session) (string, error) {
	if !session.Authenticated() {
		return "", domain.ErrUnauthenticated
	}
	if uc.csrf == nil {
		return "", domain.ErrCSRFSecretMissing
	}

	token, err := uc.csrf.Generate(session.User.ID)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to generate CSRF token", "error", err)
		return "", err
	}
	return token, nil
}
