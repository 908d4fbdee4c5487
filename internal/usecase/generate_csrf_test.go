package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"storefront-gateway/internal/domain"

	"github.com/stretchr/testify/assert"
)

// mockCSRF implements domain.CSRFTokenGenerator for testing.
type mockCSRF struct {
	token  string
	err    error
	userID string
}

func (m *mockCSRF) Generate(userID string) (string, error) {
	m.userID = userID
	return m.token, m.err
}

func (m *mockCSRF) Verify(string, string) error { return nil }

func TestGenerateCSRF_Success(t *testing.T) {
	csrf := &mockCSRF{token: "csrf-token"}
	uc := NewGenerateCSRF(csrf, slog.Default())

	token, err := uc.Execute(context.Background(), authedSession())

	assert.NoError(t, err)
	assert.Equal(t, "csrf-token", token)
	assert.Equal(t, "u1", csrf.userID)
}

func TestGenerateCSRF_Unauthenticated(t *testing.T) {
	uc := NewGenerateCSRF(&mockCSRF{}, slog.Default())

	token, err := uc.Execute(context.Background(), nil)

	assert.Empty(t, token)
	assert.True(t, errors.Is(err, domain.ErrUnauthenticated))
}

func TestGenerateCSRF_NoGeneratorConfigured(t *testing.T) {
	uc := NewGenerateCSRF(nil, slog.Default())

	token, err := uc.Execute(context.Background(), authedSession())

	assert.Empty(t, token)
	assert.True(t, errors.Is(err, domain.ErrCSRFSecretMissing))
}
