package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"storefront-gateway/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Addresses forwards saved-address operations to the upstream API. New
// addresses are validated locally before the upstream call so the checkout
// flow gets immediate field-level feedback.
type Addresses struct {
	caller   domain.UpstreamCaller
	validate *validator.Validate
	logger   *slog.Logger
}

// NewAddresses creates a new Addresses usecase.
func NewAddresses(caller domain.UpstreamCaller, logger *slog.Logger) *Addresses {
	return &Addresses{
		caller:   caller,
		validate: validator.New(),
		logger:   logger,
	}
}

// List fetches the session owner's saved addresses.
func (uc *Addresses) List(ctx context.Context, session *domain.Session) (*domain.Result, error) {
	return callProtected(ctx, uc.caller, session, http.MethodGet, "/addresses", nil)
}

// Add validates and saves a new address.
func (uc *Addresses) Add(ctx context.Context, session *domain.Session, address domain.Address) (*domain.Result, error) {
	if err := uc.validate.Struct(address); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, validationMessage(err))
	}
	return callProtected(ctx, uc.caller, session, http.MethodPost, "/addresses", address)
}

// Remove deletes a saved address.
func (uc *Addresses) Remove(ctx context.Context, session *domain.Session, addressID string) (*domain.Result, error) {
	return callProtected(ctx, uc.caller, session, http.MethodDelete, "/addresses/"+addressID, nil)
}
