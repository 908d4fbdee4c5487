package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"storefront-gateway/internal/domain"

	"github.com/go-playground/validator/v10"
)

// ProfileUpdate is the payload for updating the mirrored profile fields.
type ProfileUpdate struct {
	Name  string `json:"name" validate:"required,min=3"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// PasswordChange is the payload for changing the account password.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	RePassword      string `json:"rePassword" validate:"required,eqfield=Password"`
}

// Profile forwards profile management to the upstream API.
type Profile struct {
	caller   domain.UpstreamCaller
	validate *validator.Validate
	logger   *slog.Logger
}

// NewProfile creates a new Profile usecase.
func NewProfile(caller domain.UpstreamCaller, logger *slog.Logger) *Profile {
	return &Profile{
		caller:   caller,
		validate: validator.New(),
		logger:   logger,
	}
}

// Update changes the account's name, email and phone.
func (uc *Profile) Update(ctx context.Context, session *domain.Session, payload ProfileUpdate) (*domain.Result, error) {
	if err := uc.validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, validationMessage(err))
	}
	return callProtected(ctx, uc.caller, session, http.MethodPut, "/users/updateMe/", payload)
}

// ChangePassword changes the account password. On success the upstream
// invalidates the current token, so the caller must clear the session
// cookie and require a fresh login.
func (uc *Profile) ChangePassword(ctx context.Context, session *domain.Session, payload PasswordChange) (*domain.Result, error) {
	if err := uc.validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, validationMessage(err))
	}

	result, err := callProtected(ctx, uc.caller, session, http.MethodPut, "/users/changeMyPassword", payload)
	if err != nil {
		return nil, err
	}
	if result.OK {
		uc.logger.InfoContext(ctx, "password changed, session must be renewed", "user_id", session.User.ID)
	}
	return result, nil
}
