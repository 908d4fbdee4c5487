package handler

import (
	"net/http"
	"time"

	"storefront-gateway/internal/usecase"
	"storefront-gateway/middleware"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves profile reads and updates.
type ProfileHandler struct {
	uc     *usecase.Profile
	cookie CookieConfig
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(uc *usecase.Profile, cookie CookieConfig) *ProfileHandler {
	return &ProfileHandler{uc: uc, cookie: cookie}
}

// HandleGet serves GET /profile from the session mirror; the profile was
// copied in at login and owned by the upstream.
func (h *ProfileHandler) HandleGet(c echo.Context) error {
	session := middleware.SessionFrom(c)
	if !session.Authenticated() {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return c.JSON(http.StatusOK, newSessionResponse(session))
}

func (h *ProfileHandler) HandleUpdate(c echo.Context) error {
	var payload usecase.ProfileUpdate
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	result, err := h.uc.Update(c.Request().Context(), middleware.SessionFrom(c), payload)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// HandleChangePassword changes the password and, on success, clears the
// session cookie: the upstream invalidates the old token.
func (h *ProfileHandler) HandleChangePassword(c echo.Context) error {
	var payload usecase.PasswordChange
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	result, err := h.uc.ChangePassword(c.Request().Context(), middleware.SessionFrom(c), payload)
	if err != nil {
		return mapDomainError(err)
	}

	if result.OK {
		c.SetCookie(&http.Cookie{
			Name:     h.cookie.Name,
			Value:    "",
			Path:     "/",
			Expires:  time.Now().Add(-time.Hour),
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.cookie.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return c.JSON(http.StatusOK, result)
}
