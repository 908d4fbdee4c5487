package handler

import (
	"net/http"

	"storefront-gateway/internal/usecase"
	"storefront-gateway/middleware"

	"github.com/labstack/echo/v4"
)

// CSRFHandler handles CSRF token requests.
type CSRFHandler struct {
	uc *usecase.GenerateCSRF
}

// NewCSRFHandler creates a new CSRF handler.
func NewCSRFHandler(uc *usecase.GenerateCSRF) *CSRFHandler {
	return &CSRFHandler{uc: uc}
}

// csrfResponse represents the CSRF token response.
type csrfResponse struct {
	Data struct {
		CSRFToken string `json:"csrf_token"`
	} `json:"data"`
}

// Handle processes GET /auth/csrf for an authenticated session.
func (h *CSRFHandler) Handle(c echo.Context) error {
	token, err := h.uc.Execute(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return mapDomainError(err)
	}

	resp := csrfResponse{}
	resp.Data.CSRFToken = token
	return c.JSON(http.StatusOK, resp)
}
