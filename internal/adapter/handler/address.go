package handler

import (
	"net/http"

	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/usecase"
	"storefront-gateway/middleware"

	"github.com/labstack/echo/v4"
)

// AddressHandler serves the saved-address routes.
type AddressHandler struct {
	uc *usecase.Addresses
}

// NewAddressHandler creates a new address handler.
func NewAddressHandler(uc *usecase.Addresses) *AddressHandler {
	return &AddressHandler{uc: uc}
}

func (h *AddressHandler) HandleList(c echo.Context) error {
	result, err := h.uc.List(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *AddressHandler) HandleAdd(c echo.Context) error {
	var address domain.Address
	if err := c.Bind(&address); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	result, err := h.uc.Add(c.Request().Context(), middleware.SessionFrom(c), address)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *AddressHandler) HandleRemove(c echo.Context) error {
	result, err := h.uc.Remove(c.Request().Context(), middleware.SessionFrom(c), c.Param("addressId"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, result)
}
