package handler

import (
	"net/http"

	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/usecase"
	"storefront-gateway/middleware"

	"github.com/labstack/echo/v4"
)

// OrderHandler serves order placement and listing.
type OrderHandler struct {
	uc *usecase.Orders
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(uc *usecase.Orders) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type placeOrderRequest struct {
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
}

func (h *OrderHandler) HandlePlaceCash(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	result, err := h.uc.PlaceCash(c.Request().Context(), middleware.SessionFrom(c), c.Param("cartId"), req.ShippingAddress)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) HandleCheckoutSession(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	result, err := h.uc.CheckoutSession(c.Request().Context(), middleware.SessionFrom(c), c.Param("cartId"), req.ShippingAddress)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) HandleList(c echo.Context) error {
	result, err := h.uc.List(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, result)
}
