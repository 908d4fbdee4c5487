package handler

import (
	"net/http"

	"storefront-gateway/internal/usecase"
	"storefront-gateway/middleware"

	"github.com/labstack/echo/v4"
)

// CartHandler serves the cart data routes.
type CartHandler struct {
	uc *usecase.Cart
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(uc *usecase.Cart) *CartHandler {
	return &CartHandler{uc: uc}
}

type addToCartRequest struct {
	ProductID string `json:"productId"`
}

type updateCountRequest struct {
	Count int `json:"count"`
}

func (h *CartHandler) HandleGet(c echo.Context) error {
	result, err := h.uc.Get(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *CartHandler) HandleAdd(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil || req.ProductID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "productId is required")
	}

	result, err := h.uc.Add(c.Request().Context(), middleware.SessionFrom(c), req.ProductID)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *CartHandler) HandleUpdateCount(c echo.Context) error {
	var req updateCountRequest
	if err := c.Bind(&req); err != nil || req.Count < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "count must be a non-negative integer")
	}

	result, err := h.uc.UpdateCount(c.Request().Context(), middleware.SessionFrom(c), c.Param("itemId"), req.Count)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *CartHandler) HandleRemove(c echo.Context) error {
	result, err := h.uc.Remove(c.Request().Context(), middleware.SessionFrom(c), c.Param("itemId"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *CartHandler) HandleClear(c echo.Context) error {
	result, err := h.uc.Clear(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, result)
}
