package handler

import (
	"net/http"

	"storefront-gateway/internal/usecase"
	"storefront-gateway/middleware"

	"github.com/labstack/echo/v4"
)

// WishlistHandler serves the wishlist data routes.
type WishlistHandler struct {
	uc *usecase.Wishlist
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(uc *usecase.Wishlist) *WishlistHandler {
	return &WishlistHandler{uc: uc}
}

type wishlistRequest struct {
	ProductID string `json:"productId"`
}

func (h *WishlistHandler) HandleGet(c echo.Context) error {
	result, err := h.uc.Get(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// HandleIDs serves the mirrored id set used for navbar badges.
func (h *WishlistHandler) HandleIDs(c echo.Context) error {
	ids, err := h.uc.IDs(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, map[string][]string{"ids": ids})
}

func (h *WishlistHandler) HandleAdd(c echo.Context) error {
	var req wishlistRequest
	if err := c.Bind(&req); err != nil || req.ProductID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "productId is required")
	}

	result, err := h.uc.Add(c.Request().Context(), middleware.SessionFrom(c), req.ProductID)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *WishlistHandler) HandleRemove(c echo.Context) error {
	result, err := h.uc.Remove(c.Request().Context(), middleware.SessionFrom(c), c.Param("productId"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, result)
}
