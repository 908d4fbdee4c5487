package handler

import (
	"net/http"

	"storefront-gateway/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the public catalog reads.
type CatalogHandler struct {
	uc *usecase.Catalog
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(uc *usecase.Catalog) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) HandleProducts(c echo.Context) error {
	raw, err := h.uc.Products(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

func (h *CatalogHandler) HandleProduct(c echo.Context) error {
	raw, err := h.uc.Product(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

func (h *CatalogHandler) HandleCategories(c echo.Context) error {
	raw, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

func (h *CatalogHandler) HandleCategory(c echo.Context) error {
	raw, err := h.uc.Category(c.Request().Context(), c.Param("categoryId"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

func (h *CatalogHandler) HandleBrands(c echo.Context) error {
	raw, err := h.uc.Brands(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

func (h *CatalogHandler) HandleBrand(c echo.Context) error {
	raw, err := h.uc.Brand(c.Request().Context(), c.Param("brandId"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

// HandleHome serves the landing page aggregate.
func (h *CatalogHandler) HandleHome(c echo.Context) error {
	home, err := h.uc.Home(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, home)
}
