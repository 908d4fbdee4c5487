package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the auth-only navigation targets. The actual forms
// are rendered by the frontend; these endpoints exist so the route guard
// has real paths to allow or redirect, and they echo back the return
// target carried by the guard.
type PageHandler struct{}

// NewPageHandler creates a new page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// HandleLogin processes GET /login.
func (h *PageHandler) HandleLogin(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"page":     "login",
		"submit":   "/auth/signin",
		"returnTo": c.QueryParam("url"),
	})
}

// HandleRegister processes GET /register.
func (h *PageHandler) HandleRegister(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"page":   "register",
		"submit": "/auth/signup",
	})
}
