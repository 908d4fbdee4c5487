package handler

import (
	"net/http"
	"time"

	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/usecase"
	"storefront-gateway/middleware"

	"github.com/labstack/echo/v4"
)

// CookieConfig describes the session cookie the auth handlers manage.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// AuthHandler handles signin, signup, signout and session exposure.
type AuthHandler struct {
	login    *usecase.Login
	register *usecase.Register
	cookie   CookieConfig
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(login *usecase.Login, register *usecase.Register, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{login: login, register: register, cookie: cookie}
}

// sessionUser is the user object exposed to the frontend.
type sessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// sessionResponse is the externally visible session shape. It exposes the
// mirrored profile and the opaque token, nothing else.
type sessionResponse struct {
	OK    bool        `json:"ok"`
	User  sessionUser `json:"user"`
	Token string      `json:"token"`
}

func newSessionResponse(session *domain.Session) sessionResponse {
	return sessionResponse{
		OK: true,
		User: sessionUser{
			ID:    session.User.ID,
			Name:  session.User.Name,
			Email: session.User.Email,
			Role:  session.User.Role,
		},
		Token: session.Token,
	}
}

// HandleSignIn processes POST /auth/signin.
func (h *AuthHandler) HandleSignIn(c echo.Context) error {
	var creds domain.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	result, err := h.login.Execute(c.Request().Context(), creds)
	if err != nil {
		return mapDomainError(err)
	}

	c.SetCookie(h.sessionCookie(result.Cookie, h.cookie.TTL))
	return c.JSON(http.StatusOK, newSessionResponse(result.Session))
}

// HandleSignUp processes POST /auth/signup.
func (h *AuthHandler) HandleSignUp(c echo.Context) error {
	var reg domain.Registration
	if err := c.Bind(&reg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	result, err := h.register.Execute(c.Request().Context(), reg)
	if err != nil {
		return mapDomainError(err)
	}

	c.SetCookie(h.sessionCookie(result.Cookie, h.cookie.TTL))
	return c.JSON(http.StatusCreated, newSessionResponse(result.Session))
}

// HandleSignOut processes POST /auth/signout and clears the session cookie.
func (h *AuthHandler) HandleSignOut(c echo.Context) error {
	cookie := h.sessionCookie("", -time.Hour)
	cookie.MaxAge = -1
	c.SetCookie(cookie)
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// HandleSession processes GET /auth/session. Anonymous requests get an
// empty session rather than an error.
func (h *AuthHandler) HandleSession(c echo.Context) error {
	session := middleware.SessionFrom(c)
	if !session.Authenticated() {
		return c.JSON(http.StatusOK, map[string]bool{"ok": false})
	}
	return c.JSON(http.StatusOK, newSessionResponse(session))
}

func (h *AuthHandler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
