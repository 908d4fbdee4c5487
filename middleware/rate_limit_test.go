package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func limitedEcho(r rate.Limit, burst int) *echo.Echo {
	e := echo.New()
	rl := NewRateLimiter(r, burst)
	e.POST("/auth/signin", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, rl.Middleware())
	return e
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	e := limitedEcho(1, 3)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/signin", nil)
		req.Header.Set("X-Real-IP", "10.0.0.1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_BlocksBeyondBurst(t *testing.T) {
	e := limitedEcho(1, 2)

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/signin", nil)
		req.Header.Set("X-Real-IP", "10.0.0.2")
		last = httptest.NewRecorder()
		e.ServeHTTP(last, req)
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.NotEmpty(t, last.Header().Get("Retry-After"))
}

func TestRateLimiter_IsolatesClients(t *testing.T) {
	e := limitedEcho(1, 1)

	first := httptest.NewRequest(http.MethodPost, "/auth/signin", nil)
	first.Header.Set("X-Real-IP", "10.0.0.3")
	firstRec := httptest.NewRecorder()
	e.ServeHTTP(firstRec, first)

	second := httptest.NewRequest(http.MethodPost, "/auth/signin", nil)
	second.Header.Set("X-Real-IP", "10.0.0.4")
	secondRec := httptest.NewRecorder()
	e.ServeHTTP(secondRec, second)

	assert.Equal(t, http.StatusOK, firstRec.Code)
	assert.Equal(t, http.StatusOK, secondRec.Code)
}
