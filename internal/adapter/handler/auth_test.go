package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/usecase"
	"storefront-gateway/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookieName = "storefront_session"

// fakeVerifier implements domain.CredentialVerifier with canned outcomes.
type fakeVerifier struct {
	session *domain.Session
	err     error
}

func (f *fakeVerifier) SignIn(context.Context, string, string) (*domain.Session, error) {
	return f.session, f.err
}

func (f *fakeVerifier) SignUp(context.Context, domain.Registration) (*domain.Session, error) {
	return f.session, f.err
}

// fakeCodec signs any session into a fixed cookie value and decodes only it.
type fakeCodec struct {
	session *domain.Session
}

func (f *fakeCodec) Issue(*domain.Session) (string, error) { return "signed-cookie", nil }

func (f *fakeCodec) Decode(cookie string) (*domain.Session, error) {
	if cookie != "signed-cookie" {
		return nil, domain.ErrSessionInvalid
	}
	return f.session, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSession() *domain.Session {
	return &domain.Session{
		User: domain.User{
			ID:    "u1",
			Name:  "Jane",
			Email: "jane@test.com",
			Role:  "user",
		},
		Token: "opaque-token",
	}
}

func authEcho(verifier domain.CredentialVerifier, codec domain.SessionCodec) *echo.Echo {
	logger := discardLogger()
	h := NewAuthHandler(
		usecase.NewLogin(verifier, codec, logger),
		usecase.NewRegister(verifier, codec, logger),
		CookieConfig{Name: testCookieName, TTL: time.Hour},
	)

	e := echo.New()
	e.Use(middleware.SessionContext(codec, testCookieName))
	e.POST("/auth/signin", h.HandleSignIn)
	e.POST("/auth/signup", h.HandleSignUp)
	e.POST("/auth/signout", h.HandleSignOut)
	e.GET("/auth/session", h.HandleSession)
	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == testCookieName {
			return cookie
		}
	}
	t.Fatalf("no %s cookie set", testCookieName)
	return nil
}

func TestHandleSignIn_Success(t *testing.T) {
	session := testSession()
	e := authEcho(&fakeVerifier{session: session}, &fakeCodec{session: session})

	rec := postJSON(e, "/auth/signin", `{"email":"jane@test.com","password":"secret"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookieFrom(t, rec)
	assert.Equal(t, "signed-cookie", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	var body sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, "u1", body.User.ID)
	assert.Equal(t, "jane@test.com", body.User.Email)
	assert.Equal(t, "opaque-token", body.Token)
}

func TestHandleSignIn_InvalidCredentials(t *testing.T) {
	verr := &fakeVerifier{err: domain.ErrInvalidCredentials}
	e := authEcho(verr, &fakeCodec{})

	rec := postJSON(e, "/auth/signin", `{"email":"jane@test.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestHandleSignIn_MissingFields(t *testing.T) {
	e := authEcho(&fakeVerifier{}, &fakeCodec{})

	rec := postJSON(e, "/auth/signin", `{"email":"jane@test.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSignIn_MalformedBody(t *testing.T) {
	e := authEcho(&fakeVerifier{}, &fakeCodec{})

	rec := postJSON(e, "/auth/signin", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSignIn_UpstreamUnavailable(t *testing.T) {
	e := authEcho(&fakeVerifier{err: domain.ErrUpstreamUnavailable}, &fakeCodec{})

	rec := postJSON(e, "/auth/signin", `{"email":"jane@test.com","password":"secret"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleSignUp_Success(t *testing.T) {
	session := testSession()
	e := authEcho(&fakeVerifier{session: session}, &fakeCodec{session: session})

	body := `{"name":"Jane","email":"jane@test.com","password":"secret123","rePassword":"secret123","phone":"01012345678"}`
	rec := postJSON(e, "/auth/signup", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "signed-cookie", sessionCookieFrom(t, rec).Value)
}

func TestHandleSignOut_ClearsCookie(t *testing.T) {
	e := authEcho(&fakeVerifier{}, &fakeCodec{})

	rec := postJSON(e, "/auth/signout", "")

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookieFrom(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestHandleSession_Authenticated(t *testing.T) {
	session := testSession()
	e := authEcho(&fakeVerifier{}, &fakeCodec{session: session})

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "signed-cookie"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, "u1", body.User.ID)
}

func TestHandleSession_Anonymous(t *testing.T) {
	e := authEcho(&fakeVerifier{}, &fakeCodec{})

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":false}`, rec.Body.String())
}
