package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

// RouteGuard classifies navigation paths and enforces the session-presence
// rules: protected paths require a session, auth-only paths reject one and
// everything else passes. The decision reads only the locally decoded
// session; it never calls the upstream API.
type RouteGuard struct {
	protected map[string]struct{}
	authOnly  map[string]struct{}
	loginPath string
	homePath  string
	baseURL   *url.URL
}

// RouteGuardConfig configures the guard's route classification.
type RouteGuardConfig struct {
	ProtectedPaths []string
	AuthOnlyPaths  []string
	LoginPath      string
	HomePath       string
	BaseURL        string
}

// DefaultRouteGuardConfig returns the storefront's route surface.
func DefaultRouteGuardConfig(baseURL string) RouteGuardConfig {
	return RouteGuardConfig{
		ProtectedPaths: []string{"/profile", "/cart", "/wishlist"},
		AuthOnlyPaths:  []string{"/login", "/register"},
		LoginPath:      "/login",
		HomePath:       "/",
		BaseURL:        baseURL,
	}
}

// NewRouteGuard creates a guard from the given configuration.
func NewRouteGuard(cfg RouteGuardConfig) (*RouteGuard, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	guard := &RouteGuard{
		protected: make(map[string]struct{}, len(cfg.ProtectedPaths)),
		authOnly:  make(map[string]struct{}, len(cfg.AuthOnlyPaths)),
		loginPath: cfg.LoginPath,
		homePath:  cfg.HomePath,
		baseURL:   base,
	}
	for _, p := range cfg.ProtectedPaths {
		guard.protected[p] = struct{}{}
	}
	for _, p := range cfg.AuthOnlyPaths {
		guard.authOnly[p] = struct{}{}
	}
	return guard, nil
}

// Middleware returns the Echo middleware enforcing the guard. It must run
// after SessionContext.
func (g *RouteGuard) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			session := SessionFrom(c)

			if _, ok := g.protected[path]; ok {
				if session.Authenticated() {
					return next(c)
				}
				return c.Redirect(http.StatusFound, g.loginRedirect(path))
			}

			if _, ok := g.authOnly[path]; ok {
				if session.Authenticated() {
					return c.Redirect(http.StatusFound, g.resolve(g.homePath, ""))
				}
				return next(c)
			}

			return next(c)
		}
	}
}

// loginRedirect builds the login URL carrying the originally requested
// path as the return target.
func (g *RouteGuard) loginRedirect(returnPath string) string {
	query := url.Values{}
	query.Set("url", returnPath)
	return g.resolve(g.loginPath, query.Encode())
}

func (g *RouteGuard) resolve(path, rawQuery string) string {
	target := *g.baseURL
	target.Path = path
	target.RawQuery = rawQuery
	return target.String()
}
