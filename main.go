package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"storefront-gateway/config"
	"storefront-gateway/internal/adapter/gateway"
	"storefront-gateway/internal/adapter/handler"
	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/infrastructure/cache"
	"storefront-gateway/internal/infrastructure/token"
	"storefront-gateway/internal/usecase"
	appmiddleware "storefront-gateway/middleware"
	"storefront-gateway/utils/logger"
	"storefront-gateway/utils/otel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"golang.org/x/time/rate"
)

func main() {
	// Handle healthcheck subcommand (for Docker healthcheck in distroless image)
	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		if err := runHealthcheck(); err != nil {
			fmt.Fprintf(os.Stderr, "Healthcheck failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	ctx := context.Background()

	// Initialize OpenTelemetry
	otelCfg := otel.ConfigFromEnv()
	otelShutdown, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		fmt.Printf("Failed to initialize OpenTelemetry: %v\n", err)
		otelCfg.Enabled = false
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if otelShutdown != nil {
			if err := otelShutdown(shutdownCtx); err != nil {
				fmt.Printf("Failed to shutdown OpenTelemetry: %v\n", err)
			}
		}
	}()

	// Initialize structured logger with OTel support
	appLogger := logger.Init(otelCfg.Enabled)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "configuration loaded",
		"upstream_api_url", cfg.UpstreamAPIURL,
		"base_url", cfg.BaseURL,
		"port", cfg.Port,
		"session_cookie", cfg.SessionCookie)

	// Initialize dependencies
	shopClient := gateway.NewShopClient(cfg.UpstreamAPIURL, cfg.UpstreamTimeout)
	slog.InfoContext(ctx, "upstream client initialized", "base_url", cfg.UpstreamAPIURL)

	sessionCodec, err := token.NewSessionCodec(token.CodecConfig{
		Secret: cfg.SessionSecret,
		Issuer: "storefront-gateway",
		TTL:    cfg.SessionTTL,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to initialize session codec", "error", err)
		os.Exit(1)
	}

	wishlistMirror := cache.NewWishlistMirror(cfg.MirrorTTL)

	var csrfGenerator domain.CSRFTokenGenerator
	if cfg.CSRFSecret != "" {
		csrfGenerator = token.NewHMACCSRFGenerator(cfg.CSRFSecret)
	} else {
		slog.WarnContext(ctx, "CSRF_SECRET not set, CSRF checks disabled")
	}

	// Usecases
	loginUC := usecase.NewLogin(shopClient, sessionCodec, appLogger)
	registerUC := usecase.NewRegister(shopClient, sessionCodec, appLogger)
	catalogUC := usecase.NewCatalog(shopClient, appLogger)
	cartUC := usecase.NewCart(shopClient, appLogger)
	wishlistUC := usecase.NewWishlist(shopClient, wishlistMirror, appLogger)
	addressUC := usecase.NewAddresses(shopClient, appLogger)
	orderUC := usecase.NewOrders(shopClient, cfg.BaseURL, appLogger)
	profileUC := usecase.NewProfile(shopClient, appLogger)
	csrfUC := usecase.NewGenerateCSRF(csrfGenerator, appLogger)

	// Handlers
	cookieCfg := handler.CookieConfig{
		Name:   cfg.SessionCookie,
		TTL:    cfg.SessionTTL,
		Secure: strings.HasPrefix(cfg.BaseURL, "https://"),
	}
	authHandler := handler.NewAuthHandler(loginUC, registerUC, cookieCfg)
	catalogHandler := handler.NewCatalogHandler(catalogUC)
	cartHandler := handler.NewCartHandler(cartUC)
	wishlistHandler := handler.NewWishlistHandler(wishlistUC)
	addressHandler := handler.NewAddressHandler(addressUC)
	orderHandler := handler.NewOrderHandler(orderUC)
	profileHandler := handler.NewProfileHandler(profileUC, cookieCfg)
	csrfHandler := handler.NewCSRFHandler(csrfUC)
	pageHandler := handler.NewPageHandler()
	healthHandler := handler.NewHealthHandler()

	// Setup Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Add OpenTelemetry tracing middleware
	if otelCfg.Enabled {
		e.Use(otelecho.Middleware(otelCfg.ServiceName))
	}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ctx := c.Request().Context()
			if v.Error == nil {
				slog.InfoContext(ctx, "request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				slog.ErrorContext(ctx, "request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))

	e.Use(middleware.Recover())
	e.Use(appmiddleware.SecurityHeaders())
	e.Use(appmiddleware.SessionContext(sessionCodec, cfg.SessionCookie))

	guard, err := appmiddleware.NewRouteGuard(appmiddleware.DefaultRouteGuardConfig(cfg.BaseURL))
	if err != nil {
		slog.ErrorContext(ctx, "failed to initialize route guard", "error", err)
		os.Exit(1)
	}
	e.Use(guard.Middleware())

	// Auth routes, rate limited per IP
	loginLimiter := appmiddleware.NewRateLimiter(rate.Limit(cfg.LoginRate), cfg.LoginBurst)
	auth := e.Group("/auth")
	auth.POST("/signin", authHandler.HandleSignIn, loginLimiter.Middleware())
	auth.POST("/signup", authHandler.HandleSignUp, loginLimiter.Middleware())
	auth.POST("/signout", authHandler.HandleSignOut)
	auth.GET("/session", authHandler.HandleSession)
	auth.GET("/csrf", csrfHandler.Handle)

	// Auth-only navigation targets
	e.GET("/login", pageHandler.HandleLogin)
	e.GET("/register", pageHandler.HandleRegister)

	// Public catalog
	e.GET("/home", catalogHandler.HandleHome)
	e.GET("/products", catalogHandler.HandleProducts)
	e.GET("/products/:productId", catalogHandler.HandleProduct)
	e.GET("/categories", catalogHandler.HandleCategories)
	e.GET("/categories/:categoryId", catalogHandler.HandleCategory)
	e.GET("/brands", catalogHandler.HandleBrands)
	e.GET("/brands/:brandId", catalogHandler.HandleBrand)

	// Protected data routes
	csrfCheck := appmiddleware.CSRFCheck(csrfGenerator)

	cart := e.Group("/cart", csrfCheck)
	cart.GET("", cartHandler.HandleGet)
	cart.POST("", cartHandler.HandleAdd)
	cart.PUT("/:itemId", cartHandler.HandleUpdateCount)
	cart.DELETE("/:itemId", cartHandler.HandleRemove)
	cart.DELETE("", cartHandler.HandleClear)

	wishlist := e.Group("/wishlist", csrfCheck)
	wishlist.GET("", wishlistHandler.HandleGet)
	wishlist.GET("/ids", wishlistHandler.HandleIDs)
	wishlist.POST("", wishlistHandler.HandleAdd)
	wishlist.DELETE("/:productId", wishlistHandler.HandleRemove)

	addresses := e.Group("/addresses", csrfCheck)
	addresses.GET("", addressHandler.HandleList)
	addresses.POST("", addressHandler.HandleAdd)
	addresses.DELETE("/:addressId", addressHandler.HandleRemove)

	orders := e.Group("/orders", csrfCheck)
	orders.GET("", orderHandler.HandleList)
	orders.POST("/:cartId", orderHandler.HandlePlaceCash)
	orders.POST("/checkout-session/:cartId", orderHandler.HandleCheckoutSession)

	profile := e.Group("/profile", csrfCheck)
	profile.GET("", profileHandler.HandleGet)
	profile.PUT("", profileHandler.HandleUpdate)
	profile.PUT("/password", profileHandler.HandleChangePassword)

	e.GET("/health", healthHandler.Handle)

	// Start server
	address := fmt.Sprintf(":%s", cfg.Port)

	go func() {
		slog.InfoContext(ctx, "starting storefront gateway", "address", address)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	slog.InfoContext(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "server exited properly")
}

// runHealthcheck performs a health check against the local server
func runHealthcheck() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	client := &http.Client{
		Timeout: 2 * time.Second,
	}

	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%s/health", port))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned status: %d", resp.StatusCode)
	}

	return nil
}
