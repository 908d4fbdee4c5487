package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Port            string        // Service port
	BaseURL         string        // Public base URL, used for guard redirects and checkout return
	UpstreamAPIURL  string        // Base URL of the upstream e-commerce API
	UpstreamTimeout time.Duration // Per-call timeout toward the upstream
	SessionSecret   string        // Secret for signing the session cookie
	SessionCookie   string        // Session cookie name
	SessionTTL      time.Duration // Session cookie lifetime
	CSRFSecret      string        // CSRF secret; empty disables CSRF checks
	MirrorTTL       time.Duration // Wishlist mirror TTL
	LoginRate       float64       // Signin/signup requests allowed per second per IP
	LoginBurst      int           // Signin/signup burst size per IP
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Port:            getEnv("PORT", "8080"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:8080"),
		UpstreamAPIURL:  getEnv("UPSTREAM_API_URL", "https://ecommerce.routemisr.com/api/v1"),
		UpstreamTimeout: 10 * time.Second,
		SessionSecret:   getEnv("SESSION_SECRET", ""),
		SessionCookie:   getEnv("SESSION_COOKIE", "storefront_session"),
		SessionTTL:      30 * 24 * time.Hour,
		CSRFSecret:      getEnv("CSRF_SECRET", ""),
		MirrorTTL:       5 * time.Minute,
		LoginRate:       1,
		LoginBurst:      5,
	}

	if timeoutStr := os.Getenv("UPSTREAM_TIMEOUT"); timeoutStr != "" {
		duration, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT format: %w", err)
		}
		config.UpstreamTimeout = duration
	}

	if ttlStr := os.Getenv("SESSION_TTL"); ttlStr != "" {
		duration, err := time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL format: %w", err)
		}
		config.SessionTTL = duration
	}

	if ttlStr := os.Getenv("MIRROR_TTL"); ttlStr != "" {
		duration, err := time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid MIRROR_TTL format: %w", err)
		}
		config.MirrorTTL = duration
	}

	if rateStr := os.Getenv("LOGIN_RATE"); rateStr != "" {
		parsed, err := strconv.ParseFloat(rateStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid LOGIN_RATE format: %w", err)
		}
		config.LoginRate = parsed
	}

	if burstStr := os.Getenv("LOGIN_BURST"); burstStr != "" {
		parsed, err := strconv.Atoi(burstStr)
		if err != nil {
			return nil, fmt.Errorf("invalid LOGIN_BURST format: %w", err)
		}
		config.LoginBurst = parsed
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	if c.UpstreamAPIURL == "" {
		return fmt.Errorf("UPSTREAM_API_URL cannot be empty")
	}

	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	if c.MirrorTTL <= 0 {
		return fmt.Errorf("MIRROR_TTL must be positive")
	}

	return nil
}

// getEnv retrieves an environment variable or returns a fallback value.
// A KEY_FILE variable pointing at a file takes precedence, so secrets can
// be mounted instead of passed inline.
func getEnv(key, fallback string) string {
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
