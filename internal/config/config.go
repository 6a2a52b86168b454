// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Database struct {
		Host         string        `env:"DB_HOST" envDefault:"localhost"`
		Port         string        `env:"DB_PORT" envDefault:"5432"`
		User         string        `env:"DB_USER" envDefault:"postgres"`
		Password     string        `env:"DB_PASSWORD"`
		Name         string        `env:"DB_NAME" envDefault:"leaft"`
		SSLMode      string        `env:"DB_SSLMODE" envDefault:"disable"`
		SearchPath   string        `env:"DB_SCHEMA" envDefault:"public"`
		MaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
		MaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"25"`
		ConnLifetime time.Duration `env:"DB_CONN_LIFETIME" envDefault:"5m"`
	}
	Redis struct {
		Addr     string `env:"REDIS_ADDR"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}
	Session struct {
		// Secret verifies HS256 session tokens. PublicKeyPEM takes precedence
		// and verifies RS256 tokens issued by the identity provider.
		Secret       string `env:"SESSION_JWT_SECRET"`
		PublicKeyPEM string `env:"SESSION_JWT_PUBLIC_KEY"`
		Issuer       string `env:"SESSION_JWT_ISSUER"`
		CookieName   string `env:"SESSION_COOKIE_NAME" envDefault:"__session"`
	}
	Stripe struct {
		SecretKey        string        `env:"STRIPE_SECRET_KEY"`
		WebhookSecret    string        `env:"STRIPE_WEBHOOK_SECRET"`
		APIBaseURL       string        `env:"STRIPE_API_BASE_URL" envDefault:"https://api.stripe.com"`
		Currency         string        `env:"STRIPE_CURRENCY" envDefault:"eur"`
		SuccessURL       string        `env:"STRIPE_SUCCESS_URL" envDefault:"http://localhost:8080/dashboard?session_id={CHECKOUT_SESSION_ID}"`
		CancelURL        string        `env:"STRIPE_CANCEL_URL" envDefault:"http://localhost:8080/onboarding"`
		PortalReturnURL  string        `env:"STRIPE_PORTAL_RETURN_URL" envDefault:"http://localhost:8080/dashboard/settings"`
		HTTPTimeout      time.Duration `env:"STRIPE_HTTP_TIMEOUT" envDefault:"15s"`
		WebhookTolerance time.Duration `env:"STRIPE_WEBHOOK_TOLERANCE" envDefault:"5m"`
		MaxRetries       int64         `env:"STRIPE_MAX_NETWORK_RETRIES" envDefault:"2"`
	}
	Server struct {
		Port          string        `env:"SERVER_PORT" envDefault:"8080"`
		ReadTimeout   time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
		WriteTimeout  time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
		StaticDir     string        `env:"SERVER_STATIC_DIR" envDefault:"./web/dist"`
		SignInURL     string        `env:"SIGN_IN_URL" envDefault:"/sign-in"`
		OnboardingURL string        `env:"ONBOARDING_URL" envDefault:"/onboarding"`
	}
	Sendgrid struct {
		APIKey string `env:"SENDGRID_API_KEY"`
		From   string `env:"SENDGRID_FROM" envDefault:"hello@leaft.io"`
	}
	SMTP struct {
		Host     string `env:"SMTP_HOST"`
		Port     int    `env:"SMTP_PORT" envDefault:"587"`
		Username string `env:"SMTP_USERNAME"`
		Password string `env:"SMTP_PASSWORD"`
		From     string `env:"SMTP_FROM"`
	}
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
}

// Load reads .env files when present, then parses the environment.
func Load() (*Config, error) {
	if err := loadEnvFiles(".env", ".env.local"); err != nil {
		return nil, fmt.Errorf("loading env files: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}

// URL builds the Postgres connection URL used by lib/pq.
func (c *Config) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&search_path=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}

func (c *Config) validate() error {
	if c.Session.Secret == "" && c.Session.PublicKeyPEM == "" {
		return errors.New("one of SESSION_JWT_SECRET or SESSION_JWT_PUBLIC_KEY is required")
	}
	if c.Stripe.Currency == "" {
		return errors.New("STRIPE_CURRENCY must not be empty")
	}
	return nil
}

func loadEnvFiles(files ...string) error {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}
