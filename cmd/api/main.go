// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/leafthq/leaft/internal/auth"
	"github.com/leafthq/leaft/internal/billing"
	"github.com/leafthq/leaft/internal/cache"
	"github.com/leafthq/leaft/internal/config"
	"github.com/leafthq/leaft/internal/database"
	"github.com/leafthq/leaft/internal/email"
	"github.com/leafthq/leaft/internal/email/mailer"
	"github.com/leafthq/leaft/internal/handler"
	"github.com/leafthq/leaft/internal/metrics"
	"github.com/leafthq/leaft/internal/middleware"
	"github.com/leafthq/leaft/internal/repository"
	"github.com/leafthq/leaft/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// Initialize database
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	store, closeStore, err := setupStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("setting up cache: %w", err)
	}
	defer closeStore()

	m, err := metrics.New(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}

	tokenManager, err := auth.NewTokenManager(auth.TokenConfig{
		Secret:       cfg.Session.Secret,
		PublicKeyPEM: cfg.Session.PublicKeyPEM,
		Issuer:       cfg.Session.Issuer,
	})
	if err != nil {
		return fmt.Errorf("setting up session tokens: %w", err)
	}

	notifier, err := setupNotifier(cfg, logger)
	if err != nil {
		return fmt.Errorf("setting up email: %w", err)
	}

	billingClient := billing.NewClient(&billing.Config{
		BaseURL:           cfg.Stripe.APIBaseURL,
		SecretKey:         cfg.Stripe.SecretKey,
		HTTPClient:        &http.Client{Timeout: cfg.Stripe.HTTPTimeout},
		Timeout:           cfg.Stripe.HTTPTimeout,
		MaxNetworkRetries: cfg.Stripe.MaxRetries,
		Logger:            logger,
	})

	// Initialize repositories
	orgRepo := repository.NewOrganizationRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	deptRepo := repository.NewDepartmentRepository(db)
	familyRepo := repository.NewJobFamilyRepository(db)

	// Initialize services
	cacheService := service.NewCacheService(store, logger)
	resolver := service.NewOrganizationResolver(orgRepo, membershipRepo)
	accessService := service.NewAccessService(resolver, subRepo, cacheService, m, logger)
	organizationService := service.NewOrganizationService(orgRepo, resolver, notifier, logger)
	syncService := service.NewSubscriptionSyncService(subRepo, orgRepo, billingClient, cacheService, m, logger)
	checkoutService := service.NewCheckoutService(orgRepo, billingClient, syncService, service.CheckoutConfig{
		Currency:        cfg.Stripe.Currency,
		SuccessURL:      cfg.Stripe.SuccessURL,
		CancelURL:       cfg.Stripe.CancelURL,
		PortalReturnURL: cfg.Stripe.PortalReturnURL,
	}, logger)
	webhookService := service.NewWebhookService(
		billing.NewWebhookVerifier(cfg.Stripe.WebhookSecret, cfg.Stripe.WebhookTolerance),
		syncService,
		cacheService,
		notifier,
		m,
		logger,
	)

	// Initialize handlers
	handlers := &handler.Handlers{
		Onboarding:   handler.NewOnboardingHandler(accessService, organizationService),
		Organization: handler.NewOrganizationHandler(organizationService),
		Billing:      handler.NewBillingHandler(checkoutService),
		Webhook:      handler.NewWebhookHandler(webhookService),
		Departments:  handler.NewDepartmentHandler(service.NewDepartmentService(deptRepo)),
		JobFamilies:  handler.NewJobFamilyHandler(service.NewJobFamilyService(familyRepo, deptRepo)),
		Levels:       handler.NewLevelHandler(service.NewLevelService(repository.NewLevelRepository(db), familyRepo, deptRepo)),
		Avantages:    handler.NewAvantageHandler(service.NewAvantageService(repository.NewAvantageRepository(db), deptRepo)),
		GrilleExtras: handler.NewGrilleExtraHandler(service.NewGrilleExtraService(repository.NewGrilleExtraRepository(db), deptRepo)),
	}

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.BaseURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.Authenticate(tokenManager, cfg.Session.CookieName))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	handlers.Mount(r, middleware.RequireSession, middleware.Tenant(resolver))

	// Product pages
	dashboard := middleware.AccessGate(accessService, cfg.Server.SignInURL, cfg.Server.OnboardingURL)(
		spaHandler(cfg.Server.StaticDir, "/dashboard"),
	)
	r.Handle("/dashboard", dashboard)
	r.Handle("/dashboard/*", dashboard)

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("shutdown started")

		// Give outstanding requests a deadline for completion
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(shutdownCtx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// setupStore connects to Redis when configured and falls back to an
// in-process store for single-instance deployments.
func setupStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (cache.Store, func(), error) {
	if cfg.Redis.Addr == "" {
		logger.Warn("REDIS_ADDR not set, using in-memory cache")
		store := cache.NewMemoryStore(time.Minute)
		store.StartCleanup(ctx)
		return store, store.StopCleanup, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("pinging redis: %w", err)
	}

	return cache.NewRedisStore(client), func() { client.Close() }, nil
}

// setupNotifier returns nil when no email provider is configured.
func setupNotifier(cfg *config.Config, logger *slog.Logger) (service.Notifier, error) {
	provider, ok := email.ProviderFor(cfg)
	if !ok {
		logger.Warn("no email provider configured, transactional emails disabled")
		return nil, nil
	}

	emailService, err := email.NewEmailService(cfg, provider)
	if err != nil {
		return nil, err
	}
	return mailer.New(emailService, cfg.BaseURL, cfg.Server.OnboardingURL), nil
}
