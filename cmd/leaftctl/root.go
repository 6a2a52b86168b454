package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/leafthq/leaft/internal/billing"
	"github.com/leafthq/leaft/internal/cache"
	"github.com/leafthq/leaft/internal/config"
	"github.com/leafthq/leaft/internal/database"
	"github.com/leafthq/leaft/internal/repository"
	"github.com/leafthq/leaft/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "leaftctl",
		Short:         "Leaft operations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newMigrateCmd(),
		newSyncSubscriptionCmd(),
		newReconcileCmd(),
		newPriceCmd(),
		newTokenCmd(),
	)
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// syncDeps is what the subscription commands need.
type syncDeps struct {
	db      *gorm.DB
	subRepo *repository.SubscriptionRepository
	sync    *service.SubscriptionSyncService
	close   func()
}

func newSyncDeps(ctx context.Context) (*syncDeps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.Stripe.SecretKey == "" {
		return nil, errors.New("STRIPE_SECRET_KEY is required")
	}

	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Syncs invalidate the shared Redis cache so running servers see the
	// new state right away.
	var store cache.Store = cache.NewMemoryStore(0)
	closeStore := func() {}
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		store = cache.NewRedisStore(client)
		closeStore = func() { client.Close() }
	}

	billingClient := billing.NewClient(&billing.Config{
		BaseURL:           cfg.Stripe.APIBaseURL,
		SecretKey:         cfg.Stripe.SecretKey,
		HTTPClient:        &http.Client{Timeout: cfg.Stripe.HTTPTimeout},
		Timeout:           cfg.Stripe.HTTPTimeout,
		MaxNetworkRetries: cfg.Stripe.MaxRetries,
	})

	subRepo := repository.NewSubscriptionRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	cacheService := service.NewCacheService(store, nil)

	return &syncDeps{
		db:      db,
		subRepo: subRepo,
		sync:    service.NewSubscriptionSyncService(subRepo, orgRepo, billingClient, cacheService, nil, nil),
		close: func() {
			closeStore()
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		},
	}, nil
}
