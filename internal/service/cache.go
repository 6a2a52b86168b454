// internal/service/cache.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/leafthq/leaft/internal/cache"
)

const (
	activeSubscriptionTTL = 30 * time.Second
	processedEventTTL     = 24 * time.Hour
)

// CacheService keeps short-lived answers in front of the database. Every
// operation is best effort: failures are logged and reported as misses.
type CacheService struct {
	store  cache.Store
	logger *slog.Logger
}

func NewCacheService(store cache.Store, logger *slog.Logger) *CacheService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CacheService{
		store:  store,
		logger: logger,
	}
}

func activeSubscriptionKey(orgID uuid.UUID) string {
	return fmt.Sprintf("leaft:org:%s:active_subscription", orgID)
}

func processedEventKey(eventID string) string {
	return "leaft:stripe_event:" + eventID
}

// ActiveSubscription returns the cached predicate for orgID; found is false
// on a miss.
func (s *CacheService) ActiveSubscription(ctx context.Context, orgID uuid.UUID) (active bool, found bool) {
	if s == nil {
		return false, false
	}
	if err := s.store.Get(ctx, activeSubscriptionKey(orgID), &active); err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.WarnContext(ctx, "reading subscription cache", "error", err, "organizationID", orgID)
		}
		return false, false
	}
	return active, true
}

func (s *CacheService) SetActiveSubscription(ctx context.Context, orgID uuid.UUID, active bool) {
	if s == nil {
		return
	}
	if err := s.store.Set(ctx, activeSubscriptionKey(orgID), active, activeSubscriptionTTL); err != nil {
		s.logger.WarnContext(ctx, "writing subscription cache", "error", err, "organizationID", orgID)
	}
}

// InvalidateOrganization drops every cached answer about orgID.
func (s *CacheService) InvalidateOrganization(ctx context.Context, orgID uuid.UUID) {
	if s == nil {
		return
	}
	if err := s.store.Delete(ctx, activeSubscriptionKey(orgID)); err != nil {
		s.logger.WarnContext(ctx, "invalidating subscription cache", "error", err, "organizationID", orgID)
	}
}

// EventProcessed reports whether a webhook event was already applied.
func (s *CacheService) EventProcessed(ctx context.Context, eventID string) bool {
	if s == nil || eventID == "" {
		return false
	}
	ok, err := s.store.Exists(ctx, processedEventKey(eventID))
	if err != nil {
		s.logger.WarnContext(ctx, "reading processed events", "error", err, "eventID", eventID)
		return false
	}
	return ok
}

func (s *CacheService) MarkEventProcessed(ctx context.Context, eventID string) {
	if s == nil || eventID == "" {
		return
	}
	if err := s.store.Set(ctx, processedEventKey(eventID), time.Now().UTC(), processedEventTTL); err != nil {
		s.logger.WarnContext(ctx, "recording processed event", "error", err, "eventID", eventID)
	}
}
