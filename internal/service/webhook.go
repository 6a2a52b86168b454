// internal/service/webhook.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leafthq/leaft/internal/billing"
	"github.com/leafthq/leaft/internal/domain"
	"github.com/leafthq/leaft/internal/metrics"
)

// WebhookService applies signed Stripe events.
type WebhookService struct {
	verifier *billing.WebhookVerifier
	sync     *SubscriptionSyncService
	cache    *CacheService
	notifier Notifier
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewWebhookService(
	verifier *billing.WebhookVerifier,
	sync *SubscriptionSyncService,
	cache *CacheService,
	notifier Notifier,
	m *metrics.Metrics,
	logger *slog.Logger,
) *WebhookService {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookService{
		verifier: verifier,
		sync:     sync,
		cache:    cache,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

// Handle verifies and applies one delivery. A nil error means the event was
// applied, was already applied, or is of no interest. Events are remembered
// only once applied, so a failed delivery is retried in full.
func (s *WebhookService) Handle(ctx context.Context, payload []byte, signature string) error {
	event, err := s.verifier.ConstructEvent(payload, signature)
	switch {
	case errors.Is(err, domain.ErrInvalidSignature):
		s.metrics.WebhookEvent("unknown", "invalid_signature")
		return err
	case err != nil:
		s.metrics.WebhookEvent("unknown", "invalid_payload")
		return err
	}

	if s.cache.EventProcessed(ctx, event.ID) {
		s.metrics.WebhookEvent(event.Type, metrics.OutcomeDuplicate)
		s.logger.InfoContext(ctx, "webhook event already processed", "eventID", event.ID, "type", event.Type)
		return nil
	}

	err = s.dispatch(ctx, event)
	switch {
	case errors.Is(err, domain.ErrEventIgnored):
		s.metrics.WebhookEvent(event.Type, metrics.OutcomeIgnored)
		return nil
	case err != nil:
		s.metrics.WebhookEvent(event.Type, metrics.OutcomeError)
		s.logger.ErrorContext(ctx, "processing webhook event", "error", err, "eventID", event.ID, "type", event.Type)
		return fmt.Errorf("processing event %s: %w", event.ID, err)
	}

	s.cache.MarkEventProcessed(ctx, event.ID)
	s.metrics.WebhookEvent(event.Type, metrics.OutcomeSuccess)
	return nil
}

func (s *WebhookService) dispatch(ctx context.Context, event *billing.Event) error {
	switch event.Type {
	case billing.EventCheckoutSessionCompleted:
		return s.checkoutCompleted(ctx, event)
	case billing.EventSubscriptionCreated, billing.EventSubscriptionUpdated, billing.EventSubscriptionDeleted:
		sub, err := event.Subscription()
		if err != nil {
			return err
		}
		_, err = s.sync.Sync(ctx, sub, SyncSourceWebhook)
		return err
	default:
		return domain.ErrEventIgnored
	}
}

func (s *WebhookService) checkoutCompleted(ctx context.Context, event *billing.Event) error {
	session, err := event.CheckoutSession()
	if err != nil {
		return err
	}
	if session.Mode != "" && session.Mode != "subscription" {
		return domain.ErrEventIgnored
	}
	if session.Subscription.ID == "" {
		return domain.ErrCheckoutSessionNoSubscription
	}

	stored, err := s.sync.SyncByID(ctx, session.Subscription.ID, SyncSourceWebhook)
	if err != nil {
		return err
	}

	if to := session.Email(); to != "" && s.notifier != nil {
		if err := s.notifier.SendSubscriptionConfirmed(ctx, to, stored.Summary()); err != nil {
			s.logger.WarnContext(ctx, "sending subscription confirmation", "error", err, "organizationID", stored.OrganizationID)
		}
	}
	return nil
}
