// internal/service/subscription_sync.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/leafthq/leaft/internal/billing"
	"github.com/leafthq/leaft/internal/domain"
	"github.com/leafthq/leaft/internal/metrics"
	"github.com/leafthq/leaft/internal/model"
	"github.com/leafthq/leaft/internal/pricing"
	"github.com/leafthq/leaft/internal/repository"
)

// SyncSource names what triggered a subscription sync.
type SyncSource string

const (
	SyncSourceWebhook        SyncSource = "webhook"
	SyncSourceVerification   SyncSource = "verification"
	SyncSourceReconciliation SyncSource = "reconciliation"
	SyncSourceManual         SyncSource = "manual"
)

// Metadata keys written on checkout and read back on sync.
const (
	MetadataOrganizationID = "organization_id"
	MetadataSeatCount      = "seat_count"
	MetadataPlanType       = "plan_type"
	MetadataItemType       = "type"

	seatItemType = "talent"
)

const fallbackPeriod = 30 * 24 * time.Hour

// SubscriptionSyncService mirrors Stripe subscriptions into the tenant
// database. It is the only writer of the subscriptions table.
type SubscriptionSyncService struct {
	subRepo repository.SubscriptionRepositoryIface
	orgRepo repository.OrganizationRepositoryIface
	billing billing.API
	cache   *CacheService
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

func NewSubscriptionSyncService(
	subRepo repository.SubscriptionRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	billingAPI billing.API,
	cache *CacheService,
	m *metrics.Metrics,
	logger *slog.Logger,
) *SubscriptionSyncService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubscriptionSyncService{
		subRepo: subRepo,
		orgRepo: orgRepo,
		billing: billingAPI,
		cache:   cache,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// SyncByID fetches the subscription from Stripe and syncs it.
func (s *SubscriptionSyncService) SyncByID(ctx context.Context, subscriptionID string, source SyncSource) (*model.Subscription, error) {
	sub, err := s.billing.GetSubscription(ctx, subscriptionID)
	if err != nil {
		s.metrics.SubscriptionSync(string(source), metrics.OutcomeError)
		return nil, fmt.Errorf("fetching subscription: %w", err)
	}
	return s.Sync(ctx, sub, source)
}

// Sync writes the snapshot sub with a single upsert keyed by the Stripe
// subscription id. Applying the same snapshot twice leaves one row.
func (s *SubscriptionSyncService) Sync(ctx context.Context, sub *billing.Subscription, source SyncSource) (*model.Subscription, error) {
	stored, err := s.sync(ctx, sub)
	if err != nil {
		s.metrics.SubscriptionSync(string(source), metrics.OutcomeError)
		return nil, err
	}
	s.metrics.SubscriptionSync(string(source), metrics.OutcomeSuccess)

	s.logger.InfoContext(ctx, "subscription synced",
		"source", source,
		"subscriptionID", stored.StripeSubscriptionID,
		"organizationID", stored.OrganizationID,
		"status", stored.Status,
		"seatCount", stored.SeatCount,
	)
	return stored, nil
}

func (s *SubscriptionSyncService) sync(ctx context.Context, sub *billing.Subscription) (*model.Subscription, error) {
	if sub == nil || sub.ID == "" {
		return nil, fmt.Errorf("subscription without id: %w", domain.ErrInvalidInput)
	}

	customer, err := s.customer(ctx, sub)
	if err != nil {
		return nil, err
	}

	orgID, err := s.organizationID(sub, customer)
	if err != nil {
		s.logger.ErrorContext(ctx, "cannot attribute subscription to an organization",
			"error", err, "subscriptionID", sub.ID, "customerID", sub.Customer.ID)
		return nil, err
	}

	row := &model.Subscription{
		OrganizationID:       orgID,
		StripeSubscriptionID: sub.ID,
		StripeCustomerID:     sub.Customer.ID,
		Status:               sub.Status,
		PlanType:             planType(sub),
		SeatCount:            s.seatCount(ctx, sub),
		CancelAtPeriodEnd:    sub.CancelAtPeriodEnd,
	}
	row.CurrentPeriodStart, row.CurrentPeriodEnd = s.period(ctx, sub)
	if sub.CanceledAt != nil {
		if at, ok := billing.Unix(*sub.CanceledAt); ok {
			row.CanceledAt = &at
		}
	}

	org := &model.Organization{ID: orgID, Name: organizationName(customer)}
	if err := s.orgRepo.EnsureExists(ctx, org); err != nil {
		return nil, fmt.Errorf("ensuring organization %s: %w", orgID, err)
	}

	stored, err := s.subRepo.Upsert(ctx, row)
	if err != nil {
		return nil, fmt.Errorf("persisting subscription %s: %w", sub.ID, err)
	}

	s.cache.InvalidateOrganization(ctx, orgID)

	if row.StripeCustomerID != "" {
		if err := s.orgRepo.SetStripeCustomerID(ctx, orgID, row.StripeCustomerID); err != nil {
			s.logger.WarnContext(ctx, "back-filling billing customer", "error", err, "organizationID", orgID)
		}
	}

	return stored, nil
}

// customer returns the expanded customer, fetching it only when the
// subscription metadata cannot name the organization on its own.
func (s *SubscriptionSyncService) customer(ctx context.Context, sub *billing.Subscription) (*billing.Customer, error) {
	if sub.Customer.Object != nil {
		return sub.Customer.Object, nil
	}
	if sub.Metadata.Get(MetadataOrganizationID) != "" || sub.Customer.ID == "" {
		return nil, nil
	}

	customer, err := s.billing.GetCustomer(ctx, sub.Customer.ID)
	if err != nil {
		return nil, fmt.Errorf("fetching customer: %w", err)
	}
	return customer, nil
}

func (s *SubscriptionSyncService) organizationID(sub *billing.Subscription, customer *billing.Customer) (uuid.UUID, error) {
	raw := sub.Metadata.Get(MetadataOrganizationID)
	if raw == "" && customer != nil {
		raw = customer.Metadata.Get(MetadataOrganizationID)
	}
	if raw == "" {
		return uuid.Nil, domain.ErrMissingOrganizationMetadata
	}

	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%q: %w", raw, domain.ErrInvalidOrganizationMetadata)
	}
	return id, nil
}

func (s *SubscriptionSyncService) seatCount(ctx context.Context, sub *billing.Subscription) int {
	for _, item := range sub.Items.Data {
		if item.Price.Metadata.Get(MetadataItemType) == seatItemType {
			return item.Quantity
		}
	}

	raw := sub.Metadata.Get(MetadataSeatCount)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		s.logger.WarnContext(ctx, "ignoring malformed seat count metadata", "subscriptionID", sub.ID, "value", raw)
		return 0
	}
	return n
}

func planType(sub *billing.Subscription) model.PlanType {
	plan, err := pricing.ParsePlanType(sub.Metadata.Get(MetadataPlanType))
	if err != nil {
		return model.PlanMonthly
	}
	return plan
}

func (s *SubscriptionSyncService) period(ctx context.Context, sub *billing.Subscription) (time.Time, time.Time) {
	start, okStart := billing.Unix(sub.CurrentPeriodStart)
	end, okEnd := billing.Unix(sub.CurrentPeriodEnd)
	if okStart && okEnd {
		return start, end
	}

	if len(sub.Items.Data) > 0 {
		item := sub.Items.Data[0]
		start, okStart = billing.Unix(item.CurrentPeriodStart)
		end, okEnd = billing.Unix(item.CurrentPeriodEnd)
		if okStart && okEnd {
			return start, end
		}
	}

	now := s.now().UTC()
	s.logger.WarnContext(ctx, "subscription carries no billing period, approximating 30 days", "subscriptionID", sub.ID)
	return now, now.Add(fallbackPeriod)
}

func organizationName(customer *billing.Customer) string {
	if customer != nil && customer.Name != "" {
		return customer.Name
	}
	return "Organization"
}

// IsPermanentSyncError reports whether retrying the sync with the same
// Stripe data can never succeed.
func IsPermanentSyncError(err error) bool {
	return errors.Is(err, domain.ErrMissingOrganizationMetadata) ||
		errors.Is(err, domain.ErrInvalidOrganizationMetadata) ||
		errors.Is(err, domain.ErrInvalidInput) ||
		billing.IsNotFound(err)
}
