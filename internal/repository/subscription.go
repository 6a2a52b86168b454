// internal/repository/subscription.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/leafthq/leaft/internal/domain"
	"github.com/leafthq/leaft/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepositoryIface interface {
	Upsert(ctx context.Context, sub *model.Subscription) (*model.Subscription, error)
	FindByStripeID(ctx context.Context, stripeSubscriptionID string) (*model.Subscription, error)
	HasActive(ctx context.Context, orgID uuid.UUID) (bool, error)
	FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Subscription, int64, error)
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// upsertColumns are rewritten when a snapshot for a known subscription id is
// applied again. organization_id is deliberately absent: a subscription never
// moves between tenants.
var upsertColumns = []string{
	"stripe_customer_id",
	"status",
	"plan_type",
	"seat_count",
	"current_period_start",
	"current_period_end",
	"cancel_at_period_end",
	"canceled_at",
	"updated_at",
}

// Upsert writes the snapshot in a single INSERT ... ON CONFLICT statement keyed
// by stripe_subscription_id and returns the stored row.
func (r *SubscriptionRepository) Upsert(ctx context.Context, sub *model.Subscription) (*model.Subscription, error) {
	db := r.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "stripe_subscription_id"}},
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}).Create(sub).Error
	if err != nil {
		return nil, fmt.Errorf("upserting subscription: %w", err)
	}

	return r.FindByStripeID(ctx, sub.StripeSubscriptionID)
}

func (r *SubscriptionRepository) FindByStripeID(ctx context.Context, stripeSubscriptionID string) (*model.Subscription, error) {
	var sub model.Subscription
	if err := r.db.WithContext(ctx).First(&sub, "stripe_subscription_id = ?", stripeSubscriptionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("finding subscription: %w", err)
	}
	return &sub, nil
}

// HasActive reports whether the organization has at least one subscription
// whose status is in model.ActiveSubscriptionStatuses.
func (r *SubscriptionRepository) HasActive(ctx context.Context, orgID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Subscription{}).
		Where("organization_id = ? AND status IN ?", orgID, model.ActiveSubscriptionStatuses).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking active subscription: %w", err)
	}
	return count > 0, nil
}

// FindAllPaginated returns a page of subscriptions ordered by creation time.
func (r *SubscriptionRepository) FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Subscription, int64, error) {
	var subs []*model.Subscription
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.Subscription{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	result := r.db.WithContext(ctx).Order("created_at ASC").Offset(offset).Limit(limit).Find(&subs)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated subscriptions: %w", result.Error)
	}

	return subs, count, nil
}
