// internal/model/subscription.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanType string

const (
	PlanMonthly PlanType = "monthly"
	PlanAnnual  PlanType = "annual"
)

// Subscription statuses as reported by Stripe. They are stored verbatim.
const (
	SubscriptionStatusActive            = "active"
	SubscriptionStatusTrialing          = "trialing"
	SubscriptionStatusPastDue           = "past_due"
	SubscriptionStatusCanceled          = "canceled"
	SubscriptionStatusUnpaid            = "unpaid"
	SubscriptionStatusIncomplete        = "incomplete"
	SubscriptionStatusIncompleteExpired = "incomplete_expired"
	SubscriptionStatusPaused            = "paused"
)

// ActiveSubscriptionStatuses is the set of statuses granting access.
var ActiveSubscriptionStatuses = []string{
	SubscriptionStatusActive,
	SubscriptionStatusTrialing,
}

// IsActiveStatus reports whether status grants access to the product.
func IsActiveStatus(status string) bool {
	for _, s := range ActiveSubscriptionStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Subscription struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"organization_id"`
	StripeSubscriptionID string     `gorm:"type:text;not null;uniqueIndex" json:"stripe_subscription_id"`
	StripeCustomerID     string     `gorm:"type:text;not null" json:"stripe_customer_id"`
	Status               string     `gorm:"type:text;not null" json:"status"`
	PlanType             PlanType   `gorm:"type:text;not null;default:monthly" json:"plan_type"`
	SeatCount            int        `gorm:"not null;default:0" json:"seat_count"`
	CurrentPeriodStart   time.Time  `gorm:"not null" json:"current_period_start"`
	CurrentPeriodEnd     time.Time  `gorm:"not null" json:"current_period_end"`
	CancelAtPeriodEnd    bool       `gorm:"not null;default:false" json:"cancel_at_period_end"`
	CanceledAt           *time.Time `json:"canceled_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SubscriptionSummary is the projection returned to the client after a sync.
type SubscriptionSummary struct {
	Status            string    `json:"status"`
	PlanType          PlanType  `json:"plan_type"`
	SeatCount         int       `json:"seat_count"`
	CurrentPeriodEnd  time.Time `json:"current_period_end"`
	CancelAtPeriodEnd bool      `json:"cancel_at_period_end"`
	Active            bool      `json:"active"`
}

func (s *Subscription) Summary() SubscriptionSummary {
	return SubscriptionSummary{
		Status:            s.Status,
		PlanType:          s.PlanType,
		SeatCount:         s.SeatCount,
		CurrentPeriodEnd:  s.CurrentPeriodEnd,
		CancelAtPeriodEnd: s.CancelAtPeriodEnd,
		Active:            IsActiveStatus(s.Status),
	}
}

// OnboardingStatus answers the onboarding check endpoint.
type OnboardingStatus struct {
	HasOrganization       bool       `json:"has_organization"`
	HasActiveSubscription bool       `json:"has_active_subscription"`
	OrganizationID        *uuid.UUID `json:"organization_id,omitempty"`
}
