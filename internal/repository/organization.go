// internal/repository/organization.go
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

type OrganizationRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	FindByExternalID(ctx context.Context, externalOrgID string) (*model.Organization, error)
	CreateWithOwner(ctx context.Context, org *model.Organization, userID string) error
	EnsureExists(ctx context.Context, org *model.Organization) error
	Update(ctx context.Context, org *model.Organization) error
	SetStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) error
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

func (r *OrganizationRepository) FindByExternalID(ctx context.Context, externalOrgID string) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).First(&org, "external_org_id = ?", externalOrgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

// CreateWithOwner inserts the organization and the Owner membership of
// userID in one transaction. The membership insert is a no-op when the pair
// already exists.
func (r *OrganizationRepository) CreateWithOwner(ctx context.Context, org *model.Organization, userID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return fmt.Errorf("creating organization: %w", translateError(err))
		}

		membership := &model.UserOrganization{
			UserID:         userID,
			OrganizationID: org.ID,
			Role:           model.RoleOwner,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "organization_id"}},
			DoNothing: true,
		}).Create(membership).Error; err != nil {
			return fmt.Errorf("creating owner membership: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// EnsureExists inserts org unless a row with its id is already present.
// Subscriptions can reach the database before onboarding finished writing
// the organization.
func (r *OrganizationRepository) EnsureExists(ctx context.Context, org *model.Organization) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(org).Error
	if err != nil {
		return fmt.Errorf("ensuring organization: %w", translateError(err))
	}
	return nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org *model.Organization) error {
	if err := r.db.WithContext(ctx).Save(org).Error; err != nil {
		return fmt.Errorf("updating organization: %w", translateError(err))
	}
	return nil
}

// SetStripeCustomerID back-fills the billing customer reference. An already
// recorded customer is never overwritten.
func (r *OrganizationRepository) SetStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Organization{}).
		Where("id = ? AND (stripe_customer_id IS NULL OR stripe_customer_id = '')", id).
		Update("stripe_customer_id", customerID)
	if result.Error != nil {
		return fmt.Errorf("setting stripe customer: %w", result.Error)
	}
	return nil
}
