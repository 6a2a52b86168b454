// internal/repository/avantage.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/leafthq/leaft/internal/domain"
	"github.com/leafthq/leaft/internal/model"
	"gorm.io/gorm"
)

type AvantageRepositoryIface interface {
	List(ctx context.Context, orgID uuid.UUID) ([]model.Avantage, error)
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Avantage, error)
	Create(ctx context.Context, avantage *model.Avantage) error
	Update(ctx context.Context, avantage *model.Avantage) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type AvantageRepository struct {
	db *gorm.DB
}

func NewAvantageRepository(db *gorm.DB) *AvantageRepository {
	return &AvantageRepository{db: db}
}

func (r *AvantageRepository) List(ctx context.Context, orgID uuid.UUID) ([]model.Avantage, error) {
	var avantages []model.Avantage
	if err := r.db.WithContext(ctx).Where("organization_id = ?", orgID).Order("display_order ASC").Find(&avantages).Error; err != nil {
		return nil, fmt.Errorf("listing avantages: %w", err)
	}
	return avantages, nil
}

func (r *AvantageRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Avantage, error) {
	var avantage model.Avantage
	err := r.db.WithContext(ctx).First(&avantage, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAvantageNotFound
		}
		return nil, fmt.Errorf("finding avantage: %w", err)
	}
	return &avantage, nil
}

// Create assigns the next display order of the organization's avantage
// sequence and inserts the row in the same transaction.
func (r *AvantageRepository) Create(ctx context.Context, avantage *model.Avantage) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scoped := tx.Model(&model.Avantage{}).Where("organization_id = ?", avantage.OrganizationID)
		order, err := nextOrder(tx, avantage.OrganizationID, model.OrderScopeAvantage(), scoped)
		if err != nil {
			return err
		}
		avantage.Order = order

		if err := tx.Create(avantage).Error; err != nil {
			return fmt.Errorf("creating avantage: %w", translateError(err))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *AvantageRepository) Update(ctx context.Context, avantage *model.Avantage) error {
	if err := r.db.WithContext(ctx).Save(avantage).Error; err != nil {
		return fmt.Errorf("updating avantage: %w", translateError(err))
	}
	return nil
}

func (r *AvantageRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND organization_id = ?", id, orgID).Delete(&model.Avantage{})
	if result.Error != nil {
		return fmt.Errorf("deleting avantage: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAvantageNotFound
	}
	return nil
}
