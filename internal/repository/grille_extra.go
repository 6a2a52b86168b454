// internal/repository/grille_extra.go
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

type GrilleExtraRepositoryIface interface {
	List(ctx context.Context, orgID uuid.UUID, extraType *model.GrilleExtraType) ([]model.GrilleExtra, error)
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.GrilleExtra, error)
	Create(ctx context.Context, extra *model.GrilleExtra) error
	Update(ctx context.Context, extra *model.GrilleExtra) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type GrilleExtraRepository struct {
	db *gorm.DB
}

func NewGrilleExtraRepository(db *gorm.DB) *GrilleExtraRepository {
	return &GrilleExtraRepository{db: db}
}

func (r *GrilleExtraRepository) List(ctx context.Context, orgID uuid.UUID, extraType *model.GrilleExtraType) ([]model.GrilleExtra, error) {
	query := r.db.WithContext(ctx).Where("organization_id = ?", orgID)
	if extraType != nil {
		query = query.Where("type = ?", *extraType)
	}

	var extras []model.GrilleExtra
	if err := query.Order("type ASC").Order("display_order ASC").Find(&extras).Error; err != nil {
		return nil, fmt.Errorf("listing grille extras: %w", err)
	}
	return extras, nil
}

func (r *GrilleExtraRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.GrilleExtra, error) {
	var extra model.GrilleExtra
	err := r.db.WithContext(ctx).First(&extra, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGrilleExtraNotFound
		}
		return nil, fmt.Errorf("finding grille extra: %w", err)
	}
	return &extra, nil
}

// Create assigns the next display order of the (organization, type)
// sequence and inserts the row in the same transaction.
func (r *GrilleExtraRepository) Create(ctx context.Context, extra *model.GrilleExtra) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scoped := tx.Model(&model.GrilleExtra{}).
			Where("organization_id = ? AND type = ?", extra.OrganizationID, extra.Type)
		order, err := nextOrder(tx, extra.OrganizationID, model.OrderScopeGrilleExtra(extra.Type), scoped)
		if err != nil {
			return err
		}
		extra.Order = order

		if err := tx.Create(extra).Error; err != nil {
			return fmt.Errorf("creating grille extra: %w", translateError(err))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *GrilleExtraRepository) Update(ctx context.Context, extra *model.GrilleExtra) error {
	if err := r.db.WithContext(ctx).Save(extra).Error; err != nil {
		return fmt.Errorf("updating grille extra: %w", translateError(err))
	}
	return nil
}

func (r *GrilleExtraRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND organization_id = ?", id, orgID).Delete(&model.GrilleExtra{})
	if result.Error != nil {
		return fmt.Errorf("deleting grille extra: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrGrilleExtraNotFound
	}
	return nil
}
