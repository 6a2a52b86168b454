// internal/repository/job_family.go
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

type JobFamilyRepositoryIface interface {
	List(ctx context.Context, orgID uuid.UUID) ([]model.JobFamily, error)
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.JobFamily, error)
	Create(ctx context.Context, family *model.JobFamily) error
	Update(ctx context.Context, family *model.JobFamily) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type JobFamilyRepository struct {
	db *gorm.DB
}

func NewJobFamilyRepository(db *gorm.DB) *JobFamilyRepository {
	return &JobFamilyRepository{db: db}
}

func (r *JobFamilyRepository) List(ctx context.Context, orgID uuid.UUID) ([]model.JobFamily, error) {
	var families []model.JobFamily
	if err := r.db.WithContext(ctx).Where("organization_id = ?", orgID).Order("name ASC").Find(&families).Error; err != nil {
		return nil, fmt.Errorf("listing job families: %w", err)
	}
	return families, nil
}

func (r *JobFamilyRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.JobFamily, error) {
	var family model.JobFamily
	err := r.db.WithContext(ctx).First(&family, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrJobFamilyNotFound
		}
		return nil, fmt.Errorf("finding job family: %w", err)
	}
	return &family, nil
}

func (r *JobFamilyRepository) Create(ctx context.Context, family *model.JobFamily) error {
	if err := r.db.WithContext(ctx).Create(family).Error; err != nil {
		return fmt.Errorf("creating job family: %w", translateError(err))
	}
	return nil
}

func (r *JobFamilyRepository) Update(ctx context.Context, family *model.JobFamily) error {
	if err := r.db.WithContext(ctx).Save(family).Error; err != nil {
		return fmt.Errorf("updating job family: %w", translateError(err))
	}
	return nil
}

func (r *JobFamilyRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND organization_id = ?", id, orgID).Delete(&model.JobFamily{})
	if result.Error != nil {
		return fmt.Errorf("deleting job family: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrJobFamilyNotFound
	}
	return nil
}
