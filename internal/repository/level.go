// internal/repository/level.go
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

// LevelFilter narrows a level listing to one parent. Both fields nil lists
// every level of the organization.
type LevelFilter struct {
	JobFamilyID  *uuid.UUID
	DepartmentID *uuid.UUID
}

type LevelRepositoryIface interface {
	List(ctx context.Context, orgID uuid.UUID, filter LevelFilter) ([]model.Level, error)
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Level, error)
	Create(ctx context.Context, level *model.Level) error
	Update(ctx context.Context, level *model.Level) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type LevelRepository struct {
	db *gorm.DB
}

func NewLevelRepository(db *gorm.DB) *LevelRepository {
	return &LevelRepository{db: db}
}

// levelTenant restricts a query to levels whose parent job family or
// department belongs to orgID. Levels carry no organization column.
func levelTenant(orgID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"(levels.job_family_id IN (SELECT id FROM job_families WHERE organization_id = ?) OR levels.department_id IN (SELECT id FROM departments WHERE organization_id = ?))",
			orgID, orgID,
		)
	}
}

func (r *LevelRepository) List(ctx context.Context, orgID uuid.UUID, filter LevelFilter) ([]model.Level, error) {
	query := r.db.WithContext(ctx).Scopes(levelTenant(orgID))
	if filter.JobFamilyID != nil {
		query = query.Where("levels.job_family_id = ?", *filter.JobFamilyID)
	}
	if filter.DepartmentID != nil {
		query = query.Where("levels.department_id = ?", *filter.DepartmentID)
	}

	var levels []model.Level
	if err := query.Order("display_order ASC").Order("name ASC").Find(&levels).Error; err != nil {
		return nil, fmt.Errorf("listing levels: %w", err)
	}
	return levels, nil
}

func (r *LevelRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Level, error) {
	var level model.Level
	err := r.db.WithContext(ctx).Scopes(levelTenant(orgID)).First(&level, "levels.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLevelNotFound
		}
		return nil, fmt.Errorf("finding level: %w", err)
	}
	return &level, nil
}

func (r *LevelRepository) Create(ctx context.Context, level *model.Level) error {
	if err := r.db.WithContext(ctx).Create(level).Error; err != nil {
		return fmt.Errorf("creating level: %w", translateError(err))
	}
	return nil
}

func (r *LevelRepository) Update(ctx context.Context, level *model.Level) error {
	if err := r.db.WithContext(ctx).Save(level).Error; err != nil {
		return fmt.Errorf("updating level: %w", translateError(err))
	}
	return nil
}

func (r *LevelRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Scopes(levelTenant(orgID)).Where("levels.id = ?", id).Delete(&model.Level{})
	if result.Error != nil {
		return fmt.Errorf("deleting level: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrLevelNotFound
	}
	return nil
}
