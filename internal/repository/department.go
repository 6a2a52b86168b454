// internal/repository/department.go
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

type DepartmentRepositoryIface interface {
	List(ctx context.Context, orgID uuid.UUID) ([]model.Department, error)
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Department, error)
	Create(ctx context.Context, dept *model.Department) error
	Update(ctx context.Context, dept *model.Department) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) List(ctx context.Context, orgID uuid.UUID) ([]model.Department, error) {
	var depts []model.Department
	if err := r.db.WithContext(ctx).Where("organization_id = ?", orgID).Order("name ASC").Find(&depts).Error; err != nil {
		return nil, fmt.Errorf("listing departments: %w", err)
	}
	return depts, nil
}

// FindByID only matches departments of orgID; a department of another
// tenant is reported as not found.
func (r *DepartmentRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Department, error) {
	var dept model.Department
	err := r.db.WithContext(ctx).First(&dept, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("finding department: %w", err)
	}
	return &dept, nil
}

func (r *DepartmentRepository) Create(ctx context.Context, dept *model.Department) error {
	if err := r.db.WithContext(ctx).Create(dept).Error; err != nil {
		return fmt.Errorf("creating department: %w", translateError(err))
	}
	return nil
}

func (r *DepartmentRepository) Update(ctx context.Context, dept *model.Department) error {
	if err := r.db.WithContext(ctx).Save(dept).Error; err != nil {
		return fmt.Errorf("updating department: %w", translateError(err))
	}
	return nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND organization_id = ?", id, orgID).Delete(&model.Department{})
	if result.Error != nil {
		return fmt.Errorf("deleting department: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}
