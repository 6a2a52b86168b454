// internal/service/level.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/leafthq/leaft/internal/domain"
	"github.com/leafthq/leaft/internal/model"
	"github.com/leafthq/leaft/internal/repository"
	"github.com/shopspring/decimal"
)

// LevelInput describes a level. Exactly one of JobFamilyID and DepartmentID
// is set.
type LevelInput struct {
	Name         string              `json:"name" validate:"required,max=200"`
	JobFamilyID  *uuid.UUID          `json:"job_family_id"`
	DepartmentID *uuid.UUID          `json:"department_id"`
	Order        int                 `json:"order" validate:"min=0"`
	MinSalary    decimal.NullDecimal `json:"min_salary"`
	MidSalary    decimal.NullDecimal `json:"mid_salary"`
	MaxSalary    decimal.NullDecimal `json:"max_salary"`
}

type LevelService struct {
	repo       repository.LevelRepositoryIface
	familyRepo repository.JobFamilyRepositoryIface
	deptRepo   repository.DepartmentRepositoryIface
	validate   *validator.Validate
}

func NewLevelService(
	repo repository.LevelRepositoryIface,
	familyRepo repository.JobFamilyRepositoryIface,
	deptRepo repository.DepartmentRepositoryIface,
) *LevelService {
	return &LevelService{
		repo:       repo,
		familyRepo: familyRepo,
		deptRepo:   deptRepo,
		validate:   validator.New(),
	}
}

// List returns the organization's levels, optionally narrowed to one
// parent. A foreign parent yields its not-found error rather than an empty
// list.
func (s *LevelService) List(ctx context.Context, orgID uuid.UUID, filter repository.LevelFilter) ([]model.Level, error) {
	if filter.JobFamilyID != nil {
		if _, err := s.familyRepo.FindByID(ctx, orgID, *filter.JobFamilyID); err != nil {
			return nil, err
		}
	}
	if err := ensureDepartment(ctx, s.deptRepo, orgID, filter.DepartmentID); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, orgID, filter)
}

func (s *LevelService) Create(ctx context.Context, orgID uuid.UUID, input LevelInput) (*model.Level, error) {
	if err := s.check(ctx, orgID, &input); err != nil {
		return nil, err
	}

	level := &model.Level{}
	applyLevelInput(level, input)
	if err := s.repo.Create(ctx, level); err != nil {
		return nil, err
	}
	return level, nil
}

func (s *LevelService) Update(ctx context.Context, orgID, id uuid.UUID, input LevelInput) (*model.Level, error) {
	if err := s.check(ctx, orgID, &input); err != nil {
		return nil, err
	}

	level, err := s.repo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	applyLevelInput(level, input)
	if err := s.repo.Update(ctx, level); err != nil {
		return nil, err
	}
	return level, nil
}

func (s *LevelService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.repo.Delete(ctx, orgID, id)
}

func applyLevelInput(level *model.Level, input LevelInput) {
	level.Name = input.Name
	level.JobFamilyID = input.JobFamilyID
	level.DepartmentID = input.DepartmentID
	level.Order = input.Order
	level.MinSalary = input.MinSalary
	level.MidSalary = input.MidSalary
	level.MaxSalary = input.MaxSalary
}

func (s *LevelService) check(ctx context.Context, orgID uuid.UUID, input *LevelInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if (input.JobFamilyID == nil) == (input.DepartmentID == nil) {
		return domain.ErrInvalidLevelParent
	}
	if err := checkSalaryBounds(input.MinSalary, input.MidSalary, input.MaxSalary); err != nil {
		return err
	}

	if input.JobFamilyID != nil {
		if _, err := s.familyRepo.FindByID(ctx, orgID, *input.JobFamilyID); err != nil {
			return err
		}
		return nil
	}
	return ensureDepartment(ctx, s.deptRepo, orgID, input.DepartmentID)
}

// checkSalaryBounds requires non-negative bounds ordered min <= mid <= max.
// Absent bounds are skipped.
func checkSalaryBounds(bounds ...decimal.NullDecimal) error {
	var prev *decimal.Decimal
	for i := range bounds {
		if !bounds[i].Valid {
			continue
		}
		v := bounds[i].Decimal
		if v.IsNegative() {
			return domain.ErrInvalidSalaryBounds
		}
		if prev != nil && v.LessThan(*prev) {
			return domain.ErrInvalidSalaryBounds
		}
		prev = &v
	}
	return nil
}
