// internal/service/job_family.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/leafthq/leaft/internal/model"
	"github.com/leafthq/leaft/internal/repository"
)

type JobFamilyInput struct {
	Name         string     `json:"name" validate:"required,max=200"`
	Description  *string    `json:"description" validate:"omitempty,max=2000"`
	DepartmentID *uuid.UUID `json:"department_id"`
}

type JobFamilyService struct {
	repo     repository.JobFamilyRepositoryIface
	deptRepo repository.DepartmentRepositoryIface
	validate *validator.Validate
}

func NewJobFamilyService(repo repository.JobFamilyRepositoryIface, deptRepo repository.DepartmentRepositoryIface) *JobFamilyService {
	return &JobFamilyService{
		repo:     repo,
		deptRepo: deptRepo,
		validate: validator.New(),
	}
}

func (s *JobFamilyService) List(ctx context.Context, orgID uuid.UUID) ([]model.JobFamily, error) {
	return s.repo.List(ctx, orgID)
}

func (s *JobFamilyService) Create(ctx context.Context, orgID uuid.UUID, input JobFamilyInput) (*model.JobFamily, error) {
	if err := s.check(ctx, orgID, &input); err != nil {
		return nil, err
	}

	family := &model.JobFamily{
		OrganizationID: orgID,
		DepartmentID:   input.DepartmentID,
		Name:           input.Name,
		Description:    input.Description,
	}
	if err := s.repo.Create(ctx, family); err != nil {
		return nil, err
	}
	return family, nil
}

func (s *JobFamilyService) Update(ctx context.Context, orgID, id uuid.UUID, input JobFamilyInput) (*model.JobFamily, error) {
	if err := s.check(ctx, orgID, &input); err != nil {
		return nil, err
	}

	family, err := s.repo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	family.Name = input.Name
	family.Description = input.Description
	family.DepartmentID = input.DepartmentID
	if err := s.repo.Update(ctx, family); err != nil {
		return nil, err
	}
	return family, nil
}

func (s *JobFamilyService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.repo.Delete(ctx, orgID, id)
}

func (s *JobFamilyService) check(ctx context.Context, orgID uuid.UUID, input *JobFamilyInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return ensureDepartment(ctx, s.deptRepo, orgID, input.DepartmentID)
}

// ensureDepartment checks that an optional department reference belongs to
// orgID. A foreign department is reported as not found.
func ensureDepartment(ctx context.Context, repo repository.DepartmentRepositoryIface, orgID uuid.UUID, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := repo.FindByID(ctx, orgID, *id); err != nil {
		return err
	}
	return nil
}
