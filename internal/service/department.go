// internal/service/department.go
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

type DepartmentInput struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type DepartmentService struct {
	repo     repository.DepartmentRepositoryIface
	validate *validator.Validate
}

func NewDepartmentService(repo repository.DepartmentRepositoryIface) *DepartmentService {
	return &DepartmentService{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *DepartmentService) List(ctx context.Context, orgID uuid.UUID) ([]model.Department, error) {
	return s.repo.List(ctx, orgID)
}

func (s *DepartmentService) Create(ctx context.Context, orgID uuid.UUID, input DepartmentInput) (*model.Department, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	dept := &model.Department{
		OrganizationID: orgID,
		Name:           input.Name,
		Description:    input.Description,
	}
	if err := s.repo.Create(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

func (s *DepartmentService) Update(ctx context.Context, orgID, id uuid.UUID, input DepartmentInput) (*model.Department, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	dept, err := s.repo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	dept.Name = input.Name
	dept.Description = input.Description
	if err := s.repo.Update(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

func (s *DepartmentService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.repo.Delete(ctx, orgID, id)
}
