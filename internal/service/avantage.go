// internal/service/avantage.go
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

type AvantageInput struct {
	Name         string          `json:"name" validate:"required,max=200"`
	Description  *string         `json:"description" validate:"omitempty,max=2000"`
	AnnualAmount decimal.Decimal `json:"annual_amount"`
	DepartmentID *uuid.UUID      `json:"department_id"`
}

// AvantageService manages benefits in kind. Display order is assigned on
// creation and never changes afterwards.
type AvantageService struct {
	repo     repository.AvantageRepositoryIface
	deptRepo repository.DepartmentRepositoryIface
	validate *validator.Validate
}

func NewAvantageService(repo repository.AvantageRepositoryIface, deptRepo repository.DepartmentRepositoryIface) *AvantageService {
	return &AvantageService{
		repo:     repo,
		deptRepo: deptRepo,
		validate: validator.New(),
	}
}

func (s *AvantageService) List(ctx context.Context, orgID uuid.UUID) ([]model.Avantage, error) {
	return s.repo.List(ctx, orgID)
}

func (s *AvantageService) Create(ctx context.Context, orgID uuid.UUID, input AvantageInput) (*model.Avantage, error) {
	if err := s.check(ctx, orgID, &input); err != nil {
		return nil, err
	}

	avantage := &model.Avantage{
		OrganizationID: orgID,
		DepartmentID:   input.DepartmentID,
		Name:           input.Name,
		Description:    input.Description,
		AnnualAmount:   input.AnnualAmount,
	}
	if err := s.repo.Create(ctx, avantage); err != nil {
		return nil, err
	}
	return avantage, nil
}

func (s *AvantageService) Update(ctx context.Context, orgID, id uuid.UUID, input AvantageInput) (*model.Avantage, error) {
	if err := s.check(ctx, orgID, &input); err != nil {
		return nil, err
	}

	avantage, err := s.repo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	avantage.Name = input.Name
	avantage.Description = input.Description
	avantage.AnnualAmount = input.AnnualAmount
	avantage.DepartmentID = input.DepartmentID
	if err := s.repo.Update(ctx, avantage); err != nil {
		return nil, err
	}
	return avantage, nil
}

func (s *AvantageService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.repo.Delete(ctx, orgID, id)
}

func (s *AvantageService) check(ctx context.Context, orgID uuid.UUID, input *AvantageInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if input.AnnualAmount.IsNegative() {
		return fmt.Errorf("annual amount must not be negative: %w", domain.ErrInvalidInput)
	}
	return ensureDepartment(ctx, s.deptRepo, orgID, input.DepartmentID)
}
