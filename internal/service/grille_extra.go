// internal/service/grille_extra.go
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

type GrilleExtraInput struct {
	Type         model.GrilleExtraType `json:"type" validate:"required,oneof=management seniority"`
	Label        string                `json:"label" validate:"required,max=200"`
	AnnualAmount decimal.Decimal       `json:"annual_amount"`
	DepartmentID *uuid.UUID            `json:"department_id"`
}

// GrilleExtraService manages management and seniority supplements. Each
// type has its own display order sequence, so the type is fixed once the
// row exists.
type GrilleExtraService struct {
	repo     repository.GrilleExtraRepositoryIface
	deptRepo repository.DepartmentRepositoryIface
	validate *validator.Validate
}

func NewGrilleExtraService(repo repository.GrilleExtraRepositoryIface, deptRepo repository.DepartmentRepositoryIface) *GrilleExtraService {
	return &GrilleExtraService{
		repo:     repo,
		deptRepo: deptRepo,
		validate: validator.New(),
	}
}

// ParseGrilleExtraType validates a type filter. The empty string means no
// filter.
func ParseGrilleExtraType(s string) (*model.GrilleExtraType, error) {
	switch t := model.GrilleExtraType(strings.TrimSpace(s)); t {
	case "":
		return nil, nil
	case model.GrilleExtraManagement, model.GrilleExtraSeniority:
		return &t, nil
	default:
		return nil, fmt.Errorf("unknown grille extra type %q: %w", s, domain.ErrInvalidInput)
	}
}

func (s *GrilleExtraService) List(ctx context.Context, orgID uuid.UUID, extraType *model.GrilleExtraType) ([]model.GrilleExtra, error) {
	return s.repo.List(ctx, orgID, extraType)
}

func (s *GrilleExtraService) Create(ctx context.Context, orgID uuid.UUID, input GrilleExtraInput) (*model.GrilleExtra, error) {
	if err := s.check(ctx, orgID, &input); err != nil {
		return nil, err
	}

	extra := &model.GrilleExtra{
		OrganizationID: orgID,
		DepartmentID:   input.DepartmentID,
		Type:           input.Type,
		Label:          input.Label,
		AnnualAmount:   input.AnnualAmount,
	}
	if err := s.repo.Create(ctx, extra); err != nil {
		return nil, err
	}
	return extra, nil
}

func (s *GrilleExtraService) Update(ctx context.Context, orgID, id uuid.UUID, input GrilleExtraInput) (*model.GrilleExtra, error) {
	if err := s.check(ctx, orgID, &input); err != nil {
		return nil, err
	}

	extra, err := s.repo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if extra.Type != input.Type {
		return nil, fmt.Errorf("grille extra type cannot change: %w", domain.ErrInvalidInput)
	}

	extra.Label = input.Label
	extra.AnnualAmount = input.AnnualAmount
	extra.DepartmentID = input.DepartmentID
	if err := s.repo.Update(ctx, extra); err != nil {
		return nil, err
	}
	return extra, nil
}

func (s *GrilleExtraService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.repo.Delete(ctx, orgID, id)
}

func (s *GrilleExtraService) check(ctx context.Context, orgID uuid.UUID, input *GrilleExtraInput) error {
	input.Label = strings.TrimSpace(input.Label)
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if input.AnnualAmount.IsNegative() {
		return fmt.Errorf("annual amount must not be negative: %w", domain.ErrInvalidInput)
	}
	return ensureDepartment(ctx, s.deptRepo, orgID, input.DepartmentID)
}
