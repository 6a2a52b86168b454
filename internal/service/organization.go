// internal/service/organization.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/leafthq/leaft/internal/auth"
	"github.com/leafthq/leaft/internal/domain"
	"github.com/leafthq/leaft/internal/model"
	"github.com/leafthq/leaft/internal/repository"
)

//go:generate mockgen -typed -source=./organization.go -destination=../mocks/mock_notifier.go -package=mocks Notifier

// Notifier sends the transactional emails. A nil Notifier disables email.
type Notifier interface {
	SendWelcome(ctx context.Context, to, organizationName string) error
	SendSubscriptionConfirmed(ctx context.Context, to string, summary model.SubscriptionSummary) error
}

type CreateOrganizationInput struct {
	Name string `json:"name" validate:"required,max=200"`
}

type UpdateOrganizationInput struct {
	Name                      *string `json:"name" validate:"omitempty,min=1,max=200"`
	SalaryTransparencyEnabled *bool   `json:"salary_transparency_enabled"`
}

type OrganizationService struct {
	orgRepo  repository.OrganizationRepositoryIface
	resolver *OrganizationResolver
	notifier Notifier
	validate *validator.Validate
	logger   *slog.Logger
}

func NewOrganizationService(
	orgRepo repository.OrganizationRepositoryIface,
	resolver *OrganizationResolver,
	notifier Notifier,
	logger *slog.Logger,
) *OrganizationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrganizationService{
		orgRepo:  orgRepo,
		resolver: resolver,
		notifier: notifier,
		validate: validator.New(),
		logger:   logger,
	}
}

// CreateForOwner creates the session's organization and makes the caller
// its Owner. When the session already resolves to an organization that one
// is returned and created is false.
func (s *OrganizationService) CreateForOwner(ctx context.Context, sess auth.Session, input CreateOrganizationInput) (org *model.Organization, created bool, err error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Struct(input); err != nil {
		return nil, false, fmt.Errorf("validation failed: %w", err)
	}

	if existing, err := s.existing(ctx, sess); err != nil || existing != nil {
		return existing, false, err
	}

	org = &model.Organization{Name: input.Name}
	if ref := strings.TrimSpace(sess.OrgRef); ref != "" {
		org.ExternalOrgID = &ref
	}

	if err := s.orgRepo.CreateWithOwner(ctx, org, sess.UserID); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// A concurrent request for the same reference won the insert.
			if existing, lookupErr := s.existing(ctx, sess); lookupErr == nil && existing != nil {
				return existing, false, nil
			}
		}
		return nil, false, fmt.Errorf("creating organization: %w", err)
	}

	s.logger.InfoContext(ctx, "organization created", "organizationID", org.ID, "userID", sess.UserID)

	if s.notifier != nil && sess.Email != "" {
		if err := s.notifier.SendWelcome(ctx, sess.Email, org.Name); err != nil {
			s.logger.WarnContext(ctx, "sending welcome email", "error", err, "organizationID", org.ID)
		}
	}

	return org, true, nil
}

func (s *OrganizationService) existing(ctx context.Context, sess auth.Session) (*model.Organization, error) {
	orgID, err := s.resolver.Resolve(ctx, sess.UserID, sess.OrgRef)
	if err != nil {
		if errors.Is(err, domain.ErrOrganizationNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.orgRepo.FindByID(ctx, orgID)
}

func (s *OrganizationService) Get(ctx context.Context, orgID uuid.UUID) (*model.Organization, error) {
	return s.orgRepo.FindByID(ctx, orgID)
}

// UpdateSettings applies the fields present in input.
func (s *OrganizationService) UpdateSettings(ctx context.Context, orgID uuid.UUID, input UpdateOrganizationInput) (*model.Organization, error) {
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		input.Name = &trimmed
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		org.Name = *input.Name
	}
	if input.SalaryTransparencyEnabled != nil {
		org.SalaryTransparencyEnabled = *input.SalaryTransparencyEnabled
	}

	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}
