// internal/service/access.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/leafthq/leaft/internal/auth"
	"github.com/leafthq/leaft/internal/domain"
	"github.com/leafthq/leaft/internal/metrics"
	"github.com/leafthq/leaft/internal/model"
	"github.com/leafthq/leaft/internal/repository"
)

// Gate decisions.
const (
	DecisionAdmit      = "admit"
	DecisionSignIn     = "redirect_sign_in"
	DecisionOnboarding = "redirect_onboarding"
	DecisionError      = "error"
)

// Gate reasons. They are logged and counted; they never change the
// redirect target.
const (
	ReasonUnauthenticated      = "unauthenticated"
	ReasonOrganizationNotFound = "organization_not_found"
	ReasonNoSubscription       = "no_subscription"
	ReasonCheckoutPending      = "checkout_pending"
	ReasonActive               = "active"
	ReasonLookupFailed         = "lookup_failed"
)

// checkoutSessionPrefix marks Stripe checkout session ids.
const checkoutSessionPrefix = "cs_"

// IsCheckoutSessionID reports whether id looks like a Stripe checkout
// session id.
func IsCheckoutSessionID(id string) bool {
	return strings.HasPrefix(strings.TrimSpace(id), checkoutSessionPrefix)
}

// AccessRequest is what the gate knows about an incoming request.
type AccessRequest struct {
	Session *auth.Session
	// CheckoutSessionID is the session_id query parameter Stripe appends to
	// the success URL.
	CheckoutSessionID string
}

type Decision struct {
	Decision       string
	Reason         string
	OrganizationID uuid.UUID
	Err            error
}

func (d Decision) Admitted() bool {
	return d.Decision == DecisionAdmit
}

// AccessService answers whether a session may use the product.
type AccessService struct {
	resolver *OrganizationResolver
	subRepo  repository.SubscriptionRepositoryIface
	cache    *CacheService
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewAccessService(
	resolver *OrganizationResolver,
	subRepo repository.SubscriptionRepositoryIface,
	cache *CacheService,
	m *metrics.Metrics,
	logger *slog.Logger,
) *AccessService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccessService{
		resolver: resolver,
		subRepo:  subRepo,
		cache:    cache,
		metrics:  m,
		logger:   logger,
	}
}

// HasActiveSubscription evaluates the active predicate for orgID, reading
// through the short-lived cache. Only a positive answer is cached, so a
// completed checkout is visible on the next read.
func (s *AccessService) HasActiveSubscription(ctx context.Context, orgID uuid.UUID) (bool, error) {
	if active, found := s.cache.ActiveSubscription(ctx, orgID); found && active {
		return true, nil
	}

	active, err := s.subRepo.HasActive(ctx, orgID)
	if err != nil {
		return false, err
	}
	if active {
		s.cache.SetActiveSubscription(ctx, orgID, true)
	}
	return active, nil
}

// Evaluate walks the gate state machine: unauthenticated, no organization,
// no active subscription, active. A pending checkout is admitted once the
// organization resolves.
func (s *AccessService) Evaluate(ctx context.Context, req AccessRequest) Decision {
	d := s.evaluate(ctx, req)
	s.metrics.GateDecision(d.Decision, d.Reason)

	if d.Err != nil {
		s.logger.ErrorContext(ctx, "access gate lookup failed", "error", d.Err, "reason", d.Reason)
	} else if !d.Admitted() || d.Reason == ReasonCheckoutPending {
		s.logger.InfoContext(ctx, "access gate", "decision", d.Decision, "reason", d.Reason)
	}
	return d
}

func (s *AccessService) evaluate(ctx context.Context, req AccessRequest) Decision {
	if req.Session == nil || req.Session.UserID == "" {
		return Decision{Decision: DecisionSignIn, Reason: ReasonUnauthenticated}
	}

	orgID, err := s.resolver.Resolve(ctx, req.Session.UserID, req.Session.OrgRef)
	if err != nil {
		if errors.Is(err, domain.ErrOrganizationNotFound) {
			return Decision{Decision: DecisionOnboarding, Reason: ReasonOrganizationNotFound}
		}
		return Decision{Decision: DecisionError, Reason: ReasonLookupFailed, Err: err}
	}

	if IsCheckoutSessionID(req.CheckoutSessionID) {
		return Decision{Decision: DecisionAdmit, Reason: ReasonCheckoutPending, OrganizationID: orgID}
	}

	active, err := s.HasActiveSubscription(ctx, orgID)
	if err != nil {
		return Decision{Decision: DecisionError, Reason: ReasonLookupFailed, OrganizationID: orgID, Err: err}
	}
	if !active {
		return Decision{Decision: DecisionOnboarding, Reason: ReasonNoSubscription, OrganizationID: orgID}
	}
	return Decision{Decision: DecisionAdmit, Reason: ReasonActive, OrganizationID: orgID}
}

// OnboardingStatus reports how far the session got through onboarding.
func (s *AccessService) OnboardingStatus(ctx context.Context, sess auth.Session) (*model.OnboardingStatus, error) {
	orgID, err := s.resolver.Resolve(ctx, sess.UserID, sess.OrgRef)
	if err != nil {
		if errors.Is(err, domain.ErrOrganizationNotFound) {
			return &model.OnboardingStatus{}, nil
		}
		return nil, fmt.Errorf("resolving organization: %w", err)
	}

	active, err := s.HasActiveSubscription(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("checking subscription: %w", err)
	}

	return &model.OnboardingStatus{
		HasOrganization:       true,
		HasActiveSubscription: active,
		OrganizationID:        &orgID,
	}, nil
}
