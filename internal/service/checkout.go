// internal/service/checkout.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/leafthq/leaft/internal/auth"
	"github.com/leafthq/leaft/internal/billing"
	"github.com/leafthq/leaft/internal/domain"
	"github.com/leafthq/leaft/internal/model"
	"github.com/leafthq/leaft/internal/pricing"
	"github.com/leafthq/leaft/internal/repository"
)

const productName = "Leaft"

type CheckoutConfig struct {
	Currency        string
	SuccessURL      string
	CancelURL       string
	PortalReturnURL string
}

type CheckoutInput struct {
	SeatCount int    `json:"seat_count" validate:"required,min=1,max=100000"`
	PlanType  string `json:"plan_type" validate:"required,oneof=monthly annual"`
}

type CheckoutResult struct {
	URL       string        `json:"url"`
	SessionID string        `json:"session_id"`
	Quote     pricing.Quote `json:"quote"`
}

// CheckoutService drives the Stripe-hosted checkout and billing portal for
// an organization and confirms completed checkouts.
type CheckoutService struct {
	orgRepo  repository.OrganizationRepositoryIface
	billing  billing.API
	sync     *SubscriptionSyncService
	config   CheckoutConfig
	validate *validator.Validate
	logger   *slog.Logger
}

func NewCheckoutService(
	orgRepo repository.OrganizationRepositoryIface,
	billingAPI billing.API,
	sync *SubscriptionSyncService,
	config CheckoutConfig,
	logger *slog.Logger,
) *CheckoutService {
	if logger == nil {
		logger = slog.Default()
	}
	if config.Currency == "" {
		config.Currency = pricing.Currency
	}
	return &CheckoutService{
		orgRepo:  orgRepo,
		billing:  billingAPI,
		sync:     sync,
		config:   config,
		validate: validator.New(),
		logger:   logger,
	}
}

// Start creates a subscription-mode checkout session priced from the seat
// tier table.
func (s *CheckoutService) Start(ctx context.Context, orgID uuid.UUID, sess auth.Session, input CheckoutInput) (*CheckoutResult, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	plan, err := pricing.ParsePlanType(input.PlanType)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
	}

	customerID, err := s.ensureCustomer(ctx, orgID, sess.Email)
	if err != nil {
		return nil, err
	}

	interval := "month"
	if plan == model.PlanAnnual {
		interval = "year"
	}

	metadata := billing.Metadata{
		MetadataOrganizationID: orgID.String(),
		MetadataSeatCount:      strconv.Itoa(input.SeatCount),
		MetadataPlanType:       string(plan),
	}

	session, err := s.billing.CreateCheckoutSession(ctx, billing.CheckoutSessionParams{
		CustomerID:        customerID,
		ClientReferenceID: orgID.String(),
		SuccessURL:        s.config.SuccessURL,
		CancelURL:         s.config.CancelURL,
		Currency:          s.config.Currency,
		UnitAmountCents:   pricing.PerSeatCents(input.SeatCount, plan),
		Quantity:          input.SeatCount,
		Interval:          interval,
		ProductName:       productName,
		ProductMetadata:   billing.Metadata{MetadataItemType: seatItemType},
		Metadata:          metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("creating checkout session: %w", err)
	}

	s.logger.InfoContext(ctx, "checkout session created",
		"organizationID", orgID, "sessionID", session.ID, "seatCount", input.SeatCount, "plan", plan)

	return &CheckoutResult{
		URL:       session.URL,
		SessionID: session.ID,
		Quote:     pricing.NewQuote(input.SeatCount, plan),
	}, nil
}

// ensureCustomer returns the organization's Stripe customer, creating it on
// first checkout. Creation is idempotent per organization.
func (s *CheckoutService) ensureCustomer(ctx context.Context, orgID uuid.UUID, email string) (string, error) {
	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return "", err
	}
	if org.StripeCustomerID != nil && *org.StripeCustomerID != "" {
		return *org.StripeCustomerID, nil
	}

	customer, err := s.billing.CreateCustomer(ctx, billing.CustomerParams{
		Name:           org.Name,
		Email:          email,
		Metadata:       billing.Metadata{MetadataOrganizationID: orgID.String()},
		IdempotencyKey: "customer-" + orgID.String(),
	})
	if err != nil {
		return "", fmt.Errorf("creating billing customer: %w", err)
	}

	if err := s.orgRepo.SetStripeCustomerID(ctx, orgID, customer.ID); err != nil {
		return "", err
	}

	// Another request may have recorded its customer first; that one wins.
	org, err = s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return "", err
	}
	if org.StripeCustomerID != nil && *org.StripeCustomerID != "" {
		return *org.StripeCustomerID, nil
	}
	return customer.ID, nil
}

// VerifySession confirms that a completed checkout belongs to orgID and syncs
// its subscription before the webhook arrives.
func (s *CheckoutService) VerifySession(ctx context.Context, orgID uuid.UUID, sessionID string) (*model.Subscription, error) {
	sessionID = strings.TrimSpace(sessionID)
	if !IsCheckoutSessionID(sessionID) {
		return nil, fmt.Errorf("session id %q: %w", sessionID, domain.ErrInvalidInput)
	}

	session, err := s.billing.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("fetching checkout session: %w", err)
	}

	claimed := session.Metadata.Get(MetadataOrganizationID)
	if claimed == "" {
		claimed = strings.TrimSpace(session.ClientReferenceID)
	}
	if claimed != "" && claimed != orgID.String() {
		return nil, domain.ErrCheckoutSessionMismatch
	}

	var stored *model.Subscription
	switch {
	case session.Subscription.Object != nil:
		stored, err = s.sync.Sync(ctx, session.Subscription.Object, SyncSourceVerification)
	case session.Subscription.ID != "":
		stored, err = s.sync.SyncByID(ctx, session.Subscription.ID, SyncSourceVerification)
	default:
		return nil, domain.ErrCheckoutSessionNoSubscription
	}
	if err != nil {
		return nil, err
	}

	if stored.OrganizationID != orgID {
		return nil, domain.ErrCheckoutSessionMismatch
	}
	return stored, nil
}

// Portal opens a billing portal session for the organization's customer.
func (s *CheckoutService) Portal(ctx context.Context, orgID uuid.UUID) (string, error) {
	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return "", err
	}
	if org.StripeCustomerID == nil || *org.StripeCustomerID == "" {
		return "", domain.ErrBillingCustomerMissing
	}

	session, err := s.billing.CreatePortalSession(ctx, *org.StripeCustomerID, s.config.PortalReturnURL)
	if err != nil {
		return "", fmt.Errorf("creating portal session: %w", err)
	}
	return session.URL, nil
}
