// internal/billing/client.go
package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

//go:generate mockgen -typed -source=./client.go -destination=../mocks/mock_billing_api.go -package=mocks API

// API is the part of Stripe Leaft talks to.
type API interface {
	GetSubscription(ctx context.Context, id string) (*Subscription, error)
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	GetCheckoutSession(ctx context.Context, id string) (*CheckoutSession, error)
	CreateCustomer(ctx context.Context, params CustomerParams) (*Customer, error)
	CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*CheckoutSession, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (*PortalSession, error)
}

// Config represents the configuration for the Stripe client
type Config struct {
	// BaseURL is the Stripe API root, without the /v1 suffix
	BaseURL string
	// SecretKey authenticates every request
	SecretKey string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout bounds every request. Zero disables the per-request timeout.
	Timeout time.Duration
	// MaxNetworkRetries is handed to the SDK, which retries idempotent
	// failures with backoff.
	MaxNetworkRetries int64
	Logger            *slog.Logger
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:           stripe.APIURL,
		HTTPClient:        http.DefaultClient,
		Timeout:           15 * time.Second,
		MaxNetworkRetries: 2,
	}
}

// Client wraps the stripe-go API client and converts its objects into the
// narrower billing types.
type Client struct {
	config *Config
	api    *client.API
}

func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = stripe.APIURL
	}
	if config.HTTPClient == nil {
		config.HTTPClient = http.DefaultClient
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	backends := stripe.NewBackendsWithConfig(&stripe.BackendConfig{
		URL:               stripe.String(config.BaseURL),
		HTTPClient:        config.HTTPClient,
		MaxNetworkRetries: stripe.Int64(config.MaxNetworkRetries),
		LeveledLogger:     &slogLeveledLogger{logger: config.Logger},
	})

	return &Client{
		config: config,
		api:    client.New(config.SecretKey, backends),
	}
}

// withTimeout bounds ctx by the configured timeout.
func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.config.Timeout > 0 {
		return context.WithTimeout(ctx, c.config.Timeout)
	}
	return context.WithCancel(ctx)
}

// GetSubscription fetches a subscription with its customer expanded.
func (c *Client) GetSubscription(ctx context.Context, id string) (*Subscription, error) {
	if id == "" {
		return nil, fmt.Errorf("subscription id is required")
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	params := &stripe.SubscriptionParams{}
	params.Context = ctx
	params.AddExpand("customer")

	sub, err := c.api.Subscriptions.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("retrieving subscription %s: %w", id, err)
	}
	return fromStripeSubscription(sub), nil
}

func (c *Client) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	if id == "" {
		return nil, fmt.Errorf("customer id is required")
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	params := &stripe.CustomerParams{}
	params.Context = ctx

	customer, err := c.api.Customers.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("retrieving customer %s: %w", id, err)
	}
	return fromStripeCustomer(customer), nil
}

// GetCheckoutSession fetches a checkout session with its subscription
// expanded.
func (c *Client) GetCheckoutSession(ctx context.Context, id string) (*CheckoutSession, error) {
	if id == "" {
		return nil, fmt.Errorf("checkout session id is required")
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("subscription")
	params.AddExpand("subscription.customer")

	session, err := c.api.CheckoutSessions.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("retrieving checkout session %s: %w", id, err)
	}
	return fromStripeCheckoutSession(session), nil
}

type CustomerParams struct {
	Name     string
	Email    string
	Metadata Metadata
	// IdempotencyKey makes retried creations return the first customer.
	IdempotencyKey string
}

func (c *Client) CreateCustomer(ctx context.Context, params CustomerParams) (*Customer, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	p := &stripe.CustomerParams{}
	p.Context = ctx
	if params.Name != "" {
		p.Name = stripe.String(params.Name)
	}
	if params.Email != "" {
		p.Email = stripe.String(params.Email)
	}
	for k, v := range params.Metadata {
		p.AddMetadata(k, v)
	}
	if params.IdempotencyKey != "" {
		p.SetIdempotencyKey(params.IdempotencyKey)
	}

	customer, err := c.api.Customers.New(p)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}
	return fromStripeCustomer(customer), nil
}

// CheckoutSessionParams describes a subscription-mode checkout for one
// per-seat line item priced inline.
type CheckoutSessionParams struct {
	CustomerID        string
	ClientReferenceID string
	SuccessURL        string
	CancelURL         string
	Currency          string
	UnitAmountCents   int64
	Quantity          int
	Interval          string
	ProductName       string
	ProductMetadata   Metadata
	Metadata          Metadata
}

func (c *Client) CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*CheckoutSession, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	p := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer:   stripe.String(params.CustomerID),
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Quantity: stripe.Int64(int64(params.Quantity)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(params.Currency),
				UnitAmount: stripe.Int64(params.UnitAmountCents),
				Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
					Interval: stripe.String(params.Interval),
				},
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:     stripe.String(params.ProductName),
					Metadata: params.ProductMetadata,
				},
			},
		}},
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: params.Metadata,
		},
	}
	p.Context = ctx
	if params.ClientReferenceID != "" {
		p.ClientReferenceID = stripe.String(params.ClientReferenceID)
	}
	for k, v := range params.Metadata {
		p.AddMetadata(k, v)
	}

	session, err := c.api.CheckoutSessions.New(p)
	if err != nil {
		return nil, fmt.Errorf("creating checkout session: %w", err)
	}
	return fromStripeCheckoutSession(session), nil
}

func (c *Client) CreatePortalSession(ctx context.Context, customerID, returnURL string) (*PortalSession, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	p := &stripe.BillingPortalSessionParams{
		Customer: stripe.String(customerID),
	}
	p.Context = ctx
	if returnURL != "" {
		p.ReturnURL = stripe.String(returnURL)
	}

	session, err := c.api.BillingPortalSessions.New(p)
	if err != nil {
		return nil, fmt.Errorf("creating billing portal session: %w", err)
	}
	return &PortalSession{ID: session.ID, URL: session.URL}, nil
}

// IsNotFound reports whether err is Stripe's answer for an object that does
// not exist, such as a subscription deleted from the dashboard.
func IsNotFound(err error) bool {
	var stripeErr *stripe.Error
	return errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing
}

// slogLeveledLogger routes the SDK's request logging into slog.
type slogLeveledLogger struct {
	logger *slog.Logger
}

func (l *slogLeveledLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...), "component", "stripe")
}

func (l *slogLeveledLogger) Infof(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...), "component", "stripe")
}

func (l *slogLeveledLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, v...), "component", "stripe")
}

func (l *slogLeveledLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...), "component", "stripe")
}
