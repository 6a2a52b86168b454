// Package client is a typed Go client for the Leaft onboarding and billing
// API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultVerifyAttempts = 10
	DefaultVerifyDelay    = 2 * time.Second
	DefaultWatchInterval  = 5 * time.Second
)

// ErrVerificationExhausted is returned by PollVerification when every
// attempt finished without an active subscription.
var ErrVerificationExhausted = errors.New("subscription verification attempts exhausted")

// Config represents the configuration for the Leaft client
type Config struct {
	// BaseURL is the base URL of the Leaft web tier
	BaseURL string
	// Token is the identity provider session token sent as a bearer token
	Token string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration

	VerifyAttempts int
	VerifyDelay    time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "http://localhost:8080",
		HTTPClient:     http.DefaultClient,
		Timeout:        10 * time.Second,
		VerifyAttempts: DefaultVerifyAttempts,
		VerifyDelay:    DefaultVerifyDelay,
	}
}

// Client is the Leaft API client
type Client struct {
	config *Config
	client *http.Client
}

// NewClient creates a new client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.VerifyAttempts <= 0 {
		config.VerifyAttempts = DefaultVerifyAttempts
	}
	if config.VerifyDelay <= 0 {
		config.VerifyDelay = DefaultVerifyDelay
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
	}
}

// OnboardingStatus is the response of the onboarding check
type OnboardingStatus struct {
	HasOrganization       bool   `json:"has_organization"`
	HasActiveSubscription bool   `json:"has_active_subscription"`
	OrganizationID        string `json:"organization_id,omitempty"`
}

// OnboardingCheck reports whether the caller has an organization and an
// active subscription.
func (c *Client) OnboardingCheck(ctx context.Context) (*OnboardingStatus, error) {
	var resp OnboardingStatus
	if err := c.do(ctx, http.MethodGet, "/api/onboarding/check", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Organization is the organization settings projection
type Organization struct {
	ID                        string `json:"id"`
	Name                      string `json:"name"`
	SalaryTransparencyEnabled bool   `json:"salary_transparency_enabled"`
	HasBillingCustomer        bool   `json:"has_billing_customer"`
}

// CreateOrganization creates the caller's organization, or returns the one
// they already own.
func (c *Client) CreateOrganization(ctx context.Context, name string) (*Organization, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("name is required")
	}

	var resp Organization
	if err := c.do(ctx, http.MethodPost, "/api/onboarding/organization", map[string]string{"name": name}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CheckoutRequest represents a checkout request
type CheckoutRequest struct {
	SeatCount int    `json:"seat_count"`
	PlanType  string `json:"plan_type"`
}

// CheckoutResponse carries the hosted checkout URL
type CheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

func (c *Client) StartCheckout(ctx context.Context, req *CheckoutRequest) (*CheckoutResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.SeatCount < 1 {
		return nil, errors.New("seat_count must be positive")
	}

	var resp CheckoutResponse
	if err := c.do(ctx, http.MethodPost, "/api/stripe/checkout", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Subscription is the subscription summary returned by verification
type Subscription struct {
	Status            string    `json:"status"`
	PlanType          string    `json:"plan_type"`
	SeatCount         int       `json:"seat_count"`
	CurrentPeriodEnd  time.Time `json:"current_period_end"`
	CancelAtPeriodEnd bool      `json:"cancel_at_period_end"`
	Active            bool      `json:"active"`
}

// VerifySessionResponse represents a verification response
type VerifySessionResponse struct {
	Ok             bool         `json:"ok"`
	OrganizationID string       `json:"organization_id"`
	Subscription   Subscription `json:"subscription"`
}

// VerifySession asks the server to confirm a completed checkout session.
func (c *Client) VerifySession(ctx context.Context, sessionID string) (*VerifySessionResponse, error) {
	if sessionID == "" {
		return nil, errors.New("session_id is required")
	}

	var resp VerifySessionResponse
	err := c.do(ctx, http.MethodPost, "/api/stripe/verify-session", map[string]string{"session_id": sessionID}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// PollVerification calls VerifySession until it reports an active
// subscription. It makes at most VerifyAttempts calls spaced VerifyDelay
// apart. Client errors other than 404 stop the loop early; server errors
// and transport failures are retried.
func (c *Client) PollVerification(ctx context.Context, sessionID string) (*VerifySessionResponse, error) {
	var lastErr error

	for attempt := 1; attempt <= c.config.VerifyAttempts; attempt++ {
		resp, err := c.VerifySession(ctx, sessionID)
		switch {
		case err == nil && resp.Ok:
			return resp, nil
		case err != nil && !retryable(err):
			return nil, err
		}
		lastErr = err

		if attempt == c.config.VerifyAttempts {
			break
		}

		timer := time.NewTimer(c.config.VerifyDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrVerificationExhausted, lastErr)
	}
	return nil, ErrVerificationExhausted
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == http.StatusNotFound
	}
	return true
}

// WatchOnboardingStatus fetches the onboarding status right away and then on
// every interval tick, handing each result to onUpdate. It returns the
// context's error once ctx is done.
func (c *Client) WatchOnboardingStatus(ctx context.Context, interval time.Duration, onUpdate func(*OnboardingStatus, error)) error {
	if onUpdate == nil {
		return errors.New("onUpdate cannot be nil")
	}
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		status, err := c.OnboardingCheck(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		onUpdate(status, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// PortalURL returns a billing portal URL for the caller's organization.
func (c *Client) PortalURL(ctx context.Context) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/stripe/portal", nil, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// APIError defines a standardized error response from the API
type APIError struct {
	StatusCode int      `json:"-"`
	Code       string   `json:"error_code,omitempty"`
	Message    string   `json:"error"`
	Details    []string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s (Status: %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s (Status: %d)", e.Message, e.StatusCode)
}

// do sends a JSON request and decodes a JSON response into resp
func (c *Client) do(ctx context.Context, method, path string, req interface{}, resp interface{}) error {
	// Set up context with timeout
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	var body io.Reader
	if req != nil {
		reqBody, err := json.Marshal(req)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(reqBody)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.config.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	// Check for non-success status code
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		var apiErr APIError
		if err := json.NewDecoder(httpResp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			return &APIError{
				StatusCode: httpResp.StatusCode,
				Message:    fmt.Sprintf("request failed with status code %d", httpResp.StatusCode),
			}
		}

		apiErr.StatusCode = httpResp.StatusCode
		return &apiErr
	}

	if resp == nil {
		return nil
	}
	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
