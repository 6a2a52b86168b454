// internal/billing/webhook.go
package billing

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/leafthq/leaft/internal/domain"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
)

// SignatureHeader carries the webhook signature.
const SignatureHeader = "Stripe-Signature"

// DefaultTolerance is the maximum accepted age of a signed payload.
const DefaultTolerance = webhook.DefaultTolerance

// WebhookVerifier checks Stripe-Signature headers against the endpoint secret
// and decodes the signed event.
type WebhookVerifier struct {
	secret    string
	tolerance time.Duration
}

func NewWebhookVerifier(secret string, tolerance time.Duration) *WebhookVerifier {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &WebhookVerifier{
		secret:    strings.TrimSpace(secret),
		tolerance: tolerance,
	}
}

// Event is a verified Stripe webhook event. The data object is decoded on
// demand according to Type.
type Event struct {
	ID      string
	Type    string
	Created int64
	object  json.RawMessage
}

// ConstructEvent verifies the signature header and decodes the payload.
// Events from any API version are accepted; Leaft reads a small, stable
// subset of fields.
func (v *WebhookVerifier) ConstructEvent(payload []byte, header string) (*Event, error) {
	if v.secret == "" {
		return nil, fmt.Errorf("webhook secret not configured: %w", domain.ErrInvalidSignature)
	}

	raw, err := webhook.ConstructEventWithOptions(payload, strings.TrimSpace(header), v.secret, webhook.ConstructEventOptions{
		Tolerance:                v.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	switch {
	case errors.Is(err, webhook.ErrNotSigned),
		errors.Is(err, webhook.ErrInvalidHeader),
		errors.Is(err, webhook.ErrNoValidSignature),
		errors.Is(err, webhook.ErrTooOld):
		return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidSignature)
	case err != nil:
		return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidPayload)
	}

	if trim(raw.ID) == "" || trim(string(raw.Type)) == "" || raw.Data == nil {
		return nil, domain.ErrInvalidPayload
	}
	return &Event{
		ID:      raw.ID,
		Type:    string(raw.Type),
		Created: raw.Created,
		object:  raw.Data.Raw,
	}, nil
}

// SignatureHeaderValue builds a header value as Stripe sends it.
func SignatureHeaderValue(secret string, at time.Time, payload []byte) string {
	sig := webhook.ComputeSignature(at, payload, secret)
	return fmt.Sprintf("t=%s,v1=%s", strconv.FormatInt(at.Unix(), 10), hex.EncodeToString(sig))
}

// itemPeriods carries the per-item period bounds newer API versions send
// instead of the subscription-level ones.
type itemPeriods struct {
	Items struct {
		Data []struct {
			CurrentPeriodStart int64 `json:"current_period_start"`
			CurrentPeriodEnd   int64 `json:"current_period_end"`
		} `json:"data"`
	} `json:"items"`
}

// Subscription decodes the event object as a subscription.
func (e *Event) Subscription() (*Subscription, error) {
	var raw stripe.Subscription
	if err := json.Unmarshal(e.object, &raw); err != nil || raw.ID == "" {
		return nil, domain.ErrInvalidPayload
	}
	sub := fromStripeSubscription(&raw)

	var periods itemPeriods
	if err := json.Unmarshal(e.object, &periods); err == nil {
		for i := range sub.Items.Data {
			if i >= len(periods.Items.Data) {
				break
			}
			sub.Items.Data[i].CurrentPeriodStart = periods.Items.Data[i].CurrentPeriodStart
			sub.Items.Data[i].CurrentPeriodEnd = periods.Items.Data[i].CurrentPeriodEnd
		}
	}
	return sub, nil
}

// CheckoutSession decodes the event object as a checkout session.
func (e *Event) CheckoutSession() (*CheckoutSession, error) {
	var raw stripe.CheckoutSession
	if err := json.Unmarshal(e.object, &raw); err != nil || raw.ID == "" {
		return nil, domain.ErrInvalidPayload
	}
	return fromStripeCheckoutSession(&raw), nil
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
