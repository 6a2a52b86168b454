// internal/billing/types.go
package billing

import (
	"time"

	"github.com/stripe/stripe-go/v81"
)

// Metadata is Stripe's string-to-string metadata map.
type Metadata map[string]string

// Get returns the trimmed value for key, or "" when absent.
func (m Metadata) Get(key string) string {
	if m == nil {
		return ""
	}
	return trim(m[key])
}

// Expandable holds a Stripe reference that is either a bare id or, when the
// request asked for expand[], the full object.
type Expandable[T any] struct {
	ID     string
	Object *T
}

type Customer struct {
	ID       string
	Email    string
	Name     string
	Metadata Metadata
}

type Price struct {
	ID       string
	Metadata Metadata
}

type SubscriptionItem struct {
	ID                 string
	Quantity           int
	Price              Price
	CurrentPeriodStart int64
	CurrentPeriodEnd   int64
}

type SubscriptionItemList struct {
	Data []SubscriptionItem
}

// Subscription is the subset of Stripe's subscription object Leaft reads.
// Period bounds may be absent at the top level depending on the API version;
// they are then carried by the items.
type Subscription struct {
	ID                 string
	Status             string
	Customer           Expandable[Customer]
	Metadata           Metadata
	Items              SubscriptionItemList
	CurrentPeriodStart int64
	CurrentPeriodEnd   int64
	CancelAtPeriodEnd  bool
	CanceledAt         *int64
	Created            int64
}

type CheckoutSession struct {
	ID                string
	URL               string
	Mode              string
	Status            string
	ClientReferenceID string
	Customer          Expandable[Customer]
	CustomerEmail     string
	DetailsEmail      string
	Subscription      Expandable[Subscription]
	Metadata          Metadata
}

// Email returns the best known payer email of the session.
func (s *CheckoutSession) Email() string {
	if s.DetailsEmail != "" {
		return s.DetailsEmail
	}
	return s.CustomerEmail
}

type PortalSession struct {
	ID  string
	URL string
}

// Webhook event types handled by Leaft.
const (
	EventCheckoutSessionCompleted = string(stripe.EventTypeCheckoutSessionCompleted)
	EventSubscriptionCreated      = string(stripe.EventTypeCustomerSubscriptionCreated)
	EventSubscriptionUpdated      = string(stripe.EventTypeCustomerSubscriptionUpdated)
	EventSubscriptionDeleted      = string(stripe.EventTypeCustomerSubscriptionDeleted)
)

// Unix converts a Stripe timestamp, treating zero as unset.
func Unix(ts int64) (time.Time, bool) {
	if ts == 0 {
		return time.Time{}, false
	}
	return time.Unix(ts, 0).UTC(), true
}

// An expanded customer always carries its creation time; a bare reference
// only has the id.
func customerExpanded(c *stripe.Customer) bool {
	return c != nil && (c.Created != 0 || c.Deleted || len(c.Metadata) > 0 || c.Email != "" || c.Name != "")
}

func subscriptionExpanded(s *stripe.Subscription) bool {
	return s != nil && s.Status != ""
}

func fromStripeCustomer(c *stripe.Customer) *Customer {
	if c == nil {
		return nil
	}
	return &Customer{
		ID:       c.ID,
		Email:    c.Email,
		Name:     c.Name,
		Metadata: Metadata(c.Metadata),
	}
}

func customerRef(c *stripe.Customer) Expandable[Customer] {
	if c == nil {
		return Expandable[Customer]{}
	}
	ref := Expandable[Customer]{ID: c.ID}
	if customerExpanded(c) {
		ref.Object = fromStripeCustomer(c)
	}
	return ref
}

func fromStripeSubscription(s *stripe.Subscription) *Subscription {
	if s == nil {
		return nil
	}
	sub := &Subscription{
		ID:                 s.ID,
		Status:             string(s.Status),
		Customer:           customerRef(s.Customer),
		Metadata:           Metadata(s.Metadata),
		CurrentPeriodStart: s.CurrentPeriodStart,
		CurrentPeriodEnd:   s.CurrentPeriodEnd,
		CancelAtPeriodEnd:  s.CancelAtPeriodEnd,
		Created:            s.Created,
	}
	if s.CanceledAt != 0 {
		canceledAt := s.CanceledAt
		sub.CanceledAt = &canceledAt
	}
	if s.Items != nil {
		for _, item := range s.Items.Data {
			if item == nil {
				continue
			}
			converted := SubscriptionItem{ID: item.ID, Quantity: int(item.Quantity)}
			if item.Price != nil {
				converted.Price = Price{ID: item.Price.ID, Metadata: Metadata(item.Price.Metadata)}
			}
			sub.Items.Data = append(sub.Items.Data, converted)
		}
	}
	return sub
}

func fromStripeCheckoutSession(s *stripe.CheckoutSession) *CheckoutSession {
	if s == nil {
		return nil
	}
	session := &CheckoutSession{
		ID:                s.ID,
		URL:               s.URL,
		Mode:              string(s.Mode),
		Status:            string(s.Status),
		ClientReferenceID: s.ClientReferenceID,
		Customer:          customerRef(s.Customer),
		CustomerEmail:     s.CustomerEmail,
		Metadata:          Metadata(s.Metadata),
	}
	if s.CustomerDetails != nil {
		session.DetailsEmail = s.CustomerDetails.Email
	}
	if s.Subscription != nil {
		session.Subscription.ID = s.Subscription.ID
		if subscriptionExpanded(s.Subscription) {
			session.Subscription.Object = fromStripeSubscription(s.Subscription)
		}
	}
	return session
}
