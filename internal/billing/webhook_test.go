package billing

import (
	"testing"
	"time"

	"github.com/leafthq/leaft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test"

func TestWebhookVerifier_ConstructEvent(t *testing.T) {
	now := time.Now()
	payload := []byte(`{"id":"evt_1","object":"event","type":"customer.subscription.updated","created":1760000000,"data":{"object":{"id":"sub_1"}}}`)

	tests := []struct {
		name    string
		secret  string
		header  string
		payload []byte
		wantErr error
	}{
		{
			name:    "valid signature",
			secret:  testSecret,
			header:  SignatureHeaderValue(testSecret, now, payload),
			payload: payload,
		},
		{
			name:    "tampered payload",
			secret:  testSecret,
			header:  SignatureHeaderValue(testSecret, now, payload),
			payload: []byte(`{"id":"evt_2","object":"event","type":"customer.subscription.updated","data":{"object":{"id":"sub_1"}}}`),
			wantErr: domain.ErrInvalidSignature,
		},
		{
			name:    "wrong secret",
			secret:  testSecret,
			header:  SignatureHeaderValue("whsec_other", now, payload),
			payload: payload,
			wantErr: domain.ErrInvalidSignature,
		},
		{
			name:    "stale timestamp",
			secret:  testSecret,
			header:  SignatureHeaderValue(testSecret, now.Add(-10*time.Minute), payload),
			payload: payload,
			wantErr: domain.ErrInvalidSignature,
		},
		{
			name:    "missing header",
			secret:  testSecret,
			payload: payload,
			wantErr: domain.ErrInvalidSignature,
		},
		{
			name:    "garbage header",
			secret:  testSecret,
			header:  "t=abc,v1=def",
			payload: payload,
			wantErr: domain.ErrInvalidSignature,
		},
		{
			name:    "secret not configured",
			header:  SignatureHeaderValue(testSecret, now, payload),
			payload: payload,
			wantErr: domain.ErrInvalidSignature,
		},
		{
			name:    "event without id",
			secret:  testSecret,
			header:  SignatureHeaderValue(testSecret, now, []byte(`{"type":"x","data":{"object":{}}}`)),
			payload: []byte(`{"type":"x","data":{"object":{}}}`),
			wantErr: domain.ErrInvalidPayload,
		},
		{
			name:    "signed garbage",
			secret:  testSecret,
			header:  SignatureHeaderValue(testSecret, now, []byte(`not json`)),
			payload: []byte(`not json`),
			wantErr: domain.ErrInvalidPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := NewWebhookVerifier(tt.secret, 5*time.Minute).ConstructEvent(tt.payload, tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "evt_1", event.ID)
			assert.Equal(t, EventSubscriptionUpdated, event.Type)
		})
	}
}

func constructEvent(t *testing.T, payload []byte) *Event {
	t.Helper()
	event, err := NewWebhookVerifier(testSecret, 0).ConstructEvent(payload, SignatureHeaderValue(testSecret, time.Now(), payload))
	require.NoError(t, err)
	return event
}

func TestEvent_Subscription(t *testing.T) {
	event := constructEvent(t, []byte(`{
		"id": "evt_1",
		"type": "customer.subscription.updated",
		"created": 1760000000,
		"data": {"object": {
			"id": "sub_1",
			"status": "active",
			"customer": "cus_1",
			"cancel_at_period_end": true,
			"metadata": {"organization_id": "0b7f6b8e-8f53-4d44-9a8c-2f0a4c1c5f10"},
			"items": {"data": [{
				"id": "si_1",
				"quantity": 7,
				"current_period_start": 1760000000,
				"current_period_end": 1762592000,
				"price": {"id": "price_1", "metadata": {"type": "talent"}}
			}]}
		}}
	}`))

	sub, err := event.Subscription()
	require.NoError(t, err)
	assert.Equal(t, "sub_1", sub.ID)
	assert.Equal(t, "cus_1", sub.Customer.ID)
	assert.Nil(t, sub.Customer.Object)
	assert.True(t, sub.CancelAtPeriodEnd)
	assert.Zero(t, sub.CurrentPeriodStart)
	require.Len(t, sub.Items.Data, 1)
	assert.Equal(t, 7, sub.Items.Data[0].Quantity)
	assert.Equal(t, "talent", sub.Items.Data[0].Price.Metadata.Get("type"))
	assert.Equal(t, int64(1760000000), sub.Items.Data[0].CurrentPeriodStart)
	assert.Equal(t, int64(1762592000), sub.Items.Data[0].CurrentPeriodEnd)

	empty := constructEvent(t, []byte(`{"id":"evt_2","type":"customer.subscription.updated","data":{"object":{}}}`))
	_, err = empty.Subscription()
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestEvent_CheckoutSessionWithExpandedCustomer(t *testing.T) {
	event := constructEvent(t, []byte(`{
		"id": "evt_1",
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": "cs_test_1",
			"mode": "subscription",
			"customer": {"id": "cus_9", "object": "customer", "created": 1750000000, "metadata": {"organization_id": "abc"}},
			"subscription": null,
			"customer_email": "fallback@example.com",
			"customer_details": {"email": "payer@example.com"}
		}}
	}`))

	session, err := event.CheckoutSession()
	require.NoError(t, err)
	assert.Equal(t, "subscription", session.Mode)
	assert.Equal(t, "cus_9", session.Customer.ID)
	require.NotNil(t, session.Customer.Object)
	assert.Equal(t, "abc", session.Customer.Object.Metadata.Get("organization_id"))
	assert.Empty(t, session.Subscription.ID)
	assert.Equal(t, "payer@example.com", session.Email())
}
