package mailer

import (
	"context"
	"testing"
	"time"

	"github.com/leafthq/leaft/internal/email"
	"github.com/leafthq/leaft/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []email.EmailData
}

func (r *recordingSender) SendEmail(_ context.Context, data email.EmailData) error {
	r.sent = append(r.sent, data)
	return nil
}

func TestSendWelcome(t *testing.T) {
	sender := &recordingSender{}
	m := New(sender, "https://app.leaft.io/", "/onboarding")

	require.NoError(t, m.SendWelcome(context.Background(), "owner@acme.test", "Acme"))
	require.Len(t, sender.sent, 1)

	sent := sender.sent[0]
	assert.Equal(t, "owner@acme.test", sent.To)
	assert.Equal(t, "welcome", sent.TemplateName)
	assert.Equal(t, WelcomeTemplateData{
		OrganizationName: "Acme",
		OnboardingURL:    "https://app.leaft.io/onboarding",
	}, sent.TemplateData)
}

func TestSendSubscriptionConfirmed(t *testing.T) {
	sender := &recordingSender{}
	m := New(sender, "https://app.leaft.io", "https://app.leaft.io/onboarding")

	summary := model.SubscriptionSummary{
		Status:           "active",
		PlanType:         model.PlanAnnual,
		SeatCount:        12,
		CurrentPeriodEnd: time.Date(2027, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, m.SendSubscriptionConfirmed(context.Background(), "billing@acme.test", summary))
	require.Len(t, sender.sent, 1)

	data, ok := sender.sent[0].TemplateData.(SubscriptionConfirmedTemplateData)
	require.True(t, ok)
	assert.Equal(t, "Annual", data.PlanType)
	assert.Equal(t, 12, data.SeatCount)
	assert.Equal(t, "1 April 2027", data.RenewsOn)
	assert.Equal(t, "https://app.leaft.io/dashboard", data.DashboardURL)
}
