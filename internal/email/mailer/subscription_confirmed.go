package mailer

import (
	"context"
	"strings"

	"github.com/leafthq/leaft/internal/email"
	"github.com/leafthq/leaft/internal/model"
)

// SubscriptionConfirmedTemplateData contains data for the confirmation email
type SubscriptionConfirmedTemplateData struct {
	PlanType     string
	SeatCount    int
	RenewsOn     string
	DashboardURL string
}

// SendSubscriptionConfirmed tells the payer their checkout went through.
func (m *Mailer) SendSubscriptionConfirmed(ctx context.Context, to string, summary model.SubscriptionSummary) error {
	plan := string(summary.PlanType)
	if plan != "" {
		plan = strings.ToUpper(plan[:1]) + plan[1:]
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      "Your Leaft subscription is confirmed",
		TemplateName: "subscription_confirmed",
		TemplateData: SubscriptionConfirmedTemplateData{
			PlanType:     plan,
			SeatCount:    summary.SeatCount,
			RenewsOn:     summary.CurrentPeriodEnd.Format("2 January 2006"),
			DashboardURL: m.dashboardURL,
		},
	}

	return m.sender.SendEmail(ctx, emailData)
}
