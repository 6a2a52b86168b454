package mailer

import (
	"context"

	"github.com/leafthq/leaft/internal/email"
)

// WelcomeTemplateData contains data for the welcome email template
type WelcomeTemplateData struct {
	OrganizationName string
	OnboardingURL    string
}

// SendWelcome greets the owner of a newly created organization.
func (m *Mailer) SendWelcome(ctx context.Context, to, organizationName string) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      "Welcome to Leaft",
		TemplateName: "welcome",
		TemplateData: WelcomeTemplateData{
			OrganizationName: organizationName,
			OnboardingURL:    m.onboardingURL,
		},
	}

	return m.sender.SendEmail(ctx, emailData)
}
