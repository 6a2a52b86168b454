// Package mailer holds the transactional emails Leaft sends.
package mailer

import (
	"context"
	"strings"

	"github.com/leafthq/leaft/internal/email"
)

const fromName = "Leaft"

// Sender delivers a rendered template. *email.Service implements it.
type Sender interface {
	SendEmail(ctx context.Context, data email.EmailData) error
}

// Mailer builds template data for each email and hands it to a Sender.
type Mailer struct {
	sender        Sender
	dashboardURL  string
	onboardingURL string
}

// New returns a Mailer. Relative onboarding URLs are resolved against
// baseURL.
func New(sender Sender, baseURL, onboardingURL string) *Mailer {
	baseURL = strings.TrimRight(baseURL, "/")
	if strings.HasPrefix(onboardingURL, "/") {
		onboardingURL = baseURL + onboardingURL
	}
	return &Mailer{
		sender:        sender,
		dashboardURL:  baseURL + "/dashboard",
		onboardingURL: onboardingURL,
	}
}
