package email

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendgridMessage builds a two-part message tagged with the template name so
// deliveries can be filtered per email kind in the SendGrid activity feed.
func sendgridMessage(data EmailData, htmlContent, textContent string) *mail.SGMailV3 {
	from := mail.NewEmail(data.FromName, data.From)
	to := mail.NewEmail("", data.To)
	message := mail.NewSingleEmail(from, data.Subject, to, textContent, htmlContent)
	if data.TemplateName != "" {
		message.AddCategories("leaft", data.TemplateName)
	}
	return message
}

func (s *Service) sendWithSendgrid(ctx context.Context, data EmailData, htmlContent, textContent string) error {
	response, err := s.sendgridClient.SendWithContext(ctx, sendgridMessage(data, htmlContent, textContent))
	if err != nil {
		return fmt.Errorf("sending %s email via sendgrid: %w", data.TemplateName, err)
	}
	if err := sendgridResult(response.StatusCode, response.Body); err != nil {
		return fmt.Errorf("sending %s email via sendgrid: %w", data.TemplateName, err)
	}

	slog.DebugContext(ctx, "email accepted by sendgrid", "template", data.TemplateName, "status", response.StatusCode)
	return nil
}

// sendgridResult turns a SendGrid v3 mail/send answer into an error. The API
// accepts with 202 and reports problems as {"errors":[{"message","field"}]}.
func sendgridResult(status int, body string) error {
	if status >= 200 && status < 300 {
		return nil
	}

	var envelope struct {
		Errors []struct {
			Message string `json:"message"`
			Field   string `json:"field"`
		} `json:"errors"`
	}
	if err := json.Unmarshal([]byte(body), &envelope); err != nil || len(envelope.Errors) == 0 {
		return fmt.Errorf("sendgrid status %d", status)
	}

	messages := make([]string, 0, len(envelope.Errors))
	for _, e := range envelope.Errors {
		if e.Field != "" {
			messages = append(messages, e.Field+": "+e.Message)
			continue
		}
		messages = append(messages, e.Message)
	}
	return fmt.Errorf("sendgrid status %d: %s", status, strings.Join(messages, "; "))
}
