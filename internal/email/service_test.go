package email

import (
	"encoding/base64"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/leafthq/leaft/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTemplatesLoad(t *testing.T) {
	s := &Service{Templates: make(map[string]*Template)}
	require.NoError(t, s.loadTemplates(templateFS))

	assert.Contains(t, s.Templates, "welcome")
	assert.Contains(t, s.Templates, "subscription_confirmed")

	html, text, err := s.renderTemplate("welcome", map[string]string{
		"OrganizationName": "Acme <Ltd>",
		"OnboardingURL":    "https://app.leaft.io/onboarding",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Acme &lt;Ltd&gt;")
	assert.Contains(t, text, "Acme <Ltd>")
}

func TestLoadTemplatesRejectsEmptyDirectory(t *testing.T) {
	s := &Service{Templates: make(map[string]*Template)}
	fsys := fstest.MapFS{
		DefaultTemplatePath + "/README": &fstest.MapFile{Data: []byte("nothing here")},
	}
	assert.Error(t, s.loadTemplates(fsys))
}

func TestRenderUnknownTemplate(t *testing.T) {
	s := &Service{Templates: make(map[string]*Template)}
	_, _, err := s.renderTemplate("missing", nil)
	assert.Error(t, err)
}

func TestBuildMIME(t *testing.T) {
	msg := string(buildMIME(EmailData{
		To:       "owner@acme.test",
		From:     "hello@leaft.io",
		FromName: "Leaft",
		Subject:  "Welcome to Leaft",
	}, "<p>hi</p>", "hi", "b1"))

	assert.True(t, strings.HasPrefix(msg, "From: Leaft <hello@leaft.io>\r\n"))
	assert.Contains(t, msg, "Content-Type: multipart/alternative; boundary=b1")
	assert.Contains(t, msg, base64.StdEncoding.EncodeToString([]byte("<p>hi</p>")))
	assert.True(t, strings.HasSuffix(msg, "--b1--"))
}

func TestProviderFor(t *testing.T) {
	var cfg config.Config
	_, ok := ProviderFor(&cfg)
	assert.False(t, ok)

	cfg.SMTP.Host = "smtp.leaft.test"
	p, ok := ProviderFor(&cfg)
	assert.True(t, ok)
	assert.Equal(t, ProviderSMTP, p)

	cfg.Sendgrid.APIKey = "SG.key"
	p, _ = ProviderFor(&cfg)
	assert.Equal(t, ProviderSendgrid, p)
}

func TestSendgridMessage(t *testing.T) {
	msg := sendgridMessage(EmailData{
		To:           "owner@acme.test",
		From:         "hello@leaft.io",
		FromName:     "Leaft",
		Subject:      "Welcome to Leaft",
		TemplateName: "welcome",
	}, "<p>hi</p>", "hi")

	assert.Equal(t, "hello@leaft.io", msg.From.Address)
	assert.Equal(t, "Welcome to Leaft", msg.Subject)
	assert.Equal(t, []string{"leaft", "welcome"}, msg.Categories)
	require.Len(t, msg.Content, 2)
	assert.Equal(t, "text/plain", msg.Content[0].Type)
	assert.Equal(t, "text/html", msg.Content[1].Type)
}

func TestSendgridResult(t *testing.T) {
	assert.NoError(t, sendgridResult(202, ""))

	err := sendgridResult(400, `{"errors":[{"message":"Invalid email","field":"personalizations.0.to"},{"message":"Bad from"}]}`)
	require.Error(t, err)
	assert.Equal(t, "sendgrid status 400: personalizations.0.to: Invalid email; Bad from", err.Error())

	err = sendgridResult(502, "<html>bad gateway</html>")
	assert.EqualError(t, err, "sendgrid status 502")
}
