package email

import (
	"context"
	"testing"

	"travel_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManager_RendersBuiltins(t *testing.T) {
	tm := NewTemplateManager()

	body, err := tm.Render(TemplateEnquiryNotification, TemplateData{
		"Type":        "booking",
		"Name":        "Ravi <script>",
		"Email":       "ravi@example.com",
		"Travelers":   2,
		"PackageName": "Goa Beach Paradise",
		"PackageURL":  "https://travel.example.com/packages/goa-beach-paradise",
		"AdminURL":    "https://travel.example.com/admin/enquiries/e1",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "New booking from Ravi &lt;script&gt;")
	assert.Contains(t, body, "Goa Beach Paradise")
	assert.NotContains(t, body, "Phone", "optional rows are omitted")

	body, err = tm.Render(TemplateEnquiryReceipt, TemplateData{"Name": "Ravi", "Reference": "e1"})
	require.NoError(t, err)
	assert.Contains(t, body, "Reference: e1")
	assert.NotContains(t, body, "about")
}

func TestTemplateManager_UnknownTemplate(t *testing.T) {
	_, err := NewTemplateManager().Render("missing", nil)
	assert.Error(t, err)
}

func TestNewProvider(t *testing.T) {
	cfg := config.Default()
	assert.IsType(t, NoopProvider{}, NewProvider(cfg))

	cfg.Email.SMTPHost = "smtp.example.com"
	cfg.Email.FromEmail = "desk@example.com"
	assert.IsType(t, &SMTPProvider{}, NewProvider(cfg))
}

func TestMemoryProvider(t *testing.T) {
	p := &MemoryProvider{}
	require.NoError(t, p.Send(context.Background(), &Email{To: []string{"a@example.com"}, Subject: "hi"}))

	sent := p.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "hi", sent[0].Subject)
}
