package email

import (
	"context"
	"fmt"
	"sync"

	"travel_backend/internal/config"
	"travel_backend/internal/logger"

	"gopkg.in/gomail.v2"
)

// Provider sends mail. Callers treat failures as non-fatal.
type Provider interface {
	Send(ctx context.Context, email *Email) error
}

// SMTPProvider delivers through an SMTP relay with gomail.
type SMTPProvider struct {
	config *SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(cfg *SMTPConfig) *SMTPProvider {
	return &SMTPProvider{
		config: cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (p *SMTPProvider) Send(ctx context.Context, email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("email has no recipients")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", email.To...)
	if email.ReplyTo != "" {
		m.SetHeader("Reply-To", email.ReplyTo)
	}
	m.SetHeader("Subject", email.Subject)

	switch {
	case email.HTMLBody != "" && email.Body != "":
		m.SetBody("text/plain", email.Body)
		m.AddAlternative("text/html", email.HTMLBody)
	case email.HTMLBody != "":
		m.SetBody("text/html", email.HTMLBody)
	default:
		m.SetBody("text/plain", email.Body)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// NoopProvider logs instead of sending. Used when SMTP is not configured.
type NoopProvider struct{}

func (NoopProvider) Send(ctx context.Context, email *Email) error {
	logger.CtxDebug(ctx, "email delivery disabled, dropping message", "to", email.To, "subject", email.Subject)
	return nil
}

// MemoryProvider keeps sent messages; tests read them back with Sent.
type MemoryProvider struct {
	mu   sync.Mutex
	sent []Email
	Err  error
}

func (p *MemoryProvider) Send(_ context.Context, email *Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.sent = append(p.sent, *email)
	return nil
}

func (p *MemoryProvider) Sent() []Email {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Email, len(p.sent))
	copy(out, p.sent)
	return out
}

// NewProvider returns SMTP when configured, otherwise NoopProvider.
func NewProvider(cfg *config.Config) Provider {
	smtpCfg := ConfigFrom(cfg)
	if !smtpCfg.Enabled() {
		logger.Warn("SMTP is not configured, enquiry notifications will not be sent")
		return NoopProvider{}
	}
	return NewSMTPProvider(smtpCfg)
}
