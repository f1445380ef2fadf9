package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"social-network-backend/internal/config"
	"social-network-backend/internal/logger"

	"go.uber.org/zap"
)

// Mailer dispatches a single plain-text message. Delivery is best-effort;
// callers decide whether a failure is fatal to the surrounding operation.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPMailer sends through a configured SMTP relay.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg))
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}
}

// LogMailer only logs outgoing messages. It backs local development and
// tests when no SMTP relay is configured.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, to, subject, _ string) error {
	logger.Info("Email dispatch skipped, no SMTP relay configured",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}

// FromConfig picks the SMTP mailer when a relay host is configured and
// the log-only mailer otherwise.
func FromConfig(cfg config.SMTPConfig) Mailer {
	if cfg.Host == "" {
		return LogMailer{}
	}
	return NewSMTPMailer(cfg)
}
