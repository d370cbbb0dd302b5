package email

import (
	"context"
	"fmt"

	"portfolio-backend/config"

	"gopkg.in/gomail.v2"
)

// Message is a single outbound HTML mail.
type Message struct {
	From     string
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
}

// Sender is the outbound mail transport. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender delivers mail through an authenticated SMTP relay. Each Send
// opens its own connection; the dialer is only read after construction.
type SMTPSender struct {
	dialer *gomail.Dialer
}

// NewSMTPSender creates a sender for the configured Gmail (or compatible) relay
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

// Send makes exactly one delivery attempt.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	// gomail has no context support; at least don't dial for a caller that is gone
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("send aborted: %w", err)
	}

	if err := s.dialer.DialAndSend(buildMessage(msg)); err != nil {
		return fmt.Errorf("failed to send email via %s:%d: %w", s.dialer.Host, s.dialer.Port, err)
	}
	return nil
}

// Host returns the SMTP server host, used as a log field.
func (s *SMTPSender) Host() string {
	return s.dialer.Host
}

func buildMessage(msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)
	return m
}
