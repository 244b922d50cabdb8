package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	gosmtp "github.com/emersion/go-smtp"

	"github.com/mac-cloud/StreamlineLabsWebsite/internal/config"
)

// SMTPSender sends mail through an authenticated SMTP relay using
// STARTTLS, e.g. smtp.gmail.com:587.
type SMTPSender struct {
	addr     string
	username string
	password string
}

// NewSMTPSender creates an SMTP sender from the mail configuration.
func NewSMTPSender(cfg *config.MailConfig) *SMTPSender {
	return &SMTPSender{
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

// Send delivers the message over a fresh SMTP connection.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := sasl.NewPlainClient("", s.username, s.password)
	if err := gosmtp.SendMail(s.addr, auth, msg.From, msg.To, strings.NewReader(msg.encode())); err != nil {
		return fmt.Errorf("failed to send mail via %s: %w", s.addr, err)
	}
	return nil
}
