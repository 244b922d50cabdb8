package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/sirupsen/logrus"

	"github.com/mac-cloud/StreamlineLabsWebsite/internal/config"
	metricsPkg "github.com/mac-cloud/StreamlineLabsWebsite/internal/metrics"
	"github.com/mac-cloud/StreamlineLabsWebsite/internal/model"
)

const messageExcerptLength = 200

var adminTemplate = template.Must(template.New("admin").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<div style="background: linear-gradient(135deg, #2563eb, #06b6d4); padding: 30px; text-align: center; color: white;">
		<h2 style="margin: 0;">New Contact Message</h2>
		<p style="margin: 10px 0 0 0; opacity: 0.9;">Streamline Labs Website</p>
	</div>
	<div style="padding: 30px; background: #f8fafc;">
		<div style="background: white; padding: 25px; border-radius: 10px; margin-bottom: 20px;">
			<h3 style="color: #2563eb; margin-bottom: 15px;">Contact Details</h3>
			<p><strong>Name:</strong> {{.Name}}</p>
			<p><strong>Email:</strong> {{.Email}}</p>
			<p><strong>Date:</strong> {{.Date}}</p>
			<p><strong>IP Address:</strong> {{.IPAddress}}</p>
		</div>
		<div style="background: white; padding: 25px; border-radius: 10px;">
			<h3 style="color: #2563eb; margin-bottom: 15px;">Message</h3>
			<div style="background: #f1f5f9; padding: 20px; border-radius: 8px; line-height: 1.6;">{{.Message}}</div>
		</div>
	</div>
	<div style="text-align: center; padding: 20px; color: #64748b; font-size: 14px;">
		<p>This message was sent from your Streamline Labs website contact form.</p>
	</div>
</div>
`))

var customerTemplate = template.Must(template.New("customer").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<div style="background: linear-gradient(135deg, #2563eb, #06b6d4); padding: 30px; text-align: center; color: white;">
		<h2 style="margin: 0;">Thank You, {{.Name}}!</h2>
		<p style="margin: 10px 0 0 0; opacity: 0.9;">We've received your message</p>
	</div>
	<div style="padding: 30px; background: #f8fafc;">
		<div style="background: white; padding: 25px; border-radius: 10px; margin-bottom: 20px;">
			<h3 style="color: #2563eb; margin-bottom: 15px;">What's Next?</h3>
			<p style="line-height: 1.6;">
				Thank you for reaching out to Streamline Labs! Our team will review your
				message and get back to you within <strong>24 hours</strong>.
			</p>
		</div>
		<div style="background: white; padding: 25px; border-radius: 10px;">
			<h3 style="color: #2563eb; margin-bottom: 15px;">Your Message Summary</h3>
			<div style="background: #f1f5f9; padding: 15px; border-radius: 8px; font-style: italic; color: #475569;">"{{.Excerpt}}"</div>
		</div>
	</div>
	<div style="text-align: center; padding: 20px; color: #64748b; font-size: 14px;">
		<p><strong>Streamline Labs</strong> - Helping businesses work smarter, not harder</p>
	</div>
</div>
`))

// Notifier sends the admin alert and the customer acknowledgment for a
// stored contact message. Sends are best-effort: failures are logged and
// never propagated to the caller.
type Notifier struct {
	sender  Sender
	cfg     *config.MailConfig
	metrics *metricsPkg.Metrics
}

// NewNotifier creates a Notifier using the transport selected in the mail
// configuration. A nil Sender (mail disabled) makes Notify a no-op.
func NewNotifier(sender Sender, cfg *config.MailConfig, metrics *metricsPkg.Metrics) *Notifier {
	return &Notifier{sender: sender, cfg: cfg, metrics: metrics}
}

// NewSender builds the configured mail transport, or nil when mail is
// disabled.
func NewSender(cfg *config.MailConfig) (Sender, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	switch cfg.Transport {
	case "gmail":
		return NewGmailSender(cfg)
	default:
		return NewSMTPSender(cfg), nil
	}
}

// Notify sends both notification emails for the message. Each send is
// independent: failure of one does not block the other, and neither
// failure is returned. The message must already be durably stored.
func (n *Notifier) Notify(ctx context.Context, msg *model.ContactMessage) {
	if n.sender == nil {
		logrus.Debug("Mail disabled, skipping notifications")
		return
	}

	n.send(ctx, "admin alert", n.adminMessage(msg))
	n.send(ctx, "customer acknowledgment", n.customerMessage(msg))
}

func (n *Notifier) send(ctx context.Context, kind string, msg Message) {
	if err := n.sender.Send(ctx, msg); err != nil {
		n.metrics.NotificationsFailed.Inc()
		logrus.WithError(err).Warnf("Failed to send %s email", kind)
		return
	}
	n.metrics.NotificationsSent.Inc()
	logrus.Infof("Sent %s email to %v", kind, msg.To)
}

func (n *Notifier) adminMessage(msg *model.ContactMessage) Message {
	ip := msg.IPAddress
	if ip == "" {
		ip = "Unknown"
	}

	var body bytes.Buffer
	adminTemplate.Execute(&body, map[string]string{
		"Name":      msg.Name,
		"Email":     msg.Email,
		"Date":      msg.CreatedAt.Format("January 2, 2006 at 3:04 PM"),
		"IPAddress": ip,
		"Message":   msg.Message,
	})

	return Message{
		From:    n.cfg.SenderAddress(),
		To:      []string{n.cfg.AdminEmail},
		Subject: fmt.Sprintf("New Contact Form Submission - %s", msg.Name),
		Body:    body.String(),
	}
}

func (n *Notifier) customerMessage(msg *model.ContactMessage) Message {
	excerpt := msg.Message
	if len(excerpt) > messageExcerptLength {
		excerpt = excerpt[:messageExcerptLength] + "..."
	}

	var body bytes.Buffer
	customerTemplate.Execute(&body, map[string]string{
		"Name":    msg.Name,
		"Excerpt": excerpt,
	})

	return Message{
		From:    n.cfg.SenderAddress(),
		To:      []string{msg.Email},
		Subject: "Thank you for contacting Streamline Labs",
		Body:    body.String(),
	}
}
