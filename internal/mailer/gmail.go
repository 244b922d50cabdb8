package mailer

import (
	"context"
	"encoding/base64"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/mac-cloud/StreamlineLabsWebsite/internal/config"
)

// GmailSender sends mail through the Gmail API using an OAuth2 refresh
// token, for deployments where SMTP app passwords are not available.
type GmailSender struct {
	service *gmail.Service
	user    string
}

// NewGmailSender creates a Gmail API sender from the mail configuration.
func NewGmailSender(cfg *config.MailConfig) (*GmailSender, error) {
	ctx := context.Background()

	oauth2Config := &oauth2.Config{
		ClientID:     cfg.GmailClientID,
		ClientSecret: cfg.GmailClientSecret,
		Scopes:       []string{gmail.GmailSendScope},
		Endpoint:     google.Endpoint,
	}

	token := &oauth2.Token{RefreshToken: cfg.GmailRefreshToken}
	tokenSource := oauth2Config.TokenSource(ctx, token)

	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	return &GmailSender{service: service, user: cfg.SenderAddress()}, nil
}

// Send delivers the message via the Gmail API.
func (g *GmailSender) Send(ctx context.Context, msg Message) error {
	raw := base64.URLEncoding.EncodeToString([]byte(msg.encode()))

	_, err := g.service.Users.Messages.Send(g.user, &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to send mail via Gmail API: %w", err)
	}
	return nil
}
