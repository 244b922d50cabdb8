package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Message represents an email to be sent.
type Message struct {
	From    string
	To      []string
	Subject string
	Body    string // HTML allowed
}

// Sender abstracts email sending so transports can be swapped and tests
// can substitute a fake.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// encode renders the message as an RFC 822 mail with an HTML body.
func (m Message) encode() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("From: %s\r\n", m.From))
	b.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(m.To, ", ")))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", m.Subject))
	b.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z)))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(m.Body)

	return b.String()
}
