// Package mail sends plain transactional messages.
//
// Sender hides the provider. ResendSender talks to the Resend API and
// LogSender only writes the message to the structured log, which is what
// local runs and tests use when no API key is configured.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"room-reservation/internal/pkg/errs"

	"github.com/resend/resend-go/v3"
)

type Message struct {
	To      string
	Subject string
	Text    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type ResendSender struct {
	client *resend.Client
	from   string
}

func NewResendSender(apiKey, fromEmail, fromName string) *ResendSender {
	from := fromEmail
	if fromName != "" {
		from = fmt.Sprintf("%s <%s>", fromName, fromEmail)
	}
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    toHTML(msg.Text),
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return errs.Wrapf(err, "failed to send %q email", msg.Subject)
	}
	return nil
}

// LogSender drops the message after logging it
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.InfoContext(ctx, "mail not sent (log sender)",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}

func toHTML(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = htmlEscaper.Replace(l)
	}
	return "<p>" + strings.Join(lines, "<br>") + "</p>"
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&#34;")
