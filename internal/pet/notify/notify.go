// Package notify delivers out-of-band notifications. Delivery is always best
// effort; callers must never fail a request because a notification did not go
// out.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/moodachu/moodachu/pkg/slogx"
)

// Sender delivers notifications to users.
type Sender interface {
	// InvitationAccepted tells the proposer that acceptedBy agreed to share
	// the pet.
	InvitationAccepted(ctx context.Context, toEmail, acceptedBy, petLabel string) error
}

// SMTPConfig configures the SMTP sender. Host empty means notifications are
// disabled.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// NewSender returns an SMTP-backed sender, or a disabled no-op sender when no
// host is configured.
func NewSender(cfg SMTPConfig) Sender {
	if cfg.Host == "" {
		return disabledSender{}
	}
	return &smtpSender{cfg: cfg}
}

type disabledSender struct{}

func (disabledSender) InvitationAccepted(ctx context.Context, toEmail, acceptedBy, petLabel string) error {
	slogx.FromContext(ctx).Debug("notifications disabled, skipping invitation-accepted mail",
		slog.String("to", toEmail),
	)
	return nil
}

type smtpSender struct {
	cfg SMTPConfig
}

func (s *smtpSender) InvitationAccepted(ctx context.Context, toEmail, acceptedBy, petLabel string) error {
	subject := "Your pet invitation was accepted"
	if petLabel == "" {
		petLabel = "your shared pet"
	}
	body := fmt.Sprintf("%s accepted your invitation. %s is waiting for its first mood.\r\n",
		acceptedBy, petLabel)

	return s.send(toEmail, subject, body)
}

func (s *smtpSender) send(to, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + s.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	addr := s.cfg.Host + ":" + s.cfg.Port

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg))
}
