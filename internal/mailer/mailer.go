package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/smtp"
	"strings"
)

// Mailer delivers a single HTML message. Delivery reliability is the
// transport's problem; callers treat failures as log-and-continue.
type Mailer interface {
	Send(ctx context.Context, to string, subject string, htmlBody string) error
}

// SMTP sends mail through a plain SMTP relay. No pooling, no retries:
// intake volume is a handful of messages per submission.
type SMTP struct {
	addr       string
	host       string
	from       string
	senderName string
	auth       smtp.Auth
}

func NewSMTP(host string, port int, username string, password string, from string, senderName string) *SMTP {
	m := &SMTP{
		addr:       fmt.Sprintf("%s:%d", host, port),
		host:       host,
		from:       from,
		senderName: senderName,
	}
	if username != "" {
		m.auth = smtp.PlainAuth("", username, password, host)
	}
	return m
}

func (m *SMTP) Send(_ context.Context, to string, subject string, htmlBody string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", m.senderName), m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// Disabled is used when no SMTP host is configured; it logs instead of
// sending so local development works without a relay.
type Disabled struct{}

func (Disabled) Send(_ context.Context, to string, subject string, _ string) error {
	slog.Info("mail delivery disabled; skipping message", "to", to, "subject", subject)
	return nil
}
