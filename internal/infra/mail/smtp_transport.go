package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"parcel/config"
	"parcel/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	implicitTLSPort = 465
	dialTimeout     = 10 * time.Second
)

// smtpTransport delivers mail events through an SMTP relay. Port 465 uses
// implicit TLS; any other port relies on STARTTLS when the server offers it.
type smtpTransport struct {
	host        string
	addr        string
	auth        smtp.Auth
	implicitTLS bool
	logger      *slog.Logger
}

// NewSMTPTransport creates a transport for the configured relay.
func NewSMTPTransport(cfg config.SMTPConfig, logger *slog.Logger) service.MailTransport {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &smtpTransport{
		host:        cfg.Host,
		addr:        net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		auth:        auth,
		implicitTLS: cfg.Port == implicitTLSPort,
		logger:      logger,
	}
}

// Dispatch sends one message addressed to every recipient of the event.
func (t *smtpTransport) Dispatch(ctx context.Context, event *service.MailEvent) error {
	msg := buildMessage(event)

	if !t.implicitTLS {
		return errors.WithStack(smtp.SendMail(t.addr, t.auth, event.From, event.To, msg))
	}

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: dialTimeout},
		Config:    &tls.Config{ServerName: t.host, MinVersion: tls.VersionTLS12},
	}
	conn, err := dialer.DialContext(ctx, "tcp", t.addr)
	if err != nil {
		return errors.Wrap(err, "failed to dial smtp relay")
	}

	client, err := smtp.NewClient(conn, t.host)
	if err != nil {
		conn.Close()

		return errors.Wrap(err, "failed to open smtp session")
	}
	defer client.Close()

	if t.auth != nil {
		if err := client.Auth(t.auth); err != nil {
			return errors.Wrap(err, "smtp auth failed")
		}
	}
	if err := client.Mail(event.From); err != nil {
		return errors.WithStack(err)
	}
	for _, to := range event.To {
		if err := client.Rcpt(to); err != nil {
			return errors.Wrapf(err, "smtp relay rejected recipient %s", to)
		}
	}

	w, err := client.Data()
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := w.Write(msg); err != nil {
		return errors.WithStack(err)
	}
	if err := w.Close(); err != nil {
		return errors.WithStack(err)
	}

	t.logger.Debug("[SMTP] Mail sent",
		slog.String("notification_id", event.NotificationID),
		slog.Int("recipient_count", len(event.To)),
	)

	return errors.WithStack(client.Quit())
}

// Close releases resources (no-op, sessions are per message)
func (t *smtpTransport) Close() error {
	return nil
}

// buildMessage renders a plain text RFC 5322 message.
func buildMessage(event *service.MailEvent) []byte {
	var buf bytes.Buffer

	writeHeader := func(key, value string) {
		buf.WriteString(key)
		buf.WriteString(": ")
		buf.WriteString(value)
		buf.WriteString("\r\n")
	}

	writeHeader("From", event.From)
	writeHeader("To", strings.Join(event.To, ", "))
	writeHeader("Subject", mime.QEncoding.Encode("utf-8", event.Subject))
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", `text/plain; charset="utf-8"`)
	if event.NotificationID != "" {
		writeHeader("X-Notification-Id", event.NotificationID)
	}
	buf.WriteString("\r\n")
	buf.WriteString(strings.ReplaceAll(event.Body, "\n", "\r\n"))
	buf.WriteString("\r\n")

	return buf.Bytes()
}
