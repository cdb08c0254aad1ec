package mailer

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"clinic-booking/pkg/utils"

	"go.uber.org/zap"
)

// sendTimeout bounds the whole SMTP session, dial and greeting included.
// Delivery runs detached from the request, so a stalled server must not
// pin a goroutine forever.
const sendTimeout = 10 * time.Second

// Mailer delivers notification emails. Delivery is attempted once; the
// outcome is observed for logging only and never fed back to the caller's
// response.
type Mailer interface {
	Send(to, subject, body string) error
}

type smtpMailer struct {
	host    string
	port    int
	from    string
	auth    smtp.Auth
	timeout time.Duration
	log     *zap.Logger
	dryRun  bool
}

func NewSMTPMailer(config utils.EmailConfig, log *zap.Logger) Mailer {
	m := &smtpMailer{
		host:    config.Host,
		port:    config.Port,
		from:    config.From,
		timeout: sendTimeout,
		log:     log.With(zap.String("adapter", "mailer")),
	}

	if config.Host == "" {
		// No SMTP configured: log the message instead of failing every send
		m.dryRun = true
		return m
	}

	m.auth = smtp.PlainAuth("", config.User, config.Password, config.Host)
	return m
}

func (m *smtpMailer) Send(to, subject, body string) error {
	if m.dryRun {
		m.log.Info("Email delivery skipped (no SMTP host configured)",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	msg := []byte(fmt.Sprintf(
		"To: %s\r\nFrom: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s\r\n",
		to, m.from, subject, body,
	))

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	conn, err := net.DialTimeout("tcp", addr, m.timeout)
	if err != nil {
		return fmt.Errorf("dial smtp %s: %w", addr, err)
	}

	// One deadline for the full exchange. A server that accepts the
	// connection and never greets fails here instead of hanging.
	if err := conn.SetDeadline(time.Now().Add(m.timeout)); err != nil {
		conn.Close()
		return fmt.Errorf("set smtp deadline: %w", err)
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake with %s: %w", m.host, err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}
	if m.auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(m.auth); err != nil {
				return fmt.Errorf("smtp auth: %w", err)
			}
		}
	}

	if err := client.Mail(m.from); err != nil {
		return fmt.Errorf("smtp mail from %s: %w", m.from, err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to %s: %w", to, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write email to %s: %w", to, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish email to %s: %w", to, err)
	}

	return client.Quit()
}
