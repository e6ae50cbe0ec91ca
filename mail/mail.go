// Package mail is the dispatch boundary: it accepts a well-formed
// message descriptor and either confirms dispatch or fails with a
// transport error. Credentials and retry policy live with the caller.
package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// Message is one outgoing email.
type Message struct {
	From     string
	FromName string
	To       string
	Subject  string
	HTML     string
}

// Sender delivers messages. Implementations must be safe for use from
// concurrent handlers.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig configures the SMTP sender.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

type smtpSender struct {
	cfg SMTPConfig
}

// NewSMTPSender builds a Sender speaking SMTP with STARTTLS when the
// server offers it. Typically port 587.
func NewSMTPSender(cfg SMTPConfig) Sender {
	return &smtpSender{cfg: cfg}
}

func (s *smtpSender) Send(ctx context.Context, msg Message) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("mail: dial %s: %w", addr, err)
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return fmt.Errorf("mail: handshake: %w", err)
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err := c.StartTLS(tlsCfg); err != nil {
			return fmt.Errorf("mail: starttls: %w", err)
		}
	}

	if s.cfg.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := c.Auth(auth); err != nil {
			return fmt.Errorf("mail: auth: %w", err)
		}
	}

	if err := c.Mail(msg.From); err != nil {
		return fmt.Errorf("mail: from: %w", err)
	}
	if err := c.Rcpt(msg.To); err != nil {
		return fmt.Errorf("mail: rcpt: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("mail: data: %w", err)
	}
	if _, err := w.Write(encode(msg)); err != nil {
		return fmt.Errorf("mail: write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("mail: close: %w", err)
	}
	return nil
}

func encode(msg Message) []byte {
	var b bytes.Buffer
	write := func(format string, a ...any) { fmt.Fprintf(&b, format, a...) }

	write("From: %s\r\n", fromHeader(msg))
	write("To: %s\r\n", msg.To)
	write("Subject: %s\r\n", msg.Subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("\r\n")
	write("%s\r\n", msg.HTML)
	return b.Bytes()
}

func fromHeader(msg Message) string {
	name := strings.TrimSpace(msg.FromName)
	if name == "" {
		return msg.From
	}
	return fmt.Sprintf("%s <%s>", name, msg.From)
}
