package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/threadfolio/threadfolio-api/internal/config"
)

// Mailer sends transactional mail over SMTP. Without SMTP_HOST it runs in
// preview mode: messages are logged, never sent, and Send still succeeds so
// order flows keep working in development.
type Mailer struct {
	host     string
	port     string
	user     string
	password string
	from     string
	preview  bool
}

func New(cfg *config.Config) *Mailer {
	m := &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
		preview:  !cfg.MailConfigured(),
	}
	if m.preview {
		log.Println("mailer: SMTP_HOST not set, running in preview mode")
	}
	return m
}

func (m *Mailer) Preview() bool {
	return m.preview
}

func (m *Mailer) Send(to []string, subject, body string) error {
	msg := m.buildMessage(to, subject, body)

	if m.preview {
		log.Printf("mailer preview: to=%s subject=%q (%d bytes)", strings.Join(to, ";"), subject, len(msg))
		return nil
	}

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.password, m.host)
	}

	addr := m.host + ":" + m.port
	if err := smtp.SendMail(addr, auth, m.from, to, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (m *Mailer) buildMessage(to []string, subject, body string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "From: %s\r\n", m.from)
	if len(to) > 0 {
		fmt.Fprintf(&sb, "To: %s\r\n", strings.Join(to, ";"))
	}
	fmt.Fprintf(&sb, "Subject: %s\r\n", subject)
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	sb.WriteString("\r\n" + body)
	return sb.String()
}
