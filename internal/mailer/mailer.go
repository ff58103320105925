package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/ryanpavini/sistema-na-backend/internal/config"
)

// Mailer delivers activation and reset links. Delivery is best-effort:
// callers never surface a send failure to the client.
type Mailer interface {
	SendActivationLink(to, link string) error
	SendResetLink(to, link string) error
}

// New returns an SMTP-backed mailer, or a log-only mailer when no SMTP host
// is configured (local development).
func New(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" {
		return &LogMailer{}
	}
	return &SMTPMailer{
		addr: cfg.SMTPHost + ":" + cfg.SMTPPort,
		auth: smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost),
		from: cfg.SMTPFrom,
	}
}

type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

func (m *SMTPMailer) SendActivationLink(to, link string) error {
	msg := fmt.Sprintf("Subject: Activate your admin account\n\nClick here to set your password: %s", link)
	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg))
}

func (m *SMTPMailer) SendResetLink(to, link string) error {
	msg := fmt.Sprintf("Subject: Password reset\n\nClick here to reset your password: %s", link)
	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg))
}

// LogMailer writes the link to the server log instead of sending mail.
type LogMailer struct{}

func (m *LogMailer) SendActivationLink(to, link string) error {
	log.Printf("📧 Activation link for %s: %s", to, link)
	return nil
}

func (m *LogMailer) SendResetLink(to, link string) error {
	log.Printf("📧 Reset link for %s: %s", to, link)
	return nil
}
