package utils

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/divinedarshan/divine-darshan-backend/config"
)

// Mailer sends transactional mail over SMTP. When SMTP is not configured the
// send is logged and skipped so local development works without a relay.
type Mailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) send(to, subject, body string) error {
	if m.cfg.SMTPHost == "" || m.cfg.SMTPUsername == "" {
		log.Printf("SMTP not configured, skipping mail to %s (%s)", to, subject)
		return nil
	}

	from := m.cfg.SMTPFromEmail
	if from == "" {
		from = m.cfg.SMTPUsername
	}

	msg := fmt.Sprintf(
		"From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		m.cfg.SMTPFromName, from, to, subject, body,
	)

	addr := fmt.Sprintf("%s:%s", m.cfg.SMTPHost, m.cfg.SMTPPort)
	auth := smtp.PlainAuth("", m.cfg.SMTPUsername, m.cfg.SMTPPassword, m.cfg.SMTPHost)

	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

// SendResetLink mails a password-reset link pointing at the SPA.
func (m *Mailer) SendResetLink(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.cfg.FrontendURL, token)
	body := fmt.Sprintf(
		"Namaste,\n\nA password reset was requested for your Divine Darshan account.\n\nReset your password here: %s\n\nThe link expires in 15 minutes. If you did not request this, you can ignore this mail.",
		link,
	)
	return m.send(to, "Reset your Divine Darshan password", body)
}

// SendBookingConfirmation mails the devotee after a booking is persisted.
// Failures here never fail the booking itself.
func (m *Mailer) SendBookingConfirmation(to, fullName, pujaName, date, paymentID string) error {
	body := fmt.Sprintf(
		"Namaste %s,\n\nYour puja booking is confirmed.\n\nPuja: %s\nDate: %s\nPayment reference: %s\n\nThank you for booking with Divine Darshan.",
		fullName, pujaName, date, paymentID,
	)
	return m.send(to, "Your puja booking is confirmed", body)
}
