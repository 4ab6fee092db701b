// Package report delivers rendered monthly sheets over SMTP.
package report

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"fintrack/internal/config"
)

// Sender handles sending report emails via SMTP.
type Sender struct {
	cfg *config.Config
	log *logrus.Logger
}

// NewSender creates a new report sender.
func NewSender(cfg *config.Config, log *logrus.Logger) *Sender {
	return &Sender{cfg: cfg, log: log}
}

// SendMonthlySheet mails an already-rendered monthly sheet. The body is
// the same plain text the sheet view writes to a terminal.
func (s *Sender) SendMonthlySheet(to, subject, body string) error {
	if !s.cfg.MailConfigured() {
		return fmt.Errorf("SMTP is not configured (SMTP_HOST and SENDER_EMAIL are required)")
	}

	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.log.Errorf("Failed to send monthly sheet to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.log.Infof("Monthly sheet emailed to %s: %s", to, subject)
	return nil
}
