package models

import (
	"fmt"
	"strconv"

	"crewcall-shop/config"

	"gopkg.in/gomail.v2"
)

// EmailService delivers lead-intake emails to the shop inbox over SMTP.
type EmailService struct {
	dialer *gomail.Dialer
	from   string
	inbox  string
}

// NewEmailService builds the SMTP mailer. It returns an error when the
// SMTP settings are absent; callers then run in simulation mode and
// only log outgoing mail.
func NewEmailService() (*EmailService, error) {
	cfg := config.AppConfig

	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass)

	return &EmailService{
		dialer: dialer,
		from:   cfg.SMTPFrom,
		inbox:  cfg.LeadInbox,
	}, nil
}

// SendLead forwards one lead request to the shop inbox.
func (s *EmailService) SendLead(subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.inbox)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
