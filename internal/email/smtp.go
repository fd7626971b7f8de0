package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/config"
)

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPService(cfg config.SMTPConfig) Service {
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpService) SendPasswordReset(ctx context.Context, to, token string) error {
	body := fmt.Sprintf(
		"You requested a password reset. Use the following token to reset your password: %s\n\nThis token is valid for 1 hour.",
		token,
	)
	return s.send(to, "Password Reset Request", body)
}

func (s *smtpService) SendInvite(ctx context.Context, to, fullName string) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYou are invited to work on the Doctor CRM system. Please follow the instructions to register and get started.\n\nBest Regards,\nThe Doctor CRM Team",
		fullName,
	)
	return s.send(to, "You Are Invited to Work on Doctor CRM", body)
}

func (s *smtpService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
