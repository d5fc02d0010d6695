package notifications

import (
	"fmt"
	"log"

	"github.com/wneessen/go-mail"

	"github.com/Guhan-3/inflate/domain"
)

// SMTPServiceImpl implements domain.Mailer over an SMTP transport
type SMTPServiceImpl struct {
	client *mail.Client
	from   string
}

// NewSMTPService creates a new SMTP notification service. When user is empty
// the service runs in mock mode and logs messages instead of sending.
func NewSMTPService(host string, port int, user, password string) (domain.Mailer, error) {
	if user == "" {
		return &SMTPServiceImpl{}, nil
	}

	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(user),
		mail.WithPassword(password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return &SMTPServiceImpl{client: client, from: user}, nil
}

// SendSignupOTP implements domain.Mailer
func (s *SMTPServiceImpl) SendSignupOTP(to, otp string) error {
	return s.send(to, "Signup Verification OTP", fmt.Sprintf("Your verification code is: %s", otp))
}

// SendPasswordResetOTP implements domain.Mailer
func (s *SMTPServiceImpl) SendPasswordResetOTP(to, otp string) error {
	return s.send(to, "Password Reset OTP", fmt.Sprintf("Your password reset code is: %s", otp))
}

// SendVerificationSuccess implements domain.Mailer
func (s *SMTPServiceImpl) SendVerificationSuccess(to string) error {
	return s.send(to, "Account Verified", "Your account has been successfully verified.")
}

// SendPasswordResetSuccess implements domain.Mailer
func (s *SMTPServiceImpl) SendPasswordResetSuccess(to string) error {
	return s.send(to, "Password Reset Successful", "Your password has been successfully reset.")
}

func (s *SMTPServiceImpl) send(to, subject, body string) error {
	if s.client == nil {
		log.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s", to, subject, body)
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := s.client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.Mailer = (*SMTPServiceImpl)(nil)
