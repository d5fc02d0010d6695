package mocks

import "github.com/Guhan-3/inflate/domain"

// MockMailer implements domain.Mailer for testing
type MockMailer struct {
	SendSignupOTPFunc            func(to, otp string) error
	SendPasswordResetOTPFunc     func(to, otp string) error
	SendVerificationSuccessFunc  func(to string) error
	SendPasswordResetSuccessFunc func(to string) error
}

// NewMockMailer creates a new MockMailer with default behaviors
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// SendSignupOTP delivers a signup verification code
func (m *MockMailer) SendSignupOTP(to, otp string) error {
	if m.SendSignupOTPFunc != nil {
		return m.SendSignupOTPFunc(to, otp)
	}
	return nil
}

// SendPasswordResetOTP delivers a password reset code
func (m *MockMailer) SendPasswordResetOTP(to, otp string) error {
	if m.SendPasswordResetOTPFunc != nil {
		return m.SendPasswordResetOTPFunc(to, otp)
	}
	return nil
}

// SendVerificationSuccess delivers the verified confirmation
func (m *MockMailer) SendVerificationSuccess(to string) error {
	if m.SendVerificationSuccessFunc != nil {
		return m.SendVerificationSuccessFunc(to)
	}
	return nil
}

// SendPasswordResetSuccess delivers the reset confirmation
func (m *MockMailer) SendPasswordResetSuccess(to string) error {
	if m.SendPasswordResetSuccessFunc != nil {
		return m.SendPasswordResetSuccessFunc(to)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.Mailer = (*MockMailer)(nil)
