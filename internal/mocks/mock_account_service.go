package mocks

import (
	"context"

	"github.com/Guhan-3/inflate/domain"
)

// MockAccountService implements domain.AccountService for testing
type MockAccountService struct {
	RegisterFunc               func(ctx context.Context, username, email, password string) (*domain.Account, error)
	VerifySignupOTPFunc        func(ctx context.Context, email, otp string) error
	ResendSignupOTPFunc        func(ctx context.Context, email string) error
	LoginFunc                  func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	InitiatePasswordResetFunc  func(ctx context.Context, email string) error
	VerifyPasswordResetOTPFunc func(ctx context.Context, email, otp string) (*domain.ResetAuthorization, error)
	ResendPasswordResetOTPFunc func(ctx context.Context, email string) error
	CompletePasswordResetFunc  func(ctx context.Context, resetToken, newPassword string) error
	ProfileFunc                func(ctx context.Context, id string) (*domain.Account, error)
}

// NewMockAccountService creates a new MockAccountService with default behaviors
func NewMockAccountService() *MockAccountService {
	return &MockAccountService{}
}

// Register registers a new account
func (m *MockAccountService) Register(ctx context.Context, username, email, password string) (*domain.Account, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, email, password)
	}
	return &domain.Account{ID: "mock-account-id", Username: username, Email: email}, nil
}

// VerifySignupOTP verifies a signup code
func (m *MockAccountService) VerifySignupOTP(ctx context.Context, email, otp string) error {
	if m.VerifySignupOTPFunc != nil {
		return m.VerifySignupOTPFunc(ctx, email, otp)
	}
	return nil
}

// ResendSignupOTP reissues a signup code
func (m *MockAccountService) ResendSignupOTP(ctx context.Context, email string) error {
	if m.ResendSignupOTPFunc != nil {
		return m.ResendSignupOTPFunc(ctx, email)
	}
	return nil
}

// Login authenticates an account
func (m *MockAccountService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

// InitiatePasswordReset starts the reset flow
func (m *MockAccountService) InitiatePasswordReset(ctx context.Context, email string) error {
	if m.InitiatePasswordResetFunc != nil {
		return m.InitiatePasswordResetFunc(ctx, email)
	}
	return nil
}

// VerifyPasswordResetOTP verifies a reset code
func (m *MockAccountService) VerifyPasswordResetOTP(ctx context.Context, email, otp string) (*domain.ResetAuthorization, error) {
	if m.VerifyPasswordResetOTPFunc != nil {
		return m.VerifyPasswordResetOTPFunc(ctx, email, otp)
	}
	return nil, domain.ErrOTPInvalid
}

// ResendPasswordResetOTP reissues a reset code
func (m *MockAccountService) ResendPasswordResetOTP(ctx context.Context, email string) error {
	if m.ResendPasswordResetOTPFunc != nil {
		return m.ResendPasswordResetOTPFunc(ctx, email)
	}
	return nil
}

// CompletePasswordReset finishes the reset flow
func (m *MockAccountService) CompletePasswordReset(ctx context.Context, resetToken, newPassword string) error {
	if m.CompletePasswordResetFunc != nil {
		return m.CompletePasswordResetFunc(ctx, resetToken, newPassword)
	}
	return nil
}

// Profile returns the account for an id
func (m *MockAccountService) Profile(ctx context.Context, id string) (*domain.Account, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, id)
	}
	return nil, domain.ErrAccountNotFound
}

// Compile-time interface compliance verification
var _ domain.AccountService = (*MockAccountService)(nil)
