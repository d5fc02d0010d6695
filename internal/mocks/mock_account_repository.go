package mocks

import (
	"context"
	"time"

	"github.com/Guhan-3/inflate/domain"
)

// MockAccountRepository implements domain.AccountRepository for testing
type MockAccountRepository struct {
	CreateFunc                  func(ctx context.Context, account *domain.Account) error
	FindByEmailFunc             func(ctx context.Context, email string) (*domain.Account, error)
	FindByIDFunc                func(ctx context.Context, id string) (*domain.Account, error)
	FindByResetTokenFunc        func(ctx context.Context, token string) (*domain.Account, error)
	StoreSessionTokensFunc      func(ctx context.Context, id, accessToken, refreshToken string) error
	SetSignupOTPFunc            func(ctx context.Context, id, otp string, issuedAt time.Time) error
	ConsumeSignupOTPFunc        func(ctx context.Context, id, otp string, notBefore time.Time) (bool, error)
	SetPasswordResetOTPFunc     func(ctx context.Context, id, otp string, issuedAt time.Time) error
	ConsumePasswordResetOTPFunc func(ctx context.Context, id, otp string, notBefore time.Time) (bool, error)
	SetPasswordResetTokenFunc   func(ctx context.Context, id, token string) error
	ReplaceCredentialFunc       func(ctx context.Context, id, newHash string) error
}

// NewMockAccountRepository creates a new MockAccountRepository with default behaviors
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

// Create creates a new account
func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	// Default behavior: assign an id and succeed
	if account.ID == "" {
		account.ID = "mock-account-id"
	}
	return nil
}

// FindByEmail finds an account by email
func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// FindByID finds an account by id
func (m *MockAccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// FindByResetToken finds an account by its live reset token
func (m *MockAccountRepository) FindByResetToken(ctx context.Context, token string) (*domain.Account, error) {
	if m.FindByResetTokenFunc != nil {
		return m.FindByResetTokenFunc(ctx, token)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// StoreSessionTokens records the last-issued token pair
func (m *MockAccountRepository) StoreSessionTokens(ctx context.Context, id, accessToken, refreshToken string) error {
	if m.StoreSessionTokensFunc != nil {
		return m.StoreSessionTokensFunc(ctx, id, accessToken, refreshToken)
	}
	// Default behavior: success
	return nil
}

// SetSignupOTP stores a signup OTP
func (m *MockAccountRepository) SetSignupOTP(ctx context.Context, id, otp string, issuedAt time.Time) error {
	if m.SetSignupOTPFunc != nil {
		return m.SetSignupOTPFunc(ctx, id, otp, issuedAt)
	}
	// Default behavior: success
	return nil
}

// ConsumeSignupOTP compares and clears a signup OTP
func (m *MockAccountRepository) ConsumeSignupOTP(ctx context.Context, id, otp string, notBefore time.Time) (bool, error) {
	if m.ConsumeSignupOTPFunc != nil {
		return m.ConsumeSignupOTPFunc(ctx, id, otp, notBefore)
	}
	// Default behavior: mismatch
	return false, nil
}

// SetPasswordResetOTP stores a reset OTP
func (m *MockAccountRepository) SetPasswordResetOTP(ctx context.Context, id, otp string, issuedAt time.Time) error {
	if m.SetPasswordResetOTPFunc != nil {
		return m.SetPasswordResetOTPFunc(ctx, id, otp, issuedAt)
	}
	// Default behavior: success
	return nil
}

// ConsumePasswordResetOTP compares and clears a reset OTP
func (m *MockAccountRepository) ConsumePasswordResetOTP(ctx context.Context, id, otp string, notBefore time.Time) (bool, error) {
	if m.ConsumePasswordResetOTPFunc != nil {
		return m.ConsumePasswordResetOTPFunc(ctx, id, otp, notBefore)
	}
	// Default behavior: mismatch
	return false, nil
}

// SetPasswordResetToken stores a reset token
func (m *MockAccountRepository) SetPasswordResetToken(ctx context.Context, id, token string) error {
	if m.SetPasswordResetTokenFunc != nil {
		return m.SetPasswordResetTokenFunc(ctx, id, token)
	}
	// Default behavior: success
	return nil
}

// ReplaceCredential swaps the stored hash and clears reset state
func (m *MockAccountRepository) ReplaceCredential(ctx context.Context, id, newHash string) error {
	if m.ReplaceCredentialFunc != nil {
		return m.ReplaceCredentialFunc(ctx, id, newHash)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.AccountRepository = (*MockAccountRepository)(nil)
