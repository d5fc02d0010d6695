package mocks

import (
	"time"

	"github.com/Guhan-3/inflate/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateAccessTokenFunc  func(subject string) (string, error)
	GenerateRefreshTokenFunc func(subject string) (string, error)
	GenerateResetTokenFunc   func(subject string) (string, error)
	ValidateTokenFunc        func(token string) (*domain.TokenClaims, error)
	AccessTTLValue           time.Duration
	ResetTTLValue            time.Duration
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{
		AccessTTLValue: 15 * time.Minute,
		ResetTTLValue:  15 * time.Minute,
	}
}

// GenerateAccessToken generates an access token
func (m *MockTokenService) GenerateAccessToken(subject string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(subject)
	}
	return "access_" + subject, nil
}

// GenerateRefreshToken generates a refresh token
func (m *MockTokenService) GenerateRefreshToken(subject string) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(subject)
	}
	return "refresh_" + subject, nil
}

// GenerateResetToken generates a reset-scoped token
func (m *MockTokenService) GenerateResetToken(subject string) (string, error) {
	if m.GenerateResetTokenFunc != nil {
		return m.GenerateResetTokenFunc(subject)
	}
	return "reset_" + subject, nil
}

// ValidateToken validates a token and returns its claims
func (m *MockTokenService) ValidateToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenMalformed
}

// AccessTTL returns the configured access token lifetime
func (m *MockTokenService) AccessTTL() time.Duration { return m.AccessTTLValue }

// ResetTTL returns the configured reset token lifetime
func (m *MockTokenService) ResetTTL() time.Duration { return m.ResetTTLValue }

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
