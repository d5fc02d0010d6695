package mocks

import "github.com/Guhan-3/inflate/domain"

// MockOTPGenerator implements domain.OTPGenerator for testing
type MockOTPGenerator struct {
	GenerateFunc func() (string, error)
}

// NewMockOTPGenerator creates a new MockOTPGenerator with default behaviors
func NewMockOTPGenerator() *MockOTPGenerator {
	return &MockOTPGenerator{}
}

// Generate produces a one-time code
func (m *MockOTPGenerator) Generate() (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	// Default behavior: fixed code
	return "123456", nil
}

// Compile-time interface compliance verification
var _ domain.OTPGenerator = (*MockOTPGenerator)(nil)
