package mocks

import "github.com/Guhan-3/inflate/domain"

// MockPasswordService implements domain.PasswordService for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(storedHash, password string) bool
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// Hash generates a hash for the given password
func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	// Default behavior: recognizable fake hash (testing only)
	return "hashed_" + password, nil
}

// Verify verifies a password against its stored hash
func (m *MockPasswordService) Verify(storedHash, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(storedHash, password)
	}
	// Default behavior: matches the fake hash scheme above
	return storedHash == "hashed_"+password
}

// Compile-time interface compliance verification
var _ domain.PasswordService = (*MockPasswordService)(nil)
