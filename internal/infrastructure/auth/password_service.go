package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/Guhan-3/inflate/domain"
)

const (
	saltLength = 16
	keyLength  = 32
	iterations = 100_000
)

// PasswordServiceImpl implements domain.PasswordService using
// PBKDF2-HMAC-SHA256. The stored form is hex(salt) || hex(key), which keeps
// the salt decodable for re-derivation.
type PasswordServiceImpl struct{}

// NewPasswordService creates a new password service
func NewPasswordService() domain.PasswordService {
	return &PasswordServiceImpl{}
}

// Hash implements domain.PasswordService
func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)
	return hex.EncodeToString(salt) + hex.EncodeToString(key), nil
}

// Verify implements domain.PasswordService. It fails closed: any decoding
// problem or length mismatch yields false, never an error.
func (p *PasswordServiceImpl) Verify(storedHash, password string) bool {
	if len(storedHash) != 2*(saltLength+keyLength) {
		return false
	}

	salt, err := hex.DecodeString(storedHash[:2*saltLength])
	if err != nil {
		return false
	}
	storedKey, err := hex.DecodeString(storedHash[2*saltLength:])
	if err != nil {
		return false
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)
	return subtle.ConstantTimeCompare(key, storedKey) == 1
}

// Compile-time interface compliance verification
var _ domain.PasswordService = (*PasswordServiceImpl)(nil)
