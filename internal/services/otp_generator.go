package services

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/Guhan-3/inflate/domain"
)

// OTPGeneratorImpl implements domain.OTPGenerator. Each digit is sampled
// independently from crypto/rand, so the distribution is uniform across the
// whole code space.
type OTPGeneratorImpl struct {
	length int
}

// NewOTPGenerator creates a generator for fixed-length numeric codes
func NewOTPGenerator(length int) domain.OTPGenerator {
	return &OTPGeneratorImpl{length: length}
}

// Generate implements domain.OTPGenerator
func (g *OTPGeneratorImpl) Generate() (string, error) {
	digits := make([]byte, g.length)

	for i := 0; i < g.length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}

// Compile-time interface compliance verification
var _ domain.OTPGenerator = (*OTPGeneratorImpl)(nil)
