package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Guhan-3/inflate/domain"
)

const testSecret = "test_secret_key"

func newTestJWTService(accessTTL, refreshTTL, resetTTL time.Duration) domain.TokenService {
	return NewJWTService(testSecret, "inflate-test", accessTTL, refreshTTL, resetTTL)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(15*time.Minute, 7*24*time.Hour, 15*time.Minute)

	tests := []struct {
		name     string
		generate func(subject string) (string, error)
		purpose  string
	}{
		{name: "access token", generate: svc.GenerateAccessToken, purpose: ""},
		{name: "refresh token", generate: svc.GenerateRefreshToken, purpose: ""},
		{name: "reset token", generate: svc.GenerateResetToken, purpose: domain.TokenPurposePasswordReset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tt.generate("account-123")
			if err != nil {
				t.Fatalf("generate error = %v", err)
			}

			claims, err := svc.ValidateToken(token)
			if err != nil {
				t.Fatalf("ValidateToken() error = %v", err)
			}
			if claims.Subject != "account-123" {
				t.Errorf("expected subject account-123, got %q", claims.Subject)
			}
			if claims.Purpose != tt.purpose {
				t.Errorf("expected purpose %q, got %q", tt.purpose, claims.Purpose)
			}
			if claims.ExpiresAt <= claims.IssuedAt {
				t.Error("expiry should be after issuance")
			}
		})
	}
}

func TestJWTService_Expiry(t *testing.T) {
	// A token with a generous TTL is valid just before expiry...
	svc := newTestJWTService(2*time.Second, 2*time.Second, 2*time.Second)
	token, err := svc.GenerateAccessToken("account-123")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if _, err := svc.ValidateToken(token); err != nil {
		t.Fatalf("token should be valid before expiry, got %v", err)
	}

	// ...and one issued already expired fails with the expired kind.
	expired := newTestJWTService(-time.Second, -time.Second, -time.Second)
	token, err = expired.GenerateAccessToken("account-123")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	_, err = svc.ValidateToken(token)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTService_Malformed(t *testing.T) {
	svc := newTestJWTService(15*time.Minute, time.Hour, 15*time.Minute)

	otherKey := []byte("completely_different_secret")
	badSignature := func() string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "account-123",
			"iat": time.Now().Unix(),
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString(otherKey)
		if err != nil {
			t.Fatalf("sign with other key: %v", err)
		}
		return signed
	}()

	missingSubject := func() string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"iat": time.Now().Unix(),
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(testSecret))
		if err != nil {
			t.Fatalf("sign without subject: %v", err)
		}
		return signed
	}()

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
		{name: "wrong signing key", token: badSignature},
		{name: "missing subject", token: missingSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			if !errors.Is(err, domain.ErrTokenMalformed) {
				t.Errorf("expected ErrTokenMalformed, got %v", err)
			}
		})
	}
}

func TestJWTService_TTLAccessors(t *testing.T) {
	svc := newTestJWTService(15*time.Minute, time.Hour, 10*time.Minute)
	if svc.AccessTTL() != 15*time.Minute {
		t.Errorf("unexpected access TTL %v", svc.AccessTTL())
	}
	if svc.ResetTTL() != 10*time.Minute {
		t.Errorf("unexpected reset TTL %v", svc.ResetTTL())
	}
}
