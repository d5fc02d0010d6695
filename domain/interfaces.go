package domain

import (
	"context"
	"time"
)

// AccountRepository defines account data access operations. Every mutation is
// a single atomic statement against the backing store, so two concurrent
// requests for the same account cannot interleave a compare-and-clear.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
	FindByResetToken(ctx context.Context, token string) (*Account, error)

	// StoreSessionTokens records the last-issued access/refresh pair.
	StoreSessionTokens(ctx context.Context, id, accessToken, refreshToken string) error

	// SetSignupOTP overwrites any prior signup OTP; at most one is live.
	SetSignupOTP(ctx context.Context, id, otp string, issuedAt time.Time) error

	// ConsumeSignupOTP atomically compares, clears, and marks the account
	// verified. Returns false with no mutation on mismatch or expiry.
	ConsumeSignupOTP(ctx context.Context, id, otp string, notBefore time.Time) (bool, error)

	SetPasswordResetOTP(ctx context.Context, id, otp string, issuedAt time.Time) error
	ConsumePasswordResetOTP(ctx context.Context, id, otp string, notBefore time.Time) (bool, error)
	SetPasswordResetToken(ctx context.Context, id, token string) error

	// ReplaceCredential swaps the stored hash and clears any lingering
	// reset OTP/token state in the same statement.
	ReplaceCredential(ctx context.Context, id, newHash string) error
}

// AccountService defines the identity lifecycle operations
type AccountService interface {
	Register(ctx context.Context, username, email, password string) (*Account, error)
	VerifySignupOTP(ctx context.Context, email, otp string) error
	ResendSignupOTP(ctx context.Context, email string) error
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	InitiatePasswordReset(ctx context.Context, email string) error
	VerifyPasswordResetOTP(ctx context.Context, email, otp string) (*ResetAuthorization, error)
	ResendPasswordResetOTP(ctx context.Context, email string) error
	CompletePasswordReset(ctx context.Context, resetToken, newPassword string) error
	Profile(ctx context.Context, id string) (*Account, error)
}

// PasswordService defines the credential codec
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(storedHash, password string) bool
}

// TokenService defines signed bearer token operations
type TokenService interface {
	GenerateAccessToken(subject string) (string, error)
	GenerateRefreshToken(subject string) (string, error)
	GenerateResetToken(subject string) (string, error)
	ValidateToken(token string) (*TokenClaims, error)
	AccessTTL() time.Duration
	ResetTTL() time.Duration
}

// OTPGenerator produces fixed-length numeric one-time codes
type OTPGenerator interface {
	Generate() (string, error)
}

// Mailer defines the outbound notification collaborator. Sends happen only
// after the corresponding state change is committed; failures are logged by
// the caller and never roll anything back.
type Mailer interface {
	SendSignupOTP(to, otp string) error
	SendPasswordResetOTP(to, otp string) error
	SendVerificationSuccess(to string) error
	SendPasswordResetSuccess(to string) error
}
