package domain

import "time"

// Account represents a registered user in the system
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string

	// Signup verification state
	IsVerified         bool
	SignupOTP          string
	SignupOTPCreatedAt *time.Time

	// Password reset state
	PasswordResetOTP          string
	PasswordResetOTPCreatedAt *time.Time
	PasswordResetToken        string

	// Last-issued session tokens, stored for traceability only;
	// bearer tokens are self-contained and validated statelessly.
	AccessToken  string
	RefreshToken string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicView returns the externally visible projection of the account.
// The credential hash and any live OTP/token secrets never leave the service.
func (a *Account) PublicView() PublicAccount {
	return PublicAccount{
		ID:         a.ID,
		Username:   a.Username,
		Email:      a.Email,
		IsVerified: a.IsVerified,
	}
}

// PublicAccount is the response-safe account projection
type PublicAccount struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	IsVerified bool   `json:"is_verified"`
}

// AuthResult represents a successful login outcome
type AuthResult struct {
	Account      *Account
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// ResetAuthorization is the narrowly scoped credential returned after a
// successful password-reset OTP verification. It authorizes exactly one
// completion of the reset flow before it expires.
type ResetAuthorization struct {
	ResetToken string
	ExpiresIn  int64
}

// TokenClaims represents verified JWT claims
type TokenClaims struct {
	Subject   string
	Purpose   string
	IssuedAt  int64
	ExpiresAt int64
}

// TokenPurposePasswordReset tags reset-scoped tokens so they cannot be
// replayed as session tokens. Access and refresh tokens carry no purpose.
const TokenPurposePasswordReset = "password_reset"
