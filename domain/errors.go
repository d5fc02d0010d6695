package domain

import "errors"

// Registration errors
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrEmailTaken      = errors.New("account with this email already exists")
	ErrAlreadyVerified = errors.New("account is already verified")
)

// Authentication errors
var (
	// ErrInvalidCredentials covers both unknown email and wrong password;
	// callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// OTP errors
var (
	ErrOTPInvalid = errors.New("invalid or expired otp")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)
