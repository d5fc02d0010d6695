package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Guhan-3/inflate/domain"
)

// JWTServiceImpl implements domain.TokenService. Tokens are stateless HS256
// JWTs carrying {sub, exp, iat}; reset-scoped tokens add a purpose claim so
// they cannot stand in for session tokens.
type JWTServiceImpl struct {
	secretKey  []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	resetTTL   time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey, issuer string, accessTTL, refreshTTL, resetTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey:  []byte(secretKey),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		resetTTL:   resetTTL,
	}
}

// GenerateAccessToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateAccessToken(subject string) (string, error) {
	return j.sign(subject, "", j.accessTTL)
}

// GenerateRefreshToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateRefreshToken(subject string) (string, error) {
	return j.sign(subject, "", j.refreshTTL)
}

// GenerateResetToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateResetToken(subject string) (string, error) {
	return j.sign(subject, domain.TokenPurposePasswordReset, j.resetTTL)
}

func (j *JWTServiceImpl) sign(subject, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iss": j.issuer,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	if purpose != "" {
		claims["purpose"] = purpose
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ValidateToken implements domain.TokenService. Expired tokens and
// malformed/badly signed tokens are distinguishable via errors.Is against
// domain.ErrTokenExpired and domain.ErrTokenMalformed.
func (j *JWTServiceImpl) ValidateToken(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenMalformed
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return nil, domain.ErrTokenMalformed
	}
	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	tokenClaims := &domain.TokenClaims{
		Subject:   subject,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}
	if purpose, ok := claims["purpose"].(string); ok {
		tokenClaims.Purpose = purpose
	}
	return tokenClaims, nil
}

// AccessTTL implements domain.TokenService
func (j *JWTServiceImpl) AccessTTL() time.Duration { return j.accessTTL }

// ResetTTL implements domain.TokenService
func (j *JWTServiceImpl) ResetTTL() time.Duration { return j.resetTTL }

// Compile-time interface compliance verification
var _ domain.TokenService = (*JWTServiceImpl)(nil)
