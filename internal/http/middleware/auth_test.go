package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Guhan-3/inflate/domain"
	"github.com/Guhan-3/inflate/internal/mocks"
)

func runAuthMiddleware(tokenSvc domain.TokenService, authHeader string) (*httptest.ResponseRecorder, bool) {
	gin.SetMode(gin.TestMode)

	reached := false
	r := gin.New()
	r.GET("/me", AuthMiddleware(tokenSvc), func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)

	return w, reached
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		setupMocks     func(svc *mocks.MockTokenService)
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Authorization header required",
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid authorization header format",
		},
		{
			name:           "bearer without token",
			authHeader:     "Bearer",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid authorization header format",
		},
		{
			name:       "expired token",
			authHeader: "Bearer expired-token",
			setupMocks: func(svc *mocks.MockTokenService) {
				svc.ValidateTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenExpired
				}
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Token expired",
		},
		{
			name:           "malformed token",
			authHeader:     "Bearer garbage",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid token",
		},
		{
			name:       "reset-scoped token rejected",
			authHeader: "Bearer reset-jwt",
			setupMocks: func(svc *mocks.MockTokenService) {
				svc.ValidateTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{Subject: "acct-1", Purpose: domain.TokenPurposePasswordReset}, nil
				}
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid token",
		},
		{
			name:       "valid token",
			authHeader: "Bearer good-jwt",
			setupMocks: func(svc *mocks.MockTokenService) {
				svc.ValidateTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{Subject: "acct-1"}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService()
			if tt.setupMocks != nil {
				tt.setupMocks(tokenSvc)
			}

			w, reached := runAuthMiddleware(tokenSvc, tt.authHeader)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
				assert.False(t, reached, "handler must not run on auth failure")
			} else {
				assert.True(t, reached, "handler should run on auth success")
			}
		})
	}
}

func TestAuthMiddleware_SetsAccountID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateTokenFunc = func(token string) (*domain.TokenClaims, error) {
		return &domain.TokenClaims{Subject: "acct-42"}, nil
	}

	var gotID string
	r := gin.New()
	r.GET("/me", AuthMiddleware(tokenSvc), func(c *gin.Context) {
		id, _ := c.Get("account_id")
		gotID, _ = id.(string)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good-jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "acct-42", gotID)
}

func TestWithJWT_RoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateTokenFunc = func(token string) (*domain.TokenClaims, error) {
		if token != "good-jwt" {
			return nil, domain.ErrTokenMalformed
		}
		return &domain.TokenClaims{Subject: "acct-1"}, nil
	}
	mw := NewAuthMW(tokenSvc)

	r := gin.New()
	r.GET("/me", mw.WithJWT(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good-jwt")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer other")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
