package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/Guhan-3/inflate/internal/http/handlers"
	"github.com/Guhan-3/inflate/internal/http/middleware"
)

// BuildRouter wires the versioned account routes
func BuildRouter(ah *handlers.AccountHandlers, jwtmw *middleware.AuthMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	users := r.Group("/api/v1/users")
	users.POST("/register", ah.Register)
	users.POST("/login", ah.Login)
	users.POST("/verify-signup-otp", ah.VerifySignupOTP)
	users.POST("/resend-signup-otp", ah.ResendSignupOTP)
	users.POST("/forgot-password", ah.ForgotPassword)
	users.POST("/verify-password-reset-otp", ah.VerifyPasswordResetOTP)
	users.POST("/resend-password-reset-otp", ah.ResendPasswordResetOTP)
	users.POST("/reset-password", ah.ResetPassword)

	users.GET("/me", jwtmw.WithJWT(), ah.Me)

	return r
}
