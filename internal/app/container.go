package app

import (
	"gorm.io/gorm"

	"github.com/Guhan-3/inflate/domain"
	"github.com/Guhan-3/inflate/internal/config"
	"github.com/Guhan-3/inflate/internal/infrastructure/auth"
	"github.com/Guhan-3/inflate/internal/infrastructure/database"
	"github.com/Guhan-3/inflate/internal/infrastructure/notifications"
	"github.com/Guhan-3/inflate/internal/infrastructure/repositories"
	"github.com/Guhan-3/inflate/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB *gorm.DB

	AccountRepo domain.AccountRepository

	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	OTPGen      domain.OTPGenerator
	Mailer      domain.Mailer
	Audit       domain.AuditLogger
	AccountSvc  domain.AccountService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}

	mailer, err := notifications.NewSMTPService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config:      cfg,
		DB:          db,
		AccountRepo: repositories.NewAccountRepository(db),
		PasswordSvc: auth.NewPasswordService(),
		TokenSvc:    auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL, cfg.ResetTTL),
		OTPGen:      services.NewOTPGenerator(cfg.OTPLength),
		Mailer:      mailer,
		Audit:       services.NewLogAuditLogger(),
	}

	c.AccountSvc = services.NewAccountService(
		c.AccountRepo, c.PasswordSvc, c.TokenSvc, c.OTPGen, c.Mailer, c.Audit, cfg.OTPTTL,
	)
	return c, nil
}
