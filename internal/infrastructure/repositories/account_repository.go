package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Guhan-3/inflate/domain"
)

// AccountRepositoryImpl implements domain.AccountRepository using GORM.
// Every mutation is a single conditional UPDATE so compare-and-clear cannot
// interleave between concurrent requests for the same account.
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount represents the database model for Account (with GORM tags)
type DBAccount struct {
	ID           string `gorm:"primaryKey;size:36"`
	Username     string `gorm:"size:255"`
	Email        string `gorm:"uniqueIndex;size:255"`
	PasswordHash string `gorm:"column:hashed_password;size:128"`

	IsVerified         bool       `gorm:"index"`
	SignupOTP          string     `gorm:"column:signup_otp;size:16"`
	SignupOTPCreatedAt *time.Time `gorm:"column:otp_created_at"`

	PasswordResetOTP          string     `gorm:"size:16"`
	PasswordResetOTPCreatedAt *time.Time
	PasswordResetToken        string `gorm:"index;size:512"`

	AccessToken  string `gorm:"size:512"`
	RefreshToken string `gorm:"size:512"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "users"
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create implements domain.AccountRepository. The unique index on email backs
// up the engine's pre-check; a duplicate insert maps to ErrEmailTaken.
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	dbAccount := r.domainToDB(account)
	if err := r.db.WithContext(ctx).Create(dbAccount).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return err
	}
	account.CreatedAt = dbAccount.CreatedAt
	account.UpdatedAt = dbAccount.UpdatedAt
	return nil
}

// FindByEmail implements domain.AccountRepository. Matching is byte-exact;
// email is case-sensitive in this system.
func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// FindByID implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// FindByResetToken implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByResetToken(ctx context.Context, token string) (*domain.Account, error) {
	if token == "" {
		return nil, domain.ErrAccountNotFound
	}
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("password_reset_token = ?", token).First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// StoreSessionTokens implements domain.AccountRepository
func (r *AccountRepositoryImpl) StoreSessionTokens(ctx context.Context, id, accessToken, refreshToken string) error {
	return r.updateByID(ctx, id, map[string]interface{}{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

// SetSignupOTP implements domain.AccountRepository
func (r *AccountRepositoryImpl) SetSignupOTP(ctx context.Context, id, otp string, issuedAt time.Time) error {
	return r.updateByID(ctx, id, map[string]interface{}{
		"signup_otp":     otp,
		"otp_created_at": issuedAt,
	})
}

// ConsumeSignupOTP implements domain.AccountRepository. The compare, the
// expiry check, the clear, and the verified flag flip are one UPDATE.
func (r *AccountRepositoryImpl) ConsumeSignupOTP(ctx context.Context, id, otp string, notBefore time.Time) (bool, error) {
	if otp == "" {
		return false, nil
	}
	res := r.db.WithContext(ctx).Model(&DBAccount{}).
		Where("id = ? AND signup_otp = ? AND otp_created_at >= ?", id, otp, notBefore).
		Updates(map[string]interface{}{
			"signup_otp":     "",
			"otp_created_at": nil,
			"is_verified":    true,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// SetPasswordResetOTP implements domain.AccountRepository
func (r *AccountRepositoryImpl) SetPasswordResetOTP(ctx context.Context, id, otp string, issuedAt time.Time) error {
	return r.updateByID(ctx, id, map[string]interface{}{
		"password_reset_otp":            otp,
		"password_reset_otp_created_at": issuedAt,
	})
}

// ConsumePasswordResetOTP implements domain.AccountRepository
func (r *AccountRepositoryImpl) ConsumePasswordResetOTP(ctx context.Context, id, otp string, notBefore time.Time) (bool, error) {
	if otp == "" {
		return false, nil
	}
	res := r.db.WithContext(ctx).Model(&DBAccount{}).
		Where("id = ? AND password_reset_otp = ? AND password_reset_otp_created_at >= ?", id, otp, notBefore).
		Updates(map[string]interface{}{
			"password_reset_otp":            "",
			"password_reset_otp_created_at": nil,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// SetPasswordResetToken implements domain.AccountRepository
func (r *AccountRepositoryImpl) SetPasswordResetToken(ctx context.Context, id, token string) error {
	return r.updateByID(ctx, id, map[string]interface{}{
		"password_reset_token": token,
	})
}

// ReplaceCredential implements domain.AccountRepository. Clearing the reset
// state in the same statement makes the reset token single-use.
func (r *AccountRepositoryImpl) ReplaceCredential(ctx context.Context, id, newHash string) error {
	return r.updateByID(ctx, id, map[string]interface{}{
		"hashed_password":               newHash,
		"password_reset_otp":            "",
		"password_reset_otp_created_at": nil,
		"password_reset_token":          "",
	})
}

func (r *AccountRepositoryImpl) updateByID(ctx context.Context, id string, values map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&DBAccount{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// domainToDB converts domain account to database account
func (r *AccountRepositoryImpl) domainToDB(account *domain.Account) *DBAccount {
	return &DBAccount{
		ID:                        account.ID,
		Username:                  account.Username,
		Email:                     account.Email,
		PasswordHash:              account.PasswordHash,
		IsVerified:                account.IsVerified,
		SignupOTP:                 account.SignupOTP,
		SignupOTPCreatedAt:        account.SignupOTPCreatedAt,
		PasswordResetOTP:          account.PasswordResetOTP,
		PasswordResetOTPCreatedAt: account.PasswordResetOTPCreatedAt,
		PasswordResetToken:        account.PasswordResetToken,
		AccessToken:               account.AccessToken,
		RefreshToken:              account.RefreshToken,
	}
}

// dbToDomain converts database account to domain account
func (r *AccountRepositoryImpl) dbToDomain(dbAccount *DBAccount) *domain.Account {
	return &domain.Account{
		ID:                        dbAccount.ID,
		Username:                  dbAccount.Username,
		Email:                     dbAccount.Email,
		PasswordHash:              dbAccount.PasswordHash,
		IsVerified:                dbAccount.IsVerified,
		SignupOTP:                 dbAccount.SignupOTP,
		SignupOTPCreatedAt:        dbAccount.SignupOTPCreatedAt,
		PasswordResetOTP:          dbAccount.PasswordResetOTP,
		PasswordResetOTPCreatedAt: dbAccount.PasswordResetOTPCreatedAt,
		PasswordResetToken:        dbAccount.PasswordResetToken,
		AccessToken:               dbAccount.AccessToken,
		RefreshToken:              dbAccount.RefreshToken,
		CreatedAt:                 dbAccount.CreatedAt,
		UpdatedAt:                 dbAccount.UpdatedAt,
	}
}

// Compile-time interface compliance verification
var _ domain.AccountRepository = (*AccountRepositoryImpl)(nil)
