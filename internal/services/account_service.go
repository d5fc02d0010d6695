package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Guhan-3/inflate/domain"
)

// AccountServiceImpl implements domain.AccountService. It orchestrates the
// account state machine: Unregistered -> PendingVerification -> Verified,
// with the password-reset cycle running orthogonally. Notifications are sent
// only after the corresponding store mutation has committed, and a failed
// send is logged but never rolls the transition back.
type AccountServiceImpl struct {
	accountRepo domain.AccountRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpGen      domain.OTPGenerator
	mailer      domain.Mailer
	audit       domain.AuditLogger
	otpTTL      time.Duration
}

// NewAccountService creates a new account service
func NewAccountService(
	accountRepo domain.AccountRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpGen domain.OTPGenerator,
	mailer domain.Mailer,
	audit domain.AuditLogger,
	otpTTL time.Duration,
) domain.AccountService {
	return &AccountServiceImpl{
		accountRepo: accountRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpGen:      otpGen,
		mailer:      mailer,
		audit:       audit,
		otpTTL:      otpTTL,
	}
}

// Register implements domain.AccountService
func (s *AccountServiceImpl) Register(ctx context.Context, username, email, password string) (*domain.Account, error) {
	existing, err := s.accountRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		IsVerified:   false,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	otp, err := s.otpGen.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate signup OTP: %w", err)
	}
	issuedAt := time.Now()
	if err := s.accountRepo.SetSignupOTP(ctx, account.ID, otp, issuedAt); err != nil {
		return nil, fmt.Errorf("failed to store signup OTP: %w", err)
	}
	account.SignupOTP = otp
	account.SignupOTPCreatedAt = &issuedAt

	s.audit.LogEvent(domain.NewAuditEvent(domain.AccountRegisteredEvent, account.ID).WithEmail(email))
	s.notify(account.ID, email, func() error { return s.mailer.SendSignupOTP(email, otp) })

	return account, nil
}

// VerifySignupOTP implements domain.AccountService
func (s *AccountServiceImpl) VerifySignupOTP(ctx context.Context, email, otp string) error {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	ok, err := s.accountRepo.ConsumeSignupOTP(ctx, account.ID, otp, time.Now().Add(-s.otpTTL))
	if err != nil {
		return fmt.Errorf("failed to consume signup OTP: %w", err)
	}
	if !ok {
		return domain.ErrOTPInvalid
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.AccountVerifiedEvent, account.ID).WithEmail(email))
	s.notify(account.ID, email, func() error { return s.mailer.SendVerificationSuccess(email) })
	return nil
}

// ResendSignupOTP implements domain.AccountService
func (s *AccountServiceImpl) ResendSignupOTP(ctx context.Context, email string) error {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account.IsVerified {
		return domain.ErrAlreadyVerified
	}

	otp, err := s.otpGen.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate signup OTP: %w", err)
	}
	if err := s.accountRepo.SetSignupOTP(ctx, account.ID, otp, time.Now()); err != nil {
		return fmt.Errorf("failed to store signup OTP: %w", err)
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.SignupOTPResentEvent, account.ID).WithEmail(email))
	s.notify(account.ID, email, func() error { return s.mailer.SendSignupOTP(email, otp) })
	return nil
}

// Login implements domain.AccountService. Unknown email and wrong password
// collapse into the same failure so callers cannot enumerate accounts.
// Verification is not required to log in.
func (s *AccountServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		s.audit.LogEvent(domain.NewAuditEvent(domain.LoginFailureEvent, "").WithEmail(email).WithError(domain.ErrInvalidCredentials))
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(account.PasswordHash, password) {
		s.audit.LogEvent(domain.NewAuditEvent(domain.LoginFailureEvent, account.ID).WithEmail(email).WithError(domain.ErrInvalidCredentials))
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.tokenSvc.GenerateRefreshToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.accountRepo.StoreSessionTokens(ctx, account.ID, accessToken, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to store session tokens: %w", err)
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.LoginEvent, account.ID).WithEmail(email))

	return &domain.AuthResult{
		Account:      account,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.tokenSvc.AccessTTL().Seconds()),
	}, nil
}

// InitiatePasswordReset implements domain.AccountService
func (s *AccountServiceImpl) InitiatePasswordReset(ctx context.Context, email string) error {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	otp, err := s.otpGen.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate reset OTP: %w", err)
	}
	if err := s.accountRepo.SetPasswordResetOTP(ctx, account.ID, otp, time.Now()); err != nil {
		return fmt.Errorf("failed to store reset OTP: %w", err)
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.ResetRequestedEvent, account.ID).WithEmail(email))
	s.notify(account.ID, email, func() error { return s.mailer.SendPasswordResetOTP(email, otp) })
	return nil
}

// VerifyPasswordResetOTP implements domain.AccountService. On success it
// returns a short-lived reset-scoped token authorizing exactly the
// completion step. The token is also persisted so completion is single-use.
func (s *AccountServiceImpl) VerifyPasswordResetOTP(ctx context.Context, email, otp string) (*domain.ResetAuthorization, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	ok, err := s.accountRepo.ConsumePasswordResetOTP(ctx, account.ID, otp, time.Now().Add(-s.otpTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to consume reset OTP: %w", err)
	}
	if !ok {
		return nil, domain.ErrOTPInvalid
	}

	resetToken, err := s.tokenSvc.GenerateResetToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reset token: %w", err)
	}
	if err := s.accountRepo.SetPasswordResetToken(ctx, account.ID, resetToken); err != nil {
		return nil, fmt.Errorf("failed to store reset token: %w", err)
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.ResetVerifiedEvent, account.ID).WithEmail(email))

	return &domain.ResetAuthorization{
		ResetToken: resetToken,
		ExpiresIn:  int64(s.tokenSvc.ResetTTL().Seconds()),
	}, nil
}

// ResendPasswordResetOTP implements domain.AccountService
func (s *AccountServiceImpl) ResendPasswordResetOTP(ctx context.Context, email string) error {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	otp, err := s.otpGen.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate reset OTP: %w", err)
	}
	if err := s.accountRepo.SetPasswordResetOTP(ctx, account.ID, otp, time.Now()); err != nil {
		return fmt.Errorf("failed to store reset OTP: %w", err)
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.ResetRequestedEvent, account.ID).WithEmail(email))
	s.notify(account.ID, email, func() error { return s.mailer.SendPasswordResetOTP(email, otp) })
	return nil
}

// CompletePasswordReset implements domain.AccountService. The token must be
// cryptographically valid, reset-scoped, and still the live stored token for
// its subject; credential replacement clears it, so replays fail.
func (s *AccountServiceImpl) CompletePasswordReset(ctx context.Context, resetToken, newPassword string) error {
	claims, err := s.tokenSvc.ValidateToken(resetToken)
	if err != nil {
		return domain.ErrTokenInvalid
	}
	if claims.Purpose != domain.TokenPurposePasswordReset {
		return domain.ErrTokenInvalid
	}

	account, err := s.accountRepo.FindByResetToken(ctx, resetToken)
	if err != nil {
		return err
	}
	if account.ID != claims.Subject {
		return domain.ErrTokenInvalid
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.accountRepo.ReplaceCredential(ctx, account.ID, hashedPassword); err != nil {
		return fmt.Errorf("failed to replace credential: %w", err)
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.ResetCompletedEvent, account.ID).WithEmail(account.Email))
	s.notify(account.ID, account.Email, func() error { return s.mailer.SendPasswordResetSuccess(account.Email) })
	return nil
}

// Profile implements domain.AccountService
func (s *AccountServiceImpl) Profile(ctx context.Context, id string) (*domain.Account, error) {
	return s.accountRepo.FindByID(ctx, id)
}

// notify runs a best-effort notification send after the state change has
// committed. Failures go to the audit log and nowhere else.
func (s *AccountServiceImpl) notify(accountID, email string, send func() error) {
	if err := send(); err != nil {
		s.audit.LogEvent(domain.NewAuditEvent(domain.MailFailureEvent, accountID).WithEmail(email).WithError(err))
	}
}

// Compile-time interface compliance verification
var _ domain.AccountService = (*AccountServiceImpl)(nil)
