package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/parishlife/parish_community_app/internal/apperrors"
	"github.com/parishlife/parish_community_app/internal/core/domain"
	portsrepo "github.com/parishlife/parish_community_app/internal/core/ports/repositories"
	portssvc "github.com/parishlife/parish_community_app/internal/core/ports/services"
	"github.com/parishlife/parish_community_app/internal/dto"
	"github.com/parishlife/parish_community_app/internal/middleware"
	"github.com/parishlife/parish_community_app/internal/platform/config"
	"github.com/parishlife/parish_community_app/internal/platform/notify"
	"github.com/parishlife/parish_community_app/internal/utils"
)

type authService struct {
	userRepo     portsrepo.UserRepository
	orgRepo      portsrepo.OrganizationRepository
	registration portsrepo.RegistrationRepository
	otpRepo      portsrepo.OTPRepository
	tokenSvc     portssvc.TokenSvcFacade
	email        notify.EmailSender
	sms          notify.SMSSender
	analytics    *utils.PosthogClientWrapper
	cfg          *config.Config
}

// NewAuthService wires the authentication flows: password login, the staged
// registration, OTP login, password reset and organization membership.
func NewAuthService(
	userRepo portsrepo.UserRepository,
	orgRepo portsrepo.OrganizationRepository,
	registration portsrepo.RegistrationRepository,
	otpRepo portsrepo.OTPRepository,
	tokenSvc portssvc.TokenSvcFacade,
	email notify.EmailSender,
	sms notify.SMSSender,
	analytics *utils.PosthogClientWrapper,
	cfg *config.Config,
) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:     userRepo,
		orgRepo:      orgRepo,
		registration: registration,
		otpRepo:      otpRepo,
		tokenSvc:     tokenSvc,
		email:        email,
		sms:          sms,
		analytics:    analytics,
		cfg:          cfg,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	email = normalizeEmail(email)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error as a bad password so the response doesn't leak
			// which accounts exist.
			return nil, fmt.Errorf("invalid email or password: %w", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("account disabled: %w", apperrors.ErrForbidden)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Warn("Password mismatch on login", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("invalid email or password: %w", apperrors.ErrUnauthorized)
	}

	pair, err := s.tokenSvc.IssueTokenPair(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	if err := s.userRepo.UpdateLastLogin(ctx, user.UserID, time.Now().UTC()); err != nil {
		logger.Warn("Failed to record last login", slog.String("error", err.Error()))
	}
	s.analytics.Enqueue(user.UserID, "user_logged_in", map[string]any{"method": "password"})

	return &dto.LoginResponse{
		Success:      true,
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         dto.ToUserSummary(user),
	}, nil
}

func (s *authService) RegisterStart(ctx context.Context, email, password string) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	email = normalizeEmail(email)

	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return "", fmt.Errorf("email already registered: %w", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return "", fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	session := domain.RegistrationSession{
		RegistrationID: utils.GenerateRegistrationID(),
		Email:          email,
		PasswordHash:   hash,
		State:          domain.RegistrationPending,
		ExpiresAt:      now.Add(s.cfg.RegistrationSessionExpiry),
		CreatedAt:      now,
	}
	if err := s.registration.SaveRegistrationSession(ctx, session); err != nil {
		return "", fmt.Errorf("failed to save registration session: %w", err)
	}

	if err := s.issueAndSendOTP(ctx, email, "", domain.OTPPurposeRegister, domain.OTPMethodEmail); err != nil {
		return "", err
	}

	logger.Info("Registration session opened", slog.String("registration_id", session.RegistrationID))
	return session.RegistrationID, nil
}

func (s *authService) RegisterVerifyEmail(ctx context.Context, registrationID, code string) error {
	session, err := s.findUsableSession(ctx, registrationID)
	if err != nil {
		return err
	}

	if err := s.consumeOTP(ctx, session.Email, code, domain.OTPPurposeRegister); err != nil {
		return err
	}

	if err := session.Advance(domain.RegistrationVerified); err != nil {
		return fmt.Errorf("%s: %w", err.Error(), apperrors.ErrValidation)
	}
	if err := s.registration.UpdateSessionState(ctx, *session); err != nil {
		return fmt.Errorf("failed to persist session state: %w", err)
	}
	return nil
}

func (s *authService) RegisterComplete(ctx context.Context, registrationID, username, name string) (*domain.TokenPair, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	session, err := s.findUsableSession(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if !session.EmailVerified() {
		return nil, fmt.Errorf("email not verified yet: %w", apperrors.ErrValidation)
	}

	if _, err := s.userRepo.FindUserByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("username already taken: %w", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        session.Email,
		Username:     username,
		PasswordHash: session.PasswordHash,
		Name:         name,
		Role:         domain.RoleUser,
		IsVerified:   true,
		IsActive:     true,
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		// The unique constraints on email/username are the real gate; the
		// earlier lookups just give friendlier ordering.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("email or username already taken: %w", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := session.Advance(domain.RegistrationCompleted); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), apperrors.ErrValidation)
	}
	if err := s.registration.UpdateSessionState(ctx, *session); err != nil {
		logger.Error("User created but session not marked completed", slog.String("registration_id", registrationID), slog.String("error", err.Error()))
	}

	if res := s.email.SendWelcomeEmail(ctx, user.Email, user.Username); !res.OK() {
		logger.Warn("Welcome email not delivered", slog.String("outcome", string(res.Outcome)))
	}
	s.analytics.Enqueue(user.UserID, "user_registered", map[string]any{"method": "email"})

	pair, err := s.tokenSvc.IssueTokenPair(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	return pair, nil
}

func (s *authService) RegisterResendEmail(ctx context.Context, registrationID string) error {
	session, err := s.findUsableSession(ctx, registrationID)
	if err != nil {
		return err
	}
	if session.EmailVerified() {
		return fmt.Errorf("email already verified: %w", apperrors.ErrValidation)
	}
	return s.issueAndSendOTP(ctx, session.Email, "", domain.OTPPurposeRegister, domain.OTPMethodEmail)
}

func (s *authService) SendLoginOTP(ctx context.Context, email string, method domain.OTPMethod) error {
	email = normalizeEmail(email)
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("no account for email: %w", apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if method == domain.OTPMethodSMS && user.Phone == "" {
		return fmt.Errorf("no phone number on account: %w", apperrors.ErrValidation)
	}
	return s.issueAndSendOTP(ctx, email, user.Phone, domain.OTPPurposeLogin, method)
}

func (s *authService) VerifyLoginOTP(ctx context.Context, email, code string) (*domain.TokenPair, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	email = normalizeEmail(email)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("no account for email: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// Login OTPs also accept a pending password-reset code, matching how
	// the mobile clients reuse the verify endpoint after a reset request.
	if err := s.consumeOTP(ctx, email, code, ""); err != nil {
		return nil, err
	}

	pair, err := s.tokenSvc.IssueTokenPair(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	if err := s.userRepo.UpdateLastLogin(ctx, user.UserID, time.Now().UTC()); err != nil {
		logger.Warn("Failed to record last login", slog.String("error", err.Error()))
	}
	s.analytics.Enqueue(user.UserID, "user_logged_in", map[string]any{"method": "otp"})
	return pair, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return fmt.Errorf("current password incorrect: %w", apperrors.ErrUnauthorized)
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	// A password change invalidates every open session.
	return s.tokenSvc.RevokeAll(ctx, userID)
}

func (s *authService) SendResetCode(ctx context.Context, email string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	email = normalizeEmail(email)

	_, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Silently succeed; the response must not reveal whether the
			// account exists.
			logger.Info("Reset code requested for unknown email")
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	otp, err := s.issueOTP(ctx, email, "", domain.OTPPurposePasswordReset, domain.OTPMethodEmail)
	if err != nil {
		return err
	}
	if res := s.email.SendPasswordResetEmail(ctx, email, otp.Code); !res.OK() {
		logger.Warn("Reset email not delivered", slog.String("outcome", string(res.Outcome)))
	}
	return nil
}

func (s *authService) Refresh(ctx context.Context, rawRefreshToken string) (*domain.TokenPair, error) {
	return s.tokenSvc.RotateRefreshToken(ctx, rawRefreshToken)
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	return s.tokenSvc.RevokeAll(ctx, userID)
}

func (s *authService) ValidateUserOrganization(ctx context.Context, userID, organizationID string) (bool, error) {
	ok, err := s.orgRepo.IsUserInOrganization(ctx, userID, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to check organization membership: %w", err)
	}
	return ok, nil
}

func (s *authService) RegisterUserOrganization(ctx context.Context, userID, organizationID string) error {
	err := s.orgRepo.AddUserToOrganization(ctx, domain.UserOrganization{
		UserID:         userID,
		OrganizationID: organizationID,
		JoinedAt:       time.Now().UTC(),
	})
	if err != nil && !errors.Is(err, apperrors.ErrDuplicate) {
		return fmt.Errorf("failed to register organization membership: %w", err)
	}
	return nil
}

// findUsableSession loads an active session and enforces expiry.
func (s *authService) findUsableSession(ctx context.Context, registrationID string) (*domain.RegistrationSession, error) {
	session, err := s.registration.FindActiveSession(ctx, registrationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("registration session not found: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load registration session: %w", err)
	}
	if session.IsExpired(time.Now().UTC()) {
		return nil, fmt.Errorf("registration session expired: %w", apperrors.ErrValidation)
	}
	return session, nil
}

// issueOTP persists a fresh code without sending it.
func (s *authService) issueOTP(ctx context.Context, email, phone string, purpose domain.OTPPurpose, method domain.OTPMethod) (*domain.OTPCode, error) {
	now := time.Now().UTC()
	otp := domain.OTPCode{
		OTPID:     uuid.NewString(),
		Email:     email,
		Phone:     phone,
		Code:      utils.GenerateOTP(),
		Method:    method,
		Purpose:   purpose,
		ExpiresAt: now.Add(s.cfg.OTPExpiry),
		CreatedAt: now,
	}
	if err := s.otpRepo.SaveOTP(ctx, otp); err != nil {
		return nil, fmt.Errorf("failed to save otp: %w", err)
	}
	return &otp, nil
}

// issueAndSendOTP persists a fresh code and delivers it by the chosen
// method. Delivery degradation is logged, not fatal.
func (s *authService) issueAndSendOTP(ctx context.Context, email, phone string, purpose domain.OTPPurpose, method domain.OTPMethod) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	otp, err := s.issueOTP(ctx, email, phone, purpose, method)
	if err != nil {
		return err
	}

	var res notify.DeliveryResult
	if method == domain.OTPMethodSMS {
		res = s.sms.SendOTPSMS(ctx, phone, otp.Code)
	} else {
		res = s.email.SendOTPEmail(ctx, email, otp.Code, string(purpose))
	}
	switch res.Outcome {
	case notify.DeliveryFailed:
		logger.Error("OTP delivery failed", slog.String("method", string(method)), slog.String("error", errString(res.Err)))
	case notify.DeliveryDegraded:
		logger.Warn("OTP delivery degraded", slog.String("method", string(method)))
	}
	return nil
}

// consumeOTP validates and burns a code. Expiry is rejected before the code
// is marked used, so an expired code stays unusable but precise.
func (s *authService) consumeOTP(ctx context.Context, email, code string, purpose domain.OTPPurpose) error {
	otp, err := s.otpRepo.FindUsableOTP(ctx, email, code, purpose)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("invalid or already used code: %w", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to look up otp: %w", err)
	}
	if otp.IsExpired(time.Now().UTC()) {
		return fmt.Errorf("code expired: %w", apperrors.ErrValidation)
	}
	if err := s.otpRepo.MarkOTPUsed(ctx, otp.OTPID, time.Now().UTC()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("code already used: %w", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to consume otp: %w", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
