package services

import (
	"context"

	"github.com/parishlife/parish_community_app/internal/core/domain"
	"github.com/parishlife/parish_community_app/internal/dto"
)

// AuthSvcFacade drives login, the staged registration flow, OTP login,
// password management and organization membership.
type AuthSvcFacade interface {
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)

	RegisterStart(ctx context.Context, email, password string) (registrationID string, err error)
	RegisterVerifyEmail(ctx context.Context, registrationID, code string) error
	RegisterComplete(ctx context.Context, registrationID, username, name string) (*domain.TokenPair, error)
	RegisterResendEmail(ctx context.Context, registrationID string) error

	SendLoginOTP(ctx context.Context, email string, method domain.OTPMethod) error
	VerifyLoginOTP(ctx context.Context, email, code string) (*domain.TokenPair, error)

	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	SendResetCode(ctx context.Context, email string) error

	Refresh(ctx context.Context, rawRefreshToken string) (*domain.TokenPair, error)
	Logout(ctx context.Context, userID string) error

	ValidateUserOrganization(ctx context.Context, userID, organizationID string) (bool, error)
	RegisterUserOrganization(ctx context.Context, userID, organizationID string) error
}

// TokenSvcFacade issues and verifies JWT pairs and manages persisted
// refresh tokens.
type TokenSvcFacade interface {
	// IssueTokenPair signs an access+refresh pair and persists the refresh
	// token's hash.
	IssueTokenPair(ctx context.Context, userID string) (*domain.TokenPair, error)
	// RotateRefreshToken verifies the raw refresh token, revokes its row and
	// issues a fresh pair.
	RotateRefreshToken(ctx context.Context, rawRefreshToken string) (*domain.TokenPair, error)
	// RevokeAll revokes every outstanding refresh token of the user.
	RevokeAll(ctx context.Context, userID string) error
	// VerifyAccessToken checks an access JWT and returns the subject user id.
	VerifyAccessToken(tokenString string) (string, error)
}
