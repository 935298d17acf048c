package repositories

import (
	"context"
	"time"

	"github.com/parishlife/parish_community_app/internal/core/domain"
)

// RegistrationRepository persists in-progress signup sessions.
type RegistrationRepository interface {
	SaveRegistrationSession(ctx context.Context, session domain.RegistrationSession) error
	// FindActiveSession returns the non-completed session with the given id,
	// or ErrNotFound.
	FindActiveSession(ctx context.Context, registrationID string) (*domain.RegistrationSession, error)
	// UpdateSessionState persists a state transition already validated by the
	// domain type.
	UpdateSessionState(ctx context.Context, session domain.RegistrationSession) error
}

// OTPRepository persists one-time codes.
type OTPRepository interface {
	SaveOTP(ctx context.Context, otp domain.OTPCode) error
	// FindUsableOTP selects an unused code by exact email+code match and,
	// when purpose is non-empty, by purpose. Expiry is checked by the caller
	// so the rejection reason can be precise.
	FindUsableOTP(ctx context.Context, email, code string, purpose domain.OTPPurpose) (*domain.OTPCode, error)
	MarkOTPUsed(ctx context.Context, otpID string, usedAt time.Time) error
}

// RefreshTokenRepository persists long-lived refresh credentials. Rotation
// revokes the superseded row and inserts a new one; nothing is deleted.
type RefreshTokenRepository interface {
	SaveRefreshToken(ctx context.Context, token domain.RefreshToken) error
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, tokenID string) error
	RevokeAllForUser(ctx context.Context, userID string) error
	TouchLastUsed(ctx context.Context, tokenID string, at time.Time) error
}
