package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parishlife/parish_community_app/internal/apperrors"
	"github.com/parishlife/parish_community_app/internal/core/domain"
	portsrepo "github.com/parishlife/parish_community_app/internal/core/ports/repositories"
	"github.com/parishlife/parish_community_app/internal/models"
)

// PgxRegistrationRepository persists signup sessions.
type PgxRegistrationRepository struct {
	db *pgxpool.Pool
}

func newPgxRegistrationRepository(db *pgxpool.Pool) portsrepo.RegistrationRepository {
	return &PgxRegistrationRepository{db: db}
}

var _ portsrepo.RegistrationRepository = (*PgxRegistrationRepository)(nil)

func toDomainRegistrationSession(m models.RegistrationSession) domain.RegistrationSession {
	return domain.RegistrationSession{
		RegistrationID: m.RegistrationID,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		State:          domain.RegistrationState(m.State),
		ExpiresAt:      m.ExpiresAt,
		CompletedAt:    m.CompletedAt,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *PgxRegistrationRepository) SaveRegistrationSession(ctx context.Context, session domain.RegistrationSession) error {
	query := `
        INSERT INTO registration_sessions (registration_id, email, password_hash, state, expires_at, completed_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		session.RegistrationID, session.Email, session.PasswordHash,
		string(session.State), session.ExpiresAt, session.CompletedAt, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save registration session: %w", err)
	}
	return nil
}

func (r *PgxRegistrationRepository) FindActiveSession(ctx context.Context, registrationID string) (*domain.RegistrationSession, error) {
	query := `
        SELECT registration_id, email, password_hash, state, expires_at, completed_at, created_at
        FROM registration_sessions
        WHERE registration_id = $1 AND state <> $2;
    `
	var m models.RegistrationSession
	err := r.db.QueryRow(ctx, query, registrationID, string(domain.RegistrationCompleted)).Scan(
		&m.RegistrationID, &m.Email, &m.PasswordHash, &m.State, &m.ExpiresAt, &m.CompletedAt, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find registration session: %w", err)
	}
	d := toDomainRegistrationSession(m)
	return &d, nil
}

func (r *PgxRegistrationRepository) UpdateSessionState(ctx context.Context, session domain.RegistrationSession) error {
	query := `
        UPDATE registration_sessions
        SET state = $1, completed_at = $2
        WHERE registration_id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, string(session.State), session.CompletedAt, session.RegistrationID)
	if err != nil {
		return fmt.Errorf("failed to update registration session state: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("registration session not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// PgxOTPRepository persists one-time codes.
type PgxOTPRepository struct {
	db *pgxpool.Pool
}

func newPgxOTPRepository(db *pgxpool.Pool) portsrepo.OTPRepository {
	return &PgxOTPRepository{db: db}
}

var _ portsrepo.OTPRepository = (*PgxOTPRepository)(nil)

func (r *PgxOTPRepository) SaveOTP(ctx context.Context, otp domain.OTPCode) error {
	var email, phone *string
	if otp.Email != "" {
		email = &otp.Email
	}
	if otp.Phone != "" {
		phone = &otp.Phone
	}
	query := `
        INSERT INTO otp_codes (otp_id, email, phone, code, method, purpose, is_used, used_at, attempts, expires_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		otp.OTPID, email, phone, otp.Code, string(otp.Method), string(otp.Purpose),
		otp.IsUsed, otp.UsedAt, otp.Attempts, otp.ExpiresAt, otp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save otp: %w", err)
	}
	return nil
}

func (r *PgxOTPRepository) FindUsableOTP(ctx context.Context, email, code string, purpose domain.OTPPurpose) (*domain.OTPCode, error) {
	query := `
        SELECT otp_id, email, phone, code, method, purpose, is_used, used_at, attempts, expires_at, created_at
        FROM otp_codes
        WHERE email = $1 AND code = $2 AND is_used = FALSE
          AND ($3 = '' OR purpose = $3)
        ORDER BY created_at DESC
        LIMIT 1;
    `
	var m models.OTPCode
	err := r.db.QueryRow(ctx, query, email, code, string(purpose)).Scan(
		&m.OTPID, &m.Email, &m.Phone, &m.Code, &m.Method, &m.Purpose,
		&m.IsUsed, &m.UsedAt, &m.Attempts, &m.ExpiresAt, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find otp: %w", err)
	}
	d := domain.OTPCode{
		OTPID:     m.OTPID,
		Code:      m.Code,
		Method:    domain.OTPMethod(m.Method),
		Purpose:   domain.OTPPurpose(m.Purpose),
		IsUsed:    m.IsUsed,
		UsedAt:    m.UsedAt,
		Attempts:  m.Attempts,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
	if m.Email != nil {
		d.Email = *m.Email
	}
	if m.Phone != nil {
		d.Phone = *m.Phone
	}
	return &d, nil
}

func (r *PgxOTPRepository) MarkOTPUsed(ctx context.Context, otpID string, usedAt time.Time) error {
	// The is_used guard makes consumption single-shot even under
	// concurrent verification attempts.
	query := `
        UPDATE otp_codes
        SET is_used = TRUE, used_at = $1
        WHERE otp_id = $2 AND is_used = FALSE;
    `
	cmdTag, err := r.db.Exec(ctx, query, usedAt, otpID)
	if err != nil {
		return fmt.Errorf("failed to mark otp used: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("otp already used or missing: %w", apperrors.ErrNotFound)
	}
	return nil
}

// PgxRefreshTokenRepository persists refresh token hashes.
type PgxRefreshTokenRepository struct {
	db *pgxpool.Pool
}

func newPgxRefreshTokenRepository(db *pgxpool.Pool) portsrepo.RefreshTokenRepository {
	return &PgxRefreshTokenRepository{db: db}
}

var _ portsrepo.RefreshTokenRepository = (*PgxRefreshTokenRepository)(nil)

func (r *PgxRefreshTokenRepository) SaveRefreshToken(ctx context.Context, token domain.RefreshToken) error {
	var deviceName *string
	if token.DeviceName != "" {
		deviceName = &token.DeviceName
	}
	query := `
        INSERT INTO refresh_tokens (token_id, user_id, token_hash, expires_at, is_revoked, device_name, created_at, last_used)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		token.TokenID, token.UserID, token.TokenHash, token.ExpiresAt,
		token.IsRevoked, deviceName, token.CreatedAt, token.LastUsed,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("refresh token hash collision: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

func (r *PgxRefreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	query := `
        SELECT token_id, user_id, token_hash, expires_at, is_revoked, device_name, created_at, last_used
        FROM refresh_tokens
        WHERE token_hash = $1;
    `
	var m models.RefreshToken
	err := r.db.QueryRow(ctx, query, tokenHash).Scan(
		&m.TokenID, &m.UserID, &m.TokenHash, &m.ExpiresAt,
		&m.IsRevoked, &m.DeviceName, &m.CreatedAt, &m.LastUsed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}
	d := domain.RefreshToken{
		TokenID:   m.TokenID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		IsRevoked: m.IsRevoked,
		CreatedAt: m.CreatedAt,
		LastUsed:  m.LastUsed,
	}
	if m.DeviceName != nil {
		d.DeviceName = *m.DeviceName
	}
	return &d, nil
}

func (r *PgxRefreshTokenRepository) RevokeRefreshToken(ctx context.Context, tokenID string) error {
	query := `UPDATE refresh_tokens SET is_revoked = TRUE WHERE token_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, tokenID)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("refresh token not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxRefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID string) error {
	query := `UPDATE refresh_tokens SET is_revoked = TRUE WHERE user_id = $1 AND is_revoked = FALSE;`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens for user: %w", err)
	}
	return nil
}

func (r *PgxRefreshTokenRepository) TouchLastUsed(ctx context.Context, tokenID string, at time.Time) error {
	query := `UPDATE refresh_tokens SET last_used = $1 WHERE token_id = $2;`
	if _, err := r.db.Exec(ctx, query, at, tokenID); err != nil {
		return fmt.Errorf("failed to touch refresh token: %w", err)
	}
	return nil
}
