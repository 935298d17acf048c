package models

import "time"

// RegistrationSession row. State holds the forward-only signup phase.
type RegistrationSession struct {
	RegistrationID string     `db:"registration_id"`
	Email          string     `db:"email"`
	PasswordHash   string     `db:"password_hash"`
	State          string     `db:"state"`
	ExpiresAt      time.Time  `db:"expires_at"`
	CompletedAt    *time.Time `db:"completed_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

// OTPCode row.
type OTPCode struct {
	OTPID     string     `db:"otp_id"`
	Email     *string    `db:"email"`
	Phone     *string    `db:"phone"`
	Code      string     `db:"code"`
	Method    string     `db:"method"`
	Purpose   string     `db:"purpose"`
	IsUsed    bool       `db:"is_used"`
	UsedAt    *time.Time `db:"used_at"`
	Attempts  int        `db:"attempts"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
}

// RefreshToken row. The raw token never hits the database, only its hash.
type RefreshToken struct {
	TokenID    string    `db:"token_id"`
	UserID     string    `db:"user_id"`
	TokenHash  string    `db:"token_hash"`
	ExpiresAt  time.Time `db:"expires_at"`
	IsRevoked  bool      `db:"is_revoked"`
	DeviceName *string   `db:"device_name"`
	CreatedAt  time.Time `db:"created_at"`
	LastUsed   time.Time `db:"last_used"`
}
