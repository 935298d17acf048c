package domain

import (
	"fmt"
	"time"
)

// RegistrationState is the phase an in-progress signup is in.
// Transitions only move forward; see RegistrationSession.Advance.
type RegistrationState string

const (
	RegistrationPending   RegistrationState = "pending_verification"
	RegistrationVerified  RegistrationState = "email_verified"
	RegistrationCompleted RegistrationState = "completed"
)

// registrationTransitions is the allowed forward edge per state.
var registrationTransitions = map[RegistrationState]RegistrationState{
	RegistrationPending:  RegistrationVerified,
	RegistrationVerified: RegistrationCompleted,
}

// RegistrationSession is the temporary record tracking a signup before the
// permanent user account exists.
type RegistrationSession struct {
	RegistrationID string            `json:"registrationID"`
	Email          string            `json:"email"`
	PasswordHash   string            `json:"-"`
	State          RegistrationState `json:"state"`
	ExpiresAt      time.Time         `json:"expiresAt"`
	CompletedAt    *time.Time        `json:"completedAt,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// Advance moves the session to the next state. Any transition other than the
// single allowed forward edge is rejected, so a session can never move
// backwards or skip verification.
func (s *RegistrationSession) Advance(next RegistrationState) error {
	allowed, ok := registrationTransitions[s.State]
	if !ok || allowed != next {
		return fmt.Errorf("invalid registration transition %s -> %s", s.State, next)
	}
	s.State = next
	if next == RegistrationCompleted {
		now := time.Now().UTC()
		s.CompletedAt = &now
	}
	return nil
}

// IsExpired reports whether the session is past its expiry.
func (s *RegistrationSession) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// EmailVerified reports whether the session has passed email verification.
func (s *RegistrationSession) EmailVerified() bool {
	return s.State == RegistrationVerified || s.State == RegistrationCompleted
}

// OTPPurpose scopes a one-time code to the flow it was issued for.
type OTPPurpose string

const (
	OTPPurposeRegister      OTPPurpose = "register"
	OTPPurposeLogin         OTPPurpose = "login"
	OTPPurposePasswordReset OTPPurpose = "password_reset"
)

// OTPMethod is the delivery channel of a one-time code.
type OTPMethod string

const (
	OTPMethodEmail OTPMethod = "email"
	OTPMethodSMS   OTPMethod = "sms"
)

// OTPCode is a short-lived numeric code tied to an email or phone.
// A code is consumed at most once.
type OTPCode struct {
	OTPID     string     `json:"otpID"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Code      string     `json:"-"`
	Method    OTPMethod  `json:"method"`
	Purpose   OTPPurpose `json:"purpose"`
	IsUsed    bool       `json:"isUsed"`
	UsedAt    *time.Time `json:"usedAt,omitempty"`
	Attempts  int        `json:"attempts"`
	ExpiresAt time.Time  `json:"expiresAt"`
	CreatedAt time.Time  `json:"createdAt"`
}

// IsExpired reports whether the code is past its expiry.
func (o *OTPCode) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
