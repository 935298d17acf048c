package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/parishlife/parish_community_app/internal/core/domain"
)

func TestRegistrationSession_Advance(t *testing.T) {
	tests := []struct {
		name      string
		from      domain.RegistrationState
		to        domain.RegistrationState
		wantErr   bool
		wantState domain.RegistrationState
	}{
		{
			name:      "pending to verified",
			from:      domain.RegistrationPending,
			to:        domain.RegistrationVerified,
			wantState: domain.RegistrationVerified,
		},
		{
			name:      "verified to completed",
			from:      domain.RegistrationVerified,
			to:        domain.RegistrationCompleted,
			wantState: domain.RegistrationCompleted,
		},
		{
			name:      "pending cannot skip to completed",
			from:      domain.RegistrationPending,
			to:        domain.RegistrationCompleted,
			wantErr:   true,
			wantState: domain.RegistrationPending,
		},
		{
			name:      "verified cannot move back to pending",
			from:      domain.RegistrationVerified,
			to:        domain.RegistrationPending,
			wantErr:   true,
			wantState: domain.RegistrationVerified,
		},
		{
			name:      "completed is terminal",
			from:      domain.RegistrationCompleted,
			to:        domain.RegistrationVerified,
			wantErr:   true,
			wantState: domain.RegistrationCompleted,
		},
		{
			name:      "no self transition",
			from:      domain.RegistrationPending,
			to:        domain.RegistrationPending,
			wantErr:   true,
			wantState: domain.RegistrationPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := domain.RegistrationSession{State: tt.from}
			err := session.Advance(tt.to)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantState, session.State)
		})
	}
}

func TestRegistrationSession_AdvanceStampsCompletion(t *testing.T) {
	session := domain.RegistrationSession{State: domain.RegistrationVerified}
	assert.Nil(t, session.CompletedAt)

	err := session.Advance(domain.RegistrationCompleted)
	assert.NoError(t, err)
	assert.NotNil(t, session.CompletedAt)
}

func TestRegistrationSession_EmailVerified(t *testing.T) {
	assert.False(t, (&domain.RegistrationSession{State: domain.RegistrationPending}).EmailVerified())
	assert.True(t, (&domain.RegistrationSession{State: domain.RegistrationVerified}).EmailVerified())
	assert.True(t, (&domain.RegistrationSession{State: domain.RegistrationCompleted}).EmailVerified())
}

func TestRegistrationSession_IsExpired(t *testing.T) {
	now := time.Now().UTC()
	session := domain.RegistrationSession{ExpiresAt: now.Add(time.Minute)}

	assert.False(t, session.IsExpired(now))
	assert.True(t, session.IsExpired(now.Add(2*time.Minute)))
}

func TestOTPCode_IsExpired(t *testing.T) {
	now := time.Now().UTC()
	otp := domain.OTPCode{ExpiresAt: now.Add(10 * time.Minute)}

	assert.False(t, otp.IsExpired(now))
	assert.True(t, otp.IsExpired(now.Add(11*time.Minute)))
}
