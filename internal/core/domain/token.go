package domain

import "time"

// RefreshToken is a persisted long-lived credential. Tokens are stored as a
// SHA256 hash and are revoked rather than deleted, so a superseded token
// leaves an audit trail.
type RefreshToken struct {
	TokenID    string    `json:"tokenID"`
	UserID     string    `json:"userID"`
	TokenHash  string    `json:"-"`
	ExpiresAt  time.Time `json:"expiresAt"`
	IsRevoked  bool      `json:"isRevoked"`
	DeviceName string    `json:"deviceName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	LastUsed   time.Time `json:"lastUsed"`
}

// TokenPair is the access/refresh pair handed to a client after
// authentication.
type TokenPair struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}
