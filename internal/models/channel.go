package models

import "time"

// Channel row.
type Channel struct {
	ChannelID      string  `db:"channel_id"`
	OrganizationID *string `db:"organization_id"`
	Name           string  `db:"name"`
	Description    *string `db:"description"`
	ImageURL       *string `db:"image_url"`
	Timestamps
}

// ChannelMember row.
type ChannelMember struct {
	ChannelID string    `db:"channel_id"`
	UserID    string    `db:"user_id"`
	Role      string    `db:"role"`
	JoinedAt  time.Time `db:"joined_at"`
}

// ChannelSubscription row.
type ChannelSubscription struct {
	ChannelID    string    `db:"channel_id"`
	UserID       string    `db:"user_id"`
	SubscribedAt time.Time `db:"subscribed_at"`
}
