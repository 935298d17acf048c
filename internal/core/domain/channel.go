package domain

import "time"

// ChannelRole is a member's role inside a channel.
type ChannelRole string

const (
	ChannelRoleMember ChannelRole = "member"
	ChannelRoleAdmin  ChannelRole = "admin"
)

// Channel is a community space (parish group, ministry, ...) that owns
// posts and events.
type Channel struct {
	ChannelID      string `json:"channelID"`
	OrganizationID string `json:"organizationID,omitempty"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	ImageURL       string `json:"imageURL,omitempty"`
	Timestamps
}

// ChannelMember links a user to a channel with a role. Admin membership
// gates event management.
type ChannelMember struct {
	ChannelID string      `json:"channelID"`
	UserID    string      `json:"userID"`
	Role      ChannelRole `json:"role"`
	JoinedAt  time.Time   `json:"joinedAt"`
}

// ChannelSubscription marks a user as following a channel. The event feed
// only shows events from subscribed channels.
type ChannelSubscription struct {
	ChannelID    string    `json:"channelID"`
	UserID       string    `json:"userID"`
	SubscribedAt time.Time `json:"subscribedAt"`
}
