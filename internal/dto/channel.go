package dto

import (
	"time"

	"github.com/parishlife/parish_community_app/internal/core/domain"
)

// CreateChannelRequest creates a new channel; the creator becomes admin.
type CreateChannelRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=255"`
	Description    string `json:"description" binding:"omitempty,max=2000"`
	ImageURL       string `json:"image_url" binding:"omitempty,url"`
	OrganizationID string `json:"organization_id" binding:"omitempty"`
}

// ChannelResponse is the full channel shape.
type ChannelResponse struct {
	ChannelID      string    `json:"id"`
	OrganizationID string    `json:"organizationID,omitempty"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	ImageURL       string    `json:"imageURL,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToChannelResponse converts a domain.Channel to its response DTO.
func ToChannelResponse(c *domain.Channel) ChannelResponse {
	return ChannelResponse{
		ChannelID:      c.ChannelID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
		Description:    c.Description,
		ImageURL:       c.ImageURL,
		CreatedAt:      c.CreatedAt,
	}
}

// ChannelSummary is the compact channel shape embedded in event responses.
type ChannelSummary struct {
	ChannelID string `json:"id"`
	Name      string `json:"name"`
	ImageURL  string `json:"imageURL,omitempty"`
}

// ListChannelsResponse wraps the caller's subscribed channels.
type ListChannelsResponse struct {
	Channels []ChannelResponse `json:"channels"`
}
