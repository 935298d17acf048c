package repositories

import (
	"context"

	"github.com/parishlife/parish_community_app/internal/core/domain"
)

// ChannelRepository defines persistence operations for channels,
// memberships and subscriptions.
type ChannelRepository interface {
	SaveChannel(ctx context.Context, channel domain.Channel) error
	FindChannelByID(ctx context.Context, channelID string) (*domain.Channel, error)
	ListSubscribedChannels(ctx context.Context, userID string, limit, offset int) ([]domain.Channel, error)

	AddMember(ctx context.Context, member domain.ChannelMember) error
	// IsUserAdmin reports whether the user holds the admin role in the
	// channel. Non-members are simply not admins.
	IsUserAdmin(ctx context.Context, userID, channelID string) (bool, error)

	Subscribe(ctx context.Context, sub domain.ChannelSubscription) error
	Unsubscribe(ctx context.Context, channelID, userID string) error
	IsSubscribed(ctx context.Context, channelID, userID string) (bool, error)
}
