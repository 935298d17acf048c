package services

import (
	"context"

	"github.com/parishlife/parish_community_app/internal/core/domain"
	"github.com/parishlife/parish_community_app/internal/dto"
)

// ChannelSvcFacade manages channels, memberships and subscriptions.
type ChannelSvcFacade interface {
	CreateChannel(ctx context.Context, creatorUserID string, req dto.CreateChannelRequest) (*domain.Channel, error)
	GetChannel(ctx context.Context, channelID string) (*domain.Channel, error)
	ListSubscribedChannels(ctx context.Context, userID string, limit, offset int) ([]domain.Channel, error)
	Subscribe(ctx context.Context, channelID, userID string) error
	Unsubscribe(ctx context.Context, channelID, userID string) error
}

// ChannelAuthorizerSvc is the narrow admin-check dependency other services
// need.
type ChannelAuthorizerSvc interface {
	AuthorizeChannelAdmin(ctx context.Context, userID, channelID string) error
}
