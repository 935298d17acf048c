package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/parishlife/parish_community_app/internal/apperrors"
	"github.com/parishlife/parish_community_app/internal/core/domain"
	portsrepo "github.com/parishlife/parish_community_app/internal/core/ports/repositories"
	portssvc "github.com/parishlife/parish_community_app/internal/core/ports/services"
	"github.com/parishlife/parish_community_app/internal/dto"
)

type channelService struct {
	channelRepo portsrepo.ChannelRepository
}

// NewChannelService builds the channel management service. It also serves
// as the admin authorizer for the event vertical.
func NewChannelService(channelRepo portsrepo.ChannelRepository) *channelService {
	return &channelService{channelRepo: channelRepo}
}

var (
	_ portssvc.ChannelSvcFacade     = (*channelService)(nil)
	_ portssvc.ChannelAuthorizerSvc = (*channelService)(nil)
)

func (s *channelService) CreateChannel(ctx context.Context, creatorUserID string, req dto.CreateChannelRequest) (*domain.Channel, error) {
	now := time.Now().UTC()
	channel := domain.Channel{
		ChannelID:      uuid.NewString(),
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.channelRepo.SaveChannel(ctx, channel); err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	// The creator is the first admin and an implicit subscriber.
	if err := s.channelRepo.AddMember(ctx, domain.ChannelMember{
		ChannelID: channel.ChannelID,
		UserID:    creatorUserID,
		Role:      domain.ChannelRoleAdmin,
		JoinedAt:  now,
	}); err != nil {
		return nil, fmt.Errorf("failed to add creator as admin: %w", err)
	}
	if err := s.channelRepo.Subscribe(ctx, domain.ChannelSubscription{
		ChannelID:    channel.ChannelID,
		UserID:       creatorUserID,
		SubscribedAt: now,
	}); err != nil && !errors.Is(err, apperrors.ErrDuplicate) {
		return nil, fmt.Errorf("failed to subscribe creator: %w", err)
	}

	return &channel, nil
}

func (s *channelService) GetChannel(ctx context.Context, channelID string) (*domain.Channel, error) {
	channel, err := s.channelRepo.FindChannelByID(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to load channel: %w", err)
	}
	return channel, nil
}

func (s *channelService) ListSubscribedChannels(ctx context.Context, userID string, limit, offset int) ([]domain.Channel, error) {
	if limit < 1 {
		limit = 50
	}
	channels, err := s.channelRepo.ListSubscribedChannels(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribed channels: %w", err)
	}
	return channels, nil
}

func (s *channelService) Subscribe(ctx context.Context, channelID, userID string) error {
	if _, err := s.channelRepo.FindChannelByID(ctx, channelID); err != nil {
		return fmt.Errorf("failed to load channel: %w", err)
	}
	err := s.channelRepo.Subscribe(ctx, domain.ChannelSubscription{
		ChannelID:    channelID,
		UserID:       userID,
		SubscribedAt: time.Now().UTC(),
	})
	if err != nil && !errors.Is(err, apperrors.ErrDuplicate) {
		return fmt.Errorf("failed to subscribe: %w", err)
	}
	return nil
}

func (s *channelService) Unsubscribe(ctx context.Context, channelID, userID string) error {
	if err := s.channelRepo.Unsubscribe(ctx, channelID, userID); err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	return nil
}

// AuthorizeChannelAdmin returns ErrForbidden unless the user holds the
// admin role in the channel.
func (s *channelService) AuthorizeChannelAdmin(ctx context.Context, userID, channelID string) error {
	isAdmin, err := s.channelRepo.IsUserAdmin(ctx, userID, channelID)
	if err != nil {
		return fmt.Errorf("failed to check channel admin: %w", err)
	}
	if !isAdmin {
		return fmt.Errorf("channel admin required: %w", apperrors.ErrForbidden)
	}
	return nil
}
