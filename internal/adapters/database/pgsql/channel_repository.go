package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parishlife/parish_community_app/internal/apperrors"
	"github.com/parishlife/parish_community_app/internal/core/domain"
	portsrepo "github.com/parishlife/parish_community_app/internal/core/ports/repositories"
	"github.com/parishlife/parish_community_app/internal/models"
)

type PgxChannelRepository struct {
	db *pgxpool.Pool
}

func newPgxChannelRepository(db *pgxpool.Pool) portsrepo.ChannelRepository {
	return &PgxChannelRepository{db: db}
}

var _ portsrepo.ChannelRepository = (*PgxChannelRepository)(nil)

func toDomainChannel(m models.Channel) domain.Channel {
	d := domain.Channel{
		ChannelID: m.ChannelID,
		Name:      m.Name,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
	if m.OrganizationID != nil {
		d.OrganizationID = *m.OrganizationID
	}
	if m.Description != nil {
		d.Description = *m.Description
	}
	if m.ImageURL != nil {
		d.ImageURL = *m.ImageURL
	}
	return d
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *PgxChannelRepository) SaveChannel(ctx context.Context, channel domain.Channel) error {
	query := `
        INSERT INTO channels (channel_id, organization_id, name, description, image_url, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		channel.ChannelID, nullable(channel.OrganizationID), channel.Name,
		nullable(channel.Description), nullable(channel.ImageURL),
		channel.CreatedAt, channel.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save channel: %w", err)
	}
	return nil
}

func (r *PgxChannelRepository) FindChannelByID(ctx context.Context, channelID string) (*domain.Channel, error) {
	query := `
        SELECT channel_id, organization_id, name, description, image_url, created_at, updated_at
        FROM channels
        WHERE channel_id = $1;
    `
	var m models.Channel
	err := r.db.QueryRow(ctx, query, channelID).Scan(
		&m.ChannelID, &m.OrganizationID, &m.Name, &m.Description, &m.ImageURL,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find channel: %w", err)
	}
	d := toDomainChannel(m)
	return &d, nil
}

func (r *PgxChannelRepository) ListSubscribedChannels(ctx context.Context, userID string, limit, offset int) ([]domain.Channel, error) {
	query := `
        SELECT c.channel_id, c.organization_id, c.name, c.description, c.image_url, c.created_at, c.updated_at
        FROM channels c
        JOIN channel_subscriptions s ON s.channel_id = c.channel_id
        WHERE s.user_id = $1
        ORDER BY c.name
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribed channels: %w", err)
	}
	defer rows.Close()

	var channels []domain.Channel
	for rows.Next() {
		var m models.Channel
		if err := rows.Scan(
			&m.ChannelID, &m.OrganizationID, &m.Name, &m.Description, &m.ImageURL,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan channel row: %w", err)
		}
		channels = append(channels, toDomainChannel(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating channel rows: %w", err)
	}
	return channels, nil
}

func (r *PgxChannelRepository) AddMember(ctx context.Context, member domain.ChannelMember) error {
	query := `
        INSERT INTO channel_members (channel_id, user_id, role, joined_at)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.db.Exec(ctx, query, member.ChannelID, member.UserID, string(member.Role), member.JoinedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user already a channel member: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to add channel member: %w", err)
	}
	return nil
}

func (r *PgxChannelRepository) IsUserAdmin(ctx context.Context, userID, channelID string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM channel_members
            WHERE channel_id = $1 AND user_id = $2 AND role = $3
        );
    `
	var isAdmin bool
	if err := r.db.QueryRow(ctx, query, channelID, userID, string(domain.ChannelRoleAdmin)).Scan(&isAdmin); err != nil {
		return false, fmt.Errorf("failed to check channel admin: %w", err)
	}
	return isAdmin, nil
}

func (r *PgxChannelRepository) Subscribe(ctx context.Context, sub domain.ChannelSubscription) error {
	query := `
        INSERT INTO channel_subscriptions (channel_id, user_id, subscribed_at)
        VALUES ($1, $2, $3);
    `
	_, err := r.db.Exec(ctx, query, sub.ChannelID, sub.UserID, sub.SubscribedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("already subscribed: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to subscribe to channel: %w", err)
	}
	return nil
}

func (r *PgxChannelRepository) Unsubscribe(ctx context.Context, channelID, userID string) error {
	query := `DELETE FROM channel_subscriptions WHERE channel_id = $1 AND user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, channelID, userID)
	if err != nil {
		return fmt.Errorf("failed to unsubscribe from channel: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("subscription not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxChannelRepository) IsSubscribed(ctx context.Context, channelID, userID string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM channel_subscriptions
            WHERE channel_id = $1 AND user_id = $2
        );
    `
	var subscribed bool
	if err := r.db.QueryRow(ctx, query, channelID, userID).Scan(&subscribed); err != nil {
		return false, fmt.Errorf("failed to check channel subscription: %w", err)
	}
	return subscribed, nil
}
