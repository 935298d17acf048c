package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parishlife/parish_community_app/internal/apperrors"
	"github.com/parishlife/parish_community_app/internal/core/domain"
	portsrepo "github.com/parishlife/parish_community_app/internal/core/ports/repositories"
)

type PgxOrganizationRepository struct {
	db *pgxpool.Pool
}

func newPgxOrganizationRepository(db *pgxpool.Pool) portsrepo.OrganizationRepository {
	return &PgxOrganizationRepository{db: db}
}

var _ portsrepo.OrganizationRepository = (*PgxOrganizationRepository)(nil)

func (r *PgxOrganizationRepository) IsUserInOrganization(ctx context.Context, userID, organizationID string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM user_organizations
            WHERE user_id = $1 AND organization_id = $2
        );
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, organizationID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check organization membership: %w", err)
	}
	return exists, nil
}

func (r *PgxOrganizationRepository) AddUserToOrganization(ctx context.Context, membership domain.UserOrganization) error {
	query := `
        INSERT INTO user_organizations (user_id, organization_id, joined_at)
        VALUES ($1, $2, $3);
    `
	_, err := r.db.Exec(ctx, query, membership.UserID, membership.OrganizationID, membership.JoinedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user already in organization: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to add organization membership: %w", err)
	}
	return nil
}
