package repositories

import (
	"context"
	"time"

	"github.com/parishlife/parish_community_app/internal/core/domain"
)

// UserRepository defines persistence operations for Users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}

// OrganizationRepository defines persistence operations for organizations
// and their memberships.
type OrganizationRepository interface {
	IsUserInOrganization(ctx context.Context, userID, organizationID string) (bool, error)
	AddUserToOrganization(ctx context.Context, membership domain.UserOrganization) error
}
