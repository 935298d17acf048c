package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/parishlife/parish_community_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories against a single
// pool.
func NewRepositoryProvider(db *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(db),
		OrganizationRepo: newPgxOrganizationRepository(db),
		RegistrationRepo: newPgxRegistrationRepository(db),
		OTPRepo:          newPgxOTPRepository(db),
		RefreshTokenRepo: newPgxRefreshTokenRepository(db),
		ChannelRepo:      newPgxChannelRepository(db),
		EventRepo:        newPgxEventRepository(db),
	}
}
