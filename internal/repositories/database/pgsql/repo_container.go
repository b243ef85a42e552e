package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/mohanapra/personal-diary-web-app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires up all pgx-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      newPgxUserRepository(dbPool),
		EntryRepo:     newPgxEntryRepository(dbPool),
		AnalyticsRepo: newAnalyticsRepository(dbPool),
	}
}
