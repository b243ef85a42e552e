package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common state for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
