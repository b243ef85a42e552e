package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mohanapra/personal-diary-web-app/internal/apperrors"
	"github.com/mohanapra/personal-diary-web-app/internal/core/domain"
	portsrepo "github.com/mohanapra/personal-diary-web-app/internal/core/ports/repositories"
	"github.com/mohanapra/personal-diary-web-app/internal/models"
	"github.com/mohanapra/personal-diary-web-app/internal/utils/mapping"
)

// PgxEntryRepository persists diary entries in the diary_entries table.
// Every query is scoped by user_id, so an entry owned by another user is
// indistinguishable from a missing one.
type PgxEntryRepository struct {
	BaseRepository
}

func newPgxEntryRepository(db *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.DiaryEntry) error {
	modelEntry := mapping.ToModelEntry(entry)
	query := `
        INSERT INTO diary_entries (entry_id, user_id, title, content, mood, entry_date, tags, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		modelEntry.EntryID,
		modelEntry.UserID,
		modelEntry.Title,
		modelEntry.Content,
		modelEntry.Mood,
		modelEntry.EntryDate,
		modelEntry.Tags,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save diary entry: %w", err)
	}
	return nil
}

func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, userID string, entryID string) (*domain.DiaryEntry, error) {
	query := `
        SELECT entry_id, user_id, title, content, mood, entry_date, tags, created_at, created_by, last_updated_at, last_updated_by
        FROM diary_entries
        WHERE entry_id = $1 AND user_id = $2;
    `
	var modelEntry models.DiaryEntry
	err := r.Pool.QueryRow(ctx, query, entryID, userID).Scan(
		&modelEntry.EntryID,
		&modelEntry.UserID,
		&modelEntry.Title,
		&modelEntry.Content,
		&modelEntry.Mood,
		&modelEntry.EntryDate,
		&modelEntry.Tags,
		&modelEntry.CreatedAt,
		&modelEntry.CreatedBy,
		&modelEntry.LastUpdatedAt,
		&modelEntry.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID %s: %w", entryID, err)
	}

	domainEntry := mapping.ToDomainEntry(modelEntry)
	return &domainEntry, nil
}

func (r *PgxEntryRepository) FindEntries(ctx context.Context, userID string, limit int) ([]domain.DiaryEntry, error) {
	query := `
        SELECT entry_id, user_id, title, content, mood, entry_date, tags, created_at, created_by, last_updated_at, last_updated_by
        FROM diary_entries
        WHERE user_id = $1
        ORDER BY entry_date DESC, created_at DESC
    `
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query diary entries: %w", err)
	}
	defer rows.Close()

	modelEntries := []models.DiaryEntry{}
	for rows.Next() {
		var modelEntry models.DiaryEntry
		err := rows.Scan(
			&modelEntry.EntryID,
			&modelEntry.UserID,
			&modelEntry.Title,
			&modelEntry.Content,
			&modelEntry.Mood,
			&modelEntry.EntryDate,
			&modelEntry.Tags,
			&modelEntry.CreatedAt,
			&modelEntry.CreatedBy,
			&modelEntry.LastUpdatedAt,
			&modelEntry.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		modelEntries = append(modelEntries, modelEntry)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", rows.Err())
	}

	return mapping.ToDomainEntrySlice(modelEntries), nil
}

func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.DiaryEntry) error {
	modelEntry := mapping.ToModelEntry(entry)
	query := `
        UPDATE diary_entries
        SET title = $1, content = $2, mood = $3, entry_date = $4, tags = $5, last_updated_at = $6, last_updated_by = $7
        WHERE entry_id = $8 AND user_id = $9;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelEntry.Title,
		modelEntry.Content,
		modelEntry.Mood,
		modelEntry.EntryDate,
		modelEntry.Tags,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
		modelEntry.EntryID,
		modelEntry.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update diary entry %s: %w", entry.EntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, userID string, entryID string) error {
	query := `DELETE FROM diary_entries WHERE entry_id = $1 AND user_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, entryID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete diary entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
