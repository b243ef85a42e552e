package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mohanapra/personal-diary-web-app/internal/core/domain"
	portsrepo "github.com/mohanapra/personal-diary-web-app/internal/core/ports/repositories"
)

// analyticsRepository implements the AnalyticsRepository interface.
// Aggregation runs in SQL; the service layer shapes the results.
type analyticsRepository struct {
	BaseRepository
}

func newAnalyticsRepository(db *pgxpool.Pool) portsrepo.AnalyticsRepository {
	return &analyticsRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.AnalyticsRepository = (*analyticsRepository)(nil)

// GetMoodCounts returns per-mood entry counts for the user.
func (r *analyticsRepository) GetMoodCounts(ctx context.Context, userID string) ([]domain.MoodCount, error) {
	query := `
		SELECT mood, COUNT(*)
		FROM diary_entries
		WHERE user_id = $1
		GROUP BY mood;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying mood counts: %w", err)
	}
	defer rows.Close()

	result := []domain.MoodCount{}
	for rows.Next() {
		var mood string
		var count int
		if err := rows.Scan(&mood, &count); err != nil {
			return nil, fmt.Errorf("error scanning mood count row: %w", err)
		}
		result = append(result, domain.MoodCount{Mood: domain.Mood(mood), Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mood count rows: %w", err)
	}

	return result, nil
}

// GetDailyMoodCounts returns per-day, per-mood counts for entries dated on or
// after since. The day comes from the entry's own date, not the query time.
func (r *analyticsRepository) GetDailyMoodCounts(ctx context.Context, userID string, since time.Time) ([]domain.DailyMoodCount, error) {
	query := `
		SELECT entry_date::date AS day, mood, COUNT(*)
		FROM diary_entries
		WHERE user_id = $1 AND entry_date >= $2
		GROUP BY day, mood
		ORDER BY day;
	`
	rows, err := r.Pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("error querying daily mood counts: %w", err)
	}
	defer rows.Close()

	result := []domain.DailyMoodCount{}
	for rows.Next() {
		var row domain.DailyMoodCount
		var mood string
		if err := rows.Scan(&row.Day, &mood, &row.Count); err != nil {
			return nil, fmt.Errorf("error scanning daily mood count row: %w", err)
		}
		row.Mood = domain.Mood(mood)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily mood count rows: %w", err)
	}

	return result, nil
}

// GetEntryStats returns total count, min/max entry dates and the count of
// entries dated on or after monthStart, all in one scan of the user's rows.
func (r *analyticsRepository) GetEntryStats(ctx context.Context, userID string, monthStart time.Time) (*domain.EntryStats, error) {
	query := `
		SELECT
			COUNT(*),
			MIN(entry_date),
			MAX(entry_date),
			COUNT(*) FILTER (WHERE entry_date >= $2)
		FROM diary_entries
		WHERE user_id = $1;
	`
	var stats domain.EntryStats
	err := r.Pool.QueryRow(ctx, query, userID, monthStart).Scan(
		&stats.TotalEntries,
		&stats.FirstEntryDate,
		&stats.LastEntryDate,
		&stats.EntriesThisMonth,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying entry stats: %w", err)
	}

	return &stats, nil
}
