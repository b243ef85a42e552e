package repositories

import (
	"context"
	"time"

	"github.com/mohanapra/personal-diary-web-app/internal/core/domain"
)

// AnalyticsRepository defines the read-only aggregation queries behind the
// analytics views. All results carry raw database aggregates; shaping
// (zero-filling, tie-breaking, date keys) happens in the service layer.
type AnalyticsRepository interface {
	// GetMoodCounts returns per-mood entry counts for the user. Moods with
	// no entries are absent from the result.
	GetMoodCounts(ctx context.Context, userID string) ([]domain.MoodCount, error)

	// GetDailyMoodCounts returns per-day, per-mood counts for entries whose
	// entry date is on or after since. Grouping uses the entry's own date
	// truncated to a calendar day.
	GetDailyMoodCounts(ctx context.Context, userID string, since time.Time) ([]domain.DailyMoodCount, error)

	// GetEntryStats returns the user's entry count, min/max entry dates, and
	// the count of entries dated on or after monthStart.
	GetEntryStats(ctx context.Context, userID string, monthStart time.Time) (*domain.EntryStats, error)
}
