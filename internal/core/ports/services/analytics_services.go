package services

import (
	"context"

	"github.com/mohanapra/personal-diary-web-app/internal/core/domain"
)

// AnalyticsService defines the read-only aggregate views over a user's
// entries. All operations are stateless and recomputed on every call.
type AnalyticsService interface {
	// MoodDistribution counts the user's entries per mood. The result always
	// contains every enumerated mood, zero-filled where no entries exist.
	MoodDistribution(ctx context.Context, userID string) (map[domain.Mood]int, error)

	// MoodTrends groups entries from the last windowDays days by the entry's
	// calendar day and mood. Days without entries are absent. Keys use the
	// YYYY-MM-DD form.
	MoodTrends(ctx context.Context, userID string, windowDays int) (map[string]map[domain.Mood]int, error)

	// SummaryStats assembles entry counts, first/last entry dates, the count
	// for the current calendar month, and the most common mood.
	SummaryStats(ctx context.Context, userID string) (*domain.SummaryStats, error)
}
