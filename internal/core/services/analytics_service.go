package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mohanapra/personal-diary-web-app/internal/core/domain"
	portsrepo "github.com/mohanapra/personal-diary-web-app/internal/core/ports/repositories"
	portssvc "github.com/mohanapra/personal-diary-web-app/internal/core/ports/services"
)

const dayKeyFormat = "2006-01-02"

// analyticsService implements the AnalyticsService interface.
type analyticsService struct {
	BaseService
	analyticsRepo portsrepo.AnalyticsRepository
	now           func() time.Time
}

// AnalyticsServiceOption is a functional option for configuring the analytics service.
type AnalyticsServiceOption func(*analyticsService)

// WithClock overrides the time source, used by tests to pin "now".
func WithClock(now func() time.Time) AnalyticsServiceOption {
	return func(s *analyticsService) {
		s.now = now
	}
}

// NewAnalyticsService creates a new analytics service with the provided options.
func NewAnalyticsService(repo portsrepo.AnalyticsRepository, options ...AnalyticsServiceOption) portssvc.AnalyticsService {
	svc := &analyticsService{
		analyticsRepo: repo,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AnalyticsService = (*analyticsService)(nil)

// MoodDistribution counts the user's entries per mood. The result always
// carries all five moods; moods without entries report zero.
func (s *analyticsService) MoodDistribution(ctx context.Context, userID string) (map[domain.Mood]int, error) {
	counts, err := s.analyticsRepo.GetMoodCounts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve mood counts")
		return nil, fmt.Errorf("failed to retrieve mood distribution: %w", err)
	}

	distribution := make(map[domain.Mood]int, len(domain.AllMoods))
	for _, mood := range domain.AllMoods {
		distribution[mood] = 0
	}
	for _, c := range counts {
		distribution[c.Mood] = c.Count
	}

	return distribution, nil
}

// MoodTrends groups entries from the trailing window by the entry's own
// calendar day and mood. Days without entries are absent from the result.
func (s *analyticsService) MoodTrends(ctx context.Context, userID string, windowDays int) (map[string]map[domain.Mood]int, error) {
	since := s.now().AddDate(0, 0, -windowDays)

	rows, err := s.analyticsRepo.GetDailyMoodCounts(ctx, userID, since)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve daily mood counts", slog.Int("window_days", windowDays))
		return nil, fmt.Errorf("failed to retrieve mood trends: %w", err)
	}

	trends := make(map[string]map[domain.Mood]int)
	for _, row := range rows {
		key := row.Day.Format(dayKeyFormat)
		if trends[key] == nil {
			trends[key] = make(map[domain.Mood]int)
		}
		trends[key][row.Mood] += row.Count
	}

	return trends, nil
}

// SummaryStats assembles the summary view: totals, first/last entry dates,
// the current calendar month count, and the most common mood. The month
// boundary is the first day of the current month at 00:00, computed from the
// processing time. Mood ties break in enumeration order.
func (s *analyticsService) SummaryStats(ctx context.Context, userID string) (*domain.SummaryStats, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats, err := s.analyticsRepo.GetEntryStats(ctx, userID, monthStart)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve entry stats")
		return nil, fmt.Errorf("failed to retrieve summary stats: %w", err)
	}

	counts, err := s.analyticsRepo.GetMoodCounts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve mood counts for summary")
		return nil, fmt.Errorf("failed to retrieve summary stats: %w", err)
	}

	summary := &domain.SummaryStats{
		TotalEntries:     stats.TotalEntries,
		FirstEntryDate:   stats.FirstEntryDate,
		LastEntryDate:    stats.LastEntryDate,
		EntriesThisMonth: stats.EntriesThisMonth,
		MostCommonMood:   mostCommonMood(counts),
	}

	return summary, nil
}

// mostCommonMood picks the mood with the highest count, walking the
// enumeration in order so that ties resolve to the earlier mood.
// Returns nil when there are no entries at all.
func mostCommonMood(counts []domain.MoodCount) *domain.Mood {
	byMood := make(map[domain.Mood]int, len(counts))
	for _, c := range counts {
		byMood[c.Mood] = c.Count
	}

	var best *domain.Mood
	bestCount := 0
	for _, mood := range domain.AllMoods {
		if count := byMood[mood]; count > bestCount {
			m := mood
			best = &m
			bestCount = count
		}
	}
	return best
}
