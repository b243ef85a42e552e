package dto

import (
	"time"

	"github.com/mohanapra/personal-diary-web-app/internal/core/domain"
)

// MoodTrendsParams defines query parameters for the mood trends view.
type MoodTrendsParams struct {
	Days int `form:"days,default=30"`
}

// MoodDistributionResponse maps each of the five moods to an entry count.
// Every mood is always present, zero-filled where the user has no entries.
type MoodDistributionResponse map[string]int

// MoodTrendsResponse maps calendar days (YYYY-MM-DD) to per-mood counts.
// Days without entries are absent.
type MoodTrendsResponse map[string]map[string]int

// SummaryStatsResponse is the summary view of a user's diary.
type SummaryStatsResponse struct {
	TotalEntries     int        `json:"totalEntries"`
	FirstEntryDate   *time.Time `json:"firstEntryDate"`
	LastEntryDate    *time.Time `json:"lastEntryDate"`
	EntriesThisMonth int        `json:"entriesThisMonth"`
	MostCommonMood   *string    `json:"mostCommonMood"`
}

// ToMoodDistributionResponse converts the domain distribution map to its DTO.
func ToMoodDistributionResponse(dist map[domain.Mood]int) MoodDistributionResponse {
	resp := make(MoodDistributionResponse, len(dist))
	for mood, count := range dist {
		resp[string(mood)] = count
	}
	return resp
}

// ToMoodTrendsResponse converts the domain trends map to its DTO.
func ToMoodTrendsResponse(trends map[string]map[domain.Mood]int) MoodTrendsResponse {
	resp := make(MoodTrendsResponse, len(trends))
	for day, counts := range trends {
		dayCounts := make(map[string]int, len(counts))
		for mood, count := range counts {
			dayCounts[string(mood)] = count
		}
		resp[day] = dayCounts
	}
	return resp
}

// ToSummaryStatsResponse converts domain.SummaryStats to its DTO.
func ToSummaryStatsResponse(stats *domain.SummaryStats) SummaryStatsResponse {
	var mostCommon *string
	if stats.MostCommonMood != nil {
		m := string(*stats.MostCommonMood)
		mostCommon = &m
	}
	return SummaryStatsResponse{
		TotalEntries:     stats.TotalEntries,
		FirstEntryDate:   stats.FirstEntryDate,
		LastEntryDate:    stats.LastEntryDate,
		EntriesThisMonth: stats.EntriesThisMonth,
		MostCommonMood:   mostCommon,
	}
}
