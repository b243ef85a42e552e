package domain

import "time"

// MoodCount is one row of a per-mood aggregation.
type MoodCount struct {
	Mood  Mood
	Count int
}

// DailyMoodCount is one row of a per-day, per-mood aggregation. Day carries
// the entry's own date truncated to a calendar day.
type DailyMoodCount struct {
	Day   time.Time
	Mood  Mood
	Count int
}

// EntryStats holds the raw aggregates behind the summary stats view.
// FirstEntryDate and LastEntryDate are nil when the user has no entries.
type EntryStats struct {
	TotalEntries     int
	FirstEntryDate   *time.Time
	LastEntryDate    *time.Time
	EntriesThisMonth int
}

// SummaryStats is the assembled summary returned to callers.
// MostCommonMood is nil when the user has no entries.
type SummaryStats struct {
	TotalEntries     int
	FirstEntryDate   *time.Time
	LastEntryDate    *time.Time
	EntriesThisMonth int
	MostCommonMood   *Mood
}
