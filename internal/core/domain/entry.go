package domain

import "time"

// Mood classifies how the author felt about the day an entry describes.
type Mood string

const (
	MoodVeryHappy Mood = "very-happy"
	MoodHappy     Mood = "happy"
	MoodNeutral   Mood = "neutral"
	MoodSad       Mood = "sad"
	MoodVerySad   Mood = "very-sad"
)

// AllMoods lists every valid mood. The order is significant: analytics
// tie-breaking walks this slice front to back.
var AllMoods = []Mood{MoodVeryHappy, MoodHappy, MoodNeutral, MoodSad, MoodVerySad}

// IsValid reports whether m is one of the five enumerated moods.
func (m Mood) IsValid() bool {
	switch m {
	case MoodVeryHappy, MoodHappy, MoodNeutral, MoodSad, MoodVerySad:
		return true
	}
	return false
}

// DiaryEntry represents a single journal entry in the domain.
// EntryID and UserID are immutable after creation; everything else may be
// replaced through an update.
type DiaryEntry struct {
	EntryID   string    `json:"entryID"` // Primary Key (UUID)
	UserID    string    `json:"userID"`  // Owning user, never exposed over the API
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      Mood      `json:"mood"`
	EntryDate time.Time `json:"entryDate"` // What day the entry is about, not when it was written
	Tags      []string  `json:"tags"`
	AuditFields
}
