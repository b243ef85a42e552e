package dto

import (
	"time"

	"github.com/mohanapra/personal-diary-web-app/internal/core/domain"
)

// CreateEntryRequest defines the data required to create a diary entry.
// Date and Tags are optional; the service defaults them to the current time
// and an empty list respectively.
type CreateEntryRequest struct {
	Title   string     `json:"title" binding:"required"`
	Content string     `json:"content" binding:"required"`
	Mood    string     `json:"mood" binding:"required,mood"`
	Date    *time.Time `json:"date"`
	Tags    []string   `json:"tags"`
}

// UpdateEntryRequest defines the data allowed for updating an entry.
// Pointers differentiate omitted fields from zero-value fields; only fields
// that are present and non-empty are applied.
type UpdateEntryRequest struct {
	Title   *string    `json:"title"`
	Content *string    `json:"content"`
	Mood    *string    `json:"mood" binding:"omitempty,mood"`
	Date    *time.Time `json:"date"`
	Tags    *[]string  `json:"tags"`
}

// ListEntriesParams defines query parameters for listing entries.
type ListEntriesParams struct {
	Limit int `form:"limit"`
}

// EntryResponse defines the data returned for a diary entry. The owning
// user is deliberately absent: entries are only ever served to their owner.
type EntryResponse struct {
	EntryID   string    `json:"entryID"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood"`
	Date      time.Time `json:"date"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListEntriesResponse wraps the ordered list of entries.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a domain.DiaryEntry to an EntryResponse DTO.
func ToEntryResponse(e *domain.DiaryEntry) EntryResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return EntryResponse{
		EntryID:   e.EntryID,
		Title:     e.Title,
		Content:   e.Content,
		Mood:      string(e.Mood),
		Date:      e.EntryDate,
		Tags:      tags,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.LastUpdatedAt,
	}
}

// ToListEntriesResponse converts a slice of domain entries to the list DTO.
func ToListEntriesResponse(entries []domain.DiaryEntry) ListEntriesResponse {
	responses := make([]EntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToEntryResponse(&e)
	}
	return ListEntriesResponse{Entries: responses}
}
