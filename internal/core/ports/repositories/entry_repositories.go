package repositories

import (
	"context"

	"github.com/mohanapra/personal-diary-web-app/internal/core/domain"
)

// EntryReader defines read operations for diary entries. Every lookup is
// scoped by userID; an entry owned by someone else reads as not found.
type EntryReader interface {
	// FindEntryByID retrieves a single entry owned by userID.
	FindEntryByID(ctx context.Context, userID string, entryID string) (*domain.DiaryEntry, error)

	// FindEntries retrieves the user's entries ordered by entry date
	// descending. A limit <= 0 means no limit.
	FindEntries(ctx context.Context, userID string, limit int) ([]domain.DiaryEntry, error)
}

// EntryWriter defines write operations for diary entries.
type EntryWriter interface {
	// SaveEntry persists a new entry.
	SaveEntry(ctx context.Context, entry domain.DiaryEntry) error

	// UpdateEntry replaces the mutable fields of an existing entry owned by
	// entry.UserID. Returns apperrors.ErrNotFound when no such entry exists.
	UpdateEntry(ctx context.Context, entry domain.DiaryEntry) error

	// DeleteEntry permanently removes an entry owned by userID.
	// Returns apperrors.ErrNotFound when no such entry exists.
	DeleteEntry(ctx context.Context, userID string, entryID string) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
