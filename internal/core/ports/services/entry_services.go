package services

import (
	"context"

	"github.com/mohanapra/personal-diary-web-app/internal/core/domain"
	"github.com/mohanapra/personal-diary-web-app/internal/dto"
)

// EntryReaderSvc defines read operations for diary entries.
type EntryReaderSvc interface {
	// GetEntryByID retrieves one of the user's entries. An entry owned by a
	// different user is reported as not found.
	GetEntryByID(ctx context.Context, userID string, entryID string) (*domain.DiaryEntry, error)

	// ListEntries retrieves the user's entries ordered by entry date
	// descending, truncated to limit when limit > 0.
	ListEntries(ctx context.Context, userID string, limit int) ([]domain.DiaryEntry, error)
}

// EntryWriterSvc defines write operations for diary entries.
type EntryWriterSvc interface {
	// CreateEntry validates and persists a new entry for the user.
	CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest) (*domain.DiaryEntry, error)

	// UpdateEntry applies the fields present in req to an existing entry.
	UpdateEntry(ctx context.Context, userID string, entryID string, req dto.UpdateEntryRequest) (*domain.DiaryEntry, error)

	// DeleteEntry permanently removes one of the user's entries.
	DeleteEntry(ctx context.Context, userID string, entryID string) error
}

// EntrySvcFacade combines all entry-related service interfaces.
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
