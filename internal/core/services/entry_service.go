package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mohanapra/personal-diary-web-app/internal/apperrors"
	"github.com/mohanapra/personal-diary-web-app/internal/core/domain"
	portsrepo "github.com/mohanapra/personal-diary-web-app/internal/core/ports/repositories"
	portssvc "github.com/mohanapra/personal-diary-web-app/internal/core/ports/services"
	"github.com/mohanapra/personal-diary-web-app/internal/dto"
)

const maxTitleLength = 200

// entryService implements the EntrySvcFacade interface.
type entryService struct {
	BaseService
	entryRepo portsrepo.EntryRepositoryFacade
}

// NewEntryService creates a new entry service.
func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade) portssvc.EntrySvcFacade {
	return &entryService{entryRepo: entryRepo}
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// normalizeTags trims every tag and drops the ones that end up empty,
// preserving order. A nil input becomes an empty slice.
func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	return normalized
}

func validateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	}
	if len(trimmed) > maxTitleLength {
		return "", fmt.Errorf("%w: title must be at most %d characters", apperrors.ErrValidation, maxTitleLength)
	}
	return trimmed, nil
}

func validateMood(mood string) (domain.Mood, error) {
	m := domain.Mood(mood)
	if !m.IsValid() {
		return "", fmt.Errorf("%w: mood %q is not a valid mood", apperrors.ErrValidation, mood)
	}
	return m, nil
}

// CreateEntry validates and persists a new diary entry for the user.
// Date defaults to the current time and tags to an empty list when omitted.
func (s *entryService) CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest) (*domain.DiaryEntry, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, err
	}
	if req.Content == "" {
		return nil, fmt.Errorf("%w: content is required", apperrors.ErrValidation)
	}
	mood, err := validateMood(req.Mood)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entryDate := now
	if req.Date != nil {
		entryDate = *req.Date
	}

	entry := domain.DiaryEntry{
		EntryID:   uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Content:   req.Content,
		Mood:      mood,
		EntryDate: entryDate,
		Tags:      normalizeTags(req.Tags),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save diary entry", slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	s.LogInfo(ctx, "Diary entry created", slog.String("entry_id", entry.EntryID), slog.String("mood", string(entry.Mood)))
	return &entry, nil
}

// ListEntries returns the user's entries ordered by entry date descending.
func (s *entryService) ListEntries(ctx context.Context, userID string, limit int) ([]domain.DiaryEntry, error) {
	entries, err := s.entryRepo.FindEntries(ctx, userID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list diary entries")
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

// GetEntryByID returns one of the user's entries. An entry owned by another
// user reads as not found.
func (s *entryService) GetEntryByID(ctx context.Context, userID string, entryID string) (*domain.DiaryEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateEntry applies the fields present and non-empty in req to an existing
// entry. EntryID and UserID are never touched. Concurrent updates to the
// same entry are not ordered: last write wins.
func (s *entryService) UpdateEntry(ctx context.Context, userID string, entryID string, req dto.UpdateEntryRequest) (*domain.DiaryEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != "" {
		title, err := validateTitle(*req.Title)
		if err != nil {
			return nil, err
		}
		entry.Title = title
	}
	if req.Content != nil && *req.Content != "" {
		entry.Content = *req.Content
	}
	if req.Mood != nil && *req.Mood != "" {
		mood, err := validateMood(*req.Mood)
		if err != nil {
			return nil, err
		}
		entry.Mood = mood
	}
	if req.Date != nil {
		entry.EntryDate = *req.Date
	}
	if req.Tags != nil {
		entry.Tags = normalizeTags(*req.Tags)
	}

	entry.LastUpdatedAt = time.Now()
	entry.LastUpdatedBy = userID

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update diary entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Diary entry updated", slog.String("entry_id", entryID))
	return entry, nil
}

// DeleteEntry permanently removes one of the user's entries.
func (s *entryService) DeleteEntry(ctx context.Context, userID string, entryID string) error {
	if err := s.entryRepo.DeleteEntry(ctx, userID, entryID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Diary entry deleted", slog.String("entry_id", entryID))
	return nil
}
