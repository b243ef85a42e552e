package mapping

import (
	"github.com/mohanapra/personal-diary-web-app/internal/core/domain"
	"github.com/mohanapra/personal-diary-web-app/internal/models"
)

// ToModelEntry converts a domain DiaryEntry to a model DiaryEntry
func ToModelEntry(d domain.DiaryEntry) models.DiaryEntry {
	return models.DiaryEntry{
		EntryID:     d.EntryID,
		UserID:      d.UserID,
		Title:       d.Title,
		Content:     d.Content,
		Mood:        string(d.Mood),
		EntryDate:   d.EntryDate,
		Tags:        d.Tags,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntry converts a model DiaryEntry to a domain DiaryEntry
func ToDomainEntry(m models.DiaryEntry) domain.DiaryEntry {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.DiaryEntry{
		EntryID:     m.EntryID,
		UserID:      m.UserID,
		Title:       m.Title,
		Content:     m.Content,
		Mood:        domain.Mood(m.Mood),
		EntryDate:   m.EntryDate,
		Tags:        tags,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEntrySlice converts a slice of model entries to domain entries
func ToDomainEntrySlice(ms []models.DiaryEntry) []domain.DiaryEntry {
	ds := make([]domain.DiaryEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntry(m)
	}
	return ds
}
