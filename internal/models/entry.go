package models

import "time"

// DiaryEntry is the persistence shape of a journal entry.
// Tags map to a text[] column; pgx scans that into []string directly.
type DiaryEntry struct {
	EntryID   string    `db:"entry_id"`
	UserID    string    `db:"user_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Mood      string    `db:"mood"`
	EntryDate time.Time `db:"entry_date"`
	Tags      []string  `db:"tags"`
	AuditFields
}
