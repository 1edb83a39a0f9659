// internal/domain/notification/journal.go
package notification

import "context"

// Journal records notification attempts. It is an audit trail only and is never
// read back to restore polling state.
type Journal interface {
	Record(ctx context.Context, entry *Entry) error
}

// NopJournal discards every entry. Used when no database is configured.
type NopJournal struct{}

func (NopJournal) Record(context.Context, *Entry) error { return nil }
