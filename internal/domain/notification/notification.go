// internal/domain/notification/notification.go
package notification

import "time"

// Kind tells which de-duplication track a notification belongs to.
type Kind string

const (
	KindStatus  Kind = "STATUS"  // review status or "nothing submitted"
	KindFailure Kind = "FAILURE" // diagnostic for a failed poll cycle
)

// Entry is one attempted delivery to the chat.
type Entry struct {
	ID        int64
	CycleID   string
	Kind      Kind
	Text      string
	Delivered bool
	Error     string // delivery error, empty when Delivered
	CreatedAt time.Time
}
