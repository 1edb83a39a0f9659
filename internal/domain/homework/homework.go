// internal/domain/homework/homework.go
package homework

import (
	"context"
	"fmt"
)

// Status is the review state reported by the API for a single homework.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Verdicts maps every known review status to the text sent to the chat.
var Verdicts = map[Status]string{
	StatusApproved:  "The work has been reviewed: the reviewer liked everything. Hooray!",
	StatusReviewing: "The work has been taken for review by the reviewer.",
	StatusRejected:  "The work has been reviewed: the reviewer has comments.",
}

// NothingSubmittedMessage is reported when the API returns no homeworks for the cursor.
const NothingSubmittedMessage = "Homework has not been submitted for review."

// Record is a single homework entry exactly as decoded from the API.
// Fields are looked up on demand so that missing keys can be told apart from empty values.
type Record map[string]any

// Name returns homework_name and whether it is present. Null counts as absent;
// non-string values are rendered as text.
func (r Record) Name() (string, bool) {
	return r.field("homework_name")
}

// Status returns status and whether it is present. Null counts as absent;
// non-string values are rendered as text and never match a verdict.
func (r Record) Status() (Status, bool) {
	v, ok := r.field("status")
	return Status(v), ok
}

func (r Record) field(key string) (string, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return "", false
	}
	if s, isString := v.(string); isString {
		return s, true
	}
	return fmt.Sprint(v), true
}

// Response is a validated API payload.
type Response struct {
	// Homeworks holds the decoded entries, newest first. Only the first one is
	// ever reported, so entries are not checked here.
	Homeworks []any
	// CurrentDate is the next cursor value; zero when the API omitted it.
	CurrentDate int64
}

// Client fetches the raw, decoded JSON payload of homework statuses changed since cursor.
type Client interface {
	FetchStatuses(ctx context.Context, cursor int64) (any, error)
}
