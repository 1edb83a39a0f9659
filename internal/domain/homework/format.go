// internal/domain/homework/format.go
package homework

import "fmt"

// FormatStatus renders the status change message for a single record.
func FormatStatus(rec Record) (string, error) {
	name, ok := rec.Name()
	if !ok {
		return "", &MissingFieldError{Field: "homework_name"}
	}
	status, ok := rec.Status()
	if !ok {
		return "", &MissingFieldError{Field: "status"}
	}
	verdict, ok := Verdicts[status]
	if !ok {
		return "", &UnknownStatusError{Status: string(status)}
	}
	return fmt.Sprintf(`Changed review status for "%s". %s`, name, verdict), nil
}

// Summarize turns a validated response into the single message to report:
// the latest record's status, or NothingSubmittedMessage when there are none.
func Summarize(resp *Response) (string, error) {
	if len(resp.Homeworks) == 0 {
		return NothingSubmittedMessage, nil
	}
	rec, ok := resp.Homeworks[0].(map[string]any)
	if !ok {
		return "", &ShapeError{Reason: fmt.Sprintf("homeworks[0] is %T, expected an object", resp.Homeworks[0])}
	}
	return FormatStatus(Record(rec))
}
