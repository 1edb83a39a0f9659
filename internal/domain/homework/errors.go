// internal/domain/homework/errors.go
package homework

import (
	"errors"
	"fmt"
)

// ErrorKind names a recoverable failure of the polling cycle.
type ErrorKind string

const (
	KindTransport        ErrorKind = "transport"
	KindUnexpectedStatus ErrorKind = "unexpected_status"
	KindShape            ErrorKind = "shape"
	KindMissingField     ErrorKind = "missing_field"
	KindUnknownStatus    ErrorKind = "unknown_status"
	KindUnclassified     ErrorKind = "unclassified"
)

// TransportError covers connection, timeout, DNS and body decoding failures.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("API request failed during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error   { return e.Err }
func (e *TransportError) Kind() ErrorKind { return KindTransport }

// UnexpectedStatusError is returned when the API answers with anything but 200.
type UnexpectedStatusError struct {
	Code int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected response from the homework API: status %d", e.Code)
}

func (e *UnexpectedStatusError) Kind() ErrorKind { return KindUnexpectedStatus }

// ShapeError means the payload does not have the documented structure.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string   { return "malformed API response: " + e.Reason }
func (e *ShapeError) Kind() ErrorKind { return KindShape }

// MissingFieldError means a required key is absent from the payload or a record.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string   { return fmt.Sprintf("field %q is missing", e.Field) }
func (e *MissingFieldError) Kind() ErrorKind { return KindMissingField }

// UnknownStatusError means the record carries a status with no verdict.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown homework status %q", e.Status)
}

func (e *UnknownStatusError) Kind() ErrorKind { return KindUnknownStatus }

type kinded interface {
	error
	Kind() ErrorKind
}

// KindOf classifies err. Errors outside the taxonomy are KindUnclassified.
func KindOf(err error) ErrorKind {
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindUnclassified
}

// IsRecoverable reports whether err belongs to the enumerated set the polling loop recovers from.
func IsRecoverable(err error) bool {
	return err != nil && KindOf(err) != KindUnclassified
}
