package codec

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed wraps JSON syntax failures, before any document shape rule
// is even checked.
var ErrMalformed = errors.New("malformed json document")

// UnknownTagError reports an envelope that does not contain exactly one
// recognized variant tag key.
type UnknownTagError struct {
	Keys []string
}

func (e *UnknownTagError) Error() string {
	if len(e.Keys) == 0 {
		return "missing variant tag"
	}
	return "unknown variant tag: " + strings.Join(e.Keys, ", ")
}

// MissingFieldError reports a required field absent from a payload. Path
// is the full wire path, e.g. "admin.promoted_by.username".
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Path)
}

// TypeMismatchError reports a field whose JSON value has the wrong shape.
type TypeMismatchError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch at %q: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// InvalidTimestampError reports a timestamp field whose string value is
// not a parseable instant.
type InvalidTimestampError struct {
	Path  string
	Value string
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp at %q: %q", e.Path, e.Value)
}

// IsDecodeError reports whether err belongs to the decode taxonomy, i.e.
// describes a client-supplied document rather than an internal fault.
func IsDecodeError(err error) bool {
	var tag *UnknownTagError
	var missing *MissingFieldError
	var mismatch *TypeMismatchError
	var ts *InvalidTimestampError
	return errors.Is(err, ErrMalformed) ||
		errors.As(err, &tag) ||
		errors.As(err, &missing) ||
		errors.As(err, &mismatch) ||
		errors.As(err, &ts)
}
