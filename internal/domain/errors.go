package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoVideoID is returned when no valid YouTube video id can be derived
// from free-form input.
var ErrNoVideoID = errors.New("no valid video id found")

// ValidationError reports required submission fields that are missing or
// empty. It is raised before any write.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// StorageError wraps a backend rejection of a read or write, keeping the
// backend-native code, message and hint.
type StorageError struct {
	Op      string
	Code    string
	Message string
	Hint    string
	Err     error
}

func (e *StorageError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (code %s)", e.Op, e.Message, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a lookup by identifier that matched no row.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}
