package dataset

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	ErrNotFound            = errors.New("dataset directory not found")
	ErrAccessDenied        = errors.New("dataset directory access denied")
	ErrNotDirectory        = errors.New("dataset path is not a directory")
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
)

// Error wraps an enumeration failure with its kind.
// errors.Is matches both Kind and the underlying filesystem error.
type Error struct {
	Kind error
	Dir  string
	ID   string // set for ErrDuplicateIdentifier
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Dir != "" {
		msg += ": " + e.Dir
	}
	if e.ID != "" {
		msg += fmt.Sprintf(": %q", e.ID)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// classify maps a filesystem error onto an enumeration kind.
func classify(dir string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &Error{Kind: ErrNotFound, Dir: dir, Err: err}
	case errors.Is(err, fs.ErrPermission):
		return &Error{Kind: ErrAccessDenied, Dir: dir, Err: err}
	default:
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}
}
