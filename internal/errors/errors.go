// Package errors defines typed errors with categories for user-friendly reporting.
// Every startup failure of recbrowse carries a machine-readable Kind so the
// command layer can pick a message and hint without string matching, while the
// underlying cause stays reachable through errors.Unwrap.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// ConfigNotFound indicates the credential file does not exist.
	ConfigNotFound Kind = "config_not_found"
	// ConfigUnreadable indicates an I/O failure while reading the credential file.
	ConfigUnreadable Kind = "config_unreadable"
	// ConnectionFailed indicates the data store could not be reached or refused the credentials.
	ConnectionFailed Kind = "connection_failed"
	// FetchFailed indicates a query failed while loading records.
	FetchFailed Kind = "fetch_failed"
	// InvalidTable indicates a table name that cannot be safely used as an identifier.
	InvalidTable Kind = "invalid_table"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

// Is reports whether target is an *E of the same kind, so callers can write
// errors.Is(err, apperrors.New(apperrors.FetchFailed, "")).
func (e *E) Is(target error) bool {
	t, ok := target.(*E)
	return ok && t.Kind == e.Kind
}

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the kind of the first *E in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
