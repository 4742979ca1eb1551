// Package redactor provides custom error types for better error handling and reporting.
package redactor

import (
	"errors"
	"fmt"
)

// ErrNotOpen is returned when a query, redaction or save is attempted before
// a document has been opened successfully.
var ErrNotOpen = errors.New("no document is open")

// NotFoundError reports a missing archive file or a missing entry inside an
// otherwise readable archive.
type NotFoundError struct {
	Path  string
	Entry string
}

func (e *NotFoundError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("entry '%s' not found in '%s'", e.Entry, e.Path)
	}
	return fmt.Sprintf("file '%s' does not exist", e.Path)
}

// NewNotFoundError creates a new not-found error. Entry may be empty when the
// archive itself is missing.
func NewNotFoundError(path, entry string) error {
	return &NotFoundError{Path: path, Entry: entry}
}

// PrefixError reports a tag shorthand whose namespace prefix is not in the
// codec's table.
type PrefixError struct {
	Prefix string
}

func (e *PrefixError) Error() string {
	return fmt.Sprintf("prefix '%s' not found in prefix map", e.Prefix)
}

// NewPrefixError creates a new prefix error.
func NewPrefixError(prefix string) error {
	return &PrefixError{Prefix: prefix}
}

// DocumentError represents an error during document operations
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}
