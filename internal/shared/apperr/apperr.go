// Package apperr defines the error taxonomy shared by the back-office domains.
// Each kind carries enough structure for adapters to tell bad input apart from
// system failure.
package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrUnauthenticated is returned when credentials or session tokens are rejected.
var ErrUnauthenticated = errors.New("authentication failed")

// ValidationError reports required or malformed fields on a write.
type ValidationError struct {
	Entity string
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("invalid %s", e.Entity)
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(e.Fields, ", "))
}

// NewValidation builds a ValidationError, or returns nil when no field failed.
func NewValidation(entity string, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Entity: entity, Fields: append([]string(nil), fields...)}
}

// ReferenceError reports a write that points at an entity which does not exist.
type ReferenceError struct {
	Kind string
	ID   int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Kind, e.ID)
}

// NotFoundError reports a missing update or lookup target.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// InUseError reports a delete refused because other records still reference the target.
type InUseError struct {
	Resource   string
	ID         int64
	References int64
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("%s %d is referenced by %d order(s)", e.Resource, e.ID, e.References)
}

// PersistenceError wraps an underlying storage failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return e.Op + ": storage failure"
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence wraps err as a PersistenceError unless it is nil or already classified.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsClassified(err) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsClassified reports whether err already belongs to the taxonomy.
func IsClassified(err error) bool {
	var (
		validation  *ValidationError
		reference   *ReferenceError
		notFound    *NotFoundError
		inUse       *InUseError
		persistence *PersistenceError
	)
	return errors.As(err, &validation) ||
		errors.As(err, &reference) ||
		errors.As(err, &notFound) ||
		errors.As(err, &inUse) ||
		errors.As(err, &persistence) ||
		errors.Is(err, ErrUnauthenticated)
}

// LogLevel returns Warn for caller mistakes and Error for storage or unclassified failures.
func LogLevel(err error) slog.Level {
	var persistence *PersistenceError
	if errors.As(err, &persistence) || !IsClassified(err) {
		return slog.LevelError
	}
	return slog.LevelWarn
}
