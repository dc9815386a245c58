package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions callers are expected to branch on.
var (
	// ErrNotFound signals an unknown batch or record id.
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a duplicate record id on insert.
	ErrConflict = errors.New("duplicate id")
)

// PersistenceError wraps an underlying database failure. The enclosing
// transactional unit has already been rolled back when this is returned.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// StorageError wraps a filesystem failure on a required step. Best-effort
// cleanup failures are never surfaced as StorageError; they are logged and
// swallowed by policy.
type StorageError struct {
	Op   string
	Name string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s of %q: %v", e.Op, e.Name, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NotFound builds an ErrNotFound for the given entity and id.
func NotFound(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
}

// Conflict builds an ErrConflict for the given record id context.
func Conflict(detail string, err error) error {
	return fmt.Errorf("%s: %w: %v", detail, ErrConflict, err)
}
