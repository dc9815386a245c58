package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cnsllgllr/qrmaster/internal/apperr"
)

// Store owns uploaded report files under a single root directory. Names are
// constructed via BuildStoredName so concurrent writes for different records
// never collide; same-name concurrent writes are not a supported case.
type Store struct {
	dir     string
	baseURL string
}

// NewStore creates the attachment store, ensuring the root directory exists
func NewStore(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &apperr.StorageError{Op: "init", Name: dir, Err: err}
	}
	return &Store{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir returns the root directory of the store
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the stream under the given storage name. The write is atomic
// from the caller's perspective: bytes go to a temp file in the same
// directory first and are renamed into place only once fully written.
func (s *Store) Save(name string, src io.Reader) error {
	name = SanitizeName(name)
	if name == "" {
		return &apperr.StorageError{Op: "save", Name: name, Err: fmt.Errorf("empty storage name")}
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return &apperr.StorageError{Op: "save", Name: name, Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &apperr.StorageError{Op: "save", Name: name, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &apperr.StorageError{Op: "save", Name: name, Err: err}
	}

	if err := os.Rename(tmpPath, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpPath)
		return &apperr.StorageError{Op: "save", Name: name, Err: err}
	}

	return nil
}

// Delete removes the named file. Deleting a non-existent name is a no-op so
// that an already-inconsistent filesystem never aborts a larger cleanup.
func (s *Store) Delete(name string) error {
	name = SanitizeName(name)
	if name == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return &apperr.StorageError{Op: "delete", Name: name, Err: err}
	}
	return nil
}

// ResolveURL builds the caller-facing download reference for a storage name
func (s *Store) ResolveURL(name string) string {
	return s.baseURL + "/" + name
}

// Path resolves a storage name to its on-disk path, rejecting anything that
// would escape the root directory.
func (s *Store) Path(name string) (string, bool) {
	if name == "" || name != SanitizeName(name) {
		return "", false
	}
	return filepath.Join(s.dir, name), true
}

/// BuildStoredName encodes ownership and upload time into the storage name:
// {recordId}_{epochSeconds}_{originalFileName}, sanitized to one path segment.
func BuildStoredName(recordID string, epochSeconds int64, originalName string) string {
	return SanitizeName(fmt.Sprintf("%s_%d_%s", recordID, epochSeconds, originalName))
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeName reduces a file name to a safe single path segment. Path
// separators and shell-unfriendly characters become underscores; a name that
// reduces to nothing (or only dots) becomes empty.
func SanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeNameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return ""
	}
	return name
}
