package credstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore implements Store with a JSON file on disk. Writes go through a
// temp file and rename, so a crash mid-write leaves either the previous
// snapshot or the new one, never a torn file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a file-backed credential store at path. The parent
// directory is created on the first Save, not here.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file location.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads and decodes the snapshot. A missing, unreadable or corrupt
// file is reported as ErrNoCredentials so startup can proceed logged out.
func (f *FileStore) Load(ctx context.Context) (Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Credentials{}, ErrNoCredentials
		}
		return Credentials{}, fmt.Errorf("%w: %w", ErrNoCredentials, err)
	}

	var creds Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return Credentials{}, fmt.Errorf("%w: %w", ErrNoCredentials, err)
	}
	if creds.IsZero() {
		return Credentials{}, ErrNoCredentials
	}
	return creds, nil
}

// Save writes the snapshot with 0600 permissions (it holds a bearer token).
func (f *FileStore) Save(ctx context.Context, creds Credentials) error {
	if creds.IsZero() {
		return ErrIncompleteCredentials
	}

	raw, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}

	tmp, err := os.CreateTemp(dir, ".credentials-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}
	return nil
}

// Clear removes the snapshot file.
func (f *FileStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}
	return nil
}
