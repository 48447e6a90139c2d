package credstore

import (
	"context"
	"sync"
)

// MemoryStore implements Store with process-local storage. Credentials do
// not survive a restart, which makes it suitable for tests and for clients
// that deliberately forget the session on exit.
type MemoryStore struct {
	mu    sync.RWMutex
	creds Credentials
	set   bool
}

// NewMemoryStore creates an empty in-memory credential store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load retrieves the stored credentials.
func (m *MemoryStore) Load(ctx context.Context) (Credentials, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.set || m.creds.IsZero() {
		return Credentials{}, ErrNoCredentials
	}

	credsCopy := m.creds
	credsCopy.User = append([]byte(nil), m.creds.User...)
	return credsCopy, nil
}

// Save replaces the stored credentials.
func (m *MemoryStore) Save(ctx context.Context, creds Credentials) error {
	if creds.IsZero() {
		return ErrIncompleteCredentials
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	credsCopy := creds
	credsCopy.User = append([]byte(nil), creds.User...)
	m.creds = credsCopy
	m.set = true
	return nil
}

// Clear removes the stored credentials.
func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.creds = Credentials{}
	m.set = false
	return nil
}
