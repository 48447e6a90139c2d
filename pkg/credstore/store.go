package credstore

import "context"

// Credentials is the persisted session snapshot. User holds the serialized
// profile exactly as the session manager wrote it; the store never parses it.
type Credentials struct {
	Token string `json:"token"`
	User  []byte `json:"user"`
}

// IsZero reports whether either half of the snapshot is missing. Such a
// snapshot is treated as "no session"; token and user only count together.
func (c Credentials) IsZero() bool {
	return c.Token == "" || len(c.User) == 0
}

// Store defines the interface for credential persistence.
type Store interface {
	// Load retrieves the persisted credentials, returning ErrNoCredentials
	// when no complete snapshot exists.
	Load(ctx context.Context) (Credentials, error)

	// Save atomically replaces the persisted snapshot (token and user together).
	Save(ctx context.Context, creds Credentials) error

	// Clear removes the persisted snapshot. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
