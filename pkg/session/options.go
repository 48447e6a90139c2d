package session

import (
	"log/slog"

	"github.com/dmitrymomot/shopkit/pkg/credstore"
)

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithStore sets the persistent credential store. Defaults to an in-memory
// store, which keeps the session for the process lifetime only.
func WithStore(store credstore.Store) Option {
	return func(m *Manager) {
		if store != nil {
			m.store = store
		}
	}
}

// WithLogger sets the logger used to report store and restore problems.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}
