// Package credstore provides durable storage for the storefront client's
// credentials: the auth token and a serialized snapshot of the user profile.
// The store is a mirror of the in-memory session, not the source of truth;
// it only exists so a restarted process can restore its session.
//
// The package is storage-agnostic: any backend satisfying the Store
// interface can be plugged in. Three implementations ship out of the box:
//
//   - MemoryStore: process-local, for tests and ephemeral sessions
//   - FileStore: a JSON file with atomic writes, the default for CLI-like
//     clients
//   - RedisStore: a Redis hash, for clients that share credentials across
//     processes
//
// Token and user snapshot are always written and cleared together; a store
// never exposes one without the other. Load reports ErrNoCredentials both
// for "never saved" and for unreadable state, since a corrupt store must never
// prevent the client from starting logged out.
package credstore
