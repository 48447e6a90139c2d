package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/shopkit/pkg/apiclient"
	"github.com/dmitrymomot/shopkit/pkg/credstore"
)

// AuthAPI is the slice of the remote boundary the session manager consumes.
// *apiclient.Client satisfies it.
type AuthAPI interface {
	Login(ctx context.Context, phone, password string) (apiclient.AuthResponse, error)
	Register(ctx context.Context, phone, password, username string) (apiclient.AuthResponse, error)
	CurrentUser(ctx context.Context) (apiclient.User, error)
}

// Manager owns the in-memory session and its persisted mirror.
type Manager struct {
	mu      sync.RWMutex
	api     AuthAPI
	store   credstore.Store
	log     *slog.Logger
	session Session
}

// New creates a session manager over the given auth API.
func New(api AuthAPI, opts ...Option) *Manager {
	m := &Manager{
		api:   api,
		store: credstore.NewMemoryStore(),
		log:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// SetAPI installs the auth API after construction. It exists for wiring
// cycles where the API client's token source points back at this manager;
// call it once before any remote operation.
func (m *Manager) SetAPI(api AuthAPI) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.api = api
}

// Init restores a previously persisted session. It is idempotent and never
// fails: an absent, unreadable or unparsable snapshot leaves the session at
// its logged-out default. When a session is already active in memory, the
// persisted mirror is ignored; memory is authoritative.
func (m *Manager) Init(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session.IsLoggedIn() {
		return nil
	}

	creds, err := m.store.Load(ctx)
	if err != nil {
		m.log.DebugContext(ctx, "no persisted session to restore", slog.Any("error", err))
		return nil
	}

	var user apiclient.User
	if err := json.Unmarshal(creds.User, &user); err != nil {
		m.log.DebugContext(ctx, "persisted user snapshot is unparsable, staying logged out",
			slog.Any("error", err))
		return nil
	}

	m.session = Session{Token: creds.Token, User: &user}
	return nil
}

// Login authenticates with the remote boundary. On success the session is
// replaced in memory and mirrored to the store; on failure the previous
// session is left untouched and the remote error is returned unchanged.
// The raw server response is returned for caller use.
func (m *Manager) Login(ctx context.Context, phone, password string) (apiclient.AuthResponse, error) {
	resp, err := m.authAPI().Login(ctx, phone, password)
	if err != nil {
		m.log.ErrorContext(ctx, "login failed", slog.Any("error", err))
		return apiclient.AuthResponse{}, err
	}

	m.apply(ctx, resp.AccessToken, resp.User)
	return resp, nil
}

// Register creates an account and treats the result as an implicit login;
// the contract is identical to Login.
func (m *Manager) Register(ctx context.Context, phone, password, username string) (apiclient.AuthResponse, error) {
	resp, err := m.authAPI().Register(ctx, phone, password, username)
	if err != nil {
		m.log.ErrorContext(ctx, "registration failed", slog.Any("error", err))
		return apiclient.AuthResponse{}, err
	}

	m.apply(ctx, resp.AccessToken, resp.User)
	return resp, nil
}

// Logout clears the in-memory session and erases the persisted snapshot.
// It always succeeds; logout is purely a client-side forgetting of
// credentials and never calls the remote boundary.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.session = Session{}
	m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		m.log.ErrorContext(ctx, "failed to clear persisted credentials", slog.Any("error", err))
	}
}

// UpdateUser replaces the in-memory user and its persisted mirror, leaving
// the token untouched. It requires an active session: persisting a user
// without a token would break the both-keys-together store invariant.
func (m *Manager) UpdateUser(ctx context.Context, user apiclient.User) error {
	m.mu.Lock()
	if m.session.Token == "" {
		m.mu.Unlock()
		return ErrNotLoggedIn
	}
	userCopy := user
	m.session.User = &userCopy
	token := m.session.Token
	m.mu.Unlock()

	m.persist(ctx, token, user)
	return nil
}

// RefreshUser re-fetches the profile behind the current token and applies
// it like UpdateUser. Useful after server-side profile changes.
func (m *Manager) RefreshUser(ctx context.Context) (apiclient.User, error) {
	if !m.IsLoggedIn() {
		return apiclient.User{}, ErrNotLoggedIn
	}

	user, err := m.authAPI().CurrentUser(ctx)
	if err != nil {
		m.log.ErrorContext(ctx, "failed to refresh user", slog.Any("error", err))
		return apiclient.User{}, err
	}

	if err := m.UpdateUser(ctx, user); err != nil {
		return apiclient.User{}, err
	}
	return user, nil
}

// Current returns a copy of the session.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sessionCopy := m.session
	if m.session.User != nil {
		userCopy := *m.session.User
		sessionCopy.User = &userCopy
	}
	return sessionCopy
}

// IsLoggedIn reports whether a session is active.
func (m *Manager) IsLoggedIn() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.IsLoggedIn()
}

// Token returns the current bearer token, or "" when logged out. Its
// signature matches apiclient.TokenSource for direct wiring.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Token
}

// User returns a copy of the current user, or nil when logged out.
func (m *Manager) User() *apiclient.User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.session.User == nil {
		return nil
	}
	userCopy := *m.session.User
	return &userCopy
}

func (m *Manager) authAPI() AuthAPI {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.api
}

// apply installs a fresh token+user pair and mirrors it to the store.
func (m *Manager) apply(ctx context.Context, token string, user apiclient.User) {
	m.mu.Lock()
	userCopy := user
	m.session = Session{Token: token, User: &userCopy}
	m.mu.Unlock()

	m.persist(ctx, token, user)
}

// persist mirrors the session to the credential store. Store failures are
// logged, not returned: memory stays authoritative and the mirror catches
// up on the next successful write.
func (m *Manager) persist(ctx context.Context, token string, user apiclient.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		m.log.ErrorContext(ctx, "failed to serialize user for persistence", slog.Any("error", err))
		return
	}

	if err := m.store.Save(ctx, credstore.Credentials{Token: token, User: raw}); err != nil {
		m.log.ErrorContext(ctx, "failed to persist credentials", slog.Any("error", err))
	}
}
