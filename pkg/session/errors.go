package session

import "errors"

var (
	// ErrNotLoggedIn indicates an operation that requires an active session
	ErrNotLoggedIn = errors.New("session.not_logged_in")
)
