package session

import "github.com/dmitrymomot/shopkit/pkg/apiclient"

// Session is the in-memory auth state: a bearer token and the profile it
// belongs to. The zero value means "logged out".
type Session struct {
	Token string
	User  *apiclient.User
}

// IsLoggedIn reports whether the session holds both a token and a user.
// One without the other never counts as logged in.
func (s Session) IsLoggedIn() bool {
	return s.Token != "" && s.User != nil
}
