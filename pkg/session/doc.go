// Package session owns the single authoritative in-memory answer to "who
// is logged in" for a storefront client, reconciled with a durable
// credential store so the session survives process restarts.
//
// The Manager holds the token and user profile in memory and mirrors every
// successful mutation to a credstore.Store before returning. The mirror is
// a convenience copy, never the source of truth while the process is alive:
// Init reads it once to restore a previous session, and a mirror that fails
// to parse simply means "logged out", never an error.
//
// # Usage
//
//	manager := session.New(client,
//	    session.WithStore(credstore.NewFileStore(path)),
//	)
//	_ = manager.Init(ctx) // restore a persisted session, if any
//
//	resp, err := manager.Login(ctx, phone, password)
//	if err != nil {
//	    // remote failure; the session is untouched
//	}
//
// Wire Manager.Token as the API client's token source so authenticated
// calls pick up the bearer token automatically:
//
//	client := apiclient.New(cfg, apiclient.WithTokenSource(manager.Token))
//
// # Concurrency
//
// The Manager is safe for concurrent use. Racing Login/Register/UpdateUser
// calls resolve last-writer-wins in completion order, the natural
// semantics for a client holding exactly one session.
package session
