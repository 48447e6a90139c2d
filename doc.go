// Package shopkit wires the storefront client core (API client, session
// manager, cart manager and navigation guard) into a single Storefront
// value with explicit ownership: state lives in the managers you hold, not
// in package globals.
//
//	var cfg shopkit.Config
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
//	store, err := shopkit.New(cfg)
//	if err != nil {
//	    // handle error
//	}
//
//	_ = store.Session.Init(ctx)
//	decision := store.Guard.Resolve(ctx, "/cart")
//
// The API client's token source is wired to the session manager, so every
// call after a successful login carries the bearer token automatically.
package shopkit
