// Package navguard gates route transitions on authentication. It is a pure
// decision layer: given a route table and the current navigation target it
// produces either an allow or a redirect to the login route, carrying the
// originally requested path in a "redirect" query parameter so the
// post-login flow can return there.
//
// The guard lazily restores a persisted session before deciding. Init on
// the session only reads the local credential store; the guard itself never
// performs network calls.
//
//	routes, _ := navguard.LoadRoutesFile("routes.yaml")
//	guard := navguard.New(sessionManager, routes,
//	    navguard.WithTitleSuffix("Shopping Center"),
//	)
//
//	decision := guard.Resolve(ctx, "/cart")
//	if decision.Redirect != nil {
//	    // navigate to decision.Redirect instead
//	}
//
// Independent of the auth outcome, a route that declares a title produces a
// title side effect (Decision.Title plus the optional WithTitleFunc hook).
package navguard
