package navguard

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
)

// SessionState is the slice of the session manager the guard consults.
// Init must only read the local credential store, never the network.
type SessionState interface {
	IsLoggedIn() bool
	Init(ctx context.Context) error
}

// Redirect instructs the caller to navigate elsewhere instead of the
// requested target.
type Redirect struct {
	Name  string
	Path  string
	Query url.Values
}

// Decision is the outcome of one transition attempt.
type Decision struct {
	// Route is the matched route descriptor (zero for unknown paths).
	Route Route
	// Allowed reports whether the transition may proceed.
	Allowed bool
	// Redirect is set when the transition must go elsewhere.
	Redirect *Redirect
	// Title is the formatted page title, "" when the route declares none.
	Title string
}

// TitleFunc receives the formatted page title as a side effect of every
// transition whose route declares one.
type TitleFunc func(title string)

// Option is a functional option for configuring the Guard.
type Option func(*Guard)

// WithLoginRoute overrides the route unauthenticated transitions are
// redirected to. Defaults to name "Login", path "/login".
func WithLoginRoute(name, path string) Option {
	return func(g *Guard) {
		if name != "" {
			g.loginName = name
		}
		if path != "" {
			g.loginPath = path
		}
	}
}

// WithFallback redirects unknown paths to the given route instead of
// allowing them through (the storefront sends strays to home).
func WithFallback(name, path string) Option {
	return func(g *Guard) {
		g.fallbackName = name
		g.fallbackPath = path
	}
}

// WithTitleSuffix appends " - suffix" to every applied title, mirroring a
// site-wide title template.
func WithTitleSuffix(suffix string) Option {
	return func(g *Guard) {
		g.titleSuffix = suffix
	}
}

// WithTitleFunc registers the side-effect hook receiving formatted titles.
func WithTitleFunc(fn TitleFunc) Option {
	return func(g *Guard) {
		g.titleFn = fn
	}
}

// WithLogger sets the logger used to report ignored restore failures.
func WithLogger(log *slog.Logger) Option {
	return func(g *Guard) {
		if log != nil {
			g.log = log
		}
	}
}

// Guard decides route transitions. It holds no mutable state of its own;
// construct it once and call Resolve per navigation attempt.
type Guard struct {
	session      SessionState
	routes       map[string]Route
	patterns     []Route
	loginName    string
	loginPath    string
	fallbackName string
	fallbackPath string
	titleSuffix  string
	titleFn      TitleFunc
	log          *slog.Logger
}

// New creates a guard over the given session state and route table.
func New(session SessionState, routes []Route, opts ...Option) *Guard {
	g := &Guard{
		session:   session,
		routes:    make(map[string]Route, len(routes)),
		loginName: "Login",
		loginPath: "/login",
		log:       slog.New(slog.DiscardHandler),
	}

	for _, route := range routes {
		if strings.Contains(route.Path, ":") {
			g.patterns = append(g.patterns, route)
			continue
		}
		g.routes[route.Path] = route
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Resolve decides one transition attempt. The session is lazily restored
// from the credential store when not logged in; the title side effect fires
// regardless of the auth outcome.
func (g *Guard) Resolve(ctx context.Context, path string) Decision {
	// Lazy restore. Init only touches the local store; an unreadable store
	// simply leaves the session logged out.
	if !g.session.IsLoggedIn() {
		if err := g.session.Init(ctx); err != nil {
			g.log.DebugContext(ctx, "session restore skipped", slog.Any("error", err))
		}
	}

	route, known := g.match(path)
	if !known {
		if g.fallbackPath != "" {
			return Decision{Redirect: &Redirect{Name: g.fallbackName, Path: g.fallbackPath}}
		}
		return Decision{Allowed: true}
	}

	decision := Decision{Route: route, Title: g.applyTitle(route)}

	if route.RequiresAuth && !g.session.IsLoggedIn() {
		decision.Redirect = &Redirect{
			Name:  g.loginName,
			Path:  g.loginPath,
			Query: url.Values{"redirect": {path}},
		}
		return decision
	}

	decision.Allowed = true
	return decision
}

// match finds the route for path. Exact entries win over parameterized
// ones; parameterized routes are tried in table order.
func (g *Guard) match(path string) (Route, bool) {
	if route, ok := g.routes[path]; ok {
		return route, true
	}
	for _, route := range g.patterns {
		if matchPath(route.Path, path) {
			return route, true
		}
	}
	return Route{}, false
}

func (g *Guard) applyTitle(route Route) string {
	if route.Title == "" {
		return ""
	}

	title := route.Title
	if g.titleSuffix != "" {
		title += " - " + g.titleSuffix
	}
	if g.titleFn != nil {
		g.titleFn(title)
	}
	return title
}
