package shopkit

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/shopkit/pkg/apiclient"
	"github.com/dmitrymomot/shopkit/pkg/cart"
	"github.com/dmitrymomot/shopkit/pkg/credstore"
	"github.com/dmitrymomot/shopkit/pkg/navguard"
	"github.com/dmitrymomot/shopkit/pkg/session"
)

// Storefront bundles the client core. Each component is independently
// usable; the bundle only wires them together.
type Storefront struct {
	Client  *apiclient.Client
	Session *session.Manager
	Cart    *cart.Manager
	Guard   *navguard.Guard
}

// Option is a functional option for configuring the Storefront.
type Option func(*builder)

type builder struct {
	log        *slog.Logger
	store      credstore.Store
	routes     []navguard.Route
	httpClient *http.Client
	titleFn    navguard.TitleFunc
}

// WithLogger sets the logger shared by all components.
func WithLogger(log *slog.Logger) Option {
	return func(b *builder) {
		if log != nil {
			b.log = log
		}
	}
}

// WithCredentialStore overrides the credential store (e.g. a
// credstore.RedisStore for shared sessions) instead of the file store
// derived from Config.CredentialsFile.
func WithCredentialStore(store credstore.Store) Option {
	return func(b *builder) {
		if store != nil {
			b.store = store
		}
	}
}

// WithRoutes overrides the route table instead of Config.RoutesFile or
// DefaultRoutes.
func WithRoutes(routes []navguard.Route) Option {
	return func(b *builder) {
		if len(routes) > 0 {
			b.routes = routes
		}
	}
}

// WithHTTPClient sets a custom HTTP client for the API client.
func WithHTTPClient(client *http.Client) Option {
	return func(b *builder) {
		b.httpClient = client
	}
}

// WithTitleFunc registers the page-title side effect hook.
func WithTitleFunc(fn navguard.TitleFunc) Option {
	return func(b *builder) {
		b.titleFn = fn
	}
}

// New builds a fully wired Storefront from the configuration.
func New(cfg Config, opts ...Option) (*Storefront, error) {
	b := &builder{
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.store == nil {
		if cfg.CredentialsFile == "" {
			b.store = credstore.NewMemoryStore()
		} else {
			b.store = credstore.NewFileStore(expandHome(cfg.CredentialsFile))
		}
	}

	if b.routes == nil {
		if cfg.RoutesFile != "" {
			routes, err := navguard.LoadRoutesFile(cfg.RoutesFile)
			if err != nil {
				return nil, err
			}
			b.routes = routes
		} else {
			b.routes = DefaultRoutes()
		}
	}

	sessionMgr := session.New(nil,
		session.WithStore(b.store),
		session.WithLogger(b.log),
	)

	clientOpts := []apiclient.Option{
		apiclient.WithTokenSource(sessionMgr.Token),
		apiclient.WithLogger(b.log),
	}
	if b.httpClient != nil {
		clientOpts = append(clientOpts, apiclient.WithHTTPClient(b.httpClient))
	}
	client := apiclient.New(cfg.API, clientOpts...)

	sessionMgr.SetAPI(client)

	guardOpts := []navguard.Option{
		navguard.WithFallback("Home", "/home"),
		navguard.WithLogger(b.log),
	}
	if cfg.SiteName != "" {
		guardOpts = append(guardOpts, navguard.WithTitleSuffix(cfg.SiteName))
	}
	if b.titleFn != nil {
		guardOpts = append(guardOpts, navguard.WithTitleFunc(b.titleFn))
	}

	return &Storefront{
		Client:  client,
		Session: sessionMgr,
		Cart:    cart.New(client, cart.WithLogger(b.log)),
		Guard:   navguard.New(sessionMgr, b.routes, guardOpts...),
	}, nil
}
