package apiclient

import (
	"log/slog"
	"net/http"
)

// TokenSource yields the current bearer token, or "" when no user is logged
// in. Wiring it to the session manager keeps the client stateless.
type TokenSource func() string

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (custom transports, proxies,
// testing). Nil clients are ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTokenSource sets the function supplying the Authorization bearer token.
func WithTokenSource(fn TokenSource) Option {
	return func(c *Client) {
		if fn != nil {
			c.tokenSource = fn
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets the logger used for request-level debug logging.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}
