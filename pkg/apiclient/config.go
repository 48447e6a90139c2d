package apiclient

import "time"

// Config holds the client configuration. Twelve-factor applications can
// populate it from environment variables via the config package.
type Config struct {
	// BaseURL is the storefront API origin, e.g. "https://shop.example.com"
	BaseURL string `env:"STOREFRONT_API_URL" envDefault:"http://localhost:8000"`

	// Timeout is the per-request timeout applied to the default HTTP client
	Timeout time.Duration `env:"STOREFRONT_API_TIMEOUT" envDefault:"30s"`

	// UserAgent is sent with every request
	UserAgent string `env:"STOREFRONT_API_USER_AGENT" envDefault:"shopkit/1.0"`
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:   "http://localhost:8000",
		Timeout:   30 * time.Second,
		UserAgent: "shopkit/1.0",
	}
}
