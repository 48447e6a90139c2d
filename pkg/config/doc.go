// Package config loads configuration structs from environment variables
// using `env`/`envDefault` struct tags, with one-shot .env file support for
// local development.
//
//	type Config struct {
//	    BaseURL string        `env:"STOREFRONT_API_URL,required"`
//	    Timeout time.Duration `env:"STOREFRONT_API_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
package config
