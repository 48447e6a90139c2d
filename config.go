package shopkit

import (
	"os"
	"path/filepath"

	"github.com/dmitrymomot/shopkit/pkg/apiclient"
)

// Config is the storefront client configuration. All fields can be
// populated from the environment via the config package.
type Config struct {
	API apiclient.Config

	// CredentialsFile is where the session snapshot is persisted. Empty
	// keeps credentials in memory only (no reload survival). A leading "~/"
	// is expanded against the user's home directory.
	CredentialsFile string `env:"STOREFRONT_CREDENTIALS_FILE" envDefault:"~/.shopkit/credentials.json"`

	// RoutesFile optionally points at a YAML route table; empty uses
	// DefaultRoutes.
	RoutesFile string `env:"STOREFRONT_ROUTES_FILE"`

	// SiteName is appended to page titles ("Cart - SiteName").
	SiteName string `env:"STOREFRONT_SITE_NAME" envDefault:"Shopping Center"`
}

// expandHome resolves a leading "~/" against the current user's home
// directory, leaving the path untouched when home cannot be determined.
func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
