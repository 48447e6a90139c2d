package navguard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidRouteTable indicates a route table that failed to parse
	ErrInvalidRouteTable = errors.New("navguard.invalid_route_table")
)

// Route describes one navigable page: its path, whether it requires an
// authenticated session, and the page title to apply on entry. Path
// segments starting with ":" are parameters and match any single non-empty
// segment ("/products/:id" matches "/products/42").
type Route struct {
	Path         string `yaml:"path" json:"path"`
	Name         string `yaml:"name" json:"name"`
	Title        string `yaml:"title,omitempty" json:"title,omitempty"`
	RequiresAuth bool   `yaml:"requires_auth,omitempty" json:"requires_auth,omitempty"`
}

// LoadRoutes parses a YAML route table:
//
//	routes:
//	  - path: /cart
//	    name: Cart
//	    title: Cart
//	    requires_auth: true
func LoadRoutes(r io.Reader) ([]Route, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrInvalidRouteTable, err)
	}

	var table struct {
		Routes []Route `yaml:"routes"`
	}
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, errors.Join(ErrInvalidRouteTable, err)
	}

	for i, route := range table.Routes {
		if route.Path == "" {
			return nil, fmt.Errorf("%w: route %d has no path", ErrInvalidRouteTable, i)
		}
	}
	return table.Routes, nil
}

// matchPath reports whether path matches the route pattern. Parameter
// segments (":id") match any single non-empty segment; everything else
// must match exactly.
func matchPath(pattern, path string) bool {
	if !strings.Contains(pattern, ":") {
		return pattern == path
	}

	patternSegs := strings.Split(pattern, "/")
	pathSegs := strings.Split(path, "/")
	if len(patternSegs) != len(pathSegs) {
		return false
	}

	for i, seg := range patternSegs {
		if strings.HasPrefix(seg, ":") {
			if pathSegs[i] == "" {
				return false
			}
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}
	return true
}

// LoadRoutesFile reads a YAML route table from disk.
func LoadRoutesFile(path string) ([]Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidRouteTable, err)
	}
	defer f.Close()
	return LoadRoutes(f)
}
