package shopkit_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/shopkit"
	"github.com/dmitrymomot/shopkit/pkg/apiclient"
)

// storefrontBackend fakes the slice of the storefront API the bundle
// touches: auth plus a single-user cart.
func storefrontBackend(t *testing.T) *httptest.Server {
	t.Helper()

	var (
		nextID int64 = 1
		items  []apiclient.CartItem
	)

	authed := func(w http.ResponseWriter, req *http.Request) bool {
		if req.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Not authenticated"})
			return false
		}
		return true
	}

	r := chi.NewRouter()
	r.Post("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(apiclient.AuthResponse{
			AccessToken: "tok-1",
			User:        apiclient.User{ID: 1, Phone: "13800138000", Username: "alice"},
		})
	})
	r.Get("/api/cart/", func(w http.ResponseWriter, req *http.Request) {
		if !authed(w, req) {
			return
		}
		json.NewEncoder(w).Encode(items)
	})
	r.Post("/api/cart/", func(w http.ResponseWriter, req *http.Request) {
		if !authed(w, req) {
			return
		}
		var body apiclient.AddToCartRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		item := apiclient.CartItem{
			ID:        nextID,
			ProductID: body.ProductID,
			Quantity:  body.Quantity,
			Product:   apiclient.Product{ID: body.ProductID, Price: 25},
		}
		nextID++
		items = append(items, item)
		json.NewEncoder(w).Encode(item)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestStorefront_LoginCartReload(t *testing.T) {
	ctx := context.Background()
	srv := storefrontBackend(t)
	credsFile := filepath.Join(t.TempDir(), "credentials.json")

	cfg := shopkit.Config{
		API:             apiclient.Config{BaseURL: srv.URL},
		CredentialsFile: credsFile,
		SiteName:        "Shopping Center",
	}

	var lastTitle string
	sf, err := shopkit.New(cfg, shopkit.WithTitleFunc(func(title string) {
		lastTitle = title
	}))
	require.NoError(t, err)

	// Logged out: the cart page bounces to login, remembering the target.
	decision := sf.Guard.Resolve(ctx, "/cart")
	assert.False(t, decision.Allowed)
	require.NotNil(t, decision.Redirect)
	assert.Equal(t, "Login", decision.Redirect.Name)
	assert.Equal(t, "/cart", decision.Redirect.Query.Get("redirect"))
	assert.Equal(t, "Cart - Shopping Center", lastTitle)

	// Login flows the token into subsequent API calls.
	auth, err := sf.Session.Login(ctx, "13800138000", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", auth.AccessToken)
	assert.True(t, sf.Session.IsLoggedIn())

	decision = sf.Guard.Resolve(ctx, "/cart")
	assert.True(t, decision.Allowed)
	assert.Nil(t, decision.Redirect)

	item, err := sf.Cart.Add(ctx, 42, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), item.ProductID)
	assert.Equal(t, 2, sf.Cart.TotalQuantity())
	assert.InDelta(t, 50, sf.Cart.TotalAmount(), 0.001)

	// A fresh bundle over the same credentials file restores the session
	// without a network round trip, like an app relaunch.
	sf2, err := shopkit.New(cfg)
	require.NoError(t, err)
	assert.False(t, sf2.Session.IsLoggedIn())

	decision = sf2.Guard.Resolve(ctx, "/cart")
	assert.True(t, decision.Allowed)
	assert.True(t, sf2.Session.IsLoggedIn())
	assert.Equal(t, "tok-1", sf2.Session.Token())

	require.NoError(t, sf2.Cart.Fetch(ctx))
	assert.Equal(t, 1, sf2.Cart.Len())

	// Logout erases the persisted snapshot; a third bundle starts clean.
	sf2.Session.Logout(ctx)

	sf3, err := shopkit.New(cfg)
	require.NoError(t, err)
	decision = sf3.Guard.Resolve(ctx, "/cart")
	assert.False(t, decision.Allowed)
	require.NotNil(t, decision.Redirect)
	assert.Equal(t, "/login", decision.Redirect.Path)
}

func TestStorefront_UnknownPathFallsBackHome(t *testing.T) {
	ctx := context.Background()
	srv := storefrontBackend(t)

	sf, err := shopkit.New(shopkit.Config{API: apiclient.Config{BaseURL: srv.URL}})
	require.NoError(t, err)

	decision := sf.Guard.Resolve(ctx, "/no-such-page")
	assert.False(t, decision.Allowed)
	require.NotNil(t, decision.Redirect)
	assert.Equal(t, "Home", decision.Redirect.Name)
	assert.Equal(t, "/home", decision.Redirect.Path)

	// Product detail is parameterized in the default table; a concrete id
	// must resolve to it, not fall through to the home redirect.
	decision = sf.Guard.Resolve(ctx, "/products/42")
	assert.True(t, decision.Allowed)
	assert.Nil(t, decision.Redirect)
	assert.Equal(t, "ProductDetail", decision.Route.Name)
	assert.Equal(t, "Product Detail", decision.Title)
}

func TestDefaultRoutes(t *testing.T) {
	t.Parallel()

	byPath := make(map[string]bool)
	for _, route := range shopkit.DefaultRoutes() {
		byPath[route.Path] = route.RequiresAuth
	}

	assert.False(t, byPath["/home"])
	assert.False(t, byPath["/login"])
	assert.True(t, byPath["/cart"])
	assert.True(t, byPath["/orders"])
	assert.True(t, byPath["/user"])
}
