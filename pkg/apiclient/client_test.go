package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/shopkit/pkg/apiclient"
)

// fakeBackend is a minimal storefront API for transport-level tests.
func fakeBackend(t *testing.T) (*httptest.Server, *chi.Mux) {
	t.Helper()
	r := chi.NewRouter()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, r
}

func newClient(srv *httptest.Server, opts ...apiclient.Option) *apiclient.Client {
	return apiclient.New(apiclient.Config{BaseURL: srv.URL}, opts...)
}

func TestClient_Login(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	srv, r := fakeBackend(t)
	r.Post("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Phone    string `json:"phone"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "13800138000", body.Phone)
		assert.Equal(t, "secret", body.Password)
		assert.NotEmpty(t, req.Header.Get("X-Request-ID"))
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

		json.NewEncoder(w).Encode(apiclient.AuthResponse{
			AccessToken: "tok-abc",
			User:        apiclient.User{ID: 1, Phone: body.Phone, Level: "bronze"},
		})
	})

	client := newClient(srv)
	resp, err := client.Login(ctx, "13800138000", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", resp.AccessToken)
	assert.Equal(t, int64(1), resp.User.ID)
}

func TestClient_Register_OmitsEmptyUsername(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	srv, r := fakeBackend(t)
	r.Post("/api/auth/register", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		_, hasUsername := body["username"]
		assert.False(t, hasUsername)

		json.NewEncoder(w).Encode(apiclient.AuthResponse{AccessToken: "tok"})
	})

	client := newClient(srv)
	_, err := client.Register(ctx, "13800138000", "secret", "")
	require.NoError(t, err)
}

func TestClient_BearerToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	srv, r := fakeBackend(t)
	r.Get("/api/auth/me", func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get("Authorization") != "Bearer tok-xyz" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Not authenticated"})
			return
		}
		json.NewEncoder(w).Encode(apiclient.User{ID: 7, Phone: "13800138000"})
	})

	t.Run("token source attaches the header", func(t *testing.T) {
		t.Parallel()
		client := newClient(srv, apiclient.WithTokenSource(func() string { return "tok-xyz" }))

		user, err := client.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
	})

	t.Run("empty token sends no header and maps 401", func(t *testing.T) {
		t.Parallel()
		client := newClient(srv, apiclient.WithTokenSource(func() string { return "" }))

		_, err := client.CurrentUser(ctx)
		assert.ErrorIs(t, err, apiclient.ErrUnauthorized)

		var apiErr *apiclient.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Equal(t, "Not authenticated", apiErr.Message)
	})
}

func TestClient_CartEndpoints(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	srv, r := fakeBackend(t)
	r.Get("/api/cart/", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode([]apiclient.CartItem{
			{ID: 7, ProductID: 42, Quantity: 2, Product: apiclient.Product{ID: 42, Price: 10}},
		})
	})
	r.Post("/api/cart/", func(w http.ResponseWriter, req *http.Request) {
		var body apiclient.AddToCartRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		json.NewEncoder(w).Encode(apiclient.CartItem{
			ID: 7, ProductID: body.ProductID, Quantity: body.Quantity, Specs: body.Specs,
		})
	})
	r.Put("/api/cart/{id}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "7", chi.URLParam(req, "id"))
		assert.Equal(t, "5", req.URL.Query().Get("quantity"))
		json.NewEncoder(w).Encode(map[string]string{"message": "updated"})
	})
	r.Delete("/api/cart/{id}", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "id") == "404" {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Cart item not found"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "removed"})
	})
	r.Delete("/api/cart/", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "cleared"})
	})

	client := newClient(srv)

	t.Run("get cart", func(t *testing.T) {
		t.Parallel()
		items, err := client.Cart(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(7), items[0].ID)
	})

	t.Run("add to cart echoes specs", func(t *testing.T) {
		t.Parallel()
		item, err := client.AddToCart(ctx, apiclient.AddToCartRequest{
			ProductID: 42, Quantity: 2, Specs: map[string]any{"color": "red"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(42), item.ProductID)
		assert.Equal(t, map[string]any{"color": "red"}, item.Specs)
	})

	t.Run("update quantity travels as query param", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, client.UpdateCartItem(ctx, 7, 5))
	})

	t.Run("remove maps 404", func(t *testing.T) {
		t.Parallel()
		err := client.RemoveCartItem(ctx, 404)
		assert.ErrorIs(t, err, apiclient.ErrNotFound)
	})

	t.Run("clear cart", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, client.ClearCart(ctx))
	})
}

func TestClient_Catalog(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	srv, r := fakeBackend(t)
	r.Get("/api/products/products", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "phone", req.URL.Query().Get("keyword"))
		assert.Equal(t, "2", req.URL.Query().Get("page"))
		json.NewEncoder(w).Encode([]apiclient.Product{{ID: 1, Name: "phone", Price: 999}})
	})
	r.Get("/api/products/products/{id}", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(apiclient.Product{ID: 1, Name: "phone"})
	})

	client := newClient(srv)

	products, err := client.Products(ctx, apiclient.ProductQuery{Keyword: "phone", Page: 2})
	require.NoError(t, err)
	require.Len(t, products, 1)

	product, err := client.Product(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "phone", product.Name)
}

func TestClient_ErrorMapping(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	srv, r := fakeBackend(t)
	r.Get("/api/auth/me", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "boom"})
	})

	client := newClient(srv)
	_, err := client.CurrentUser(ctx)
	assert.ErrorIs(t, err, apiclient.ErrRequestFailed)
	assert.NotErrorIs(t, err, apiclient.ErrUnauthorized)

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "boom", apiErr.Message)
}

func TestClient_DecodeFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	srv, r := fakeBackend(t)
	r.Get("/api/auth/me", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("not json"))
	})

	client := newClient(srv)
	_, err := client.CurrentUser(ctx)
	assert.ErrorIs(t, err, apiclient.ErrDecodeResponse)
}
