package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Cart returns the server's current cart lines for the authenticated user.
func (c *Client) Cart(ctx context.Context) ([]CartItem, error) {
	var items []CartItem
	if err := c.do(ctx, http.MethodGet, "/api/cart/", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart adds a product to the cart. The returned line is authoritative:
// the server decides whether the addition merged into an existing line or
// created a new one.
func (c *Client) AddToCart(ctx context.Context, req AddToCartRequest) (CartItem, error) {
	var item CartItem
	if err := c.do(ctx, http.MethodPost, "/api/cart/", nil, req, &item); err != nil {
		return CartItem{}, err
	}
	return item, nil
}

// UpdateCartItem sets the quantity of a cart line. The quantity travels as a
// query parameter, matching the backend contract.
func (c *Client) UpdateCartItem(ctx context.Context, id int64, quantity int) error {
	query := url.Values{"quantity": {strconv.Itoa(quantity)}}
	var resp messageResponse
	return c.do(ctx, http.MethodPut, "/api/cart/"+strconv.FormatInt(id, 10), query, nil, &resp)
}

// RemoveCartItem deletes a single cart line.
func (c *Client) RemoveCartItem(ctx context.Context, id int64) error {
	var resp messageResponse
	return c.do(ctx, http.MethodDelete, "/api/cart/"+strconv.FormatInt(id, 10), nil, nil, &resp)
}

// ClearCart deletes every line in the cart.
func (c *Client) ClearCart(ctx context.Context) error {
	var resp messageResponse
	return c.do(ctx, http.MethodDelete, "/api/cart/", nil, nil, &resp)
}
