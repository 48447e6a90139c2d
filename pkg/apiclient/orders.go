package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CreateOrder places an order from the given items and address.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/api/orders/", nil, req, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}

// Orders lists the user's orders matching the query.
func (c *Client) Orders(ctx context.Context, q OrderQuery) ([]Order, error) {
	query := url.Values{}
	if q.Status != "" {
		query.Set("status", q.Status)
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(q.PageSize))
	}

	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/", query, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order fetches a single order by ID.
func (c *Client) Order(ctx context.Context, id int64) (Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+strconv.FormatInt(id, 10), nil, nil, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}

// CancelOrder cancels a pending order.
func (c *Client) CancelOrder(ctx context.Context, id int64) error {
	var resp messageResponse
	return c.do(ctx, http.MethodPut, "/api/orders/"+strconv.FormatInt(id, 10)+"/cancel", nil, nil, &resp)
}

// PayOrder marks an order as paid.
func (c *Client) PayOrder(ctx context.Context, id int64) error {
	var resp messageResponse
	return c.do(ctx, http.MethodPut, "/api/orders/"+strconv.FormatInt(id, 10)+"/pay", nil, nil, &resp)
}

// ConfirmOrder confirms delivery of a shipped order.
func (c *Client) ConfirmOrder(ctx context.Context, id int64) error {
	var resp messageResponse
	return c.do(ctx, http.MethodPut, "/api/orders/"+strconv.FormatInt(id, 10)+"/confirm", nil, nil, &resp)
}
