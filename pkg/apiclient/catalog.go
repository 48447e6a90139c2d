package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Categories lists product categories, optionally filtered by parent.
func (c *Client) Categories(ctx context.Context, parentID *int64) ([]Category, error) {
	query := url.Values{}
	if parentID != nil {
		query.Set("parent_id", strconv.FormatInt(*parentID, 10))
	}

	var categories []Category
	if err := c.do(ctx, http.MethodGet, "/api/products/categories", query, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Products lists catalog items matching the query.
func (c *Client) Products(ctx context.Context, q ProductQuery) ([]Product, error) {
	query := url.Values{}
	if q.CategoryID != nil {
		query.Set("category_id", strconv.FormatInt(*q.CategoryID, 10))
	}
	if q.Keyword != "" {
		query.Set("keyword", q.Keyword)
	}
	if q.Brand != "" {
		query.Set("brand", q.Brand)
	}
	if q.MinPrice != nil {
		query.Set("min_price", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		query.Set("max_price", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	if q.SortBy != "" {
		query.Set("sort_by", q.SortBy)
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(q.PageSize))
	}

	var products []Product
	if err := c.do(ctx, http.MethodGet, "/api/products/products", query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches a single catalog item by ID.
func (c *Client) Product(ctx context.Context, id int64) (Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, "/api/products/products/"+strconv.FormatInt(id, 10), nil, nil, &product); err != nil {
		return Product{}, err
	}
	return product, nil
}

// HotProducts lists trending items. limit <= 0 falls back to the server
// default of 10.
func (c *Client) HotProducts(ctx context.Context, limit int) ([]Product, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var products []Product
	if err := c.do(ctx, http.MethodGet, "/api/products/hot", query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// NewProducts lists recently added items.
func (c *Client) NewProducts(ctx context.Context, limit int) ([]Product, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var products []Product
	if err := c.do(ctx, http.MethodGet, "/api/products/new", query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ToggleFavorite flips the favorite flag on a product and reports the new
// state.
func (c *Client) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	var resp struct {
		Message    string `json:"message"`
		IsFavorite bool   `json:"is_favorite"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/products/products/"+strconv.FormatInt(id, 10)+"/favorite", nil, nil, &resp); err != nil {
		return false, err
	}
	return resp.IsFavorite, nil
}
