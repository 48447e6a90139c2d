package apiclient

import (
	"context"
	"net/http"
	"strconv"
)

// Addresses lists the user's saved delivery addresses.
func (c *Client) Addresses(ctx context.Context) ([]Address, error) {
	var addresses []Address
	if err := c.do(ctx, http.MethodGet, "/api/users/addresses", nil, nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// AddAddress saves a new delivery address and returns it with its assigned ID.
func (c *Client) AddAddress(ctx context.Context, addr Address) (Address, error) {
	var created Address
	if err := c.do(ctx, http.MethodPost, "/api/users/addresses", nil, addr, &created); err != nil {
		return Address{}, err
	}
	return created, nil
}

// UpdateAddress replaces an existing address.
func (c *Client) UpdateAddress(ctx context.Context, id int64, addr Address) (Address, error) {
	var updated Address
	if err := c.do(ctx, http.MethodPut, "/api/users/addresses/"+strconv.FormatInt(id, 10), nil, addr, &updated); err != nil {
		return Address{}, err
	}
	return updated, nil
}

// DeleteAddress removes an address from the address book.
func (c *Client) DeleteAddress(ctx context.Context, id int64) error {
	var resp messageResponse
	return c.do(ctx, http.MethodDelete, "/api/users/addresses/"+strconv.FormatInt(id, 10), nil, nil, &resp)
}

// Stats returns the account counters shown on the user center page.
func (c *Client) Stats(ctx context.Context) (UserStats, error) {
	var stats UserStats
	if err := c.do(ctx, http.MethodGet, "/api/users/stats", nil, nil, &stats); err != nil {
		return UserStats{}, err
	}
	return stats, nil
}
