package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

// Login authenticates with phone and password. The response carries the
// access token and the user profile.
func (c *Client) Login(ctx context.Context, phone, password string) (AuthResponse, error) {
	req := struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}{Phone: phone, Password: password}

	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, req, &resp); err != nil {
		return AuthResponse{}, err
	}
	return resp, nil
}

// Register creates a new account. The response format matches Login, so the
// caller can treat a fresh registration as an implicit login. username is
// optional and omitted when empty.
func (c *Client) Register(ctx context.Context, phone, password, username string) (AuthResponse, error) {
	req := struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
		Username string `json:"username,omitempty"`
	}{Phone: phone, Password: password, Username: username}

	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, req, &resp); err != nil {
		return AuthResponse{}, err
	}
	return resp, nil
}

// CurrentUser fetches the profile behind the current bearer token.
func (c *Client) CurrentUser(ctx context.Context) (User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// SendCode requests a verification code for the given phone number.
func (c *Client) SendCode(ctx context.Context, phone string) (string, error) {
	query := url.Values{"phone": {phone}}

	var resp struct {
		Code string `json:"code"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/send-code", query, nil, &resp); err != nil {
		return "", err
	}
	return resp.Code, nil
}
