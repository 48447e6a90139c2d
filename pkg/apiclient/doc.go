// Package apiclient provides a typed HTTP client for the storefront REST
// API: authentication, catalog, cart, orders and user profile endpoints.
//
// The client is transport-only: it serializes requests, injects the bearer
// token and a request ID, and maps error responses to typed errors. All
// state handling (session, cart reconciliation) lives in the session and
// cart packages, which consume this client through narrow interfaces.
//
// # Usage
//
//	client := apiclient.New(apiclient.Config{BaseURL: "https://shop.example.com"},
//	    apiclient.WithTokenSource(sessionManager.Token),
//	)
//
//	resp, err := client.Login(ctx, "13800138000", "secret")
//	if err != nil {
//	    // handle error
//	}
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError wrapping a sentinel:
//
//   - ErrUnauthorized – 401 responses
//   - ErrNotFound     – 404 responses
//   - ErrRequestFailed – any other non-2xx status
//
// Use errors.Is to branch on the sentinel and errors.As to inspect the
// status code and server-provided message.
package apiclient
