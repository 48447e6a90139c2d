package shopkit

import "github.com/dmitrymomot/shopkit/pkg/navguard"

// DefaultRoutes is the storefront's built-in route table. Cart, orders and
// the user center require an authenticated session.
func DefaultRoutes() []navguard.Route {
	return []navguard.Route{
		{Path: "/home", Name: "Home", Title: "Home"},
		{Path: "/products", Name: "ProductList", Title: "Products"},
		{Path: "/products/:id", Name: "ProductDetail", Title: "Product Detail"},
		{Path: "/cart", Name: "Cart", Title: "Cart", RequiresAuth: true},
		{Path: "/orders", Name: "OrderList", Title: "My Orders", RequiresAuth: true},
		{Path: "/orders/confirm", Name: "OrderConfirm", Title: "Confirm Order", RequiresAuth: true},
		{Path: "/user", Name: "UserCenter", Title: "User Center", RequiresAuth: true},
		{Path: "/login", Name: "Login", Title: "Login"},
		{Path: "/register", Name: "Register", Title: "Register"},
	}
}
