package apiclient

import "time"

// User is the storefront account profile returned by the auth endpoints.
type User struct {
	ID        int64     `json:"id"`
	Phone     string    `json:"phone"`
	Username  string    `json:"username,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Level     string    `json:"level"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by both Login and Register, so a fresh
// registration can be treated as an implicit login.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// Category is a product category node.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

// Product is a catalog item. The cart keeps a snapshot of it per line for
// display and amount derivation.
type Product struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	Price         float64        `json:"price"`
	OriginalPrice float64        `json:"original_price,omitempty"`
	Stock         int            `json:"stock"`
	Sales         int            `json:"sales"`
	Image         string         `json:"image,omitempty"`
	Images        []string       `json:"images,omitempty"`
	CategoryID    *int64         `json:"category_id,omitempty"`
	Brand         string         `json:"brand,omitempty"`
	IsHot         bool           `json:"is_hot"`
	IsNew         bool           `json:"is_new"`
	Specs         map[string]any `json:"specs,omitempty"`
	Detail        string         `json:"detail,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// CartItem is a single server-confirmed cart line. Specs is an opaque
// key-value map echoed back by the server, never inspected client-side.
type CartItem struct {
	ID        int64          `json:"id"`
	ProductID int64          `json:"product_id"`
	Quantity  int            `json:"quantity"`
	Specs     map[string]any `json:"specs,omitempty"`
	Product   Product        `json:"product"`
}

// AddToCartRequest is the payload for POST /api/cart/.
type AddToCartRequest struct {
	ProductID int64          `json:"product_id"`
	Quantity  int            `json:"quantity"`
	Specs     map[string]any `json:"specs,omitempty"`
}

// ProductQuery filters and paginates catalog listings.
type ProductQuery struct {
	CategoryID *int64
	Keyword    string
	Brand      string
	MinPrice   *float64
	MaxPrice   *float64
	SortBy     string
	Page       int
	PageSize   int
}

// Address is a delivery address in the user's address book.
type Address struct {
	ID            int64  `json:"id,omitempty"`
	ReceiverName  string `json:"receiver_name"`
	ReceiverPhone string `json:"receiver_phone"`
	Province      string `json:"province"`
	City          string `json:"city"`
	District      string `json:"district"`
	Detail        string `json:"detail"`
	Tag           string `json:"tag,omitempty"`
	IsDefault     bool   `json:"is_default"`
}

// OrderItem is a purchased line within an order.
type OrderItem struct {
	ID           int64   `json:"id"`
	ProductID    int64   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image,omitempty"`
	ProductSpec  string  `json:"product_spec,omitempty"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	Subtotal     float64 `json:"subtotal"`
}

// Order is a placed order with its lines and amounts.
type Order struct {
	ID             int64       `json:"id"`
	OrderNumber    string      `json:"order_number"`
	TotalAmount    float64     `json:"total_amount"`
	DiscountAmount float64     `json:"discount_amount"`
	FreightAmount  float64     `json:"freight_amount"`
	PayAmount      float64     `json:"pay_amount"`
	Status         string      `json:"status"`
	PaymentMethod  string      `json:"payment_method"`
	Items          []OrderItem `json:"items"`
	CreatedAt      time.Time   `json:"created_at"`
}

// CreateOrderItem is a line in an order creation request.
type CreateOrderItem struct {
	ProductID int64          `json:"product_id"`
	Quantity  int            `json:"quantity"`
	Specs     map[string]any `json:"specs,omitempty"`
}

// CreateOrderRequest is the payload for POST /api/orders/.
type CreateOrderRequest struct {
	AddressID     int64             `json:"address_id"`
	Items         []CreateOrderItem `json:"items"`
	PaymentMethod string            `json:"payment_method"`
	Remark        string            `json:"remark,omitempty"`
}

// OrderQuery filters and paginates order listings.
type OrderQuery struct {
	Status   string
	Page     int
	PageSize int
}

// UserStats aggregates account counters for the user center page.
type UserStats struct {
	TotalOrders     int    `json:"total_orders"`
	PendingOrders   int    `json:"pending_orders"`
	ShippedOrders   int    `json:"shipped_orders"`
	CompletedOrders int    `json:"completed_orders"`
	FavoriteCount   int    `json:"favorite_count"`
	CouponCount     int    `json:"coupon_count"`
	Points          int    `json:"points"`
	Level           string `json:"level"`
}

// messageResponse is the generic {"message": "..."} acknowledgement body.
type messageResponse struct {
	Message string `json:"message"`
}
