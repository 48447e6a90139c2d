package cart

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/shopkit/pkg/apiclient"
)

// API is the slice of the remote boundary the cart manager consumes.
// *apiclient.Client satisfies it.
type API interface {
	Cart(ctx context.Context) ([]apiclient.CartItem, error)
	AddToCart(ctx context.Context, req apiclient.AddToCartRequest) (apiclient.CartItem, error)
	UpdateCartItem(ctx context.Context, id int64, quantity int) error
	RemoveCartItem(ctx context.Context, id int64) error
	ClearCart(ctx context.Context) error
}

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithLogger sets the logger used to report remote-call failures.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// Manager owns the in-memory cart list.
type Manager struct {
	mu      sync.RWMutex
	api     API
	log     *slog.Logger
	items   []apiclient.CartItem
	loading bool
}

// New creates a cart manager over the given cart API.
func New(api API, opts ...Option) *Manager {
	m := &Manager{
		api: api,
		log: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Fetch replaces the in-memory list with the server's current cart. The
// loading flag is set for the duration of the call, including on failure.
// A failed fetch leaves the previous list intact.
func (m *Manager) Fetch(ctx context.Context) error {
	m.setLoading(true)
	defer m.setLoading(false)

	items, err := m.api.Cart(ctx)
	if err != nil {
		m.log.ErrorContext(ctx, "failed to fetch cart", slog.Any("error", err))
		return err
	}

	m.mu.Lock()
	m.items = items
	m.mu.Unlock()
	return nil
}

// Add sends an add-to-cart request and reconciles the server's response
// into the list: if a line with the returned id already exists it is
// replaced with the server's version (the server may have merged
// quantities), otherwise the line is appended. specs is passed through
// opaquely. On failure no local mutation occurs.
func (m *Manager) Add(ctx context.Context, productID int64, quantity int, specs map[string]any) (apiclient.CartItem, error) {
	if quantity < 1 {
		return apiclient.CartItem{}, ErrInvalidQuantity
	}

	item, err := m.api.AddToCart(ctx, apiclient.AddToCartRequest{
		ProductID: productID,
		Quantity:  quantity,
		Specs:     specs,
	})
	if err != nil {
		m.log.ErrorContext(ctx, "failed to add to cart",
			slog.Int64("product_id", productID), slog.Any("error", err))
		return apiclient.CartItem{}, err
	}

	m.mu.Lock()
	idx := slices.IndexFunc(m.items, func(existing apiclient.CartItem) bool {
		return existing.ID == item.ID
	})
	if idx >= 0 {
		m.items[idx] = item
	} else {
		m.items = append(m.items, item)
	}
	m.mu.Unlock()

	return item, nil
}

// UpdateQuantity persists the new quantity on the server, then patches the
// matching local line. A locally absent id is a silent no-op; it means the
// local view is stale, not corrupt. On failure no local mutation occurs.
func (m *Manager) UpdateQuantity(ctx context.Context, itemID int64, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	if err := m.api.UpdateCartItem(ctx, itemID, quantity); err != nil {
		m.log.ErrorContext(ctx, "failed to update cart quantity",
			slog.Int64("item_id", itemID), slog.Any("error", err))
		return err
	}

	m.mu.Lock()
	idx := slices.IndexFunc(m.items, func(existing apiclient.CartItem) bool {
		return existing.ID == itemID
	})
	if idx >= 0 {
		m.items[idx].Quantity = quantity
	} else {
		m.log.DebugContext(ctx, "updated cart line not present locally", slog.Int64("item_id", itemID))
	}
	m.mu.Unlock()

	return nil
}

// Remove deletes a line on the server, then filters it out locally.
func (m *Manager) Remove(ctx context.Context, itemID int64) error {
	if err := m.api.RemoveCartItem(ctx, itemID); err != nil {
		m.log.ErrorContext(ctx, "failed to remove cart item",
			slog.Int64("item_id", itemID), slog.Any("error", err))
		return err
	}

	m.mu.Lock()
	m.items = slices.DeleteFunc(m.items, func(existing apiclient.CartItem) bool {
		return existing.ID == itemID
	})
	m.mu.Unlock()

	return nil
}

// Clear empties the cart on the server, then resets the local list.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.api.ClearCart(ctx); err != nil {
		m.log.ErrorContext(ctx, "failed to clear cart", slog.Any("error", err))
		return err
	}

	m.mu.Lock()
	m.items = nil
	m.mu.Unlock()

	return nil
}

// Items returns a copy of the current list in server order.
func (m *Manager) Items() []apiclient.CartItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.items)
}

// Len returns the number of lines (not the summed quantity).
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Loading reports whether a Fetch is in flight. UI affordances key off
// this; it never blocks calls.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// TotalQuantity sums the quantities over the current list.
func (m *Manager) TotalQuantity() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, item := range m.items {
		total += item.Quantity
	}
	return total
}

// TotalAmount sums price*quantity over the current list.
func (m *Manager) TotalAmount() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0.0
	for _, item := range m.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}
