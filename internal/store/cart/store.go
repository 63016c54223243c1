package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

// Store holds the line items a user intends to purchase. Items keep
// insertion order and there is at most one line per product id. The cart
// is session-scoped: it is never persisted.
//
// All operations are atomic with respect to each other; concurrent
// handlers never observe a half-applied mutation.
type Store struct {
	mu    sync.RWMutex
	items []domain.CartItem
}

func New() *Store {
	return &Store{}
}

// Add ensures the product is present in the cart. A new line starts with
// quantity 1 and selected. Adding a product that is already in the cart
// is a no-op: it does not increment the quantity and does not reorder
// the line. Quantity changes go through UpdateQuantity only.
func (s *Store) Add(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(p.ID) >= 0 {
		return
	}
	s.items = append(s.items, domain.CartItem{Product: p, Quantity: 1, Selected: true})
}

// Remove deletes the line with the given product id. Missing ids are
// silently ignored.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(id)
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less
// removes the line entirely; a cart never retains a line at quantity
// zero. There is no upper bound. Missing ids are ignored.
func (s *Store) UpdateQuantity(id, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.remove(id)
		return
	}
	if i := s.indexOf(id); i >= 0 {
		s.items[i].Quantity = quantity
	}
}

// ToggleSelect flips the line's selection flag. Missing ids are ignored.
func (s *Store) ToggleSelect(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		s.items[i].Selected = !s.items[i].Selected
	}
}

// SelectedTotal sums price*quantity over the selected lines. The sum is
// kept in full decimal precision; rounding is left to presentation.
func (s *Store) SelectedTotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, item := range s.items {
		if !item.Selected {
			continue
		}
		price := decimal.NewFromFloat(item.Product.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Items returns a snapshot of the lines in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) indexOf(id int) int {
	for i, item := range s.items {
		if item.Product.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) remove(id int) {
	if i := s.indexOf(id); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
}
