package state

import "github.com/atelier-dev/atelier-store/pkg/catalog"

// AddToCart merges book into the cart. A line already holding the same
// book ID has its quantity incremented; otherwise a new line with
// quantity 1 is appended. Either way the cart panel opens and a success
// notification is raised. Lines are matched by ID, never by value.
func (s *Store) AddToCart(book catalog.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.cart {
		if s.cart[i].Book.ID == book.ID {
			s.cart[i].Quantity++
			merged = true
			break
		}
	}

	if merged {
		s.notifyLocked(book.Title+" quantity updated", catalog.SeveritySuccess)
	} else {
		s.cart = append(s.cart, catalog.CartLine{Book: book, Quantity: 1})
		s.notifyLocked(book.Title+" added to cart", catalog.SeveritySuccess)
	}

	s.cartOpen = true
}

// RemoveFromCart drops the line holding the given book ID. Absent IDs are
// a no-op.
func (s *Store) RemoveFromCart(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.cart[:0]
	for _, line := range s.cart {
		if line.Book.ID != id {
			out = append(out, line)
		}
	}
	s.cart = out
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// ToggleCart flips the cart panel's visibility. Pure UI state.
func (s *Store) ToggleCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartOpen = !s.cartOpen
}

// CartOpen reports whether the cart panel is visible.
func (s *Store) CartOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartOpen
}

// Cart returns a copy of the current cart lines.
func (s *Store) Cart() []catalog.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.CartLine(nil), s.cart...)
}

// CartTotal recomputes the cart total from the current lines. It is
// derived on every call, never cached.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, line := range s.cart {
		total += line.Book.Price * float64(line.Quantity)
	}
	return total
}
