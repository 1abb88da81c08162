package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-dev/atelier-store/pkg/catalog"
)

func TestAddToCart_MergesByID(t *testing.T) {
	s := newTestStore(&fakeRemote{})
	book := catalog.Book{ID: "b1", Title: "Anatomy", Price: 20}

	s.AddToCart(book)
	s.AddToCart(book)

	cart := s.Cart()
	require.Len(t, cart, 1, "same book ID merges into one line")
	assert.Equal(t, "b1", cart[0].Book.ID)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, 40.0, s.CartTotal())

	notes := s.Notifications()
	require.Len(t, notes, 2)
	assert.Equal(t, "Anatomy added to cart", notes[0].Message)
	assert.Equal(t, catalog.SeveritySuccess, notes[0].Severity)
	assert.Equal(t, "Anatomy quantity updated", notes[1].Message)

	assert.True(t, s.CartOpen(), "adding to cart opens the panel")
}

func TestAddToCart_MatchesByIDNotValue(t *testing.T) {
	s := newTestStore(&fakeRemote{})

	s.AddToCart(catalog.Book{ID: "b1", Title: "Anatomy", Price: 20})
	// Different value, same ID: still the same line.
	s.AddToCart(catalog.Book{ID: "b1", Title: "Anatomy (2nd ed.)", Price: 25})

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestCartTotal_RecomputedFromLines(t *testing.T) {
	s := newTestStore(&fakeRemote{})

	assert.Zero(t, s.CartTotal())

	s.AddToCart(catalog.Book{ID: "b1", Title: "Anatomy", Price: 20})
	s.AddToCart(catalog.Book{ID: "b2", Title: "Margins", Price: 65})
	assert.Equal(t, 85.0, s.CartTotal())

	s.RemoveFromCart("b2")
	assert.Equal(t, 20.0, s.CartTotal())

	s.ClearCart()
	assert.Zero(t, s.CartTotal())
	assert.Empty(t, s.Cart())
}

func TestRemoveFromCart_AbsentID_NoOp(t *testing.T) {
	s := newTestStore(&fakeRemote{})
	s.AddToCart(catalog.Book{ID: "b1", Title: "Anatomy", Price: 20})

	s.RemoveFromCart("nope")
	s.RemoveFromCart("b1")
	s.RemoveFromCart("b1") // second removal is a no-op

	assert.Empty(t, s.Cart())
}

func TestToggleCart(t *testing.T) {
	s := newTestStore(&fakeRemote{})

	assert.False(t, s.CartOpen())
	s.ToggleCart()
	assert.True(t, s.CartOpen())
	s.ToggleCart()
	assert.False(t, s.CartOpen())
}

func TestCartOperations_DoNotLog(t *testing.T) {
	s := newTestStore(&fakeRemote{})
	before := len(s.Logs())

	s.AddToCart(catalog.Book{ID: "b1", Title: "Anatomy", Price: 20})
	s.AddToCart(catalog.Book{ID: "b1", Title: "Anatomy", Price: 20})
	s.RemoveFromCart("b1")
	s.ClearCart()
	s.ToggleCart()

	assert.Len(t, s.Logs(), before, "cart activity is ephemeral and never audited")
}
