package wishlist

import (
	"testing"

	"github.com/booknest/storefront/internal/catalog/catalogtest"
	"github.com/stretchr/testify/assert"
)

func newSet(t *testing.T) *Set {
	t.Helper()
	return NewSet(catalogtest.Source(t,
		catalogtest.Book(1, "One", "1.00"),
		catalogtest.Book(2, "Two", "2.00"),
		catalogtest.Book(3, "Three", "3.00"),
	))
}

func TestToggleTwiceRestoresMembership(t *testing.T) {
	s := newSet(t)
	s.Toggle(2)

	for _, id := range []int{1, 2, 3, 404} {
		before := s.Contains(id)
		s.Toggle(id)
		s.Toggle(id)
		assert.Equal(t, before, s.Contains(id), "book %d", id)
	}
	assert.Equal(t, []int{2}, s.IDs())
}

func TestToggleReportsMembership(t *testing.T) {
	s := newSet(t)

	assert.True(t, s.Toggle(1))
	assert.True(t, s.Contains(1))
	assert.False(t, s.Toggle(1))
	assert.False(t, s.Contains(1))
	assert.Equal(t, 0, s.Len())
}

func TestToggleUnknownBookIsNoop(t *testing.T) {
	s := newSet(t)

	assert.False(t, s.Toggle(99))
	assert.False(t, s.Contains(99))
	assert.Empty(t, s.IDs())
}

func TestBooksResolvesInInsertionOrder(t *testing.T) {
	s := newSet(t)
	s.Toggle(3)
	s.Toggle(1)
	s.Toggle(2)
	s.Toggle(1)

	books := s.Books()
	assert.Len(t, books, 2)
	assert.Equal(t, "Three", books[0].Title)
	assert.Equal(t, "Two", books[1].Title)
}
