package wishlist

import "github.com/booknest/storefront/internal/catalog"

// BookFinder resolves catalog ids; *catalog.Source satisfies it.
type BookFinder interface {
	FindByID(id int) (catalog.Book, bool)
}

// Set holds wishlisted book ids in the order they were added.
// It is not safe for concurrent use.
type Set struct {
	books   BookFinder
	members map[int]struct{}
	order   []int
}

func NewSet(books BookFinder) *Set {
	return &Set{books: books, members: map[int]struct{}{}}
}

// Toggle adds bookID when absent and removes it when present, returning the
// resulting membership. Ids missing from the catalog are ignored.
func (s *Set) Toggle(bookID int) bool {
	if _, ok := s.members[bookID]; ok {
		delete(s.members, bookID)
		for i, id := range s.order {
			if id == bookID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return false
	}
	if _, ok := s.books.FindByID(bookID); !ok {
		return false
	}
	s.members[bookID] = struct{}{}
	s.order = append(s.order, bookID)
	return true
}

func (s *Set) Contains(bookID int) bool {
	_, ok := s.members[bookID]
	return ok
}

func (s *Set) Len() int {
	return len(s.order)
}

// IDs returns the members in insertion order.
func (s *Set) IDs() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

// Books resolves the members against the catalog in insertion order.
func (s *Set) Books() []catalog.Book {
	out := make([]catalog.Book, 0, len(s.order))
	for _, id := range s.order {
		if book, ok := s.books.FindByID(id); ok {
			out = append(out, book)
		}
	}
	return out
}
