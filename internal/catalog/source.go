package catalog

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Source is the read-only catalog. It is safe for concurrent readers because
// nothing mutates it after construction.
type Source struct {
	books      []Book
	categories []Category
	byID       map[int]int
	byName     map[string]struct{}
}

// New validates the records and builds a Source preserving their order.
func New(books []Book, categories []Category) (*Source, error) {
	s := &Source{
		books:      make([]Book, 0, len(books)),
		categories: make([]Category, 0, len(categories)),
		byID:       make(map[int]int, len(books)),
		byName:     make(map[string]struct{}, len(categories)),
	}

	for _, c := range categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("category name is required")
		}
		if name == AllCategories {
			return nil, fmt.Errorf("category name %q is reserved", AllCategories)
		}
		if _, dup := s.byName[name]; dup {
			return nil, fmt.Errorf("duplicate category %q", name)
		}
		if c.Count < 0 {
			return nil, fmt.Errorf("category %q count must be non-negative", name)
		}
		c.Name = name
		s.byName[name] = struct{}{}
		s.categories = append(s.categories, c)
	}

	// Every bad book is reported, not just the first.
	var errs error
	for _, b := range books {
		if err := s.validateBook(b); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		s.byID[b.ID] = len(s.books)
		s.books = append(s.books, b)
	}
	if errs != nil {
		return nil, errs
	}
	return s, nil
}

func (s *Source) validateBook(b Book) error {
	if _, dup := s.byID[b.ID]; dup {
		return fmt.Errorf("duplicate book id %d", b.ID)
	}
	var errs error
	if strings.TrimSpace(b.Title) == "" {
		errs = multierr.Append(errs, fmt.Errorf("book %d: title is required", b.ID))
	}
	if _, ok := s.byName[b.Category]; !ok {
		errs = multierr.Append(errs, fmt.Errorf("book %d: unknown category %q", b.ID, b.Category))
	}
	if b.Price.IsNegative() {
		errs = multierr.Append(errs, fmt.Errorf("book %d: price must be non-negative", b.ID))
	}
	if b.OriginalPrice.LessThan(b.Price) {
		errs = multierr.Append(errs, fmt.Errorf("book %d: original price must be at least the price", b.ID))
	}
	if b.Rating < 0 || b.Rating > 5 {
		errs = multierr.Append(errs, fmt.Errorf("book %d: rating must be within 0-5", b.ID))
	}
	if b.ReviewCount < 0 {
		errs = multierr.Append(errs, fmt.Errorf("book %d: review count must be non-negative", b.ID))
	}
	return errs
}

// ListAll returns the full catalog in source order.
func (s *Source) ListAll() []Book {
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out
}

// ByCategory returns every book for AllCategories, otherwise the books whose
// category matches name exactly. An unknown name yields an empty slice.
func (s *Source) ByCategory(name string) []Book {
	if name == AllCategories {
		return s.ListAll()
	}
	return s.where(s.books, func(b Book) bool { return b.Category == name })
}

// Search matches query case-insensitively against title, author, category and
// description. A blank query returns the full catalog.
func (s *Source) Search(query string) []Book {
	return s.search(s.books, query)
}

// Filter narrows by category first, then applies the text search.
func (s *Source) Filter(query, category string) []Book {
	return s.search(s.ByCategory(category), query)
}

func (s *Source) search(books []Book, query string) []Book {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		out := make([]Book, len(books))
		copy(out, books)
		return out
	}
	return s.where(books, func(b Book) bool {
		return strings.Contains(strings.ToLower(b.Title), needle) ||
			strings.Contains(strings.ToLower(b.Author), needle) ||
			strings.Contains(strings.ToLower(b.Category), needle) ||
			strings.Contains(strings.ToLower(b.Description), needle)
	})
}

func (s *Source) where(books []Book, keep func(Book) bool) []Book {
	out := []Book{}
	for _, b := range books {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// FindByID resolves a book id.
func (s *Source) FindByID(id int) (Book, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return Book{}, false
	}
	return s.books[idx], true
}

// Categories returns the category records in source order.
func (s *Source) Categories() []Category {
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// HasCategory reports whether name is AllCategories or a known category.
func (s *Source) HasCategory(name string) bool {
	if name == AllCategories {
		return true
	}
	_, ok := s.byName[name]
	return ok
}

func (s *Source) Bestsellers() []Book {
	return s.where(s.books, func(b Book) bool { return b.IsBestseller })
}

func (s *Source) NewArrivals() []Book {
	return s.where(s.books, func(b Book) bool { return b.IsNew })
}

func (s *Source) Len() int {
	return len(s.books)
}
