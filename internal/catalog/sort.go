package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/booknest/storefront/pkg/enums"
)

// Sort returns a reordered copy of books. Ties keep their input order, and an
// empty order leaves the input order untouched.
func Sort(books []Book, order enums.BookSort) []Book {
	out := slices.Clone(books)
	if out == nil {
		out = []Book{}
	}

	var less func(a, b Book) int
	switch order {
	case enums.BookSortPopularity:
		less = func(a, b Book) int { return cmp.Compare(b.ReviewCount, a.ReviewCount) }
	case enums.BookSortRating:
		less = func(a, b Book) int { return cmp.Compare(b.Rating, a.Rating) }
	case enums.BookSortPriceLow:
		less = func(a, b Book) int { return a.Price.Cmp(b.Price) }
	case enums.BookSortPriceHigh:
		less = func(a, b Book) int { return b.Price.Cmp(a.Price) }
	case enums.BookSortNewest:
		// ISO dates compare lexically; undated books sort last.
		less = func(a, b Book) int { return cmp.Compare(b.PublishedDate, a.PublishedDate) }
	case enums.BookSortTitle:
		less = func(a, b Book) int { return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)) }
	default:
		return out
	}

	slices.SortStableFunc(out, less)
	return out
}
