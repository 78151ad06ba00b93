// Package catalogtest builds small catalogs for tests in other packages.
package catalogtest

import (
	"testing"

	"github.com/booknest/storefront/internal/catalog"
	"github.com/shopspring/decimal"
)

// Category is the single category fixtures are filed under unless overridden.
const Category = "Fiction"

// Book returns a minimal valid book priced at price (a decimal string).
func Book(id int, title, price string) catalog.Book {
	p := decimal.RequireFromString(price)
	return catalog.Book{
		ID:            id,
		Title:         title,
		Author:        "Test Author",
		Price:         p,
		OriginalPrice: p,
		Rating:        4,
		Category:      Category,
		ImageRef:      "https://example.com/cover.jpg",
	}
}

// Source builds a catalog over books with the fixture categories.
func Source(t *testing.T, books ...catalog.Book) *catalog.Source {
	t.Helper()
	src, err := catalog.New(books, []catalog.Category{
		{Name: Category, Count: len(books)},
		{Name: "Science Fiction"},
		{Name: "Mystery"},
	})
	if err != nil {
		t.Fatalf("build catalog fixture: %v", err)
	}
	return src
}

// Default loads the embedded sample catalog.
func Default(t *testing.T) *catalog.Source {
	t.Helper()
	src, err := catalog.Default()
	if err != nil {
		t.Fatalf("load default catalog: %v", err)
	}
	return src
}
