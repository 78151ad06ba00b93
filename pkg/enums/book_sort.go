package enums

import "fmt"

// BookSort orders catalog listings.
type BookSort string

const (
	BookSortPopularity BookSort = "popularity"
	BookSortRating     BookSort = "rating"
	BookSortPriceLow   BookSort = "price-low"
	BookSortPriceHigh  BookSort = "price-high"
	BookSortNewest     BookSort = "newest"
	BookSortTitle      BookSort = "title"
)

var validBookSorts = []BookSort{
	BookSortPopularity,
	BookSortRating,
	BookSortPriceLow,
	BookSortPriceHigh,
	BookSortNewest,
	BookSortTitle,
}

// String implements fmt.Stringer.
func (b BookSort) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BookSort.
func (b BookSort) IsValid() bool {
	for _, candidate := range validBookSorts {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBookSort converts raw input into a BookSort.
func ParseBookSort(value string) (BookSort, error) {
	for _, candidate := range validBookSorts {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid book sort %q", value)
}
