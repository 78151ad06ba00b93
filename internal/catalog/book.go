package catalog

import "github.com/shopspring/decimal"

// AllCategories is the category selector that disables category filtering.
const AllCategories = "All"

// Book is an immutable catalog record. Values handed out by Source are copies.
type Book struct {
	ID            int             `json:"id"`
	Title         string          `json:"title"`
	Author        string          `json:"author"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Rating        float64         `json:"rating"`
	ReviewCount   int             `json:"review_count"`
	Category      string          `json:"category"`
	ImageRef      string          `json:"image_ref"`
	Description   string          `json:"description"`
	IsNew         bool            `json:"is_new"`
	IsBestseller  bool            `json:"is_bestseller"`
	ISBN          string          `json:"isbn,omitempty"`
	PublishedDate string          `json:"published_date,omitempty"`
	Publisher     string          `json:"publisher,omitempty"`
	Pages         int             `json:"pages,omitempty"`
	Language      string          `json:"language,omitempty"`
}

// Discount is the amount saved against the original price.
func (b Book) Discount() decimal.Decimal {
	return b.OriginalPrice.Sub(b.Price)
}

// DiscountPercent is the whole-number percentage saved, rounded half up.
func (b Book) DiscountPercent() int64 {
	if !b.OriginalPrice.IsPositive() {
		return 0
	}
	return b.Discount().Div(b.OriginalPrice).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// Category groups books. ColorTag is presentation-only.
type Category struct {
	Name     string `json:"name"`
	Count    int    `json:"count"`
	ColorTag string `json:"color_tag,omitempty"`
}
