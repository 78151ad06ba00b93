package orders

import (
	"time"

	"github.com/booknest/storefront/internal/catalog"
	"github.com/booknest/storefront/pkg/enums"
	"github.com/shopspring/decimal"
)

// DateLayout renders order dates as month/day/year without padding.
const DateLayout = "1/2/2006"

// CustomerDetails is the contact and delivery information captured at
// checkout. City and pincode are optional.
type CustomerDetails struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"notblank"`
	Phone   string `json:"phone" validate:"notblank"`
	Address string `json:"address" validate:"notblank"`
	City    string `json:"city,omitempty"`
	Pincode string `json:"pincode,omitempty"`
}

// Item is a purchased line frozen at order time.
type Item struct {
	BookID   int             `json:"book_id"`
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	ImageRef string          `json:"image_ref,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Order is immutable once created; accessors hand out copies.
type Order struct {
	ID               string              `json:"order_id"`
	SubjectKind      enums.SubjectKind   `json:"subject_kind,omitempty"`
	Book             *catalog.Book       `json:"book,omitempty"`
	Items            []Item              `json:"items"`
	Customer         CustomerDetails     `json:"customer"`
	PaymentMethod    enums.PaymentMethod `json:"payment_method,omitempty"`
	PaymentReference string              `json:"payment_reference,omitempty"`
	OrderDate        string              `json:"order_date"`
	PlacedAt         time.Time           `json:"placed_at"`
	Total            decimal.Decimal     `json:"total"`
	Status           enums.OrderStatus   `json:"status"`
}

// ItemCount sums item quantities.
func (o Order) ItemCount() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

// Clone returns a deep copy so callers cannot reach shared slices.
func (o Order) Clone() Order {
	out := o
	if o.Items != nil {
		out.Items = make([]Item, len(o.Items))
		copy(out.Items, o.Items)
	}
	if o.Book != nil {
		book := *o.Book
		out.Book = &book
	}
	return out
}
