package checkout

import (
	"github.com/booknest/storefront/internal/cart"
	"github.com/booknest/storefront/internal/catalog"
	"github.com/booknest/storefront/pkg/enums"
	"github.com/shopspring/decimal"
)

// Target names what a checkout pass will purchase.
type Target struct {
	Kind   enums.SubjectKind
	BookID int
}

// BuyNow targets a single catalog book and bypasses the cart.
func BuyNow(bookID int) Target {
	return Target{Kind: enums.SubjectKindBook, BookID: bookID}
}

// CartCheckout targets the whole cart ledger.
func CartCheckout() Target {
	return Target{Kind: enums.SubjectKindCart}
}

// Subject is the frozen purchase of a checkout pass. Book is set for buy-now,
// Cart for cart checkout.
type Subject struct {
	Kind  enums.SubjectKind `json:"kind"`
	Book  *catalog.Book     `json:"book,omitempty"`
	Cart  *cart.Snapshot    `json:"cart,omitempty"`
	Total decimal.Decimal   `json:"total"`
}

func bookSubject(book catalog.Book) Subject {
	return Subject{
		Kind:  enums.SubjectKindBook,
		Book:  &book,
		Total: book.Price,
	}
}

func cartSubject(snap cart.Snapshot) Subject {
	return Subject{
		Kind:  enums.SubjectKindCart,
		Cart:  &snap,
		Total: snap.Total,
	}
}

func (s Subject) clone() Subject {
	out := s
	if s.Book != nil {
		book := *s.Book
		out.Book = &book
	}
	if s.Cart != nil {
		snap := *s.Cart
		snap.Lines = append([]cart.Line(nil), s.Cart.Lines...)
		out.Cart = &snap
	}
	return out
}
