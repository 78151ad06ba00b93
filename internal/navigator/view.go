package navigator

import (
	"github.com/booknest/storefront/internal/catalog"
	"github.com/booknest/storefront/internal/checkout"
	"github.com/booknest/storefront/internal/orders"
	"github.com/booknest/storefront/pkg/enums"
)

// View is one screen of the storefront. The set of views is closed: every
// variant is declared here and every Visitor must handle all of them, so a
// new view fails to compile until each visitor covers it.
type View interface {
	Name() enums.ViewName
	Accept(v Visitor)
}

// Visitor matches a View exhaustively.
type Visitor interface {
	VisitHome(Home)
	VisitCatalogBrowse(CatalogBrowse)
	VisitBookDetail(BookDetail)
	VisitCart(Cart)
	VisitCheckout(Checkout)
	VisitOrderConfirmation(OrderConfirmation)
	VisitSignIn(SignIn)
	VisitSignUp(SignUp)
	VisitCategories(Categories)
	VisitWishlist(Wishlist)
	VisitOrderHistory(OrderHistory)
	VisitUserProfile(UserProfile)
	VisitNewsletterConfirmation(NewsletterConfirmation)
	VisitQuickLinks(QuickLinks)
}

type Home struct{}

type CatalogBrowse struct{}

// BookDetail requires the book being shown.
type BookDetail struct {
	Book *catalog.Book
}

type Cart struct{}

// Checkout requires the subject being purchased.
type Checkout struct {
	Subject *checkout.Subject
}

// OrderConfirmation requires the order just placed.
type OrderConfirmation struct {
	Order *orders.Order
}

type SignIn struct{}

type SignUp struct{}

type Categories struct{}

type Wishlist struct{}

type OrderHistory struct{}

type UserProfile struct{}

type NewsletterConfirmation struct {
	Email string
}

type QuickLinks struct{}

func (Home) Name() enums.ViewName                   { return enums.ViewNameHome }
func (CatalogBrowse) Name() enums.ViewName          { return enums.ViewNameCatalogBrowse }
func (BookDetail) Name() enums.ViewName             { return enums.ViewNameBookDetail }
func (Cart) Name() enums.ViewName                   { return enums.ViewNameCart }
func (Checkout) Name() enums.ViewName               { return enums.ViewNameCheckout }
func (OrderConfirmation) Name() enums.ViewName      { return enums.ViewNameOrderConfirmation }
func (SignIn) Name() enums.ViewName                 { return enums.ViewNameSignIn }
func (SignUp) Name() enums.ViewName                 { return enums.ViewNameSignUp }
func (Categories) Name() enums.ViewName             { return enums.ViewNameCategories }
func (Wishlist) Name() enums.ViewName               { return enums.ViewNameWishlist }
func (OrderHistory) Name() enums.ViewName           { return enums.ViewNameOrderHistory }
func (UserProfile) Name() enums.ViewName            { return enums.ViewNameUserProfile }
func (NewsletterConfirmation) Name() enums.ViewName { return enums.ViewNameNewsletterConfirmation }
func (QuickLinks) Name() enums.ViewName             { return enums.ViewNameQuickLinks }

func (v Home) Accept(x Visitor)                   { x.VisitHome(v) }
func (v CatalogBrowse) Accept(x Visitor)          { x.VisitCatalogBrowse(v) }
func (v BookDetail) Accept(x Visitor)             { x.VisitBookDetail(v) }
func (v Cart) Accept(x Visitor)                   { x.VisitCart(v) }
func (v Checkout) Accept(x Visitor)               { x.VisitCheckout(v) }
func (v OrderConfirmation) Accept(x Visitor)      { x.VisitOrderConfirmation(v) }
func (v SignIn) Accept(x Visitor)                 { x.VisitSignIn(v) }
func (v SignUp) Accept(x Visitor)                 { x.VisitSignUp(v) }
func (v Categories) Accept(x Visitor)             { x.VisitCategories(v) }
func (v Wishlist) Accept(x Visitor)               { x.VisitWishlist(v) }
func (v OrderHistory) Accept(x Visitor)           { x.VisitOrderHistory(v) }
func (v UserProfile) Accept(x Visitor)            { x.VisitUserProfile(v) }
func (v NewsletterConfirmation) Accept(x Visitor) { x.VisitNewsletterConfirmation(v) }
func (v QuickLinks) Accept(x Visitor)             { x.VisitQuickLinks(v) }

// Simple returns the payload-free view for name. Views that need a payload
// (book detail, checkout, order confirmation) report false.
func Simple(name enums.ViewName) (View, bool) {
	switch name {
	case enums.ViewNameHome:
		return Home{}, true
	case enums.ViewNameCatalogBrowse:
		return CatalogBrowse{}, true
	case enums.ViewNameCart:
		return Cart{}, true
	case enums.ViewNameSignIn:
		return SignIn{}, true
	case enums.ViewNameSignUp:
		return SignUp{}, true
	case enums.ViewNameCategories:
		return Categories{}, true
	case enums.ViewNameWishlist:
		return Wishlist{}, true
	case enums.ViewNameOrderHistory:
		return OrderHistory{}, true
	case enums.ViewNameUserProfile:
		return UserProfile{}, true
	case enums.ViewNameNewsletterConfirmation:
		return NewsletterConfirmation{}, true
	case enums.ViewNameQuickLinks:
		return QuickLinks{}, true
	}
	return nil, false
}
