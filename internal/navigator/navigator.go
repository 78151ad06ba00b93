package navigator

import (
	"strings"

	"github.com/booknest/storefront/internal/catalog"
	"github.com/booknest/storefront/internal/checkout"
	"github.com/booknest/storefront/internal/orders"
	"github.com/booknest/storefront/pkg/enums"
	pkgerrors "github.com/booknest/storefront/pkg/errors"
)

// Navigator owns the current view and the catalog filter. Selections such as
// the book being viewed or the order being confirmed travel inside the view
// itself, so leaving a view drops its selection. A Navigator is not safe for
// concurrent use.
type Navigator struct {
	current  View
	query    string
	category string
}

func New() *Navigator {
	return &Navigator{
		current:  Home{},
		category: catalog.AllCategories,
	}
}

func (n *Navigator) Current() View {
	return n.current
}

// NavigateTo switches to v. Views that need a payload are refused when it is
// missing and the current view is left unchanged.
func (n *Navigator) NavigateTo(v View) error {
	if v == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "view is required")
	}
	g := &guard{}
	v.Accept(g)
	if g.err != nil {
		return g.err
	}
	n.current = v
	return nil
}

// GoHome returns to the home view, dropping any selected book or order.
func (n *Navigator) GoHome() {
	n.current = Home{}
}

func (n *Navigator) SearchQuery() string {
	return n.query
}

func (n *Navigator) SetSearchQuery(query string) {
	n.query = query
}

func (n *Navigator) SelectedCategory() string {
	return n.category
}

// SelectCategory narrows the displayed list. Names the catalog does not know
// are rejected; "All" is always accepted.
func (n *Navigator) SelectCategory(src *catalog.Source, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		name = catalog.AllCategories
	}
	if name != catalog.AllCategories && !src.HasCategory(name) {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown category").
			WithDetails(map[string]string{"category": name})
	}
	n.category = name
	return nil
}

// DisplayedBooks applies the filter state to src, then sorts when order is set.
func (n *Navigator) DisplayedBooks(src *catalog.Source, order enums.BookSort) []catalog.Book {
	return catalog.Sort(src.Filter(n.query, n.category), order)
}

// State is a detached rendering of the navigator.
type State struct {
	CurrentView      enums.ViewName    `json:"current_view"`
	SelectedBook     *catalog.Book     `json:"selected_book,omitempty"`
	CheckoutSubject  *checkout.Subject `json:"checkout_subject,omitempty"`
	ActiveOrder      *orders.Order     `json:"active_order,omitempty"`
	NewsletterEmail  string            `json:"newsletter_email,omitempty"`
	SearchQuery      string            `json:"search_query"`
	SelectedCategory string            `json:"selected_category"`
}

func (n *Navigator) State() State {
	s := &stateBuilder{state: State{
		CurrentView:      n.current.Name(),
		SearchQuery:      n.query,
		SelectedCategory: n.category,
	}}
	n.current.Accept(s)
	return s.state
}

// SelectedBook is the book carried by the current view, if any.
func (n *Navigator) SelectedBook() (catalog.Book, bool) {
	st := n.State()
	if st.SelectedBook == nil {
		return catalog.Book{}, false
	}
	return *st.SelectedBook, true
}

// ActiveOrder is the order carried by the confirmation view, if shown.
func (n *Navigator) ActiveOrder() (orders.Order, bool) {
	st := n.State()
	if st.ActiveOrder == nil {
		return orders.Order{}, false
	}
	return *st.ActiveOrder, true
}

func missingPayload(view enums.ViewName, field string) error {
	return pkgerrors.New(pkgerrors.CodeStateConflict, "view requires a payload").
		WithDetails(map[string]string{"view": view.String(), "missing": field})
}

type guard struct {
	err error
}

func (g *guard) VisitHome(Home)                   {}
func (g *guard) VisitCatalogBrowse(CatalogBrowse) {}
func (g *guard) VisitBookDetail(v BookDetail) {
	if v.Book == nil {
		g.err = missingPayload(v.Name(), "book")
	}
}
func (g *guard) VisitCart(Cart) {}
func (g *guard) VisitCheckout(v Checkout) {
	if v.Subject == nil || (v.Subject.Book == nil && v.Subject.Cart == nil) {
		g.err = missingPayload(v.Name(), "subject")
	}
}
func (g *guard) VisitOrderConfirmation(v OrderConfirmation) {
	if v.Order == nil {
		g.err = missingPayload(v.Name(), "order")
	}
}
func (g *guard) VisitSignIn(SignIn)                                 {}
func (g *guard) VisitSignUp(SignUp)                                 {}
func (g *guard) VisitCategories(Categories)                         {}
func (g *guard) VisitWishlist(Wishlist)                             {}
func (g *guard) VisitOrderHistory(OrderHistory)                     {}
func (g *guard) VisitUserProfile(UserProfile)                       {}
func (g *guard) VisitNewsletterConfirmation(NewsletterConfirmation) {}
func (g *guard) VisitQuickLinks(QuickLinks)                         {}

type stateBuilder struct {
	state State
}

func (s *stateBuilder) VisitHome(Home)                   {}
func (s *stateBuilder) VisitCatalogBrowse(CatalogBrowse) {}
func (s *stateBuilder) VisitBookDetail(v BookDetail) {
	book := *v.Book
	s.state.SelectedBook = &book
}
func (s *stateBuilder) VisitCart(Cart) {}
func (s *stateBuilder) VisitCheckout(v Checkout) {
	subject := *v.Subject
	s.state.CheckoutSubject = &subject
	if subject.Book != nil {
		book := *subject.Book
		s.state.SelectedBook = &book
	}
}
func (s *stateBuilder) VisitOrderConfirmation(v OrderConfirmation) {
	order := v.Order.Clone()
	s.state.ActiveOrder = &order
}
func (s *stateBuilder) VisitSignIn(SignIn)             {}
func (s *stateBuilder) VisitSignUp(SignUp)             {}
func (s *stateBuilder) VisitCategories(Categories)     {}
func (s *stateBuilder) VisitWishlist(Wishlist)         {}
func (s *stateBuilder) VisitOrderHistory(OrderHistory) {}
func (s *stateBuilder) VisitUserProfile(UserProfile)   {}
func (s *stateBuilder) VisitNewsletterConfirmation(v NewsletterConfirmation) {
	s.state.NewsletterEmail = v.Email
}
func (s *stateBuilder) VisitQuickLinks(QuickLinks) {}
