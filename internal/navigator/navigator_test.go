package navigator

import (
	"testing"

	"github.com/booknest/storefront/internal/catalog"
	"github.com/booknest/storefront/internal/catalog/catalogtest"
	"github.com/booknest/storefront/internal/checkout"
	"github.com/booknest/storefront/internal/orders"
	"github.com/booknest/storefront/pkg/enums"
	pkgerrors "github.com/booknest/storefront/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsAtHome(t *testing.T) {
	n := New()

	st := n.State()
	assert.Equal(t, enums.ViewNameHome, st.CurrentView)
	assert.Equal(t, catalog.AllCategories, st.SelectedCategory)
	assert.Empty(t, st.SearchQuery)
}

func TestNavigateToPayloadViewsRequiresPayload(t *testing.T) {
	n := New()

	err := n.NavigateTo(BookDetail{})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))

	err = n.NavigateTo(Checkout{})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))

	err = n.NavigateTo(Checkout{Subject: &checkout.Subject{}})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))

	err = n.NavigateTo(OrderConfirmation{})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))

	err = n.NavigateTo(nil)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	assert.Equal(t, enums.ViewNameHome, n.Current().Name())
}

func TestNavigateCarriesSelection(t *testing.T) {
	n := New()
	book := catalogtest.Book(3, "Dune", "29.99")

	require.NoError(t, n.NavigateTo(BookDetail{Book: &book}))
	selected, ok := n.SelectedBook()
	require.True(t, ok)
	assert.Equal(t, 3, selected.ID)

	subject := checkout.Subject{Kind: enums.SubjectKindBook, Book: &book, Total: book.Price}
	require.NoError(t, n.NavigateTo(Checkout{Subject: &subject}))
	st := n.State()
	require.NotNil(t, st.CheckoutSubject)
	require.NotNil(t, st.SelectedBook)
	assert.Equal(t, enums.ViewNameCheckout, st.CurrentView)

	order := orders.Order{ID: "ORD-1", Total: book.Price}
	require.NoError(t, n.NavigateTo(OrderConfirmation{Order: &order}))
	active, ok := n.ActiveOrder()
	require.True(t, ok)
	assert.Equal(t, "ORD-1", active.ID)
	_, ok = n.SelectedBook()
	assert.False(t, ok)
}

func TestGoHomeClearsSelection(t *testing.T) {
	n := New()
	order := orders.Order{ID: "ORD-1"}
	require.NoError(t, n.NavigateTo(OrderConfirmation{Order: &order}))
	n.SetSearchQuery("dune")

	n.GoHome()

	st := n.State()
	assert.Equal(t, enums.ViewNameHome, st.CurrentView)
	assert.Nil(t, st.ActiveOrder)
	assert.Nil(t, st.SelectedBook)
	assert.Equal(t, "dune", st.SearchQuery)
}

func TestSimpleCoversPayloadFreeViews(t *testing.T) {
	for _, name := range []enums.ViewName{
		enums.ViewNameHome,
		enums.ViewNameCatalogBrowse,
		enums.ViewNameCart,
		enums.ViewNameSignIn,
		enums.ViewNameSignUp,
		enums.ViewNameCategories,
		enums.ViewNameWishlist,
		enums.ViewNameOrderHistory,
		enums.ViewNameUserProfile,
		enums.ViewNameNewsletterConfirmation,
		enums.ViewNameQuickLinks,
	} {
		v, ok := Simple(name)
		require.True(t, ok, name)
		assert.Equal(t, name, v.Name())
	}

	for _, name := range []enums.ViewName{
		enums.ViewNameBookDetail,
		enums.ViewNameCheckout,
		enums.ViewNameOrderConfirmation,
	} {
		_, ok := Simple(name)
		assert.False(t, ok, name)
	}
}

func TestSelectCategory(t *testing.T) {
	src := catalogtest.Default(t)
	n := New()

	require.NoError(t, n.SelectCategory(src, "Fiction"))
	assert.Equal(t, "Fiction", n.SelectedCategory())

	err := n.SelectCategory(src, "Cookbooks")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	assert.Equal(t, "Fiction", n.SelectedCategory())

	require.NoError(t, n.SelectCategory(src, ""))
	assert.Equal(t, catalog.AllCategories, n.SelectedCategory())
}

func TestDisplayedBooks(t *testing.T) {
	src := catalogtest.Default(t)
	n := New()

	assert.Equal(t, src.ListAll(), n.DisplayedBooks(src, ""))

	n.SetSearchQuery("dune")
	books := n.DisplayedBooks(src, "")
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)

	n.SetSearchQuery("nonexistent-zzz")
	assert.Empty(t, n.DisplayedBooks(src, enums.BookSortTitle))
}

func TestHeaderGating(t *testing.T) {
	n := New()

	anon := n.Header(HeaderSignals{CartItemCount: 0, WishlistCount: 2})
	assert.False(t, anon.ShowCartBadge)
	assert.False(t, anon.ShowWishlist)
	assert.Zero(t, anon.WishlistCount)
	assert.Empty(t, anon.UserInitial)

	member := n.Header(HeaderSignals{CartItemCount: 3, WishlistCount: 2, SignedIn: true, UserEmail: "ada@example.com"})
	assert.True(t, member.ShowCartBadge)
	assert.Equal(t, 3, member.CartBadge)
	assert.True(t, member.ShowWishlist)
	assert.Equal(t, 2, member.WishlistCount)
	assert.Equal(t, "A", member.UserInitial)
	assert.Equal(t, "home", member.CurrentView)
}

type nameCollector struct {
	names []enums.ViewName
}

func (c *nameCollector) add(v View) { c.names = append(c.names, v.Name()) }

func (c *nameCollector) VisitHome(v Home)                                     { c.add(v) }
func (c *nameCollector) VisitCatalogBrowse(v CatalogBrowse)                   { c.add(v) }
func (c *nameCollector) VisitBookDetail(v BookDetail)                         { c.add(v) }
func (c *nameCollector) VisitCart(v Cart)                                     { c.add(v) }
func (c *nameCollector) VisitCheckout(v Checkout)                             { c.add(v) }
func (c *nameCollector) VisitOrderConfirmation(v OrderConfirmation)           { c.add(v) }
func (c *nameCollector) VisitSignIn(v SignIn)                                 { c.add(v) }
func (c *nameCollector) VisitSignUp(v SignUp)                                 { c.add(v) }
func (c *nameCollector) VisitCategories(v Categories)                         { c.add(v) }
func (c *nameCollector) VisitWishlist(v Wishlist)                             { c.add(v) }
func (c *nameCollector) VisitOrderHistory(v OrderHistory)                     { c.add(v) }
func (c *nameCollector) VisitUserProfile(v UserProfile)                       { c.add(v) }
func (c *nameCollector) VisitNewsletterConfirmation(v NewsletterConfirmation) { c.add(v) }
func (c *nameCollector) VisitQuickLinks(v QuickLinks)                         { c.add(v) }

func TestEveryViewDispatchesToItsVisitorMethod(t *testing.T) {
	views := []View{
		Home{}, CatalogBrowse{}, BookDetail{}, Cart{}, Checkout{}, OrderConfirmation{},
		SignIn{}, SignUp{}, Categories{}, Wishlist{}, OrderHistory{}, UserProfile{},
		NewsletterConfirmation{}, QuickLinks{},
	}
	c := &nameCollector{}
	for _, v := range views {
		v.Accept(c)
	}

	require.Len(t, c.names, len(views))
	for i, v := range views {
		assert.Equal(t, v.Name(), c.names[i])
		assert.True(t, v.Name().IsValid())
	}
}
