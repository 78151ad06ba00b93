package session

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/booknest/storefront/internal/account"
	"github.com/booknest/storefront/internal/catalog/catalogtest"
	"github.com/booknest/storefront/internal/checkout"
	"github.com/booknest/storefront/internal/orders"
	"github.com/booknest/storefront/pkg/enums"
	pkgerrors "github.com/booknest/storefront/pkg/errors"
	"github.com/booknest/storefront/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams(t *testing.T) Params {
	t.Helper()
	seed, err := orders.SampleHistory()
	require.NoError(t, err)
	return Params{
		Catalog: catalogtest.Default(t),
		History: seed,
		Settler: checkout.NewSimulatedSettler(0),
		Logger:  logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
	}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := New("session-1", testParams(t))
	require.NoError(t, err)
	return s
}

func submission(method string) checkout.Submission {
	return checkout.Submission{
		Customer: orders.CustomerDetails{
			Name:    "Ada Reader",
			Email:   "ada@example.com",
			Phone:   "555-0100",
			Address: "1 Library Lane",
		},
		PaymentMethod: method,
	}
}

func TestNewRequiresDependencies(t *testing.T) {
	_, err := New("", testParams(t))
	require.Error(t, err)

	params := testParams(t)
	params.Settler = nil
	_, err = New("id", params)
	require.Error(t, err)
}

func TestCartUnknownBookIsIgnored(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	snap := s.AddToCart(ctx, 999)
	assert.Empty(t, snap.Lines)
	assert.Zero(t, snap.ItemCount)

	s.AddToCart(ctx, 1)
	snap = s.AddToCart(ctx, 1)
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 2, snap.Lines[0].Quantity)

	snap = s.SetCartQuantity(ctx, 1, 0)
	assert.Equal(t, 2, snap.Lines[0].Quantity)

	snap = s.RemoveFromCart(ctx, 1)
	assert.Empty(t, snap.Lines)
}

func TestWishlistToggleAndMoveToCart(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	res := s.ToggleWishlist(ctx, 3)
	assert.True(t, res.InWishlist)
	assert.Equal(t, 1, res.Count)

	miss := s.ToggleWishlist(ctx, 999)
	assert.False(t, miss.InWishlist)
	assert.Equal(t, 1, miss.Count)

	snap := s.MoveWishlistToCart(ctx, 3)
	require.Len(t, snap.Lines, 1)
	assert.Len(t, s.Wishlist(), 1)

	snap = s.MoveWishlistToCart(ctx, 4)
	assert.Len(t, snap.Lines, 1)

	res = s.ToggleWishlist(ctx, 3)
	assert.False(t, res.InWishlist)
	assert.Empty(t, s.Wishlist())
}

func TestBuyNowCompletesOrderAndShowsConfirmation(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()
	s.AddToCart(ctx, 2)

	st, err := s.BuyNow(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, enums.ViewNameCheckout, st.CurrentView)
	require.NotNil(t, st.SelectedBook)
	assert.Equal(t, 1, st.SelectedBook.ID)

	order, err := s.Submit(ctx, submission("creditcard"))
	require.NoError(t, err)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("24.99")))
	assert.Equal(t, enums.PaymentMethodCreditCard, order.PaymentMethod)

	view := s.View()
	assert.Equal(t, enums.ViewNameOrderConfirmation, view.CurrentView)
	require.NotNil(t, view.ActiveOrder)
	assert.Equal(t, order.ID, view.ActiveOrder.ID)

	assert.Equal(t, 1, s.Cart().ItemCount)

	history := s.Orders()
	require.Len(t, history, 3)
	assert.Equal(t, order.ID, history[0].ID)
	assert.Equal(t, enums.OrderStatusProcessing, history[0].Status)

	found, err := s.Order(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
}

func TestBuyNowUnknownBookLeavesViewUnchanged(t *testing.T) {
	s := newTestSession(t)

	st, err := s.BuyNow(context.Background(), 999)
	require.NoError(t, err)
	assert.Equal(t, enums.ViewNameHome, st.CurrentView)
	assert.Equal(t, enums.CheckoutStateIdle, s.Checkout().State)
}

func TestCartCheckoutClearsCart(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	st, err := s.CheckoutCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, enums.ViewNameHome, st.CurrentView)

	s.AddToCart(ctx, 1)
	s.AddToCart(ctx, 3)
	_, err = s.CheckoutCart(ctx)
	require.NoError(t, err)

	order, err := s.Submit(ctx, submission("phonepe"))
	require.NoError(t, err)
	assert.Equal(t, enums.SubjectKindCart, order.SubjectKind)
	assert.Len(t, order.Items, 2)
	assert.Zero(t, s.Cart().ItemCount)
}

func TestSubmitValidationFailureKeepsCheckoutOpen(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()
	_, err := s.BuyNow(ctx, 1)
	require.NoError(t, err)

	in := submission("creditcard")
	in.Customer.Name = ""
	_, err = s.Submit(ctx, in)

	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	assert.Equal(t, enums.CheckoutStateEntering, s.Checkout().State)
	assert.Equal(t, enums.ViewNameCheckout, s.View().CurrentView)
	assert.Len(t, s.Orders(), 2)
}

type gatedSettler struct {
	once    sync.Once
	started chan struct{}
	release chan struct{}
}

func newGatedSettler() *gatedSettler {
	return &gatedSettler{started: make(chan struct{}), release: make(chan struct{})}
}

func (g *gatedSettler) Settle(checkout.Settlement) <-chan checkout.Receipt {
	out := make(chan checkout.Receipt, 1)
	g.once.Do(func() { close(g.started) })
	go func() {
		defer close(out)
		<-g.release
		out <- checkout.Receipt{Reference: "gated", SettledAt: time.Now()}
	}()
	return out
}

func TestDuplicateSubmitDuringSettlementIsRefused(t *testing.T) {
	params := testParams(t)
	settler := newGatedSettler()
	params.Settler = settler
	s, err := New("session-1", params)
	require.NoError(t, err)
	ctx := context.Background()
	_, err = s.BuyNow(ctx, 1)
	require.NoError(t, err)

	type result struct {
		order orders.Order
		err   error
	}
	done := make(chan result, 1)
	go func() {
		order, err := s.Submit(ctx, submission("googlepay"))
		done <- result{order, err}
	}()

	<-settler.started

	_, err = s.Submit(ctx, submission("googlepay"))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))

	_, err = s.CancelCheckout(ctx)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))

	_, err = s.BuyNow(ctx, 2)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))
	assert.Equal(t, enums.CheckoutStateSubmitting, s.Checkout().State)

	close(settler.release)
	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, "gated", res.order.PaymentReference)
	assert.Equal(t, enums.CheckoutStateCompleted, s.Checkout().State)
}

func TestCartAddedDuringSettlementSurvivesCompletion(t *testing.T) {
	params := testParams(t)
	settler := newGatedSettler()
	params.Settler = settler
	s, err := New("session-1", params)
	require.NoError(t, err)
	ctx := context.Background()

	s.AddToCart(ctx, 1)
	_, err = s.CheckoutCart(ctx)
	require.NoError(t, err)

	done := make(chan orders.Order, 1)
	go func() {
		order, err := s.Submit(ctx, submission("googlepay"))
		assert.NoError(t, err)
		done <- order
	}()

	<-settler.started
	s.AddToCart(ctx, 2)
	close(settler.release)
	order := <-done

	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].BookID)

	lines := s.Cart().Lines
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].BookID)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestSubmitSurvivesCancelledContext(t *testing.T) {
	s := newTestSession(t)
	_, err := s.BuyNow(context.Background(), 1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	order, err := s.Submit(ctx, submission("creditcard"))

	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
}

func TestCancelCheckoutReturnsHome(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()
	_, err := s.BuyNow(ctx, 1)
	require.NoError(t, err)

	st, err := s.CancelCheckout(ctx)
	require.NoError(t, err)
	assert.Equal(t, enums.ViewNameHome, st.CurrentView)
	assert.Nil(t, st.SelectedBook)
	assert.Equal(t, enums.CheckoutStateIdle, s.Checkout().State)
}

func TestNavigate(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()
	bookID := 2

	st, err := s.Navigate(ctx, NavigateRequest{View: "book-detail", BookID: &bookID})
	require.NoError(t, err)
	require.NotNil(t, st.SelectedBook)
	assert.Equal(t, "Dune", st.SelectedBook.Title)

	_, err = s.Navigate(ctx, NavigateRequest{View: "book-detail"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))

	missing := 999
	_, err = s.Navigate(ctx, NavigateRequest{View: "book-detail", BookID: &missing})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	_, err = s.Navigate(ctx, NavigateRequest{View: "checkout"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))

	_, err = s.Navigate(ctx, NavigateRequest{View: "nowhere"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	st, err = s.Navigate(ctx, NavigateRequest{View: "order-confirmation", OrderID: "ORD-2024-001"})
	require.NoError(t, err)
	require.NotNil(t, st.ActiveOrder)

	st, err = s.Navigate(ctx, NavigateRequest{View: "cart"})
	require.NoError(t, err)
	assert.Equal(t, enums.ViewNameCart, st.CurrentView)
	assert.Nil(t, st.ActiveOrder)
}

func TestNavigatingAwayAbandonsCheckout(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()
	bookID := 1

	st, err := s.Navigate(ctx, NavigateRequest{View: "checkout", BookID: &bookID})
	require.NoError(t, err)
	assert.Equal(t, enums.ViewNameCheckout, st.CurrentView)
	assert.Equal(t, enums.CheckoutStateEntering, s.Checkout().State)

	_, err = s.Navigate(ctx, NavigateRequest{View: "wishlist"})
	require.NoError(t, err)
	assert.Equal(t, enums.CheckoutStateIdle, s.Checkout().State)
}

func TestFilterAndHeader(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	s.SetSearchQuery("dune")
	books := s.DisplayedBooks("")
	require.Len(t, books, 1)

	_, err := s.SelectCategory("Poetry Nobody Wrote")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	s.AddToCart(ctx, 1)
	s.ToggleWishlist(ctx, 2)
	h := s.Header()
	assert.Equal(t, 1, h.CartBadge)
	assert.False(t, h.ShowWishlist)

	_, err = s.SignIn(ctx, account.Credentials{Name: "Ada", Email: "ada@example.com", Phone: "1", Password: "x"})
	require.NoError(t, err)
	h = s.Header()
	assert.True(t, h.ShowWishlist)
	assert.Equal(t, 1, h.WishlistCount)
	assert.Equal(t, "A", h.UserInitial)
	assert.True(t, s.Account().SignedIn)
}

func TestSubscribeShowsConfirmation(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	_, err := s.Subscribe(ctx, account.NewsletterRequest{Email: "nope"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	assert.Equal(t, enums.ViewNameHome, s.View().CurrentView)

	st, err := s.Subscribe(ctx, account.NewsletterRequest{Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, enums.ViewNameNewsletterConfirmation, st.CurrentView)
	assert.Equal(t, "ada@example.com", st.NewsletterEmail)
}
