// Package session owns the per-shopper application state. A Session is the
// single write path for the cart, wishlist, checkout workflow, order history,
// navigator and account of one shopper; every method serializes on the
// session lock.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/booknest/storefront/internal/account"
	"github.com/booknest/storefront/internal/cart"
	"github.com/booknest/storefront/internal/catalog"
	"github.com/booknest/storefront/internal/checkout"
	"github.com/booknest/storefront/internal/navigator"
	"github.com/booknest/storefront/internal/orders"
	"github.com/booknest/storefront/internal/wishlist"
	"github.com/booknest/storefront/pkg/enums"
	pkgerrors "github.com/booknest/storefront/pkg/errors"
	"github.com/booknest/storefront/pkg/logger"
	"github.com/booknest/storefront/pkg/metrics"
	"github.com/booknest/storefront/pkg/pagination"
)

// Params configure the sessions built by New and by a Registry.
type Params struct {
	Catalog *catalog.Source
	History []orders.Order
	IDs     *orders.IDGenerator
	Settler checkout.Settler
	Logger  *logger.Logger
	Metrics *metrics.Storefront
	Now     func() time.Time
}

func (p Params) validate() error {
	if p.Catalog == nil {
		return fmt.Errorf("catalog required")
	}
	if p.Settler == nil {
		return fmt.Errorf("settler required")
	}
	if p.Logger == nil {
		return fmt.Errorf("logger required")
	}
	return nil
}

type Session struct {
	id string

	mu       sync.Mutex
	catalog  *catalog.Source
	ledger   *cart.Ledger
	wishes   *wishlist.Set
	workflow *checkout.Workflow
	history  *orders.History
	nav      *navigator.Navigator
	account  *account.Account

	settler checkout.Settler
	logg    *logger.Logger
	metrics *metrics.Storefront
}

// New builds an empty session for id.
func New(id string, params Params) (*Session, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("session id required")
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	ids := params.IDs
	if ids == nil {
		ids = orders.NewIDGenerator(now)
	}

	ledger := cart.NewLedger(params.Catalog)
	return &Session{
		id:       id,
		catalog:  params.Catalog,
		ledger:   ledger,
		wishes:   wishlist.NewSet(params.Catalog),
		workflow: checkout.NewWorkflow(params.Catalog, ledger, ids, now),
		history:  orders.NewHistory(params.History),
		nav:      navigator.New(),
		account:  account.New(),
		settler:  params.Settler,
		logg:     params.Logger,
		metrics:  params.Metrics,
	}, nil
}

func (s *Session) ID() string {
	return s.id
}

// Catalog is shared and read-only, so it is served without the session lock.
func (s *Session) Catalog() *catalog.Source {
	return s.catalog
}

func (s *Session) logCtx(ctx context.Context, event string) context.Context {
	ctx = s.logg.WithSessionID(ctx, s.id)
	return s.logg.WithField(ctx, "event", event)
}

func (s *Session) lookupMiss(ctx context.Context, op string, bookID int) {
	logCtx := s.logg.WithFields(s.logCtx(ctx, "catalog.lookup_miss"), map[string]any{
		"op":      op,
		"book_id": bookID,
	})
	s.logg.Warn(logCtx, "book not in catalog; ignoring")
}

// Cart

func (s *Session) Cart() cart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Snapshot()
}

// AddToCart adds one copy of bookID. Unknown ids are logged and ignored.
func (s *Session) AddToCart(ctx context.Context, bookID int) cart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addToCart(ctx, bookID)
	return s.ledger.Snapshot()
}

func (s *Session) addToCart(ctx context.Context, bookID int) {
	if !s.ledger.Add(bookID) {
		s.lookupMiss(ctx, "cart.add", bookID)
		return
	}
	line, _ := s.ledger.Line(bookID)
	logCtx := s.logg.WithFields(s.logCtx(ctx, "cart.item_added"), map[string]any{
		"book_id":  bookID,
		"quantity": line.Quantity,
	})
	s.logg.Info(logCtx, "item added to cart")
	s.metrics.IncCartEvent("add")
}

// SetCartQuantity overwrites a line's quantity; values below 1 are ignored.
func (s *Session) SetCartQuantity(ctx context.Context, bookID, quantity int) cart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ledger.SetQuantity(bookID, quantity) {
		s.metrics.IncCartEvent("set_quantity")
	}
	return s.ledger.Snapshot()
}

func (s *Session) RemoveFromCart(ctx context.Context, bookID int) cart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ledger.Remove(bookID) {
		s.metrics.IncCartEvent("remove")
	}
	return s.ledger.Snapshot()
}

// Wishlist

// WishlistToggle reports membership after a toggle.
type WishlistToggle struct {
	BookID     int  `json:"book_id"`
	InWishlist bool `json:"in_wishlist"`
	Count      int  `json:"count"`
}

func (s *Session) Wishlist() []catalog.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishes.Books()
}

// ToggleWishlist flips membership of bookID. Unknown ids are ignored.
func (s *Session) ToggleWishlist(ctx context.Context, bookID int) WishlistToggle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.catalog.FindByID(bookID); !ok {
		s.lookupMiss(ctx, "wishlist.toggle", bookID)
		return WishlistToggle{BookID: bookID, Count: s.wishes.Len()}
	}
	in := s.wishes.Toggle(bookID)
	s.metrics.IncWishlistToggle(in)
	return WishlistToggle{BookID: bookID, InWishlist: in, Count: s.wishes.Len()}
}

// MoveWishlistToCart adds a wishlisted book to the cart. The wishlist keeps
// the entry.
func (s *Session) MoveWishlistToCart(ctx context.Context, bookID int) cart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.wishes.Contains(bookID) {
		s.lookupMiss(ctx, "wishlist.move_to_cart", bookID)
		return s.ledger.Snapshot()
	}
	s.addToCart(ctx, bookID)
	return s.ledger.Snapshot()
}

// Orders

func (s *Session) Orders() []orders.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.List()
}

// OrdersPage pages through the history; a bad cursor is a validation error.
func (s *Session) OrdersPage(params pagination.Params) (orders.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	page, err := s.history.Page(params)
	if err != nil {
		return orders.Page{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor").
			WithDetails(map[string]string{"cursor": err.Error()})
	}
	return page, nil
}

func (s *Session) Order(id string) (orders.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.history.Find(id)
	if !ok {
		return orders.Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return order, nil
}

// Account

func (s *Session) Account() account.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account.Profile()
}

// SignIn signs the shopper in and returns to home.
func (s *Session) SignIn(ctx context.Context, c account.Credentials) (account.Profile, error) {
	return s.signIn(ctx, c, s.account.SignIn)
}

func (s *Session) SignUp(ctx context.Context, c account.Credentials) (account.Profile, error) {
	return s.signIn(ctx, c, s.account.SignUp)
}

func (s *Session) signIn(ctx context.Context, c account.Credentials, fn func(account.Credentials) (account.Profile, error)) (account.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, err := fn(c)
	if err != nil {
		return account.Profile{}, err
	}
	s.goHome()
	s.logg.Info(s.logCtx(ctx, "account.signed_in"), "shopper signed in")
	return profile, nil
}

// Subscribe validates the newsletter address and shows the confirmation.
func (s *Session) Subscribe(ctx context.Context, req account.NewsletterRequest) (navigator.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email, err := account.Subscribe(req)
	if err != nil {
		return navigator.State{}, err
	}
	s.abandonCheckout()
	if err := s.nav.NavigateTo(navigator.NewsletterConfirmation{Email: email}); err != nil {
		return navigator.State{}, err
	}
	s.logg.Info(s.logCtx(ctx, "newsletter.subscribed"), "newsletter subscription accepted")
	return s.nav.State(), nil
}

func (s *Session) itemCountsLocked() navigator.HeaderSignals {
	return navigator.HeaderSignals{
		CartItemCount: s.ledger.ItemCount(),
		WishlistCount: s.wishes.Len(),
		SignedIn:      s.account.SignedIn(),
		UserEmail:     s.account.Email(),
	}
}

// Header renders the top bar from the current cart, wishlist and account.
func (s *Session) Header() navigator.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.Header(s.itemCountsLocked())
}

// abandonCheckout drops an unfinished or finished checkout pass when the
// shopper navigates elsewhere. A settling payment is left alone.
func (s *Session) abandonCheckout() {
	if s.workflow.State() == enums.CheckoutStateSubmitting {
		return
	}
	_ = s.workflow.Reset()
}
