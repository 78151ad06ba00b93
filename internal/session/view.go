package session

import (
	"context"

	"github.com/booknest/storefront/internal/catalog"
	"github.com/booknest/storefront/internal/checkout"
	"github.com/booknest/storefront/internal/navigator"
	"github.com/booknest/storefront/pkg/enums"
	pkgerrors "github.com/booknest/storefront/pkg/errors"
)

// NavigateRequest names a view and, for views that need one, its payload.
type NavigateRequest struct {
	View    string `json:"view" validate:"notblank"`
	BookID  *int   `json:"book_id,omitempty"`
	OrderID string `json:"order_id,omitempty"`
}

func (s *Session) View() navigator.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.State()
}

// Navigate resolves the request payload against the catalog, order history
// and checkout workflow, then switches views. Leaving checkout before
// submitting abandons it.
func (s *Session) Navigate(ctx context.Context, req NavigateRequest) (navigator.State, error) {
	name, err := enums.ParseViewName(req.View)
	if err != nil {
		return navigator.State{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed").
			WithDetails(map[string]string{"view": "is not a known view"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch name {
	case enums.ViewNameHome:
		s.goHome()
		return s.nav.State(), nil
	case enums.ViewNameCheckout:
		return s.navigateCheckoutLocked(ctx, req)
	}

	view, err := s.resolveViewLocked(name, req)
	if err != nil {
		return navigator.State{}, err
	}
	if err := s.nav.NavigateTo(view); err != nil {
		return navigator.State{}, err
	}
	s.abandonCheckout()
	return s.nav.State(), nil
}

func (s *Session) resolveViewLocked(name enums.ViewName, req NavigateRequest) (navigator.View, error) {
	switch name {
	case enums.ViewNameBookDetail:
		if req.BookID == nil {
			return navigator.BookDetail{}, nil
		}
		book, ok := s.catalog.FindByID(*req.BookID)
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "book not found")
		}
		return navigator.BookDetail{Book: &book}, nil
	case enums.ViewNameOrderConfirmation:
		if req.OrderID == "" {
			return navigator.OrderConfirmation{}, nil
		}
		order, ok := s.history.Find(req.OrderID)
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return navigator.OrderConfirmation{Order: &order}, nil
	}
	view, ok := navigator.Simple(name)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "view is not navigable")
	}
	return view, nil
}

// navigateCheckoutLocked treats a book id as buy-now and otherwise reopens
// the checkout already in progress.
func (s *Session) navigateCheckoutLocked(ctx context.Context, req NavigateRequest) (navigator.State, error) {
	if req.BookID != nil {
		return s.beginLocked(ctx, checkout.BuyNow(*req.BookID))
	}
	view := navigator.Checkout{}
	if subject, ok := s.workflow.Subject(); ok && s.workflow.State() != enums.CheckoutStateCompleted {
		view.Subject = &subject
	}
	if err := s.nav.NavigateTo(view); err != nil {
		return navigator.State{}, err
	}
	return s.nav.State(), nil
}

// GoHome returns to the home view and drops any selection.
func (s *Session) GoHome(ctx context.Context) navigator.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goHome()
	return s.nav.State()
}

func (s *Session) goHome() {
	s.abandonCheckout()
	s.nav.GoHome()
}

func (s *Session) SetSearchQuery(query string) navigator.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.SetSearchQuery(query)
	return s.nav.State()
}

func (s *Session) SelectCategory(name string) (navigator.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.nav.SelectCategory(s.catalog, name); err != nil {
		return navigator.State{}, err
	}
	return s.nav.State(), nil
}

// DisplayedBooks is the catalog narrowed by the current search and category.
func (s *Session) DisplayedBooks(order enums.BookSort) []catalog.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.DisplayedBooks(s.catalog, order)
}
