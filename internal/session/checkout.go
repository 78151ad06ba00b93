package session

import (
	"context"
	"time"

	"github.com/booknest/storefront/internal/checkout"
	"github.com/booknest/storefront/internal/navigator"
	"github.com/booknest/storefront/internal/orders"
	"github.com/booknest/storefront/pkg/enums"
	pkgerrors "github.com/booknest/storefront/pkg/errors"
)

// CheckoutState is the workflow as the checkout screen sees it.
type CheckoutState struct {
	State   enums.CheckoutState `json:"state"`
	Subject *checkout.Subject   `json:"subject,omitempty"`
	Order   *orders.Order       `json:"order,omitempty"`
}

func (s *Session) Checkout() CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkoutStateLocked()
}

func (s *Session) checkoutStateLocked() CheckoutState {
	out := CheckoutState{State: s.workflow.State()}
	if subject, ok := s.workflow.Subject(); ok {
		out.Subject = &subject
	}
	if order, ok := s.workflow.Order(); ok {
		out.Order = &order
	}
	return out
}

// BuyNow starts a single-book checkout and shows the checkout view. Unknown
// ids are logged and leave the view unchanged.
func (s *Session) BuyNow(ctx context.Context, bookID int) (navigator.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.beginLocked(ctx, checkout.BuyNow(bookID))
}

// CheckoutCart starts a checkout over the whole cart. An empty cart leaves the
// view unchanged.
func (s *Session) CheckoutCart(ctx context.Context) (navigator.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.beginLocked(ctx, checkout.CartCheckout())
}

func (s *Session) beginLocked(ctx context.Context, target checkout.Target) (navigator.State, error) {
	if s.workflow.State() == enums.CheckoutStateSubmitting {
		return navigator.State{}, pkgerrors.Transition(enums.CheckoutStateSubmitting, "order is already being submitted")
	}
	_ = s.workflow.Reset()

	if err := s.workflow.Begin(target); err != nil {
		switch {
		case pkgerrors.IsCode(err, pkgerrors.CodeNotFound):
			s.lookupMiss(ctx, "checkout.buy_now", target.BookID)
			return s.nav.State(), nil
		case target.Kind == enums.SubjectKindCart && pkgerrors.IsCode(err, pkgerrors.CodeValidation):
			s.logg.Info(s.logCtx(ctx, "checkout.empty_cart"), "cart checkout requested with an empty cart")
			return s.nav.State(), nil
		}
		return navigator.State{}, err
	}

	subject, _ := s.workflow.Subject()
	if err := s.nav.NavigateTo(navigator.Checkout{Subject: &subject}); err != nil {
		_ = s.workflow.Reset()
		return navigator.State{}, err
	}
	logCtx := s.logg.WithFields(s.logCtx(ctx, "checkout.started"), map[string]any{
		"subject": subject.Kind.String(),
		"total":   subject.Total.StringFixed(2),
	})
	s.logg.Info(logCtx, "checkout started")
	return s.nav.State(), nil
}

// Submit validates the checkout form, settles payment and completes the
// order. Validation failures keep the workflow open for a retry. The session
// lock is released while settlement is in flight; a second submit during that
// window is refused with STATE_CONFLICT. Settlement is not cancellable, so the
// wait ignores ctx and the order is always completed once accepted.
func (s *Session) Submit(ctx context.Context, in checkout.Submission) (orders.Order, error) {
	s.mu.Lock()
	req, err := s.workflow.Submit(in)
	if err != nil {
		s.mu.Unlock()
		s.recordRejectedSubmit(ctx, err)
		return orders.Order{}, err
	}
	s.metrics.IncSubmission("accepted")
	logCtx := s.logg.WithFields(s.logCtx(ctx, "checkout.submitted"), map[string]any{
		"subject":        req.Subject.Kind.String(),
		"payment_method": req.PaymentMethod.String(),
		"total":          req.Subject.Total.StringFixed(2),
	})
	s.logg.Info(logCtx, "checkout submitted; settling payment")
	pending := s.settler.Settle(req)
	s.mu.Unlock()

	start := time.Now()
	receipt := <-pending
	s.metrics.ObserveSettlement(time.Since(start))

	s.mu.Lock()
	defer s.mu.Unlock()
	order, err := s.workflow.Complete(receipt)
	if err != nil {
		s.logg.Error(s.logCtx(ctx, "checkout.complete_failed"), "failed to complete settled order", err)
		return orders.Order{}, err
	}
	s.history.Record(order)
	if err := s.nav.NavigateTo(navigator.OrderConfirmation{Order: &order}); err != nil {
		return orders.Order{}, err
	}

	s.metrics.ObserveOrder(order.PaymentMethod.String(), order.SubjectKind.String(), order.Total.InexactFloat64())
	orderCtx := s.logg.WithOrderID(s.logCtx(ctx, "order.completed"), order.ID)
	orderCtx = s.logg.WithFields(orderCtx, map[string]any{
		"total":      order.Total.StringFixed(2),
		"item_count": order.ItemCount(),
	})
	s.logg.Info(orderCtx, "order completed")
	return order, nil
}

func (s *Session) recordRejectedSubmit(ctx context.Context, err error) {
	if pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		s.metrics.IncSubmission("invalid")
		logCtx := s.logCtx(ctx, "checkout.validation_failed")
		if typed := pkgerrors.As(err); typed != nil {
			logCtx = s.logg.WithField(logCtx, "details", typed.Details())
		}
		s.logg.Warn(logCtx, "checkout submission rejected")
		return
	}
	s.metrics.IncSubmission("conflict")
	s.logg.Warn(s.logCtx(ctx, "checkout.submit_conflict"), err.Error())
}

// CancelCheckout abandons an unsubmitted checkout and returns home.
func (s *Session) CancelCheckout(ctx context.Context) (navigator.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.workflow.Reset(); err != nil {
		return navigator.State{}, err
	}
	s.nav.GoHome()
	s.logg.Info(s.logCtx(ctx, "checkout.cancelled"), "checkout cancelled")
	return s.nav.State(), nil
}
