package checkout

import (
	"strings"
	"time"

	"github.com/booknest/storefront/internal/cart"
	"github.com/booknest/storefront/internal/orders"
	"github.com/booknest/storefront/pkg/enums"
	pkgerrors "github.com/booknest/storefront/pkg/errors"
	"github.com/booknest/storefront/pkg/validation"
)

// Submission is the checkout form.
type Submission struct {
	Customer      orders.CustomerDetails `json:"customer"`
	PaymentMethod string                 `json:"payment_method" validate:"notblank"`
}

// Workflow walks one purchase through Idle, Entering, Submitting and
// Completed. It is not safe for concurrent use: the owning session holds a
// lock around every call and releases it only while a settlement is in
// flight, which the Submitting state already guards.
type Workflow struct {
	books  cart.BookFinder
	ledger *cart.Ledger
	ids    *orders.IDGenerator
	now    func() time.Time

	state   enums.CheckoutState
	subject *Subject
	pending *Settlement
	order   *orders.Order
}

func NewWorkflow(books cart.BookFinder, ledger *cart.Ledger, ids *orders.IDGenerator, now func() time.Time) *Workflow {
	if now == nil {
		now = time.Now
	}
	if ids == nil {
		ids = orders.NewIDGenerator(now)
	}
	return &Workflow{
		books:  books,
		ledger: ledger,
		ids:    ids,
		now:    now,
		state:  enums.CheckoutStateIdle,
	}
}

func (w *Workflow) State() enums.CheckoutState {
	return w.state
}

// Subject returns the current purchase subject, if any.
func (w *Workflow) Subject() (Subject, bool) {
	if w.subject == nil {
		return Subject{}, false
	}
	return w.subject.clone(), true
}

// Order returns the completed order, if the workflow reached Completed.
func (w *Workflow) Order() (orders.Order, bool) {
	if w.order == nil {
		return orders.Order{}, false
	}
	return w.order.Clone(), true
}

// Begin moves Idle to Entering with the given target as the subject.
func (w *Workflow) Begin(target Target) error {
	if w.state != enums.CheckoutStateIdle {
		return pkgerrors.Transition(w.state, "checkout already in progress")
	}

	switch target.Kind {
	case enums.SubjectKindBook:
		book, ok := w.books.FindByID(target.BookID)
		if !ok {
			return pkgerrors.New(pkgerrors.CodeNotFound, "book not found")
		}
		subject := bookSubject(book)
		w.subject = &subject
	case enums.SubjectKindCart:
		if w.ledger.IsEmpty() {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}
		subject := cartSubject(w.ledger.Snapshot())
		w.subject = &subject
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown checkout target")
	}

	w.state = enums.CheckoutStateEntering
	return nil
}

// Submit validates the form. Failures leave the workflow in Entering so the
// caller may correct and retry. On success the workflow moves to Submitting
// and the returned settlement must be passed to a Settler, then Complete.
func (w *Workflow) Submit(in Submission) (Settlement, error) {
	switch w.state {
	case enums.CheckoutStateEntering:
	case enums.CheckoutStateSubmitting:
		return Settlement{}, pkgerrors.Transition(w.state, "order is already being submitted")
	default:
		return Settlement{}, pkgerrors.Transition(w.state, "no checkout in progress")
	}

	method, err := validateSubmission(in)
	if err != nil {
		return Settlement{}, err
	}

	subject := *w.subject
	if subject.Kind == enums.SubjectKindCart {
		// Re-read so the order reflects the ledger at the moment of submission.
		if w.ledger.IsEmpty() {
			return Settlement{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}
		subject = cartSubject(w.ledger.Snapshot())
		w.subject = &subject
	}

	req := Settlement{
		Subject:       subject.clone(),
		Customer:      trimCustomer(in.Customer),
		PaymentMethod: method,
	}
	w.pending = &req
	w.state = enums.CheckoutStateSubmitting
	return req, nil
}

// Complete finishes a settled submission, builds the order and, when the
// cart was the subject, takes the purchased lines off the cart.
func (w *Workflow) Complete(receipt Receipt) (orders.Order, error) {
	if w.state != enums.CheckoutStateSubmitting || w.pending == nil {
		return orders.Order{}, pkgerrors.Transition(w.state, "no submission awaiting settlement")
	}

	req := *w.pending
	placedAt := w.now()
	order := orders.Order{
		ID:               w.ids.Next(),
		SubjectKind:      req.Subject.Kind,
		Items:            itemsFor(req.Subject),
		Customer:         req.Customer,
		PaymentMethod:    req.PaymentMethod,
		PaymentReference: receipt.Reference,
		OrderDate:        placedAt.Format(orders.DateLayout),
		PlacedAt:         placedAt,
		Total:            req.Subject.Total,
		Status:           enums.OrderStatusProcessing,
	}
	if req.Subject.Book != nil {
		book := *req.Subject.Book
		order.Book = &book
	}

	if req.Subject.Kind == enums.SubjectKindCart && req.Subject.Cart != nil {
		w.ledger.Deduct(req.Subject.Cart.Lines)
	}

	w.order = &order
	w.pending = nil
	w.state = enums.CheckoutStateCompleted
	return order.Clone(), nil
}

// Reset returns to Idle and discards the subject and any completed order.
// It is refused while a settlement is in flight.
func (w *Workflow) Reset() error {
	if w.state == enums.CheckoutStateSubmitting {
		return pkgerrors.Transition(w.state, "cannot cancel while payment is settling")
	}
	w.state = enums.CheckoutStateIdle
	w.subject = nil
	w.pending = nil
	w.order = nil
	return nil
}

func validateSubmission(in Submission) (enums.PaymentMethod, error) {
	if err := validation.Struct(in); err != nil {
		return "", err
	}
	method, err := enums.ParsePaymentMethod(strings.TrimSpace(in.PaymentMethod))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed").
			WithDetails(map[string]string{"payment_method": "must be one of " + joinMethods()})
	}
	return method, nil
}

func joinMethods() string {
	methods := enums.PaymentMethods()
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}

func trimCustomer(c orders.CustomerDetails) orders.CustomerDetails {
	return orders.CustomerDetails{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.TrimSpace(c.Email),
		Phone:   strings.TrimSpace(c.Phone),
		Address: strings.TrimSpace(c.Address),
		City:    strings.TrimSpace(c.City),
		Pincode: strings.TrimSpace(c.Pincode),
	}
}

func itemsFor(subject Subject) []orders.Item {
	if subject.Book != nil {
		b := subject.Book
		return []orders.Item{{
			BookID:   b.ID,
			Title:    b.Title,
			Author:   b.Author,
			ImageRef: b.ImageRef,
			Price:    b.Price,
			Quantity: 1,
		}}
	}
	if subject.Cart == nil {
		return nil
	}
	items := make([]orders.Item, 0, len(subject.Cart.Lines))
	for _, line := range subject.Cart.Lines {
		items = append(items, orders.Item{
			BookID:   line.BookID,
			Title:    line.Title,
			Author:   line.Author,
			ImageRef: line.ImageRef,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}
	return items
}
