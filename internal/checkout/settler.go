package checkout

import (
	"time"

	"github.com/booknest/storefront/internal/orders"
	"github.com/booknest/storefront/pkg/enums"
	"github.com/google/uuid"
)

// Settlement is the payment request handed to a Settler once a submission
// passes validation.
type Settlement struct {
	Subject       Subject
	Customer      orders.CustomerDetails
	PaymentMethod enums.PaymentMethod
}

// Receipt is the outcome of a settled payment.
type Receipt struct {
	Reference string
	SettledAt time.Time
}

// Settler settles a payment asynchronously. The returned channel yields
// exactly one receipt and is then closed. Settlement cannot be cancelled.
type Settler interface {
	Settle(req Settlement) <-chan Receipt
}

// SimulatedSettler stands in for a payment provider: it always succeeds after
// a fixed delay.
type SimulatedSettler struct {
	delay time.Duration
	now   func() time.Time
}

func NewSimulatedSettler(delay time.Duration) *SimulatedSettler {
	if delay < 0 {
		delay = 0
	}
	return &SimulatedSettler{delay: delay, now: time.Now}
}

func (s *SimulatedSettler) Settle(Settlement) <-chan Receipt {
	out := make(chan Receipt, 1)
	go func() {
		defer close(out)
		if s.delay > 0 {
			timer := time.NewTimer(s.delay)
			<-timer.C
		}
		out <- Receipt{
			Reference: uuid.NewString(),
			SettledAt: s.now(),
		}
	}()
	return out
}
