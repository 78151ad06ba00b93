package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Storefront records shopper activity across cart, wishlist and checkout.
type Storefront struct {
	cartEvents      *prometheus.CounterVec
	wishlistToggles *prometheus.CounterVec
	submissions     *prometheus.CounterVec
	ordersPlaced    *prometheus.CounterVec
	orderValue      *prometheus.CounterVec
	settlement      prometheus.Histogram
	sessions        prometheus.Gauge
}

// NewStorefront registers the storefront metrics on the provided registerer.
// A nil registerer yields a recorder whose methods are no-ops.
func NewStorefront(reg prometheus.Registerer) *Storefront {
	if reg == nil {
		return &Storefront{}
	}
	cartEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "booknest_cart_events_total",
		Help: "Cart ledger mutations by action.",
	}, []string{"action"})
	wishlistToggles := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "booknest_wishlist_toggles_total",
		Help: "Wishlist toggles by resulting membership.",
	}, []string{"state"})
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "booknest_checkout_submissions_total",
		Help: "Checkout submissions by outcome.",
	}, []string{"result"})
	ordersPlaced := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "booknest_orders_placed_total",
		Help: "Completed orders by payment method and subject.",
	}, []string{"payment_method", "subject"})
	orderValue := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "booknest_order_value_total",
		Help: "Sum of completed order totals.",
	}, []string{"payment_method"})
	settlement := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "booknest_settlement_duration_seconds",
		Help:    "Duration of simulated payment settlement.",
		Buckets: prometheus.DefBuckets,
	})
	sessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "booknest_active_sessions",
		Help: "Shopper sessions currently held in memory.",
	})
	reg.MustRegister(cartEvents, wishlistToggles, submissions, ordersPlaced, orderValue, settlement, sessions)
	return &Storefront{
		cartEvents:      cartEvents,
		wishlistToggles: wishlistToggles,
		submissions:     submissions,
		ordersPlaced:    ordersPlaced,
		orderValue:      orderValue,
		settlement:      settlement,
		sessions:        sessions,
	}
}

func (s *Storefront) IncCartEvent(action string) {
	if s == nil || s.cartEvents == nil {
		return
	}
	s.cartEvents.WithLabelValues(normalizeLabel(action)).Inc()
}

func (s *Storefront) IncWishlistToggle(inWishlist bool) {
	if s == nil || s.wishlistToggles == nil {
		return
	}
	state := "removed"
	if inWishlist {
		state = "added"
	}
	s.wishlistToggles.WithLabelValues(state).Inc()
}

// IncSubmission counts a checkout submit attempt; result is accepted, invalid or conflict.
func (s *Storefront) IncSubmission(result string) {
	if s == nil || s.submissions == nil {
		return
	}
	s.submissions.WithLabelValues(normalizeLabel(result)).Inc()
}

func (s *Storefront) ObserveOrder(paymentMethod, subject string, total float64) {
	if s == nil || s.ordersPlaced == nil {
		return
	}
	s.ordersPlaced.WithLabelValues(normalizeLabel(paymentMethod), normalizeLabel(subject)).Inc()
	s.orderValue.WithLabelValues(normalizeLabel(paymentMethod)).Add(total)
}

func (s *Storefront) ObserveSettlement(duration time.Duration) {
	if s == nil || s.settlement == nil {
		return
	}
	s.settlement.Observe(duration.Seconds())
}

func (s *Storefront) SetActiveSessions(n int) {
	if s == nil || s.sessions == nil {
		return
	}
	s.sessions.Set(float64(n))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
