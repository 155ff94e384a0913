package observability

import "github.com/prometheus/client_golang/prometheus"

// CheckoutMetrics holds the instruments the checkout service records.
type CheckoutMetrics struct {
	Purchases        *prometheus.CounterVec
	PurchaseDuration prometheus.Histogram
	CartAdditions    *prometheus.CounterVec
}

// NewCheckoutMetrics builds and registers the checkout instruments on reg,
// falling back to the default registerer when reg is nil.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &CheckoutMetrics{
		Purchases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_purchases_total",
				Help: "Total number of purchase attempts by outcome.",
			},
			[]string{"outcome"},
		),
		PurchaseDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "checkout_purchase_duration_seconds",
				Help:    "Duration of purchase processing in seconds.",
				Buckets: prometheus.DefBuckets,
			},
		),
		CartAdditions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_cart_additions_total",
				Help: "Total number of cart additions by outcome.",
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(m.Purchases, m.PurchaseDuration, m.CartAdditions)
	return m
}
