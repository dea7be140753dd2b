package metrics

import "github.com/prometheus/client_golang/prometheus"

// CheckoutMetrics records counters for the checkout pipeline.
type CheckoutMetrics struct {
	checkouts    *prometheus.CounterVec
	pointsEarned prometheus.Counter
	itemIssues   *prometheus.CounterVec
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkouts_total",
		Help: "Checkout attempts partitioned by outcome.",
	}, []string{"outcome"})
	pointsEarned := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "points_earned_total",
		Help: "Total loyalty points granted across checkouts.",
	})
	itemIssues := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_item_issues_total",
		Help: "Per-item checkout issues partitioned by kind.",
	}, []string{"kind"})
	reg.MustRegister(checkouts, pointsEarned, itemIssues)
	return &CheckoutMetrics{
		checkouts:    checkouts,
		pointsEarned: pointsEarned,
		itemIssues:   itemIssues,
	}
}

// IncCheckout increments the checkout counter for the given outcome label.
func (c *CheckoutMetrics) IncCheckout(outcome string) {
	if c == nil || c.checkouts == nil {
		return
	}
	c.checkouts.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// AddPointsEarned adds the granted points to the running total.
func (c *CheckoutMetrics) AddPointsEarned(points int) {
	if c == nil || c.pointsEarned == nil || points <= 0 {
		return
	}
	c.pointsEarned.Add(float64(points))
}

// IncItemIssue increments the per-item issue counter for the given kind.
func (c *CheckoutMetrics) IncItemIssue(kind string) {
	if c == nil || c.itemIssues == nil {
		return
	}
	c.itemIssues.WithLabelValues(normalizeLabel(kind)).Inc()
}

func normalizeLabel(label string) string {
	if label == "" {
		return "unknown"
	}
	return label
}
