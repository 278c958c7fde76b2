package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: prometheus.DefBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	BoxesOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBoxesOpened,
			Help: HelpTextBoxesOpened,
		},
		[]string{LabelTier},
	)

	RewardsDrawn = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsDrawn,
			Help: HelpTextRewardsDrawn,
		},
		[]string{LabelRarity},
	)

	ItemsSold = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
	)

	MoneyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
	)

	CooldownBlocks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCooldownBlocks,
			Help: HelpTextCooldownBlocks,
		},
	)

	SlotsSpins = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSlotsSpins,
			Help: HelpTextSlotsSpins,
		},
	)

	SlotsWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSlotsWagered,
			Help: HelpTextSlotsWagered,
		},
	)

	SlotsPaidOut = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSlotsPaidOut,
			Help: HelpTextSlotsPaidOut,
		},
	)
)

// RecordBoxOpened counts one opened box and its drawn rarity
func RecordBoxOpened(tier, rarity string) {
	BoxesOpened.WithLabelValues(tier).Inc()
	RewardsDrawn.WithLabelValues(rarity).Inc()
}

// RecordSale counts items sold and money credited
func RecordSale(count, value int) {
	ItemsSold.Add(float64(count))
	MoneyEarned.Add(float64(value))
}

// RecordPurchase counts money spent on a box
func RecordPurchase(price int) {
	MoneySpent.Add(float64(price))
}

// RecordSlotsSpin counts one settled spin with its wager and payout
func RecordSlotsSpin(bet, winnings int) {
	SlotsSpins.Inc()
	SlotsWagered.Add(float64(bet))
	SlotsPaidOut.Add(float64(winnings))
}
