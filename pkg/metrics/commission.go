package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Duration of a full rating/tier recalculation pass
	RecalculationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "commission_recalculation_duration_seconds",
		Help:    "Duration of the full commission recalculation pass",
		Buckets: prometheus.DefBuckets,
	})

	// Orders rejected by the monthly limit gate
	OrderLimitRejections = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "order_limit_rejections_total",
		Help: "Total orders rejected by the monthly order-limit gate",
	})

	// Verified commission payments applied
	CommissionPaymentsRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "commission_payments_recorded_total",
		Help: "Total verified commission payments applied",
	})
)

func Init() {
	prometheus.MustRegister(
		RecalculationDuration,
		OrderLimitRejections,
		CommissionPaymentsRecorded,
	)
}
