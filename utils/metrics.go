package utils

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricsOnce sync.Once

	// ReservationsTotal counts successful slot reservations.
	ReservationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "brightstart",
		Name:      "reservations_total",
		Help:      "Successful slot reservations.",
	})

	// ReservationConflictsTotal counts reserve attempts that lost the
	// conditional update (slot already booked or missing).
	ReservationConflictsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "brightstart",
		Name:      "reservation_conflicts_total",
		Help:      "Reserve attempts rejected because the slot was unavailable.",
	})

	// CancellationsTotal counts appointment cancellations with slot release.
	CancellationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "brightstart",
		Name:      "cancellations_total",
		Help:      "Cancelled appointments.",
	})

	// ReconciliationFailuresTotal counts writes that left the store needing
	// manual reconciliation (failed compensating delete or slot release).
	ReconciliationFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "brightstart",
		Name:      "reconciliation_failures_total",
		Help:      "Operations that left inconsistent state for manual reconciliation.",
	})
)

// RegisterMetrics registers Prometheus metrics. Safe to call multiple times.
func RegisterMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(
			ReservationsTotal,
			ReservationConflictsTotal,
			CancellationsTotal,
			ReconciliationFailuresTotal,
		)
	})
}
