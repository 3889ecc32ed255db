package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	roomMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "homestay",
			Name:      "room_mutations_total",
			Help:      "Count of admin room mutations by operation and backend.",
		},
		[]string{"operation", "backend"},
	)

	bookingDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "homestay",
			Name:      "booking_decisions_total",
			Help:      "Count of booking requests by outcome (accepted, conflict).",
		},
		[]string{"outcome"},
	)

	mirrorRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "homestay",
			Name:      "snapshot_mirror_total",
			Help:      "Count of database-to-file mirror attempts by result.",
		},
		[]string{"result"},
	)

	fallbackReads = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "homestay",
			Name:      "fallback_reads_total",
			Help:      "Count of reads served from the snapshot after a database error.",
		},
	)

	activeBackend = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "homestay",
			Name:      "active_backend",
			Help:      "1 for the backend currently serving requests.",
		},
		[]string{"backend"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(roomMutations, bookingDecisions, mirrorRuns, fallbackReads, activeBackend)
	})
}

func IncRoomMutation(operation, backend string) {
	roomMutations.WithLabelValues(operation, backend).Inc()
}

func IncBookingDecision(outcome string) {
	bookingDecisions.WithLabelValues(outcome).Inc()
}

func IncMirror(ok bool) {
	result := "ok"
	if !ok {
		result = "failed"
	}
	mirrorRuns.WithLabelValues(result).Inc()
}

func IncFallbackRead() {
	fallbackReads.Inc()
}

func SetActiveBackend(backend string) {
	activeBackend.Reset()
	activeBackend.WithLabelValues(backend).Set(1)
}
