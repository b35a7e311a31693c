package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	reservationCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "reservaciones",
			Name:      "reservation_created_total",
			Help:      "Count of reservations created.",
		},
	)

	reservationUpdated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "reservaciones",
			Name:      "reservation_updated_total",
			Help:      "Count of reservations updated.",
		},
	)

	reservationDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "reservaciones",
			Name:      "reservation_deleted_total",
			Help:      "Count of reservations deleted.",
		},
	)

	dateConflict = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reservaciones",
			Name:      "date_conflict_total",
			Help:      "Count of rejected writes targeting an occupied date, by operation.",
		},
		[]string{"op"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(reservationCreated, reservationUpdated, reservationDeleted, dateConflict)
	})
}

func IncReservationCreated() {
	reservationCreated.Inc()
}

func IncReservationUpdated() {
	reservationUpdated.Inc()
}

func IncReservationDeleted() {
	reservationDeleted.Inc()
}

func IncDateConflict(op string) {
	dateConflict.WithLabelValues(op).Inc()
}
