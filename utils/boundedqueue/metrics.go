package boundedqueue

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	pushCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "corekit",
			Subsystem: "bounded_queue",
			Name:      "push_total",
			Help:      "Total number of elements pushed into bounded queues",
		})

	popCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "corekit",
			Subsystem: "bounded_queue",
			Name:      "pop_total",
			Help:      "Total number of elements popped from bounded queues",
		})

	dropCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "corekit",
			Subsystem: "bounded_queue",
			Name:      "drop_total",
			Help:      "Total number of elements dropped by the overwrite policy",
		})

	rejectCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "corekit",
			Subsystem: "bounded_queue",
			Name:      "reject_total",
			Help:      "Total number of pushes rejected on a full queue",
		})
)

// InitMetrics registers the queue counters with the given registry.
func InitMetrics(registry *prometheus.Registry) {
	registry.MustRegister(pushCounter)
	registry.MustRegister(popCounter)
	registry.MustRegister(dropCounter)
	registry.MustRegister(rejectCounter)
}
