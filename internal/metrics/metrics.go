package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Database lifecycle metrics
var (
	// DatabaseClientsCreated counts Mongo client constructions; more than one
	// per process means the shared client was shut down and rebuilt.
	DatabaseClientsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "database_clients_created_total",
			Help: "Total MongoDB client handles constructed",
		},
	)

	// DatabaseAcquiresTotal counts database handle acquisitions
	DatabaseAcquiresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "database_acquires_total",
			Help: "Total database handle acquisitions",
		},
	)

	// DatabaseShutdownsTotal counts client disconnects (no-op shutdowns excluded)
	DatabaseShutdownsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "database_shutdowns_total",
			Help: "Total MongoDB client disconnects",
		},
	)

	// DatabaseOpDuration tracks latency of database operations issued by handlers
	DatabaseOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "database_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"operation"},
	)
)
