package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.mongodb.org/mongo-driver/event"
)

var (
	// MongoCommandsTotal counts driver commands by name and outcome
	MongoCommandsTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mongo_commands_total",
			Help:      "Total number of MongoDB commands issued by the driver",
		},
		[]string{"command", "status"},
	)

	// MongoCommandDuration records command round-trip latency in seconds
	MongoCommandDuration = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mongo_command_duration_seconds",
			Help:      "MongoDB command latency in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"command"},
	)

	// MongoConnectionsOpen tracks open connections in the driver pool
	MongoConnectionsOpen = promauto.With(Registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mongo_connections_open",
			Help:      "Current number of open connections in the driver pool",
		},
	)
)

// MongoCommandMonitor returns a driver event monitor that feeds the
// command counters and latency histogram. Attach it via
// options.Client().SetMonitor.
func MongoCommandMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(_ context.Context, evt *event.CommandSucceededEvent) {
			MongoCommandsTotal.WithLabelValues(evt.CommandName, "success").Inc()
			MongoCommandDuration.WithLabelValues(evt.CommandName).Observe(evt.Duration.Seconds())
		},
		Failed: func(_ context.Context, evt *event.CommandFailedEvent) {
			MongoCommandsTotal.WithLabelValues(evt.CommandName, "error").Inc()
			MongoCommandDuration.WithLabelValues(evt.CommandName).Observe(evt.Duration.Seconds())
		},
	}
}

// MongoPoolMonitor returns a pool event monitor that keeps the open
// connection gauge current.
func MongoPoolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			switch evt.Type {
			case event.ConnectionCreated:
				MongoConnectionsOpen.Inc()
			case event.ConnectionClosed:
				MongoConnectionsOpen.Dec()
			}
		},
	}
}
