// Package metrics registers the panel's Prometheus metrics with the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "panel"

// LoginAttempts counts login checks.
// Labels:
//   - step: "password" or "admin_key"
//   - result: "success", or the failure kind (e.g. "mismatch", "not_admin", "store_unavailable")
var LoginAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login checks, by step and result.",
	},
	[]string{"step", "result"},
)

// DBReconnects counts explicit reconnects of the game database.
var DBReconnects = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "db_reconnects_total",
		Help:      "Total number of game database reconnects, by result.",
	},
	[]string{"result"},
)

// DBConnected is 1 while the pool holds an open handle.
var DBConnected = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "db_connected",
		Help:      "Whether the panel currently holds a game database connection.",
	},
)
