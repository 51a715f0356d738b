// Package metrics defines the custom Prometheus collectors of the COGIP API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Collectors are created unregistered; call MustRegister once at startup with
// the registry served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cogip"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthDecisionsTotal counts authorization decisions taken by the middleware.
// Label:
//   - outcome: "permitted", "forbidden", "missing", "malformed", "expired" or "error"
var AuthDecisionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_decisions_total",
		Help:      "Total number of authorization decisions, by outcome.",
	},
	[]string{"outcome"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "throttled" or "error"
var LoginsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Record metrics ────────────────────────────────────────────────────────────

// RecordsCreatedTotal counts records created through the API.
// Label:
//   - entity: "company", "contact", "invoice" or "user"
var RecordsCreatedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of records created, by entity.",
	},
	[]string{"entity"},
)

// StoreErrorsTotal counts failed store operations.
// Labels:
//   - entity: the record type involved
//   - op:     "create", "list" or "lookup"
var StoreErrorsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_errors_total",
		Help:      "Total number of failed store operations.",
	},
	[]string{"entity", "op"},
)

// MustRegister registers every collector with reg. It panics on duplicate registration.
func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		AuthDecisionsTotal,
		LoginsTotal,
		RecordsCreatedTotal,
		StoreErrorsTotal,
	)
}
