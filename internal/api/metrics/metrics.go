// Package metrics defines and registers all custom Prometheus metrics for the
// request management API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default registry via promauto; the
// router exposes them at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "request_system"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully registered accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created through self-registration.",
	},
)

// RequestsCreatedTotal counts newly created funding requests.
// Label:
//   - type: "degree", "certification", "training", or "other"
var RequestsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_created_total",
		Help:      "Total number of requests created, by request type.",
	},
	[]string{"type"},
)

// RequestsApprovedTotal counts approve transitions that succeeded.
var RequestsApprovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_approved_total",
		Help:      "Total number of requests approved.",
	},
)

// RequestsDisapprovedTotal counts disapprove transitions that succeeded.
var RequestsDisapprovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_disapproved_total",
		Help:      "Total number of requests disapproved.",
	},
)
