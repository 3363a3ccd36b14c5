// Package metrics defines and registers all custom Prometheus metrics for the
// energy system API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "energy"

// RegistrationsTotal counts successfully created user accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of users registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// AppliancesCreatedTotal counts appliances added to accounts.
// Label:
//   - type: the appliance type (e.g. "ac", "fridge")
var AppliancesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appliances_created_total",
		Help:      "Total number of appliances created, labelled by type.",
	},
	[]string{"type"},
)

// ApplianceTogglesTotal counts appliance control operations.
// Label:
//   - action: "ON" or "OFF"
var ApplianceTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appliance_toggles_total",
		Help:      "Total number of appliance control actions, labelled by action.",
	},
	[]string{"action"},
)
