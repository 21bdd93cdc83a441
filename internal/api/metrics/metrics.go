// Package metrics defines and registers all custom Prometheus metrics for the
// background-check API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backcheck"

// SigninsTotal counts signin attempts.
// Label:
//   - result: "success" or "failure"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of signin attempts, labelled by result.",
	},
	[]string{"result"},
)

// CandidatesCreatedTotal counts newly created candidates.
var CandidatesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "candidates_created_total",
		Help:      "Total number of candidates created.",
	},
)

// CandidatesDeletedTotal counts candidate deletions, including their cascaded
// reports and court searches.
var CandidatesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "candidates_deleted_total",
		Help:      "Total number of candidates deleted.",
	},
)

// ReportsCreatedTotal counts report creation attempts.
// Label:
//   - result: "success", "conflict" (candidate already has a report), or "error"
var ReportsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_created_total",
		Help:      "Total number of report creation attempts, labelled by result.",
	},
	[]string{"result"},
)

// CourtSearchesCreatedTotal counts newly created court searches.
var CourtSearchesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "court_searches_created_total",
		Help:      "Total number of court searches created.",
	},
)
