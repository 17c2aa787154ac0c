// Package metrics defines and registers all custom Prometheus metrics for the
// AIS map position API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on import and
// exposed on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ais_map"

// Query labels.
const (
	QueryByVessel = "by_vessel"
	QueryFleet    = "fleet"
)

// Result labels.
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts handled requests.
// Labels:
//   - method: HTTP method
//   - route: the matched route pattern (e.g. "/ship/:id"), not the raw path
//   - code: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests, by method, route and status code.",
	},
	[]string{"method", "route", "code"},
)

// HTTPRequestDuration measures request latency per route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests, by method and route.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"method", "route"},
)

// ── Report query metrics ──────────────────────────────────────────────────────

// ReportQueriesTotal counts report lookups.
// Labels:
//   - query: "by_vessel" or "fleet"
//   - result: "found", "not_found" or "error"
var ReportQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_queries_total",
		Help:      "Total number of position report queries, by query and result.",
	},
	[]string{"query", "result"},
)

// ReportQueryDuration measures the database round trip of each query.
var ReportQueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_query_duration_seconds",
		Help:      "Duration of position report queries against MongoDB.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"query"},
)

// FleetSnapshotSize tracks how many vessels the last fleet snapshot returned.
var FleetSnapshotSize = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "fleet_snapshot_size",
		Help:      "Number of vessels returned by the most recent fleet snapshot.",
	},
)
