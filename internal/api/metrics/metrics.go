// Package metrics defines and registers all custom Prometheus metrics for the
// Venity gateway. It is the single source of truth for metric names, labels,
// and help strings; metrics register themselves with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "venity"

// ── Backend call metrics ──────────────────────────────────────────────────────

// BackendCallsTotal counts remote function invocations against the backend.
// Labels:
//   - function: the function path (e.g. "users:login", "products:list")
//   - result: "ok", "error" (function threw) or "transport" (call never completed)
var BackendCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_calls_total",
		Help:      "Total number of backend function invocations, by function and result.",
	},
	[]string{"function", "result"},
)

// BackendCallDuration measures the wall time of a single backend call.
// Label:
//   - function: the function path
var BackendCallDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_call_duration_seconds",
		Help:      "Duration of backend function calls, request to decoded response.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"function"},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// CacheTotal counts product list cache lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (backend read)
var CacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_cache_total",
		Help:      "Total number of product list cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthFailuresTotal counts requests rejected by the auth gate.
// Label:
//   - reason: "missing_header", "malformed_header" or "invalid_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected before reaching a handler, by reason.",
	},
	[]string{"reason"},
)
