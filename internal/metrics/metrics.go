// Package metrics defines the custom Prometheus metrics of the home-services
// directory. All metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric of the service.
const Namespace = "homeservices"

// ── Favorites ─────────────────────────────────────────────────────────────────

// FavoriteTogglesTotal counts completed toggle attempts.
// Label:
//   - result: "added", "removed", "offline", "failed" or "error"
var FavoriteTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "favorite_toggles_total",
		Help:      "Total number of favorite toggle attempts, by outcome.",
	},
	[]string{"result"},
)

// FavoriteToggleDuration measures a toggle from submission to result,
// including time spent queued behind other toggles of the same provider.
var FavoriteToggleDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "favorite_toggle_duration_seconds",
		Help:      "Duration of favorite toggles including queueing and simulated latency.",
		Buckets:   []float64{.05, .1, .25, .3, .5, 1, 2.5, 5},
	},
)

// ── Directory ─────────────────────────────────────────────────────────────────

// ProvidersRegisteredTotal counts provider self-registrations.
var ProvidersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "providers_registered_total",
		Help:      "Total number of providers registered, by service category.",
	},
	[]string{"service_type"},
)

// ReviewsSubmittedTotal counts accepted reviews.
var ReviewsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "reviews_submitted_total",
		Help:      "Total number of reviews submitted, by star rating.",
	},
	[]string{"rating"},
)

// ── Reminders ─────────────────────────────────────────────────────────────────

// Reminders tracks scheduled reminders as of the last sweep.
// Label:
//   - state: "upcoming" or "past"
var Reminders = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "reminders",
		Help:      "Number of stored reminders by state, refreshed by the reminder sweep.",
	},
	[]string{"state"},
)

// ── Infrastructure ────────────────────────────────────────────────────────────

// SnapshotWriteErrorsTotal counts snapshot writes that failed and were dropped.
var SnapshotWriteErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "snapshot_write_errors_total",
		Help:      "Total number of failed snapshot writes, by storage key.",
	},
	[]string{"key"},
)

// ToastsPublishedTotal counts toasts by type.
var ToastsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "toasts_published_total",
		Help:      "Total number of toasts published, by type.",
	},
	[]string{"type"},
)

// DispatcherQueueDepth tracks jobs waiting in each dispatcher worker channel.
var DispatcherQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "dispatcher_queue_depth",
		Help:      "Current number of jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
