// Package metrics provides Prometheus metrics for the progression engine:
// recomputation throughput, XP/level state, awards, claims, and storage
// failures.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Recomputation ──────────────────────────────────────────────────────────

// Recomputations counts full engine recomputation passes.
var Recomputations = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "ptab",
	Name:      "recomputations_total",
	Help:      "Total engine recomputation passes.",
})

// RecomputeDuration tracks recomputation duration in seconds.
var RecomputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "ptab",
	Name:      "recompute_duration_seconds",
	Help:      "Engine recomputation duration in seconds.",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
})

// ─── Profile State ──────────────────────────────────────────────────────────

// TotalXP tracks the current total XP across all pools.
var TotalXP = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "ptab",
	Name:      "total_xp",
	Help:      "Current total XP across all pools.",
})

// Level tracks the current level.
var Level = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "ptab",
	Name:      "level",
	Help:      "Current level.",
})

// CurrentStreak tracks the current productivity streak in days.
var CurrentStreak = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "ptab",
	Name:      "current_streak_days",
	Help:      "Current productivity streak in days.",
})

// ─── Awards & Claims ────────────────────────────────────────────────────────

// AwardsGranted counts first-time XP grants by kind (mission, achievement).
var AwardsGranted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ptab",
	Name:      "awards_granted_total",
	Help:      "First-time XP awards credited through the ledger.",
}, []string{"kind"})

// ClaimsTotal counts successful periodic bonus claims by kind.
var ClaimsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ptab",
	Name:      "claims_total",
	Help:      "Successful periodic bonus claims.",
}, []string{"kind"})

// ─── Storage ────────────────────────────────────────────────────────────────

// StorageErrors counts storage read/write failures by operation.
var StorageErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ptab",
	Name:      "storage_errors_total",
	Help:      "Storage read/write failures.",
}, []string{"op"})
