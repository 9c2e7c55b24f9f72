// Package metrics defines the Prometheus instrumentation for the plan
// pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PlanRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fireplan_plan_requests_total",
			Help: "Total number of plan requests by outcome",
		},
		[]string{"outcome"},
	)

	PlanFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fireplan_plan_failures_total",
			Help: "Total number of failed plan requests by failure category",
		},
		[]string{"category"},
	)

	UpstreamDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fireplan_upstream_duration_seconds",
			Help:    "Duration of calls to the AI provider in seconds",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
	)

	WealthFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fireplan_wealth_fallbacks_total",
			Help: "Times current wealth had to be derived from the profile because the AI response omitted it",
		},
	)
)
