package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values of gridpath_searches_finished_total.
const (
	OutcomeFound     = "found"
	OutcomeExhausted = "exhausted"
	OutcomeAborted   = "aborted"
)

type metrics struct {
	started     *prometheus.CounterVec
	steps       *prometheus.CounterVec
	finished    *prometheus.CounterVec
	widenings   prometheus.Counter
	generations *prometheus.CounterVec
	runSteps    *prometheus.HistogramVec
}

// newMetrics registers the session collectors on reg. Registering twice on
// the same registerer panics, as promauto does.
func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		started: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_searches_started_total",
			Help: "Total searches started by algorithm",
		}, []string{"algorithm"}),
		steps: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_search_steps_total",
			Help: "Total search steps by algorithm",
		}, []string{"algorithm"}),
		finished: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_searches_finished_total",
			Help: "Total searches finished by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		widenings: f.NewCounter(prometheus.CounterOpts{
			Name: "gridpath_corridor_widenings_total",
			Help: "Total A* corridor widenings",
		}),
		generations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_generations_total",
			Help: "Total board generations by generator",
		}, []string{"generator"}),
		runSteps: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_run_steps",
			Help:    "Steps taken by finished searches",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14), // 1 to 8192
		}, []string{"algorithm"}),
	}
}
