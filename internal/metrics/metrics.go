// Package metrics exposes Prometheus counters for navigation and the mentor chat.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Mentor request outcomes.
const (
	OutcomeOK            = "ok"
	OutcomeFallback      = "fallback"
	OutcomeRejectedEmpty = "rejected_empty"
	OutcomeRejectedBusy  = "rejected_busy"
	OutcomeDiscarded     = "discarded"
)

// Recorder is what the API surface reports into.
type Recorder interface {
	RecordTransition(kind string)
	RecordMentor(outcome string)
	RecordMentorLatency(d time.Duration)
}

// Collector is the Prometheus implementation of Recorder.
type Collector struct {
	transitions   *prometheus.CounterVec
	mentor        *prometheus.CounterVec
	mentorLatency prometheus.Histogram
}

// NewCollector creates a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sinaw_navigation_transitions_total",
			Help: "Navigation transitions by effect on the history stack.",
		}, []string{"kind"}),
		mentor: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sinaw_mentor_requests_total",
			Help: "Mentor chat sends by outcome.",
		}, []string{"outcome"}),
		mentorLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sinaw_mentor_latency_seconds",
			Help:    "Time spent waiting for a mentor reply.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(c.transitions, c.mentor, c.mentorLatency)
	return c
}

func (c *Collector) RecordTransition(kind string) {
	c.transitions.WithLabelValues(kind).Inc()
}

func (c *Collector) RecordMentor(outcome string) {
	c.mentor.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordMentorLatency(d time.Duration) {
	c.mentorLatency.Observe(d.Seconds())
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordTransition(string)           {}
func (Nop) RecordMentor(string)               {}
func (Nop) RecordMentorLatency(time.Duration) {}
