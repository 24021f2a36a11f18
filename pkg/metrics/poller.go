package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PollCycleMetrics records metadata for monitor poll cycles.
type PollCycleMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewPollCycleMetrics registers the poll metrics on the provided registerer.
func NewPollCycleMetrics(reg prometheus.Registerer) *PollCycleMetrics {
	if reg == nil {
		return &PollCycleMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "poll_cycle_duration_seconds",
		Help:    "Duration of monitor poll cycles in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"monitor"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "poll_cycle_success",
		Help: "Successful monitor poll cycles.",
	}, []string{"monitor"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "poll_cycle_failure",
		Help: "Failed monitor poll cycles.",
	}, []string{"monitor"})
	reg.MustRegister(duration, success, failure)
	return &PollCycleMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named monitor.
func (p *PollCycleMetrics) ObserveDuration(monitor string, duration time.Duration) {
	if p == nil || p.duration == nil {
		return
	}
	p.duration.WithLabelValues(normalizeLabel(monitor)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named monitor.
func (p *PollCycleMetrics) IncSuccess(monitor string) {
	if p == nil || p.success == nil {
		return
	}
	p.success.WithLabelValues(normalizeLabel(monitor)).Inc()
}

// IncFailure increments the failure counter for the named monitor.
func (p *PollCycleMetrics) IncFailure(monitor string) {
	if p == nil || p.failure == nil {
		return
	}
	p.failure.WithLabelValues(normalizeLabel(monitor)).Inc()
}

func normalizeLabel(monitor string) string {
	if monitor == "" {
		return "unknown"
	}
	return monitor
}
