package batch

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lvxtal"

// Status label values.
const (
	StatusOK       = "ok"
	StatusFailed   = "failed"
	StatusCanceled = "canceled"
)

// Metrics holds the collectors a Runner updates.
type Metrics struct {
	Phases     *prometheus.CounterVec
	Duration   prometheus.Histogram
	Reflectors prometheus.Counter
	Runs       prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg. Collectors
// already registered by an earlier call are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Phases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "batch",
			Name:      "phases_total",
			Help:      "Phases processed, by outcome.",
		}, []string{"status"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "batch",
			Name:      "compute_duration_seconds",
			Help:      "Time spent building one phase and computing its reflectors.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
		Reflectors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "batch",
			Name:      "reflectors_total",
			Help:      "Reflectors kept across all computed phases.",
		}),
		Runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "batch",
			Name:      "runs_total",
			Help:      "Batch runs started.",
		}),
	}
	var err error
	if m.Phases, err = register(reg, m.Phases); err != nil {
		return nil, err
	}
	if m.Duration, err = register(reg, m.Duration); err != nil {
		return nil, err
	}
	if m.Reflectors, err = register(reg, m.Reflectors); err != nil {
		return nil, err
	}
	if m.Runs, err = register(reg, m.Runs); err != nil {
		return nil, err
	}

	return m, nil
}

// register returns the collector already on reg when c duplicates it.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("NewMetrics: %w", err)
	}

	return c, nil
}

func (m *Metrics) observe(res Result) {
	if m == nil {
		return
	}
	switch {
	case res.Err == nil:
		m.Phases.WithLabelValues(StatusOK).Inc()
		m.Reflectors.Add(float64(len(res.Reflectors)))
		m.Duration.Observe(res.Took.Seconds())
	case res.Canceled:
		m.Phases.WithLabelValues(StatusCanceled).Inc()
	default:
		m.Phases.WithLabelValues(StatusFailed).Inc()
		m.Duration.Observe(res.Took.Seconds())
	}
}
