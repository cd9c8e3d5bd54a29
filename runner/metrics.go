package runner

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "prizecycle"

// Metrics holds the Prometheus collectors of a Runner. All series are
// labelled by method.
type Metrics struct {
	descents  *prometheus.CounterVec
	applied   *prometheus.CounterVec
	evaluated *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	objective *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg. Registering
// twice on one registry fails with prometheus.AlreadyRegisteredError.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		descents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "descents_total",
			Help:      "Descents finished, by method and status.",
		}, []string{"method", "status"}),
		applied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "moves_applied_total",
			Help:      "Improving moves applied.",
		}, []string{"method"}),
		evaluated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "delta_evaluations_total",
			Help:      "Move deltas evaluated.",
		}, []string{"method"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "descent_duration_seconds",
			Help:      "Wall time of one construction plus descent.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"method"}),
		objective: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "final_objective",
			Help:      "Objective of the descent result.",
			Buckets:   prometheus.ExponentialBuckets(1000, 2, 12),
		}, []string{"method"}),
	}

	for _, c := range []prometheus.Collector{m.descents, m.applied, m.evaluated, m.duration, m.objective} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("runner: register metrics: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) observe(res Result) {
	method := string(res.Method)
	m.descents.WithLabelValues(method, "ok").Inc()
	m.applied.WithLabelValues(method).Add(float64(res.Stats.Applied))
	m.evaluated.WithLabelValues(method).Add(float64(res.Stats.Evaluated))
	m.duration.WithLabelValues(method).Observe(res.Elapsed.Seconds())
	m.objective.WithLabelValues(method).Observe(float64(res.Final))
}

func (m *Metrics) failed(method string) {
	m.descents.WithLabelValues(method, "error").Inc()
}
