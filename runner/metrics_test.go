package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prizecycle/builder"
	"github.com/katalvlaran/prizecycle/localsearch"
)

func TestMetrics_ObserveRun(t *testing.T) {
	in, err := builder.BuildInstance([]builder.BuilderOption{builder.WithSeed(2)}, builder.Uniform(18))
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	r := New(in, WithMetrics(m), WithWorkers(2))
	results, err := r.Run(context.Background(), []localsearch.Method{localsearch.MethodLM, localsearch.MethodGreedyEdges}, 3)
	require.NoError(t, err)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.descents.WithLabelValues("lm", "ok")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.descents.WithLabelValues("greedy-edges", "ok")))

	var applied, evaluated float64
	for _, res := range results {
		if res.Method == localsearch.MethodLM {
			applied += float64(res.Stats.Applied)
			evaluated += float64(res.Stats.Evaluated)
		}
	}
	assert.Equal(t, applied, testutil.ToFloat64(m.applied.WithLabelValues("lm")))
	assert.Equal(t, evaluated, testutil.ToFloat64(m.evaluated.WithLabelValues("lm")))

	n, err := testutil.GatherAndCount(reg, "prizecycle_descent_duration_seconds", "prizecycle_final_objective")
	require.NoError(t, err)
	assert.Equal(t, 4, n, "one histogram series per method and metric")
}

func TestMetrics_Failed(t *testing.T) {
	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	m.failed("lm")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.descents.WithLabelValues("lm", "error")))
}

func TestMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	var are prometheus.AlreadyRegisteredError
	assert.True(t, errors.As(err, &are), "got %v", err)
}
