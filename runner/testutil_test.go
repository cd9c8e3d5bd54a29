package runner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prizecycle/builder"
	"github.com/katalvlaran/prizecycle/instance"
)

// uniformInstance returns n seeded points with costs in [0,200].
func uniformInstance(t testing.TB, n int, seed int64) *instance.Instance {
	t.Helper()
	in, err := builder.BuildInstance(
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithArea(1000, 1000), builder.WithUniformCost(0, 200)},
		builder.Uniform(n),
	)
	require.NoError(t, err)

	return in
}
