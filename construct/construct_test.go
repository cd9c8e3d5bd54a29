package construct_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prizecycle/construct"
	"github.com/katalvlaran/prizecycle/instance"
)

func lineInstance(t *testing.T, xs []int64, cost []int64) *instance.Instance {
	t.Helper()
	pts := make([]instance.Point, len(xs))
	for i := range xs {
		pts[i] = instance.Point{X: xs[i], Cost: cost[i]}
	}
	in, err := instance.FromPoints(pts)
	require.NoError(t, err)

	return in
}

func TestRandom_ShapeAndDeterminism(t *testing.T) {
	in := lineInstance(t, []int64{0, 1, 2, 3, 4, 5, 6}, make([]int64, 7))

	a, err := construct.Random(in, 3, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	require.NoError(t, a.Validate())
	assert.Equal(t, in.K(), a.Len())
	assert.Equal(t, 3, a.At(0))

	b, err := construct.Random(in, 3, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := construct.Random(in, 3, nil)
	require.NoError(t, err)
	d, err := construct.Random(in, 3, nil)
	require.NoError(t, err)
	assert.True(t, c.Equal(d))
}

func TestRandom_StartOutOfRange(t *testing.T) {
	in := lineInstance(t, []int64{0, 1}, []int64{0, 0})
	_, err := construct.Random(in, 2, nil)
	require.ErrorIs(t, err, construct.ErrStartOutOfRange)
	_, err = construct.Random(in, -1, nil)
	require.ErrorIs(t, err, construct.ErrStartOutOfRange)
}

func TestWeightedRegret_HandComputed(t *testing.T) {
	// From [0 1]: node 2 inserts for 2 on either edge, node 3 for 4, the far
	// pair for 18 or more. Node 2 goes in after position 0.
	in := lineInstance(t, []int64{0, 1, 2, 3, 10, 11}, make([]int64, 6))

	sol, err := construct.WeightedRegret(in, 0, construct.DefaultRegretWeight, construct.DefaultBestWeight)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, sol.Nodes())
}

func TestWeightedRegret_SecondNodeUsesCost(t *testing.T) {
	// Node 1 is nearest to 0 but its cost makes 2 the cheaper second node.
	in := lineInstance(t, []int64{0, 1, 2, 50}, []int64{0, 100, 0, 0})

	sol, err := construct.WeightedRegret(in, 0, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, sol.Nodes())
}

func TestWeightedRegret_ValidOnRandomInstances(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for _, n := range []int{1, 2, 3, 10, 33} {
		pts := make([]instance.Point, n)
		for i := range pts {
			pts[i] = instance.Point{X: r.Int63n(500), Y: r.Int63n(500), Cost: r.Int63n(100)}
		}
		in, err := instance.FromPoints(pts)
		require.NoError(t, err)

		for _, w := range [][2]float64{{1, 1}, {0, 1}, {1, 0}, {2, 0.5}} {
			sol, err := construct.WeightedRegret(in, n-1, w[0], w[1])
			require.NoError(t, err)
			require.NoError(t, sol.Validate())
			assert.Equal(t, in.K(), sol.Len())
			assert.Equal(t, n-1, sol.At(0))
		}
	}
}

func TestWeightedRegret_Errors(t *testing.T) {
	in := lineInstance(t, []int64{0, 1, 2}, []int64{0, 0, 0})

	_, err := construct.WeightedRegret(in, 3, 1, 1)
	require.ErrorIs(t, err, construct.ErrStartOutOfRange)
	for _, w := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err = construct.WeightedRegret(in, 0, w, 1)
		require.ErrorIs(t, err, construct.ErrInvalidWeight)
		_, err = construct.WeightedRegret(in, 0, 1, w)
		require.ErrorIs(t, err, construct.ErrInvalidWeight)
	}
}

func TestBuildAndParseStrategy(t *testing.T) {
	in := lineInstance(t, []int64{0, 1, 2, 3}, make([]int64, 4))
	for _, name := range []string{"random", "regret"} {
		s, err := construct.ParseStrategy(name)
		require.NoError(t, err)
		sol, err := construct.Build(s, in, 0, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, sol.Len())
	}
	_, err := construct.ParseStrategy("nearest")
	require.ErrorIs(t, err, construct.ErrUnknownStrategy)
	_, err = construct.Build("nearest", in, 0, nil)
	require.ErrorIs(t, err, construct.ErrUnknownStrategy)
}
