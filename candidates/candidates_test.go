package candidates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prizecycle/candidates"
	"github.com/katalvlaran/prizecycle/instance"
)

// lineInstance places n points on a line at x=0..n-1 with the given costs.
func lineInstance(t *testing.T, cost []int64) *instance.Instance {
	t.Helper()
	pts := make([]instance.Point, len(cost))
	for i := range pts {
		pts[i] = instance.Point{X: int64(i), Cost: cost[i]}
	}
	in, err := instance.FromPoints(pts)
	require.NoError(t, err)

	return in
}

func TestBuild_OrderAndTies(t *testing.T) {
	in := lineInstance(t, []int64{0, 0, 0, 0, 0})
	c := candidates.Build(in, 2)

	assert.Equal(t, 2, c.K())
	assert.Equal(t, 5, c.N())
	assert.Equal(t, []int{1, 2}, c.Nearest(0))
	// Points 1 and 3 tie at distance 1 from 2; the lower index wins.
	assert.Equal(t, []int{1, 3}, c.Nearest(2))
	assert.Equal(t, []int{3, 2}, c.Nearest(4))
}

func TestBuild_CostShiftsRanking(t *testing.T) {
	// Point 1 is closest to 0 but very expensive.
	in := lineInstance(t, []int64{0, 100, 0, 0})
	c := candidates.Build(in, 2)

	assert.Equal(t, []int{2, 3}, c.Nearest(0))
}

func TestBuild_ClampsK(t *testing.T) {
	in := lineInstance(t, []int64{1, 2, 3})
	c := candidates.Build(in, 50)

	assert.Equal(t, 2, c.K())
	for i := 0; i < 3; i++ {
		assert.Len(t, c.Nearest(i), 2)
		assert.NotContains(t, c.Nearest(i), i)
	}
}

func TestBuild_PanicsOnNonPositiveK(t *testing.T) {
	in := lineInstance(t, []int64{0, 0})
	assert.Panics(t, func() { candidates.Build(in, 0) })
}

func TestIsCandidateEdge_Symmetric(t *testing.T) {
	in := lineInstance(t, []int64{0, 0, 0, 0, 0, 0, 0})
	c := candidates.Build(in, 1)

	// 6's nearest is 5, 5's nearest is 4: {5,6} is candidate from 6's side only.
	assert.True(t, c.IsCandidateEdge(6, 5))
	assert.True(t, c.IsCandidateEdge(5, 6))
	assert.False(t, c.IsCandidateEdge(0, 6))
	assert.False(t, c.IsCandidateEdge(6, 0))

	for a := 0; a < in.N(); a++ {
		for b := 0; b < in.N(); b++ {
			if a == b {
				continue
			}
			want := false
			for _, x := range c.Nearest(a) {
				want = want || x == b
			}
			for _, x := range c.Nearest(b) {
				want = want || x == a
			}
			assert.Equal(t, want, c.IsCandidateEdge(a, b), "edge {%d,%d}", a, b)
		}
	}
}

func TestPartners_UnionSorted(t *testing.T) {
	in := lineInstance(t, []int64{0, 0, 0, 0, 0, 0, 0})
	c := candidates.Build(in, 1)

	// Out-list of 5 is {4}; 6 names 5 in its list.
	assert.Equal(t, []int{4, 6}, c.Partners(5))
	for i := 0; i < in.N(); i++ {
		for _, j := range c.Partners(i) {
			assert.True(t, c.IsCandidateEdge(i, j))
		}
	}
}
