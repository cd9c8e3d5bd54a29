// Package localsearch_test — shared fixtures and neighborhood checkers.
//
// Policy:
//   - Fixed seeds only; every fixture is reproducible.
//   - Checkers rescan a neighborhood from scratch through the move package,
//     never through the engine under test.
package localsearch_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prizecycle/candidates"
	"github.com/katalvlaran/prizecycle/instance"
	"github.com/katalvlaran/prizecycle/localsearch"
	"github.com/katalvlaran/prizecycle/move"
	"github.com/katalvlaran/prizecycle/tour"
)

// seedDet is the fixed seed used by deterministic fixtures.
const seedDet int64 = 42

// pointsInstance scatters n points in a 1000×1000 square with costs in
// [0,300), rounded Euclidean distances.
func pointsInstance(t testing.TB, n int, seed int64) *instance.Instance {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	pts := make([]instance.Point, n)
	for i := range pts {
		pts[i] = instance.Point{X: r.Int63n(1000), Y: r.Int63n(1000), Cost: r.Int63n(300)}
	}
	in, err := instance.FromPoints(pts)
	require.NoError(t, err)

	return in
}

// randomTour selects K random nodes in random order.
func randomTour(in *instance.Instance, seed int64) *tour.Solution {
	r := rand.New(rand.NewSource(seed))

	return tour.MustNew(in.N(), r.Perm(in.N())[:in.K()])
}

// crossingInstance is a non-metric 4-point instance whose tour 0→1→2→3
// crosses: {0,1} and {2,3} are long, every other edge is short.
func crossingInstance(t testing.TB) *instance.Instance {
	t.Helper()
	in, err := instance.New([][]int64{
		{0, 10, 1, 1},
		{10, 0, 1, 1},
		{1, 1, 0, 10},
		{1, 1, 10, 0},
	}, []int64{0, 0, 0, 0})
	require.NoError(t, err)

	return in
}

// singleSubstitutionInstance has unit distances, so only costs matter: from
// [0 1 2] the one improving move replaces 2 (cost 5) with 5 (cost 1).
func singleSubstitutionInstance(t testing.TB) *instance.Instance {
	t.Helper()
	const n = 6
	dist := make([][]int64, n)
	for i := range dist {
		dist[i] = make([]int64, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = 1
			}
		}
	}
	in, err := instance.New(dist, []int64{0, 0, 5, 9, 9, 1})
	require.NoError(t, err)

	return in
}

// requireLocalOptimum fails if any intra move of the given family or any
// substitution improves sol.
func requireLocalOptimum(t *testing.T, in *instance.Instance, sol *tour.Solution, intra move.Kind) {
	t.Helper()
	k := sol.Len()
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			m := move.Move{Kind: intra, I: i, J: j}
			require.GreaterOrEqual(t, move.Evaluate(in, sol, m), int64(0), "improving %s", m)
		}
		for v := 0; v < in.N(); v++ {
			if !sol.Contains(v) {
				require.GreaterOrEqual(t, move.SubstitutionDelta(in, sol, i, v), int64(0), "improving substitute(%d,%d)", i, v)
			}
		}
	}
}

// requireCandidateLocalOptimum fails if any reversal or substitution that
// creates a candidate edge improves sol.
func requireCandidateLocalOptimum(t *testing.T, in *instance.Instance, sol *tour.Solution, cat *candidates.Catalog) {
	t.Helper()
	k := sol.Len()
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			m := move.Move{Kind: move.Reverse, I: i, J: j}
			if !createsCandidate(sol, cat, m) {
				continue
			}
			require.GreaterOrEqual(t, move.Evaluate(in, sol, m), int64(0), "improving %s", m)
		}
		for v := 0; v < in.N(); v++ {
			m := move.Move{Kind: move.Substitute, I: i, Node: v}
			if sol.Contains(v) || !createsCandidate(sol, cat, m) {
				continue
			}
			require.GreaterOrEqual(t, move.Evaluate(in, sol, m), int64(0), "improving %s", m)
		}
	}
}

func createsCandidate(sol *tour.Solution, cat *candidates.Catalog, m move.Move) bool {
	e1, e2, ok := move.NewEdges(sol, m)

	return ok && (cat.IsCandidateEdge(e1[0], e1[1]) || cat.IsCandidateEdge(e2[0], e2[1]))
}

// intraFor returns the intra family a method searches.
func intraFor(m localsearch.Method) move.Kind {
	if m == localsearch.MethodSteepestNodes || m == localsearch.MethodGreedyNodes {
		return move.Swap
	}

	return move.Reverse
}

// isCandidateMethod reports whether m restricts moves to candidate edges.
func isCandidateMethod(m localsearch.Method) bool {
	return m == localsearch.MethodSteepestCandidates || m == localsearch.MethodLMCandidates
}
