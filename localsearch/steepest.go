package localsearch

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/prizecycle/candidates"
	"github.com/katalvlaran/prizecycle/instance"
	"github.com/katalvlaran/prizecycle/move"
	"github.com/katalvlaran/prizecycle/tour"
)

// Steepest runs full-neighborhood steepest descent from init and returns the
// resulting local optimum. init is not modified.
//
// Each round evaluates every intra pair (i<j) of the flavor's family and every
// substitution (p, v), then applies the single best improving move. The first
// move met with the minimal delta wins.
//
// Contract: init is over the same point universe as in. Panics otherwise.
//
// Complexity: O(k² + k(n−k)) per round.
func Steepest(in *instance.Instance, init *tour.Solution, flavor Flavor, opts ...Option) *tour.Solution {
	mustMatch(in, init)
	cfg := newConfig(opts...)
	engine := "steepest-" + flavor.String()
	sol := init.Clone()
	cfg.logStart(engine, in, sol)

	intra := intraKind(flavor)
	for {
		cfg.stats.Rounds++
		best, ok := scanFull(in, sol, intra, cfg.stats)
		if !ok {
			break
		}
		cfg.apply(sol, best)
	}
	cfg.logDone(engine, in, sol)

	return sol
}

// SteepestCandidates is Steepest with the EdgeExchange flavor restricted to
// moves whose new edges include at least one candidate edge.
//
// Reversal pairs are enumerated from the partner lists of each position's
// node and of its successor, so a round costs O(k·c) evaluations for an
// average of c partners per node. Pairs reached twice are evaluated once.
// Ties are resolved in the same order as Steepest.
//
// The catalog comes from WithCandidates or is built with WithCandidateCount.
func SteepestCandidates(in *instance.Instance, init *tour.Solution, opts ...Option) *tour.Solution {
	mustMatch(in, init)
	cfg := newConfig(opts...)
	const engine = "steepest-candidates"
	cat := cfg.neighbors(in)
	sol := init.Clone()
	cfg.logStart(engine, in, sol)

	sc := newCandidateScan(sol.Len(), in.N())
	for {
		cfg.stats.Rounds++
		best, ok := sc.best(in, sol, cat, cfg.stats)
		if !ok {
			break
		}
		cfg.apply(sol, best)
	}
	cfg.logDone(engine, in, sol)

	return sol
}

// scanFull returns the best improving move of the full neighborhood in scan
// order, or ok=false when none improves.
func scanFull(in *instance.Instance, sol *tour.Solution, intra move.Kind, st *Stats) (best move.Move, ok bool) {
	var (
		k    = sol.Len()
		n    = sol.N()
		i, j int
		v    int
		d    int64
	)
	for i = 0; i < k; i++ {
		for j = i + 1; j < k; j++ {
			d = intraDelta(in, sol, intra, i, j)
			st.Evaluated++
			if d < best.Delta {
				best = move.Move{Kind: intra, I: i, J: j, Delta: d}
				ok = true
			}
		}
	}
	for i = 0; i < k; i++ {
		for v = 0; v < n; v++ {
			if sol.Contains(v) {
				continue
			}
			d = move.SubstitutionDelta(in, sol, i, v)
			st.Evaluated++
			if d < best.Delta {
				best = move.Move{Kind: move.Substitute, I: i, Node: v, Delta: d}
				ok = true
			}
		}
	}

	return best, ok
}

// candidateScan holds the stamp buffers that deduplicate candidate moves
// within one round. A slot is "seen" when it carries the current stamp.
type candidateScan struct {
	k     int
	pairs []uint32 // k×k, indexed lo*k+hi
	nodes []uint32 // n, per substitution position
	gen   uint32
	mark  uint32
}

func newCandidateScan(k, n int) *candidateScan {
	return &candidateScan{
		k:     k,
		pairs: make([]uint32, k*k),
		nodes: make([]uint32, n),
	}
}

// best returns the best improving candidate move, or ok=false.
func (s *candidateScan) best(in *instance.Instance, sol *tour.Solution, cat *candidates.Catalog, st *Stats) (best move.Move, ok bool) {
	var (
		k    = s.k
		i, q int
		w    int
	)
	s.gen++
	for i = 0; i < k; i++ {
		// New edge (s[i], s[j]): partner w of s[i] sits at j.
		for _, w = range cat.Partners(sol.At(i)) {
			if q = sol.Position(w); q != tour.Absent {
				s.tryReversal(in, sol, i, q, st, &best, &ok)
			}
		}
		// New edge (s[i+1], s[j+1]): partner w of s[i+1] sits at j+1.
		for _, w = range cat.Partners(sol.At(sol.Next(i))) {
			if q = sol.Position(w); q != tour.Absent {
				s.tryReversal(in, sol, i, sol.Prev(q), st, &best, &ok)
			}
		}
	}

	for i = 0; i < k; i++ {
		s.mark++
		if k == 1 {
			// No edges exist to restrict by.
			for w = 0; w < sol.N(); w++ {
				if !sol.Contains(w) {
					s.trySubstitution(in, sol, i, w, st, &best, &ok)
				}
			}
			continue
		}
		for _, w = range cat.Partners(sol.At(sol.Prev(i))) {
			s.trySubstitution(in, sol, i, w, st, &best, &ok)
		}
		for _, w = range cat.Partners(sol.At(sol.Next(i))) {
			s.trySubstitution(in, sol, i, w, st, &best, &ok)
		}
	}

	return best, ok
}

func (s *candidateScan) tryReversal(in *instance.Instance, sol *tour.Solution, a, b int, st *Stats, best *move.Move, ok *bool) {
	if a > b {
		a, b = b, a
	}
	if a == b || a+1 == b || (b+1)%s.k == a {
		return
	}
	slot := a*s.k + b
	if s.pairs[slot] == s.gen {
		return
	}
	s.pairs[slot] = s.gen

	m := move.Move{Kind: move.Reverse, I: a, J: b, Delta: move.ReversalDelta(in, sol, a, b)}
	st.Evaluated++
	if better(m, *best) {
		*best, *ok = m, true
	}
}

func (s *candidateScan) trySubstitution(in *instance.Instance, sol *tour.Solution, p, v int, st *Stats, best *move.Move, ok *bool) {
	if sol.Contains(v) || s.nodes[v] == s.mark {
		return
	}
	s.nodes[v] = s.mark

	m := move.Move{Kind: move.Substitute, I: p, Node: v, Delta: move.SubstitutionDelta(in, sol, p, v)}
	st.Evaluated++
	if better(m, *best) {
		*best, *ok = m, true
	}
}

// better reports whether m should replace best: a lower delta wins, equal
// negative deltas fall back to the full-scan order.
func better(m, best move.Move) bool {
	if m.Delta != best.Delta {
		return m.Delta < best.Delta
	}

	return m.Delta < 0 && precedes(m, best)
}

// precedes orders moves as the full scan meets them: intra pairs first, then
// substitutions, each by position and then by second operand.
func precedes(a, b move.Move) bool {
	ra, rb := scanRank(a.Kind), scanRank(b.Kind)
	if ra != rb {
		return ra < rb
	}
	if a.I != b.I {
		return a.I < b.I
	}
	if a.Kind == move.Substitute {
		return a.Node < b.Node
	}

	return a.J < b.J
}

func scanRank(k move.Kind) int {
	if k == move.Substitute {
		return 1
	}

	return 0
}

func intraKind(f Flavor) move.Kind {
	switch f {
	case NodeExchange:
		return move.Swap
	case EdgeExchange:
		return move.Reverse
	default:
		panic(fmt.Sprintf("localsearch: unknown flavor %d", uint8(f)))
	}
}

func intraDelta(in *instance.Instance, sol *tour.Solution, kind move.Kind, i, j int) int64 {
	if kind == move.Swap {
		return move.SwapDelta(in, sol, i, j)
	}

	return move.ReversalDelta(in, sol, i, j)
}

func mustMatch(in *instance.Instance, sol *tour.Solution) {
	if sol.N() != in.N() {
		panic(fmt.Sprintf("localsearch: solution over %d points, instance has %d", sol.N(), in.N()))
	}
}

// logStart and logDone compute the objective only when Debug is enabled.
func (c *config) logStart(engine string, in *instance.Instance, sol *tour.Solution) {
	if ce := c.logger.Check(zapcore.DebugLevel, "descent started"); ce != nil {
		ce.Write(
			zap.String("engine", engine),
			zap.Int("n", in.N()),
			zap.Int("k", sol.Len()),
			zap.Int64("objective", move.Objective(in, sol)),
		)
	}
}

func (c *config) logDone(engine string, in *instance.Instance, sol *tour.Solution) {
	if ce := c.logger.Check(zapcore.DebugLevel, "descent converged"); ce != nil {
		ce.Write(
			zap.String("engine", engine),
			zap.Int("rounds", c.stats.Rounds),
			zap.Int("applied", c.stats.Applied),
			zap.Int64("evaluated", c.stats.Evaluated),
			zap.Int64("objective", move.Objective(in, sol)),
		)
	}
}
