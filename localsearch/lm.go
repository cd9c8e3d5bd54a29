package localsearch

import (
	"cmp"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/prizecycle/candidates"
	"github.com/katalvlaran/prizecycle/instance"
	"github.com/katalvlaran/prizecycle/move"
	"github.com/katalvlaran/prizecycle/tour"
)

// SteepestLM runs EdgeExchange steepest descent over a cached list of
// improving moves instead of rescanning the neighborhood every round.
//
// Entries are keyed by edge identities, not positions, so they survive moves
// elsewhere in the tour. At consumption an entry is:
//   - dropped when one of its edges is gone or its incoming node is selected;
//   - skipped when both edges exist but are traversed in opposite directions
//     relative to what the entry assumes (it may apply after a later flip);
//   - applied otherwise.
//
// After each move only the touched positions (both ends of every changed edge
// and their neighbors) are re-paired against all positions, and the evicted
// node of a substitution is offered back at every position. The result is a
// local optimum of the EdgeExchange neighborhood.
//
// Contract: as Steepest.
func SteepestLM(in *instance.Instance, init *tour.Solution, opts ...Option) *tour.Solution {
	mustMatch(in, init)
	cfg := newConfig(opts...)

	return runLM(in, init, nil, cfg, "lm")
}

// SteepestLMCandidates is SteepestLM that only ever inserts moves creating at
// least one candidate edge. The catalog is resolved as in SteepestCandidates.
func SteepestLMCandidates(in *instance.Instance, init *tour.Solution, opts ...Option) *tour.Solution {
	mustMatch(in, init)
	cfg := newConfig(opts...)

	return runLM(in, init, cfg.neighbors(in), cfg, "lm-candidates")
}

// entry is one cached move. A reversal replaces edges a1→b1 and a2→b2, both
// traversed in the same direction, with {a1,a2} and {b1,b2}. A substitution
// stores its neighborhood as a1→b1→b2 with a2 == b1 and puts node at b1.
// A non-negative delta marks the entry dead.
type entry struct {
	delta          int64
	kind           move.Kind
	a1, b1, a2, b2 int
	node           int
}

// compareEntries is the catalog order and so the tie-break among equal
// deltas: reversals before substitutions, then the smaller edge key.
func compareEntries(x, y entry) int {
	if c := cmp.Compare(x.delta, y.delta); c != 0 {
		return c
	}
	if c := cmp.Compare(x.kind, y.kind); c != 0 {
		return c
	}
	if c := cmp.Compare(x.a1, y.a1); c != 0 {
		return c
	}
	if c := cmp.Compare(x.b1, y.b1); c != 0 {
		return c
	}
	if c := cmp.Compare(x.a2, y.a2); c != 0 {
		return c
	}
	if c := cmp.Compare(x.b2, y.b2); c != 0 {
		return c
	}

	return cmp.Compare(x.node, y.node)
}

type verdict uint8

const (
	verdictApply verdict = iota
	verdictDrop
	verdictSkip
)

// lmState owns the catalog and the solution of one SteepestLM call.
type lmState struct {
	in      *instance.Instance
	sol     *tour.Solution
	filter  *candidates.Catalog // nil: unrestricted
	cfg     *config
	entries []entry // live catalog, sorted
	fresh   []entry // generated since the last merge
	scratch []entry
	touched []int
}

func runLM(in *instance.Instance, init *tour.Solution, filter *candidates.Catalog, cfg *config, engine string) *tour.Solution {
	s := &lmState{
		in:     in,
		sol:    init.Clone(),
		filter: filter,
		cfg:    cfg,
	}
	cfg.logStart(engine, in, s.sol)

	k := s.sol.Len()
	var i, j int
	for i = 0; i < k; i++ {
		for j = 0; j < k; j++ {
			s.addReversals(i, j, true)
		}
		s.addSubstitutions(i)
	}
	s.merge()

	for {
		cfg.stats.Rounds++
		e, forward, ok := s.next()
		if !ok {
			break
		}
		s.apply(e, forward)
		s.merge()
	}

	if ce := cfg.logger.Check(zapcore.DebugLevel, "move catalog drained"); ce != nil {
		ce.Write(
			zap.String("engine", engine),
			zap.Int64("inserted", cfg.stats.Inserted),
			zap.Int64("dropped", cfg.stats.Dropped),
			zap.Int64("skipped", cfg.stats.Skipped),
			zap.Int("remaining", len(s.entries)),
		)
	}
	cfg.logDone(engine, in, s.sol)

	return s.sol
}

// next scans the catalog in ascending order and returns the first applicable
// entry, marking it dead. Stale entries met on the way are marked dead too.
func (s *lmState) next() (entry, bool, bool) {
	var idx int
	for idx = range s.entries {
		e := &s.entries[idx]
		if e.delta >= 0 {
			continue
		}
		v, forward := s.check(e)
		switch v {
		case verdictDrop:
			e.delta = 0
			s.cfg.stats.Dropped++
		case verdictSkip:
			s.cfg.stats.Skipped++
		case verdictApply:
			chosen := *e
			e.delta = 0

			return chosen, forward, true
		}
	}

	return entry{}, false, false
}

// check re-derives the validity of e against the current tour. forward
// reports the direction both reversal edges are traversed in.
func (s *lmState) check(e *entry) (verdict, bool) {
	ex1, f1 := s.sol.Edge(e.a1, e.b1)
	ex2, f2 := s.sol.Edge(e.a2, e.b2)
	if !ex1 || !ex2 {
		return verdictDrop, false
	}
	if e.kind == move.Substitute {
		if s.sol.Contains(e.node) {
			return verdictDrop, false
		}

		return verdictApply, false
	}
	if f1 != f2 {
		return verdictSkip, false
	}

	return verdictApply, f1
}

// apply performs e and queues the regenerated moves.
func (s *lmState) apply(e entry, forward bool) {
	sol := s.sol
	s.touched = s.touched[:0]

	if e.kind == move.Substitute {
		p := sol.Position(e.b1)
		s.cfg.apply(sol, move.Move{Kind: move.Substitute, I: p, Node: e.node, Delta: e.delta})
		s.touch(sol.Prev(p), p, sol.Next(p))
		s.regenerate()
		// e.b1 is unselected again; offer it back everywhere.
		s.addInsertions(e.b1)

		return
	}

	var p, q int
	if forward {
		p, q = sol.Position(e.a1), sol.Position(e.a2)
	} else {
		p, q = sol.Position(e.b1), sol.Position(e.b2)
	}
	if p > q {
		p, q = q, p
	}
	s.cfg.apply(sol, move.Move{Kind: move.Reverse, I: p, J: q, Delta: e.delta})
	s.touch(sol.Prev(p), p, sol.Next(p), sol.Prev(q), q, sol.Next(q))
	s.regenerate()
}

func (s *lmState) touch(ps ...int) {
	for _, p := range ps {
		if !slices.Contains(s.touched, p) {
			s.touched = append(s.touched, p)
		}
	}
}

// regenerate pairs every touched position with every position, without the
// symmetry skip of the initial scan.
func (s *lmState) regenerate() {
	k := s.sol.Len()
	var j int
	for _, t := range s.touched {
		for j = 0; j < k; j++ {
			s.addReversals(t, j, false)
		}
		s.addSubstitutions(t)
	}
}

// addReversals queues both reconnections of the edges leaving positions i and
// j. With symmetric set, the pair is only taken from the side whose node id is
// lower.
func (s *lmState) addReversals(i, j int, symmetric bool) {
	sol := s.sol
	if i == j || sol.Next(i) == j || sol.Next(j) == i {
		return
	}
	var (
		u = sol.At(i)
		v = sol.At(sol.Next(i))
		x = sol.At(j)
		y = sol.At(sol.Next(j))
	)
	if symmetric && u > x {
		return
	}
	in := s.in
	removed := in.Dist(u, v) + in.Dist(x, y)
	s.cfg.stats.Evaluated += 2

	// u→v, x→y: new edges {u,x}, {v,y}.
	if d := in.Dist(u, x) + in.Dist(v, y) - removed; d < 0 && s.allowsReversal(u, x, v, y) {
		s.pushReversal(u, v, x, y, d)
	}
	// u→v, y→x: new edges {u,y}, {v,x}.
	if d := in.Dist(u, y) + in.Dist(v, x) - removed; d < 0 && s.allowsReversal(u, y, v, x) {
		s.pushReversal(u, v, y, x, d)
	}
}

// addSubstitutions queues every improving substitution at position p.
func (s *lmState) addSubstitutions(p int) {
	var (
		sol = s.sol
		n   = sol.N()
		v   int
	)
	for v = 0; v < n; v++ {
		if !sol.Contains(v) {
			s.addSubstitution(p, v)
		}
	}
}

// addInsertions queues every improving substitution of v, at any position.
func (s *lmState) addInsertions(v int) {
	var (
		k = s.sol.Len()
		p int
	)
	for p = 0; p < k; p++ {
		s.addSubstitution(p, v)
	}
}

func (s *lmState) addSubstitution(p, v int) {
	sol := s.sol
	d := move.SubstitutionDelta(s.in, sol, p, v)
	s.cfg.stats.Evaluated++
	if d >= 0 {
		return
	}
	prev, cur, next := sol.At(sol.Prev(p)), sol.At(p), sol.At(sol.Next(p))
	if !s.allowsSubstitution(prev, next, v) {
		return
	}
	if prev > next {
		prev, next = next, prev
	}
	s.fresh = append(s.fresh, entry{
		delta: d,
		kind:  move.Substitute,
		a1:    prev,
		b1:    cur,
		a2:    cur,
		b2:    next,
		node:  v,
	})
}

// pushReversal queues the reversal replacing a1→b1, a2→b2 in its canonical
// form: the least of the four equivalent encodings (swap the edges, flip both
// directions).
func (s *lmState) pushReversal(a1, b1, a2, b2 int, d int64) {
	forms := [4][4]int{
		{a1, b1, a2, b2},
		{a2, b2, a1, b1},
		{b1, a1, b2, a2},
		{b2, a2, b1, a1},
	}
	best := forms[0]
	for _, f := range forms[1:] {
		if slices.Compare(f[:], best[:]) < 0 {
			best = f
		}
	}
	s.fresh = append(s.fresh, entry{
		delta: d,
		kind:  move.Reverse,
		a1:    best[0],
		b1:    best[1],
		a2:    best[2],
		b2:    best[3],
		node:  tour.Absent,
	})
}

func (s *lmState) allowsReversal(p1, q1, p2, q2 int) bool {
	return s.filter == nil || s.filter.IsCandidateEdge(p1, q1) || s.filter.IsCandidateEdge(p2, q2)
}

func (s *lmState) allowsSubstitution(prev, next, v int) bool {
	if s.filter == nil || s.sol.Len() == 1 {
		return true
	}

	return s.filter.IsCandidateEdge(prev, v) || s.filter.IsCandidateEdge(v, next)
}

// merge sorts the fresh entries and merges them into the catalog, dropping
// dead entries and exact duplicates in the same pass.
//
// Complexity: O(L + m log m) for L live and m fresh entries.
func (s *lmState) merge() {
	slices.SortFunc(s.fresh, compareEntries)

	out := s.scratch[:0]
	push := func(e entry, isFresh bool) {
		if e.delta >= 0 {
			return
		}
		if len(out) > 0 && compareEntries(out[len(out)-1], e) == 0 {
			return
		}
		out = append(out, e)
		if isFresh {
			s.cfg.stats.Inserted++
		}
	}

	var i, j int
	for i < len(s.entries) && j < len(s.fresh) {
		if s.entries[i].delta >= 0 {
			// Marked dead by next; its key no longer sorts.
			i++
			continue
		}
		if compareEntries(s.entries[i], s.fresh[j]) <= 0 {
			push(s.entries[i], false)
			i++
		} else {
			push(s.fresh[j], true)
			j++
		}
	}
	for ; i < len(s.entries); i++ {
		push(s.entries[i], false)
	}
	for ; j < len(s.fresh); j++ {
		push(s.fresh[j], true)
	}

	s.scratch = s.entries[:0]
	s.entries = out
	s.fresh = s.fresh[:0]
}
