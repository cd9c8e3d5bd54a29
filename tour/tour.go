// Package tour — the mutable cyclic solution representation.
//
// A Solution is an ordered cycle of k distinct point indices out of n. The
// successor of the last position is the first one. Alongside the sequence it
// owns two derived structures that every mutator keeps consistent:
//   - in[v]  — membership mask over all n points;
//   - pos[v] — inverse index, position of v in the sequence or Absent.
//
// Mutation is exclusively through two primitives:
//   - Reverse(a, b)    — segment reversal (2-opt edge exchange);
//   - Substitute(p, v) — replace the node at p with an unselected node.
//
// Swap(i, j) is provided for the node-exchange neighborhood and is composed of
// two reversals, so it never bypasses the primitives.
//
// Design:
//   - Fixed-capacity slice with explicit modulo arithmetic for Next/Prev.
//   - O(1) position lookup through pos; O(span) reversal; O(1) substitution.
//   - Precondition violations are programming errors and panic; the only
//     error-returning entry point is New, which receives external data.
package tour

import (
	"fmt"
	"strings"
)

// Absent is the position of a point that is not in the solution.
const Absent = -1

// Solution is a cyclic tour over a subset of {0..n-1}. Its length is not
// tied to the instance: constructions and runners build tours of exactly
// ⌈n/2⌉ nodes, and the descents keep whatever length they are given.
type Solution struct {
	seq []int
	in  []bool
	pos []int
}

// New validates seq against n and returns a Solution owning a copy of it.
//
// Contract: 1 ≤ len(seq) ≤ n, every element in [0,n), no duplicates. New
// does not require len(seq) == ⌈n/2⌉; enforcing the selection size is left
// to the code that builds tours for an instance (see construct).
//
// Complexity: O(n).
func New(n int, seq []int) (*Solution, error) {
	if n <= 0 || len(seq) == 0 {
		return nil, ErrEmpty
	}
	if len(seq) > n {
		return nil, fmt.Errorf("len=%d, n=%d: %w", len(seq), n, ErrTooLong)
	}

	s := &Solution{
		seq: make([]int, len(seq)),
		in:  make([]bool, n),
		pos: make([]int, n),
	}
	var i, v int
	for i = 0; i < n; i++ {
		s.pos[i] = Absent
	}
	for i, v = range seq {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("seq[%d]=%d: %w", i, v, ErrOutOfRange)
		}
		if s.in[v] {
			return nil, fmt.Errorf("seq[%d]=%d: %w", i, v, ErrDuplicate)
		}
		s.seq[i] = v
		s.in[v] = true
		s.pos[v] = i
	}

	return s, nil
}

// MustNew is New for inputs known to be valid (tests, constructions).
// It panics on error.
func MustNew(n int, seq []int) *Solution {
	s, err := New(n, seq)
	if err != nil {
		panic("tour: " + err.Error())
	}

	return s
}

// Len returns k, the number of selected points.
func (s *Solution) Len() int { return len(s.seq) }

// N returns the size of the point universe.
func (s *Solution) N() int { return len(s.in) }

// At returns the node at position p.
func (s *Solution) At(p int) int { return s.seq[p] }

// Next returns the position following p on the cycle.
func (s *Solution) Next(p int) int {
	p++
	if p == len(s.seq) {
		return 0
	}

	return p
}

// Prev returns the position preceding p on the cycle.
func (s *Solution) Prev(p int) int {
	if p == 0 {
		return len(s.seq) - 1
	}

	return p - 1
}

// Contains reports whether node v is selected.
func (s *Solution) Contains(v int) bool { return s.in[v] }

// Position returns the position of v, or Absent.
func (s *Solution) Position(v int) int { return s.pos[v] }

// Nodes returns a copy of the sequence.
func (s *Solution) Nodes() []int {
	out := make([]int, len(s.seq))
	copy(out, s.seq)

	return out
}

// Clone returns an independent deep copy.
func (s *Solution) Clone() *Solution {
	c := &Solution{
		seq: make([]int, len(s.seq)),
		in:  make([]bool, len(s.in)),
		pos: make([]int, len(s.pos)),
	}
	copy(c.seq, s.seq)
	copy(c.in, s.in)
	copy(c.pos, s.pos)

	return c
}

// Equal reports whether both solutions hold the same sequence (same start,
// same direction) over the same universe.
func (s *Solution) Equal(o *Solution) bool {
	if len(s.seq) != len(o.seq) || len(s.in) != len(o.in) {
		return false
	}
	var i int
	for i = range s.seq {
		if s.seq[i] != o.seq[i] {
			return false
		}
	}

	return true
}

// Edge reports whether the undirected edge {a,b} is on the cycle and, if so,
// whether it is currently traversed as a→b (forward) or b→a.
//
// Complexity: O(1).
func (s *Solution) Edge(a, b int) (exists, forward bool) {
	if pa := s.pos[a]; pa != Absent && s.seq[s.Next(pa)] == b {
		return true, true
	}
	if pb := s.pos[b]; pb != Absent && s.seq[s.Next(pb)] == a {
		return true, false
	}

	return false, false
}

// Reverse reverses positions a+1..b, replacing edges (s[a],s[a+1]) and
// (s[b],s[b+1]) with (s[a],s[b]) and (s[a+1],s[b+1]). Only the positions of
// the reversed span are updated.
//
// Contract: 0 ≤ a < b < Len(). Panics otherwise.
//
// Complexity: O(b-a).
func (s *Solution) Reverse(a, b int) {
	if a < 0 || b >= len(s.seq) || a >= b {
		panic(fmt.Sprintf("tour: Reverse(%d, %d) on k=%d", a, b, len(s.seq)))
	}
	s.reverseSpan(a+1, b)
}

// Substitute replaces the node at position p with the unselected node v and
// returns the evicted node.
//
// Contract: p in range, v in range and not selected. Panics otherwise.
//
// Complexity: O(1).
func (s *Solution) Substitute(p, v int) int {
	if p < 0 || p >= len(s.seq) {
		panic(fmt.Sprintf("tour: Substitute position %d on k=%d", p, len(s.seq)))
	}
	if v < 0 || v >= len(s.in) || s.in[v] {
		panic(fmt.Sprintf("tour: Substitute node %d is out of range or selected", v))
	}
	old := s.seq[p]
	s.in[old] = false
	s.pos[old] = Absent
	s.seq[p] = v
	s.in[v] = true
	s.pos[v] = p

	return old
}

// Swap exchanges the nodes at positions i and j. It is implemented as the
// reversal of [i..j] followed by the reversal of the interior [i+1..j-1].
//
// Contract: both positions in range. Panics otherwise.
//
// Complexity: O(|j-i|).
func (s *Solution) Swap(i, j int) {
	if i < 0 || j < 0 || i >= len(s.seq) || j >= len(s.seq) {
		panic(fmt.Sprintf("tour: Swap(%d, %d) on k=%d", i, j, len(s.seq)))
	}
	if i == j {
		return
	}
	if i > j {
		i, j = j, i
	}
	s.reverseSpan(i, j)
	if i+1 < j-1 {
		s.reverseSpan(i+1, j-1)
	}
}

// reverseSpan reverses the inclusive position range [lo..hi] and refreshes
// pos for exactly those positions.
func (s *Solution) reverseSpan(lo, hi int) {
	var (
		i = lo
		j = hi
	)
	for i < j {
		s.seq[i], s.seq[j] = s.seq[j], s.seq[i]
		i++
		j--
	}
	for i = lo; i <= hi; i++ {
		s.pos[s.seq[i]] = i
	}
}

// Validate re-derives every invariant from scratch. It is meant for tests
// and debugging, never for hot loops.
//
// Complexity: O(n).
func (s *Solution) Validate() error {
	if len(s.seq) == 0 {
		return ErrEmpty
	}
	if len(s.seq) > len(s.in) {
		return ErrTooLong
	}
	seen := make([]bool, len(s.in))
	var p, v int
	for p, v = range s.seq {
		if v < 0 || v >= len(s.in) {
			return fmt.Errorf("seq[%d]=%d: %w", p, v, ErrOutOfRange)
		}
		if seen[v] {
			return fmt.Errorf("seq[%d]=%d: %w", p, v, ErrDuplicate)
		}
		seen[v] = true
		if !s.in[v] || s.pos[v] != p {
			return fmt.Errorf("node %d at %d: %w", v, p, ErrCorrupt)
		}
	}
	for v = range s.in {
		if s.in[v] != seen[v] {
			return fmt.Errorf("membership of %d: %w", v, ErrCorrupt)
		}
		if !seen[v] && s.pos[v] != Absent {
			return fmt.Errorf("position of absent %d: %w", v, ErrCorrupt)
		}
	}

	return nil
}

// String renders the cycle as "[a b c | a]", the bar marking the closure.
func (s *Solution) String() string {
	var b strings.Builder
	b.WriteByte('[')
	var i int
	for i = range s.seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", s.seq[i])
	}
	if len(s.seq) > 0 {
		fmt.Fprintf(&b, " | %d", s.seq[0])
	}
	b.WriteByte(']')

	return b.String()
}
