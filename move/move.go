// Package move — delta algebra for the three move families of the local search.
//
// Every delta is the exact signed objective change the move would cause if it
// were applied; negative means improving. All evaluators are pure and O(1):
//
//	Reverse    (a,b): −w(s[a],s[a+1]) − w(s[b],s[b+1]) + w(s[a],s[b]) + w(s[a+1],s[b+1])
//	Substitute (p,v): −w(s[p−1],s[p]) − w(s[p],s[p+1]) − c(s[p]) + w(s[p−1],v) + w(v,s[p+1]) + c(v)
//	Swap       (i,j): exchange of two selected nodes, with adjacency and wraparound cases.
//
// Objective recomputes the cost from scratch in O(k); it is meant for
// verification and reporting, never for the descent hot loops.
//
// Contracts (caller-guarded, not checked here):
//   - positions are in [0, sol.Len());
//   - Substitute's node is in range and not selected.
package move

import (
	"fmt"

	"github.com/katalvlaran/prizecycle/instance"
	"github.com/katalvlaran/prizecycle/tour"
)

// Kind enumerates the move families.
type Kind uint8

const (
	// Reverse is the intra-route edge exchange (segment reversal).
	Reverse Kind = iota
	// Substitute is the inter-route exchange with an unselected node.
	Substitute
	// Swap is the intra-route node exchange.
	Swap
)

// String returns the lower-case family name.
func (k Kind) String() string {
	switch k {
	case Reverse:
		return "reverse"
	case Substitute:
		return "substitute"
	case Swap:
		return "swap"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Move is a transient proposal: a primitive application with its operands
// and the delta it was evaluated to.
//
//   - Reverse:    I < J are the boundary positions (segment I+1..J is reversed).
//   - Swap:       I < J are the exchanged positions.
//   - Substitute: I is the position, Node the incoming unselected node.
type Move struct {
	Kind  Kind
	I, J  int
	Node  int
	Delta int64
}

// String renders the move for logs and test failures.
func (m Move) String() string {
	if m.Kind == Substitute {
		return fmt.Sprintf("%s(pos=%d,node=%d,Δ=%d)", m.Kind, m.I, m.Node, m.Delta)
	}

	return fmt.Sprintf("%s(%d,%d,Δ=%d)", m.Kind, m.I, m.J, m.Delta)
}

// ReversalDelta returns the delta of reversing between positions a and b.
// The order of a and b does not matter. Identical or cyclically adjacent
// positions are a no-op and yield 0.
func ReversalDelta(in *instance.Instance, sol *tour.Solution, a, b int) int64 {
	k := sol.Len()
	if a > b {
		a, b = b, a
	}
	if a == b || a+1 == b || (b+1)%k == a {
		return 0
	}
	var (
		sa  = sol.At(a)
		sa1 = sol.At(a + 1)
		sb  = sol.At(b)
		sb1 = sol.At(sol.Next(b))
	)

	return in.Dist(sa, sb) + in.Dist(sa1, sb1) - in.Dist(sa, sa1) - in.Dist(sb, sb1)
}

// SubstitutionDelta returns the delta of replacing the node at p with the
// unselected node v.
func SubstitutionDelta(in *instance.Instance, sol *tour.Solution, p, v int) int64 {
	cur := sol.At(p)
	if sol.Len() == 1 {
		return in.Cost(v) - in.Cost(cur)
	}
	var (
		prev = sol.At(sol.Prev(p))
		next = sol.At(sol.Next(p))
	)
	removed := in.Dist(prev, cur) + in.Dist(cur, next) + in.Cost(cur)
	added := in.Dist(prev, v) + in.Dist(v, next) + in.Cost(v)

	return added - removed
}

// SwapDelta returns the delta of exchanging the nodes at positions i and j.
func SwapDelta(in *instance.Instance, sol *tour.Solution, i, j int) int64 {
	if i == j {
		return 0
	}
	if i > j {
		i, j = j, i
	}
	var (
		k     = sol.Len()
		prevI = (i - 1 + k) % k
		nextI = (i + 1) % k
		prevJ = (j - 1 + k) % k
		nextJ = (j + 1) % k
		u     = sol.At(i)
		v     = sol.At(j)
	)
	if k <= 3 {
		// Every exchange in a cycle of three or fewer nodes yields the same
		// cycle traversed in the other direction.
		return 0
	}
	if nextI == j {
		// … pi → u → v → nj …  becomes  … pi → v → u → nj …
		pi, nj := sol.At(prevI), sol.At(nextJ)

		return in.Dist(pi, v) + in.Dist(u, nj) - in.Dist(pi, u) - in.Dist(v, nj)
	}
	if nextJ == i {
		// Wraparound: … pj → v → u → ni …
		pj, ni := sol.At(prevJ), sol.At(nextI)

		return in.Dist(pj, u) + in.Dist(v, ni) - in.Dist(pj, v) - in.Dist(u, ni)
	}
	var (
		pi = sol.At(prevI)
		ni = sol.At(nextI)
		pj = sol.At(prevJ)
		nj = sol.At(nextJ)
	)
	removed := in.Dist(pi, u) + in.Dist(u, ni) + in.Dist(pj, v) + in.Dist(v, nj)
	added := in.Dist(pi, v) + in.Dist(v, ni) + in.Dist(pj, u) + in.Dist(u, nj)

	return added - removed
}

// Objective returns Σ cycle-edge distances + Σ selected costs.
//
// Complexity: O(k).
func Objective(in *instance.Instance, sol *tour.Solution) int64 {
	var (
		sum int64
		p   int
		k   = sol.Len()
	)
	for p = 0; p < k; p++ {
		sum += in.Dist(sol.At(p), sol.At(sol.Next(p))) + in.Cost(sol.At(p))
	}

	return sum
}

// Evaluate recomputes the delta of m against the current solution.
func Evaluate(in *instance.Instance, sol *tour.Solution, m Move) int64 {
	switch m.Kind {
	case Reverse:
		return ReversalDelta(in, sol, m.I, m.J)
	case Substitute:
		return SubstitutionDelta(in, sol, m.I, m.Node)
	case Swap:
		return SwapDelta(in, sol, m.I, m.J)
	default:
		panic("move: unknown kind " + m.Kind.String())
	}
}

// Apply performs m on sol through the tour primitives. No-op reversals
// (identical or adjacent positions) leave sol untouched.
func Apply(sol *tour.Solution, m Move) {
	switch m.Kind {
	case Reverse:
		a, b := m.I, m.J
		if a > b {
			a, b = b, a
		}
		if a+1 < b {
			sol.Reverse(a, b)
		}
	case Substitute:
		sol.Substitute(m.I, m.Node)
	case Swap:
		sol.Swap(m.I, m.J)
	default:
		panic("move: unknown kind " + m.Kind.String())
	}
}

// NewEdges returns the two edges a reversal or substitution would create, as
// node pairs. ok is false for swaps, which create up to four edges.
func NewEdges(sol *tour.Solution, m Move) (e1, e2 [2]int, ok bool) {
	switch m.Kind {
	case Reverse:
		a, b := m.I, m.J
		if a > b {
			a, b = b, a
		}

		return [2]int{sol.At(a), sol.At(b)}, [2]int{sol.At(sol.Next(a)), sol.At(sol.Next(b))}, true
	case Substitute:
		return [2]int{sol.At(sol.Prev(m.I)), m.Node}, [2]int{m.Node, sol.At(sol.Next(m.I))}, true
	default:
		return e1, e2, false
	}
}
