// Package construct — initial tours for the local-search engines.
//
// Only two constructions are provided:
//   - Random         — the start node followed by k−1 distinct random nodes;
//   - WeightedRegret — greedy cycle growth by weighted 2-regret insertion.
//
// Both return a tour of exactly in.K() nodes beginning at start and never
// panic on caller input; invalid arguments yield sentinel errors.
package construct

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/prizecycle/instance"
	"github.com/katalvlaran/prizecycle/tour"
)

// Default weights of WeightedRegret: plain regret minus best insertion cost.
const (
	DefaultRegretWeight = 1.0
	DefaultBestWeight   = 1.0
)

// scoreEps is the tolerance under which two weighted scores tie.
const scoreEps = 1e-12

// Strategy names a construction for configuration files and flags.
type Strategy string

const (
	StrategyRandom Strategy = "random"
	StrategyRegret Strategy = "regret"
)

// ParseStrategy maps a name to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyRandom, StrategyRegret:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownStrategy)
	}
}

// Build runs the construction named by s with default weights. rng is only
// consumed by StrategyRandom.
func Build(s Strategy, in *instance.Instance, start int, rng *rand.Rand) (*tour.Solution, error) {
	switch s {
	case StrategyRandom:
		return Random(in, start, rng)
	case StrategyRegret:
		return WeightedRegret(in, start, DefaultRegretWeight, DefaultBestWeight)
	default:
		return nil, fmt.Errorf("%q: %w", string(s), ErrUnknownStrategy)
	}
}

// Random returns start followed by k−1 nodes drawn uniformly without
// replacement from the others. rng==nil uses a fixed default seed.
//
// Complexity: O(n).
func Random(in *instance.Instance, start int, rng *rand.Rand) (*tour.Solution, error) {
	n := in.N()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("start=%d, n=%d: %w", start, n, ErrStartOutOfRange)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}

	others := make([]int, 0, n-1)
	var i int
	for i = 0; i < n; i++ {
		if i != start {
			others = append(others, i)
		}
	}
	rng.Shuffle(len(others), func(a, b int) { others[a], others[b] = others[b], others[a] })

	seq := make([]int, 0, in.K())
	seq = append(seq, start)
	seq = append(seq, others[:in.K()-1]...)

	return tour.New(n, seq)
}

// defaultSeed seeds Random when the caller passes no generator.
const defaultSeed int64 = 1

// WeightedRegret grows a cycle from start. The second node minimises
// distance+cost from start. Every later step computes, for each unselected
// node, its cheapest insertion cost best1 (including the node's cost) and
// the second cheapest best2 over all cycle edges, and inserts the node with
// the highest wRegret·(best2−best1) − wBest·best1 at its cheapest edge.
// Ties prefer the lower best1, then the higher regret, then the lower index.
//
// Weights must be finite and non-negative.
//
// Complexity: O(k²·n).
func WeightedRegret(in *instance.Instance, start int, wRegret, wBest float64) (*tour.Solution, error) {
	n := in.N()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("start=%d, n=%d: %w", start, n, ErrStartOutOfRange)
	}
	for _, w := range []float64{wRegret, wBest} {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("weight %v: %w", w, ErrInvalidWeight)
		}
	}

	k := in.K()
	seq := make([]int, 1, k)
	seq[0] = start
	selected := make([]bool, n)
	selected[start] = true

	var i int
	if k > 1 {
		second, bestScore := -1, int64(math.MaxInt64)
		for i = 0; i < n; i++ {
			if selected[i] {
				continue
			}
			if s := in.Dist(start, i) + in.Cost(i); s < bestScore {
				second, bestScore = i, s
			}
		}
		seq = append(seq, second)
		selected[second] = true
	}

	for len(seq) < k {
		var (
			chooseNode  = -1
			chooseAt    int
			bestScore   = math.Inf(-1)
			tieBest1    = int64(math.MaxInt64)
			tieRegret   = int64(-1)
			best1       int64
			best2       int64
			at, pos     int
			insertDelta int64
		)
		for i = 0; i < n; i++ {
			if selected[i] {
				continue
			}
			best1, best2 = math.MaxInt64, math.MaxInt64
			for pos = range seq {
				u, v := seq[pos], seq[(pos+1)%len(seq)]
				insertDelta = in.Dist(u, i) + in.Dist(i, v) - in.Dist(u, v) + in.Cost(i)
				if insertDelta < best1 {
					best2, best1 = best1, insertDelta
					at = pos + 1
				} else if insertDelta < best2 {
					best2 = insertDelta
				}
			}
			var regret int64
			if best2 != math.MaxInt64 {
				regret = best2 - best1
			}
			score := wRegret*float64(regret) - wBest*float64(best1)
			tie := math.Abs(score-bestScore) < scoreEps
			if (!tie && score > bestScore) || (tie && (best1 < tieBest1 || (best1 == tieBest1 && regret > tieRegret))) {
				bestScore, tieBest1, tieRegret = score, best1, regret
				chooseNode, chooseAt = i, at
			}
		}
		seq = append(seq, 0)
		copy(seq[chooseAt+1:], seq[chooseAt:])
		seq[chooseAt] = chooseNode
		selected[chooseNode] = true
	}

	return tour.New(n, seq)
}
