package localsearch

import (
	"math/rand"

	"github.com/katalvlaran/prizecycle/instance"
	"github.com/katalvlaran/prizecycle/move"
	"github.com/katalvlaran/prizecycle/tour"
)

// Greedy runs randomized first-improvement descent from init.
//
// The move-index space has k(n−k) substitution indices followed by k(k−1)/2
// intra pairs of the flavor's family. Each round draws indices uniformly
// without replacement and applies the first improving move; a round that
// exhausts the space without improvement ends the descent, so the result is a
// local optimum of the flavor's neighborhood.
//
// rng is advanced and never reseeded; nil selects the default stream.
//
// Complexity: O(1) per sampled move, plus O(k²+kn) setup.
func Greedy(in *instance.Instance, init *tour.Solution, flavor Flavor, rng *rand.Rand, opts ...Option) *tour.Solution {
	mustMatch(in, init)
	cfg := newConfig(opts...)
	engine := "greedy-" + flavor.String()
	if rng == nil {
		rng = NewRNG(0)
	}
	sol := init.Clone()
	cfg.logStart(engine, in, sol)

	var (
		intra = intraKind(flavor)
		k     = sol.Len()
		n     = sol.N()
		free  = n - k
		i, j  int
	)
	// unselected[u] is the node behind substitution slot u; a substitution
	// swaps the evicted node into the slot it came from.
	unselected := make([]int, 0, free)
	for i = 0; i < n; i++ {
		if !sol.Contains(i) {
			unselected = append(unselected, i)
		}
	}
	pairs := make([][2]int, 0, k*(k-1)/2)
	for i = 0; i < k; i++ {
		for j = i + 1; j < k; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	subs := k * free
	total := subs + len(pairs)
	perm := make([]int, total)
	for i = range perm {
		perm[i] = i
	}

	for {
		cfg.stats.Rounds++
		if !greedyRound(in, sol, cfg, rng, intra, perm, pairs, unselected, subs) {
			break
		}
	}
	cfg.logDone(engine, in, sol)

	return sol
}

// greedyRound samples perm by incremental Fisher–Yates until an improving
// move is found and applied. It reports false when the whole space was
// drawn without improvement. perm stays a permutation across rounds.
func greedyRound(
	in *instance.Instance,
	sol *tour.Solution,
	cfg *config,
	rng *rand.Rand,
	intra move.Kind,
	perm []int,
	pairs [][2]int,
	unselected []int,
	subs int,
) bool {
	var (
		total = len(perm)
		free  = len(unselected)
		t, r  int
		m     move.Move
	)
	for t = 0; t < total; t++ {
		r = t + rng.Intn(total-t)
		perm[t], perm[r] = perm[r], perm[t]

		idx := perm[t]
		if idx < subs {
			p, slot := idx/free, idx%free
			m = move.Move{Kind: move.Substitute, I: p, Node: unselected[slot]}
			m.Delta = move.SubstitutionDelta(in, sol, p, m.Node)
			cfg.stats.Evaluated++
			if m.Delta < 0 {
				unselected[slot] = sol.At(p)
				cfg.apply(sol, m)

				return true
			}
			continue
		}

		pr := pairs[idx-subs]
		m = move.Move{Kind: intra, I: pr[0], J: pr[1]}
		m.Delta = intraDelta(in, sol, intra, pr[0], pr[1])
		cfg.stats.Evaluated++
		if m.Delta < 0 {
			cfg.apply(sol, m)

			return true
		}
	}

	return false
}
