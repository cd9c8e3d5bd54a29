// Package localsearch — descent engines for prize-collecting cycle selection.
//
// Every engine takes an immutable instance and an initial tour, never mutates
// the input, and returns a new tour that is a local optimum of its declared
// neighborhood. Objective is non-increasing across every applied move.
//
// Engines:
//   - Steepest            — full neighborhood, best improving move per round;
//     NodeExchange flavor (intra swaps) or EdgeExchange flavor (intra reversals).
//   - SteepestCandidates  — EdgeExchange restricted to moves creating at least
//     one candidate edge (see package candidates).
//   - SteepestLM          — EdgeExchange with a cached, lazily repaired list of
//     improving moves; converges to the same kind of optimum as Steepest.
//   - SteepestLMCandidates — SteepestLM with the candidate-edge filter.
//   - Greedy              — first improvement over a uniformly random order of
//     the whole move-index space, seeded by the caller's *rand.Rand.
//
// Shared move families:
//   - substitution (p, v)  — replace the node at position p with unselected v;
//   - reversal     (i, j)  — EdgeExchange intra move, 2-opt segment reversal;
//   - swap         (i, j)  — NodeExchange intra move, exchange two positions.
//
// Determinism:
//   - Steepest variants scan intra pairs (i<j) first, then substitutions
//     (position ascending, node ascending); the first minimal delta wins.
//   - Greedy is deterministic for a fixed seed and call order.
//
// Concurrency:
//   - Descents are synchronous and single-threaded; they cannot be cancelled.
//   - Instances and candidate catalogs are read-only and may be shared; a
//     *rand.Rand may not. Use DeriveRNG for per-worker streams.
//
// Observability:
//   - WithLogger attaches a *zap.Logger; engines log at Debug level on start
//     and on convergence only, never per move.
//   - WithStats exposes counters; WithObserver sees each move before it is
//     applied.
package localsearch
