// Package prizecycle is a local-search toolkit for prize-collecting cycle
// selection: given n points with pairwise distances and per-point costs,
// pick exactly ⌈n/2⌉ of them and order them into a cycle that minimises
// cycle length plus the costs of the chosen points.
//
// 🚀 What is inside?
//
//	• Instances: validated distance matrices + cost vectors, or points
//	• Generators: seeded uniform, clustered, grid and ring layouts
//	• Constructions: random and weighted 2-regret initial cycles
//	• Descents: steepest (node or edge exchange), candidate-restricted,
//	  move-list (LM) and randomized greedy, all sharing one delta algebra
//	• Experiments: concurrent runs, Prometheus metrics, YAML configuration
//
// Under the hood, everything is organized under small packages:
//
//	instance/    — immutable distance matrix + costs, sentinel errors
//	tour/        — cyclic solution with O(1) position lookup
//	move/        — substitution, reversal and swap deltas
//	candidates/  — k-nearest candidate edges (roaring partner sets)
//	construct/   — random and weighted-regret initial cycles
//	localsearch/ — the descent engines and method dispatch
//	builder/     — synthetic instance layouts driven by functional options
//	config/      — YAML experiment configuration with validation
//	runner/      — bounded concurrent experiment harness
//	cmd/         — the prizecycle command line tool
//
// Quick ASCII example:
//
//	    0───2          0   2
//	    │ ╳ │    →     │ ╲ │
//	    3───1          3   1
//
//	one reversal removes the crossing; the objective never increases.
//
//	go install github.com/katalvlaran/prizecycle/cmd/prizecycle@latest
package prizecycle
