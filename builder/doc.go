// Package builder generates synthetic point instances for experiments, tests
// and benchmarks.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildInstance:  resolves options, runs constructors in order and turns
//     the concatenated points into an *instance.Instance.
//     – Constructor:    a function emitting points from the resolved config.
//   - Layouts (Constructor implementations):
//     – Uniform:        n points uniformly in the area.
//     – Clustered:      Gaussian clusters around uniform centres.
//     – Grid:           rows×cols lattice with a fixed step.
//     – Ring:           n points evenly spaced on a circle.
//   - Point-cost distributions (CostFn implementations):
//     – DefaultCostFn, ConstantCostFn, UniformCostFn, NormalCostFn,
//     ExponentialCostFn.
//   - Configuration primitives:
//     – BuilderOption:  WithSeed, WithRand, WithArea, WithCostFn and shortcuts.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical
//     instance.
//   - Fast-fail on meaningless option parameters via panics in option
//     constructors; runtime parameter errors are sentinel errors wrapped
//     with the constructor name.
//   - Coordinates are integers clamped to the configured area, so distances
//     follow instance.FromPoints rounding exactly.
package builder
