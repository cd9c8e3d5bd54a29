// Package: prizecycle/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` with the constructor name.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewPoints indicates that a size parameter (n, rows, cols, clusters)
// is smaller than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewPoints) { /* report invalid size */ }.
var ErrTooFewPoints = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidGeometry indicates a non-positive step, radius or spread.
// Usage: if errors.Is(err, ErrInvalidGeometry) { /* fix layout scale */ }.
var ErrInvalidGeometry = errors.New("builder: invalid geometry parameter")

// ErrConstructFailed indicates that BuildInstance could not produce an
// instance: a nil constructor or no points at all.
// Usage: if errors.Is(err, ErrConstructFailed) { /* check constructor list */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
