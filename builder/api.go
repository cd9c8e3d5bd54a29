// Package: prizecycle/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildInstance(opts, cons...). Resolves cfg, runs cons in order,
//     concatenates their points and validates the result through instance.FromPoints.
//   - Layouts are declared as Constructors and implemented in impl_*.go.
//   - Determinism: same options/seed and constructor order ⇒ identical instance.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/prizecycle/instance"
)

// Constructor emits points for one layout using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Draw every random number from cfg.rng, in a fixed order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(cfg builderConfig) ([]instance.Point, error)

// BuildInstance resolves the builder configuration from opts, applies all
// constructors in order and returns the instance over their concatenated
// points. Point indices follow emission order.
//
// Errors:
//   - ErrConstructFailed for a nil constructor or when no points were emitted.
//   - Constructor errors are wrapped with "BuildInstance: %w".
//
// Complexity: Σ cost of each constructor plus O(n²) for the distance matrix.
func BuildInstance(opts []BuilderOption, cons ...Constructor) (*instance.Instance, error) {
	cfg := newBuilderConfig(opts...)

	var pts []instance.Point
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildInstance: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		more, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("BuildInstance: %w", err)
		}
		pts = append(pts, more...)
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("BuildInstance: no points emitted: %w", ErrConstructFailed)
	}

	in, err := instance.FromPoints(pts)
	if err != nil {
		return nil, fmt.Errorf("BuildInstance: %w", err)
	}

	return in, nil
}
