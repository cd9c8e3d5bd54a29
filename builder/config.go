// Package: prizecycle/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng     = nil                 (stochastic layouts require WithSeed/WithRand)
//   • width   = 4000, height = 2000 (coordinate area [0,width)×[0,height))
//   • costFn  = DefaultCostFn       (every point costs DefaultPointCost)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Coordinate area; every emitted point lies in [0,width)×[0,height).
	width  int64
	height int64

	// Point-cost generator.
	costFn CostFn
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultWidth  int64 = 4000
	defaultHeight int64 = 2000
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		width:  defaultWidth,
		height: defaultHeight,
		costFn: DefaultCostFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// cost draws one point cost.
func (c builderConfig) cost() int64 { return c.costFn(c.rng) }

// clamp keeps a coordinate inside [0,limit).
func clamp(v, limit int64) int64 {
	if v < 0 {
		return 0
	}
	if v >= limit {
		return limit - 1
	}

	return v
}
