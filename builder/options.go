// Package: prizecycle/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before points are generated.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic layouts and costs.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithArea sets the coordinate area to [0,width)×[0,height).
// Panics unless both sides are positive.
// Complexity: O(1) time, O(1) space.
func WithArea(width, height int64) BuilderOption {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("builder: WithArea(%d, %d)", width, height))
	}
	return func(c *builderConfig) {
		c.width, c.height = width, height
	}
}

// WithCostFn overrides the per-point cost generator. The function receives
// the (possibly nil) RNG. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// WithConstantCost sets a fixed point cost via ConstantCostFn.
// Complexity: O(1).
func WithConstantCost(v int64) BuilderOption {
	return WithCostFn(ConstantCostFn(v))
}

// WithUniformCost sets costs ∼ U{min..max} via UniformCostFn.
// Complexity: O(1).
func WithUniformCost(min, max int64) BuilderOption {
	return WithCostFn(UniformCostFn(min, max))
}

// WithNormalCost sets costs ∼ N(mean,stddev) via NormalCostFn.
// Complexity: O(1).
func WithNormalCost(mean, stddev float64) BuilderOption {
	return WithCostFn(NormalCostFn(mean, stddev))
}

// WithExponentialCost sets costs ∼ Exp(rate) via ExponentialCostFn.
// Complexity: O(1).
func WithExponentialCost(rate float64) BuilderOption {
	return WithCostFn(ExponentialCostFn(rate))
}
