// Package builder provides the point-cost distributions used by the layout
// constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultPointCost is the cost assigned to each point when no custom CostFn
// is provided.
const DefaultPointCost int64 = 0

// CostFn produces a point cost given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type CostFn func(rng *rand.Rand) int64

// DefaultCostFn always returns DefaultPointCost.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultCostFn(_ *rand.Rand) int64 {
	return DefaultPointCost
}

// ConstantCostFn returns a CostFn that always yields value.
// Panics if value < 0.
// Complexity: O(1) time, O(1) space.
func ConstantCostFn(value int64) CostFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantCostFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformCostFn returns a CostFn sampling uniformly in [min, max] inclusive.
// Panics if min < 0 or max < min.
// If rng is nil, yields DefaultPointCost to maintain deterministic fallback.
// Complexity: O(1) time, O(1) space.
func UniformCostFn(min, max int64) CostFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformCostFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultPointCost
		}
		if max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// NormalCostFn returns a CostFn sampling from N(mean, stddev), rounded to the
// nearest integer and clipped to [0, MaxInt64].
// Panics if stddev < 0.
// If rng is nil, yields DefaultPointCost.
// Complexity: O(1) time, O(1) space.
func NormalCostFn(mean, stddev float64) CostFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalCostFn: stddev must be ≥ 0, got %f", stddev))
	}
	maxVal := float64(math.MaxInt64)

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultPointCost
		}
		sample := rng.NormFloat64()*stddev + mean
		if sample < 0 {
			return 0
		}
		if sample >= maxVal {
			return math.MaxInt64
		}

		return int64(math.Round(sample))
	}
}

// ExponentialCostFn returns a CostFn sampling from an exponential
// distribution with rate λ (mean 1/λ), rounded. Panics if rate ≤ 0.
// If rng is nil, yields DefaultPointCost.
// Complexity: O(1) time, O(1) space.
func ExponentialCostFn(rate float64) CostFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialCostFn: rate must be > 0, got %f", rate))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultPointCost
		}

		return int64(math.Round(rng.ExpFloat64() / rate))
	}
}
