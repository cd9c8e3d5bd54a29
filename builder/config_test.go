// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and the panic on WithRand(nil).
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil (deterministic behavior)
	cfgDefault := newBuilderConfig()
	if cfgDefault.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfgDefault.rng)
	}

	// 2. WithRand should set rng when non-nil
	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	if cfgWithRand.rng != expRNG {
		t.Errorf("WithRand: expected rng %v, got %v", expRNG, cfgWithRand.rng)
	}

	// 3. WithRand(nil) is a programmer error
	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("WithRand(nil): expected panic")
			}
		}()
		WithRand(nil)
	}()

	// 4. WithSeed should produce reproducible RNG
	cfgSeed1 := newBuilderConfig(WithSeed(42))
	a1, b1 := cfgSeed1.rng.Int63(), cfgSeed1.rng.Int63()
	cfgSeed2 := newBuilderConfig(WithSeed(42))
	a2, b2 := cfgSeed2.rng.Int63(), cfgSeed2.rng.Int63()
	if a1 != a2 || b1 != b2 {
		t.Errorf("WithSeed reproducibility: got (%d,%d) vs (%d,%d)", a1, b1, a2, b2)
	}
}

// TestAreaOption verifies defaults, override and the panic on empty areas.
func TestAreaOption(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.width != defaultWidth || cfg.height != defaultHeight {
		t.Errorf("default area: got %dx%d", cfg.width, cfg.height)
	}
	cfg = newBuilderConfig(WithArea(10, 20))
	if cfg.width != 10 || cfg.height != 20 {
		t.Errorf("WithArea: got %dx%d", cfg.width, cfg.height)
	}
	for _, wh := range [][2]int64{{0, 5}, {5, 0}, {-1, 3}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("WithArea(%d,%d): expected panic", wh[0], wh[1])
				}
			}()
			WithArea(wh[0], wh[1])
		}()
	}
}

// TestCostFnOptions verifies that cost options apply correctly and that the
// last option wins.
func TestCostFnOptions(t *testing.T) {
	t.Parallel()

	const constVal = 9
	const min, max = int64(2), int64(4)
	rng := rand.New(rand.NewSource(1))

	// 1. Default configuration: costFn should be DefaultCostFn
	cfgDefault := newBuilderConfig()
	if c := cfgDefault.costFn(nil); c != DefaultPointCost {
		t.Errorf("default costFn(nil): expected %d, got %d", DefaultPointCost, c)
	}

	// 2. WithConstantCost should override to constant value
	cfgConst := newBuilderConfig(WithConstantCost(constVal))
	if c := cfgConst.costFn(rng); c != constVal {
		t.Errorf("WithConstantCost(rng): expected %d, got %d", constVal, c)
	}

	// 3. WithUniformCost: nil rng yields default, seeded rng yields [min,max]
	cfgUni := newBuilderConfig(WithUniformCost(min, max))
	if c := cfgUni.costFn(nil); c != DefaultPointCost {
		t.Errorf("WithUniformCost(nil rng): expected default %d, got %d", DefaultPointCost, c)
	}
	for i := 0; i < 50; i++ {
		if c := cfgUni.costFn(rng); c < min || c > max {
			t.Fatalf("WithUniformCost(rng): expected in [%d,%d], got %d", min, max, c)
		}
	}

	// 4. Override order: last option wins
	cfgOverride := newBuilderConfig(WithConstantCost(100), WithUniformCost(min, max))
	if c := cfgOverride.costFn(rng); c < min || c > max {
		t.Errorf("override order: expected uniform in [%d,%d], got %d", min, max, c)
	}
}

// TestClamp covers both borders of the half-open interval.
func TestClamp(t *testing.T) {
	t.Parallel()

	cases := []struct{ v, limit, want int64 }{
		{-3, 10, 0},
		{0, 10, 0},
		{9, 10, 9},
		{10, 10, 9},
		{42, 10, 9},
	}
	for _, tc := range cases {
		if got := clamp(tc.v, tc.limit); got != tc.want {
			t.Errorf("clamp(%d,%d): expected %d, got %d", tc.v, tc.limit, tc.want, got)
		}
	}
}
