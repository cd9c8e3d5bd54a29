// Package: prizecycle/builder
//
// impl_ring.go — implementation of Ring(n, radius) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewPoints); radius > 0 (else ErrInvalidGeometry).
//   • Point i sits at angle 2πi/n on a circle centred in the area,
//     rounded to integers and clamped to the area.
//   • Costs come from cfg.costFn in emission order.
//
// Complexity: O(n) time and space.

package builder

import (
	"math"

	"github.com/katalvlaran/prizecycle/instance"
)

// Ring returns a Constructor that emits n points evenly spaced on a circle.
func Ring(n int, radius float64) Constructor {
	return func(cfg builderConfig) ([]instance.Point, error) {
		if err := validateMin(MethodRing, "n", n, MinPoints); err != nil {
			return nil, err
		}
		if err := validatePositive(MethodRing, "radius", radius); err != nil {
			return nil, err
		}

		var (
			cx  = float64(cfg.width) / 2
			cy  = float64(cfg.height) / 2
			pts = make([]instance.Point, n)
			th  float64
		)
		for i := 0; i < n; i++ {
			th = 2 * math.Pi * float64(i) / float64(n)
			pts[i] = instance.Point{
				X:    clamp(int64(math.Round(cx+radius*math.Cos(th))), cfg.width),
				Y:    clamp(int64(math.Round(cy+radius*math.Sin(th))), cfg.height),
				Cost: cfg.cost(),
			}
		}

		return pts, nil
	}
}
