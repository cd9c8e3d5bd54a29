// Package: prizecycle/builder
//
// impl_grid.go — implementation of Grid(rows, cols, step) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewPoints); step > 0 (else ErrInvalidGeometry).
//   • Emits points in row-major order at (c*step, r*step), clamped to the area.
//   • Costs come from cfg.costFn in emission order.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(rows*cols).
//   • Space: O(rows*cols) for the returned points.
//
// Determinism:
//   • Stable point order: row-major (r asc, then c asc).
//   • Deterministic costs for a fixed cfg.rng/costFn.

package builder

import "github.com/katalvlaran/prizecycle/instance"

// Grid returns a Constructor that emits a rows×cols lattice.
func Grid(rows, cols int, step int64) Constructor {
	return func(cfg builderConfig) ([]instance.Point, error) {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return nil, err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return nil, err
		}
		if err := validatePositive(MethodGrid, "step", float64(step)); err != nil {
			return nil, err
		}

		pts := make([]instance.Point, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pts = append(pts, instance.Point{
					X:    clamp(int64(c)*step, cfg.width),
					Y:    clamp(int64(r)*step, cfg.height),
					Cost: cfg.cost(),
				})
			}
		}

		return pts, nil
	}
}
