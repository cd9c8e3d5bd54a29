package instance

import (
	"fmt"
	"math"
)

// Instance is the immutable problem data. The zero value is not usable; build
// instances with New or FromPoints.
type Instance struct {
	n    int
	dist []int64 // row-major, dist[i*n+j]
	cost []int64
}

// Point is a planar point with a visiting cost, used by FromPoints.
type Point struct {
	X, Y int64
	Cost int64
}

// New validates dist and cost and copies them into a fresh Instance.
//
// Contract:
//   - n = len(dist) ≥ 1 and every row has length n.
//   - len(cost) == n.
//   - dist[i][i] == 0, dist[i][j] == dist[j][i], all values ≥ 0.
//
// Complexity: O(n²) time and space.
func New(dist [][]int64, cost []int64) (*Instance, error) {
	n := len(dist)
	if n == 0 {
		return nil, ErrEmpty
	}
	if len(cost) != n {
		return nil, fmt.Errorf("len(cost)=%d, n=%d: %w", len(cost), n, ErrCostLength)
	}

	flat := make([]int64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return nil, fmt.Errorf("row %d has %d entries: %w", i, len(dist[i]), ErrNonSquare)
		}
		copy(flat[i*n:(i+1)*n], dist[i])
	}
	for i = 0; i < n; i++ {
		if flat[i*n+i] != 0 {
			return nil, fmt.Errorf("distance[%d][%d]=%d: %w", i, i, flat[i*n+i], ErrDiagonal)
		}
		if cost[i] < 0 {
			return nil, fmt.Errorf("cost[%d]=%d: %w", i, cost[i], ErrNegative)
		}
		for j = i + 1; j < n; j++ {
			if flat[i*n+j] < 0 {
				return nil, fmt.Errorf("distance[%d][%d]=%d: %w", i, j, flat[i*n+j], ErrNegative)
			}
			if flat[i*n+j] != flat[j*n+i] {
				return nil, fmt.Errorf("distance[%d][%d] != distance[%d][%d]: %w", i, j, j, i, ErrAsymmetric)
			}
		}
	}

	c := make([]int64, n)
	copy(c, cost)

	return &Instance{n: n, dist: flat, cost: c}, nil
}

// FromPoints builds an instance whose distances are Euclidean distances
// rounded to the nearest integer and whose costs are the point costs.
//
// Complexity: O(n²).
func FromPoints(pts []Point) (*Instance, error) {
	n := len(pts)
	if n == 0 {
		return nil, ErrEmpty
	}

	flat := make([]int64, n*n)
	cost := make([]int64, n)
	var (
		i, j   int
		dx, dy float64
		d      int64
	)
	for i = 0; i < n; i++ {
		if pts[i].Cost < 0 {
			return nil, fmt.Errorf("cost[%d]=%d: %w", i, pts[i].Cost, ErrNegative)
		}
		cost[i] = pts[i].Cost
		for j = i + 1; j < n; j++ {
			dx = float64(pts[i].X - pts[j].X)
			dy = float64(pts[i].Y - pts[j].Y)
			d = int64(math.Round(math.Hypot(dx, dy)))
			flat[i*n+j] = d
			flat[j*n+i] = d
		}
	}

	return &Instance{n: n, dist: flat, cost: cost}, nil
}

// N returns the number of points.
func (in *Instance) N() int { return in.n }

// K returns the number of points every solution visits, ⌈n/2⌉.
func (in *Instance) K() int { return (in.n + 1) / 2 }

// Dist returns distance[i][j]. Indices are not range-checked beyond the
// slice bounds check.
func (in *Instance) Dist(i, j int) int64 { return in.dist[i*in.n+j] }

// Cost returns the visiting cost of point i.
func (in *Instance) Cost(i int) int64 { return in.cost[i] }

// Row returns the read-only distance row of point i. Callers must not
// modify the returned slice.
func (in *Instance) Row(i int) []int64 { return in.dist[i*in.n : (i+1)*in.n] }

// Costs returns a copy of the cost vector.
func (in *Instance) Costs() []int64 {
	out := make([]int64, in.n)
	copy(out, in.cost)

	return out
}
