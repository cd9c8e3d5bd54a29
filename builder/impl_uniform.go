// Package: prizecycle/builder
//
// impl_uniform.go — implementation of Uniform(n) and Clustered(...) constructors.
//
// Contract:
//   • Both are stochastic: cfg.rng must be set (else ErrNeedRandSource).
//   • Uniform: n ≥ 1; X ∼ U{0..width-1}, Y ∼ U{0..height-1}, then cost.
//   • Clustered: clusters ≥ 1, perCluster ≥ 1, spread > 0; centres are uniform,
//     members are centre + N(0, spread²) per axis, rounded and clamped.
//   • Draw order is fixed (x, y, cost per point; centre before its members),
//     so a seed pins the instance.
//
// Complexity: O(points) time and space.

package builder

import (
	"math"

	"github.com/katalvlaran/prizecycle/instance"
)

// Uniform returns a Constructor that scatters n points uniformly in the area.
func Uniform(n int) Constructor {
	return func(cfg builderConfig) ([]instance.Point, error) {
		if err := validateMin(MethodUniform, "n", n, MinPoints); err != nil {
			return nil, err
		}
		if err := requireRand(MethodUniform, cfg); err != nil {
			return nil, err
		}

		pts := make([]instance.Point, n)
		for i := range pts {
			pts[i].X = cfg.rng.Int63n(cfg.width)
			pts[i].Y = cfg.rng.Int63n(cfg.height)
			pts[i].Cost = cfg.cost()
		}

		return pts, nil
	}
}

// Clustered returns a Constructor that emits clusters×perCluster points in
// Gaussian blobs of standard deviation spread.
func Clustered(clusters, perCluster int, spread float64) Constructor {
	return func(cfg builderConfig) ([]instance.Point, error) {
		if err := validateMin(MethodClustered, "clusters", clusters, MinClusters); err != nil {
			return nil, err
		}
		if err := validateMin(MethodClustered, "perCluster", perCluster, MinPoints); err != nil {
			return nil, err
		}
		if err := validatePositive(MethodClustered, "spread", spread); err != nil {
			return nil, err
		}
		if err := requireRand(MethodClustered, cfg); err != nil {
			return nil, err
		}

		pts := make([]instance.Point, 0, clusters*perCluster)
		var cx, cy float64
		for c := 0; c < clusters; c++ {
			cx = float64(cfg.rng.Int63n(cfg.width))
			cy = float64(cfg.rng.Int63n(cfg.height))
			for m := 0; m < perCluster; m++ {
				x := int64(math.Round(cx + cfg.rng.NormFloat64()*spread))
				y := int64(math.Round(cy + cfg.rng.NormFloat64()*spread))
				pts = append(pts, instance.Point{
					X:    clamp(x, cfg.width),
					Y:    clamp(y, cfg.height),
					Cost: cfg.cost(),
				})
			}
		}

		return pts, nil
	}
}
