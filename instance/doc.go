// Package instance holds the immutable data of a prize-collecting cycle
// problem: n points, a symmetric non-negative integer distance matrix and a
// non-negative integer visiting cost per point.
//
// An Instance is built once (New or FromPoints), never mutated afterwards and
// may be shared read-only by any number of goroutines.
//
// The number of points a solution must visit is fixed by the instance:
//
//	K() == ⌈N()/2⌉
//
// Distances are stored in a flat row-major buffer so that the local-search
// hot loops read them without [][] indirection.
package instance
