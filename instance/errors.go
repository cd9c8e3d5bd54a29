package instance

import "errors"

// Sentinel errors returned by the constructors. Callers branch with errors.Is;
// the constructors attach the offending index via %w wrapping.
var (
	// ErrEmpty is returned for a zero-point instance.
	ErrEmpty = errors.New("instance: no points")

	// ErrNonSquare is returned when a distance row length differs from n.
	ErrNonSquare = errors.New("instance: distance matrix is not square")

	// ErrCostLength is returned when len(cost) != n.
	ErrCostLength = errors.New("instance: cost vector length mismatch")

	// ErrDiagonal is returned when distance[i][i] != 0.
	ErrDiagonal = errors.New("instance: non-zero diagonal")

	// ErrAsymmetric is returned when distance[i][j] != distance[j][i].
	ErrAsymmetric = errors.New("instance: distance matrix is not symmetric")

	// ErrNegative is returned for a negative distance or cost.
	ErrNegative = errors.New("instance: negative value")
)
