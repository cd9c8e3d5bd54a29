package construct

import "errors"

var (
	// ErrStartOutOfRange is returned when the start node is not in [0,n).
	ErrStartOutOfRange = errors.New("construct: start node out of range")

	// ErrInvalidWeight is returned for a NaN, infinite or negative weight.
	ErrInvalidWeight = errors.New("construct: invalid regret weight")

	// ErrUnknownStrategy is returned for a strategy name that is not defined.
	ErrUnknownStrategy = errors.New("construct: unknown strategy")
)
