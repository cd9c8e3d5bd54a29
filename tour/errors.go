package tour

import "errors"

var (
	// ErrEmpty is returned for an empty sequence or an empty universe.
	ErrEmpty = errors.New("tour: empty solution")

	// ErrTooLong is returned when the sequence is longer than the universe.
	ErrTooLong = errors.New("tour: more nodes than points")

	// ErrOutOfRange is returned for a node outside [0,n).
	ErrOutOfRange = errors.New("tour: node out of range")

	// ErrDuplicate is returned when a node appears twice.
	ErrDuplicate = errors.New("tour: duplicate node")

	// ErrCorrupt is returned by Validate when the derived indexes disagree
	// with the sequence.
	ErrCorrupt = errors.New("tour: derived index out of sync")
)
