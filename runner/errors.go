package runner

import "errors"

var (
	// ErrNoJobs is returned by Run when there is nothing to schedule.
	ErrNoJobs = errors.New("runner: no methods or runs")

	// ErrTimeLimit is returned by Run, together with the finished results,
	// when the time limit stopped scheduling.
	ErrTimeLimit = errors.New("runner: time limit reached")
)
