// Package builder provides validation helpers to enforce parameter contracts
// in the layout constructors.
//
// Each function returns a sentinel error wrapped with the method name when
// its precondition is violated.
package builder

import "fmt"

// validateMin ensures that the provided integer got is ≥ min.
// Returns "<Method>: <name>=<got> < min=<min>: ErrTooFewPoints" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewPoints)
	}

	return nil
}

// validatePositive ensures that a geometric scale is > 0.
//
// Complexity: O(1) time and space.
func validatePositive(method, name string, got float64) error {
	if !(got > 0) {
		return fmt.Errorf("%s: %s=%v must be > 0: %w", method, name, got, ErrInvalidGeometry)
	}

	return nil
}

// requireRand ensures that a stochastic constructor has an RNG.
//
// Complexity: O(1) time and space.
func requireRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}
