package quantile

import (
	"fmt"
	"math"
)

// ValidateProbability ensures p is a number in [0,1].
//
// Errors: ErrNaNProbability, ErrProbabilityRange.
// Complexity: O(1).
func ValidateProbability(p float64) error {
	if math.IsNaN(p) {
		return ErrNaNProbability
	}
	if p < 0 || p > 1 {
		return fmt.Errorf("p=%g: %w", p, ErrProbabilityRange)
	}

	return nil
}
