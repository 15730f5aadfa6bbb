package dice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Normalize returns a copy of weights scaled so that they sum to 1. Weights
// must be finite and non-negative with a positive sum.
func Normalize(weights []float64) ([]float64, error) {
	if len(weights) == 0 {
		return nil, ErrNoWeights
	}
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("outcome %d: %w: %v", i, ErrInvalidWeight, w)
		}
	}

	sum := floats.Sum(weights)
	if sum <= 0 || math.IsInf(sum, 0) {
		return nil, fmt.Errorf("%w: weights sum to %v", ErrInvalidWeight, sum)
	}

	normalized := make([]float64, len(weights))
	copy(normalized, weights)
	floats.Scale(1/sum, normalized)
	return normalized, nil
}
