// Package stats compares the empirical distribution of sampled outcomes with
// the distribution they were drawn from.
package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Count returns the number of occurrences of each outcome in [0, n) among
// draws. Draws outside [0, n) are not counted.
func Count(draws []int, n int) []int {
	counts := make([]int, n)
	for _, d := range draws {
		if 0 <= d && d < n {
			counts[d]++
		}
	}
	return counts
}

// Frequencies returns the empirical probability of each outcome, that is its
// count divided by the total count. All frequencies are zero if the total
// count is zero.
func Frequencies(counts []int) []float64 {
	freqs := make([]float64, len(counts))
	for i, c := range counts {
		freqs[i] = float64(c)
	}
	if total := floats.Sum(freqs); total > 0 {
		floats.Scale(1/total, freqs)
	}
	return freqs
}

// MaxRelativeError returns max |observed[k] - expected[k]| / expected[k] over
// the outcomes with a positive expected probability.
func MaxRelativeError(observed, expected []float64) float64 {
	worst := 0.0
	for k, e := range expected {
		if e <= 0 {
			continue
		}
		worst = math.Max(worst, math.Abs(observed[k]-e)/e)
	}
	return worst
}

// GoodnessOfFit runs Pearson's chi-squared test of the observed counts
// against the expected probabilities. It returns the test statistic and its
// p-value: the probability of a statistic at least as large if the counts
// were drawn from probs.
//
// Outcomes with zero expected probability do not contribute to the degrees of
// freedom. Observing one of them yields an infinite statistic and a zero
// p-value.
func GoodnessOfFit(counts []int, probs []float64) (float64, float64, error) {
	if len(counts) != len(probs) {
		return 0, 0, fmt.Errorf("got %d counts for %d probabilities", len(counts), len(probs))
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0, 0, fmt.Errorf("no observations")
	}

	chi2 := 0.0
	categories := 0
	for k, p := range probs {
		if p <= 0 {
			if counts[k] > 0 {
				return math.Inf(1), 0, nil
			}
			continue
		}
		categories++
		expected := p * float64(total)
		d := float64(counts[k]) - expected
		chi2 += d * d / expected
	}
	if categories < 2 {
		return chi2, 1, nil
	}

	dist := distuv.ChiSquared{K: float64(categories - 1)}
	return chi2, dist.Survival(chi2), nil
}
