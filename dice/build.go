package dice

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/rhartert/yagh"
)

// DefaultTolerance is the maximum accepted deviation |w*n - 1| of the last
// weight left once every other outcome has been paired.
const DefaultTolerance = 0.001

var (
	// ErrNoWeights is returned when building a table from an empty weight
	// vector.
	ErrNoWeights = errors.New("no weights")

	// ErrInvalidWeight is returned when a weight is negative, NaN or
	// infinite.
	ErrInvalidWeight = errors.New("invalid weight")

	// ErrNotNormalized is returned when the weights do not sum to 1 within
	// the construction tolerance.
	ErrNotNormalized = errors.New("weights do not sum to 1")
)

// Strategy selects how donor and donee outcomes are paired while building a
// table. All strategies produce tables with the same sampling distribution;
// only the pairing of outcomes into slots differs.
type Strategy int8

const (
	// StrategySort re-sorts the remaining outcomes by weight before each
	// pairing. It runs in O(n² log n).
	StrategySort Strategy = iota

	// StrategyHeap keeps the remaining outcomes in two indexed heaps, one for
	// the lightest and one for the heaviest outcome. It runs in O(n log n).
	StrategyHeap

	// StrategyPartition splits outcomes into underfull and overfull
	// worklists. It runs in O(n).
	StrategyPartition
)

// String returns the name used to select the strategy from the command line.
func (s Strategy) String() string {
	switch s {
	case StrategySort:
		return "sort"
	case StrategyHeap:
		return "heap"
	case StrategyPartition:
		return "partition"
	default:
		return fmt.Sprintf("Strategy(%d)", int8(s))
	}
}

// ParseStrategy returns the strategy with the given name.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range []Strategy{StrategySort, StrategyHeap, StrategyPartition} {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", name)
}

type Config struct {
	// Strategy used to pair outcomes. The zero value is StrategySort.
	Strategy Strategy

	// Tolerance is the maximum accepted deviation |w*n - 1| of the outcomes
	// left unpaired at the end of the construction. Large tables accumulate
	// more rounding error and may need a wider tolerance. Non-positive values
	// select DefaultTolerance.
	Tolerance float64
}

func (cfg Config) tolerance() float64 {
	if cfg.Tolerance <= 0 {
		return DefaultTolerance
	}
	return cfg.Tolerance
}

// Build returns the alias table of the given weights using the default
// configuration. See NewTable.
func Build(weights []float64) (*Table, error) {
	return NewTable(weights, Config{})
}

// NewTable builds the alias table of the given weights.
//
// The weights must be non-negative and sum to 1. They are not renormalized:
// weights that sum to something else make the construction fail with
// ErrNotNormalized rather than silently produce a skewed table. Use Normalize
// beforehand for raw weights.
func NewTable(weights []float64, cfg Config) (*Table, error) {
	if len(weights) == 0 {
		return nil, ErrNoWeights
	}
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("outcome %d: %w: %v", i, ErrInvalidWeight, w)
		}
	}

	var entries []Entry
	var err error
	switch cfg.Strategy {
	case StrategySort:
		entries, err = buildSorted(weights, cfg.tolerance())
	case StrategyHeap:
		entries, err = buildHeap(weights, cfg.tolerance())
	case StrategyPartition:
		entries, err = buildPartition(weights, cfg.tolerance())
	default:
		return nil, fmt.Errorf("unknown strategy: %s", cfg.Strategy)
	}
	if err != nil {
		return nil, err
	}

	return &Table{entries: entries}, nil
}

// outcomeWeight is an outcome and the mass it still has to place in the
// table.
type outcomeWeight struct {
	outcome int
	weight  float64
}

// lastEntry checks that the last unpaired outcome holds exactly one slot
// worth of mass and returns its entry.
func lastEntry(ow outcomeWeight, n int, tol float64) (Entry, error) {
	if d := math.Abs(ow.weight*float64(n) - 1); !(d < tol) {
		return Entry{}, fmt.Errorf(
			"%w: outcome %d is left with %g slots of mass (tolerance %g)",
			ErrNotNormalized, ow.outcome, ow.weight*float64(n), tol,
		)
	}
	return Entry{Primary: ow.outcome, Alias: NoAlias, Threshold: 1}, nil
}

// buildSorted pairs outcomes by sorting the remaining ones at each
// iteration:
//
//  1. sort the remaining outcomes by decreasing weight,
//  2. remove the lightest outcome (the donor),
//  3. fill the donor's slot with mass taken from the heaviest outcome (the
//     donee) which stays in the working set with its reduced weight.
//
// The last outcome must be left with exactly 1/n of mass.
func buildSorted(weights []float64, tol float64) ([]Entry, error) {
	n := len(weights)
	nf := float64(n)
	avg := 1 / nf

	working := make([]outcomeWeight, n)
	for i, w := range weights {
		working[i] = outcomeWeight{i, w}
	}

	entries := make([]Entry, 0, n)
	for len(working) > 1 {
		sort.Slice(working, func(i, j int) bool {
			return working[i].weight > working[j].weight
		})

		donor := working[len(working)-1]
		working = working[:len(working)-1]
		donee := &working[0]

		entries = append(entries, Entry{
			Primary:   donor.outcome,
			Alias:     donee.outcome,
			Threshold: donor.weight * nf,
		})
		donee.weight -= avg - donor.weight
	}

	last, err := lastEntry(working[0], n, tol)
	if err != nil {
		return nil, err
	}
	return append(entries, last), nil
}

// buildHeap pairs outcomes in the same order as buildSorted (up to ties) but
// maintains the lightest and heaviest remaining outcomes with two heaps
// instead of sorting the working set.
func buildHeap(weights []float64, tol float64) ([]Entry, error) {
	n := len(weights)
	nf := float64(n)
	avg := 1 / nf

	remaining := make([]float64, n)
	copy(remaining, weights)

	// Both heaps are min-heaps. Heaviest outcomes are found by ordering them
	// by decreasing weight.
	lightest := yagh.New[float64](n)
	heaviest := yagh.New[float64](n)
	for i, w := range remaining {
		lightest.Put(i, w)
		heaviest.Put(i, -w)
	}

	entries := make([]Entry, 0, n)
	for lightest.Size() > 1 {
		donor := lightest.Pop()

		// Sink the donor below every other outcome so that it can never be
		// selected as a donee again.
		heaviest.Put(donor.Elem, math.Inf(1))
		donee := heaviest.Min()

		entries = append(entries, Entry{
			Primary:   donor.Elem,
			Alias:     donee.Elem,
			Threshold: donor.Cost * nf,
		})

		remaining[donee.Elem] -= avg - donor.Cost
		lightest.Put(donee.Elem, remaining[donee.Elem])
		heaviest.Put(donee.Elem, -remaining[donee.Elem])
	}

	last := lightest.Pop()
	e, err := lastEntry(outcomeWeight{last.Elem, remaining[last.Elem]}, n, tol)
	if err != nil {
		return nil, err
	}
	return append(entries, e), nil
}

// buildPartition is Vose's linear construction. Outcomes with less than 1/n
// of mass (underfull) are paired with outcomes with at least 1/n of mass
// (overfull). The donee is moved to the underfull worklist once its mass
// falls below 1/n. Outcomes left in either worklist when the other one is
// empty must each hold exactly 1/n of mass.
func buildPartition(weights []float64, tol float64) ([]Entry, error) {
	n := len(weights)
	nf := float64(n)
	avg := 1 / nf

	remaining := make([]float64, n)
	copy(remaining, weights)

	underfull := make([]int, 0, n)
	overfull := make([]int, 0, n)
	for i, w := range remaining {
		if w < avg {
			underfull = append(underfull, i)
		} else {
			overfull = append(overfull, i)
		}
	}

	entries := make([]Entry, 0, n)
	for len(underfull) > 0 && len(overfull) > 0 {
		donor := underfull[len(underfull)-1]
		underfull = underfull[:len(underfull)-1]
		donee := overfull[len(overfull)-1]

		entries = append(entries, Entry{
			Primary:   donor,
			Alias:     donee,
			Threshold: remaining[donor] * nf,
		})

		remaining[donee] -= avg - remaining[donor]
		if remaining[donee] < avg {
			overfull = overfull[:len(overfull)-1]
			underfull = append(underfull, donee)
		}
	}

	for _, leftovers := range [][]int{overfull, underfull} {
		for _, i := range leftovers {
			e, err := lastEntry(outcomeWeight{i, remaining[i]}, n, tol)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
	}
	return entries, nil
}
