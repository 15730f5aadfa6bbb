// Package dice implements O(1) sampling from a fixed discrete distribution
// using Vose's alias method.
//
// A Table is built once from a weight vector and never changes afterwards. A
// Sampler pairs a Table with a randomness source and resolves each draw with
// one uniform integer and one uniform float.
package dice

import (
	"fmt"
	"math"

	"github.com/rhartert/sparsesets"
)

// NoAlias is the alias of entries that always resolve to their primary
// outcome. It only appears on entries whose threshold is 1.
const NoAlias = -1

// Entry is one slot of an alias table.
type Entry struct {
	// Primary is the outcome returned when the coin lands at or below the
	// threshold.
	Primary int

	// Alias is the outcome returned when the coin lands above the threshold,
	// or NoAlias.
	Alias int

	// Threshold is the probability, once the slot is selected, of returning
	// Primary rather than Alias.
	Threshold float64
}

// Table is an immutable alias table over n outcomes. It is safe for
// concurrent use by several samplers.
type Table struct {
	entries []Entry
}

// Len returns the number of slots in the table, which is also the number of
// outcomes.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entry returns the entry at the given slot.
func (t *Table) Entry(slot int) Entry {
	return t.entries[slot]
}

// Entries returns the table's entries in slot order.
//
// Important: the slice is a view on the table's internal structure and should
// only be used in read-only operations. Modifying the slice breaks the
// table's immutability for every sampler sharing it.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Resolve maps a slot in [0, Len()) and a coin in [0, 1) to an outcome.
func (t *Table) Resolve(slot int, coin float64) int {
	e := &t.entries[slot]
	if coin > e.Threshold && e.Alias != NoAlias {
		return e.Alias
	}
	return e.Primary
}

// Probabilities returns the probability of each outcome under the "pick a
// slot uniformly, then flip the slot's coin" model. For a well-formed table,
// it reproduces the weights the table was built from.
func (t *Table) Probabilities() []float64 {
	n := len(t.entries)
	slotMass := 1 / float64(n)
	probs := make([]float64, n)
	for _, e := range t.entries {
		probs[e.Primary] += slotMass * e.Threshold
		if e.Alias != NoAlias {
			probs[e.Alias] += slotMass * (1 - e.Threshold)
		}
	}
	return probs
}

// Support returns the outcomes that can be sampled with non-zero probability,
// in increasing order.
func (t *Table) Support() []int {
	n := len(t.entries)
	reachable := sparsesets.New(n)
	for _, e := range t.entries {
		if e.Threshold > 0 {
			reachable.Insert(e.Primary)
		}
		if e.Alias != NoAlias && e.Threshold < 1 {
			reachable.Insert(e.Alias)
		}
	}

	support := make([]int, 0, n)
	for k := 0; k < n; k++ {
		if reachable.Contains(k) {
			support = append(support, k)
		}
	}
	return support
}

// Validate checks the structure of the table: every outcome is the primary
// of exactly one slot, aliases are valid outcomes (or NoAlias on a slot with
// threshold 1), and thresholds lie in [0, 1] up to tol.
func (t *Table) Validate(tol float64) error {
	n := len(t.entries)
	if n == 0 {
		return ErrNoWeights
	}

	primaries := sparsesets.New(n)
	for slot, e := range t.entries {
		if e.Primary < 0 || n <= e.Primary {
			return fmt.Errorf("slot %d: primary %d is not an outcome", slot, e.Primary)
		}
		if primaries.Contains(e.Primary) {
			return fmt.Errorf("slot %d: outcome %d is the primary of several slots", slot, e.Primary)
		}
		primaries.Insert(e.Primary)

		if math.IsNaN(e.Threshold) || e.Threshold < -tol || 1+tol < e.Threshold {
			return fmt.Errorf("slot %d: threshold %f is not in [0, 1]", slot, e.Threshold)
		}
		if e.Alias == NoAlias {
			if e.Threshold != 1 {
				return fmt.Errorf("slot %d: entry without alias has threshold %f", slot, e.Threshold)
			}
			continue
		}
		if e.Alias < 0 || n <= e.Alias {
			return fmt.Errorf("slot %d: alias %d is not an outcome", slot, e.Alias)
		}
	}
	return nil
}
