// Package wheels provides a roulette wheel sampler. It draws in O(log n) and
// serves as a reference implementation against which alias tables are
// checked.
package wheels

import "log"

type Wheel struct {
	n int
	// sumWeights represents a complete tree with n leaves. The root of the
	// tree is at index 1. The left child of a node at index i is at i*2, and
	// the right child at i*2+1. The weight of a parent is the sum of its
	// children's weights.
	sumWeights []float64
}

// New returns a wheel over len(weights) outcomes where outcome i is selected
// with probability weights[i] / Σ weights.
func New(weights []float64) *Wheel {
	w := &Wheel{
		n:          len(weights),
		sumWeights: make([]float64, len(weights)*2),
	}
	copy(w.sumWeights[w.n:], weights)
	for p := w.n - 1; p > 0; p-- {
		l := p * 2
		r := l + 1
		w.sumWeights[p] = w.sumWeights[l] + w.sumWeights[r]
	}
	return w
}

// Len returns the number of outcomes on the wheel.
func (w *Wheel) Len() int {
	return w.n
}

// TotalWeight returns the sum of all weights.
func (w *Wheel) TotalWeight() float64 {
	if w.n == 0 {
		return 0
	}
	return w.sumWeights[1]
}

// Roll selects an outcome accordingly to random number roll in [0, 1). It
// returns -1 if the wheel has no weight.
func (w *Wheel) Roll(roll float64) int {
	if roll < 0 || 1 <= roll {
		log.Fatalf("r must be a random number in [0, 1), got: %f", roll)
	}
	if w.n == 0 || w.sumWeights[1] == 0 {
		return -1
	}

	x := roll * w.sumWeights[1]
	i := 1
	for i < w.n {
		l := i * 2
		r := l + 1
		if x < w.sumWeights[l] {
			i = l
		} else {
			i = r
			x -= w.sumWeights[l]
		}
	}
	return i - w.n
}
