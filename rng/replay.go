package rng

import "fmt"

// Draw is one (slot, coin) pair as consumed by dice.Sampler.Sample.
type Draw struct {
	Int   int
	Float float64
}

// Replay is a deterministic source that returns scripted draws. Integers are
// reduced modulo the requested bound so that any script stays in range. The
// script restarts from the beginning once exhausted.
type Replay struct {
	ints   []int
	floats []float64

	nInts   int
	nFloats int
}

// NewReplay returns a source replaying the given draws in order.
func NewReplay(draws ...Draw) *Replay {
	r := &Replay{
		ints:   make([]int, len(draws)),
		floats: make([]float64, len(draws)),
	}
	for i, d := range draws {
		r.ints[i] = d.Int
		r.floats[i] = d.Float
	}
	return r
}

func (r *Replay) IntN(n int) int {
	if len(r.ints) == 0 {
		panic("replay: no draws to replay")
	}
	v := r.ints[r.nInts%len(r.ints)]
	r.nInts++
	if v < 0 {
		panic(fmt.Sprintf("replay: negative integer %d", v))
	}
	return v % n
}

func (r *Replay) Float64() float64 {
	if len(r.floats) == 0 {
		panic("replay: no draws to replay")
	}
	v := r.floats[r.nFloats%len(r.floats)]
	r.nFloats++
	return v
}

// Calls returns the number of integers and floats drawn so far.
func (r *Replay) Calls() (ints int, floats int) {
	return r.nInts, r.nFloats
}
