package rng

import "sync"

// Source mirrors dice.Source so that this package does not depend on dice.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// Locked serializes access to a source so that it can be shared by samplers
// running in several goroutines.
//
// Locking each call separately does not keep a sampler's integer and float
// draws adjacent in the underlying sequence. Use one source per goroutine
// when reproducible sequences matter.
type Locked struct {
	mu  sync.Mutex
	src Source
}

// NewLocked returns a source guarding src with a mutex.
func NewLocked(src Source) *Locked {
	return &Locked{src: src}
}

func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}
