// Package rng provides randomness sources for dice samplers. Every source in
// this package implements dice.Source.
package rng

import (
	"math/rand"

	exprand "golang.org/x/exp/rand"
)

// Std draws randomness from a math/rand generator.
type Std struct {
	r *rand.Rand
}

// NewStd returns a source backed by a math/rand generator seeded with seed.
func NewStd(seed int64) *Std {
	return &Std{r: rand.New(rand.NewSource(seed))}
}

// FromRand returns a source backed by r.
func FromRand(r *rand.Rand) *Std {
	return &Std{r: r}
}

func (s *Std) IntN(n int) int {
	return s.r.Intn(n)
}

func (s *Std) Float64() float64 {
	return s.r.Float64()
}

// Exp draws randomness from a golang.org/x/exp/rand generator, PCG by
// default.
type Exp struct {
	r *exprand.Rand
}

// NewExp returns a source backed by a PCG generator seeded with seed.
func NewExp(seed uint64) *Exp {
	return &Exp{r: exprand.New(exprand.NewSource(seed))}
}

// FromExpRand returns a source backed by r.
func FromExpRand(r *exprand.Rand) *Exp {
	return &Exp{r: r}
}

func (s *Exp) IntN(n int) int {
	return s.r.Intn(n)
}

func (s *Exp) Float64() float64 {
	return s.r.Float64()
}
