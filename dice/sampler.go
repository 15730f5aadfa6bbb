package dice

// Source is the randomness consumed by a Sampler.
type Source interface {
	// IntN returns a uniformly distributed integer in [0, n). It is only
	// called with n > 0.
	IntN(n int) int

	// Float64 returns a uniformly distributed float in [0, 1).
	Float64() float64
}

// Sampler draws outcomes from a Table using randomness from a source of type
// S. The table may be shared with other samplers but the source belongs to
// the sampler: a Sampler must not be used concurrently unless its source is
// safe for concurrent use (see rng.Locked).
type Sampler[S Source] struct {
	table *Table
	src   S
}

// New builds the alias table of the given weights with the default
// configuration and returns a sampler drawing from it with src.
func New[S Source](weights []float64, src S) (*Sampler[S], error) {
	return NewWithConfig(weights, src, Config{})
}

// NewWithConfig is like New but builds the table with the given
// configuration.
func NewWithConfig[S Source](weights []float64, src S, cfg Config) (*Sampler[S], error) {
	table, err := NewTable(weights, cfg)
	if err != nil {
		return nil, err
	}
	return NewSampler(table, src), nil
}

// NewSampler returns a sampler drawing from an existing table.
func NewSampler[S Source](table *Table, src S) *Sampler[S] {
	return &Sampler[S]{table: table, src: src}
}

// Table returns the sampler's table.
func (s *Sampler[S]) Table() *Table {
	return s.table
}

// WithSource returns a new sampler sharing the table of s but drawing its
// randomness from src. This is the way to sample from the same distribution
// in several goroutines.
func (s *Sampler[S]) WithSource(src S) *Sampler[S] {
	return NewSampler(s.table, src)
}

// Sample returns an outcome in [0, n) where n is the number of weights the
// sampler was built from. Each call consumes one integer and one float from
// the source.
func (s *Sampler[S]) Sample() int {
	slot := s.src.IntN(s.table.Len())
	coin := s.src.Float64()
	return s.table.Resolve(slot, coin)
}

// SampleN returns k outcomes.
func (s *Sampler[S]) SampleN(k int) []int {
	out := make([]int, k)
	s.Fill(out)
	return out
}

// Fill overwrites every element of dst with a new outcome.
func (s *Sampler[S]) Fill(dst []int) {
	for i := range dst {
		dst[i] = s.Sample()
	}
}
