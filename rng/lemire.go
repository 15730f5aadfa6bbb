package rng

// Uint32Source is a generator of uniformly distributed 32-bit words.
type Uint32Source interface {
	Uint32() uint32
}

// Lemire adapts a 32-bit generator to dice.Source. Bounded integers are drawn
// with Lemire's multiply-shift rejection method, which avoids divisions on
// the fast path.
type Lemire struct {
	src Uint32Source
}

// NewLemire returns a source drawing its words from src.
func NewLemire(src Uint32Source) *Lemire {
	return &Lemire{src: src}
}

// IntN returns a uniformly distributed integer in [0, n). It panics if n is
// not in [1, 2³²].
func (l *Lemire) IntN(n int) int {
	if n <= 0 || uint64(n) > 1<<32 {
		panic("invalid argument to IntN")
	}
	if uint64(n) == 1<<32 {
		return int(l.src.Uint32())
	}
	return int(UniformUint32(l.src, uint32(n)))
}

// Float64 returns a uniformly distributed float in [0, 1) with 53 bits of
// randomness taken from two words.
func (l *Lemire) Float64() float64 {
	hi := uint64(l.src.Uint32())
	lo := uint64(l.src.Uint32())
	return float64((hi<<32|lo)>>11) / (1 << 53)
}

// UniformUint32 returns a uniformly distributed integer in [0, n). n must be
// non-zero.
//
// A word v maps to high = (v*n) >> 32. Every value of high is hit by either
// floor(2³²/n) or ceil(2³²/n) words, so returning high directly is biased.
// Rejecting the words whose low half (v*n mod 2³²) is below 2³² mod n leaves
// exactly floor(2³²/n) words per value.
func UniformUint32(src Uint32Source, n uint32) uint32 {
	v := src.Uint32()
	prod := uint64(v) * uint64(n)
	low := uint32(prod)
	// 2³² mod n < n, so the threshold is only needed when low < n.
	if low >= n {
		return uint32(prod >> 32)
	}

	thresh := -n % n // 2³² mod n
	for low < thresh {
		v = src.Uint32()
		prod = uint64(v) * uint64(n)
		low = uint32(prod)
	}
	return uint32(prod >> 32)
}
