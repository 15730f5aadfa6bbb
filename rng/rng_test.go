package rng

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	exprand "golang.org/x/exp/rand"
)

// sequence draws k (int, float) pairs from src.
func sequence(src Source, n int, k int) []Draw {
	draws := make([]Draw, k)
	for i := range draws {
		draws[i] = Draw{src.IntN(n), src.Float64()}
	}
	return draws
}

func TestSources_sameSeedSameSequence(t *testing.T) {
	testCases := []struct {
		desc   string
		newSrc func() Source
	}{
		{"std", func() Source { return NewStd(7) }},
		{"std from rand", func() Source { return FromRand(rand.New(rand.NewSource(7))) }},
		{"exp", func() Source { return NewExp(7) }},
		{"exp from rand", func() Source { return FromExpRand(exprand.New(exprand.NewSource(7))) }},
		{"lemire", func() Source { return NewLemire(rand.New(rand.NewSource(7))) }},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			want := sequence(tc.newSrc(), 10, 100)
			got := sequence(tc.newSrc(), 10, 100)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("sequence(): mismatch (-want +got):\n%s", diff)
			}
			for _, d := range got {
				if d.Int < 0 || 10 <= d.Int {
					t.Errorf("IntN(10): want value in [0, 10), got %d", d.Int)
				}
				if d.Float < 0 || 1 <= d.Float {
					t.Errorf("Float64(): want value in [0, 1), got %f", d.Float)
				}
			}
		})
	}
}

func TestReplay(t *testing.T) {
	src := NewReplay(Draw{5, 0.5}, Draw{1, 0.25})

	want := []Draw{{2, 0.5}, {1, 0.25}, {2, 0.5}}
	got := sequence(src, 3, 3)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sequence(): mismatch (-want +got):\n%s", diff)
	}
	if ints, floats := src.Calls(); ints != 3 || floats != 3 {
		t.Errorf("Calls(): want (3, 3), got (%d, %d)", ints, floats)
	}
}

func TestReplay_empty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("IntN(): want panic, got none")
		}
	}()
	NewReplay().IntN(1)
}

func TestLocked_concurrent(t *testing.T) {
	src := NewLocked(NewStd(3))

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, d := range sequence(src, 4, 1000) {
				if d.Int < 0 || 4 <= d.Int {
					t.Errorf("IntN(4): want value in [0, 4), got %d", d.Int)
				}
			}
		}()
	}
	wg.Wait()
}

func TestLocked_preservesSequence(t *testing.T) {
	want := sequence(NewStd(4), 6, 50)
	got := sequence(NewLocked(NewStd(4)), 6, 50)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sequence(): mismatch (-want +got):\n%s", diff)
	}
}
