package lattice

import (
	"errors"
	"math"
	"slices"
	"testing"

	"cube-ca/pkg/core"
)

type fixedSource struct {
	vals []float64
	i    int
}

func (f *fixedSource) Float64() float64 {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	return v
}

func TestSeedExtremes(t *testing.T) {
	l := mustNew(t, 4, 4, 4, Toroidal, 3)
	if err := Seed(l, core.NewRNG(1), 0); err != nil {
		t.Fatal(err)
	}
	if l.Population() != 0 {
		t.Fatalf("p=0 population = %d", l.Population())
	}

	if err := Seed(l, core.NewRNG(1), 1); err != nil {
		t.Fatal(err)
	}
	if l.Population() != l.Len() {
		t.Fatalf("p=1 population = %d, want %d", l.Population(), l.Len())
	}
	l.Sites(func(s Site) {
		if s.Life != 3 || !s.Visible {
			t.Fatalf("seeded site %+v should have full life", s)
		}
	})
}

func TestSeedThreshold(t *testing.T) {
	l := mustNew(t, 3, 3, 3, FrozenBorder, 2)
	src := &fixedSource{vals: []float64{0.1, 0.5, 0.49, 0.9}}
	if err := Seed(l, src, 0.5); err != nil {
		t.Fatal(err)
	}
	if src.i != l.Len() {
		t.Fatalf("drew %d values for %d cells", src.i, l.Len())
	}
	for i := range l.cells {
		want := uint8(0)
		if v := src.vals[i%4]; v < 0.5 {
			want = 1
		}
		if l.cells[i].state != want {
			t.Fatalf("cell %d state %d, want %d", i, l.cells[i].state, want)
		}
	}
}

func TestSeedRejectsInvalidProbability(t *testing.T) {
	l := mustNew(t, 3, 3, 3, Toroidal, 2)
	if err := l.Set(1, 1, 1, 1); err != nil {
		t.Fatal(err)
	}
	for _, p := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		if err := Seed(l, core.NewRNG(3), p); !errors.Is(err, ErrInvalidProbability) {
			t.Fatalf("Seed(p=%v) err = %v", p, err)
		}
	}
	if l.Population() != 1 {
		t.Fatal("rejected seed must leave the lattice untouched")
	}
}

func TestSeedDeterministic(t *testing.T) {
	a := mustNew(t, 6, 6, 6, Toroidal, 3)
	b := mustNew(t, 6, 6, 6, Toroidal, 3)
	if err := Seed(a, core.NewRNG(42), 0.3); err != nil {
		t.Fatal(err)
	}
	if err := Seed(b, core.NewRNG(42), 0.3); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(states(a), states(b)) {
		t.Fatal("same seed produced different lattices")
	}
	if a.Population() == 0 || a.Population() == a.Len() {
		t.Fatalf("p=0.3 population %d looks degenerate", a.Population())
	}
}
