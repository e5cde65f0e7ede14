package lattice

import (
	"errors"
	"testing"
)

func mustNew(t *testing.T, w, h, d int, b Boundary, maxLife int) *Lattice {
	t.Helper()
	l, err := New(w, h, d, b, maxLife)
	if err != nil {
		t.Fatalf("New(%d,%d,%d): %v", w, h, d, err)
	}
	return l
}

func TestNewRejectsSmallDimensions(t *testing.T) {
	cases := [][3]int{{2, 5, 5}, {5, 2, 5}, {5, 5, 2}, {0, 0, 0}, {-3, 4, 4}}
	for _, c := range cases {
		_, err := New(c[0], c[1], c[2], Toroidal, 3)
		if !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("New(%v) err = %v, want ErrInvalidDimension", c, err)
		}
	}
	if _, err := New(3, 3, 3, Toroidal, 3); err != nil {
		t.Fatalf("3x3x3 should be valid: %v", err)
	}
}

func TestNewRejectsMaxLife(t *testing.T) {
	for _, ml := range []int{0, -1, MaxLifeLimit + 1} {
		if _, err := New(4, 4, 4, Toroidal, ml); !errors.Is(err, ErrInvalidMaxLife) {
			t.Fatalf("maxLife %d: err = %v, want ErrInvalidMaxLife", ml, err)
		}
	}
	if _, err := New(4, 4, 4, Boundary(9), 3); !errors.Is(err, ErrInvalidBoundary) {
		t.Fatalf("unknown boundary: err = %v", err)
	}
}

func TestNewStartsDead(t *testing.T) {
	l := mustNew(t, 4, 5, 6, Toroidal, 3)
	if l.Len() != 120 {
		t.Fatalf("len = %d, want 120", l.Len())
	}
	if l.Population() != 0 {
		t.Fatalf("population = %d, want 0", l.Population())
	}
	c, err := l.At(1, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if c.MaxLife() != 3 || c.Visible() {
		t.Fatalf("fresh cell maxLife=%d visible=%v", c.MaxLife(), c.Visible())
	}
}

func TestAtBounds(t *testing.T) {
	l := mustNew(t, 4, 5, 6, Toroidal, 3)
	bad := [][3]int{{4, 0, 0}, {0, 5, 0}, {0, 0, 6}, {-1, 0, 0}, {0, -1, 0}, {0, 0, -1}}
	for _, p := range bad {
		if _, err := l.At(p[0], p[1], p[2]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("At(%v) err = %v, want ErrOutOfBounds", p, err)
		}
		if err := l.Set(p[0], p[1], p[2], 1); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set(%v) err = %v, want ErrOutOfBounds", p, err)
		}
	}
	if l.Population() != 0 {
		t.Fatal("failed Set must not change the lattice")
	}
	if _, err := l.At(3, 4, 5); err != nil {
		t.Fatalf("At(3,4,5): %v", err)
	}
}

func TestSetAndClear(t *testing.T) {
	l := mustNew(t, 3, 3, 3, Toroidal, 2)
	if err := l.Set(1, 1, 1, 1); err != nil {
		t.Fatal(err)
	}
	c, _ := l.At(1, 1, 1)
	if c.State() != 1 || c.Life() != 2 {
		t.Fatalf("set cell state=%d life=%d", c.State(), c.Life())
	}
	l.Clear()
	if l.Population() != 0 || c.Visible() {
		t.Fatal("Clear must kill every cell")
	}
}

func TestWrappedIndex(t *testing.T) {
	l := mustNew(t, 5, 4, 3, Toroidal, 1)
	cases := []struct {
		axis         Axis
		offset, base int
		want         int
	}{
		{AxisX, -1, 0, 4},
		{AxisX, 1, 4, 0},
		{AxisX, 0, 2, 2},
		{AxisX, -7, 0, 3},
		{AxisX, 6, 3, 4},
		{AxisY, -1, 0, 3},
		{AxisY, 1, 3, 0},
		{AxisZ, -1, 0, 2},
		{AxisZ, 1, 2, 0},
		{AxisZ, -4, 1, 0},
	}
	for _, c := range cases {
		if got := l.WrappedIndex(c.axis, c.offset, c.base); got != c.want {
			t.Fatalf("WrappedIndex(%d,%d,%d) = %d, want %d", c.axis, c.offset, c.base, got, c.want)
		}
	}
}

func TestForEachUpdatable(t *testing.T) {
	torus := mustNew(t, 4, 5, 6, Toroidal, 3)
	n := 0
	torus.ForEachUpdatable(func(c *Cell, x, y, z int) {
		if c != &torus.cells[torus.Index(x, y, z)] {
			t.Fatalf("cell pointer mismatch at (%d,%d,%d)", x, y, z)
		}
		n++
	})
	if n != 120 {
		t.Fatalf("toroidal visited %d sites, want 120", n)
	}

	frozen := mustNew(t, 4, 5, 6, FrozenBorder, 3)
	n = 0
	frozen.ForEachUpdatable(func(_ *Cell, x, y, z int) {
		if x == 0 || x == 3 || y == 0 || y == 4 || z == 0 || z == 5 {
			t.Fatalf("frozen border visited shell site (%d,%d,%d)", x, y, z)
		}
		n++
	})
	if n != 2*3*4 {
		t.Fatalf("frozen visited %d sites, want 24", n)
	}
}

func TestLayoutPosition(t *testing.T) {
	l := mustNew(t, 5, 5, 5, Toroidal, 1)
	if got := l.LayoutPosition(0, 0, 0); got != (Vec3{2, 2, 2}) {
		t.Fatalf("LayoutPosition(0,0,0) = %v", got)
	}
	if got := l.LayoutPosition(4, 4, 4); got != (Vec3{-2, -2, -2}) {
		t.Fatalf("LayoutPosition(4,4,4) = %v", got)
	}
	if got := l.LayoutPosition(2, 2, 2); got != (Vec3{}) {
		t.Fatalf("centre should map to origin, got %v", got)
	}

	even := mustNew(t, 4, 6, 3, Toroidal, 1)
	if got := even.LayoutPosition(0, 5, 1); got != (Vec3{1.5, -2.5, 0}) {
		t.Fatalf("LayoutPosition(0,5,1) = %v", got)
	}
}

func TestSitesVisitsEverySite(t *testing.T) {
	l := mustNew(t, 3, 4, 5, FrozenBorder, 2)
	if err := l.Set(0, 3, 4, 1); err != nil {
		t.Fatal(err)
	}
	seen := 0
	visible := 0
	l.Sites(func(s Site) {
		seen++
		if s.Position != l.LayoutPosition(s.X, s.Y, s.Z) {
			t.Fatalf("site (%d,%d,%d) position %v", s.X, s.Y, s.Z, s.Position)
		}
		if s.Visible {
			visible++
			if s.X != 0 || s.Y != 3 || s.Z != 4 || s.State != 1 || s.Life != 2 {
				t.Fatalf("unexpected visible site %+v", s)
			}
		}
	})
	if seen != 60 || visible != 1 {
		t.Fatalf("seen=%d visible=%d, want 60 1", seen, visible)
	}
}

func TestParseBoundary(t *testing.T) {
	for in, want := range map[string]Boundary{"toroidal": Toroidal, "Frozen": FrozenBorder, " wrap ": Toroidal, "frozen-border": FrozenBorder} {
		got, err := ParseBoundary(in)
		if err != nil || got != want {
			t.Fatalf("ParseBoundary(%q) = %v, %v", in, got, err)
		}
		if again, err := ParseBoundary(got.String()); err != nil || again != got {
			t.Fatalf("round trip of %v failed: %v %v", got, again, err)
		}
	}
	if _, err := ParseBoundary("klein"); !errors.Is(err, ErrInvalidBoundary) {
		t.Fatalf("err = %v, want ErrInvalidBoundary", err)
	}
}
