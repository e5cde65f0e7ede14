package lattice

import "testing"

func TestCountWrapsAcrossCorner(t *testing.T) {
	l := mustNew(t, 4, 5, 6, Toroidal, 3)
	if err := l.Set(3, 4, 5, 1); err != nil {
		t.Fatal(err)
	}
	if got := CountAliveNeighbors(l, 0, 0, 0); got != 1 {
		t.Fatalf("count at origin = %d, want 1", got)
	}
}

func TestCountIncludesEveryWrapPartner(t *testing.T) {
	l := mustNew(t, 5, 5, 5, Toroidal, 3)
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				l.Clear()
				x := l.WrappedIndex(AxisX, dx, 0)
				y := l.WrappedIndex(AxisY, dy, 0)
				z := l.WrappedIndex(AxisZ, dz, 0)
				if err := l.Set(x, y, z, 1); err != nil {
					t.Fatal(err)
				}
				if got := CountAliveNeighbors(l, 0, 0, 0); got != 1 {
					t.Fatalf("partner (%d,%d,%d) counted %d times", x, y, z, got)
				}
			}
		}
	}
}

func TestCountExcludesCentre(t *testing.T) {
	l := mustNew(t, 3, 3, 3, Toroidal, 3)
	if err := l.Set(1, 1, 1, 1); err != nil {
		t.Fatal(err)
	}
	if got := CountAliveNeighbors(l, 1, 1, 1); got != 0 {
		t.Fatalf("count = %d, want 0", got)
	}
}

func TestCountFullNeighbourhoodSmallestLattice(t *testing.T) {
	l := mustNew(t, 3, 3, 3, Toroidal, 3)
	for z := 0; z < 3; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				if err := l.Set(x, y, z, 1); err != nil {
					t.Fatal(err)
				}
			}
		}
	}
	for _, p := range [][3]int{{0, 0, 0}, {1, 1, 1}, {2, 0, 1}} {
		if got := CountAliveNeighbors(l, p[0], p[1], p[2]); got != MaxNeighbors {
			t.Fatalf("count at %v = %d, want %d", p, got, MaxNeighbors)
		}
	}
}

func TestCountReadsSnapshotOnly(t *testing.T) {
	l := mustNew(t, 5, 5, 5, Toroidal, 3)
	if err := l.Set(1, 2, 2, 1); err != nil {
		t.Fatal(err)
	}
	c, _ := l.At(1, 2, 2)
	c.state = 0
	if got := CountAliveNeighbors(l, 2, 2, 2); got != 1 {
		t.Fatalf("count after current-state change = %d, want 1", got)
	}

	d, _ := l.At(3, 3, 3)
	d.state = 1
	if got := CountAliveNeighbors(l, 2, 2, 2); got != 1 {
		t.Fatalf("count must ignore unsnapshotted births, got %d", got)
	}
}
