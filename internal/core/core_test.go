package core

import (
	"slices"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepPacing(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	fs := newFixedStep(10, clk.now)

	if !fs.ShouldStep() {
		t.Fatal("first poll should fire")
	}
	if fs.ShouldStep() {
		t.Fatal("second poll without time passing should not fire")
	}
	clk.advance(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a tick should not fire")
	}
	clk.advance(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full tick should fire")
	}

	clk.advance(time.Second)
	fired := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			fired++
		}
	}
	if fired != 2 {
		t.Fatalf("after a stall fired %d times, want backlog capped at 2", fired)
	}
}

func TestFixedStepSetTPS(t *testing.T) {
	fs := newFixedStep(0, time.Now)
	if fs.TPS() != 60 {
		t.Fatalf("default TPS = %d, want 60", fs.TPS())
	}
	fs.SetTPS(25)
	if fs.TPS() != 25 {
		t.Fatalf("TPS = %d, want 25", fs.TPS())
	}
}

type stubSim struct{ name string }

func (s *stubSim) Name() string   { return s.name }
func (s *stubSim) Size() Size     { return Size{W: 1, H: 1} }
func (s *stubSim) Reset(int64)    {}
func (s *stubSim) Step()          {}
func (s *stubSim) Cells() []uint8 { return []uint8{0} }

func TestRegistryBuild(t *testing.T) {
	Register("stub-b", func(map[string]string) (Sim, error) { return &stubSim{name: "stub-b"}, nil })
	Register("stub-a", func(map[string]string) (Sim, error) { return &stubSim{name: "stub-a"}, nil })
	Register("", func(map[string]string) (Sim, error) { return nil, nil })
	Register("stub-nil", nil)

	names := Names()
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	if slices.Contains(names, "") || slices.Contains(names, "stub-nil") {
		t.Fatalf("invalid registrations accepted: %v", names)
	}

	sim, err := Build("stub-a", nil)
	if err != nil || sim.Name() != "stub-a" {
		t.Fatalf("Build(stub-a) = %v, %v", sim, err)
	}
	if _, err := Build("missing", nil); err == nil {
		t.Fatal("expected error for unknown sim")
	}
}

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(2, 1, 7)
	g.Set(3, 0, 9)
	g.Set(-1, 0, 9)
	if g.At(2, 1) != 7 || g.Cells()[g.Index(2, 1)] != 7 {
		t.Fatal("Set/At mismatch")
	}
	if g.At(5, 5) != 0 {
		t.Fatal("out of range read should be zero")
	}
	g.Clear()
	if slices.Max(g.Cells()) != 0 {
		t.Fatal("Clear left data behind")
	}
	if z := NewByteGrid(0, -1); z.W != 1 || z.H != 1 {
		t.Fatalf("degenerate grid %dx%d", z.W, z.H)
	}
}

func TestParameterControlClampAndLookup(t *testing.T) {
	c := ParameterControl{Min: 0, Max: 10, HasMin: true, HasMax: true}
	if c.Clamp(-3) != 0 || c.Clamp(12) != 10 || c.Clamp(4) != 4 {
		t.Fatal("clamp mismatch")
	}
	snap := ParameterSnapshot{Groups: []ParameterGroup{{Name: "g", Params: []Parameter{{Key: "k", Value: "v"}}}}}
	if p, ok := snap.Lookup("k"); !ok || p.Value != "v" {
		t.Fatalf("Lookup(k) = %v, %v", p, ok)
	}
	if _, ok := snap.Lookup("nope"); ok {
		t.Fatal("Lookup of missing key succeeded")
	}
}
