package lattice

import "golang.org/x/sync/errgroup"

// Stats summarises one generation.
type Stats struct {
	Generation uint64
	Alive      int
	Visible    int
	Births     int
	Deaths     int
}

func (s *Stats) add(o Stats) {
	s.Alive += o.Alive
	s.Visible += o.Visible
	s.Births += o.Births
	s.Deaths += o.Deaths
}

// Engine advances a lattice one synchronous generation at a time.
type Engine struct {
	lat     *Lattice
	rule    Rule
	workers int

	next  []uint8
	gen   uint64
	stats Stats
}

// NewEngine returns an engine for l. workers <= 1 runs every phase on the
// calling goroutine.
func NewEngine(l *Lattice, rule Rule, workers int) *Engine {
	if workers < 1 {
		workers = 1
	}
	e := &Engine{lat: l, rule: rule, workers: workers, next: make([]uint8, l.Len())}
	e.stats = e.census()
	return e
}

// Lattice returns the lattice the engine drives.
func (e *Engine) Lattice() *Lattice { return e.lat }

// Rule returns the active rule.
func (e *Engine) Rule() Rule { return e.rule }

// Workers returns the evaluation parallelism.
func (e *Engine) Workers() int { return e.workers }

// SetWorkers changes the evaluation parallelism for subsequent steps.
func (e *Engine) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	e.workers = n
}

// Generation returns the number of completed steps since the last Reset.
func (e *Engine) Generation() uint64 { return e.gen }

// Stats returns the statistics of the latest completed step.
func (e *Engine) Stats() Stats { return e.stats }

// Reset zeroes the generation counter and recounts the lattice, typically
// after reseeding.
func (e *Engine) Reset() {
	e.gen = 0
	e.stats = e.census()
}

// Step runs one generation: snapshot every cell, evaluate every updatable
// cell against the snapshot, then apply the new states and decay life.
func (e *Engine) Step() Stats {
	e.snapshot()

	zlo, zhi := e.lat.updatableRange(AxisZ)
	slabs := e.slabs(zlo, zhi)

	// Evaluation only reads snapshots; the apply phase writes them, so the
	// two must not overlap.
	e.run(slabs, func(i int, from, to int) {
		e.evaluate(from, to)
	})

	partial := make([]Stats, len(slabs))
	e.run(slabs, func(i int, from, to int) {
		partial[i] = e.apply(from, to)
	})

	var st Stats
	for _, p := range partial {
		st.add(p)
	}
	if e.lat.boundary == FrozenBorder {
		st.Alive, st.Visible = e.frozenShellCensus(st.Alive, st.Visible)
	}
	e.gen++
	st.Generation = e.gen
	e.stats = st
	return st
}

func (e *Engine) snapshot() {
	cells := e.lat.cells
	for i := range cells {
		cells[i].prev = cells[i].state
	}
}

func (e *Engine) evaluate(zFrom, zTo int) {
	l := e.lat
	l.forEachUpdatableIn(zFrom, zTo, func(c *Cell, x, y, z int) {
		n := CountAliveNeighbors(l, x, y, z)
		e.next[l.Index(x, y, z)] = e.rule.Next(c.effectiveState(), n)
	})
}

func (e *Engine) apply(zFrom, zTo int) Stats {
	var st Stats
	l := e.lat
	l.forEachUpdatableIn(zFrom, zTo, func(c *Cell, x, y, z int) {
		c.applyNextState(e.next[l.Index(x, y, z)])
		c.decay()
		switch {
		case c.prev == 0 && c.state == 1:
			st.Births++
		case c.prev == 1 && c.state == 0:
			st.Deaths++
		}
		st.Alive += int(c.state)
		if c.Visible() {
			st.Visible++
		}
	})
	return st
}

type slab struct{ from, to int }

// slabs splits [zlo, zhi) into at most e.workers contiguous ranges.
func (e *Engine) slabs(zlo, zhi int) []slab {
	n := zhi - zlo
	parts := e.workers
	if parts > n {
		parts = n
	}
	if parts < 1 {
		parts = 1
	}
	out := make([]slab, 0, parts)
	for i := 0; i < parts; i++ {
		from := zlo + i*n/parts
		to := zlo + (i+1)*n/parts
		out = append(out, slab{from: from, to: to})
	}
	return out
}

func (e *Engine) run(slabs []slab, fn func(i int, from, to int)) {
	if len(slabs) == 1 {
		fn(0, slabs[0].from, slabs[0].to)
		return
	}
	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, s := range slabs {
		i, s := i, s
		g.Go(func() error {
			fn(i, s.from, s.to)
			return nil
		})
	}
	// fn never fails; Wait is the barrier.
	_ = g.Wait()
}

// census counts every cell without stepping.
func (e *Engine) census() Stats {
	st := Stats{Generation: e.gen}
	for i := range e.lat.cells {
		c := &e.lat.cells[i]
		st.Alive += int(c.state)
		if c.Visible() {
			st.Visible++
		}
	}
	return st
}

// frozenShellCensus adds the static border cells to interior totals.
func (e *Engine) frozenShellCensus(alive, visible int) (int, int) {
	l := e.lat
	for z := 0; z < l.d; z++ {
		for y := 0; y < l.h; y++ {
			for x := 0; x < l.w; x++ {
				if x > 0 && x < l.w-1 && y > 0 && y < l.h-1 && z > 0 && z < l.d-1 {
					continue
				}
				c := &l.cells[l.Index(x, y, z)]
				alive += int(c.state)
				if c.Visible() {
					visible++
				}
			}
		}
	}
	return alive, visible
}
