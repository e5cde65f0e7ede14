package cube

import (
	"image/color"

	"cube-ca/internal/core"
	pcore "cube-ca/pkg/core"
	"cube-ca/pkg/lattice"
)

// World is one simulation session: a lattice, the engine that steps it and a
// 2D display buffer of its z-slices.
type World struct {
	cfg Config

	lat *lattice.Lattice
	eng *lattice.Engine

	display    *core.ByteGrid
	cols, rows int
	palette    []color.RGBA

	seed int64
}

// New returns a cube session with the provided dimensions using defaults.
func New(w, h, d int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Depth = d
	return NewWithConfig(cfg)
}

// NewWithConfig validates cfg, builds the lattice and seeds it with cfg.Seed.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{cfg: cfg}
	if err := w.build(); err != nil {
		return nil, err
	}
	w.Reset(0)
	return w, nil
}

func (w *World) build() error {
	lat, err := lattice.New(w.cfg.Width, w.cfg.Height, w.cfg.Depth, w.cfg.Boundary, w.cfg.MaxLife)
	if err != nil {
		return err
	}
	w.lat = lat
	w.eng = lattice.NewEngine(lat, w.cfg.Rule, w.cfg.Workers)
	w.cols, w.rows = tileGrid(w.cfg.Depth)
	dw, dh := displaySize(w.cfg.Width, w.cfg.Height, w.cols, w.rows)
	w.display = core.NewByteGrid(dw, dh)
	w.palette = buildPalette(w.cfg.MaxLife)
	return nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "cube" }

// Size reports the display buffer dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.display.W, H: w.display.H} }

// Cells exposes the display buffer: one life value per pixel.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Lattice exposes the lattice for renderers that draw it in 3D. Callers must
// only read it between steps.
func (w *World) Lattice() *lattice.Lattice { return w.lat }

// Stats returns the statistics of the latest generation.
func (w *World) Stats() lattice.Stats { return w.eng.Stats() }

// Config returns the active configuration, including pending changes.
func (w *World) Config() Config { return w.cfg }

// Seed returns the seed used by the latest Reset.
func (w *World) Seed() int64 { return w.seed }

// Reset reseeds the lattice. A zero seed means the configured seed. Pending
// max-life changes rebuild the lattice first.
func (w *World) Reset(seed int64) {
	if w.lat.MaxLife() != w.cfg.MaxLife {
		// cfg was validated on every path that changes MaxLife.
		if err := w.build(); err != nil {
			return
		}
	}
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.seed = effective
	if err := lattice.Seed(w.lat, pcore.NewRNG(effective), w.cfg.Probability); err != nil {
		w.lat.Clear()
	}
	w.eng.Reset()
	w.rebuildDisplay()
}

// Step advances the lattice by one generation and refreshes the display.
func (w *World) Step() {
	w.eng.Step()
	w.rebuildDisplay()
}

func init() {
	core.Register("cube", func(cfg map[string]string) (core.Sim, error) {
		c, err := Parse(cfg)
		if err != nil {
			return nil, err
		}
		return NewWithConfig(c)
	})
}
