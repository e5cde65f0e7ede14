package lattice

import (
	"fmt"
	"strings"
)

const (
	// MinDimension is the smallest axis length with 26 distinct wrapped
	// neighbours.
	MinDimension = 3
	// MaxLifeLimit bounds the per-cell fade counter.
	MaxLifeLimit = 255
)

// Boundary selects which sites take part in a generation update.
type Boundary uint8

const (
	// Toroidal updates every site; all axes wrap.
	Toroidal Boundary = iota
	// FrozenBorder keeps the outermost shell static and updates the interior.
	FrozenBorder
)

func (b Boundary) String() string {
	switch b {
	case Toroidal:
		return "toroidal"
	case FrozenBorder:
		return "frozen"
	default:
		return fmt.Sprintf("Boundary(%d)", uint8(b))
	}
}

// ParseBoundary converts a boundary name back into a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toroidal", "torus", "wrap":
		return Toroidal, nil
	case "frozen", "frozen-border", "border":
		return FrozenBorder, nil
	}
	return Toroidal, fmt.Errorf("%w: %q", ErrInvalidBoundary, s)
}

// Axis names one lattice dimension.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Vec3 is a point in layout space.
type Vec3 struct {
	X, Y, Z float64
}

// Site is a read-only view of one cell handed to renderers.
type Site struct {
	X, Y, Z  int
	State    uint8
	Life     int
	Visible  bool
	Position Vec3
}

// Lattice owns a width×height×depth block of cells stored x-fastest.
type Lattice struct {
	w, h, d  int
	boundary Boundary
	maxLife  uint8
	cells    []Cell
}

// New allocates a lattice with every cell dead.
func New(w, h, d int, boundary Boundary, maxLife int) (*Lattice, error) {
	if w < MinDimension || h < MinDimension || d < MinDimension {
		return nil, fmt.Errorf("%w: %dx%dx%d (each axis must be >= %d)", ErrInvalidDimension, w, h, d, MinDimension)
	}
	if maxLife < 1 || maxLife > MaxLifeLimit {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxLife, maxLife)
	}
	if boundary != Toroidal && boundary != FrozenBorder {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBoundary, boundary)
	}
	l := &Lattice{
		w:        w,
		h:        h,
		d:        d,
		boundary: boundary,
		maxLife:  uint8(maxLife),
		cells:    make([]Cell, w*h*d),
	}
	l.Clear()
	return l, nil
}

// Dims returns width, height and depth.
func (l *Lattice) Dims() (int, int, int) { return l.w, l.h, l.d }

// Len returns the number of sites.
func (l *Lattice) Len() int { return len(l.cells) }

// Boundary returns the active boundary policy.
func (l *Lattice) Boundary() Boundary { return l.boundary }

// MaxLife returns the life value given to newborn cells.
func (l *Lattice) MaxLife() int { return int(l.maxLife) }

// Index returns the slice index for in-range coordinates.
func (l *Lattice) Index(x, y, z int) int { return (z*l.h+y)*l.w + x }

func (l *Lattice) inBounds(x, y, z int) bool {
	return x >= 0 && x < l.w && y >= 0 && y < l.h && z >= 0 && z < l.d
}

// At returns the cell at (x, y, z). Coordinates are not wrapped.
func (l *Lattice) At(x, y, z int) (*Cell, error) {
	if !l.inBounds(x, y, z) {
		return nil, fmt.Errorf("%w: (%d,%d,%d) in %dx%dx%d", ErrOutOfBounds, x, y, z, l.w, l.h, l.d)
	}
	return &l.cells[l.Index(x, y, z)], nil
}

// Set initializes the cell at (x, y, z) to state, resetting its life.
func (l *Lattice) Set(x, y, z int, state uint8) error {
	c, err := l.At(x, y, z)
	if err != nil {
		return err
	}
	c.initialize(state, l.maxLife)
	return nil
}

// Clear kills every cell and drops all remaining life.
func (l *Lattice) Clear() {
	for i := range l.cells {
		l.cells[i].initialize(0, l.maxLife)
	}
}

func (l *Lattice) dim(axis Axis) int {
	switch axis {
	case AxisX:
		return l.w
	case AxisY:
		return l.h
	default:
		return l.d
	}
}

// WrappedIndex returns base+offset wrapped onto the given axis. Negative
// offsets of any magnitude are handled.
func (l *Lattice) WrappedIndex(axis Axis, offset, base int) int {
	n := l.dim(axis)
	return ((offset % n) + n + base) % n
}

// updatableRange returns the half-open [lo, hi) range of updatable indices
// along an axis.
func (l *Lattice) updatableRange(axis Axis) (int, int) {
	n := l.dim(axis)
	if l.boundary == FrozenBorder {
		return 1, n - 1
	}
	return 0, n
}

// ForEachUpdatable calls fn for every site the boundary policy allows to
// change, in z, y, x order.
func (l *Lattice) ForEachUpdatable(fn func(c *Cell, x, y, z int)) {
	zlo, zhi := l.updatableRange(AxisZ)
	l.forEachUpdatableIn(zlo, zhi, fn)
}

// forEachUpdatableIn restricts ForEachUpdatable to z in [zFrom, zTo).
func (l *Lattice) forEachUpdatableIn(zFrom, zTo int, fn func(c *Cell, x, y, z int)) {
	xlo, xhi := l.updatableRange(AxisX)
	ylo, yhi := l.updatableRange(AxisY)
	for z := zFrom; z < zTo; z++ {
		for y := ylo; y < yhi; y++ {
			row := (z*l.h + y) * l.w
			for x := xlo; x < xhi; x++ {
				fn(&l.cells[row+x], x, y, z)
			}
		}
	}
}

// Sites calls fn with a read-only view of every site, border included.
func (l *Lattice) Sites(fn func(Site)) {
	i := 0
	for z := 0; z < l.d; z++ {
		for y := 0; y < l.h; y++ {
			for x := 0; x < l.w; x++ {
				c := &l.cells[i]
				i++
				fn(Site{
					X:        x,
					Y:        y,
					Z:        z,
					State:    c.state,
					Life:     int(c.life),
					Visible:  c.Visible(),
					Position: l.LayoutPosition(x, y, z),
				})
			}
		}
	}
}

// Population returns the number of alive cells.
func (l *Lattice) Population() int {
	n := 0
	for i := range l.cells {
		n += int(l.cells[i].state)
	}
	return n
}

// LayoutPosition maps lattice indices to coordinates centred on the origin.
func (l *Lattice) LayoutPosition(x, y, z int) Vec3 {
	return Vec3{
		X: float64(l.w-1)/2 - float64(x),
		Y: float64(l.h-1)/2 - float64(y),
		Z: float64(l.d-1)/2 - float64(z),
	}
}
