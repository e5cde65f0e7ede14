package render

import (
	"math"
	"sort"

	"cube-ca/pkg/lattice"
)

// Camera is an orthographic view of layout space. Yaw turns around the
// vertical axis, then Pitch tilts around the horizontal one.
type Camera struct {
	Yaw   float64
	Pitch float64
	// Scale is screen pixels per lattice unit.
	Scale            float64
	CenterX, CenterY float64
}

// Project maps a layout position to screen coordinates. Larger depth is
// farther from the viewer.
func (c Camera) Project(p lattice.Vec3) (x, y, depth float64) {
	sy, cy := math.Sincos(c.Yaw)
	sp, cp := math.Sincos(c.Pitch)

	rx := p.X*cy - p.Z*sy
	rz := p.X*sy + p.Z*cy

	ry := p.Y*cp - rz*sp
	depth = p.Y*sp + rz*cp

	return c.CenterX + rx*c.Scale, c.CenterY - ry*c.Scale, depth
}

// FitScale returns a Scale that keeps a w×h×d lattice inside a view of the
// given pixel size at any rotation.
func FitScale(w, h, d int, viewW, viewH float64) float64 {
	diag := math.Sqrt(float64(w*w + h*h + d*d))
	if diag == 0 {
		return 1
	}
	return math.Min(viewW, viewH) / diag
}

// Sprite is one visible site in screen space.
type Sprite struct {
	X, Y  float64
	Depth float64
	Size  float64
	Fade  float64
}

// Projector turns a lattice into depth-sorted sprites. It owns its scratch
// buffer, so each view should have its own Projector.
type Projector struct {
	sprites []Sprite
}

// Project returns one sprite per visible site ordered far to near. The
// returned slice is reused by the next call.
func (p *Projector) Project(l *lattice.Lattice, cam Camera) []Sprite {
	p.sprites = p.sprites[:0]
	maxLife := float64(l.MaxLife())
	size := cam.Scale * 0.9
	l.Sites(func(s lattice.Site) {
		if !s.Visible {
			return
		}
		x, y, depth := cam.Project(s.Position)
		p.sprites = append(p.sprites, Sprite{
			X:     x,
			Y:     y,
			Depth: depth,
			Size:  size,
			Fade:  float64(s.Life) / maxLife,
		})
	})
	sort.SliceStable(p.sprites, func(i, j int) bool {
		return p.sprites[i].Depth > p.sprites[j].Depth
	})
	return p.sprites
}
