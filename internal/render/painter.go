//go:build ebiten

package render

import (
	"image/color"
	"math"

	"cube-ca/pkg/lattice"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from a display buffer.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads cells through palette, or as on/off pixels when palette is
// empty, and draws the result scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	if len(palette) > 0 {
		fillPaletteRGBA(gp.buf, cells, palette)
	} else {
		fillBinaryRGBA(gp.buf, cells, on, off)
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// VolumePainter draws visible lattice sites as shaded squares.
type VolumePainter struct {
	proj   Projector
	pixel  *ebiten.Image
	dim    color.RGBA
	bright color.RGBA
}

// NewVolumePainter returns a painter that fades sites from dim to bright by
// remaining life.
func NewVolumePainter(dim, bright color.RGBA) *VolumePainter {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return &VolumePainter{pixel: px, dim: dim, bright: bright}
}

// Draw projects l with cam and paints it far to near onto dst.
func (vp *VolumePainter) Draw(dst *ebiten.Image, l *lattice.Lattice, cam Camera) {
	w, h, d := l.Dims()
	half := math.Sqrt(float64(w*w+h*h+d*d)) / 2
	for _, s := range vp.proj.Project(l, cam) {
		// Farther sites are drawn slightly darker.
		shade := 1 - 0.35*clamp01((s.Depth/half+1)/2)
		col := FadeColor(vp.dim, vp.bright, s.Fade)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s.Size, s.Size)
		op.GeoM.Translate(s.X-s.Size/2, s.Y-s.Size/2)
		op.ColorScale.ScaleWithColor(col)
		op.ColorScale.Scale(float32(shade), float32(shade), float32(shade), 1)
		dst.DrawImage(vp.pixel, op)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
