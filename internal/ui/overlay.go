//go:build ebiten

package ui

import (
	"image/color"
	"math"
	"strconv"

	"cube-ca/internal/render"
	"cube-ca/pkg/lattice"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional guides on top of the volume view. Keys 1, 2 and 3
// toggle the bounding box, the axis gizmo and the life legend.
type Overlay struct {
	showBox    bool
	showAxes   bool
	showLegend bool

	pixel *ebiten.Image
}

var (
	boxColor  = color.RGBA{R: 70, G: 70, B: 90, A: 200}
	axisColor = [3]color.RGBA{
		{R: 230, G: 90, B: 90, A: 255},
		{R: 90, G: 220, B: 110, A: 255},
		{R: 90, G: 140, B: 240, A: 255},
	}
)

// NewOverlay constructs an overlay with the box and axes shown.
func NewOverlay() *Overlay {
	o := &Overlay{showBox: true, showAxes: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles guides from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showBox = !o.showBox
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showAxes = !o.showAxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showLegend = !o.showLegend
	}
}

// Draw renders the enabled guides for l seen through cam. palette colours
// the legend entries 1..MaxLife.
func (o *Overlay) Draw(screen *ebiten.Image, l *lattice.Lattice, cam render.Camera, palette []color.RGBA) {
	if l == nil {
		return
	}
	if o.showBox {
		w, h, d := l.Dims()
		for _, s := range render.BoxOutline(w, h, d, cam) {
			o.drawLine(screen, s, 1, boxColor)
		}
	}
	if o.showAxes {
		bounds := screen.Bounds()
		for i, s := range render.AxisGizmo(cam, 28, float64(bounds.Dy())-28, 20) {
			o.drawLine(screen, s, 2, axisColor[i])
			text.Draw(screen, string("xyz"[i]), basicfont.Face7x13, int(s.X2)+2, int(s.Y2)+4, axisColor[i])
		}
	}
	if o.showLegend {
		o.drawLegend(screen, l.MaxLife(), palette)
	}
}

func (o *Overlay) drawLegend(screen *ebiten.Image, maxLife int, palette []color.RGBA) {
	const swatch = 10
	face := basicfont.Face7x13
	text.Draw(screen, "life", face, 8, 16, color.White)
	// Long fades only list the newest entries.
	rows := min(maxLife, 12)
	for i := 0; i < rows; i++ {
		life := maxLife - i
		if life >= len(palette) {
			continue
		}
		y := 24 + i*(swatch+4)
		o.drawRect(screen, 8, float64(y), swatch, swatch, palette[life])
		text.Draw(screen, strconv.Itoa(life), face, 8+swatch+6, y+swatch, color.White)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, s render.Segment, thickness float64, col color.RGBA) {
	dx := s.X2 - s.X1
	dy := s.Y2 - s.Y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(s.X1, s.Y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
