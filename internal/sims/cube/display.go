package cube

import (
	"image/color"
	"math"
)

var (
	backgroundColor = color.NRGBA{R: 8, G: 8, B: 12, A: 255}
	liveColor       = color.NRGBA{R: 120, G: 220, B: 255, A: 255}
	fadeColor       = color.NRGBA{R: 90, G: 40, B: 140, A: 255}
	gutterColor     = color.NRGBA{R: 40, G: 40, B: 48, A: 255}
)

// Palette maps display values to colours: 0 is empty, 1..maxLife fade from
// dim to the live colour and maxLife+1 marks the gutters between slices.
func (w *World) Palette() []color.RGBA {
	return w.palette
}

func (w *World) gutterValue() uint8 { return uint8(len(w.palette) - 1) }

func buildPalette(maxLife int) []color.RGBA {
	palette := make([]color.RGBA, maxLife+2)
	palette[0] = toRGBA(backgroundColor)
	for life := 1; life <= maxLife; life++ {
		t := float64(life) / float64(maxLife)
		palette[life] = toRGBA(blendColors(fadeColor, liveColor, t))
	}
	palette[maxLife+1] = toRGBA(gutterColor)
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}

// tileGrid lays depth slices out in a near-square grid.
func tileGrid(depth int) (cols, rows int) {
	cols = int(math.Ceil(math.Sqrt(float64(depth))))
	if cols < 1 {
		cols = 1
	}
	rows = (depth + cols - 1) / cols
	return cols, rows
}

// displaySize includes one-pixel gutters between tiles.
func displaySize(w, h, cols, rows int) (int, int) {
	return cols*(w+1) - 1, rows*(h+1) - 1
}

// tileOrigin returns the display coordinates of slice z's top-left pixel.
func (w *World) tileOrigin(z int) (int, int) {
	col := z % w.cols
	row := z / w.cols
	return col * (w.cfg.Width + 1), row * (w.cfg.Height + 1)
}

func (w *World) rebuildDisplay() {
	cells := w.display.Cells()
	gutter := w.gutterValue()
	for i := range cells {
		cells[i] = gutter
	}
	for z := 0; z < w.cfg.Depth; z++ {
		ox, oy := w.tileOrigin(z)
		for y := 0; y < w.cfg.Height; y++ {
			for x := 0; x < w.cfg.Width; x++ {
				c, err := w.lat.At(x, y, z)
				if err != nil {
					continue
				}
				w.display.Set(ox+x, oy+y, uint8(c.Life()))
			}
		}
	}
}
