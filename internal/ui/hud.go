//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"cube-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	selectedColor = color.RGBA{R: 120, G: 220, B: 255, A: 255}
)

// HUD renders the parameter panel to the right of the simulation view.
// Tab cycles the selected control, - and = adjust it, and the +/- buttons
// respond to the mouse.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     *controlSet
	rects        []controlRects
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

type controlRects struct {
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	width = max(width, 0)
	h := &HUD{sim: sim, width: width, controls: newControlSet(sim)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = buildTitle(sim)
	h.layoutControls()
	return h
}

// Width returns the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot and handles HUD input.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.controls.refresh(h.snapshot)
	h.handleKeys()
	h.handleMouse()
}

// Draw paints the panel at offsetX. height is the simulation view height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	y := h.drawControls()
	h.drawStats(y)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s controls", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			h.controls.cycle(-1)
		} else {
			h.controls.cycle(1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		h.controls.adjust(h.controls.selected, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		h.controls.adjust(h.controls.selected, 1)
	}
}

func (h *HUD) handleMouse() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	p := image.Pt(mx-h.panelOffsetX, my)
	for i, r := range h.rects {
		switch {
		case p.In(r.minusRect):
			h.controls.selected = i
			h.controls.adjust(i, -1)
			return
		case p.In(r.plusRect):
			h.controls.selected = i
			h.controls.adjust(i, 1)
			return
		}
	}
}

// drawControls returns the y coordinate below the last control.
func (h *HUD) drawControls() int {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, titleColor)
	if len(h.controls.states) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, mutedColor)
		return headerY + infoSpacing
	}
	for i := range h.controls.states {
		state := &h.controls.states[i]
		r := h.rects[i]
		labelY := r.top + labelBaseline

		label := state.control.Label
		col := labelColor
		if i == h.controls.selected {
			label = "> " + label
			col = selectedColor
		}
		text.Draw(h.panel, label, face, panelPadding, labelY, col)

		valueColor := labelColor
		if !state.hasValue {
			valueColor = mutedColor
		}
		bounds := text.BoundString(face, state.value)
		valueX := r.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(r.minusRect, "-", h.controls.canAdjust(i, -1))
		h.drawButton(r.plusRect, "+", h.controls.canAdjust(i, 1))
	}
	last := h.rects[len(h.rects)-1]
	return last.top + lineHeight
}

// drawStats lists the read-only parameter groups below the controls.
func (h *HUD) drawStats(top int) {
	face := basicfont.Face7x13
	adjustable := map[string]bool{}
	for _, s := range h.controls.states {
		adjustable[s.control.Key] = true
	}
	y := top + statsSpacing
	for _, group := range h.snapshot.Groups {
		if y > h.lastHeight-helpHeight {
			break
		}
		header := group.Name
		if group.Summary != "" {
			header += " (" + group.Summary + ")"
		}
		text.Draw(h.panel, header, face, panelPadding, y, titleColor)
		y += statsLine
		for _, p := range group.Params {
			if adjustable[p.Key] {
				continue
			}
			text.Draw(h.panel, fmt.Sprintf("%s: %s", p.Label, p.Value), face, panelPadding+8, y, mutedColor)
			y += statsLine
		}
		y += statsLine / 2
	}
	text.Draw(h.panel, helpText, face, panelPadding, h.lastHeight-panelPadding, mutedColor)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	h.rects = make([]controlRects, len(h.controls.states))
	for i := range h.rects {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.rects[i] = controlRects{top: top, minusRect: minusRect, plusRect: plusRect}
	}
}

const helpText = "tab select  -/= adjust  r reset"

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	statsSpacing   = 20
	statsLine      = 16
	helpHeight     = 40
	controlsTop    = panelPadding + headerBaseline + 14
)
