//go:build ebiten

package app

import (
	"image/color"
	"time"

	"cube-ca/internal/core"
	"cube-ca/internal/render"
	"cube-ca/internal/ui"
	"cube-ca/pkg/lattice"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type latticeProvider interface {
	Lattice() *lattice.Lattice
}

type paletteProvider interface {
	Palette() []color.RGBA
}

var (
	backdrop   = color.RGBA{R: 8, G: 8, B: 12, A: 255}
	dimCell    = color.RGBA{R: 90, G: 40, B: 140, A: 255}
	brightCell = color.RGBA{R: 120, G: 220, B: 255, A: 255}
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	volume  *render.VolumePainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	mode     ViewMode
	orbit    orbit
	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. tps paces simulation
// steps independently of the frame rate.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		pacer:    core.NewFixedStep(cfg.TPS),
		onColor:  color.White,
		offColor: color.Black,
		orbit:    defaultOrbit(),
		scale:    max(cfg.Scale, 1),
		seed:     cfg.Seed,
	}
	if _, ok := sim.(latticeProvider); ok {
		g.volume = render.NewVolumePainter(dimCell, brightCell)
		g.overlay = ui.NewOverlay()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

func (g *Game) viewSize() (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.pacer.SetTPS(max(g.pacer.TPS()/2, 1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.pacer.SetTPS(min(g.pacer.TPS()*2, 240))
	}
	if g.volume != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyV) {
			g.mode = (g.mode + 1) % 2
		}
		if g.mode == VolumeView {
			g.handleRotation()
			g.overlay.Update()
		}
	}

	vw, _ := g.viewSize()
	g.hud.Update(vw)

	if (!g.paused && g.pacer.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleRotation() {
	dYaw, dPitch := 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dYaw--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dYaw++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dPitch++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dPitch--
	}
	if dYaw != 0 || dPitch != 0 {
		g.orbit.rotate(dYaw, dPitch)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	var palette []color.RGBA
	if p, ok := g.sim.(paletteProvider); ok {
		palette = p.Palette()
	}
	vw, vh := g.viewSize()
	if g.mode == VolumeView {
		lat := g.sim.(latticeProvider).Lattice()
		w, h, d := lat.Dims()
		cam := g.orbit.camera(w, h, d, float64(vw), float64(vh))
		screen.Fill(backdrop)
		g.volume.Draw(screen, lat, cam)
		g.overlay.Draw(screen, lat, cam, palette)
	} else {
		g.painter.Blit(screen, g.sim.Cells(), palette, g.onColor, g.offColor, g.scale)
	}
	g.hud.Draw(screen, vw, vh)
}

// Layout returns the logical screen size: the view plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vw, vh := g.viewSize()
	return vw + g.hud.Width(), vh
}
