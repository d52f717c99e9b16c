//go:build ebiten

package app

import (
	"topoviz/internal/core"
	"topoviz/internal/render"
	"topoviz/internal/scene"
	"topoviz/internal/signal"
	"topoviz/internal/terrain"
	"topoviz/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a contour scene to the ebiten.Game interface.
type Game struct {
	scene   *scene.Scene
	drawer  *render.ScreenDrawer
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   *core.FrameClock
	synth   *signal.Synth

	lines    *ebiten.Image
	hudWidth int
	viewW    int
	viewH    int

	seed     int64
	useSynth bool
	paused   bool
	last     scene.FrameStats
}

// New constructs a Game for the provided terrain configuration.
func New(cfg terrain.Config, hudWidth int, seed int64, useSynth bool) *Game {
	if hudWidth < 0 {
		hudWidth = 0
	}
	sc := scene.New(cfg)
	g := &Game{
		scene:    sc,
		drawer:   render.NewScreenDrawer(),
		overlay:  ui.NewOverlay(),
		clock:    core.NewFrameClock(),
		synth:    signal.NewSynth(seed),
		hud:      ui.NewHUD(sc, "topoviz", hudWidth),
		hudWidth: hudWidth,
		seed:     seed,
		useSynth: useSynth,
	}
	return g
}

// Scene exposes the driven scene.
func (g *Game) Scene() *scene.Scene { return g.scene }

// Reset rewinds the scene and restarts the synthetic control source.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.scene.Reset()
	g.synth = signal.NewSynth(seed)
	g.clock.Reset()
}

// Update handles keyboard input. The scene itself advances in Draw so the
// grid and the strokes always come from the same frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.useSynth = !g.useSynth
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.hud.Adjust("levels", 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.hud.Adjust("levels", -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.hud.Adjust("octaves", 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.hud.Adjust("octaves", -1)
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update(g.viewW)
	}
	return nil
}

// control mixes the synthetic source with held band keys.
func (g *Game) control(dt float64) signal.Control {
	var c signal.Control
	if g.useSynth {
		c = g.synth.Next(dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyB) {
		c.Bass = 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyM) {
		c.Mid = 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyT) {
		c.Treble = 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyV) {
		c.Volume = 1
	}
	return c
}

// Draw advances the scene by the measured frame time and renders it.
func (g *Game) Draw(screen *ebiten.Image) {
	dt := g.clock.Tick()
	if g.paused {
		dt = 0
	}
	ctrl := g.control(dt)

	if g.lines != nil {
		cfg := g.scene.Config()
		g.lines.Clear()
		g.drawer.Target = g.lines
		g.drawer.Thickness = cfg.LineThickness
		g.drawer.Alpha = 0.55 + 0.45*g.scene.Builder().Smoothed().Volume
		g.last = g.scene.Step(ctrl, dt, g.drawer)
	}

	screen.Fill(g.drawer.Palette.Background)
	if g.overlay != nil {
		g.overlay.DrawUnder(screen, g.scene.Grid())
	}
	if g.lines != nil {
		screen.DrawImage(g.lines, nil)
	}
	if g.overlay != nil {
		g.overlay.DrawOver(screen, g.last.Smoothed)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.viewW)
	}
}

// Layout keeps the logical screen equal to the window and resizes the
// elevation grid to the contour view beside the HUD.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := outsideWidth - g.hudWidth
	if w < 1 {
		w = 1
	}
	h := outsideHeight
	if h < 1 {
		h = 1
	}
	if w != g.viewW || h != g.viewH || g.lines == nil {
		g.viewW, g.viewH = w, h
		g.lines = ebiten.NewImage(w, h)
		if g.scene.Resize(w, h) {
			s := g.scene.Grid().Size()
			core.Logger().Debug("viewport resized", "width", w, "height", h, "cols", s.W, "rows", s.H)
		}
	}
	return outsideWidth, outsideHeight
}
