//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifesim/internal/core"
	"lifesim/internal/render"
	"lifesim/internal/sim"
)

// Game adapts a simulation controller to the ebiten.Game interface. It
// translates raw input into controller commands and draws snapshots; all
// simulation state stays inside the controller.
type Game struct {
	ctrl    *sim.Controller
	painter *render.GridPainter
	ticker  *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale   int
	seed    int64
	density float64
}

// New constructs a Game for the provided controller.
func New(ctrl *sim.Controller, cfg *Config) *Game {
	size := ctrl.Size()
	return &Game{
		ctrl:     ctrl,
		painter:  render.NewGridPainter(size.W, size.H),
		ticker:   core.NewFixedStep(ctrl.Interval()),
		onColor:  color.White,
		offColor: color.RGBA{R: 96, G: 96, B: 96, A: 255},
		scale:    cfg.Scale,
		seed:     cfg.Seed,
		density:  cfg.Density,
	}
}

// Update handles per-frame input and delivers due ticks.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.Apply(sim.PressButton{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.fill(func(x, y int) bool { return false })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.randomize(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.randomize(time.Now().UnixNano())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px, py := ebiten.CursorPosition()
		x, y := px/g.scale, py/g.scale
		size := g.ctrl.Size()
		if x >= 0 && x < size.W && y >= 0 && y < size.H {
			g.ctrl.Apply(sim.ToggleCell{X: x, Y: y})
		}
	}

	if g.ticker.ShouldStep() {
		g.ctrl.Apply(sim.Tick{})
	}
	return nil
}

// randomize refills the board from a seeded RNG. Edits go through the
// controller cell by cell, so while running this is ignored like any
// other edit.
func (g *Game) randomize(seed int64) {
	rng := core.NewRNG(seed)
	g.fill(func(x, y int) bool { return rng.Chance(g.density) })
}

func (g *Game) fill(alive func(x, y int) bool) {
	size := g.ctrl.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if !g.ctrl.SetCell(x, y, alive(x, y)) {
				return
			}
		}
	}
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	snapshot := g.ctrl.Snapshot()
	g.painter.Blit(screen, snapshot.Cells(), g.onColor, g.offColor, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.ctrl.Size()
	return size.W * g.scale, size.H * g.scale
}
