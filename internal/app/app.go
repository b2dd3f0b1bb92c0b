//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"bitlife/internal/core"
	"bitlife/internal/render"
)

// Game adapts a core simulation to the ebiten.Game interface. It owns the
// reseed policy: after maxGenerations ticks the board is reseeded from the
// clock and the engine's generation counter starts over.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	pace    *core.FixedStep

	scale          int
	seed           int64
	maxGenerations int

	ticks    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, tps, maxGenerations int) *Game {
	size := sim.Size()
	return &Game{
		sim:            sim,
		painter:        render.NewGridPainter(size.W, size.H, color.White, color.Black),
		pace:           core.NewFixedStep(tps),
		scale:          scale,
		seed:           seed,
		maxGenerations: maxGenerations,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.ticks = 0
	g.tickOnce = false
	g.pace.Rewind()
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

	if (!g.paused && g.pace.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		g.ticks++
		if g.maxGenerations > 0 && g.ticks >= g.maxGenerations {
			g.Reset(time.Now().UnixNano())
		}
	}
	return nil
}

// Draw hands the current bitmap to the painter sink and blits it.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.sim.Size()
	g.painter.DrawBitmap(0, 0, size.W/8, size.H, g.sim.Bitmap())
	g.painter.Blit(screen, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
