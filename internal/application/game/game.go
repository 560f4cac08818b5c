// Package game provides the ebiten.Game that runs the current Scene at a fixed tick rate.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/beatemup/internal/application/scene"
	"github.com/younwookim/beatemup/internal/infrastructure/config"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	display config.DisplayConfig
	tps     int
	dt      float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, display config.DisplayConfig, tick config.TickConfig) *Game {
	tps := tick.TPS()
	g := &Game{
		current: initialScene,
		display: display,
		tps:     tps,
		dt:      1.0 / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the arena size; the window scale is applied by ebiten.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.display.Width, g.display.Height
}

// DT returns the seconds simulated per Update
func (g *Game) DT() float64 {
	return g.dt
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Run opens the window and blocks until the game ends.
// A scene returning ebiten.Termination ends the game without error.
func (g *Game) Run() error {
	scale := max(g.display.Scale, 1)
	ebiten.SetWindowSize(g.display.Width*scale, g.display.Height*scale)
	ebiten.SetWindowTitle(g.display.Title)
	ebiten.SetTPS(g.tps)

	err := ebiten.RunGame(g)
	g.current.OnExit()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
