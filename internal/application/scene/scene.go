// Package scene defines what the game loop runs each tick.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. The brawl scene covers the title,
// the round and the scoreboard as phases of a single scene.
type Scene interface {
	// Update advances the scene by one fixed tick of dt seconds.
	// A non-nil next replaces the current scene; an error stops the loop
	// (ebiten.Termination for a clean quit).
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs when the scene becomes current
	OnEnter()
	// OnExit runs when the scene is replaced
	OnExit()
}
