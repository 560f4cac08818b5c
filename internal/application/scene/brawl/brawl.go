// Package brawl provides the scene that hosts the whole session: title
// screen, the round itself and the scoreboard.
package brawl

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/beatemup/internal/application/round"
	"github.com/younwookim/beatemup/internal/application/scene"
	"github.com/younwookim/beatemup/internal/application/state"
	"github.com/younwookim/beatemup/internal/application/system"
	"github.com/younwookim/beatemup/internal/domain/entity"
	"github.com/younwookim/beatemup/internal/infrastructure/assets"
	"github.com/younwookim/beatemup/internal/infrastructure/canvas"
	"github.com/younwookim/beatemup/internal/infrastructure/config"
	"github.com/younwookim/beatemup/internal/platform/input"
	"github.com/younwookim/beatemup/internal/platform/render"
	"github.com/younwookim/beatemup/internal/platform/ui"
)

// Brawl is the gameplay scene
type Brawl struct {
	config *config.Config
	logger *log.Logger

	canvas     *canvas.Canvas
	arena      *system.Arena
	input      *system.InputSystem
	keyboard   *input.Keyboard
	controller *round.Controller
	renderer   *render.Renderer
	title      *ui.Title
	scoreboard *ui.Scoreboard

	// Deterministic RNG
	seed int64
}

// New creates the scene. keys may be nil to read the real keyboard.
func New(cfg *config.Config, lib *assets.Library, seed int64, keys input.KeyState, logger *log.Logger) (*Brawl, error) {
	bindings, err := input.ParseBindings(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("failed to parse key bindings: %w", err)
	}
	if keys == nil {
		keys = input.EbitenKeys{}
	}

	cv := canvas.New(lib)
	renderer := render.New(lib)
	rng := rand.New(rand.NewSource(seed))
	arena := system.NewArena(cfg, cv, rng, lib.Count(entity.SetBackground, entity.FacingRight), logger)
	inputSystem := system.NewInputSystem()

	w, h := cfg.Display.Width, cfg.Display.Height
	title := ui.NewTitle(w, h, renderer, cfg)
	scoreboard := ui.NewScoreboard(w, h)

	return &Brawl{
		config:     cfg,
		logger:     logger,
		canvas:     cv,
		arena:      arena,
		input:      inputSystem,
		keyboard:   input.NewKeyboard(bindings, keys),
		controller: round.NewController(arena, inputSystem, title, scoreboard, logger),
		renderer:   renderer,
		title:      title,
		scoreboard: scoreboard,
		seed:       seed,
	}, nil
}

// Update polls input and runs one controller tick
func (b *Brawl) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return nil, ebiten.Termination
	}

	b.title.Update()
	b.scoreboard.Update()

	// Intents reach the player before the simulation pass
	b.input.Dispatch(b.keyboard.Poll()...)
	b.controller.Tick()
	return nil, nil
}

// Draw renders the arena and whichever overlay is showing
func (b *Brawl) Draw(screen *ebiten.Image) {
	b.renderer.Draw(screen, b.canvas)

	if b.controller.Phase().InRound() {
		score := fmt.Sprintf("SCORE: %d", b.arena.Score())
		ebitenutil.DebugPrintAt(screen, score, b.config.Display.Width-len(score)*6-10, 10)
	}

	b.title.Draw(screen)
	b.scoreboard.Draw(screen)
}

// OnEnter is called when entering this scene
func (b *Brawl) OnEnter() {
	b.logger.Info("session started", "seed", b.seed)
}

// OnExit is called when leaving this scene
func (b *Brawl) OnExit() {
	b.logger.Info("session ended", "phase", b.controller.Phase(), "score", b.arena.Score())
}

// Phase returns the controller phase
func (b *Brawl) Phase() state.Phase {
	return b.controller.Phase()
}
