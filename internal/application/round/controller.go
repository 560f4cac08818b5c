// Package round drives a session from the title menu through a round to the
// scoreboard and back.
package round

import (
	"github.com/charmbracelet/log"

	"github.com/younwookim/beatemup/internal/application/state"
	"github.com/younwookim/beatemup/internal/application/system"
	"github.com/younwookim/beatemup/internal/infrastructure/config"
)

// Menu is the title screen: difficulty selection and the start request
type Menu interface {
	Show()
	Hide()
	// StartRequested returns true once the player asked to start
	StartRequested() bool
	// ClearStart forgets a previous start request
	ClearStart()
	Difficulty() int
}

// Scoreboard shows the result of a finished round
type Scoreboard interface {
	Show(score, difficulty int)
	Hide()
	// RestartRequested returns true once the player asked for another round
	RestartRequested() bool
	// Clear forgets the shown result and any restart request
	Clear()
}

// Controller sequences the phases of a session. Each Tick runs exactly one step.
type Controller struct {
	arena      *system.Arena
	input      *system.InputSystem
	menu       Menu
	scoreboard Scoreboard
	logger     *log.Logger

	phase      state.Phase
	difficulty int
	roundTicks int

	// Event callbacks
	OnRoundOver func(score, difficulty int)
}

// NewController creates a controller in the Init phase
func NewController(arena *system.Arena, input *system.InputSystem, menu Menu, scoreboard Scoreboard, logger *log.Logger) *Controller {
	return &Controller{
		arena:      arena,
		input:      input,
		menu:       menu,
		scoreboard: scoreboard,
		logger:     logger,
		phase:      state.PhaseInit,
		difficulty: config.MinDifficulty,
	}
}

// Tick runs the step of the current phase
func (c *Controller) Tick() {
	switch c.phase {
	case state.PhaseInit:
		c.arena.ShowBackground()
		c.setPhase(state.PhaseMenuShown)

	case state.PhaseMenuShown:
		c.menu.Show()
		c.setPhase(state.PhaseAwaitStart)

	case state.PhaseAwaitStart:
		if !c.menu.StartRequested() {
			return
		}
		c.menu.Hide()
		c.difficulty = min(max(c.menu.Difficulty(), config.MinDifficulty), config.MaxDifficulty)
		c.logger.Info("round starting", "difficulty", c.difficulty)
		c.setPhase(state.PhaseSetup)

	case state.PhaseSetup:
		c.arena.SetDifficulty(c.difficulty)
		c.arena.ShowHealthBar()
		player := c.arena.CreatePlayer()
		for i := 0; i < c.difficulty; i++ {
			c.arena.CreateEnemy(c.difficulty)
		}
		c.input.Bind(player)
		c.roundTicks = 0
		c.setPhase(state.PhaseActive)

	case state.PhaseActive:
		c.arena.Tick()
		c.roundTicks++
		if p := c.arena.Player(); p != nil && p.IsDead() {
			c.setPhase(state.PhaseGameOver)
		}

	case state.PhaseGameOver:
		if p := c.arena.Player(); p != nil {
			c.arena.UpdateHealthBar(p)
		}
		c.arena.Reset()
		c.input.Unbind()
		c.menu.ClearStart()
		c.logger.Info("round over", "score", c.arena.Score(), "difficulty", c.difficulty, "ticks", c.roundTicks)
		if c.OnRoundOver != nil {
			c.OnRoundOver(c.arena.Score(), c.difficulty)
		}
		c.setPhase(state.PhaseScoreboardShown)

	case state.PhaseScoreboardShown:
		c.scoreboard.Show(c.arena.Score(), c.difficulty)
		c.setPhase(state.PhaseAwaitRestart)

	case state.PhaseAwaitRestart:
		if !c.scoreboard.RestartRequested() {
			return
		}
		c.scoreboard.Clear()
		c.scoreboard.Hide()
		c.arena.ResetScore()
		c.setPhase(state.PhaseMenuShown)
	}
}

func (c *Controller) setPhase(next state.Phase) {
	c.logger.Info("phase", "from", c.phase, "to", next)
	c.phase = next
}

// Phase returns the step the next Tick runs
func (c *Controller) Phase() state.Phase {
	return c.phase
}

// Difficulty returns the difficulty of the current or last round
func (c *Controller) Difficulty() int {
	return c.difficulty
}

// RoundTicks returns the number of simulation ticks of the current or last round
func (c *Controller) RoundTicks() int {
	return c.roundTicks
}
