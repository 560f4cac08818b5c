package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/beatemup/internal/application/replay"
	"github.com/younwookim/beatemup/internal/application/round"
	"github.com/younwookim/beatemup/internal/application/state"
	"github.com/younwookim/beatemup/internal/application/system"
	"github.com/younwookim/beatemup/internal/domain/entity"
	"github.com/younwookim/beatemup/internal/infrastructure/assets"
	"github.com/younwookim/beatemup/internal/infrastructure/canvas"
	"github.com/younwookim/beatemup/internal/infrastructure/config"
)

var (
	flagScript     string
	flagDifficulty int
	flagMaxTicks   int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play one round without a window",
	Long: `Run a single round headless and print the result.

Player input comes from an optional YAML script of key events.
Without a script the player stands still until defeated.

Script format:
  seed: 42
  difficulty: 2
  events:
    - {tick: 0, key: attack, action: press}
    - {tick: 30, key: left, action: press}
    - {tick: 90, key: left, action: release}

Examples:
  beatemup sim
  beatemup sim --difficulty 4 --seed 7
  beatemup sim --script round.yaml --max-ticks 20000`,
	Run: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "", "YAML input script")
	simCmd.Flags().IntVar(&flagDifficulty, "difficulty", 0, "Difficulty 1-4 (default: script, then config)")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 100000, "Stop after this many round ticks")
}

// simOptions configure one headless round
type simOptions struct {
	Seed       int64
	Difficulty int
	MaxTicks   int
	Script     *replay.Script
}

// simResult summarises a headless round
type simResult struct {
	Score      int
	Difficulty int
	Taunt      string
	Ticks      int
	Kills      int
	Hits       int

	// Finished is false when MaxTicks ran out before the player died
	Finished bool
}

// simulate runs the round controller from the menu to the scoreboard
func simulate(cfg *config.Config, opts simOptions, logger *log.Logger) (simResult, error) {
	script := replay.Script{}
	if opts.Script != nil {
		script = *opts.Script
	}
	replayer, err := replay.NewReplayer(script)
	if err != nil {
		return simResult{}, fmt.Errorf("invalid script: %w", err)
	}

	lib := assets.Placeholders(placeholderSpec(cfg))
	cv := canvas.New(lib)
	arena := system.NewArena(cfg, cv, rand.New(rand.NewSource(opts.Seed)),
		lib.Count(entity.SetBackground, entity.FacingRight), logger)
	input := system.NewInputSystem()

	menu := round.NewHeadlessMenu(opts.Difficulty)
	menu.Start()
	board := round.NewTallyScoreboard()
	controller := round.NewController(arena, input, menu, board, logger)

	var result simResult
	arena.OnKill = func(*entity.Enemy) { result.Kills++ }
	arena.OnHit = func(target *entity.Sprite) {
		if target.Kind == entity.KindEnemy {
			result.Hits++
		}
	}
	controller.OnRoundOver = func(int, int) { result.Finished = true }

	for !result.Finished && controller.RoundTicks() < opts.MaxTicks {
		if controller.Phase() == state.PhaseActive {
			if intents, ok := replayer.Next(); ok {
				input.Dispatch(intents...)
			}
		}
		controller.Tick()
	}

	result.Score = arena.Score()
	result.Difficulty = controller.Difficulty()
	result.Taunt = round.Taunt(result.Difficulty)
	result.Ticks = controller.RoundTicks()
	return result, nil
}

func runSim(cmd *cobra.Command, args []string) {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}

	opts := simOptions{
		Seed:       sessionSeed(),
		Difficulty: cfg.Difficulty.Default,
		MaxTicks:   flagMaxTicks,
	}

	if flagScript != "" {
		script, err := replay.LoadScript(flagScript)
		if err != nil {
			logger.Fatal("failed to load script", "path", flagScript, "err", err)
		}
		opts.Script = script
		if flagSeed == 0 && script.Seed != 0 {
			opts.Seed = script.Seed
		}
		if script.Difficulty != 0 {
			opts.Difficulty = script.Difficulty
		}
	}
	if flagDifficulty != 0 {
		opts.Difficulty = flagDifficulty
	}
	if opts.Difficulty < config.MinDifficulty || opts.Difficulty > config.MaxDifficulty {
		logger.Fatal("difficulty out of range", "difficulty", opts.Difficulty,
			"min", config.MinDifficulty, "max", config.MaxDifficulty)
	}

	logger.Debug("simulating", "seed", opts.Seed, "difficulty", opts.Difficulty)
	result, err := simulate(cfg, opts, logger)
	if err != nil {
		logger.Fatal("simulation failed", "err", err)
	}

	fmt.Println(renderResult(result, opts.Seed))
}

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tauntStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214"))
)

// renderResult formats the result card printed by sim
func renderResult(r simResult, seed int64) string {
	heading := "ROUND OVER"
	if !r.Finished {
		heading = "TIME LIMIT REACHED"
	}

	rows := []struct {
		label string
		value string
	}{
		{"Score", fmt.Sprint(r.Score)},
		{"Difficulty", fmt.Sprint(r.Difficulty)},
		{"Kills", fmt.Sprint(r.Kills)},
		{"Hits", fmt.Sprint(r.Hits)},
		{"Ticks", fmt.Sprint(r.Ticks)},
		{"Seed", fmt.Sprint(seed)},
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render(heading))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-11s", row.label)))
		b.WriteString(row.value)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(tauntStyle.Render(r.Taunt))

	return cardStyle.Render(b.String())
}
