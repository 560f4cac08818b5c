// beatemup is a side-scrolling brawler: one player against waves of enemies
// walking in from both edges of the arena.
//
// Usage:
//
//	beatemup                     - Open the game window
//	beatemup sim                 - Play one round headless and print the result
//
// Global flags:
//
//	--config <path>   - Load game.yaml from a file instead of the built-in one
//	--assets <dir>    - Load GIF frames from dir (default: generated placeholders)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/beatemup/internal/application/game"
	"github.com/younwookim/beatemup/internal/application/scene/brawl"
	"github.com/younwookim/beatemup/internal/infrastructure/assets"
	"github.com/younwookim/beatemup/internal/infrastructure/config"
)

var (
	// Global flags
	flagConfig   string
	flagAssets   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "beatemup",
	Short: "Beat 'em up - fight off enemies from both sides",
	Long: `Beat 'em up opens a window with a title screen. Pick a difficulty,
start a round and fight until your health runs out.

Controls (defaults, see keys in game.yaml):
  A / D    - Walk left / right
  Space    - Attack
  S        - Duck
  Esc      - Quit

Examples:
  beatemup
  beatemup --assets ./gifs --seed 42
  beatemup --config ./game.yaml --log-level debug
  beatemup sim --difficulty 3`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game.yaml (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory of GIF assets (overrides assets.dir)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(simCmd)
}

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "beatemup",
		Level:           level,
	}), nil
}

// loadConfig reads --config, or the embedded game.yaml when the flag is unset
func loadConfig() (*config.Config, error) {
	if flagConfig != "" {
		return config.LoadFile(flagConfig)
	}
	return config.NewFSLoader(configFS, configDir).Load()
}

// loadAssets reads GIFs from --assets or assets.dir, or generates placeholders
func loadAssets(cfg *config.Config, logger *log.Logger) (*assets.Library, error) {
	dir := cfg.Assets.Dir
	if flagAssets != "" {
		dir = flagAssets
	}
	if dir == "" {
		logger.Info("no asset directory, using placeholder frames")
		return assets.Placeholders(placeholderSpec(cfg)), nil
	}
	return assets.Load(os.DirFS(dir), cfg.Assets, logger)
}

// placeholderSpec sizes the generated frames to the configured arena
func placeholderSpec(cfg *config.Config) assets.PlaceholderSpec {
	spec := assets.DefaultPlaceholderSpec
	spec.ScreenW = cfg.Display.Width
	spec.ScreenH = cfg.Display.Height
	spec.PlayerW = int(cfg.Player.Width)
	spec.EnemyW = int(cfg.Enemy.Width)
	return spec
}

func sessionSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}

	lib, err := loadAssets(cfg, logger)
	if err != nil {
		logger.Fatal("failed to load assets", "err", err)
	}

	scene, err := brawl.New(cfg, lib, sessionSeed(), nil, logger)
	if err != nil {
		logger.Fatal("failed to create scene", "err", err)
	}

	g := game.New(scene, cfg.Display, cfg.Tick)
	if err := g.Run(); err != nil {
		logger.Fatal("game exited", "err", err)
	}
}
