package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Difficulty bounds selectable on the title screen
const (
	MinDifficulty = 1
	MaxDifficulty = 4
)

// Default returns the stock tuning
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Title:  "BEAT 'EM UP",
			Width:  1024,
			Height: 490,
			Scale:  1,
		},
		Tick:      TickConfig{IntervalMs: 10},
		Animation: AnimationConfig{Speed: 10, DuckHold: 3},
		Background: BackgroundConfig{
			FrameMs: 100,
		},
		Player: PlayerConfig{
			MaxHealth:    100,
			AttackDamage: 25,
			Speed:        2.5,
			Width:        100,
		},
		Enemy: EnemyConfig{
			HealthPerTier: 25,
			DamagePerTier: 1,
			Speed:         1.5,
			Width:         100,
			EasyTier:      2,
		},
		Score:      ScoreConfig{PointsPerTier: 25},
		HealthBar:  HealthBarConfig{Margin: 10, Height: 25},
		Difficulty: DifficultyConfig{Default: 1},
		Keys: KeysConfig{
			Left:   "A",
			Right:  "D",
			Attack: "Space",
			Duck:   "S",
		},
		Assets: AssetsConfig{
			Background: "giphy-6",
			Title:      "title",
			Player:     "player",
			PlayerLeft: "player-left-move",
			Enemy:      "enemy",
			EnemyLeft:  "enemy-left-move",
		},
	}
}

// Validate checks value ranges
func (c *Config) Validate() error {
	switch {
	case c.Display.Width <= 0 || c.Display.Height <= 0:
		return fmt.Errorf("%w: display size must be positive, got %dx%d", ErrInvalid, c.Display.Width, c.Display.Height)
	case c.Display.Scale <= 0:
		return fmt.Errorf("%w: display.scale must be positive, got %d", ErrInvalid, c.Display.Scale)
	case c.Tick.IntervalMs <= 0 || c.Tick.IntervalMs > 1000:
		return fmt.Errorf("%w: tick.intervalMs must be in (0, 1000], got %d", ErrInvalid, c.Tick.IntervalMs)
	case c.Animation.Speed <= 0:
		return fmt.Errorf("%w: animation.speed must be positive, got %d", ErrInvalid, c.Animation.Speed)
	case c.Animation.DuckHold < 0:
		return fmt.Errorf("%w: animation.duckHold must not be negative, got %d", ErrInvalid, c.Animation.DuckHold)
	case c.Background.FrameMs <= 0:
		return fmt.Errorf("%w: background.frameMs must be positive, got %d", ErrInvalid, c.Background.FrameMs)
	case c.Player.MaxHealth <= 0:
		return fmt.Errorf("%w: player.maxHealth must be positive, got %d", ErrInvalid, c.Player.MaxHealth)
	case c.Player.Speed <= 0 || c.Enemy.Speed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalid)
	case c.Player.Width <= 0 || c.Enemy.Width <= 0:
		return fmt.Errorf("%w: sprite widths must be positive", ErrInvalid)
	case c.Player.Width > float64(c.Display.Width) || c.Enemy.Width > float64(c.Display.Width):
		return fmt.Errorf("%w: sprites wider than the arena", ErrInvalid)
	case c.Enemy.HealthPerTier <= 0:
		return fmt.Errorf("%w: enemy.healthPerTier must be positive, got %d", ErrInvalid, c.Enemy.HealthPerTier)
	case c.Enemy.EasyTier < 1 || c.Enemy.EasyTier > 4:
		return fmt.Errorf("%w: enemy.easyTier must be in [1, 4], got %d", ErrInvalid, c.Enemy.EasyTier)
	case c.Score.PointsPerTier < 0:
		return fmt.Errorf("%w: score.pointsPerTier must not be negative, got %d", ErrInvalid, c.Score.PointsPerTier)
	case c.Difficulty.Default < MinDifficulty || c.Difficulty.Default > MaxDifficulty:
		return fmt.Errorf("%w: difficulty.default must be in [%d, %d], got %d",
			ErrInvalid, MinDifficulty, MaxDifficulty, c.Difficulty.Default)
	case c.Keys.Left == "" || c.Keys.Right == "" || c.Keys.Attack == "" || c.Keys.Duck == "":
		return fmt.Errorf("%w: every key binding must be set", ErrInvalid)
	}
	return nil
}
