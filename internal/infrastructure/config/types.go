package config

// Config is the root config for game.yaml
type Config struct {
	Display    DisplayConfig    `yaml:"display"`
	Tick       TickConfig       `yaml:"tick"`
	Animation  AnimationConfig  `yaml:"animation"`
	Background BackgroundConfig `yaml:"background"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Score      ScoreConfig      `yaml:"score"`
	HealthBar  HealthBarConfig  `yaml:"healthBar"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Keys       KeysConfig       `yaml:"keys"`
	Assets     AssetsConfig     `yaml:"assets"`
}

// DisplayConfig sizes the window. Width and Height are the arena size.
type DisplayConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
}

// TickConfig sets the fixed simulation timestep
type TickConfig struct {
	IntervalMs int `yaml:"intervalMs"`
}

// TPS returns the ticks per second for the interval
func (t TickConfig) TPS() int {
	return 1000 / t.IntervalMs
}

type AnimationConfig struct {
	Speed    int `yaml:"speed"`    // Ticks per sprite frame
	DuckHold int `yaml:"duckHold"` // Frame periods held at the final duck pose
}

type BackgroundConfig struct {
	FrameMs int `yaml:"frameMs"`
}

// Ticks converts the background frame period to simulation ticks
func (b BackgroundConfig) Ticks(tick TickConfig) int {
	n := b.FrameMs / tick.IntervalMs
	if n < 1 {
		return 1
	}
	return n
}

type PlayerConfig struct {
	MaxHealth    int     `yaml:"maxHealth"`
	AttackDamage int     `yaml:"attackDamage"`
	Speed        float64 `yaml:"speed"`
	Width        float64 `yaml:"width"`
}

type EnemyConfig struct {
	HealthPerTier int     `yaml:"healthPerTier"`
	DamagePerTier int     `yaml:"damagePerTier"`
	Speed         float64 `yaml:"speed"`
	Width         float64 `yaml:"width"`
	// EasyTier is the only tier spawned at difficulty 1
	EasyTier int `yaml:"easyTier"`
}

type ScoreConfig struct {
	PointsPerTier int `yaml:"pointsPerTier"`
}

type HealthBarConfig struct {
	Margin float64 `yaml:"margin"`
	Height float64 `yaml:"height"`
}

type DifficultyConfig struct {
	Default int `yaml:"default"`
}

// KeysConfig names keys the way ebiten.Key marshals them
type KeysConfig struct {
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Attack string `yaml:"attack"`
	Duck   string `yaml:"duck"`
}

// AssetsConfig names the GIF files (without extension) for each frame set.
// An empty Dir selects generated placeholder frames.
type AssetsConfig struct {
	Dir        string `yaml:"dir"`
	Background string `yaml:"background"`
	Title      string `yaml:"title"`
	Player     string `yaml:"player"`
	PlayerLeft string `yaml:"playerLeft"`
	Enemy      string `yaml:"enemy"`
	EnemyLeft  string `yaml:"enemyLeft"`
}
