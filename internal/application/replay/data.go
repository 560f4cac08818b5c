package replay

// Key names used in scripts
const (
	KeyLeft   = "left"
	KeyRight  = "right"
	KeyAttack = "attack"
	KeyDuck   = "duck"
)

// Actions used in scripts. Attack and duck only react to press.
const (
	ActionPress   = "press"
	ActionRelease = "release"
)

// Event is one key transition at a round tick
type Event struct {
	Tick   int    `yaml:"tick"`
	Key    string `yaml:"key"`
	Action string `yaml:"action"`
}

// Script is a scripted input sequence for a headless round
type Script struct {
	Version    string  `yaml:"version"`
	Seed       int64   `yaml:"seed"`
	Difficulty int     `yaml:"difficulty"`
	Events     []Event `yaml:"events"`
}
