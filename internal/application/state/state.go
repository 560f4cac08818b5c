package state

// Phase is the step a round controller runs on its next tick
type Phase int

const (
	PhaseInit Phase = iota
	PhaseMenuShown
	PhaseAwaitStart
	PhaseSetup
	PhaseActive
	PhaseGameOver
	PhaseScoreboardShown
	PhaseAwaitRestart
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "Init"
	case PhaseMenuShown:
		return "MenuShown"
	case PhaseAwaitStart:
		return "AwaitStart"
	case PhaseSetup:
		return "Setup"
	case PhaseActive:
		return "Active"
	case PhaseGameOver:
		return "GameOver"
	case PhaseScoreboardShown:
		return "ScoreboardShown"
	case PhaseAwaitRestart:
		return "AwaitRestart"
	default:
		return "Unknown"
	}
}

// InRound returns true while sprites are on the field
func (p Phase) InRound() bool {
	return p == PhaseActive
}

// Waiting returns true while the controller waits on the player
func (p Phase) Waiting() bool {
	return p == PhaseAwaitStart || p == PhaseAwaitRestart
}
