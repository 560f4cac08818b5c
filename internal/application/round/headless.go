package round

import "github.com/younwookim/beatemup/internal/infrastructure/config"

// Taunts indexed by difficulty - 1
var taunts = [config.MaxDifficulty]string{
	"SUPER EASY",
	"MEH, NOT EVEN CHALLENGING",
	"I COULD STILL DO BETTER THAN THAT",
	"HARD FOR YOU? EASY FOR ME.",
}

// Taunt returns the scoreboard line for a difficulty
func Taunt(difficulty int) string {
	d := min(max(difficulty, config.MinDifficulty), config.MaxDifficulty)
	return taunts[d-1]
}

// HeadlessMenu is a Menu without a screen. Start requests come from code.
type HeadlessMenu struct {
	difficulty int
	start      bool
	visible    bool
}

// NewHeadlessMenu creates a menu preset to difficulty
func NewHeadlessMenu(difficulty int) *HeadlessMenu {
	return &HeadlessMenu{difficulty: difficulty}
}

func (m *HeadlessMenu) Show()                { m.visible = true }
func (m *HeadlessMenu) Hide()                { m.visible = false }
func (m *HeadlessMenu) Visible() bool        { return m.visible }
func (m *HeadlessMenu) StartRequested() bool { return m.start }
func (m *HeadlessMenu) ClearStart()          { m.start = false }
func (m *HeadlessMenu) Difficulty() int      { return m.difficulty }

// Start requests a round
func (m *HeadlessMenu) Start() {
	m.start = true
}

// SetDifficulty changes the preset difficulty
func (m *HeadlessMenu) SetDifficulty(d int) {
	m.difficulty = d
}

// Result is one finished round
type Result struct {
	Score      int
	Difficulty int
	Taunt      string
}

// TallyScoreboard records every shown result
type TallyScoreboard struct {
	Results []Result

	restart bool
	visible bool
}

// NewTallyScoreboard creates an empty tally
func NewTallyScoreboard() *TallyScoreboard {
	return &TallyScoreboard{}
}

// Show records the result
func (s *TallyScoreboard) Show(score, difficulty int) {
	s.Results = append(s.Results, Result{Score: score, Difficulty: difficulty, Taunt: Taunt(difficulty)})
	s.visible = true
}

func (s *TallyScoreboard) Hide()                  { s.visible = false }
func (s *TallyScoreboard) Visible() bool          { return s.visible }
func (s *TallyScoreboard) RestartRequested() bool { return s.restart }
func (s *TallyScoreboard) Clear()                 { s.restart = false }

// Restart requests another round
func (s *TallyScoreboard) Restart() {
	s.restart = true
}

// Last returns the most recent result
func (s *TallyScoreboard) Last() (Result, bool) {
	if len(s.Results) == 0 {
		return Result{}, false
	}
	return s.Results[len(s.Results)-1], true
}
