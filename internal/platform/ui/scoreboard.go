package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/beatemup/internal/application/round"
)

// Scoreboard shows the final score with a restart button.
// It implements round.Scoreboard.
type Scoreboard struct {
	width, height int

	visible    bool
	restart    bool
	lines      []string
	restartBtn Button
}

// NewScoreboard centers the scoreboard in a width x height window
func NewScoreboard(width, height int) *Scoreboard {
	return &Scoreboard{
		width:      width,
		height:     height,
		restartBtn: centeredButton("RESTART", width/2, height/2+20),
	}
}

// Show displays the score and the taunt for the difficulty
func (s *Scoreboard) Show(score, difficulty int) {
	s.lines = []string{
		fmt.Sprintf("PLAYER SCORE: %d", score),
		fmt.Sprintf("DIFFICULTY: %s", round.Taunt(difficulty)),
	}
	s.visible = true
}

func (s *Scoreboard) Hide()                  { s.visible = false }
func (s *Scoreboard) Visible() bool          { return s.visible }
func (s *Scoreboard) RestartRequested() bool { return s.restart }
func (s *Scoreboard) Restart()               { s.restart = true }

// Clear forgets the shown lines and the restart request
func (s *Scoreboard) Clear() {
	s.lines = nil
	s.restart = false
}

// Lines returns the text currently shown
func (s *Scoreboard) Lines() []string {
	return s.lines
}

// Click handles a left click at (x, y)
func (s *Scoreboard) Click(x, y int) {
	if s.visible && s.restartBtn.Contains(x, y) {
		s.Restart()
	}
}

// Update polls mouse and keyboard while visible
func (s *Scoreboard) Update() {
	if !s.visible {
		return
	}
	if x, y, ok := clicked(); ok {
		s.Click(x, y)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.Restart()
	}
}

// Draw renders the scoreboard panel
func (s *Scoreboard) Draw(screen *ebiten.Image) {
	if !s.visible {
		return
	}

	cx, cy := s.width/2, s.height/2
	panel := image.Rect(cx-150, cy-50, cx+150, s.restartBtn.Bounds.Max.Y+8)
	vector.DrawFilledRect(screen, float32(panel.Min.X), float32(panel.Min.Y), float32(panel.Dx()), float32(panel.Dy()), colorFrameBG, false)
	vector.DrawFilledRect(screen, float32(panel.Min.X+3), float32(panel.Min.Y+3), float32(panel.Dx()-6), float32(panel.Dy()-6), colorButton, false)

	for i, line := range s.lines {
		drawCentered(screen, line, cx, cy-40+i*lineH)
	}
	s.restartBtn.draw(screen)
}
