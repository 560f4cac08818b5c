package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/beatemup/internal/domain/entity"
	"github.com/younwookim/beatemup/internal/infrastructure/config"
)

const (
	labelInstructions      = "INSTRUCTIONS"
	labelCloseInstructions = "CLOSE INSTRUCTIONS"
)

// Instructions is the help text of the title screen
const Instructions = `CLICK 'CLOSE INSTRUCTIONS' TO EXIT
Instructions:
1: USE %s,%s,%s KEYS TO MOVE: %s=LEFT, %s=DUCK/DODGE, %s=RIGHT
2: USE %s TO ATTACK ENEMY PLAYERS
3: ATTACKS AND DUCKS STOP MOVEMENT, BE TACTICAL AND BE QUICK OR YOU WILL GET OVERRUN
4: DEFEAT ENEMIES TO SCORE POINTS. TOUGHER ENEMIES YIELD MORE POINTS
   BUT TAKE MORE HITS TO DEFEAT
5: ENEMY ATTACKS DAMAGE YOU. THE HEALTH BAR IN THE TOP LEFT CORNER SHOWS
   WHAT IS LEFT, THE GAME ENDS WHEN IT RUNS OUT
6: CLICK 'START' (OR ENTER) TO PLAY. WHEN THE GAME ENDS CLICK 'RESTART'
7: DIFFICULTY SETS THE NUMBER OF ENEMIES, THEIR HEALTH, THEIR DAMAGE
   AND OF COURSE THE POINTS!
8: YOU'RE NOT INVINCIBLE. YOU STILL TAKE DAMAGE WHILE ATTACKING!`

// Title is the title screen: difficulty selector, instructions and start button.
// It implements round.Menu.
type Title struct {
	width, height int
	images        Images
	help          string

	difficulty   int
	visible      bool
	instructions bool
	start        bool

	minus, plus Button
	instructBtn Button
	startBtn    Button
}

// NewTitle lays out the title screen for a width x height window
func NewTitle(width, height int, images Images, cfg *config.Config) *Title {
	cx := width / 2
	k := cfg.Keys
	help := fmt.Sprintf(Instructions, k.Left, k.Duck, k.Right, k.Left, k.Duck, k.Right, k.Attack)

	t := &Title{
		width:      width,
		height:     height,
		images:     images,
		help:       help,
		difficulty: cfg.Difficulty.Default,
		minus:      Button{Bounds: image.Rect(cx-80, 70, cx-56, 94), Label: "<"},
		plus:       Button{Bounds: image.Rect(cx+56, 70, cx+80, 94), Label: ">"},
		startBtn:   centeredButton("START", cx+40, 104),
	}
	t.setInstructions(false)
	return t
}

func (t *Title) Show()                { t.visible = true }
func (t *Title) Visible() bool        { return t.visible }
func (t *Title) StartRequested() bool { return t.start }
func (t *Title) ClearStart()          { t.start = false }
func (t *Title) Difficulty() int      { return t.difficulty }

// Hide removes the title screen, instructions included
func (t *Title) Hide() {
	t.visible = false
	t.setInstructions(false)
}

// InstructionsShown returns true while the help panel is open
func (t *Title) InstructionsShown() bool {
	return t.instructions
}

// Start requests a round
func (t *Title) Start() {
	t.start = true
}

// Step moves the difficulty selector by delta within the allowed range
func (t *Title) Step(delta int) {
	t.difficulty = min(max(t.difficulty+delta, config.MinDifficulty), config.MaxDifficulty)
}

// ToggleInstructions opens or closes the help panel
func (t *Title) ToggleInstructions() {
	t.setInstructions(!t.instructions)
}

func (t *Title) setInstructions(open bool) {
	t.instructions = open
	label := labelInstructions
	if open {
		label = labelCloseInstructions
	}
	// Right aligned next to the start button
	w := len(label)*charW + 16
	right := t.width/2 + 4
	t.instructBtn = Button{Bounds: image.Rect(right-w, 104, right, 104+lineH+8), Label: label}
}

// Click handles a left click at (x, y)
func (t *Title) Click(x, y int) {
	if !t.visible {
		return
	}
	switch {
	case t.minus.Contains(x, y):
		t.Step(-1)
	case t.plus.Contains(x, y):
		t.Step(1)
	case t.instructBtn.Contains(x, y):
		t.ToggleInstructions()
	case t.startBtn.Contains(x, y):
		t.Start()
	}
}

// Update polls mouse and keyboard while visible
func (t *Title) Update() {
	if !t.visible {
		return
	}
	if x, y, ok := clicked(); ok {
		t.Click(x, y)
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		t.Step(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		t.Step(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		t.ToggleInstructions()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		t.Start()
	}
}

// Draw renders the title screen
func (t *Title) Draw(screen *ebiten.Image) {
	if !t.visible {
		return
	}

	if t.images != nil {
		if img, ok := t.images.Image(entity.FrameRef{Set: entity.SetTitle}); ok {
			screen.DrawImage(img, &ebiten.DrawImageOptions{})
		}
	}

	cx := t.width / 2
	drawCentered(screen, "BEAT 'EM UP", cx, 30)

	// Difficulty selector
	t.minus.draw(screen)
	t.plus.draw(screen)
	track := image.Rect(cx-48, 78, cx+48, 86)
	vector.DrawFilledRect(screen, float32(track.Min.X), float32(track.Min.Y), float32(track.Dx()), float32(track.Dy()), colorFrameBG, false)
	span := config.MaxDifficulty - config.MinDifficulty
	knob := track.Min.X + (t.difficulty-config.MinDifficulty)*track.Dx()/span
	vector.DrawFilledRect(screen, float32(knob-3), float32(track.Min.Y-4), 6, float32(track.Dy()+8), colorBorder, false)
	drawCentered(screen, fmt.Sprintf("DIFFICULTY %d", t.difficulty), cx, 50)

	t.instructBtn.draw(screen)
	t.startBtn.draw(screen)

	if t.instructions {
		top := t.height / 2
		vector.DrawFilledRect(screen, 0, float32(top), float32(t.width), float32(t.height-top), colorPanel, false)
		ebitenutil.DebugPrintAt(screen, t.help, 4, top+4)
	}
}
