package system

import (
	"image/color"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/younwookim/beatemup/internal/domain/entity"
	"github.com/younwookim/beatemup/internal/infrastructure/config"
)

// Colors for the health bar
var (
	colorHealthLost = color.RGBA{200, 30, 30, 255}
	colorHealthLeft = color.RGBA{40, 180, 60, 255}
)

// Dice is the source of randomness for spawning and combat. *rand.Rand satisfies it.
type Dice interface {
	Intn(n int) int
}

// Arena owns the roster and runs one simulation pass per tick
type Arena struct {
	config *config.Config
	canvas Canvas
	dice   Dice
	logger *log.Logger

	width, height float64
	animation     entity.Animation
	playerStats   entity.PlayerStats
	enemyStats    entity.EnemyStats

	// Roster: index 0 is the player, enemies follow in spawn order
	roster     []entity.Combatant
	items      map[entity.EntityID]ItemID
	player     *entity.Player
	nextID     entity.EntityID
	difficulty int
	score      int

	background     *Background
	backgroundItem ItemID
	healthBar      HealthBar
	healthBarItems []ItemID

	// Event callbacks
	OnKill func(enemy *entity.Enemy)
	OnHit  func(target *entity.Sprite)
}

// NewArena creates an empty arena drawing into canvas.
// backgroundFrames is the length of the background cycle (0 for none).
func NewArena(cfg *config.Config, canvas Canvas, dice Dice, backgroundFrames int, logger *log.Logger) *Arena {
	width := float64(cfg.Display.Width)
	return &Arena{
		config: cfg,
		canvas: canvas,
		dice:   dice,
		logger: logger,
		width:  width,
		height: float64(cfg.Display.Height),
		animation: entity.Animation{
			Speed:    cfg.Animation.Speed,
			DuckHold: cfg.Animation.DuckHold,
		},
		playerStats: entity.PlayerStats{
			MaxHealth:    cfg.Player.MaxHealth,
			AttackDamage: cfg.Player.AttackDamage,
			Speed:        cfg.Player.Speed,
			Width:        cfg.Player.Width,
		},
		enemyStats: entity.EnemyStats{
			HealthPerTier: cfg.Enemy.HealthPerTier,
			DamagePerTier: cfg.Enemy.DamagePerTier,
			Speed:         cfg.Enemy.Speed,
			Width:         cfg.Enemy.Width,
		},
		items:      make(map[entity.EntityID]ItemID),
		nextID:     1,
		difficulty: config.MinDifficulty,
		background: NewBackground(backgroundFrames, cfg.Background.Ticks(cfg.Tick)),
		healthBar:  NewHealthBar(width, cfg.HealthBar.Margin, cfg.HealthBar.Height),
	}
}

// ShowBackground places the background image. Calling it again is a no-op.
func (a *Arena) ShowBackground() {
	if a.backgroundItem != 0 || a.background.Frames() == 0 {
		return
	}
	a.backgroundItem = a.canvas.CreateImage(0, 0, a.backgroundFrame(), AnchorNW)
}

func (a *Arena) backgroundFrame() entity.FrameRef {
	return entity.FrameRef{Set: entity.SetBackground, Index: a.background.Frame()}
}

// AdvanceBackground counts one tick of the background animation.
// Tick calls it, so the background only animates during a round.
func (a *Arena) AdvanceBackground() {
	if a.background.Advance() && a.backgroundItem != 0 {
		a.canvas.SetFrame(a.backgroundItem, a.backgroundFrame())
	}
}

// SetDifficulty sets the difficulty used for replacement enemies
func (a *Arena) SetDifficulty(difficulty int) {
	a.difficulty = clampDifficulty(difficulty)
}

// Difficulty returns the difficulty used for replacement enemies
func (a *Arena) Difficulty() int {
	return a.difficulty
}

func clampDifficulty(d int) int {
	return min(max(d, config.MinDifficulty), config.MaxDifficulty)
}

func (a *Arena) newID() entity.EntityID {
	id := a.nextID
	a.nextID++
	return id
}

// CreatePlayer adds the player at the head of the roster
func (a *Arena) CreatePlayer() *entity.Player {
	p := entity.NewPlayer(a.newID(), a.playerStats, a.animation)
	a.player = p
	a.roster = slices.Insert(a.roster, 0, entity.Combatant(p))
	return p
}

// CreateEnemy appends an enemy whose tier is drawn for the difficulty.
// It appears on the next spawn pass.
func (a *Arena) CreateEnemy(difficulty int) *entity.Enemy {
	e := entity.NewEnemy(a.newID(), a.rollTier(difficulty), a.enemyStats, a.animation)
	a.roster = append(a.roster, e)
	return e
}

// rollTier picks a tier in [difficulty, MaxTier]. Difficulty 1 always yields the easy tier.
func (a *Arena) rollTier(difficulty int) int {
	d := clampDifficulty(difficulty)
	if d > config.MinDifficulty {
		return d + a.dice.Intn(entity.MaxTier-d+1)
	}
	return a.config.Enemy.EasyTier
}

func setOf(c entity.Combatant) string {
	if _, ok := c.(*entity.Player); ok {
		return entity.SetPlayer
	}
	return entity.SetEnemy
}

// SpawnIfNeeded places a sprite the first time it is seen.
// The player starts at the center, enemies at a random edge. Facing keeps its
// default and only changes by moving; the spawn direction picks the first image.
func (a *Arena) SpawnIfNeeded(c entity.Combatant) {
	s := c.Body()
	if s.Visible {
		return
	}

	shown := entity.FacingRight
	switch c.(type) {
	case *entity.Player:
		s.X = a.width / 2
		shown = entity.Facing(a.dice.Intn(2))
	case *entity.Enemy:
		if a.dice.Intn(2) == 0 {
			s.X = 0
		} else {
			s.X = a.width - s.Width
			shown = entity.FacingLeft
		}
	}
	s.Y = a.height
	s.Frame = entity.FrameWalkFirst

	frame := s.CurrentFrame(setOf(c))
	frame.Facing = shown
	a.items[s.ID] = a.canvas.CreateImage(s.X, s.Y, frame, AnchorSW)
	s.Visible = true
}

// stepSprite moves and animates a sprite and mirrors the result on the canvas
func (a *Arena) stepSprite(c entity.Combatant) {
	s := c.Body()
	item, ok := a.items[s.ID]
	if !ok {
		return
	}

	oldX := s.X
	if s.Step(a.width) {
		a.canvas.Move(item, s.X-oldX, 0)
	}
	a.canvas.SetFrame(item, s.CurrentFrame(setOf(c)))
}

// ResolveOverlap returns true if the player's image intersects the enemy's bounding box
func (a *Arena) ResolveOverlap(player *entity.Player, enemy *entity.Enemy) bool {
	enemyItem, ok := a.items[enemy.ID]
	if !ok {
		return false
	}
	playerItem, ok := a.items[player.ID]
	if !ok {
		return false
	}

	box, ok := a.canvas.BBox(enemyItem)
	if !ok {
		return false
	}
	return slices.Contains(a.canvas.FindOverlapping(box), playerItem)
}

// UpdateScore credits a kill
func (a *Arena) UpdateScore(killed bool, enemy *entity.Enemy) {
	if killed {
		a.score += enemy.Tier * a.config.Score.PointsPerTier
	}
}

// DespawnIfDead removes a dead enemy from the roster and the canvas.
// Returns true if it was removed.
func (a *Arena) DespawnIfDead(enemy *entity.Enemy) bool {
	if !enemy.IsDead() {
		return false
	}
	idx := a.indexOf(enemy.ID)
	if idx < 0 {
		return false
	}
	a.roster = slices.Delete(a.roster, idx, idx+1)
	a.removeItem(enemy.ID)
	return true
}

func (a *Arena) removeItem(id entity.EntityID) {
	if item, ok := a.items[id]; ok {
		a.canvas.Delete(item)
		delete(a.items, id)
	}
}

func (a *Arena) indexOf(id entity.EntityID) int {
	return slices.IndexFunc(a.roster, func(c entity.Combatant) bool {
		return c.Body().ID == id
	})
}

// ShowHealthBar draws the red background and green foreground bars
func (a *Arena) ShowHealthBar() {
	if a.healthBarItems != nil {
		return
	}
	a.healthBarItems = []ItemID{
		a.canvas.CreateRect(a.healthBar.Frame(), colorHealthLost),
		a.canvas.CreateRect(a.healthBar.Fill(), colorHealthLeft),
	}
}

// UpdateHealthBar rescales the green bar from the player's health
func (a *Arena) UpdateHealthBar(player *entity.Player) {
	a.healthBar.Update(player)
	if a.healthBarItems != nil {
		a.canvas.SetRect(a.healthBarItems[1], a.healthBar.Fill())
	}
}

// Tick runs one simulation pass.
// The roster is walked from a snapshot of ids so kills can remove entries
// mid-pass; replacements are created once the pass is over.
func (a *Arena) Tick() {
	a.AdvanceBackground()

	player := a.player
	ids := make([]entity.EntityID, len(a.roster))
	for i, c := range a.roster {
		ids[i] = c.Body().ID
	}

	kills := 0
	for _, id := range ids {
		idx := a.indexOf(id)
		if idx < 0 {
			continue
		}
		c := a.roster[idx]
		a.SpawnIfNeeded(c)

		switch sprite := c.(type) {
		case *entity.Player:
			a.stepSprite(sprite)
		case *entity.Enemy:
			if player == nil {
				continue
			}
			sprite.UpdateMovement(sprite.DecideMovement(player.X))
			a.stepSprite(sprite)

			overlapping := a.ResolveOverlap(player, sprite)
			a.ResolveInteraction(player, sprite, overlapping)

			killed := sprite.IsDead()
			a.UpdateScore(killed, sprite)
			if a.DespawnIfDead(sprite) {
				kills++
				a.logger.Debug("enemy defeated", "id", sprite.ID, "tier", sprite.Tier, "score", a.score)
				if a.OnKill != nil {
					a.OnKill(sprite)
				}
			}
		}

		if player != nil {
			a.UpdateHealthBar(player)
		}
	}

	for i := 0; i < kills; i++ {
		e := a.CreateEnemy(a.difficulty)
		a.logger.Debug("enemy replaced", "id", e.ID, "tier", e.Tier)
	}
}

// Reset deletes every sprite and the health bar. The score is left alone.
func (a *Arena) Reset() {
	for _, c := range a.roster {
		a.removeItem(c.Body().ID)
	}
	a.roster = nil
	a.player = nil

	if a.healthBarItems != nil {
		a.canvas.Delete(a.healthBarItems...)
		a.healthBarItems = nil
	}
}

// Score returns the points earned this round
func (a *Arena) Score() int {
	return a.score
}

// ResetScore zeroes the score
func (a *Arena) ResetScore() {
	a.score = 0
}

// Player returns the player, or nil outside a round
func (a *Arena) Player() *entity.Player {
	return a.player
}

// Roster returns a copy of the roster in order
func (a *Arena) Roster() []entity.Combatant {
	return slices.Clone(a.roster)
}

// HealthBar returns the health bar state
func (a *Arena) HealthBar() HealthBar {
	return a.healthBar
}
