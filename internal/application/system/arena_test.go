package system

import (
	"image/color"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/beatemup/internal/domain/entity"
	"github.com/younwookim/beatemup/internal/infrastructure/config"
)

const testImageSize = 100

type fakeItem struct {
	rect  entity.Rect
	frame entity.FrameRef
	fill  color.Color
}

// fakeCanvas keeps items as plain rectangles, every image is testImageSize square
type fakeCanvas struct {
	items map[ItemID]*fakeItem
	order []ItemID
	next  ItemID
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{items: make(map[ItemID]*fakeItem)}
}

func (c *fakeCanvas) add(it *fakeItem) ItemID {
	c.next++
	c.items[c.next] = it
	c.order = append(c.order, c.next)
	return c.next
}

func (c *fakeCanvas) CreateImage(x, y float64, frame entity.FrameRef, anchor Anchor) ItemID {
	r := entity.Rect{X: x, Y: y, W: testImageSize, H: testImageSize}
	if anchor == AnchorSW {
		r.Y -= testImageSize
	}
	return c.add(&fakeItem{rect: r, frame: frame})
}

func (c *fakeCanvas) CreateRect(r entity.Rect, fill color.Color) ItemID {
	return c.add(&fakeItem{rect: r, fill: fill})
}

func (c *fakeCanvas) Move(id ItemID, dx, dy float64) {
	if it, ok := c.items[id]; ok {
		it.rect.X += dx
		it.rect.Y += dy
	}
}

func (c *fakeCanvas) SetFrame(id ItemID, frame entity.FrameRef) {
	if it, ok := c.items[id]; ok {
		it.frame = frame
	}
}

func (c *fakeCanvas) SetRect(id ItemID, r entity.Rect) {
	if it, ok := c.items[id]; ok {
		it.rect = r
	}
}

func (c *fakeCanvas) BBox(id ItemID) (entity.Rect, bool) {
	it, ok := c.items[id]
	if !ok {
		return entity.Rect{}, false
	}
	return it.rect, true
}

func (c *fakeCanvas) FindOverlapping(r entity.Rect) []ItemID {
	var ids []ItemID
	for _, id := range c.order {
		if it, ok := c.items[id]; ok && it.rect.Intersects(r) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (c *fakeCanvas) Delete(ids ...ItemID) {
	for _, id := range ids {
		delete(c.items, id)
	}
}

// scriptedDice replays rolls in order and returns 0 once exhausted
type scriptedDice struct {
	rolls []int
}

func (d *scriptedDice) Intn(n int) int {
	if len(d.rolls) == 0 {
		return 0
	}
	r := d.rolls[0]
	d.rolls = d.rolls[1:]
	return r % n
}

func newTestArena(rolls ...int) (*Arena, *fakeCanvas, *scriptedDice) {
	canvas := newFakeCanvas()
	dice := &scriptedDice{rolls: rolls}
	a := NewArena(config.Default(), canvas, dice, 3, log.New(io.Discard))
	return a, canvas, dice
}

// placeAt teleports a spawned sprite and its canvas item
func placeAt(a *Arena, c entity.Combatant, x float64) {
	s := c.Body()
	a.canvas.Move(a.items[s.ID], x-s.X, 0)
	s.X = x
}

// readyToLand puts a sprite on the tick its attack lands
func readyToLand(s *entity.Sprite) {
	s.State = entity.StateAttacking
	s.Frame = entity.FrameAttackLast
	s.FrameTicks = s.Animation().Speed
}

func TestArena_SpawnPlayer(t *testing.T) {
	a, canvas, _ := newTestArena(1)
	p := a.CreatePlayer()

	a.SpawnIfNeeded(p)

	assert.True(t, p.Visible)
	assert.Equal(t, 512.0, p.X)
	assert.Equal(t, 490.0, p.Y)
	assert.Equal(t, entity.FacingRight, p.Facing, "facing only changes by moving")

	item := canvas.items[a.items[p.ID]]
	require.NotNil(t, item)
	assert.Equal(t, entity.FrameRef{Set: entity.SetPlayer, Facing: entity.FacingLeft, Index: 0}, item.frame,
		"the roll picks the first image")
	assert.Equal(t, 390.0, item.rect.Y, "anchored at the ground line")

	// Second call does nothing
	a.SpawnIfNeeded(p)
	assert.Len(t, canvas.items, 1)
}

func TestArena_SpawnEnemyEdges(t *testing.T) {
	tests := []struct {
		name  string
		roll  int
		x     float64
		shown entity.Facing
	}{
		{"left edge looks right", 0, 0, entity.FacingRight},
		{"right edge looks left", 1, 924, entity.FacingLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, canvas, _ := newTestArena(tt.roll)
			e := a.CreateEnemy(1)

			a.SpawnIfNeeded(e)

			assert.Equal(t, tt.x, e.X)
			assert.Equal(t, entity.FacingRight, e.Facing)
			assert.Equal(t, tt.shown, canvas.items[a.items[e.ID]].frame.Facing)
			assert.True(t, e.Visible)
		})
	}
}

func TestArena_SpawnedSpritesShareFacing(t *testing.T) {
	// Player shown looking left, enemy on the left edge, enemy trades blows
	a, _, _ := newTestArena(1, 0, 1)
	p := a.CreatePlayer()
	e := a.CreateEnemy(1)
	a.SpawnIfNeeded(p)
	a.SpawnIfNeeded(e)
	require.Equal(t, p.Facing, e.Facing)

	readyToLand(&p.Sprite)
	a.ResolveInteraction(p, e, true)

	assert.Equal(t, 50, e.Health, "neither has moved, so the attack cannot land")
}

func TestArena_RollTier(t *testing.T) {
	tests := []struct {
		name       string
		difficulty int
		roll       int
		want       int
	}{
		{"difficulty 1 is always the easy tier", 1, 1, 2},
		{"difficulty 2 lowest roll", 2, 0, 2},
		{"difficulty 2 highest roll", 2, 2, 4},
		{"difficulty 3 upper roll", 3, 1, 4},
		{"difficulty 4 has one choice", 4, 3, 4},
		{"out of range is clamped", 9, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, _ := newTestArena(tt.roll)
			e := a.CreateEnemy(tt.difficulty)

			assert.Equal(t, tt.want, e.Tier)
			assert.Equal(t, tt.want*25, e.Health)
			assert.Equal(t, tt.want, e.AttackDamage)
		})
	}
}

func TestArena_RosterOrder(t *testing.T) {
	a, _, _ := newTestArena()
	e1 := a.CreateEnemy(1)
	p := a.CreatePlayer()
	e2 := a.CreateEnemy(1)

	roster := a.Roster()
	require.Len(t, roster, 3)
	assert.Same(t, p, roster[0])
	assert.Same(t, e1, roster[1])
	assert.Same(t, e2, roster[2])
	assert.Same(t, p, a.Player())
}

func TestArena_ResolveOverlap(t *testing.T) {
	tests := []struct {
		name   string
		enemyX float64
		want   bool
	}{
		{"overlapping", 450, true},
		{"same spot", 512, true},
		{"touching edges", 412, false},
		{"far apart", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, _ := newTestArena()
			p := a.CreatePlayer()
			e := a.CreateEnemy(1)
			a.SpawnIfNeeded(p)
			a.SpawnIfNeeded(e)

			placeAt(a, e, tt.enemyX)

			assert.Equal(t, tt.want, a.ResolveOverlap(p, e))
		})
	}
}

func TestArena_ResolveOverlap_Unspawned(t *testing.T) {
	a, _, _ := newTestArena()
	p := a.CreatePlayer()
	e := a.CreateEnemy(1)

	assert.False(t, a.ResolveOverlap(p, e))
}

func TestArena_ResolveInteraction(t *testing.T) {
	t.Run("walking player is attacked", func(t *testing.T) {
		a, _, _ := newTestArena()
		p := a.CreatePlayer()
		e := a.CreateEnemy(1)

		a.ResolveInteraction(p, e, true)
		assert.Equal(t, entity.StateAttacking, e.State)
		assert.Equal(t, 100, p.Health, "damage waits for the last frame")

		readyToLand(&e.Sprite)
		a.ResolveInteraction(p, e, true)
		assert.Equal(t, 98, p.Health)
	})

	t.Run("no contact no action", func(t *testing.T) {
		a, _, _ := newTestArena()
		p := a.CreatePlayer()
		e := a.CreateEnemy(1)
		readyToLand(&p.Sprite)

		a.ResolveInteraction(p, e, false)
		assert.Equal(t, entity.StateWalking, e.State)
		assert.Equal(t, 50, e.Health)
	})

	t.Run("ducking player is left alone", func(t *testing.T) {
		a, _, _ := newTestArena()
		p := a.CreatePlayer()
		e := a.CreateEnemy(1)
		p.TriggerDuck()

		a.ResolveInteraction(p, e, true)
		assert.Equal(t, entity.StateWalking, e.State)
	})

	t.Run("enemy dodges an attack", func(t *testing.T) {
		a, _, _ := newTestArena(0)
		p := a.CreatePlayer()
		e := a.CreateEnemy(1)
		e.Facing = entity.FacingRight
		p.Facing = entity.FacingLeft
		readyToLand(&p.Sprite)

		a.ResolveInteraction(p, e, true)
		assert.Equal(t, entity.StateDucking, e.State)
		assert.Equal(t, 50, e.Health)
	})

	t.Run("enemy trades blows", func(t *testing.T) {
		a, _, _ := newTestArena(1)
		p := a.CreatePlayer()
		e := a.CreateEnemy(1)
		e.Facing = entity.FacingRight
		p.Facing = entity.FacingLeft
		readyToLand(&p.Sprite)

		var hits []entity.EntityID
		a.OnHit = func(target *entity.Sprite) { hits = append(hits, target.ID) }

		a.ResolveInteraction(p, e, true)
		assert.Equal(t, entity.StateAttacking, e.State)
		assert.Equal(t, 25, e.Health)
		assert.Equal(t, []entity.EntityID{e.ID}, hits)
	})

	t.Run("enemy attacks back", func(t *testing.T) {
		a, _, _ := newTestArena(1)
		p := a.CreatePlayer()
		e := a.CreateEnemy(1)
		p.TriggerAttack()
		readyToLand(&e.Sprite)

		var hits []entity.EntityID
		a.OnHit = func(target *entity.Sprite) { hits = append(hits, target.ID) }

		a.ResolveInteraction(p, e, true)
		assert.Equal(t, 100-e.AttackDamage, p.Health)
		assert.Equal(t, 50, e.Health, "the player's swing has not landed yet")
		assert.Equal(t, []entity.EntityID{p.ID}, hits)
	})

	t.Run("attack from behind misses", func(t *testing.T) {
		a, _, _ := newTestArena(1)
		p := a.CreatePlayer()
		e := a.CreateEnemy(1)
		e.Facing = entity.FacingLeft
		p.Facing = entity.FacingLeft
		readyToLand(&p.Sprite)

		a.ResolveInteraction(p, e, true)
		assert.Equal(t, 50, e.Health)
	})
}

func TestArena_UpdateScore(t *testing.T) {
	a, _, _ := newTestArena(2)
	e := a.CreateEnemy(3) // roll 2 of Intn(2) selects tier 3

	a.UpdateScore(false, e)
	assert.Equal(t, 0, a.Score())

	a.UpdateScore(true, e)
	assert.Equal(t, 75, a.Score())

	a.ResetScore()
	assert.Equal(t, 0, a.Score())
}

func TestArena_TickReplacesKilledEnemy(t *testing.T) {
	a, canvas, _ := newTestArena()
	a.ShowHealthBar()
	p := a.CreatePlayer()
	e := a.CreateEnemy(1)

	var killed []*entity.Enemy
	a.OnKill = func(enemy *entity.Enemy) { killed = append(killed, enemy) }

	a.Tick()
	require.True(t, e.Visible)
	assert.Equal(t, 1.5, e.X, "spawned at the left edge and stepped")
	enemyItem := a.items[e.ID]

	e.ApplyHealth(entity.HealthSet, 0)
	a.Tick()

	assert.Equal(t, 50, a.Score(), "tier 2 kill")
	require.Len(t, killed, 1)
	assert.Same(t, e, killed[0])
	assert.NotContains(t, canvas.items, enemyItem)

	roster := a.Roster()
	require.Len(t, roster, 2, "one replacement per kill")
	assert.Same(t, p, roster[0])
	replacement := roster[1].Body()
	assert.NotEqual(t, e.ID, replacement.ID)
	assert.False(t, replacement.Visible, "shown on the next tick")

	a.Tick()
	assert.True(t, replacement.Visible)
}

func TestArena_TickKillsDoNotSkipOthers(t *testing.T) {
	a, _, _ := newTestArena()
	a.CreatePlayer()
	e1 := a.CreateEnemy(1)
	e2 := a.CreateEnemy(1)
	e3 := a.CreateEnemy(1)
	a.Tick()

	e1.ApplyHealth(entity.HealthSet, 0)
	e2.ApplyHealth(entity.HealthSet, 0)
	ticksBefore := e3.FrameTicks
	xBefore := e3.X

	a.Tick()

	assert.Equal(t, 100, a.Score())
	assert.Len(t, a.Roster(), 4)
	assert.True(t, e3.X != xBefore || e3.FrameTicks != ticksBefore, "enemy after the kills still steps")
}

func TestArena_TickPursuit(t *testing.T) {
	a, _, _ := newTestArena(0, 1) // enemy spawns on the right
	p := a.CreatePlayer()
	e := a.CreateEnemy(1)

	// Facing right at the right edge, the first step is dropped
	a.Tick()
	require.Equal(t, 924.0, e.X)
	assert.Equal(t, entity.FacingRight, e.Facing)

	for i := 0; i < 10; i++ {
		a.Tick()
	}

	assert.Equal(t, 512.0, p.X, "player without input stays put")
	assert.Equal(t, 909.0, e.X)
	assert.Equal(t, entity.FacingLeft, e.Facing)
}

func TestArena_TickPlayerHeldAtEdge(t *testing.T) {
	a, canvas, _ := newTestArena()
	p := a.CreatePlayer()
	a.Tick()

	placeAt(a, p, 924)
	p.PressDirection(entity.FacingRight)
	a.Tick()

	assert.Equal(t, 924.0, p.X)
	assert.Equal(t, 924.0, canvas.items[a.items[p.ID]].rect.X)

	p.ReleaseDirection(entity.FacingRight)
	p.PressDirection(entity.FacingLeft)
	a.Tick()

	assert.Equal(t, 921.5, p.X)
	assert.Equal(t, 921.5, canvas.items[a.items[p.ID]].rect.X)
	assert.Equal(t, entity.FacingLeft, canvas.items[a.items[p.ID]].frame.Facing)
}

func TestArena_UpdateHealthBar(t *testing.T) {
	a, canvas, _ := newTestArena()
	a.ShowHealthBar()
	p := a.CreatePlayer()
	bar := canvas.items[a.healthBarItems[1]]
	maxExtent := 1024.0/2 - 10

	p.ApplyHealth(entity.HealthSet, 60)
	a.UpdateHealthBar(p)
	assert.InDelta(t, 0.6*maxExtent, a.HealthBar().Extent(), 1e-9)
	assert.InDelta(t, 0.6*maxExtent-10, bar.rect.W, 1e-9)

	p.ApplyHealth(entity.HealthSet, 0)
	a.UpdateHealthBar(p)
	assert.Equal(t, maxExtent, a.HealthBar().Extent(), "dead resets to full")
	assert.Equal(t, maxExtent-10, bar.rect.W)
}

func TestArena_Background(t *testing.T) {
	a, canvas, _ := newTestArena()
	a.ShowBackground()
	a.ShowBackground()
	require.Len(t, canvas.items, 1)
	bg := canvas.items[a.backgroundItem]
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: testImageSize, H: testImageSize}, bg.rect)

	// 100ms frames at 10ms ticks
	a.Tick()
	assert.Equal(t, 0, bg.frame.Index)
	for i := 0; i < 10; i++ {
		a.Tick()
	}
	assert.Equal(t, 1, bg.frame.Index)
}

func TestArena_Reset(t *testing.T) {
	a, canvas, _ := newTestArena()
	a.ShowBackground()
	a.ShowHealthBar()
	a.CreatePlayer()
	a.CreateEnemy(1)
	a.Tick()
	a.UpdateScore(true, a.Roster()[1].(*entity.Enemy))
	require.Len(t, canvas.items, 5)

	a.Reset()

	assert.Len(t, canvas.items, 1, "background survives")
	assert.Empty(t, a.Roster())
	assert.Nil(t, a.Player())
	assert.Equal(t, 50, a.Score())

	// A fresh round can be set up again
	a.ShowHealthBar()
	a.CreatePlayer()
	a.Tick()
	assert.Len(t, canvas.items, 4)
}

func TestArena_SetDifficulty(t *testing.T) {
	a, _, _ := newTestArena()
	assert.Equal(t, 1, a.Difficulty())

	a.SetDifficulty(3)
	assert.Equal(t, 3, a.Difficulty())

	a.SetDifficulty(0)
	assert.Equal(t, 1, a.Difficulty())
}
