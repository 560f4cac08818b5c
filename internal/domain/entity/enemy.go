package entity

import "math"

// EnemyStats configures enemies. Health and damage scale with the tier.
type EnemyStats struct {
	HealthPerTier int
	DamagePerTier int
	Speed         float64
	Width         float64
}

// DefaultEnemyStats is the stock tuning
var DefaultEnemyStats = EnemyStats{HealthPerTier: 25, DamagePerTier: 1, Speed: 1.5, Width: 100}

// Tier bounds
const (
	MinTier = 1
	MaxTier = 4
)

// Enemy represents an AI driven combatant
type Enemy struct {
	Sprite
	Tier int
}

// NewEnemy creates an enemy of the given tier
func NewEnemy(id EntityID, tier int, stats EnemyStats, anim Animation) *Enemy {
	e := &Enemy{
		Sprite: newSprite(id, KindEnemy, stats.Width, stats.Speed, anim),
		Tier:   tier,
	}
	e.ApplyHealth(HealthSet, tier*stats.HealthPerTier)
	e.AttackDamage = tier * stats.DamagePerTier
	return e
}

// DecideMovement returns true if the current velocity would take the enemy
// further away from the player
func (e *Enemy) DecideMovement(playerX float64) bool {
	distance := e.X - playerX
	projected := distance + e.EffectiveVelocity()
	return math.Abs(projected) > math.Abs(distance)
}

// UpdateMovement turns the enemy around when it is moving away, or gets a
// stopped enemy walking in the direction it faces
func (e *Enemy) UpdateMovement(reverse bool) {
	v := e.EffectiveVelocity()
	if reverse && (v == e.Speed || v == -e.Speed) {
		e.removeVelocity(v)
		e.pushVelocity(-v)
		return
	}
	e.pushVelocity(e.velocityFor(e.Facing))
}
