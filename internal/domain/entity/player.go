package entity

// PlayerStats configures a new player
type PlayerStats struct {
	MaxHealth    int
	AttackDamage int
	Speed        float64
	Width        float64
}

// DefaultPlayerStats is the stock tuning
var DefaultPlayerStats = PlayerStats{MaxHealth: 100, AttackDamage: 25, Speed: 2.5, Width: 100}

// Player represents the input driven combatant
type Player struct {
	Sprite
	MaxHealth int
}

// NewPlayer creates a player at full health
func NewPlayer(id EntityID, stats PlayerStats, anim Animation) *Player {
	p := &Player{
		Sprite:    newSprite(id, KindPlayer, stats.Width, stats.Speed, anim),
		MaxHealth: stats.MaxHealth,
	}
	p.ApplyHealth(HealthSet, stats.MaxHealth)
	p.AttackDamage = stats.AttackDamage
	return p
}

// PressDirection queues the direction's velocity. Key repeat does not duplicate it.
func (p *Player) PressDirection(dir Facing) {
	p.pushVelocity(p.velocityFor(dir))
}

// ReleaseDirection drops the direction's velocity so a still held key takes over
func (p *Player) ReleaseDirection(dir Facing) {
	p.removeVelocity(p.velocityFor(dir))
}

// Damaged returns true if the player has lost health but is still alive
func (p *Player) Damaged() bool {
	return p.Health != p.MaxHealth && !p.IsDead()
}
