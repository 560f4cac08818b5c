package system

import "github.com/younwookim/beatemup/internal/domain/entity"

// Intent represents an input event aimed at the player
type Intent interface {
	isIntent()
}

// MoveIntent represents a direction key going down or up
type MoveIntent struct {
	Direction entity.Facing
	Pressed   bool
}

func (MoveIntent) isIntent() {}

// AttackIntent represents the attack key going down
type AttackIntent struct{}

func (AttackIntent) isIntent() {}

// DuckIntent represents the duck key going down
type DuckIntent struct{}

func (DuckIntent) isIntent() {}
