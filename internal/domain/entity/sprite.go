package entity

import "slices"

// Animation holds the frame pacing shared by all sprites
type Animation struct {
	Speed    int // Ticks between two frame advances
	DuckHold int // Extra advances spent on the final duck frame
}

// DefaultAnimation is the pacing used when no config overrides it
var DefaultAnimation = Animation{Speed: 10, DuckHold: 3}

// Combatant is a roster member. The concrete type is *Player or *Enemy.
type Combatant interface {
	Body() *Sprite
}

// Sprite is the state shared by every combatant.
// X is the left edge and Y the ground line the sprite stands on.
type Sprite struct {
	ID    EntityID
	Kind  Kind
	X, Y  float64
	Width float64

	// Speed is the magnitude of every velocity entry
	Speed float64
	// Velocity holds pending horizontal speeds, the last entry wins
	Velocity []float64

	Health       int
	AttackDamage int

	Facing     Facing
	State      ActionState
	Frame      int
	DuckHold   int
	FrameTicks int
	Visible    bool

	anim Animation
}

func newSprite(id EntityID, kind Kind, width, speed float64, anim Animation) Sprite {
	return Sprite{
		ID:         id,
		Kind:       kind,
		Width:      width,
		Speed:      speed,
		Velocity:   make([]float64, 0, 2),
		Facing:     FacingRight,
		State:      StateWalking,
		Frame:      FrameWalkFirst,
		FrameTicks: anim.Speed, // first animated tick advances immediately
		anim:       anim,
	}
}

// Body returns the shared sprite state
func (s *Sprite) Body() *Sprite {
	return s
}

// Animation returns the frame pacing of the sprite
func (s *Sprite) Animation() Animation {
	return s.anim
}

// ApplyHealth sets or subtracts health. Health is never clamped.
func (s *Sprite) ApplyHealth(op HealthOp, amount int) {
	switch op {
	case HealthSet:
		s.Health = amount
	case HealthSubtract:
		s.Health -= amount
	}
}

// IsDead returns true once health drops to zero or below
func (s *Sprite) IsDead() bool {
	return s.Health <= 0
}

// Locked returns true while an attack or duck animation is in progress
func (s *Sprite) Locked() bool {
	return s.State != StateWalking
}

// TriggerAttack starts the attack animation unless an action is in progress
func (s *Sprite) TriggerAttack() {
	if s.Locked() {
		return
	}
	s.State = StateAttacking
	s.Frame = FrameAttackFirst
}

// TriggerDuck starts the duck animation unless an action is in progress
func (s *Sprite) TriggerDuck() {
	if s.Locked() {
		return
	}
	s.State = StateDucking
	s.Frame = FrameDuckFirst
}

// AdvanceFrame counts one tick and moves the animation on every anim.Speed ticks
func (s *Sprite) AdvanceFrame() {
	if s.FrameTicks == s.anim.Speed {
		s.nextFrame()
		s.FrameTicks = 0
	}
	s.FrameTicks++
}

func (s *Sprite) nextFrame() {
	switch {
	case s.Frame < FrameWalkLast:
		s.Frame++
	case s.Frame == FrameWalkLast:
		s.Frame = FrameWalkFirst
	case s.Frame < FrameDuckLast:
		s.Frame++
	case s.Frame == FrameDuckLast:
		if s.DuckHold < s.anim.DuckHold {
			s.DuckHold++
			return
		}
		s.DuckHold = 0
		s.release()
	case s.Frame < FrameAttackLast:
		s.Frame++
	default:
		s.release()
	}
}

func (s *Sprite) release() {
	s.Frame = FrameWalkFirst
	s.State = StateWalking
}

// AttackLanding returns true on the tick the final attack frame is about to release
func (s *Sprite) AttackLanding() bool {
	return s.State == StateAttacking && s.Frame == FrameAttackLast && s.FrameTicks == s.anim.Speed
}

// EffectiveVelocity returns the last queued velocity, or 0 when none is queued
func (s *Sprite) EffectiveVelocity() float64 {
	if len(s.Velocity) == 0 {
		return 0
	}
	return s.Velocity[len(s.Velocity)-1]
}

// HasVelocity reports whether v is queued
func (s *Sprite) HasVelocity(v float64) bool {
	return slices.Contains(s.Velocity, v)
}

func (s *Sprite) pushVelocity(v float64) {
	if s.HasVelocity(v) {
		return
	}
	s.Velocity = append(s.Velocity, v)
}

func (s *Sprite) removeVelocity(v float64) {
	if i := slices.Index(s.Velocity, v); i >= 0 {
		s.Velocity = slices.Delete(s.Velocity, i, i+1)
	}
}

// velocityFor returns the signed speed for a facing
func (s *Sprite) velocityFor(f Facing) float64 {
	if f == FacingLeft {
		return -s.Speed
	}
	return s.Speed
}

// Move applies the effective velocity while walking.
// Moves that would leave [0, arenaWidth-Width] are dropped, not clipped.
func (s *Sprite) Move(arenaWidth float64) bool {
	if s.Locked() {
		return false
	}

	v := s.EffectiveVelocity()
	var facing Facing
	switch v {
	case s.Speed:
		facing = FacingRight
	case -s.Speed:
		facing = FacingLeft
	default:
		return false
	}

	next := s.X + v
	if next < 0 || next > arenaWidth-s.Width {
		return false
	}

	s.X = next
	s.Facing = facing
	return true
}

// Step moves the sprite and animates it when it moved or is mid-action.
// A walking sprite standing still keeps its frame.
func (s *Sprite) Step(arenaWidth float64) bool {
	moved := s.Move(arenaWidth)
	if moved || s.Locked() {
		s.AdvanceFrame()
	}
	return moved
}

// CurrentFrame returns the image to display from the given set
func (s *Sprite) CurrentFrame(set string) FrameRef {
	return FrameRef{Set: set, Facing: s.Facing, Index: s.Frame}
}

// Bounds returns the rectangle of an image of the given height standing on Y
func (s *Sprite) Bounds(height float64) Rect {
	return Rect{X: s.X, Y: s.Y - height, W: s.Width, H: height}
}
