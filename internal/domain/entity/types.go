package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// Kind tags the sprite variant
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindEnemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// Facing is the last horizontal direction a sprite moved in
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns the string representation of the facing
func (f Facing) String() string {
	if f == FacingLeft {
		return "Left"
	}
	return "Right"
}

// ActionState is the mutually exclusive action of a sprite
type ActionState int

const (
	StateWalking ActionState = iota
	StateDucking
	StateAttacking
)

// String returns the string representation of the action state
func (s ActionState) String() string {
	switch s {
	case StateWalking:
		return "Walking"
	case StateDucking:
		return "Ducking"
	case StateAttacking:
		return "Attacking"
	default:
		return "Unknown"
	}
}

// HealthOp selects how ApplyHealth treats its amount
type HealthOp int

const (
	// HealthSet assigns the amount as the new health
	HealthSet HealthOp = iota
	// HealthSubtract removes the amount from the current health
	HealthSubtract
)

// Frame layout shared by every sprite sheet.
// 0..5 walk, 6..7 duck, 8..11 attack.
const (
	FrameWalkFirst   = 0
	FrameWalkLast    = 5
	FrameDuckFirst   = 6
	FrameDuckLast    = 7
	FrameAttackFirst = 8
	FrameAttackLast  = 11

	// FramesPerSet is the number of frames every sprite set must provide per facing
	FramesPerSet = FrameAttackLast + 1
)

// Frame set names shared by the arena, the asset library and the renderer
const (
	SetPlayer     = "player"
	SetEnemy      = "enemy"
	SetBackground = "background"
	SetTitle      = "title"
)

// FrameRef identifies one image of a frame set
type FrameRef struct {
	Set    string
	Facing Facing
	Index  int
}

// Rect is an axis-aligned rectangle in arena pixels
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if the rectangles overlap
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}
