package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Player", KindPlayer.String())
	assert.Equal(t, "Enemy", KindEnemy.String())
	assert.Equal(t, "Unknown", Kind(9).String())
}

func TestActionState_String(t *testing.T) {
	tests := []struct {
		state    ActionState
		expected string
	}{
		{StateWalking, "Walking"},
		{StateDucking, "Ducking"},
		{StateAttacking, "Attacking"},
		{ActionState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestFacing(t *testing.T) {
	assert.Equal(t, "Right", FacingRight.String())
	assert.Equal(t, "Left", FacingLeft.String())
}

func TestFrameLayout(t *testing.T) {
	assert.Equal(t, 12, FramesPerSet)
	assert.Equal(t, FrameWalkLast+1, FrameDuckFirst)
	assert.Equal(t, FrameDuckLast+1, FrameAttackFirst)
}

func TestRect_Intersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", Rect{0, 0, 100, 100}, Rect{50, 50, 100, 100}, true},
		{"contained", Rect{0, 0, 100, 100}, Rect{10, 10, 10, 10}, true},
		{"touching edges", Rect{0, 0, 100, 100}, Rect{100, 0, 100, 100}, false},
		{"apart", Rect{0, 0, 10, 10}, Rect{50, 50, 10, 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(tt.a))
		})
	}
}
