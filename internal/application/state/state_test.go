package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseInit, "Init"},
		{PhaseMenuShown, "MenuShown"},
		{PhaseAwaitStart, "AwaitStart"},
		{PhaseSetup, "Setup"},
		{PhaseActive, "Active"},
		{PhaseGameOver, "GameOver"},
		{PhaseScoreboardShown, "ScoreboardShown"},
		{PhaseAwaitRestart, "AwaitRestart"},
		{Phase(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestPhaseConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, Phase(0), PhaseInit)
	assert.Equal(t, Phase(4), PhaseActive)
	assert.Equal(t, Phase(7), PhaseAwaitRestart)
}

func TestPhase_Predicates(t *testing.T) {
	assert.True(t, PhaseActive.InRound())
	assert.False(t, PhaseGameOver.InRound())

	assert.True(t, PhaseAwaitStart.Waiting())
	assert.True(t, PhaseAwaitRestart.Waiting())
	assert.False(t, PhaseSetup.Waiting())
}
