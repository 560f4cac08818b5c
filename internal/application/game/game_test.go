package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/beatemup/internal/application/scene"
	"github.com/younwookim/beatemup/internal/infrastructure/config"
)

var (
	testDisplay = config.DisplayConfig{Title: "test", Width: 320, Height: 240, Scale: 2}
	testTick    = config.TickConfig{IntervalMs: 10}
)

// fakeScene counts lifecycle calls
type fakeScene struct {
	updates, draws int
	enters, exits  int
	lastDT         float64
	next           scene.Scene
	err            error
}

func (f *fakeScene) Update(dt float64) (scene.Scene, error) {
	f.updates++
	f.lastDT = dt
	return f.next, f.err
}

func (f *fakeScene) Draw(*ebiten.Image) { f.draws++ }
func (f *fakeScene) OnEnter()           { f.enters++ }
func (f *fakeScene) OnExit()            { f.exits++ }

func TestNew_EntersInitialScene(t *testing.T) {
	s := &fakeScene{}
	g := New(s, testDisplay, testTick)

	require.NotNil(t, g)
	assert.Equal(t, 1, s.enters)
	assert.Same(t, s, g.Current())
}

func TestGame_Delegates(t *testing.T) {
	s := &fakeScene{}
	g := New(s, testDisplay, testTick)

	require.NoError(t, g.Update())
	g.Draw(ebiten.NewImage(testDisplay.Width, testDisplay.Height))

	assert.Equal(t, 1, s.updates)
	assert.Equal(t, 1, s.draws)
}

func TestGame_Layout(t *testing.T) {
	g := New(&fakeScene{}, testDisplay, testTick)

	// The window is scaled, the logical screen is not
	tests := []struct {
		outsideW, outsideH int
	}{
		{640, 480},
		{320, 240},
		{1920, 1080},
	}
	for _, tt := range tests {
		w, h := g.Layout(tt.outsideW, tt.outsideH)
		assert.Equal(t, 320, w)
		assert.Equal(t, 240, h)
	}
}

func TestGame_FixedTimestep(t *testing.T) {
	tests := []struct {
		name       string
		intervalMs int
		want       float64
	}{
		{"10ms", 10, 0.01},
		{"20ms", 20, 0.02},
		{"16ms rounds to 62 TPS", 16, 1.0 / 62},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &fakeScene{}
			g := New(s, testDisplay, config.TickConfig{IntervalMs: tt.intervalMs})

			assert.InDelta(t, tt.want, g.DT(), 1e-12)
			require.NoError(t, g.Update())
			assert.InDelta(t, tt.want, s.lastDT, 1e-12, "scenes step by the tick interval")
		})
	}
}

func TestGame_Transitions(t *testing.T) {
	t.Run("next scene replaces current", func(t *testing.T) {
		second := &fakeScene{}
		first := &fakeScene{next: second}
		g := New(first, testDisplay, testTick)

		require.NoError(t, g.Update())
		assert.Equal(t, 1, first.exits)
		assert.Equal(t, 1, second.enters)
		assert.Same(t, second, g.Current())

		require.NoError(t, g.Update())
		assert.Equal(t, 1, first.updates)
		assert.Equal(t, 1, second.updates)
	})

	t.Run("nil keeps current", func(t *testing.T) {
		s := &fakeScene{}
		g := New(s, testDisplay, testTick)

		for i := 0; i < 5; i++ {
			require.NoError(t, g.Update())
		}
		assert.Equal(t, 5, s.updates)
		assert.Zero(t, s.exits)
		assert.Same(t, s, g.Current())
	})

	t.Run("error stops without transition", func(t *testing.T) {
		other := &fakeScene{}
		s := &fakeScene{next: other, err: assert.AnError}
		g := New(s, testDisplay, testTick)

		assert.ErrorIs(t, g.Update(), assert.AnError)
		assert.Zero(t, other.enters)
		assert.Same(t, s, g.Current())
	})

	t.Run("termination propagates from update", func(t *testing.T) {
		s := &fakeScene{err: ebiten.Termination}
		g := New(s, testDisplay, testTick)

		assert.ErrorIs(t, g.Update(), ebiten.Termination)
	})
}
