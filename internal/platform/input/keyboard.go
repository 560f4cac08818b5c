// Package input polls the keyboard and turns key transitions into player intents.
package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/beatemup/internal/application/system"
	"github.com/younwookim/beatemup/internal/domain/entity"
	"github.com/younwookim/beatemup/internal/infrastructure/config"
)

// KeyState reports key transitions since the last frame
type KeyState interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
}

// EbitenKeys reads key transitions from ebiten
type EbitenKeys struct{}

func (EbitenKeys) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (EbitenKeys) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

// Bindings maps the four game actions to keys
type Bindings struct {
	Left, Right, Attack, Duck ebiten.Key
}

// ParseBindings parses key names the way ebiten.Key marshals them ("A", "Space", ...)
func ParseBindings(cfg config.KeysConfig) (Bindings, error) {
	var b Bindings
	keys := []struct {
		name string
		dst  *ebiten.Key
	}{
		{cfg.Left, &b.Left},
		{cfg.Right, &b.Right},
		{cfg.Attack, &b.Attack},
		{cfg.Duck, &b.Duck},
	}
	for _, k := range keys {
		if err := k.dst.UnmarshalText([]byte(k.name)); err != nil {
			return Bindings{}, fmt.Errorf("key %q: %w", k.name, err)
		}
	}
	return b, nil
}

// Keyboard produces intents from key transitions
type Keyboard struct {
	bindings Bindings
	keys     KeyState
}

// NewKeyboard creates a keyboard poller
func NewKeyboard(bindings Bindings, keys KeyState) *Keyboard {
	return &Keyboard{bindings: bindings, keys: keys}
}

// Poll returns this frame's intents. Releases come before presses so a
// key swapped within one frame ends up pressed.
func (k *Keyboard) Poll() []system.Intent {
	var intents []system.Intent

	moves := []struct {
		key ebiten.Key
		dir entity.Facing
	}{
		{k.bindings.Left, entity.FacingLeft},
		{k.bindings.Right, entity.FacingRight},
	}
	for _, m := range moves {
		if k.keys.JustReleased(m.key) {
			intents = append(intents, system.MoveIntent{Direction: m.dir, Pressed: false})
		}
	}
	for _, m := range moves {
		if k.keys.JustPressed(m.key) {
			intents = append(intents, system.MoveIntent{Direction: m.dir, Pressed: true})
		}
	}

	if k.keys.JustPressed(k.bindings.Attack) {
		intents = append(intents, system.AttackIntent{})
	}
	if k.keys.JustPressed(k.bindings.Duck) {
		intents = append(intents, system.DuckIntent{})
	}
	return intents
}
