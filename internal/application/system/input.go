package system

import "github.com/younwookim/beatemup/internal/domain/entity"

// InputSystem routes input intents to the bound player.
// Intents arriving while no player is bound are dropped.
type InputSystem struct {
	player *entity.Player
}

// NewInputSystem creates an unbound input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Bind directs subsequent intents to p
func (s *InputSystem) Bind(p *entity.Player) {
	s.player = p
}

// Unbind stops routing intents
func (s *InputSystem) Unbind() {
	s.player = nil
}

// Bound returns true if a player receives intents
func (s *InputSystem) Bound() bool {
	return s.player != nil
}

// Dispatch applies intents to the bound player in order
func (s *InputSystem) Dispatch(intents ...Intent) {
	if s.player == nil {
		return
	}
	for _, in := range intents {
		Apply(s.player, in)
	}
}

// Apply applies a single intent to p
func Apply(p *entity.Player, intent Intent) {
	switch in := intent.(type) {
	case MoveIntent:
		if in.Pressed {
			p.PressDirection(in.Direction)
		} else {
			p.ReleaseDirection(in.Direction)
		}
	case AttackIntent:
		p.TriggerAttack()
	case DuckIntent:
		p.TriggerDuck()
	}
}
