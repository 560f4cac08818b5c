package replay

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/beatemup/internal/application/system"
	"github.com/younwookim/beatemup/internal/domain/entity"
)

// ErrBadEvent is wrapped when a script event cannot be turned into an intent
var ErrBadEvent = errors.New("bad script event")

// Replayer turns a script into per-tick intents
type Replayer struct {
	script Script
	tick   int
	next   int // index of the first event not yet played
}

// NewReplayer creates a replayer. Events are ordered by tick, keeping
// the script order within a tick.
func NewReplayer(script Script) (*Replayer, error) {
	for i, ev := range script.Events {
		if ev.Tick < 0 {
			return nil, fmt.Errorf("event %d: negative tick %d: %w", i, ev.Tick, ErrBadEvent)
		}
		if _, err := ev.Intent(); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}

	events := slices.Clone(script.Events)
	slices.SortStableFunc(events, func(a, b Event) int {
		return a.Tick - b.Tick
	})
	script.Events = events

	return &Replayer{script: script}, nil
}

// LoadScript loads a script from a YAML file
func LoadScript(filename string) (*Script, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes a YAML script
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	return &script, nil
}

// Intent converts the event to an input intent
func (e Event) Intent() (system.Intent, error) {
	var pressed bool
	switch e.Action {
	case ActionPress:
		pressed = true
	case ActionRelease:
	default:
		return nil, fmt.Errorf("unknown action %q: %w", e.Action, ErrBadEvent)
	}

	switch e.Key {
	case KeyLeft:
		return system.MoveIntent{Direction: entity.FacingLeft, Pressed: pressed}, nil
	case KeyRight:
		return system.MoveIntent{Direction: entity.FacingRight, Pressed: pressed}, nil
	case KeyAttack:
		if !pressed {
			return nil, nil
		}
		return system.AttackIntent{}, nil
	case KeyDuck:
		if !pressed {
			return nil, nil
		}
		return system.DuckIntent{}, nil
	default:
		return nil, fmt.Errorf("unknown key %q: %w", e.Key, ErrBadEvent)
	}
}

// Next returns the intents of the current tick and advances.
// The second result is false once every event has been played.
func (r *Replayer) Next() ([]system.Intent, bool) {
	if r.Done() {
		return nil, false
	}

	var intents []system.Intent
	for r.next < len(r.script.Events) && r.script.Events[r.next].Tick == r.tick {
		// Validated in NewReplayer
		if in, _ := r.script.Events[r.next].Intent(); in != nil {
			intents = append(intents, in)
		}
		r.next++
	}
	r.tick++

	return intents, true
}

// Done returns true once every event has been played
func (r *Replayer) Done() bool {
	return r.next >= len(r.script.Events)
}

// CurrentTick returns the tick the next call to Next plays
func (r *Replayer) CurrentTick() int {
	return r.tick
}

// TotalTicks returns the number of ticks covered by the script
func (r *Replayer) TotalTicks() int {
	if len(r.script.Events) == 0 {
		return 0
	}
	return r.script.Events[len(r.script.Events)-1].Tick + 1
}

// Seed returns the seed stored in the script
func (r *Replayer) Seed() int64 {
	return r.script.Seed
}

// Difficulty returns the difficulty stored in the script
func (r *Replayer) Difficulty() int {
	return r.script.Difficulty
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.tick = 0
	r.next = 0
}

// Hold builds the events for holding key from tick `from` until `to`
func Hold(key string, from, to int) []Event {
	return []Event{
		{Tick: from, Key: key, Action: ActionPress},
		{Tick: to, Key: key, Action: ActionRelease},
	}
}
