package system

// Background cycles through the background frames, one step every period ticks.
// It runs independently of the sprites.
type Background struct {
	frames int
	period int
	frame  int
	ticks  int
}

// NewBackground creates a background animation. The first Advance shows frame 0.
func NewBackground(frames, period int) *Background {
	if period < 1 {
		period = 1
	}
	return &Background{
		frames: frames,
		period: period,
		frame:  -1,
		ticks:  period,
	}
}

// Advance counts one tick. Returns true when the displayed frame changed.
func (b *Background) Advance() bool {
	if b.frames == 0 {
		return false
	}
	changed := false
	if b.ticks == b.period {
		b.frame = (b.frame + 1) % b.frames
		b.ticks = 0
		changed = true
	}
	b.ticks++
	return changed
}

// Frame returns the displayed frame, or 0 before the first Advance
func (b *Background) Frame() int {
	if b.frame < 0 {
		return 0
	}
	return b.frame
}

// Frames returns the cycle length
func (b *Background) Frames() int {
	return b.frames
}
