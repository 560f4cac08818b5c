// Package assets loads the frame sets drawn by the game: the background
// cycle, the title image and the left/right facing sprite sheets.
package assets

import (
	"image"

	"github.com/younwookim/beatemup/internal/domain/entity"
)

// Library holds ordered frames per set and facing
type Library struct {
	sets map[string]*[2][]image.Image
}

// NewLibrary creates an empty library
func NewLibrary() *Library {
	return &Library{sets: make(map[string]*[2][]image.Image)}
}

// Add stores the frames of a set for one facing, replacing earlier frames
func (l *Library) Add(set string, facing entity.Facing, frames []image.Image) {
	s, ok := l.sets[set]
	if !ok {
		s = &[2][]image.Image{}
		l.sets[set] = s
	}
	s[facing] = frames
}

func (l *Library) frames(set string, facing entity.Facing) []image.Image {
	s, ok := l.sets[set]
	if !ok {
		return nil
	}
	if frames := s[facing]; len(frames) > 0 {
		return frames
	}
	// Sets without facings (background, title) are stored facing right
	return s[entity.FacingRight]
}

// Frame returns the image of ref. Indexes past the end wrap around.
func (l *Library) Frame(ref entity.FrameRef) (image.Image, bool) {
	frames := l.frames(ref.Set, ref.Facing)
	if len(frames) == 0 || ref.Index < 0 {
		return nil, false
	}
	return frames[ref.Index%len(frames)], true
}

// Size returns the pixel size of ref, or 0x0 when it is unknown
func (l *Library) Size(ref entity.FrameRef) (int, int) {
	img, ok := l.Frame(ref)
	if !ok {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// Count returns the number of frames of a set for a facing
func (l *Library) Count(set string, facing entity.Facing) int {
	return len(l.frames(set, facing))
}
