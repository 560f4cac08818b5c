// Package render draws the retained canvas onto the ebiten screen.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/beatemup/internal/domain/entity"
	"github.com/younwookim/beatemup/internal/infrastructure/canvas"
)

var colorClear = color.RGBA{26, 26, 46, 255}

// Frames looks up the picture of a frame
type Frames interface {
	Frame(ref entity.FrameRef) (image.Image, bool)
}

// Renderer draws canvas items in creation order
type Renderer struct {
	frames Frames
	cache  map[image.Image]*ebiten.Image
}

// New creates a renderer. GPU images are created lazily on first draw.
func New(frames Frames) *Renderer {
	return &Renderer{
		frames: frames,
		cache:  make(map[image.Image]*ebiten.Image),
	}
}

// Image returns the GPU image for ref
func (r *Renderer) Image(ref entity.FrameRef) (*ebiten.Image, bool) {
	src, ok := r.frames.Frame(ref)
	if !ok {
		return nil, false
	}
	img, ok := r.cache[src]
	if !ok {
		img = ebiten.NewImageFromImage(src)
		r.cache[src] = img
	}
	return img, true
}

// Draw clears the screen and draws every item
func (r *Renderer) Draw(screen *ebiten.Image, c *canvas.Canvas) {
	screen.Fill(colorClear)

	for _, it := range c.Items() {
		switch it.Kind {
		case canvas.ItemImage:
			img, ok := r.Image(it.Frame)
			if !ok {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(it.Rect.X, it.Rect.Y)
			screen.DrawImage(img, op)
		case canvas.ItemRect:
			vector.DrawFilledRect(screen,
				float32(it.Rect.X), float32(it.Rect.Y),
				float32(it.Rect.W), float32(it.Rect.H),
				it.Fill, false)
		}
	}
}
