package assets

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/younwookim/beatemup/internal/domain/entity"
)

// PlaceholderSpec sizes the generated frames
type PlaceholderSpec struct {
	ScreenW, ScreenH int
	PlayerW, EnemyW  int
	SpriteH          int
	BackgroundFrames int
}

// DefaultPlaceholderSpec fits the default 1024x490 arena
var DefaultPlaceholderSpec = PlaceholderSpec{
	ScreenW:          1024,
	ScreenH:          490,
	PlayerW:          100,
	EnemyW:           100,
	SpriteH:          150,
	BackgroundFrames: 8,
}

var (
	playerBody = color.RGBA{60, 110, 220, 255}
	enemyBody  = color.RGBA{200, 70, 60, 255}
	skin       = color.RGBA{240, 200, 160, 255}
	fist       = color.RGBA{250, 230, 80, 255}
	sky        = color.RGBA{30, 30, 60, 255}
	ground     = color.RGBA{70, 60, 50, 255}
	stripe     = color.RGBA{90, 90, 140, 255}
)

// Placeholders generates flat colored frames for every set.
// Poses follow the sprite frame layout: walk, duck, attack.
func Placeholders(spec PlaceholderSpec) *Library {
	lib := NewLibrary()

	for _, facing := range []entity.Facing{entity.FacingRight, entity.FacingLeft} {
		lib.Add(entity.SetPlayer, facing, spriteFrames(spec.PlayerW, spec.SpriteH, playerBody, facing))
		lib.Add(entity.SetEnemy, facing, spriteFrames(spec.EnemyW, spec.SpriteH, enemyBody, facing))
	}

	lib.Add(entity.SetBackground, entity.FacingRight, backgroundFrames(spec))
	lib.Add(entity.SetTitle, entity.FacingRight, []image.Image{titleFrame(spec)})
	return lib
}

func fill(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// mirror flips x for left facing frames
func mirror(r image.Rectangle, width int, facing entity.Facing) image.Rectangle {
	if facing == entity.FacingRight {
		return r
	}
	return image.Rect(width-r.Max.X, r.Min.Y, width-r.Min.X, r.Max.Y)
}

func spriteFrames(w, h int, body color.Color, facing entity.Facing) []image.Image {
	frames := make([]image.Image, 0, entity.FramesPerSet)

	for i := 0; i < entity.FramesPerSet; i++ {
		img := image.NewRGBA(image.Rect(0, 0, w, h))

		top := 0
		reach := 0
		switch {
		case i >= entity.FrameAttackFirst:
			reach = (i - entity.FrameAttackFirst + 1) * w / 8
		case i >= entity.FrameDuckFirst:
			top = h * (i - entity.FrameDuckFirst + 1) / 4
		}

		torso := image.Rect(w/4, top+h/5, w*3/4-w/8, h-h/6)
		head := image.Rect(w/3, top, w*2/3-w/12, top+h/5)
		fill(img, mirror(torso, w, facing), body)
		fill(img, mirror(head, w, facing), skin)

		// Legs alternate while walking
		stride := 0
		if i <= entity.FrameWalkLast {
			stride = (i%3 - 1) * w / 12
		}
		fill(img, mirror(image.Rect(w/4+stride, h-h/6, w/2-w/16+stride, h), w, facing), body)
		fill(img, mirror(image.Rect(w/2-stride, h-h/6, w*3/4-w/8-stride, h), w, facing), body)

		if reach > 0 {
			arm := image.Rect(w*3/4-w/8, top+h/3, min(w*3/4-w/8+reach, w), top+h/3+h/12)
			fill(img, mirror(arm, w, facing), fist)
		}
		frames = append(frames, img)
	}
	return frames
}

func backgroundFrames(spec PlaceholderSpec) []image.Image {
	w, h := spec.ScreenW, spec.ScreenH
	n := max(spec.BackgroundFrames, 1)
	frames := make([]image.Image, 0, n)
	gap := w / 8

	for i := 0; i < n; i++ {
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		fill(img, img.Bounds(), sky)
		fill(img, image.Rect(0, h-h/8, w, h), ground)

		offset := i * gap / n
		for x := offset - gap; x < w; x += gap {
			fill(img, image.Rect(max(x, 0), h/3, min(x+gap/4, w), h-h/8), stripe)
		}
		frames = append(frames, img)
	}
	return frames
}

func titleFrame(spec PlaceholderSpec) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, spec.ScreenW, spec.ScreenH/2))
	fill(img, img.Bounds(), sky)
	fill(img, image.Rect(0, spec.ScreenH/2-8, spec.ScreenW, spec.ScreenH/2), enemyBody)
	return img
}
