// Package ui implements the title screen and the scoreboard drawn over the arena.
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/beatemup/internal/domain/entity"
)

// Debug font metrics
const (
	charW = 6
	lineH = 16
)

var (
	colorButton  = color.RGBA{0, 0, 0, 255}
	colorBorder  = color.RGBA{255, 255, 255, 255}
	colorPanel   = color.RGBA{0, 0, 0, 200}
	colorFrameBG = color.RGBA{200, 30, 30, 255}
)

// Images looks up the GPU image of a frame
type Images interface {
	Image(ref entity.FrameRef) (*ebiten.Image, bool)
}

// Button is a clickable labelled rectangle
type Button struct {
	Bounds image.Rectangle
	Label  string
}

// Contains reports whether the point is inside the button
func (b Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Bounds)
}

func (b Button) draw(screen *ebiten.Image) {
	r := b.Bounds
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), colorButton, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, colorBorder, false)
	drawCentered(screen, b.Label, r.Min.X+r.Dx()/2, r.Min.Y+(r.Dy()-lineH)/2)
}

// centeredButton builds a button of the label's width centered on cx
func centeredButton(label string, cx, y int) Button {
	w := len(label)*charW + 16
	return Button{Bounds: image.Rect(cx-w/2, y, cx+w/2, y+lineH+8), Label: label}
}

func drawCentered(screen *ebiten.Image, s string, cx, y int) {
	ebitenutil.DebugPrintAt(screen, s, cx-len(s)*charW/2, y)
}

// clicked returns the cursor position of a left click this frame
func clicked() (int, int, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y := ebiten.CursorPosition()
	return x, y, true
}
