package system

import "github.com/younwookim/beatemup/internal/domain/entity"

// HealthBar tracks the right edge of the green bar drawn in the top left corner.
// The bar spans x = Margin .. Extent.
type HealthBar struct {
	Margin    float64
	Height    float64
	MaxExtent float64

	extent float64
}

// NewHealthBar sizes the bar to half the arena width
func NewHealthBar(arenaWidth, margin, height float64) HealthBar {
	maxExtent := arenaWidth/2 - margin
	return HealthBar{
		Margin:    margin,
		Height:    height,
		MaxExtent: maxExtent,
		extent:    maxExtent,
	}
}

// Update rescales the bar from the player's health.
// A dead or undamaged player shows a full bar.
func (h *HealthBar) Update(p *entity.Player) float64 {
	if p.Damaged() {
		lost := float64(p.MaxHealth - p.Health)
		h.extent = h.MaxExtent - (h.MaxExtent/float64(p.MaxHealth))*lost
	} else {
		h.extent = h.MaxExtent
	}
	return h.extent
}

// Extent returns the current right edge
func (h HealthBar) Extent() float64 {
	return h.extent
}

// Frame returns the full-size background rectangle
func (h HealthBar) Frame() entity.Rect {
	return entity.Rect{X: h.Margin, Y: h.Margin, W: h.MaxExtent - h.Margin, H: h.Height}
}

// Fill returns the rectangle of the remaining health
func (h HealthBar) Fill() entity.Rect {
	return entity.Rect{X: h.Margin, Y: h.Margin, W: max(h.extent-h.Margin, 0), H: h.Height}
}
