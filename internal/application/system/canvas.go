package system

import (
	"image/color"

	"github.com/younwookim/beatemup/internal/domain/entity"
)

// ItemID identifies a visual object on a Canvas. Zero is never issued.
type ItemID int

// Anchor selects which corner of an image sits on its position
type Anchor int

const (
	// AnchorSW places the bottom-left corner on the position (sprites standing on the ground line)
	AnchorSW Anchor = iota
	// AnchorNW places the top-left corner on the position (the background)
	AnchorNW
)

// Canvas is the rendering context the arena draws into.
// Implementations keep visual objects and answer spatial queries about them.
type Canvas interface {
	// CreateImage adds an image item showing frame at (x, y)
	CreateImage(x, y float64, frame entity.FrameRef, anchor Anchor) ItemID
	// CreateRect adds a filled rectangle item
	CreateRect(r entity.Rect, fill color.Color) ItemID
	// Move shifts an item by a delta
	Move(id ItemID, dx, dy float64)
	// SetFrame swaps the image of an image item
	SetFrame(id ItemID, frame entity.FrameRef)
	// SetRect replaces the geometry of a rectangle item
	SetRect(id ItemID, r entity.Rect)
	// BBox returns the bounding box of an item
	BBox(id ItemID) (entity.Rect, bool)
	// FindOverlapping returns every item whose bounding box intersects r, in creation order
	FindOverlapping(r entity.Rect) []ItemID
	// Delete removes items. Unknown ids are ignored.
	Delete(ids ...ItemID)
}
