// Package canvas provides a retained-mode canvas: visual items are kept in
// creation order and the renderer draws whatever is currently stored.
package canvas

import (
	"image/color"
	"slices"

	"github.com/younwookim/beatemup/internal/application/system"
	"github.com/younwookim/beatemup/internal/domain/entity"
)

// Sizer reports the pixel size of a frame
type Sizer interface {
	Size(frame entity.FrameRef) (w, h int)
}

// FixedSize gives every frame the same size
type FixedSize struct {
	W, H int
}

// Size implements Sizer
func (f FixedSize) Size(entity.FrameRef) (int, int) {
	return f.W, f.H
}

// ItemKind distinguishes images from filled rectangles
type ItemKind int

const (
	ItemImage ItemKind = iota
	ItemRect
)

// Item is one visual object
type Item struct {
	ID    system.ItemID
	Kind  ItemKind
	Rect  entity.Rect
	Frame entity.FrameRef // ItemImage only
	Fill  color.Color     // ItemRect only
}

// Canvas implements system.Canvas in memory
type Canvas struct {
	sizer Sizer
	items []*Item
	index map[system.ItemID]*Item
	next  system.ItemID
}

var _ system.Canvas = (*Canvas)(nil)

// New creates an empty canvas. Image geometry comes from sizer.
func New(sizer Sizer) *Canvas {
	return &Canvas{
		sizer: sizer,
		index: make(map[system.ItemID]*Item),
	}
}

func (c *Canvas) add(it *Item) system.ItemID {
	c.next++
	it.ID = c.next
	c.items = append(c.items, it)
	c.index[it.ID] = it
	return it.ID
}

// CreateImage adds an image item
func (c *Canvas) CreateImage(x, y float64, frame entity.FrameRef, anchor system.Anchor) system.ItemID {
	w, h := c.sizer.Size(frame)
	r := entity.Rect{X: x, Y: y, W: float64(w), H: float64(h)}
	if anchor == system.AnchorSW {
		r.Y -= r.H
	}
	return c.add(&Item{Kind: ItemImage, Rect: r, Frame: frame})
}

// CreateRect adds a filled rectangle
func (c *Canvas) CreateRect(r entity.Rect, fill color.Color) system.ItemID {
	return c.add(&Item{Kind: ItemRect, Rect: r, Fill: fill})
}

// Move shifts an item
func (c *Canvas) Move(id system.ItemID, dx, dy float64) {
	if it, ok := c.index[id]; ok {
		it.Rect.X += dx
		it.Rect.Y += dy
	}
}

// SetFrame swaps the frame of an image item, keeping its bottom-left corner
func (c *Canvas) SetFrame(id system.ItemID, frame entity.FrameRef) {
	it, ok := c.index[id]
	if !ok || it.Kind != ItemImage {
		return
	}
	w, h := c.sizer.Size(frame)
	bottom := it.Rect.Bottom()
	it.Frame = frame
	it.Rect.W = float64(w)
	it.Rect.H = float64(h)
	it.Rect.Y = bottom - it.Rect.H
}

// SetRect replaces the geometry of an item
func (c *Canvas) SetRect(id system.ItemID, r entity.Rect) {
	if it, ok := c.index[id]; ok {
		it.Rect = r
	}
}

// BBox returns the bounding box of an item
func (c *Canvas) BBox(id system.ItemID) (entity.Rect, bool) {
	it, ok := c.index[id]
	if !ok {
		return entity.Rect{}, false
	}
	return it.Rect, true
}

// FindOverlapping returns the items intersecting r in creation order
func (c *Canvas) FindOverlapping(r entity.Rect) []system.ItemID {
	var ids []system.ItemID
	for _, it := range c.items {
		if it.Rect.Intersects(r) {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// Delete removes items. Unknown ids are ignored.
func (c *Canvas) Delete(ids ...system.ItemID) {
	removed := false
	for _, id := range ids {
		if _, ok := c.index[id]; ok {
			delete(c.index, id)
			removed = true
		}
	}
	if !removed {
		return
	}
	c.items = slices.DeleteFunc(c.items, func(it *Item) bool {
		_, ok := c.index[it.ID]
		return !ok
	})
}

// Items returns the items in draw order
func (c *Canvas) Items() []Item {
	out := make([]Item, len(c.items))
	for i, it := range c.items {
		out[i] = *it
	}
	return out
}

// Len returns the number of items
func (c *Canvas) Len() int {
	return len(c.items)
}
