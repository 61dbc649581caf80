package admin

import "math"

// DragThreshold is the pointer travel, in pixels, before a press becomes a drag.
const DragThreshold = 8.0

// PointerTracker tells a click from a drag. Below the threshold a release is
// a click, which keeps per-item buttons usable inside draggable items.
type PointerTracker struct {
	startX, startY float64
	pressed        bool
	dragging       bool
}

func (t *PointerTracker) Down(x, y float64) {
	t.startX, t.startY = x, y
	t.pressed = true
	t.dragging = false
}

// Move reports whether the press is now a drag.
func (t *PointerTracker) Move(x, y float64) bool {
	if t.pressed && !t.dragging && ExceedsThreshold(x-t.startX, y-t.startY) {
		t.dragging = true
	}
	return t.dragging
}

// Up ends the press and reports whether it was a drag.
func (t *PointerTracker) Up() bool {
	wasDrag := t.dragging
	t.pressed = false
	t.dragging = false
	return wasDrag
}

// ExceedsThreshold is strict: travel of exactly DragThreshold is still a click.
func ExceedsThreshold(dx, dy float64) bool {
	return math.Hypot(dx, dy) > DragThreshold
}
