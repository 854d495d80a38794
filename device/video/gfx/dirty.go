package gfx

// DirtyRectList collects the screen regions changed during a frame. Its
// capacity is fixed at creation; rectangles added once it is full are
// dropped and reported to the caller.
//
// A frame with n moving objects usually needs a capacity of 2n: the region
// each object left and the region it moved to.
type DirtyRectList struct {
	rects []Rect
}

// NewDirtyRectList returns an empty list able to hold capacity rectangles.
func NewDirtyRectList(capacity int) *DirtyRectList {
	if capacity < 0 {
		capacity = 0
	}
	return &DirtyRectList{rects: make([]Rect, 0, capacity)}
}

// Clear empties the list without releasing its storage.
func (l *DirtyRectList) Clear() {
	if l == nil {
		return
	}
	l.rects = l.rects[:0]
}

// Add appends r and reports whether it was stored. Empty rectangles and
// rectangles added to a full list are dropped.
func (l *DirtyRectList) Add(r Rect) bool {
	if l == nil || r.Empty() || len(l.rects) == cap(l.rects) {
		return false
	}
	l.rects = append(l.rects, r)
	return true
}

// Len returns the number of stored rectangles.
func (l *DirtyRectList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.rects)
}

// Cap returns the list capacity.
func (l *DirtyRectList) Cap() int {
	if l == nil {
		return 0
	}
	return cap(l.rects)
}

// Rects returns the stored rectangles in insertion order. The slice is
// only valid until the next call to Clear or Add.
func (l *DirtyRectList) Rects() []Rect {
	if l == nil {
		return nil
	}
	return l.rects
}

// RestoreUnder copies the background pixels under every stored rectangle
// into screen, erasing whatever was drawn there during the previous frame.
// Colorkeys and blend modes are ignored. Overlapping rectangles are
// restored independently.
func (l *DirtyRectList) RestoreUnder(screen, background *Surface) {
	if l == nil || screen == nil || background == nil || screen.pix == nil || background.pix == nil {
		return
	}

	for _, r := range l.rects {
		reg, ok := clipRegion(r, background.width, background.height, r.X, r.Y, screen.width, screen.height)
		if !ok {
			continue
		}
		copyRegion(background, screen, reg, 0, false, BlendReplace)
	}
}

// PresentDirty pushes the stored regions of the composed screen surface to
// a display, leaving the rest of the display untouched.
func (l *DirtyRectList) PresentDirty(display Screen, screen *Surface) {
	if l == nil {
		return
	}

	for i := range l.rects {
		BlitToScreen(display, screen, &l.rects[i], l.rects[i].X, l.rects[i].Y)
	}
}
