package gesture

import (
	"image"
	"image/color"
)

// StrokeWidth is the line thickness of every segment.
const StrokeWidth = 5

// SegmentDrawer receives the segments of a stroke.
type SegmentDrawer interface {
	DrawSegment(from, to image.Point, c color.RGBA, width int)
}

// StrokeTracker connects consecutive pinch positions into line segments.
// It is not safe for concurrent use.
type StrokeTracker struct {
	drawer  SegmentDrawer
	last    image.Point
	hasLast bool
}

// NewStrokeTracker creates a tracker drawing into d.
func NewStrokeTracker(d SegmentDrawer) *StrokeTracker {
	return &StrokeTracker{drawer: d}
}

// Update advances the tracker by one frame.
//
// A pinch draws a segment from the previous pinch position, if any, to p.
// The first pinch of a run only records p. Idle forgets the previous
// position so the next run starts a new stroke.
// Returns true when a segment was drawn.
func (t *StrokeTracker) Update(s State, p image.Point, c color.RGBA) bool {
	if s != Pinch {
		t.Reset()
		return false
	}

	drew := false
	if t.hasLast {
		t.drawer.DrawSegment(t.last, p, c, StrokeWidth)
		drew = true
	}

	t.last = p
	t.hasLast = true
	return drew
}

// Reset forgets the previous position.
func (t *StrokeTracker) Reset() {
	t.last = image.Point{}
	t.hasLast = false
}

// Last returns the previous pinch position and whether one is held.
func (t *StrokeTracker) Last() (image.Point, bool) {
	return t.last, t.hasLast
}
