// Package gesture classifies the pinch gesture and turns pinch runs into strokes.
package gesture

import (
	"image"
	"math"
)

// PinchThreshold is the thumb-to-index distance, in pixels, below which the
// hand is pinching.
const PinchThreshold = 30.0

// State is the per-frame gesture classification.
type State int

const (
	// Idle means the fingertips are apart.
	Idle State = iota
	// Pinch means the thumb and index tips are touching.
	Pinch
)

func (s State) String() string {
	if s == Pinch {
		return "pinch"
	}
	return "idle"
}

// Pose holds the fingertip positions of the tracked hand in pixels.
type Pose struct {
	Thumb image.Point
	Index image.Point
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b image.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Classify returns Pinch when thumb and index are strictly closer than
// PinchThreshold. There is no smoothing across frames.
func Classify(thumb, index image.Point) State {
	if Distance(thumb, index) < PinchThreshold {
		return Pinch
	}
	return Idle
}

// Classify classifies the pose.
func (p Pose) Classify() State {
	return Classify(p.Thumb, p.Index)
}
