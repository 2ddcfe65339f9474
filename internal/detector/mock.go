package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// Queued results are returned one per Detect call; once the queue is empty
// the hands set with SetHands are returned.
type MockDetector struct {
	hands []HandLandmarks
	queue [][]HandLandmarks
	err   error
	calls int
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// Queue appends per-frame results. A nil entry means no hand in that frame.
func (m *MockDetector) Queue(frames ...[]HandLandmarks) {
	m.queue = append(m.queue, frames...)
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Calls returns how many times Detect was called.
func (m *MockDetector) Calls() int {
	return m.calls
}

// Detect returns the next queued result, the pre-configured hands, or the error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	m.calls++

	if m.err != nil {
		return nil, m.err
	}

	if len(m.queue) > 0 {
		next := m.queue[0]
		m.queue = m.queue[1:]
		return next, nil
	}

	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// PinchLandmarks returns a right hand whose thumb and index tips touch at the
// normalized position (x, y).
func PinchLandmarks(x, y float64) HandLandmarks {
	lm := handAt(x, y)
	lm.Points[ThumbIP] = Point3D{X: x + 0.03, Y: y + 0.04, Z: 0.0}
	lm.Points[ThumbTip] = Point3D{X: x + 0.005, Y: y + 0.005, Z: 0.0}
	return lm
}

// PointLandmarks returns a right hand pointing its index tip at the
// normalized position (x, y) with the thumb held well away.
func PointLandmarks(x, y float64) HandLandmarks {
	lm := handAt(x, y)
	lm.Points[ThumbIP] = Point3D{X: x + 0.15, Y: y + 0.18, Z: 0.0}
	lm.Points[ThumbTip] = Point3D{X: x + 0.2, Y: y + 0.15, Z: 0.0}
	return lm
}

// handAt lays out an upright right hand with the index tip at (x, y).
func handAt(x, y float64) HandLandmarks {
	lm := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	lm.Points[Wrist] = Point3D{X: x, Y: y + 0.45, Z: 0.0}

	lm.Points[ThumbCMC] = Point3D{X: x + 0.05, Y: y + 0.40, Z: 0.0}
	lm.Points[ThumbMCP] = Point3D{X: x + 0.08, Y: y + 0.32, Z: 0.0}

	lm.Points[IndexMCP] = Point3D{X: x, Y: y + 0.30, Z: 0.0}
	lm.Points[IndexPIP] = Point3D{X: x, Y: y + 0.20, Z: 0.0}
	lm.Points[IndexDIP] = Point3D{X: x, Y: y + 0.10, Z: 0.0}
	lm.Points[IndexTip] = Point3D{X: x, Y: y, Z: 0.0}

	lm.Points[MiddleMCP] = Point3D{X: x - 0.04, Y: y + 0.30, Z: 0.0}
	lm.Points[MiddlePIP] = Point3D{X: x - 0.04, Y: y + 0.34, Z: -0.03}
	lm.Points[MiddleDIP] = Point3D{X: x - 0.04, Y: y + 0.36, Z: -0.04}
	lm.Points[MiddleTip] = Point3D{X: x - 0.04, Y: y + 0.38, Z: -0.03}

	lm.Points[RingMCP] = Point3D{X: x - 0.08, Y: y + 0.31, Z: 0.0}
	lm.Points[RingPIP] = Point3D{X: x - 0.08, Y: y + 0.35, Z: -0.03}
	lm.Points[RingDIP] = Point3D{X: x - 0.08, Y: y + 0.37, Z: -0.04}
	lm.Points[RingTip] = Point3D{X: x - 0.08, Y: y + 0.39, Z: -0.03}

	lm.Points[PinkyMCP] = Point3D{X: x - 0.11, Y: y + 0.33, Z: 0.0}
	lm.Points[PinkyPIP] = Point3D{X: x - 0.11, Y: y + 0.36, Z: -0.03}
	lm.Points[PinkyDIP] = Point3D{X: x - 0.11, Y: y + 0.38, Z: -0.04}
	lm.Points[PinkyTip] = Point3D{X: x - 0.11, Y: y + 0.40, Z: -0.03}

	return lm
}
