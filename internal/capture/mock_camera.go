package capture

import (
	"fmt"
	"sync"

	"gocv.io/x/gocv"
)

// MockCamera plays back pre-recorded frames for testing.
// Without looping, reads past the last frame fail with ErrNoFrame,
// like a device that has gone away.
type MockCamera struct {
	frames  []*gocv.Mat
	index   int
	loop    bool
	mu      sync.Mutex
	running bool
	opened  int
	closed  int
}

// NewMockCamera creates a MockCamera over frames. The camera does not own them.
func NewMockCamera(frames []*gocv.Mat, loop bool) *MockCamera {
	return &MockCamera{
		frames: frames,
		loop:   loop,
	}
}

func (c *MockCamera) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = true
	c.index = 0
	c.opened++
	return nil
}

func (c *MockCamera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		c.closed++
	}
	c.running = false
	return nil
}

func (c *MockCamera) ReadFrame() (*gocv.Mat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return nil, ErrCameraNotOpen
	}

	if c.index >= len(c.frames) {
		if c.loop && len(c.frames) > 0 {
			c.index = 0
		} else {
			return nil, fmt.Errorf("%w: played %d frames", ErrNoFrame, c.index)
		}
	}

	// Clone the frame so the original isn't modified
	frame := c.frames[c.index].Clone()
	c.index++

	return &frame, nil
}

func (c *MockCamera) SetFPS(fps int) {}
func (c *MockCamera) FPS() int       { return DefaultFPS }
func (c *MockCamera) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Opened returns how many times Open was called.
func (c *MockCamera) Opened() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opened
}

// Released reports whether Close was called on an open camera.
func (c *MockCamera) Released() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed > 0
}

// Served returns how many frames have been read since Open.
func (c *MockCamera) Served() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// BlankFrames allocates n black BGR frames of the given size.
// The caller closes them with CloseFrames.
func BlankFrames(n, width, height int) []*gocv.Mat {
	frames := make([]*gocv.Mat, n)
	for i := range frames {
		m := gocv.Zeros(height, width, gocv.MatTypeCV8UC3)
		frames[i] = &m
	}
	return frames
}

// CloseFrames closes every frame.
func CloseFrames(frames []*gocv.Mat) {
	for _, f := range frames {
		f.Close()
	}
}
