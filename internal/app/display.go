package app

import (
	"sync"

	"gocv.io/x/gocv"
)

// WindowTitle is the title of the preview window.
const WindowTitle = "Air Canvas"

// NoKey is returned by PollKey when no key was pressed.
const NoKey = -1

// Display shows composed frames and reports key presses.
type Display interface {
	Show(img gocv.Mat)
	// PollKey waits briefly for a key and returns its low byte, or NoKey.
	PollKey() int
	Close() error
}

// Window is a Display backed by an OpenCV HighGUI window.
type Window struct {
	w *gocv.Window
}

// NewWindow opens a window with the given title.
func NewWindow(title string) *Window {
	return &Window{w: gocv.NewWindow(title)}
}

// Show draws img in the window.
func (w *Window) Show(img gocv.Mat) {
	w.w.IMShow(img)
}

// PollKey waits one millisecond for a key press and returns its low byte,
// or NoKey.
func (w *Window) PollKey() int {
	key := w.w.WaitKey(1)
	if key < 0 {
		return NoKey
	}
	return key & 0xFF
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.w.Close()
}

// HeadlessDisplay is a Display without a window. It plays back a scripted
// key sequence, one key per PollKey, and keeps a copy of the last frame shown.
type HeadlessDisplay struct {
	mu      sync.Mutex
	keys    []int
	polls   int
	shown   int
	last    gocv.Mat
	hasLast bool
	closed  bool
}

// NewHeadlessDisplay creates a HeadlessDisplay that answers PollKey with keys
// in order and NoKey afterwards.
func NewHeadlessDisplay(keys ...int) *HeadlessDisplay {
	return &HeadlessDisplay{keys: keys}
}

// Show counts img and keeps a copy of it as the last frame.
func (d *HeadlessDisplay) Show(img gocv.Mat) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.hasLast {
		d.last.Close()
	}
	d.last = img.Clone()
	d.hasLast = true
	d.shown++
}

// PollKey returns the next scripted key, or NoKey once they run out.
func (d *HeadlessDisplay) PollKey() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.polls
	d.polls++
	if i < len(d.keys) {
		return d.keys[i]
	}
	return NoKey
}

// Close releases the last frame copy.
func (d *HeadlessDisplay) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.hasLast {
		d.last.Close()
		d.hasLast = false
	}
	d.closed = true
	return nil
}

// Shown returns how many frames have been shown.
func (d *HeadlessDisplay) Shown() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shown
}

// Closed reports whether Close was called.
func (d *HeadlessDisplay) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// Last returns a copy of the last frame shown and whether there was one.
// The caller must close the returned Mat.
func (d *HeadlessDisplay) Last() (gocv.Mat, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.hasLast {
		return gocv.NewMat(), false
	}
	return d.last.Clone(), true
}
