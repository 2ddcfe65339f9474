// Package canvas owns the persistent drawing raster that strokes accumulate in.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/aircanvas/internal/log"
)

var (
	// ErrInvalidSize is returned by Init for non-positive dimensions.
	ErrInvalidSize = errors.New("invalid canvas size")
	// ErrNotInitialized is returned when saving before Init.
	ErrNotInitialized = errors.New("canvas is not initialized")
	// ErrWriteFailed is returned when the image file cannot be written.
	ErrWriteFailed = errors.New("failed to write canvas image")
)

// Store holds a BGR raster the size of the video frame.
// The raster shape is fixed by the first successful Init.
// Store is not safe for concurrent use.
type Store struct {
	buf    gocv.Mat
	width  int
	height int
	ready  bool
}

// New returns an uninitialized Store. Call Init once frame dimensions are known.
func New() *Store {
	return &Store{}
}

// Init allocates a blank raster of the given size.
// Subsequent calls are no-ops, whatever their arguments.
func (s *Store) Init(width, height int) error {
	if s.ready {
		return nil
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	s.buf = gocv.Zeros(height, width, gocv.MatTypeCV8UC3)
	s.width = width
	s.height = height
	s.ready = true
	return nil
}

// Ready reports whether Init has succeeded.
func (s *Store) Ready() bool {
	return s.ready
}

// Size returns the raster dimensions, zero before Init.
func (s *Store) Size() (width, height int) {
	return s.width, s.height
}

// DrawSegment draws a line from one point to another.
// It does nothing before Init.
func (s *Store) DrawSegment(from, to image.Point, c color.RGBA, width int) {
	if !s.ready {
		return
	}
	if err := gocv.Line(&s.buf, from, to, c, width); err != nil {
		log.Debug("draw segment failed", "from", from, "to", to, "error", err)
	}
}

// Clear replaces the raster with a blank one of the same size.
func (s *Store) Clear() {
	if !s.ready {
		return
	}
	s.buf.Close()
	s.buf = gocv.Zeros(s.height, s.width, gocv.MatTypeCV8UC3)
}

// Snapshot returns a copy of the raster. The caller must close it.
// Before Init the returned Mat is empty.
func (s *Store) Snapshot() gocv.Mat {
	if !s.ready {
		return gocv.NewMat()
	}
	return s.buf.Clone()
}

// Mat exposes the raster for read-only compositing within the frame loop.
func (s *Store) Mat() gocv.Mat {
	return s.buf
}

// Save writes the raster to path; the format follows the file extension.
func (s *Store) Save(path string) error {
	if !s.ready {
		return ErrNotInitialized
	}
	if ok := gocv.IMWrite(path, s.buf); !ok {
		return fmt.Errorf("%w: %s", ErrWriteFailed, path)
	}
	return nil
}

// Close releases the raster.
func (s *Store) Close() error {
	if !s.ready {
		return nil
	}
	s.ready = false
	return s.buf.Close()
}
