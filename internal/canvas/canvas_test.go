package canvas

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"gocv.io/x/gocv"
)

var green = color.RGBA{G: 255, A: 255}

// nonZero counts pixels with any channel set.
func nonZero(t *testing.T, m gocv.Mat) int {
	t.Helper()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(m, &gray, gocv.ColorBGRToGray)
	return gocv.CountNonZero(gray)
}

func TestStore_Init(t *testing.T) {
	t.Run("allocates a blank raster", func(t *testing.T) {
		s := New()
		defer s.Close()

		if err := s.Init(640, 480); err != nil {
			t.Fatalf("Init() error = %v", err)
		}

		w, h := s.Size()
		if w != 640 || h != 480 {
			t.Errorf("Size() = %dx%d, want 640x480", w, h)
		}
		if n := nonZero(t, s.Mat()); n != 0 {
			t.Errorf("new canvas has %d painted pixels, want 0", n)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		s := New()
		defer s.Close()

		s.Init(640, 480)
		if err := s.Init(320, 240); err != nil {
			t.Fatalf("second Init() error = %v", err)
		}

		w, h := s.Size()
		if w != 640 || h != 480 {
			t.Errorf("Size() = %dx%d after second Init, want 640x480", w, h)
		}
	})

	t.Run("rejects invalid size", func(t *testing.T) {
		tests := []struct {
			name          string
			width, height int
		}{
			{"zero width", 0, 480},
			{"zero height", 640, 0},
			{"negative", -1, -1},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s := New()
				err := s.Init(tt.width, tt.height)
				if !errors.Is(err, ErrInvalidSize) {
					t.Errorf("Init(%d, %d) error = %v, want ErrInvalidSize", tt.width, tt.height, err)
				}
				if s.Ready() {
					t.Error("store should not be ready after a failed Init")
				}
			})
		}
	})
}

func TestStore_DrawSegment(t *testing.T) {
	s := New()
	defer s.Close()
	s.Init(200, 100)

	s.DrawSegment(image.Pt(10, 50), image.Pt(190, 50), green, 5)

	px := s.Mat().GetVecbAt(50, 100)
	if px[0] != 0 || px[1] != 255 || px[2] != 0 {
		t.Errorf("pixel on segment = %v, want BGR [0 255 0]", px)
	}

	px = s.Mat().GetVecbAt(10, 100)
	if px[0] != 0 || px[1] != 0 || px[2] != 0 {
		t.Errorf("pixel off segment = %v, want black", px)
	}
}

func TestStore_DrawBeforeInit(t *testing.T) {
	s := New()

	// Must not panic on an unallocated Mat.
	s.DrawSegment(image.Pt(0, 0), image.Pt(10, 10), green, 5)
	s.Clear()

	snap := s.Snapshot()
	defer snap.Close()
	if !snap.Empty() {
		t.Error("Snapshot() before Init should be empty")
	}
}

func TestStore_Clear(t *testing.T) {
	s := New()
	defer s.Close()
	s.Init(200, 100)

	s.DrawSegment(image.Pt(10, 10), image.Pt(150, 90), green, 5)
	if nonZero(t, s.Mat()) == 0 {
		t.Fatal("expected painted pixels before Clear")
	}

	s.Clear()

	if n := nonZero(t, s.Mat()); n != 0 {
		t.Errorf("canvas has %d painted pixels after Clear, want 0", n)
	}
	if s.Mat().Cols() != 200 || s.Mat().Rows() != 100 {
		t.Errorf("canvas shape changed to %dx%d", s.Mat().Cols(), s.Mat().Rows())
	}
}

func TestStore_Snapshot(t *testing.T) {
	s := New()
	defer s.Close()
	s.Init(100, 100)
	s.DrawSegment(image.Pt(0, 50), image.Pt(99, 50), green, 3)

	snap := s.Snapshot()
	defer snap.Close()

	s.Clear()

	if nonZero(t, snap) == 0 {
		t.Error("snapshot should keep the strokes drawn before Clear")
	}
}

func TestStore_Save(t *testing.T) {
	t.Run("writes png", func(t *testing.T) {
		s := New()
		defer s.Close()
		s.Init(64, 48)
		s.DrawSegment(image.Pt(0, 0), image.Pt(63, 47), green, 5)

		path := filepath.Join(t.TempDir(), "drawing.png")
		if err := s.Save(path); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		img := gocv.IMRead(path, gocv.IMReadColor)
		defer img.Close()
		if img.Empty() {
			t.Fatal("saved image could not be read back")
		}
		if img.Cols() != 64 || img.Rows() != 48 {
			t.Errorf("saved image is %dx%d, want 64x48", img.Cols(), img.Rows())
		}
	})

	t.Run("before init", func(t *testing.T) {
		s := New()
		if err := s.Save(filepath.Join(t.TempDir(), "x.png")); !errors.Is(err, ErrNotInitialized) {
			t.Errorf("Save() error = %v, want ErrNotInitialized", err)
		}
	})
}
