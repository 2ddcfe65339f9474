package capture

import (
	"errors"
	"testing"
)

func TestMockCamera_Playback(t *testing.T) {
	frames := BlankFrames(2, DefaultWidth, DefaultHeight)
	defer CloseFrames(frames)

	cam := NewMockCamera(frames, false)

	if err := cam.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer cam.Close()

	for i := 0; i < 2; i++ {
		f, err := cam.ReadFrame()
		if err != nil {
			t.Fatalf("ReadFrame() %d error = %v", i, err)
		}
		if f.Cols() != DefaultWidth || f.Rows() != DefaultHeight {
			t.Errorf("frame %d is %dx%d", i, f.Cols(), f.Rows())
		}
		f.Close()
	}

	// Third read should fail (no loop)
	_, err := cam.ReadFrame()
	if !errors.Is(err, ErrNoFrame) {
		t.Errorf("ReadFrame() after last frame error = %v, want ErrNoFrame", err)
	}
	if cam.Served() != 2 {
		t.Errorf("Served() = %d, want 2", cam.Served())
	}
}

func TestMockCamera_Loop(t *testing.T) {
	frames := BlankFrames(1, 64, 48)
	defer CloseFrames(frames)

	cam := NewMockCamera(frames, true)
	cam.Open()
	defer cam.Close()

	for i := 0; i < 5; i++ {
		f, err := cam.ReadFrame()
		if err != nil {
			t.Fatalf("ReadFrame() iteration %d error = %v", i, err)
		}
		f.Close()
	}
}

func TestMockCamera_NotOpen(t *testing.T) {
	cam := NewMockCamera(nil, false)

	if _, err := cam.ReadFrame(); !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("ReadFrame() error = %v, want ErrCameraNotOpen", err)
	}
	if cam.Released() {
		t.Error("Released() should be false before Open")
	}
}

func TestMockCamera_Released(t *testing.T) {
	cam := NewMockCamera(nil, false)
	cam.Open()

	if !cam.IsOpen() {
		t.Fatal("IsOpen() should be true after Open")
	}
	cam.Open()
	if cam.Opened() != 2 {
		t.Errorf("Opened() = %d, want 2", cam.Opened())
	}

	cam.Close()

	if !cam.Released() {
		t.Error("Released() should be true after Close")
	}
	if cam.IsOpen() {
		t.Error("IsOpen() should be false after Close")
	}
}

func TestMockCamera_EmptyLoop(t *testing.T) {
	cam := NewMockCamera(nil, true)
	cam.Open()
	defer cam.Close()

	if _, err := cam.ReadFrame(); !errors.Is(err, ErrNoFrame) {
		t.Errorf("ReadFrame() error = %v, want ErrNoFrame", err)
	}
}
