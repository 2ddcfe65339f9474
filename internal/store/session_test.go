package store

import (
	"errors"
	"testing"
)

func TestSessionRepository_StartEnd(t *testing.T) {
	s := newTestStore(t)
	repo := s.Sessions()

	sess, err := repo.Start()
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	got, err := repo.GetByID(sess.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.EndedAt != nil {
		t.Error("new session should not have EndedAt")
	}

	if err := repo.End(sess.ID, EndQuit); err != nil {
		t.Fatalf("End() error = %v", err)
	}

	got, err = repo.GetByID(sess.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.EndedAt == nil {
		t.Fatal("ended session should have EndedAt")
	}
	if got.EndReason != EndQuit {
		t.Errorf("EndReason = %q, want %q", got.EndReason, EndQuit)
	}
	if got.EndedAt.Before(got.StartedAt) {
		t.Error("EndedAt should not be before StartedAt")
	}
}

func TestSessionRepository_NotFound(t *testing.T) {
	s := newTestStore(t)
	repo := s.Sessions()

	if err := repo.End("missing", EndQuit); !errors.Is(err, ErrNotFound) {
		t.Errorf("End() error = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestSessionRepository_DeleteCascadesExports(t *testing.T) {
	s := newTestStore(t)

	sess, _ := s.Sessions().Start()
	e := &Export{SessionID: sess.ID, Path: "drawing.png", Width: 640, Height: 480, Color: "red"}
	if err := s.Exports().Create(e); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := s.DB().Exec("DELETE FROM sessions WHERE id = ?", sess.ID); err != nil {
		t.Fatalf("delete session: %v", err)
	}

	if _, err := s.Exports().GetByID(e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("export should be removed with its session, got %v", err)
	}
}
