package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestExportRepository_Create(t *testing.T) {
	s := newTestStore(t)
	repo := s.Exports()

	e := &Export{
		Path:   "drawing.png",
		Width:  640,
		Height: 480,
		Color:  "green",
	}

	if err := repo.Create(e); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := uuid.Parse(e.ID); err != nil {
		t.Errorf("Create() assigned non-uuid ID %q: %v", e.ID, err)
	}
	if e.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	got, err := repo.GetByID(e.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	if got.Path != e.Path || got.Width != 640 || got.Height != 480 || got.Color != "green" {
		t.Errorf("GetByID() = %+v, want %+v", got, e)
	}
	if got.SessionID != "" {
		t.Errorf("SessionID = %q, want empty", got.SessionID)
	}
}

func TestExportRepository_Create_KeepsID(t *testing.T) {
	s := newTestStore(t)
	repo := s.Exports()

	e := &Export{ID: "fixed-id", Path: "a.png", Width: 1, Height: 1, Color: "red"}
	if err := repo.Create(e); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if e.ID != "fixed-id" {
		t.Errorf("ID = %q, want fixed-id", e.ID)
	}

	// Duplicate IDs are rejected
	if err := repo.Create(&Export{ID: "fixed-id", Path: "b.png", Width: 1, Height: 1, Color: "red"}); err == nil {
		t.Error("expected error for duplicate ID")
	}
}

func TestExportRepository_Create_Invalid(t *testing.T) {
	s := newTestStore(t)
	repo := s.Exports()

	tests := []struct {
		name string
		e    *Export
	}{
		{"zero width", &Export{Path: "a.png", Width: 0, Height: 480, Color: "blue"}},
		{"negative height", &Export{Path: "a.png", Width: 640, Height: -1, Color: "blue"}},
		{"unknown session", &Export{SessionID: "missing", Path: "a.png", Width: 640, Height: 480, Color: "blue"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := repo.Create(tt.e); err == nil {
				t.Error("expected Create() to fail")
			}
		})
	}
}

func TestExportRepository_List(t *testing.T) {
	s := newTestStore(t)
	repo := s.Exports()

	for _, c := range []string{"blue", "red", "green"} {
		if err := repo.Create(&Export{Path: "drawing.png", Width: 640, Height: 480, Color: c}); err != nil {
			t.Fatalf("Create(%s) error = %v", c, err)
		}
	}

	exports, err := repo.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(exports) != 3 {
		t.Fatalf("expected 3 exports, got %d", len(exports))
	}

	// Newest first
	if exports[0].Color != "green" || exports[2].Color != "blue" {
		t.Errorf("unexpected order: %s, %s, %s", exports[0].Color, exports[1].Color, exports[2].Color)
	}
}

func TestExportRepository_ListBySession(t *testing.T) {
	s := newTestStore(t)

	sess, err := s.Sessions().Start()
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	repo := s.Exports()
	repo.Create(&Export{SessionID: sess.ID, Path: "drawing.png", Width: 640, Height: 480, Color: "red"})
	repo.Create(&Export{Path: "drawing.png", Width: 640, Height: 480, Color: "blue"})

	exports, err := repo.ListBySession(sess.ID)
	if err != nil {
		t.Fatalf("ListBySession() error = %v", err)
	}

	if len(exports) != 1 || exports[0].SessionID != sess.ID {
		t.Errorf("ListBySession() = %+v, want one export in session %s", exports, sess.ID)
	}
}

func TestExportRepository_Delete(t *testing.T) {
	s := newTestStore(t)
	repo := s.Exports()

	e := &Export{Path: "drawing.png", Width: 640, Height: 480, Color: "blue"}
	repo.Create(e)

	if err := repo.Delete(e.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.GetByID(e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestExportRepository_GetByID_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Exports().GetByID("non-existent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
