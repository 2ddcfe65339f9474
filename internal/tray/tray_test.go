package tray

import "testing"

func TestTray_Callbacks(t *testing.T) {
	tr := New()

	var cleared, saved, quit int
	tr.OnClear(func() { cleared++ })
	tr.OnSave(func() { saved++ })
	tr.OnQuit(func() { quit++ })

	tr.fire(func() func() { return tr.onClear })
	tr.fire(func() func() { return tr.onSave })
	tr.fire(func() func() { return tr.onSave })
	tr.fire(func() func() { return tr.onQuit })

	if cleared != 1 || saved != 2 || quit != 1 {
		t.Errorf("callbacks fired clear=%d save=%d quit=%d, want 1/2/1", cleared, saved, quit)
	}
}

func TestTray_FireWithoutCallback(t *testing.T) {
	tr := New()

	// Must not panic when nothing is registered
	tr.fire(func() func() { return tr.onQuit })
}

func TestTray_SetColor(t *testing.T) {
	tr := New()

	if got := tr.Color(); got != "blue" {
		t.Errorf("Color() = %q, want blue", got)
	}

	// No menu yet: only the stored value changes
	tr.SetColor("green")

	if got := tr.Color(); got != "green" {
		t.Errorf("Color() = %q, want green", got)
	}
	if got := colorTitle("green"); got != "Color: green" {
		t.Errorf("colorTitle() = %q", got)
	}
}
