// Package tray provides a system tray menu for the air canvas.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray menu. Menu callbacks run on the
// tray goroutine, so they should only hand work to the frame loop.
type Tray struct {
	onClear func()
	onSave  func()
	onQuit  func()
	color   string
	mu      sync.RWMutex

	// Menu items stored for later updates
	menuColor *systray.MenuItem
}

// New creates a new Tray instance.
func New() *Tray {
	return &Tray{color: "blue"}
}

// OnClear sets the callback for the "Clear canvas" item.
func (t *Tray) OnClear(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onClear = fn
}

// OnSave sets the callback for the "Save drawing" item.
func (t *Tray) OnSave(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onSave = fn
}

// OnQuit sets the callback for the "Quit…" item. The item only asks for
// confirmation; the tray keeps running until Stop.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until Stop is called.
//
// On macOS systray must own the main OS thread, so running it from another
// goroutine leaves the menu unresponsive there. The frame loop keeps the
// main thread for the OpenCV window; the tray is supported on Linux and
// Windows.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// Stop tears the tray down and unblocks Run.
func (t *Tray) Stop() {
	systray.Quit()
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("Air Canvas")
	systray.SetTooltip("Air Canvas - draw with a pinch")

	t.mu.Lock()
	t.menuColor = systray.AddMenuItem(colorTitle(t.color), "Current stroke color")
	t.menuColor.Disable()
	t.mu.Unlock()
	systray.AddSeparator()

	menuClear := systray.AddMenuItem("Clear canvas", "Erase every stroke")
	menuSave := systray.AddMenuItem("Save drawing", "Write the canvas to drawing.png")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit…", "Show the quit confirmation")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-menuClear.ClickedCh:
				t.fire(func() func() { return t.onClear })
			case <-menuSave.ClickedCh:
				t.fire(func() func() { return t.onSave })
			case <-menuQuit.ClickedCh:
				t.fire(func() func() { return t.onQuit })
			}
		}
	}()
}

func (t *Tray) onExit() {}

// fire reads a callback under the lock and calls it outside.
func (t *Tray) fire(get func() func()) {
	t.mu.RLock()
	callback := get()
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// SetColor updates the color line in the menu.
func (t *Tray) SetColor(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.color = name
	if t.menuColor != nil {
		t.menuColor.SetTitle(colorTitle(name))
	}
}

// Color returns the color last passed to SetColor.
func (t *Tray) Color() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.color
}

func colorTitle(name string) string {
	return "Color: " + name
}
