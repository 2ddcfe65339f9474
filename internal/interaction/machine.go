// Package interaction drives the per-frame drawing and quit-confirmation state.
package interaction

import (
	"errors"
	"fmt"

	"github.com/ayusman/aircanvas/internal/gesture"
	"github.com/ayusman/aircanvas/internal/log"
	"github.com/ayusman/aircanvas/internal/palette"
	"github.com/ayusman/aircanvas/internal/region"
)

// ErrInvalidColor is returned by SetColor for colors outside the palette.
var ErrInvalidColor = errors.New("color is not in the palette")

// State is the interaction mode.
type State int

const (
	// Idle means no stroke is in progress.
	Idle State = iota
	// Drawing means the last frame was a pinch.
	Drawing
	// AwaitingQuitConfirm means the yes/no boxes are shown.
	AwaitingQuitConfirm
	// Terminated means the user confirmed quit. It is final.
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case AwaitingQuitConfirm:
		return "awaiting-quit-confirm"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome describes what happened during one Step, for rendering.
type Outcome struct {
	Gesture    gesture.State
	Hovered    []region.Region
	Drew       bool
	Terminated bool
}

// Machine owns the interaction state, the current color and the stroke tracker.
// It is driven from a single goroutine.
type Machine struct {
	registry *region.Registry
	tracker  *gesture.StrokeTracker
	state    State
	color    palette.Color
}

// New creates a Machine that draws into d and hit-tests against registry.
func New(d gesture.SegmentDrawer, registry *region.Registry) *Machine {
	return &Machine{
		registry: registry,
		tracker:  gesture.NewStrokeTracker(d),
		state:    Idle,
		color:    palette.Default,
	}
}

// State returns the current mode.
func (m *Machine) State() State {
	return m.state
}

// Terminated reports whether the user confirmed quit.
func (m *Machine) Terminated() bool {
	return m.state == Terminated
}

// Color returns the current stroke color.
func (m *Machine) Color() palette.Color {
	return m.color
}

// SetColor changes the stroke color.
func (m *Machine) SetColor(c palette.Color) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidColor, c)
	}
	if c != m.color {
		log.Info("color selected", "color", c.String())
	}
	m.color = c
	return nil
}

// RequestQuitConfirm shows the yes/no confirmation, as the quit pane does.
func (m *Machine) RequestQuitConfirm() {
	if m.state == Terminated || m.state == AwaitingQuitConfirm {
		return
	}
	m.transition(AwaitingQuitConfirm)
}

// Tracker returns the stroke tracker.
func (m *Machine) Tracker() *gesture.StrokeTracker {
	return m.tracker
}

// Step processes one frame. A nil pose means no hand was detected.
//
// The pinch drives the stroke; the fingertip position drives region hits
// whether or not the hand is pinching.
func (m *Machine) Step(pose *gesture.Pose) Outcome {
	if m.state == Terminated {
		return Outcome{Terminated: true}
	}

	if pose == nil {
		// A reappearing hand must not connect to where it was lost.
		m.tracker.Reset()
		return Outcome{Gesture: gesture.Idle}
	}

	out := Outcome{Gesture: pose.Classify()}
	out.Drew = m.tracker.Update(out.Gesture, pose.Index, m.color.RGBA())

	if m.state == Idle || m.state == Drawing {
		if out.Gesture == gesture.Pinch {
			m.transition(Drawing)
		} else {
			m.transition(Idle)
		}
	}

	out.Hovered = m.registry.HitTest(pose.Index)
	for _, r := range out.Hovered {
		m.apply(r.Action)
		if m.state == Terminated {
			break
		}
	}

	out.Terminated = m.state == Terminated
	return out
}

func (m *Machine) apply(a region.Action) {
	switch a.Kind {
	case region.ActionSelectColor:
		if err := m.SetColor(a.Color); err != nil {
			log.Warn("ignoring swatch", "error", err)
		}
	case region.ActionOpenQuitConfirm:
		m.RequestQuitConfirm()
	case region.ActionConfirmQuit:
		if m.state == AwaitingQuitConfirm {
			m.transition(Terminated)
		}
	case region.ActionCancelQuit:
		if m.state == AwaitingQuitConfirm {
			m.transition(Idle)
		}
	}
}

func (m *Machine) transition(to State) {
	if m.state == to {
		return
	}
	switch to {
	case AwaitingQuitConfirm, Terminated:
		log.Info("state changed", "from", m.state.String(), "to", to.String())
	case Idle:
		if m.state == AwaitingQuitConfirm {
			log.Info("quit cancelled")
		} else {
			log.Debug("state changed", "from", m.state.String(), "to", to.String())
		}
	default:
		log.Debug("state changed", "from", m.state.String(), "to", to.String())
	}
	m.state = to
}
