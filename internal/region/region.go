// Package region provides the on-screen hit-test regions: color swatches,
// the quit trigger and the yes/no confirmation boxes.
package region

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/ayusman/aircanvas/internal/palette"
)

// ErrOverlap is returned by Validate when two regions share a pixel.
var ErrOverlap = errors.New("regions overlap")

// ActionKind tags the variant held by an Action.
type ActionKind int

const (
	// ActionNone does nothing.
	ActionNone ActionKind = iota
	// ActionSelectColor switches the stroke color to Action.Color.
	ActionSelectColor
	// ActionOpenQuitConfirm shows the yes/no confirmation.
	ActionOpenQuitConfirm
	// ActionConfirmQuit ends the session while the confirmation is shown.
	ActionConfirmQuit
	// ActionCancelQuit hides the confirmation.
	ActionCancelQuit
)

func (k ActionKind) String() string {
	switch k {
	case ActionSelectColor:
		return "select-color"
	case ActionOpenQuitConfirm:
		return "open-quit-confirm"
	case ActionConfirmQuit:
		return "confirm-quit"
	case ActionCancelQuit:
		return "cancel-quit"
	default:
		return "none"
	}
}

// precedence orders hits when regions overlap: quit flow first, colors last.
func (k ActionKind) precedence() int {
	switch k {
	case ActionOpenQuitConfirm:
		return 0
	case ActionConfirmQuit:
		return 1
	case ActionCancelQuit:
		return 2
	case ActionSelectColor:
		return 3
	default:
		return 4
	}
}

// Action is the effect a region has when the fingertip is inside it.
// Color is only meaningful for ActionSelectColor.
type Action struct {
	Kind  ActionKind
	Color palette.Color
}

// SelectColor returns an action selecting c.
func SelectColor(c palette.Color) Action {
	return Action{Kind: ActionSelectColor, Color: c}
}

// OpenQuitConfirm returns the quit trigger action.
func OpenQuitConfirm() Action { return Action{Kind: ActionOpenQuitConfirm} }

// ConfirmQuit returns the "Yes" action.
func ConfirmQuit() Action { return Action{Kind: ActionConfirmQuit} }

// CancelQuit returns the "No" action.
func CancelQuit() Action { return Action{Kind: ActionCancelQuit} }

// Region is a fixed rectangle mapped to an action.
// TopLeft and BottomRight are both inside the region.
type Region struct {
	ID          string
	Label       string
	TopLeft     image.Point
	BottomRight image.Point
	Action      Action
}

// Contains reports whether p lies inside r, edges included.
func (r Region) Contains(p image.Point) bool {
	return r.TopLeft.X <= p.X && p.X <= r.BottomRight.X &&
		r.TopLeft.Y <= p.Y && p.Y <= r.BottomRight.Y
}

// Rect returns the region as an image.Rectangle for drawing.
func (r Region) Rect() image.Rectangle {
	return image.Rectangle{Min: r.TopLeft, Max: r.BottomRight}
}

func (r Region) overlaps(o Region) bool {
	return r.TopLeft.X <= o.BottomRight.X && o.TopLeft.X <= r.BottomRight.X &&
		r.TopLeft.Y <= o.BottomRight.Y && o.TopLeft.Y <= r.BottomRight.Y
}

// Registry is an immutable table of regions.
type Registry struct {
	regions []Region
}

// NewRegistry creates a Registry over a copy of regions.
func NewRegistry(regions ...Region) *Registry {
	r := &Registry{regions: make([]Region, len(regions))}
	copy(r.regions, regions)
	return r
}

// Default returns the built-in layout for a 640x480 frame.
func Default() *Registry {
	return NewRegistry(
		Region{ID: "red", Label: "Red", TopLeft: image.Pt(50, 50), BottomRight: image.Pt(150, 150), Action: SelectColor(palette.Red)},
		Region{ID: "green", Label: "Green", TopLeft: image.Pt(200, 50), BottomRight: image.Pt(300, 150), Action: SelectColor(palette.Green)},
		Region{ID: "quit", Label: "Quit", TopLeft: image.Pt(500, 50), BottomRight: image.Pt(600, 100), Action: OpenQuitConfirm()},
		Region{ID: "yes", Label: "Yes", TopLeft: image.Pt(500, 110), BottomRight: image.Pt(600, 160), Action: ConfirmQuit()},
		Region{ID: "no", Label: "No", TopLeft: image.Pt(500, 170), BottomRight: image.Pt(600, 220), Action: CancelQuit()},
	)
}

// Regions returns a copy of the table in declaration order.
func (r *Registry) Regions() []Region {
	out := make([]Region, len(r.regions))
	copy(out, r.regions)
	return out
}

// HitTest returns every region containing p, quit-flow regions before
// color swatches. Regions of equal precedence keep declaration order.
func (r *Registry) HitTest(p image.Point) []Region {
	var hits []Region
	for _, reg := range r.regions {
		if reg.Contains(p) {
			hits = append(hits, reg)
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Action.Kind.precedence() < hits[j].Action.Kind.precedence()
	})

	return hits
}

// Validate returns an error wrapping ErrOverlap for the first pair of
// regions that share a pixel.
func (r *Registry) Validate() error {
	for i := 0; i < len(r.regions); i++ {
		for j := i + 1; j < len(r.regions); j++ {
			if r.regions[i].overlaps(r.regions[j]) {
				return fmt.Errorf("%w: %q and %q", ErrOverlap, r.regions[i].ID, r.regions[j].ID)
			}
		}
	}
	return nil
}
