// Package render draws the overlay (swatches, quit pane, hand skeleton)
// onto camera frames and blends the drawing canvas over them.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/aircanvas/internal/detector"
	"github.com/ayusman/aircanvas/internal/interaction"
	"github.com/ayusman/aircanvas/internal/region"
)

// ErrSizeMismatch is returned by Compose when frame and canvas differ in shape.
var ErrSizeMismatch = errors.New("frame and canvas size mismatch")

// Blend weights for Compose.
const (
	FrameWeight  = 0.5
	CanvasWeight = 0.5
)

const (
	labelScale     = 0.6
	selectionScale = 1.0
	textThickness  = 2
)

// SelectionOrigin is where the "Selected <Color>!" banner is drawn.
var SelectionOrigin = image.Pt(50, 400)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}

	landmarkColor   = color.RGBA{R: 255, A: 255}
	connectionColor = color.RGBA{R: 224, G: 224, B: 224, A: 255}
)

// DrawRegions paints the swatches and the quit pane onto img.
// The yes/no boxes are only painted while awaiting quit confirmation.
func DrawRegions(img *gocv.Mat, regions []region.Region, state interaction.State) {
	for _, r := range regions {
		switch r.Action.Kind {
		case region.ActionSelectColor:
			gocv.Rectangle(img, r.Rect(), r.Action.Color.RGBA(), -1)
			label(img, r.Label, image.Pt(r.TopLeft.X+10, r.BottomRight.Y+30), white)
		case region.ActionOpenQuitConfirm:
			pane(img, r, white)
		case region.ActionConfirmQuit:
			if state == interaction.AwaitingQuitConfirm {
				pane(img, r, green)
			}
		case region.ActionCancelQuit:
			if state == interaction.AwaitingQuitConfirm {
				pane(img, r, red)
			}
		}
	}
}

// pane draws a black box with its label inside, near the top.
func pane(img *gocv.Mat, r region.Region, text color.RGBA) {
	gocv.Rectangle(img, r.Rect(), black, -1)
	label(img, r.Label, image.Pt(r.TopLeft.X+10, r.TopLeft.Y+30), text)
}

func label(img *gocv.Mat, text string, org image.Point, c color.RGBA) {
	gocv.PutText(img, text, org, gocv.FontHersheySimplex, labelScale, c, textThickness)
}

// DrawSelection draws the "Selected <Color>!" banner for every hovered swatch.
func DrawSelection(img *gocv.Mat, hovered []region.Region) {
	for _, r := range hovered {
		if r.Action.Kind != region.ActionSelectColor {
			continue
		}
		text := fmt.Sprintf("Selected %s!", r.Label)
		gocv.PutText(img, text, SelectionOrigin, gocv.FontHersheySimplex, selectionScale, r.Action.Color.RGBA(), textThickness)
	}
}

// DrawHand draws the hand skeleton and landmark dots, scaled to width x height.
func DrawHand(img *gocv.Mat, hand *detector.HandLandmarks, width, height int) {
	if hand == nil {
		return
	}

	for _, c := range detector.Connections {
		from := hand.Pixel(c[0], width, height)
		to := hand.Pixel(c[1], width, height)
		gocv.Line(img, from, to, connectionColor, 2)
	}

	for i := 0; i < detector.NumLandmarks; i++ {
		gocv.Circle(img, hand.Pixel(i, width, height), 2, landmarkColor, 2)
	}
}

// Compose blends frame and canvas 50/50 into dst.
func Compose(frame, canvas gocv.Mat, dst *gocv.Mat) error {
	if frame.Rows() != canvas.Rows() || frame.Cols() != canvas.Cols() || frame.Type() != canvas.Type() {
		return fmt.Errorf("%w: frame %dx%d, canvas %dx%d",
			ErrSizeMismatch, frame.Cols(), frame.Rows(), canvas.Cols(), canvas.Rows())
	}

	gocv.AddWeighted(frame, FrameWeight, canvas, CanvasWeight, 0, dst)
	return nil
}
