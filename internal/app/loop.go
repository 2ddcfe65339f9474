package app

import (
	"fmt"

	"github.com/ayusman/aircanvas/internal/detector"
	"github.com/ayusman/aircanvas/internal/gesture"
	"github.com/ayusman/aircanvas/internal/log"
	"github.com/ayusman/aircanvas/internal/render"
	"github.com/ayusman/aircanvas/internal/store"
)

// Keyboard shortcuts.
const (
	KeyClear = 'c'
	KeySave  = 's'
)

// processFrame runs one iteration of the loop:
//  1. read a mirrored frame
//  2. size the canvas from it on the first frame
//  3. detect the hand and step the interaction machine
//  4. draw the overlay, blend the canvas in and show the result
//  5. apply one key press and any queued commands
//
// A confirmed quit skips steps 4 and 5.
func (a *App) processFrame() error {
	frame, err := a.camera.ReadFrame()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAcquisition, err)
	}
	defer frame.Close()

	width, height := frame.Cols(), frame.Rows()
	if err := a.canvas.Init(width, height); err != nil {
		return fmt.Errorf("%w: %v", ErrAcquisition, err)
	}

	hands, err := a.detector.Detect(frame)
	if err != nil {
		log.Warn("hand detection failed, treating frame as empty", "error", err)
		hands = nil
	}

	// Only the first hand is tracked
	hand := detector.First(hands)

	var pose *gesture.Pose
	if hand != nil {
		pose = &gesture.Pose{
			Thumb: hand.Pixel(detector.ThumbTip, width, height),
			Index: hand.Pixel(detector.IndexTip, width, height),
		}
	}

	out := a.machine.Step(pose)
	if out.Terminated {
		return nil
	}
	a.notifyColor()

	render.DrawRegions(frame, a.registry.Regions(), a.machine.State())
	render.DrawHand(frame, hand, width, height)
	render.DrawSelection(frame, out.Hovered)

	if err := render.Compose(*frame, a.canvas.Mat(), &a.composed); err != nil {
		// Camera resolution changed mid-session; show the frame without strokes.
		log.Warn("cannot blend canvas", "error", err)
		a.display.Show(*frame)
	} else {
		a.display.Show(a.composed)
	}

	a.handleKey(a.display.PollKey())
	a.drainCommands()

	return nil
}

func (a *App) handleKey(key int) {
	switch key {
	case KeyClear:
		a.execute(CommandClear)
	case KeySave:
		a.execute(CommandSave)
	}
}

// drainCommands applies every queued command without blocking.
func (a *App) drainCommands() {
	for {
		select {
		case cmd := <-a.commands:
			a.execute(cmd)
		default:
			return
		}
	}
}

func (a *App) execute(cmd Command) {
	switch cmd {
	case CommandClear:
		a.canvas.Clear()
		log.Info("canvas cleared")
	case CommandSave:
		a.save()
	case CommandQuitConfirm:
		a.machine.RequestQuitConfirm()
	default:
		log.Warn("unknown command", "command", cmd.String())
	}
}

// save writes the canvas to the output file and records the export.
func (a *App) save() {
	path := a.config.OutputPath
	if err := a.canvas.Save(path); err != nil {
		log.Error("failed to save drawing", "path", path, "error", err)
		return
	}
	log.Info("drawing saved", "path", path)

	if a.config.Store == nil {
		return
	}

	width, height := a.canvas.Size()
	export := &store.Export{
		SessionID: a.sessionID,
		Path:      path,
		Width:     width,
		Height:    height,
		Color:     a.machine.Color().String(),
	}
	if err := a.config.Store.Exports().Create(export); err != nil {
		log.Warn("failed to record export", "path", path, "error", err)
		return
	}
	log.Debug("export recorded", "id", export.ID)
}

func (a *App) notifyColor() {
	c := a.machine.Color()
	if c == a.color {
		return
	}
	a.color = c
	if a.config.OnColorChange != nil {
		a.config.OnColorChange(c)
	}
}
