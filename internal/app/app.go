// Package app runs the air canvas frame loop: capture, hand detection,
// interaction, rendering and display, plus keyboard and tray commands.
package app

import (
	"context"
	"errors"
	"fmt"

	"gocv.io/x/gocv"

	"github.com/ayusman/aircanvas/internal/canvas"
	"github.com/ayusman/aircanvas/internal/capture"
	"github.com/ayusman/aircanvas/internal/config"
	"github.com/ayusman/aircanvas/internal/detector"
	"github.com/ayusman/aircanvas/internal/interaction"
	"github.com/ayusman/aircanvas/internal/log"
	"github.com/ayusman/aircanvas/internal/palette"
	"github.com/ayusman/aircanvas/internal/region"
	"github.com/ayusman/aircanvas/internal/store"
)

// ErrAcquisition is returned by Run when the camera stops delivering frames.
var ErrAcquisition = errors.New("frame acquisition failed")

// CommandQueueSize is how many tray commands may wait for the next frame.
const CommandQueueSize = 8

// Command is a request from outside the frame loop, applied between frames.
type Command int

const (
	// CommandClear blanks the canvas, like the 'c' key.
	CommandClear Command = iota
	// CommandSave writes the canvas to the output file, like the 's' key.
	CommandSave
	// CommandQuitConfirm shows the yes/no confirmation, like hovering Quit.
	CommandQuitConfirm
)

func (c Command) String() string {
	switch c {
	case CommandClear:
		return "clear"
	case CommandSave:
		return "save"
	case CommandQuitConfirm:
		return "quit-confirm"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// Config holds the collaborators of the frame loop.
type Config struct {
	Camera   capture.Camera
	Detector detector.Detector
	Display  Display
	// Store records sessions and exports. Optional.
	Store *store.Store
	// Registry defaults to region.Default().
	Registry *region.Registry
	// OutputPath defaults to config.OutputFile.
	OutputPath string
	// OnColorChange is called from the loop goroutine when the stroke color changes. Optional.
	OnColorChange func(palette.Color)
}

// App owns the frame loop and all interaction state.
type App struct {
	config    Config
	camera    capture.Camera
	detector  detector.Detector
	display   Display
	registry  *region.Registry
	canvas    *canvas.Store
	machine   *interaction.Machine
	commands  chan Command
	composed  gocv.Mat
	sessionID string
	color     palette.Color
}

// New creates a new App. Camera, Detector and Display are required.
func New(cfg Config) *App {
	if cfg.Registry == nil {
		cfg.Registry = region.Default()
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = config.OutputFile
	}

	if err := cfg.Registry.Validate(); err != nil {
		log.Warn("regions overlap, hits resolve by precedence", "error", err)
	}

	cv := canvas.New()

	return &App{
		config:   cfg,
		camera:   cfg.Camera,
		detector: cfg.Detector,
		display:  cfg.Display,
		registry: cfg.Registry,
		canvas:   cv,
		machine:  interaction.New(cv, cfg.Registry),
		commands: make(chan Command, CommandQueueSize),
		color:    palette.Default,
	}
}

// Submit queues a command for the loop. It never blocks; it reports false
// when the queue is full and the command was dropped.
func (a *App) Submit(cmd Command) bool {
	select {
	case a.commands <- cmd:
		return true
	default:
		log.Warn("command queue full, dropping", "command", cmd.String())
		return false
	}
}

// Machine returns the interaction state machine.
func (a *App) Machine() *interaction.Machine {
	return a.machine
}

// SessionID returns the current session record ID, empty without a store.
func (a *App) SessionID() string {
	return a.sessionID
}

// Run opens the camera and processes frames until the user confirms quit,
// the camera stops delivering frames (ErrAcquisition) or ctx is cancelled.
// Camera, display, detector and canvas are always released before it returns.
func (a *App) Run(ctx context.Context) (err error) {
	if err := a.camera.Open(); err != nil {
		a.release()
		return fmt.Errorf("failed to open camera: %w", err)
	}

	a.composed = gocv.NewMat()
	a.startSession()
	log.Info("frame loop started", "output", a.config.OutputPath)

	defer func() {
		a.release()
		a.composed.Close()
		a.endSession(err)
	}()

	for {
		if a.machine.Terminated() {
			log.Info("quit confirmed, stopping")
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := a.processFrame(); err != nil {
			return err
		}
	}
}

// release closes every device the loop holds, logging failures.
func (a *App) release() {
	if err := a.camera.Close(); err != nil {
		log.Warn("error closing camera", "error", err)
	}
	if err := a.display.Close(); err != nil {
		log.Warn("error closing display", "error", err)
	}
	if err := a.detector.Close(); err != nil {
		log.Warn("error closing detector", "error", err)
	}
	if err := a.canvas.Close(); err != nil {
		log.Warn("error closing canvas", "error", err)
	}
}

func (a *App) startSession() {
	if a.config.Store == nil {
		return
	}
	sess, err := a.config.Store.Sessions().Start()
	if err != nil {
		log.Warn("failed to record session", "error", err)
		return
	}
	a.sessionID = sess.ID
}

func (a *App) endSession(err error) {
	if a.config.Store == nil || a.sessionID == "" {
		return
	}

	reason := store.EndUnknown
	switch {
	case err == nil:
		reason = store.EndQuit
	case errors.Is(err, ErrAcquisition):
		reason = store.EndCamera
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		reason = store.EndSignal
	}

	if err := a.config.Store.Sessions().End(a.sessionID, reason); err != nil {
		log.Warn("failed to close session", "error", err)
	}
	log.Info("session ended", "session", a.sessionID, "reason", reason)
}
