package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/ayusman/aircanvas/internal/app"
	"github.com/ayusman/aircanvas/internal/capture"
	"github.com/ayusman/aircanvas/internal/config"
	"github.com/ayusman/aircanvas/internal/detector"
	"github.com/ayusman/aircanvas/internal/log"
	"github.com/ayusman/aircanvas/internal/palette"
	"github.com/ayusman/aircanvas/internal/store"
	"github.com/ayusman/aircanvas/internal/tray"
)

func main() {
	cfg := config.FromEnv()
	log.Init(cfg.LogLevel)

	log.Info("Air Canvas - pinch to draw", "camera", cfg.CameraID, "data_dir", cfg.DataDir)

	if err := run(cfg); err != nil {
		log.Error("air canvas failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	// Export history is optional; drawing works without it.
	st, err := store.New(cfg.DBPath())
	if err != nil {
		log.Warn("export history disabled", "error", err)
	} else {
		defer st.Close()
	}

	var display app.Display
	if cfg.Headless {
		display = app.NewHeadlessDisplay()
	} else {
		display = app.NewWindow(app.WindowTitle)
	}

	var tr *tray.Tray
	if cfg.Tray {
		tr = tray.New()
	}

	a := app.New(app.Config{
		Camera:     capture.NewCamera(cfg.CameraID),
		Detector:   newDetector(),
		Display:    display,
		Store:      st,
		OutputPath: cfg.OutputPath,
		OnColorChange: func(c palette.Color) {
			if tr != nil {
				tr.SetColor(c.String())
			}
		},
	})

	if tr != nil {
		tr.OnClear(func() { a.Submit(app.CommandClear) })
		tr.OnSave(func() { a.Submit(app.CommandSave) })
		tr.OnQuit(func() { a.Submit(app.CommandQuitConfirm) })
		// Off the main thread; see tray.Run for the macOS limitation.
		go tr.Run()
		defer tr.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = a.Run(ctx)
	switch {
	case err == nil:
		log.Info("goodbye")
		return nil
	case errors.Is(err, app.ErrAcquisition):
		log.Info("camera stopped delivering frames", "error", err)
		return nil
	case errors.Is(err, context.Canceled):
		log.Info("interrupted")
		return nil
	}
	return err
}

// newDetector tries MediaPipe first and falls back to the mock detector,
// which never reports a hand.
func newDetector() detector.Detector {
	mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig())
	if err != nil {
		log.Warn("MediaPipe not available, using mock detector", "error", err)
		return detector.NewMockDetector()
	}
	log.Info("using MediaPipe hand detection")
	return mp
}
