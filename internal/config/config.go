// Package config provides the ambient configuration for the aircanvas binary.
// Drawing thresholds, palette and region geometry are fixed constants in their
// own packages; only process-level settings are read from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Environment variable names.
const (
	EnvCamera   = "AIRCANVAS_CAMERA"
	EnvDataDir  = "AIRCANVAS_DATA_DIR"
	EnvLogLevel = "AIRCANVAS_LOG_LEVEL"
	EnvTray     = "AIRCANVAS_TRAY"
	EnvHeadless = "AIRCANVAS_HEADLESS"
)

// OutputFile is where the 's' key writes the canvas.
const OutputFile = "drawing.png"

// Config holds process-level settings.
type Config struct {
	CameraID   int
	DataDir    string
	LogLevel   string
	Tray       bool
	Headless   bool
	OutputPath string
}

// DefaultConfig returns a Config with the built-in defaults.
// DataDir falls back to the working directory when the home directory is unknown.
func DefaultConfig() Config {
	dataDir := ".aircanvas"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".aircanvas")
	}

	return Config{
		CameraID:   0,
		DataDir:    dataDir,
		LogLevel:   "info",
		Tray:       false,
		OutputPath: OutputFile,
	}
}

// FromEnv returns DefaultConfig overridden by any AIRCANVAS_* variables.
// Malformed numeric or boolean values are ignored.
func FromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvCamera); v != "" {
		if id, err := strconv.Atoi(v); err == nil && id >= 0 {
			cfg.CameraID = id
		}
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvTray); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Tray = b
		}
	}
	if v := os.Getenv(EnvHeadless); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Headless = b
		}
	}

	return cfg
}

// DBPath returns the sqlite database path inside DataDir.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "aircanvas.db")
}
