// Package config defines the viewer configuration and how it is loaded.
//
// Values are layered: defaults from New, then an optional YAML file, then
// POINTVIZ_* environment variables.
package config

import (
	"fmt"

	"point-visualizer/internal/logger"
	"point-visualizer/internal/orbit"
	"point-visualizer/internal/viewer"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile is appended to besides stderr. Empty disables it.
	LogFile string `koanf:"log_file"`

	// AssetDir is the root that dataset paths are resolved against.
	AssetDir string `koanf:"asset_dir"`

	// Dataset is the points file to load, relative to AssetDir.
	Dataset string `koanf:"dataset"`

	Window WindowConfig `koanf:"window"`
	Camera CameraConfig `koanf:"camera"`
	Render RenderConfig `koanf:"render"`
	Debug  DebugConfig  `koanf:"debug"`
}

// WindowConfig sizes and titles the window.
type WindowConfig struct {
	Width    int    `koanf:"width"`
	Height   int    `koanf:"height"`
	Title    string `koanf:"title"`
	VSync    bool   `koanf:"vsync"`
	EscClose bool   `koanf:"esc_close"`

	// ClearColor is the background as 8-bit RGB.
	ClearColor [3]int `koanf:"clear_color"`
}

// CameraConfig places the camera and tunes orbit control.
type CameraConfig struct {
	Position    [3]float32 `koanf:"position"`
	Target      [3]float32 `koanf:"target"`
	OrbitButton string     `koanf:"orbit_button"`
	PanButton   string     `koanf:"pan_button"`
	Smoothness  float32    `koanf:"smoothness"`
	Fovy        float32    `koanf:"fovy"`
}

// RenderConfig tunes point drawing.
type RenderConfig struct {
	// PositionScale multiplies every point location.
	PositionScale float32 `koanf:"position_scale"`
	// CircleSegments is the triangle count of each circle.
	CircleSegments int `koanf:"circle_segments"`
}

// DebugConfig toggles diagnostics.
type DebugConfig struct {
	ShowFPS bool `koanf:"show_fps"`
	// Development switches logs to the human-readable development format.
	Development bool `koanf:"development"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		LogLevel: "info",
		LogFile:  logger.LogFilePath,
		AssetDir: "assets",
		Dataset:  viewer.DefaultDatasetPath,
		Window: WindowConfig{
			Width:      1920,
			Height:     1080,
			Title:      "point visualizer",
			VSync:      true,
			EscClose:   true,
			ClearColor: [3]int{112 / 2, 48 / 2, 48 / 2},
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 1.5, 5},
			OrbitButton: "left",
			PanButton:   "middle",
			Fovy:        45,
		},
		Render: RenderConfig{
			PositionScale:  1,
			CircleSegments: 24,
		},
		Debug: DebugConfig{
			ShowFPS: true,
		},
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Dataset == "" {
		return fmt.Errorf("%w: dataset must not be empty", ErrInvalidConfig)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	for _, ch := range c.Window.ClearColor {
		if ch < 0 || ch > 255 {
			return fmt.Errorf("%w: clear_color channel %d out of range", ErrInvalidConfig, ch)
		}
	}
	orbitButton, err := orbit.ParseButton(c.Camera.OrbitButton)
	if err != nil {
		return fmt.Errorf("%w: camera.orbit_button: %v", ErrInvalidConfig, err)
	}
	panButton, err := orbit.ParseButton(c.Camera.PanButton)
	if err != nil {
		return fmt.Errorf("%w: camera.pan_button: %v", ErrInvalidConfig, err)
	}
	if orbitButton == panButton {
		return fmt.Errorf("%w: camera.orbit_button and camera.pan_button are both %s", ErrInvalidConfig, panButton)
	}
	if c.Camera.Smoothness < 0 || c.Camera.Smoothness > orbit.MaxSmoothness {
		return fmt.Errorf("%w: camera.smoothness %v not in [0,%v]", ErrInvalidConfig, c.Camera.Smoothness, orbit.MaxSmoothness)
	}
	if c.Camera.Fovy <= 0 || c.Camera.Fovy >= 180 {
		return fmt.Errorf("%w: camera.fovy %v", ErrInvalidConfig, c.Camera.Fovy)
	}
	if c.Render.PositionScale <= 0 {
		return fmt.Errorf("%w: render.position_scale must be positive", ErrInvalidConfig)
	}
	if c.Render.CircleSegments < 3 {
		return fmt.Errorf("%w: render.circle_segments must be at least 3", ErrInvalidConfig)
	}
	return nil
}

// Setup returns the scene initializer settings. Call after Validate.
func (c *Config) Setup() viewer.SetupConfig {
	opts := orbit.DefaultOptions()
	if b, err := orbit.ParseButton(c.Camera.OrbitButton); err == nil {
		opts.OrbitButton = b
	}
	if b, err := orbit.ParseButton(c.Camera.PanButton); err == nil {
		opts.PanButton = b
	}
	opts.Smoothness = c.Camera.Smoothness
	return viewer.SetupConfig{
		DatasetPath: c.Dataset,
		Camera: viewer.Transform{
			Position: c.Camera.Position,
			Target:   c.Camera.Target,
		},
		Orbit: opts,
	}
}

// RenderOptions returns the point renderer settings.
func (c *Config) RenderOptions() viewer.RenderOptions {
	return viewer.RenderOptions{PositionScale: c.Render.PositionScale}
}

// Logger returns the logger settings.
func (c *Config) Logger() logger.Options {
	return logger.Options{Level: c.LogLevel, File: c.LogFile, Development: c.Debug.Development}
}
