// Package config loads the demo's YAML configuration and watches it for
// live tuning changes.
package config

import (
	"errors"
	"fmt"
	"orbitdemo/internal/engine"

	"go.uber.org/zap/zapcore"
)

type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Camera     CameraConfig     `yaml:"camera"`
	Locomotion LocomotionConfig `yaml:"locomotion"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Input      InputConfig      `yaml:"input"`
	Scene      SceneConfig      `yaml:"scene"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
	MSAA      bool   `yaml:"msaa"`
	VSync     bool   `yaml:"vsync"`
}

type CameraConfig struct {
	LookSensitivity float32 `yaml:"look_sensitivity"` // radians per pixel
	ZoomSensitivity float32 `yaml:"zoom_sensitivity"` // units per scroll unit
	FOV             float32 `yaml:"fov"`              // vertical, degrees
}

type LocomotionConfig struct {
	Speed float32 `yaml:"speed"` // units per second
}

type PhysicsConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Timestep    float64 `yaml:"timestep"` // seconds
	MaxSubsteps int     `yaml:"max_substeps"`
}

type InputConfig struct {
	Forward  string `yaml:"forward"`
	Backward string `yaml:"backward"`
	// WheelScale converts one wheel notch into scroll units.
	WheelScale float32 `yaml:"wheel_scale"`
}

type SceneConfig struct {
	AssetDir    string  `yaml:"asset_dir"`
	PlayerModel string  `yaml:"player_model"`
	TreeModel   string  `yaml:"tree_model"`
	GroundSize  float32 `yaml:"ground_size"`
	Ambient     float32 `yaml:"ambient"` // ambient light brightness, 0-1
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

// Default returns the built-in configuration. Loaded files are applied on top
// of it, so a file only needs the keys it changes.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "orbitdemo",
			TargetFPS: 120,
			MSAA:      true,
		},
		Camera: CameraConfig{
			LookSensitivity: 0.01,
			ZoomSensitivity: 0.01,
			FOV:             45,
		},
		Locomotion: LocomotionConfig{
			Speed: 1.0,
		},
		Physics: PhysicsConfig{
			Enabled:     true,
			Timestep:    1.0 / 120.0,
			MaxSubsteps: 8,
		},
		Input: InputConfig{
			Forward:    "W",
			Backward:   "S",
			WheelScale: 100,
		},
		Scene: SceneConfig{
			AssetDir:    "assets",
			PlayerModel: "human.glb#Scene0",
			TreeModel:   "tree.glb#Scene0",
			GroundSize:  20,
			Ambient:     0.2,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate reports every invalid key at once.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	check(c.Window.TargetFPS >= 0, "window.target_fps: must not be negative, got %d", c.Window.TargetFPS)

	check(c.Camera.LookSensitivity > 0, "camera.look_sensitivity: must be positive, got %v", c.Camera.LookSensitivity)
	check(c.Camera.ZoomSensitivity > 0, "camera.zoom_sensitivity: must be positive, got %v", c.Camera.ZoomSensitivity)
	check(c.Camera.FOV > 0 && c.Camera.FOV < 180, "camera.fov: must be in (0, 180), got %v", c.Camera.FOV)

	check(c.Locomotion.Speed >= 0, "locomotion.speed: must not be negative, got %v", c.Locomotion.Speed)

	check(c.Physics.Timestep > 0 && c.Physics.Timestep <= 0.1, "physics.timestep: must be in (0, 0.1], got %v", c.Physics.Timestep)
	check(c.Physics.MaxSubsteps > 0, "physics.max_substeps: must be positive, got %d", c.Physics.MaxSubsteps)

	forward, err := engine.ParseKey(c.Input.Forward)
	check(err == nil, "input.forward: %v", err)
	backward, err := engine.ParseKey(c.Input.Backward)
	check(err == nil, "input.backward: %v", err)
	check(forward == engine.KeyUnknown || forward != backward, "input: forward and backward are both bound to %s", c.Input.Forward)
	check(c.Input.WheelScale > 0, "input.wheel_scale: must be positive, got %v", c.Input.WheelScale)

	check(c.Scene.PlayerModel != "", "scene.player_model: must be set")
	check(c.Scene.GroundSize > 0, "scene.ground_size: must be positive, got %v", c.Scene.GroundSize)
	check(c.Scene.Ambient >= 0 && c.Scene.Ambient <= 1, "scene.ambient: must be in [0, 1], got %v", c.Scene.Ambient)

	_, err = zapcore.ParseLevel(c.Logging.Level)
	check(err == nil, "logging.level: %v", err)
	check(c.Logging.Format == "console" || c.Logging.Format == "json", "logging.format: must be console or json, got %q", c.Logging.Format)

	return errors.Join(errs...)
}

// Keys resolves the movement bindings. Call after Validate.
func (c InputConfig) Keys() (forward, backward engine.KeyCode) {
	forward, _ = engine.ParseKey(c.Forward)
	backward, _ = engine.ParseKey(c.Backward)
	return forward, backward
}
