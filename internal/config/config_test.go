package config

import (
	"math"
	"orbitdemo/internal/engine"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default config should validate: %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Embedded config should parse: %v", err)
	}

	want := Default()
	if math.Abs(cfg.Physics.Timestep-want.Physics.Timestep) > 1e-6 {
		t.Errorf("physics.timestep = %v, want %v", cfg.Physics.Timestep, want.Physics.Timestep)
	}
	cfg.Physics.Timestep = want.Physics.Timestep

	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Embedded YAML drifted from Default():\n got %+v\nwant %+v", cfg, want)
	}
}

func TestParseOverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := Parse([]byte("camera:\n  look_sensitivity: 0.02\nphysics:\n  enabled: false\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Camera.LookSensitivity != 0.02 {
		t.Errorf("look_sensitivity = %v, want 0.02", cfg.Camera.LookSensitivity)
	}
	if cfg.Physics.Enabled {
		t.Error("physics.enabled should be false")
	}
	if cfg.Camera.ZoomSensitivity != 0.01 {
		t.Errorf("zoom_sensitivity should keep its default, got %v", cfg.Camera.ZoomSensitivity)
	}
	if cfg.Window.Width != 1280 {
		t.Errorf("window.width should keep its default, got %d", cfg.Window.Width)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		key  string
	}{
		{"zero look", "camera: {look_sensitivity: 0}", "camera.look_sensitivity"},
		{"bad fov", "camera: {fov: 200}", "camera.fov"},
		{"negative speed", "locomotion: {speed: -1}", "locomotion.speed"},
		{"huge timestep", "physics: {timestep: 1}", "physics.timestep"},
		{"unknown key", "input: {forward: F13}", "input.forward"},
		{"same keys", "input: {forward: S, backward: S}", "input:"},
		{"ambient", "scene: {ambient: 2}", "scene.ambient"},
		{"log level", "logging: {level: loud}", "logging.level"},
		{"log format", "logging: {format: xml}", "logging.format"},
		{"window", "window: {width: 0}", "window:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error %q should name %q", err, tt.key)
			}
		})
	}
}

func TestParseReportsAllErrors(t *testing.T) {
	_, err := Parse([]byte("camera: {look_sensitivity: 0, zoom_sensitivity: 0}"))
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, key := range []string{"camera.look_sensitivity", "camera.zoom_sensitivity"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q should mention %s", err, key)
		}
	}
}

func TestParseBadYAML(t *testing.T) {
	if _, err := Parse([]byte("camera: [unclosed")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestInputKeys(t *testing.T) {
	forward, backward := Default().Input.Keys()
	if forward != engine.KeyW || backward != engine.KeyS {
		t.Errorf("Keys() = %v, %v; want W, S", forward, backward)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("locomotion: {speed: 4}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, want %q", source, path)
	}
	if cfg.Locomotion.Speed != 4 {
		t.Errorf("speed = %v, want 4", cfg.Locomotion.Speed)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("missing explicit config should fail")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, userDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, userFileName)
	if err := os.WriteFile(path, []byte("scene: {ground_size: 40}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, want %q", source, path)
	}
	if cfg.Scene.GroundSize != 40 {
		t.Errorf("ground_size = %v, want 40", cfg.Scene.GroundSize)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != "" {
		t.Errorf("expected embedded default, got source %q", source)
	}
	if cfg.Scene.PlayerModel != "human.glb#Scene0" {
		t.Errorf("player_model = %q", cfg.Scene.PlayerModel)
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := Default()
	cfg.Camera.FOV = 60
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if back.Camera.FOV != 60 {
		t.Errorf("fov = %v, want 60", back.Camera.FOV)
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orbitdemo.yaml")
	if err := os.WriteFile(path, []byte("camera: {look_sensitivity: 0.01}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("camera: {look_sensitivity: 0.03}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Updates:
		if cfg.Camera.LookSensitivity != 0.03 {
			t.Errorf("look_sensitivity = %v, want 0.03", cfg.Camera.LookSensitivity)
		}
	case err := <-w.Errors:
		t.Fatalf("unexpected error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	if err := os.WriteFile(path, []byte("camera: {look_sensitivity: -1}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Updates:
		t.Fatalf("invalid config should not be delivered, got %+v", cfg.Camera)
	case err := <-w.Errors:
		if !strings.Contains(err.Error(), "camera.look_sensitivity") {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orbitdemo.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Updates:
		t.Errorf("unrelated file triggered a reload: %+v", cfg)
	case err := <-w.Errors:
		t.Errorf("unrelated file triggered an error: %v", err)
	case <-time.After(300 * time.Millisecond):
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if _, ok := <-w.Updates; ok {
		t.Error("Updates should be closed after Close")
	}
}
