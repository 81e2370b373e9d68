package game

import (
	"fmt"
	"orbitdemo/internal/camera"
	"orbitdemo/internal/components"
	"orbitdemo/internal/config"
	"orbitdemo/internal/locomotion"
	"orbitdemo/internal/physics"
	"orbitdemo/internal/world"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark-tools/app"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
)

type Game struct {
	World     *world.World
	DebugMode bool

	cfg    *config.Config
	source string
	logger *zap.Logger

	camera     *camera.System
	locomotion *locomotion.System
	watcher    *config.Watcher

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New prepares a game for cfg. source is the file cfg came from, empty for
// the built-in default; only a file-backed config is watched for changes.
func New(cfg *config.Config, source string, logger *zap.Logger) *Game {
	forward, backward := cfg.Input.Keys()
	return &Game{
		World:      world.New(cfg, logger),
		cfg:        cfg,
		source:     source,
		logger:     logger,
		camera:     camera.NewSystem(cfg.Camera.LookSensitivity, cfg.Camera.ZoomSensitivity),
		locomotion: locomotion.NewSystem(forward, backward, cfg.Locomotion.Speed),
	}
}

// systems returns the per-frame systems in run order: the orbit update feeds
// the heading that locomotion reads, and bodies move last.
func (g *Game) systems() []app.System {
	var mover app.System
	if g.cfg.Physics.Enabled {
		mover = physics.NewPhysicsWorld(physics.Config{
			Timestep:    g.cfg.Physics.Timestep,
			MaxSubsteps: g.cfg.Physics.MaxSubsteps,
			GroundSize:  float64(g.cfg.Scene.GroundSize),
		}, g.logger.Named("physics"))
	} else {
		mover = physics.NewIntegrator()
	}
	return []app.System{g.camera, g.locomotion, mover}
}

func (g *Game) Run() error {
	routeTraceLog(g.logger.Named("raylib"))

	flags := uint32(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	if g.cfg.Window.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	if g.cfg.Window.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(g.cfg.Window.Width), int32(g.cfg.Window.Height), g.cfg.Window.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("failed to open window")
	}

	rl.SetTargetFPS(int32(g.cfg.Window.TargetFPS))
	rl.SetExitKey(rl.KeyEscape)
	rl.DisableCursor()
	applyPanelStyle()

	// Initialize world after OpenGL context is created
	if err := g.World.Initialize(g.cfg, g.systems()...); err != nil {
		return fmt.Errorf("failed to initialize world: %w", err)
	}
	defer g.World.Unload()

	g.startWatcher()
	defer g.stopWatcher()

	g.logger.Info("running",
		zap.Bool("physics", g.cfg.Physics.Enabled),
		zap.String("config", g.configName()))

	for !rl.WindowShouldClose() {
		g.applyReloads()
		g.Update()
		g.Draw()
	}
	return nil
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
		if g.DebugMode {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}

	pollInput(g.World.Input(), g.cfg.Input, !g.DebugMode)
	g.World.Update(deltaTime)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	g.World.Draw()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) configName() string {
	if g.source == "" {
		return "built-in"
	}
	return g.source
}

func (g *Game) startWatcher() {
	if g.source == "" {
		return
	}
	w, err := config.Watch(g.source)
	if err != nil {
		g.logger.Warn("config hot reload unavailable", zap.String("path", g.source), zap.Error(err))
		return
	}
	g.watcher = w
	g.logger.Debug("watching config", zap.String("path", w.Path()))
}

func (g *Game) stopWatcher() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil {
		g.logger.Debug("config watcher close", zap.Error(err))
	}
	g.watcher = nil
}

// applyReloads drains the watcher without blocking the frame.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-g.watcher.Updates:
			if !ok {
				g.watcher = nil
				return
			}
			g.applyTuning(cfg)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("config reload rejected, keeping previous values", zap.Error(err))
		default:
			return
		}
	}
}

// applyTuning takes the live-tunable sections of a reloaded config. Window,
// physics and scene changes need a restart.
func (g *Game) applyTuning(cfg *config.Config) {
	g.cfg.Camera = cfg.Camera
	g.cfg.Locomotion = cfg.Locomotion
	g.cfg.Input = cfg.Input

	g.camera.LookSensitivity = cfg.Camera.LookSensitivity
	g.camera.ZoomSensitivity = cfg.Camera.ZoomSensitivity
	g.locomotion.Forward, g.locomotion.Backward = cfg.Input.Keys()
	g.locomotion.Speed = cfg.Locomotion.Speed

	w := g.World.ECS()
	cams := ecs.NewMap1[components.Camera](w)
	if e := g.World.Scene.Camera; !e.IsZero() && w.Alive(e) && cams.HasAll(e) {
		cams.Get(e).FOV = cfg.Camera.FOV
	}

	g.logger.Info("config reloaded",
		zap.Float32("look_sensitivity", cfg.Camera.LookSensitivity),
		zap.Float32("zoom_sensitivity", cfg.Camera.ZoomSensitivity),
		zap.Float32("speed", cfg.Locomotion.Speed),
		zap.String("forward", cfg.Input.Forward),
		zap.String("backward", cfg.Input.Backward))
}
