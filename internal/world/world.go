package world

import (
	"orbitdemo/internal/assets"
	"orbitdemo/internal/config"
	"orbitdemo/internal/engine"
	"orbitdemo/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark-tools/app"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
)

// World owns the ECS app, the spawned scene and the renderer that draws it.
type World struct {
	App      *app.App
	Models   *assets.Server[rl.Model]
	Renderer *Renderer
	Scene    scene.Entities

	logger  *zap.Logger
	elapsed float64
	frame   uint64
}

func New(cfg *config.Config, logger *zap.Logger) *World {
	tool := app.New(1024).Seed(123)

	models := assets.NewServer[rl.Model](cfg.Scene.AssetDir)
	return &World{
		App:      tool,
		Models:   models,
		Renderer: NewRenderer(models, logger.Named("render")),
		logger:   logger,
	}
}

func (w *World) ECS() *ecs.World {
	return &w.App.World
}

// Initialize spawns the scene, registers systems in the order given and
// prepares the renderer. Requires a window.
func (w *World) Initialize(cfg *config.Config, systems ...app.System) error {
	w.Scene = scene.Setup(w.ECS(), *cfg, w.Models)

	for _, sys := range systems {
		w.App.AddSystem(sys)
	}
	w.App.Initialize()

	if err := w.Renderer.Initialize(w.ECS()); err != nil {
		return err
	}
	w.Renderer.ResolveAssets()

	w.logger.Info("scene ready",
		zap.Int("systems", len(systems)),
		zap.Any("player", w.Scene.Player),
		zap.Any("camera", w.Scene.Camera))
	return nil
}

// Update publishes the frame clock and runs every system once.
func (w *World) Update(dt float32) {
	w.elapsed += float64(dt)
	w.frame++
	engine.SetResource(w.ECS(), &engine.Time{Delta: dt, Elapsed: w.elapsed, Frame: w.frame})
	w.App.Update()
}

func (w *World) Input() *engine.Input {
	in, ok := engine.Resource[engine.Input](w.ECS())
	if !ok {
		return engine.SetResource(w.ECS(), &engine.Input{})
	}
	return in
}

func (w *World) Draw() {
	w.Renderer.Draw(w.ECS())
}

func (w *World) Unload() {
	w.App.Finalize()
	w.Renderer.Unload()
}
