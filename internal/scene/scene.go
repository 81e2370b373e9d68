// Package scene spawns the demo's entities and scene-level resources.
package scene

import (
	"image/color"
	"orbitdemo/internal/assets"
	"orbitdemo/internal/components"
	"orbitdemo/internal/config"
	"orbitdemo/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
)

// ModelLoader hands out asset handles; the renderer resolves them later.
type ModelLoader interface {
	Load(path string) assets.Handle
}

// Entities are the handles of everything Setup spawned.
type Entities struct {
	Player ecs.Entity
	Camera ecs.Entity
	Tree   ecs.Entity
	Ground ecs.Entity
	Light  ecs.Entity
}

var (
	CameraStart = mgl32.Vec3{5, 5, 5}
	TreeStart   = mgl32.Vec3{2, 0, 0}

	playerSize = mgl32.Vec3{0.8, 1.8, 0.8}
	treeSize   = mgl32.Vec3{0.6, 2.5, 0.6}
	groundTint = color.RGBA{R: 96, G: 128, B: 80, A: 255}
)

const (
	PlayerRadius = float32(0.4)
	TreeRadius   = float32(0.3)
)

// Setup populates w with the player, the orbit camera tracking it, a tree, the
// ground and a light, and installs the ActiveCamera, AmbientLight, Input and
// Time resources.
func Setup(w *ecs.World, cfg config.Config, models ModelLoader) Entities {
	var ents Entities

	{
		name := engine.Name("Player")
		tr := engine.NewTransform(mgl32.Vec3{})
		mr := components.NewModelRenderer(models.Load(cfg.Scene.PlayerModel), components.PrimitiveCapsule, playerSize)
		tag := components.Player{}
		rb := components.NewRigidbody()
		col := components.NewCircleCollider(PlayerRadius)
		ents.Player = ecs.NewMap6[engine.Name, engine.Transform, components.ModelRenderer, components.Player, components.Rigidbody, components.Collider](w).
			NewEntity(&name, &tr, &mr, &tag, &rb, &col)
	}

	{
		name := engine.Name("Camera")
		tr := engine.NewTransform(CameraStart).LookingAt(mgl32.Vec3{}, engine.WorldUp)
		cam := components.NewCamera(cfg.Camera.FOV)
		ctrl := components.NewCameraController(ents.Player)
		ents.Camera = ecs.NewMap4[engine.Name, engine.Transform, components.Camera, components.CameraController](w).
			NewEntity(&name, &tr, &cam, &ctrl)
	}

	if cfg.Scene.TreeModel != "" {
		name := engine.Name("Tree")
		tr := engine.NewTransform(TreeStart)
		mr := components.NewModelRenderer(models.Load(cfg.Scene.TreeModel), components.PrimitiveTree, treeSize)
		rb := components.NewStaticBody()
		col := components.NewCircleCollider(TreeRadius)
		ents.Tree = ecs.NewMap5[engine.Name, engine.Transform, components.ModelRenderer, components.Rigidbody, components.Collider](w).
			NewEntity(&name, &tr, &mr, &rb, &col)
	}

	{
		name := engine.Name("Ground")
		tr := engine.NewTransform(mgl32.Vec3{})
		size := cfg.Scene.GroundSize
		mesh := components.NewMeshRenderer(components.MeshPlane, groundTint, mgl32.Vec3{size, 0, size})
		ents.Ground = ecs.NewMap3[engine.Name, engine.Transform, components.MeshRenderer](w).
			NewEntity(&name, &tr, &mesh)
	}

	{
		name := engine.Name("Sun")
		light := components.NewDirectionalLight()
		ents.Light = ecs.NewMap2[engine.Name, components.DirectionalLight](w).
			NewEntity(&name, &light)
	}

	engine.SetResource(w, &engine.ActiveCamera{Entity: ents.Camera})
	engine.SetResource(w, &components.AmbientLight{
		Color:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Brightness: cfg.Scene.Ambient,
	})
	engine.SetResource(w, &engine.Input{})
	engine.SetResource(w, &engine.Time{})

	return ents
}
