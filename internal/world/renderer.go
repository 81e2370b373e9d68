package world

import (
	_ "embed"
	"fmt"
	"image/color"
	"orbitdemo/internal/assets"
	"orbitdemo/internal/camera"
	"orbitdemo/internal/components"
	"orbitdemo/internal/engine"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
)

var (
	//go:embed shaders/lighting.vs
	lightingVS string
	//go:embed shaders/lighting.fs
	lightingFS string
)

var noseColor = color.RGBA{R: 230, G: 41, B: 55, A: 255}

// Stats describes the last drawn frame.
type Stats struct {
	Drawn     int
	Culled    int
	Fallbacks int
}

// Renderer draws every ModelRenderer and MeshRenderer through the lighting
// shader, seen from the active camera.
type Renderer struct {
	Shader rl.Shader
	Models *assets.Server[rl.Model]
	Stats  Stats
	// ShowColliders outlines every physics footprint.
	ShowColliders bool

	logger *zap.Logger
	meshes map[components.MeshRenderer]rl.Model

	locLightDir   int32
	locLightColor int32
	locAmbient    int32
	locViewPos    int32

	transforms *ecs.Map1[engine.Transform]
	cameras    *ecs.Map1[components.Camera]
	viewpoints *ecs.Filter2[engine.Transform, components.Camera]
	drawables  *ecs.Filter2[engine.Transform, components.ModelRenderer]
	primitives *ecs.Filter2[engine.Transform, components.MeshRenderer]
	lights     *ecs.Filter1[components.DirectionalLight]
	colliders  *ecs.Filter2[engine.Transform, components.Collider]
}

func NewRenderer(models *assets.Server[rl.Model], logger *zap.Logger) *Renderer {
	return &Renderer{
		Models: models,
		logger: logger,
		meshes: make(map[components.MeshRenderer]rl.Model),
	}
}

// Initialize compiles the shader and prepares queries. Requires a window.
func (r *Renderer) Initialize(w *ecs.World) error {
	r.Shader = rl.LoadShaderFromMemory(lightingVS, lightingFS)
	if !rl.IsShaderValid(r.Shader) {
		return fmt.Errorf("failed to compile lighting shader")
	}
	r.locLightDir = rl.GetShaderLocation(r.Shader, "lightDir")
	r.locLightColor = rl.GetShaderLocation(r.Shader, "lightColor")
	r.locAmbient = rl.GetShaderLocation(r.Shader, "ambient")
	r.locViewPos = rl.GetShaderLocation(r.Shader, "viewPos")

	r.transforms = ecs.NewMap1[engine.Transform](w)
	r.cameras = ecs.NewMap1[components.Camera](w)
	r.viewpoints = ecs.NewFilter2[engine.Transform, components.Camera](w)
	// A camera never draws itself.
	r.drawables = ecs.NewFilter2[engine.Transform, components.ModelRenderer](w).
		Without(ecs.C[components.Camera]())
	r.primitives = ecs.NewFilter2[engine.Transform, components.MeshRenderer](w)
	r.lights = ecs.NewFilter1[components.DirectionalLight](w)
	r.colliders = ecs.NewFilter2[engine.Transform, components.Collider](w)
	return nil
}

// loadModel is the asset loader for glTF scenes. raylib loads the whole file,
// so the label only shows up in logs.
func (r *Renderer) loadModel(path, label string) (rl.Model, error) {
	if _, err := os.Stat(path); err != nil {
		return rl.Model{}, err
	}
	model := rl.LoadModel(path)
	if !rl.IsModelValid(model) {
		return rl.Model{}, fmt.Errorf("raylib could not load %s", path)
	}
	mats := model.GetMaterials()
	for i := range mats {
		mats[i].Shader = r.Shader
	}
	r.logger.Info("model loaded",
		zap.String("path", path),
		zap.String("label", label),
		zap.Int32("meshes", model.MeshCount))
	return model, nil
}

// ResolveAssets loads anything queued since the last frame.
func (r *Renderer) ResolveAssets() {
	if !r.Models.Pending() {
		return
	}
	r.Models.Resolve(r.loadModel, func(path string, err error) {
		r.logger.Warn("model unavailable, drawing stand-in", zap.String("path", path), zap.Error(err))
	})
}

// ActiveCamera returns the viewpoint to render from: the ActiveCamera
// resource if it names a live camera, otherwise the first camera found.
func (r *Renderer) ActiveCamera(w *ecs.World) (engine.Transform, components.Camera, bool) {
	if active, ok := engine.Resource[engine.ActiveCamera](w); ok {
		e := active.Entity
		if !e.IsZero() && w.Alive(e) && r.transforms.HasAll(e) && r.cameras.HasAll(e) {
			return *r.transforms.Get(e), *r.cameras.Get(e), true
		}
	}

	query := r.viewpoints.Query()
	for query.Next() {
		tr, cam := query.Get()
		result, resultCam := *tr, *cam
		query.Close()
		return result, resultCam, true
	}
	return engine.Transform{}, components.Camera{}, false
}

// Camera3D converts an entity viewpoint into raylib's camera.
func Camera3D(tr engine.Transform, cam components.Camera) rl.Camera3D {
	target := tr.Position.Add(tr.Forward())
	c := rl.Camera3D{
		Position: vec3(tr.Position),
		Target:   vec3(target),
		Up:       vec3(tr.Up()),
		Fovy:     cam.FOV,
	}
	if cam.Projection == components.ProjectionOrthographic {
		c.Projection = rl.CameraOrthographic
	} else {
		c.Projection = rl.CameraPerspective
	}
	return c
}

// Draw renders the 3D scene. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(w *ecs.World) {
	r.ResolveAssets()
	r.Stats = Stats{}

	tr, cam, ok := r.ActiveCamera(w)
	if !ok {
		return
	}
	r.updateUniforms(w, tr.Position)

	aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))
	frustum := camera.ExtractFrustum(camera.ViewProjection(tr, cam, aspect))

	rl.BeginMode3D(Camera3D(tr, cam))

	meshQuery := r.primitives.Query()
	for meshQuery.Next() {
		mtr, mesh := meshQuery.Get()
		model := r.meshModel(*mesh)
		model.Transform = modelMatrix(*mtr)
		rl.DrawModel(model, rl.Vector3{}, 1.0, rl.White)
		r.Stats.Drawn++
	}

	query := r.drawables.Query()
	for query.Next() {
		mtr, mr := query.Get()
		center, radius := bounds(*mtr, *mr)
		if !frustum.ContainsSphere(center, radius) {
			r.Stats.Culled++
			continue
		}
		if model, loaded := r.Models.Get(mr.Model); loaded {
			model.Transform = modelMatrix(*mtr)
			rl.DrawModel(model, rl.Vector3{}, 1.0, mr.Tint)
		} else {
			drawFallback(*mtr, *mr)
			r.Stats.Fallbacks++
		}
		r.Stats.Drawn++
	}

	if r.ShowColliders {
		r.drawColliders()
	}

	rl.EndMode3D()
}

func (r *Renderer) drawColliders() {
	query := r.colliders.Query()
	for query.Next() {
		tr, col := query.Get()
		center := tr.Position.Add(mgl32.Vec3{0, 0.02, 0})
		switch col.Shape {
		case components.ColliderBox:
			rl.DrawCubeWires(vec3(center), col.Size.X(), 0.04, col.Size.Y(), rl.Lime)
		default:
			rl.DrawCircle3D(vec3(center), col.Radius, rl.Vector3{X: 1}, 90, rl.Lime)
		}
	}
}

func (r *Renderer) updateUniforms(w *ecs.World, viewPos mgl32.Vec3) {
	light := components.NewDirectionalLight()
	query := r.lights.Query()
	for query.Next() {
		light = *query.Get()
		query.Close()
		break
	}

	ambient := components.AmbientLight{Color: rl.White, Brightness: 0.2}
	if res, ok := engine.Resource[components.AmbientLight](w); ok {
		ambient = *res
	}

	dir := light.Direction
	rl.SetShaderValue(r.Shader, r.locLightDir, []float32{dir.X(), dir.Y(), dir.Z()}, rl.ShaderUniformVec3)
	rl.SetShaderValue(r.Shader, r.locLightColor, light.ColorFloat(), rl.ShaderUniformVec4)
	rl.SetShaderValue(r.Shader, r.locAmbient, ambient.ColorFloat(), rl.ShaderUniformVec4)
	rl.SetShaderValue(r.Shader, r.locViewPos, []float32{viewPos.X(), viewPos.Y(), viewPos.Z()}, rl.ShaderUniformVec3)
}

// meshModel builds the GPU model for a primitive on first use.
func (r *Renderer) meshModel(mesh components.MeshRenderer) rl.Model {
	if model, ok := r.meshes[mesh]; ok {
		return model
	}

	size := mesh.Size
	var m rl.Mesh
	switch mesh.MeshType {
	case components.MeshSphere:
		m = rl.GenMeshSphere(size.X()/2, 16, 16)
	case components.MeshPlane:
		m = rl.GenMeshPlane(size.X(), size.Z(), 1, 1)
	default:
		m = rl.GenMeshCube(size.X(), size.Y(), size.Z())
	}

	model := rl.LoadModelFromMesh(m)
	model.Materials.Shader = r.Shader
	model.Materials.Maps.Color = mesh.Color
	r.meshes[mesh] = model
	return model
}

func (r *Renderer) Unload() {
	r.Models.Unload(rl.UnloadModel)
	for key, model := range r.meshes {
		rl.UnloadModel(model)
		delete(r.meshes, key)
	}
	if rl.IsShaderValid(r.Shader) {
		rl.UnloadShader(r.Shader)
	}
}

// modelMatrix copies the transform's matrix into raylib's layout. Both are
// column-major.
func modelMatrix(tr engine.Transform) rl.Matrix {
	m := tr.Matrix()
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// bounds is a sphere around the stand-in primitive, used for culling.
func bounds(tr engine.Transform, mr components.ModelRenderer) (mgl32.Vec3, float32) {
	size := mr.FallbackSize
	if size.Len() == 0 {
		size = mgl32.Vec3{1, 1, 1}
	}
	maxScale := max(tr.Scale.X(), tr.Scale.Y(), tr.Scale.Z())
	center := tr.Position.Add(mgl32.Vec3{0, size.Y() / 2 * maxScale, 0})
	return center, size.Len() / 2 * maxScale
}

func drawFallback(tr engine.Transform, mr components.ModelRenderer) {
	pos := tr.Position
	size := mr.FallbackSize
	tint := mr.Tint

	switch mr.Fallback {
	case components.PrimitiveCapsule:
		radius := size.X() / 2
		start := pos.Add(mgl32.Vec3{0, radius, 0})
		end := pos.Add(mgl32.Vec3{0, size.Y() - radius, 0})
		rl.DrawCapsule(vec3(start), vec3(end), radius, 12, 6, rl.SkyBlue)
		// Nose points where a loaded model would face.
		eye := pos.Add(mgl32.Vec3{0, size.Y() * 0.8, 0})
		rl.DrawLine3D(vec3(eye), vec3(eye.Add(tr.ModelFront().Mul(radius+0.3))), noseColor)
	case components.PrimitiveTree:
		trunk := size.Y() * 0.4
		rl.DrawCylinder(vec3(pos), size.X()/3, size.X()/2, trunk, 8, rl.Brown)
		canopy := pos.Add(mgl32.Vec3{0, trunk + size.Y()*0.3, 0})
		rl.DrawSphere(vec3(canopy), size.Y()*0.3, rl.DarkGreen)
	case components.PrimitiveCube:
		center := pos.Add(mgl32.Vec3{0, size.Y() / 2, 0})
		rl.DrawCube(vec3(center), size.X(), size.Y(), size.Z(), tint)
		rl.DrawCubeWires(vec3(center), size.X(), size.Y(), size.Z(), rl.DarkGray)
	}
}

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}
