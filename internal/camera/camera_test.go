package camera

import (
	"math"
	"orbitdemo/internal/components"
	"orbitdemo/internal/engine"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
)

const eps = 1e-4

type scene struct {
	world  ecs.World
	player ecs.Entity
	camera ecs.Entity
	input  *engine.Input
}

func newScene(t *testing.T, setActive bool) *scene {
	t.Helper()
	s := &scene{world: ecs.NewWorld()}
	w := &s.world

	playerTransform := engine.NewTransform(mgl32.Vec3{})
	s.player = ecs.NewMap1[engine.Transform](w).NewEntity(&playerTransform)

	camTransform := engine.NewTransform(mgl32.Vec3{5, 5, 5}).LookingAt(mgl32.Vec3{}, engine.WorldUp)
	ctrl := components.NewCameraController(s.player)
	s.camera = ecs.NewMap2[engine.Transform, components.CameraController](w).NewEntity(&camTransform, &ctrl)

	s.input = engine.SetResource(w, &engine.Input{})
	if setActive {
		engine.SetResource(w, &engine.ActiveCamera{Entity: s.camera})
	}
	return s
}

func (s *scene) controller() *components.CameraController {
	return ecs.NewMap1[components.CameraController](&s.world).Get(s.camera)
}

func (s *scene) transform(e ecs.Entity) engine.Transform {
	return *ecs.NewMap1[engine.Transform](&s.world).Get(e)
}

func runSystem(w *ecs.World) *System {
	sys := NewSystem(DefaultLookSensitivity, DefaultZoomSensitivity)
	sys.Initialize(w)
	sys.Update(w)
	return sys
}

func TestNewCameraControllerDefaults(t *testing.T) {
	c := components.NewCameraController(ecs.Entity{})
	if c.Yaw != 0 || c.Pitch != 0 || c.Distance != 5 {
		t.Errorf("Expected yaw 0, pitch 0, distance 5; got %v, %v, %v", c.Yaw, c.Pitch, c.Distance)
	}
}

func TestPitchAlwaysClamped(t *testing.T) {
	deltas := []float32{-100000, -1000, -157, -1, 0, 0.5, 1, 141, 157, 1000, 100000}
	for _, start := range []float32{-components.MaxPitch, 0, components.MaxPitch} {
		for _, dy := range deltas {
			c := components.CameraController{Pitch: start, Distance: 5}
			ApplyMotion(&c, engine.MouseMotion{DY: dy}, DefaultLookSensitivity)
			if c.Pitch < -components.MaxPitch || c.Pitch > components.MaxPitch {
				t.Errorf("start %v, dy %v: pitch %v outside ±%v", start, dy, c.Pitch, components.MaxPitch)
			}
		}
	}
}

func TestYawIsNotClamped(t *testing.T) {
	c := components.CameraController{Distance: 5}
	for i := 0; i < 10; i++ {
		ApplyMotion(&c, engine.MouseMotion{DX: -1000}, DefaultLookSensitivity)
	}
	if !mgl32.FloatEqualThreshold(c.Yaw, 100, eps) {
		t.Errorf("Expected yaw to accumulate to 100, got %v", c.Yaw)
	}
}

func TestDistanceAlwaysClamped(t *testing.T) {
	for _, dy := range []float32{-1e6, -500, -301, -1, 0, 1, 499, 501, 1e6} {
		c := components.CameraController{Distance: components.DefaultDistance}
		ApplyWheel(&c, engine.MouseWheel{Y: dy}, DefaultZoomSensitivity)
		if c.Distance < components.MinDistance || c.Distance > components.MaxDistance {
			t.Errorf("dy %v: distance %v outside [2, 10]", dy, c.Distance)
		}
	}

	c := components.CameraController{Distance: 5}
	ApplyWheel(&c, engine.MouseWheel{Y: 100}, DefaultZoomSensitivity)
	if !mgl32.FloatEqualThreshold(c.Distance, 6, eps) {
		t.Errorf("Expected distance 6 after +100 scroll, got %v", c.Distance)
	}
}

func TestPitchConvergesToUpperClamp(t *testing.T) {
	c := components.CameraController{Distance: 5}
	for i := 0; i < 5; i++ {
		ApplyMotion(&c, engine.MouseMotion{DY: 1000}, DefaultLookSensitivity)
		if c.Pitch != components.MaxPitch {
			t.Fatalf("iteration %d: pitch %v, want exactly %v", i, c.Pitch, components.MaxPitch)
		}
	}
}

func TestOrbitAtDefaults(t *testing.T) {
	c := components.NewCameraController(ecs.Entity{})
	tr := Orbit(c, mgl32.Vec3{}, engine.NewTransform(mgl32.Vec3{5, 5, 5}))

	if !tr.Position.ApproxEqualThreshold(mgl32.Vec3{0, 0, 5}, eps) {
		t.Errorf("Expected camera at (0,0,5), got %v", tr.Position)
	}
	if !tr.Forward().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, eps) {
		t.Errorf("Expected camera to look at the origin, forward %v", tr.Forward())
	}
}

func TestOrbitFollowsTarget(t *testing.T) {
	c := components.CameraController{Yaw: float32(math.Pi / 2), Pitch: 0.5, Distance: 4}
	target := mgl32.Vec3{3, 1, -2}
	tr := Orbit(c, target, engine.NewTransform(mgl32.Vec3{}))

	if got := tr.Position.Sub(target).Len(); !mgl32.FloatEqualThreshold(got, 4, eps) {
		t.Errorf("Camera should sit at distance 4 from target, got %v", got)
	}
	want := target.Sub(tr.Position).Normalize()
	if !tr.Forward().ApproxEqualThreshold(want, eps) {
		t.Errorf("Camera should face target: forward %v, want %v", tr.Forward(), want)
	}
	if tr.Position.Y() <= target.Y() {
		t.Errorf("Positive pitch should raise the camera, got %v", tr.Position)
	}
}

func TestHeading(t *testing.T) {
	if h := Heading(0); !h.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, eps) {
		t.Errorf("Heading(0) = %v", h)
	}
	if h := Heading(float32(math.Pi / 2)); !h.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, eps) {
		t.Errorf("Heading(pi/2) = %v", h)
	}
}

func TestSystemSnapsCamera(t *testing.T) {
	for _, active := range []bool{true, false} {
		s := newScene(t, active)
		runSystem(&s.world)

		cam := s.transform(s.camera)
		if !cam.Position.ApproxEqualThreshold(mgl32.Vec3{0, 0, 5}, eps) {
			t.Errorf("active=%v: expected camera at (0,0,5), got %v", active, cam.Position)
		}
	}
}

func TestSystemProcessesEventsInOrder(t *testing.T) {
	s := newScene(t, true)
	s.input.Motion.Send(engine.MouseMotion{DX: 10, DY: 1000})
	s.input.Motion.Send(engine.MouseMotion{DX: 10, DY: -20})
	s.input.Wheel.Send(engine.MouseWheel{Y: 1000})
	s.input.Wheel.Send(engine.MouseWheel{Y: -300})

	runSystem(&s.world)

	c := s.controller()
	// The first event pins pitch at the clamp, the second pulls it back.
	wantPitch := components.MaxPitch - 0.2
	if !mgl32.FloatEqualThreshold(c.Pitch, wantPitch, eps) {
		t.Errorf("Expected pitch %v, got %v", wantPitch, c.Pitch)
	}
	if !mgl32.FloatEqualThreshold(c.Yaw, -0.2, eps) {
		t.Errorf("Expected yaw -0.2, got %v", c.Yaw)
	}
	// 5 + 10 clamps to 10, then -3 gives 7.
	if !mgl32.FloatEqualThreshold(c.Distance, 7, eps) {
		t.Errorf("Expected distance 7, got %v", c.Distance)
	}
	if s.input.Motion.Len() != 0 || s.input.Wheel.Len() != 0 {
		t.Error("Events should be drained after the update")
	}

	cam := s.transform(s.camera)
	if got := cam.Position.Len(); !mgl32.FloatEqualThreshold(got, 7, eps) {
		t.Errorf("Camera should orbit at distance 7, got %v", got)
	}
}

func TestSystemNoController(t *testing.T) {
	w := ecs.NewWorld()
	playerTransform := engine.NewTransform(mgl32.Vec3{1, 2, 3})
	player := ecs.NewMap1[engine.Transform](&w).NewEntity(&playerTransform)
	input := engine.SetResource(&w, &engine.Input{})
	input.Motion.Send(engine.MouseMotion{DX: 5, DY: 5})
	input.Wheel.Send(engine.MouseWheel{Y: 5})

	runSystem(&w)

	got := *ecs.NewMap1[engine.Transform](&w).Get(player)
	if got != playerTransform {
		t.Errorf("Transform changed without a controller: %v", got)
	}
	if input.Motion.Len() != 0 || input.Wheel.Len() != 0 {
		t.Error("Events should be discarded when nothing consumes them")
	}
}

func TestSystemTargetGone(t *testing.T) {
	s := newScene(t, true)
	before := s.transform(s.camera)
	s.world.RemoveEntity(s.player)
	s.input.Wheel.Send(engine.MouseWheel{Y: 100})

	runSystem(&s.world)

	if after := s.transform(s.camera); after != before {
		t.Errorf("Camera moved with no target: %v -> %v", before, after)
	}
	if c := s.controller(); !mgl32.FloatEqualThreshold(c.Distance, 6, eps) {
		t.Errorf("Orbit parameters still follow input, distance %v", c.Distance)
	}
}

func TestSystemTargetIsCamera(t *testing.T) {
	s := newScene(t, true)
	ctrl := s.controller()
	ctrl.Target = engine.RefTo(s.camera)
	before := s.transform(s.camera)

	runSystem(&s.world)

	if after := s.transform(s.camera); after != before {
		t.Errorf("A camera must not orbit itself: %v -> %v", before, after)
	}
}

func TestSystemSeveralControllersWithoutActive(t *testing.T) {
	s := newScene(t, false)
	extraTransform := engine.NewTransform(mgl32.Vec3{9, 9, 9})
	extraCtrl := components.NewCameraController(s.player)
	ecs.NewMap2[engine.Transform, components.CameraController](&s.world).NewEntity(&extraTransform, &extraCtrl)
	before := s.transform(s.camera)

	runSystem(&s.world)

	if after := s.transform(s.camera); after != before {
		t.Errorf("Ambiguous controllers should be a no-op: %v -> %v", before, after)
	}
}

func TestSystemStaleActiveCamera(t *testing.T) {
	s := newScene(t, true)
	s.world.RemoveEntity(s.camera)

	// Must not panic or fall back to some other controller.
	runSystem(&s.world)
}

func TestSystemWithoutInputResource(t *testing.T) {
	w := ecs.NewWorld()
	runSystem(&w)
}
