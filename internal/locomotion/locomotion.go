package locomotion

import (
	"orbitdemo/internal/camera"
	"orbitdemo/internal/components"
	"orbitdemo/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
)

const DefaultSpeed = float32(1.0)

// System turns the tracked entity to face along the camera's heading while a
// movement key is held, and writes its horizontal velocity.
//
// Forward faces away from the camera's heading vector and moves along -v;
// backward does the opposite. When both keys are held backward wins.
type System struct {
	Forward  engine.KeyCode
	Backward engine.KeyCode
	Speed    float32

	resolver *camera.Resolver
	bodies   *ecs.Map1[components.Rigidbody]
}

func NewSystem(forward, backward engine.KeyCode, speed float32) *System {
	return &System{
		Forward:  forward,
		Backward: backward,
		Speed:    speed,
	}
}

func (s *System) Initialize(w *ecs.World) {
	s.resolver = camera.NewResolver(w)
	s.bodies = ecs.NewMap1[components.Rigidbody](w)
}

func (s *System) Update(w *ecs.World) {
	input, ok := engine.Resource[engine.Input](w)
	if !ok {
		return
	}
	_, ctrl, ok := s.resolver.Controller()
	if !ok {
		return
	}
	target, transform, ok := s.resolver.Target(ctrl)
	if !ok {
		return
	}

	var body *components.Rigidbody
	if s.bodies.HasAll(target) {
		body = s.bodies.Get(target)
	}

	heading := camera.Heading(ctrl.Yaw)
	moved := false

	if input.Keys.Pressed(s.Forward) {
		transform.LookAt(transform.Position.Add(heading), engine.WorldUp)
		setHorizontal(body, heading.Mul(-s.Speed))
		moved = true
	}
	if input.Keys.Pressed(s.Backward) {
		transform.LookAt(transform.Position.Sub(heading), engine.WorldUp)
		setHorizontal(body, heading.Mul(s.Speed))
		moved = true
	}

	if !moved {
		setHorizontal(body, mgl32.Vec3{})
	}
}

func (s *System) Finalize(w *ecs.World) {}

// setHorizontal overwrites X and Z of the body's velocity and keeps Y.
func setHorizontal(body *components.Rigidbody, v mgl32.Vec3) {
	if body == nil || body.Kind == components.BodyStatic {
		return
	}
	body.Velocity[0] = v.X()
	body.Velocity[2] = v.Z()
}
