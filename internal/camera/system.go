package camera

import (
	"orbitdemo/internal/components"
	"orbitdemo/internal/engine"

	"github.com/mlange-42/ark/ecs"
)

// Resolver finds the active orbit controller and the entity it tracks.
// Every lookup can fail; callers skip the frame when it does.
type Resolver struct {
	world       *ecs.World
	controllers *ecs.Map1[components.CameraController]
	transforms  *ecs.Map1[engine.Transform]
	filter      *ecs.Filter1[components.CameraController]
}

func NewResolver(w *ecs.World) *Resolver {
	return &Resolver{
		world:       w,
		controllers: ecs.NewMap1[components.CameraController](w),
		transforms:  ecs.NewMap1[engine.Transform](w),
		filter:      ecs.NewFilter1[components.CameraController](w),
	}
}

// Controller returns the camera named by the ActiveCamera resource. Without
// that resource it falls back to the only CameraController in the world, and
// finds nothing when there are zero or several.
func (r *Resolver) Controller() (ecs.Entity, *components.CameraController, bool) {
	if active, ok := engine.Resource[engine.ActiveCamera](r.world); ok && !active.Entity.IsZero() {
		e := active.Entity
		if !r.world.Alive(e) || !r.controllers.HasAll(e) {
			return ecs.Entity{}, nil, false
		}
		return e, r.controllers.Get(e), true
	}

	var found ecs.Entity
	count := 0
	query := r.filter.Query()
	for query.Next() {
		count++
		if count > 1 {
			query.Close()
			break
		}
		found = query.Entity()
	}
	if count != 1 {
		return ecs.Entity{}, nil, false
	}
	return found, r.controllers.Get(found), true
}

// Target resolves the tracked entity's transform. A target that is itself a
// camera controller does not resolve.
func (r *Resolver) Target(c *components.CameraController) (ecs.Entity, *engine.Transform, bool) {
	e, ok := c.Target.Resolve(r.world)
	if !ok || !r.transforms.HasAll(e) || r.controllers.HasAll(e) {
		return ecs.Entity{}, nil, false
	}
	return e, r.transforms.Get(e), true
}

// Transform returns the transform of a live entity, if it has one.
func (r *Resolver) Transform(e ecs.Entity) (*engine.Transform, bool) {
	if !r.world.Alive(e) || !r.transforms.HasAll(e) {
		return nil, false
	}
	return r.transforms.Get(e), true
}

// System drains pointer and scroll events into the active controller, then
// snaps the camera onto its orbit around the tracked entity.
type System struct {
	LookSensitivity float32
	ZoomSensitivity float32

	resolver *Resolver
}

func NewSystem(look, zoom float32) *System {
	return &System{
		LookSensitivity: look,
		ZoomSensitivity: zoom,
	}
}

func (s *System) Initialize(w *ecs.World) {
	s.resolver = NewResolver(w)
}

func (s *System) Update(w *ecs.World) {
	input, ok := engine.Resource[engine.Input](w)
	if !ok {
		return
	}

	camEntity, ctrl, ok := s.resolver.Controller()
	if !ok {
		// Nothing consumes them this frame; don't let them pile up.
		input.Motion.Drain(nil)
		input.Wheel.Drain(nil)
		return
	}

	input.Motion.Drain(func(ev engine.MouseMotion) {
		ApplyMotion(ctrl, ev, s.LookSensitivity)
	})
	input.Wheel.Drain(func(ev engine.MouseWheel) {
		ApplyWheel(ctrl, ev, s.ZoomSensitivity)
	})

	_, target, ok := s.resolver.Target(ctrl)
	if !ok {
		return
	}
	cam, ok := s.resolver.Transform(camEntity)
	if !ok {
		return
	}
	*cam = Orbit(*ctrl, target.Position, *cam)
}

func (s *System) Finalize(w *ecs.World) {}
