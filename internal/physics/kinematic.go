package physics

import (
	"orbitdemo/internal/components"
	"orbitdemo/internal/engine"

	"github.com/mlange-42/ark/ecs"
)

// Integrator moves bodies by their velocity without collisions. It stands in
// for PhysicsWorld when physics is disabled so locomotion still translates.
type Integrator struct {
	filter *ecs.Filter2[engine.Transform, components.Rigidbody]
}

func NewIntegrator() *Integrator {
	return &Integrator{}
}

func (in *Integrator) Initialize(w *ecs.World) {
	in.filter = ecs.NewFilter2[engine.Transform, components.Rigidbody](w)
}

func (in *Integrator) Update(w *ecs.World) {
	tm, ok := engine.Resource[engine.Time](w)
	if !ok || tm.Delta <= 0 {
		return
	}

	query := in.filter.Query()
	for query.Next() {
		transform, rb := query.Get()
		if rb.Kind == components.BodyStatic {
			continue
		}
		transform.Position = transform.Position.Add(rb.Velocity.Mul(tm.Delta))

		// Floor at y=0
		if transform.Position.Y() < 0 {
			transform.Position[1] = 0
			rb.Velocity[1] = 0
		}
	}
}

func (in *Integrator) Finalize(w *ecs.World) {}
