package engine

import "github.com/mlange-42/ark/ecs"

// EntityRef is a non-owning reference to another entity.
// Holding one never keeps the target alive; resolve it every time it is used.
//
// Example:
//
//	if e, ok := ctrl.Target.Resolve(w); ok {
//	    // e is alive this frame
//	}
type EntityRef struct {
	Entity ecs.Entity
}

func RefTo(e ecs.Entity) EntityRef {
	return EntityRef{Entity: e}
}

// Resolve returns the referenced entity if it is set and still alive.
func (r EntityRef) Resolve(w *ecs.World) (ecs.Entity, bool) {
	if w == nil || r.Entity.IsZero() {
		return ecs.Entity{}, false
	}
	if !w.Alive(r.Entity) {
		return ecs.Entity{}, false
	}
	return r.Entity, true
}
