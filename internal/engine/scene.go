package engine

import "github.com/mlange-42/ark/ecs"

// Name labels an entity for logs and lookups.
type Name string

// ActiveCamera names the camera entity the orbit controller drives.
type ActiveCamera struct {
	Entity ecs.Entity
}

// Time is the frame clock, written by the game loop before systems run.
type Time struct {
	Delta   float32
	Elapsed float64
	Frame   uint64
}

// Resource returns the scene-level resource of type T, if one was added.
func Resource[T any](w *ecs.World) (*T, bool) {
	res := ecs.NewResource[T](w)
	if !res.Has() {
		return nil, false
	}
	return res.Get(), true
}

// SetResource adds the resource, or overwrites the existing value in place.
func SetResource[T any](w *ecs.World, value *T) *T {
	res := ecs.NewResource[T](w)
	if res.Has() {
		current := res.Get()
		*current = *value
		return current
	}
	res.Add(value)
	return value
}

// FindByName returns the first live entity carrying the given Name.
func FindByName(w *ecs.World, name string) (ecs.Entity, bool) {
	filter := ecs.NewFilter1[Name](w)
	query := filter.Query()
	for query.Next() {
		if string(*query.Get()) == name {
			e := query.Entity()
			query.Close()
			return e, true
		}
	}
	return ecs.Entity{}, false
}
