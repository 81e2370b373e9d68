package components

type Projection int

const (
	ProjectionPerspective Projection = iota
	ProjectionOrthographic
)

// Camera marks an entity as a viewpoint. Its Transform supplies position and
// orientation.
type Camera struct {
	FOV        float32 // vertical, degrees
	Near       float32
	Far        float32
	Projection Projection
}

func NewCamera(fov float32) Camera {
	return Camera{
		FOV:        fov,
		Near:       0.1,
		Far:        1000.0,
		Projection: ProjectionPerspective,
	}
}
