package components

import (
	"math"
	"orbitdemo/internal/engine"

	"github.com/mlange-42/ark/ecs"
)

// Orbit limits. Pitch stops short of the poles so the look-at basis never
// degenerates.
const (
	MaxPitch        = float32(math.Pi / 2 * 0.9)
	MinDistance     = float32(2.0)
	MaxDistance     = float32(10.0)
	DefaultDistance = float32(5.0)
)

// CameraController orbits its camera around Target.
// Yaw and Pitch are radians; Distance is in world units.
type CameraController struct {
	Yaw      float32
	Pitch    float32
	Distance float32
	Target   engine.EntityRef
}

func NewCameraController(target ecs.Entity) CameraController {
	return CameraController{
		Distance: DefaultDistance,
		Target:   engine.RefTo(target),
	}
}
