package camera

import (
	"math"
	"orbitdemo/internal/components"
	"orbitdemo/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
)

// Default input sensitivities, radians (or world units) per input unit.
const (
	DefaultLookSensitivity = float32(0.01)
	DefaultZoomSensitivity = float32(0.01)
)

// ApplyMotion turns a pointer delta into orbit rotation.
// Moving the pointer down raises the camera; moving it right swings it left.
func ApplyMotion(c *components.CameraController, ev engine.MouseMotion, sensitivity float32) {
	c.Pitch = mgl32.Clamp(c.Pitch+ev.DY*sensitivity, -components.MaxPitch, components.MaxPitch)
	c.Yaw -= ev.DX * sensitivity
}

// ApplyWheel zooms the orbit in or out.
func ApplyWheel(c *components.CameraController, ev engine.MouseWheel, sensitivity float32) {
	c.Distance = mgl32.Clamp(c.Distance+ev.Y*sensitivity, components.MinDistance, components.MaxDistance)
}

// Offset is the camera position relative to the orbit target.
func Offset(c components.CameraController) mgl32.Vec3 {
	sinYaw, cosYaw := sincos(c.Yaw)
	sinPitch, cosPitch := sincos(c.Pitch)
	return mgl32.Vec3{
		sinYaw * cosPitch,
		sinPitch,
		cosYaw * cosPitch,
	}.Mul(c.Distance)
}

// Orbit places current on the orbit around target and aims it at target.
// Scale is preserved, and a degenerate aim keeps the previous rotation.
func Orbit(c components.CameraController, target mgl32.Vec3, current engine.Transform) engine.Transform {
	current.Position = target.Add(Offset(c))
	current.LookAt(target, engine.WorldUp)
	return current
}

// Heading is the horizontal unit vector from the target toward the camera.
// Pitch is ignored.
func Heading(yaw float32) mgl32.Vec3 {
	s, c := sincos(yaw)
	return mgl32.Vec3{s, 0, c}
}

func sincos(rad float32) (float32, float32) {
	s, c := math.Sincos(float64(rad))
	return float32(s), float32(c)
}
