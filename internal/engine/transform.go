package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform places an entity in the world. Forward is local -Z, up is local +Y.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

var (
	WorldUp      = mgl32.Vec3{0, 1, 0}
	localForward = mgl32.Vec3{0, 0, -1}
)

func NewTransform(position mgl32.Vec3) Transform {
	return Transform{
		Position: position,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Forward returns the direction the transform faces in world space.
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(localForward)
}

// ModelFront is the side a glTF model shows toward its travel: local +Z,
// opposite to Forward.
func (t Transform) ModelFront() mgl32.Vec3 {
	return t.Forward().Mul(-1)
}

// Up returns the transform's local up axis in world space.
func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(WorldUp)
}

// LookAt rotates the transform so Forward points at target.
// A degenerate request (target on top of the position, or a direction
// parallel to up) keeps the current rotation and reports false.
func (t *Transform) LookAt(target, up mgl32.Vec3) bool {
	back := t.Position.Sub(target)
	if back.Len() < 1e-6 {
		return false
	}
	back = back.Normalize()

	right := up.Cross(back)
	if right.Len() < 1e-6 {
		return false
	}
	right = right.Normalize()
	trueUp := back.Cross(right)

	q := mgl32.Mat4ToQuat(mgl32.Mat3FromCols(right, trueUp, back).Mat4()).Normalize()
	if isNaN(q.W) || isNaN(q.V[0]) || isNaN(q.V[1]) || isNaN(q.V[2]) {
		return false
	}
	t.Rotation = q
	return true
}

// LookingAt is the builder form of LookAt.
func (t Transform) LookingAt(target, up mgl32.Vec3) Transform {
	t.LookAt(target, up)
	return t
}

// Matrix returns the model matrix (translate * rotate * scale).
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

func isNaN(f float32) bool {
	return math.IsNaN(float64(f))
}
