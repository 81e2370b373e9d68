package components

import "github.com/go-gl/mathgl/mgl32"

type BodyKind int

const (
	BodyDynamic BodyKind = iota
	BodyKinematic
	BodyStatic
)

func (k BodyKind) String() string {
	switch k {
	case BodyKinematic:
		return "kinematic"
	case BodyStatic:
		return "static"
	default:
		return "dynamic"
	}
}

type Rigidbody struct {
	Kind     BodyKind
	Velocity mgl32.Vec3
	Mass     float32
	// LockRotation keeps the physics step from turning the body; only
	// gameplay code orients it.
	LockRotation bool
}

func NewRigidbody() Rigidbody {
	return Rigidbody{
		Kind:         BodyDynamic,
		Mass:         1.0,
		LockRotation: true,
	}
}

func NewStaticBody() Rigidbody {
	return Rigidbody{Kind: BodyStatic}
}

type ColliderShape int

const (
	ColliderCircle ColliderShape = iota
	ColliderBox
)

// Collider is a footprint on the ground plane. Circles use Radius, boxes
// use Size (X by Z).
type Collider struct {
	Shape      ColliderShape
	Radius     float32
	Size       mgl32.Vec2
	Friction   float32
	Elasticity float32
}

func NewCircleCollider(radius float32) Collider {
	return Collider{Shape: ColliderCircle, Radius: radius, Friction: 0.5}
}

func NewBoxCollider(width, depth float32) Collider {
	return Collider{Shape: ColliderBox, Size: mgl32.Vec2{width, depth}, Friction: 0.5}
}
