package physics

import (
	"math"
	"orbitdemo/internal/components"
	"orbitdemo/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
)

// The simulation runs on the ground plane: cp's X is world X, cp's Y is world Z.
// Height is integrated separately and rests on y=0.

const (
	DefaultTimestep    = 1.0 / 120.0
	DefaultMaxSubsteps = 8
	boundsRadius       = 0.1
)

type Config struct {
	Timestep    float64
	MaxSubsteps int
	// GroundSize is the edge length of the square walkable area, centered on
	// the origin. Zero leaves the plane unbounded.
	GroundSize float64
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	kind   components.BodyKind
}

// PhysicsWorld mirrors every entity with Transform, Rigidbody and Collider
// into a cp space and steps it at a fixed rate.
type PhysicsWorld struct {
	cfg         Config
	space       *cp.Space
	bodies      map[ecs.Entity]*bodyInfo
	bounds      []*cp.Shape
	accumulator float64
	logger      *zap.Logger

	filter *ecs.Filter3[engine.Transform, components.Rigidbody, components.Collider]
}

func NewPhysicsWorld(cfg Config, logger *zap.Logger) *PhysicsWorld {
	if cfg.Timestep <= 0 {
		cfg.Timestep = DefaultTimestep
	}
	if cfg.MaxSubsteps <= 0 {
		cfg.MaxSubsteps = DefaultMaxSubsteps
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PhysicsWorld{
		cfg:    cfg,
		bodies: make(map[ecs.Entity]*bodyInfo),
		logger: logger,
	}
}

func (pw *PhysicsWorld) Initialize(w *ecs.World) {
	pw.filter = ecs.NewFilter3[engine.Transform, components.Rigidbody, components.Collider](w)

	pw.space = cp.NewSpace()
	pw.space.Iterations = 20
	pw.space.SetGravity(cp.Vector{})
	pw.addBounds()

	pw.logger.Debug("physics space ready",
		zap.Float64("timestep", pw.cfg.Timestep),
		zap.Int("max_substeps", pw.cfg.MaxSubsteps),
		zap.Float64("ground_size", pw.cfg.GroundSize))
}

func (pw *PhysicsWorld) Update(w *ecs.World) {
	tm, ok := engine.Resource[engine.Time](w)
	if !ok || tm.Delta <= 0 || pw.space == nil {
		return
	}

	pw.cleanupEntities(w)
	pw.syncEntities()

	simulated := pw.Step(float64(tm.Delta))
	if simulated == 0 {
		return
	}
	pw.syncTransforms(float32(simulated))
}

func (pw *PhysicsWorld) Finalize(w *ecs.World) {
	for e, info := range pw.bodies {
		pw.removeBody(info)
		delete(pw.bodies, e)
	}
	pw.space = nil
}

// Step advances the space by whole timesteps covering dt, carrying the
// remainder into the next call. It returns the simulated time. Frames longer
// than MaxSubsteps timesteps drop the excess.
func (pw *PhysicsWorld) Step(dt float64) float64 {
	pw.accumulator += dt
	steps := 0
	for pw.accumulator >= pw.cfg.Timestep && steps < pw.cfg.MaxSubsteps {
		pw.space.Step(pw.cfg.Timestep)
		pw.accumulator -= pw.cfg.Timestep
		steps++
	}
	if steps == pw.cfg.MaxSubsteps && pw.accumulator >= pw.cfg.Timestep {
		pw.logger.Debug("physics falling behind, dropping time", zap.Float64("dropped", pw.accumulator))
		pw.accumulator = 0
	}
	return float64(steps) * pw.cfg.Timestep
}

// BodyCount returns the number of entities mirrored into the space.
func (pw *PhysicsWorld) BodyCount() int {
	return len(pw.bodies)
}

// syncEntities creates bodies for new entities and pushes gameplay velocity
// into existing ones.
func (pw *PhysicsWorld) syncEntities() {
	query := pw.filter.Query()
	for query.Next() {
		e := query.Entity()
		transform, rb, collider := query.Get()

		info := pw.bodies[e]
		if info == nil {
			info = pw.createBody(transform, rb, collider)
			pw.bodies[e] = info
			pw.logger.Debug("body added",
				zap.Any("entity", e),
				zap.Stringer("kind", rb.Kind),
				zap.Int("shapes", len(info.shapes)))
		}

		if info.kind != components.BodyStatic {
			info.body.SetVelocity(float64(rb.Velocity.X()), float64(rb.Velocity.Z()))
		}
	}
}

func (pw *PhysicsWorld) createBody(transform *engine.Transform, rb *components.Rigidbody, collider *components.Collider) *bodyInfo {
	var body *cp.Body
	switch rb.Kind {
	case components.BodyStatic:
		body = cp.NewStaticBody()
	case components.BodyKinematic:
		body = cp.NewKinematicBody()
	default:
		mass := float64(rb.Mass)
		if mass <= 0 {
			mass = 1
		}
		moment := math.Inf(1)
		if !rb.LockRotation {
			moment = momentFor(mass, collider)
		}
		body = cp.NewBody(mass, moment)
	}
	body.SetPosition(toPlane(transform.Position))
	pw.space.AddBody(body)

	var shape *cp.Shape
	switch collider.Shape {
	case components.ColliderBox:
		shape = cp.NewBox(body, float64(collider.Size.X()), float64(collider.Size.Y()), 0)
	default:
		shape = cp.NewCircle(body, float64(collider.Radius), cp.Vector{})
	}
	shape.SetFriction(float64(collider.Friction))
	shape.SetElasticity(float64(collider.Elasticity))
	pw.space.AddShape(shape)

	return &bodyInfo{body: body, shapes: []*cp.Shape{shape}, kind: rb.Kind}
}

// syncTransforms copies simulated positions and velocities back to the
// entities. Height is integrated here since the space is flat.
func (pw *PhysicsWorld) syncTransforms(dt float32) {
	query := pw.filter.Query()
	for query.Next() {
		info := pw.bodies[query.Entity()]
		if info == nil || info.kind == components.BodyStatic {
			continue
		}
		transform, rb, _ := query.Get()

		p := info.body.Position()
		v := info.body.Velocity()

		y := transform.Position.Y() + rb.Velocity.Y()*dt
		vy := rb.Velocity.Y()
		if y < 0 {
			y, vy = 0, 0
		}

		transform.Position = mgl32.Vec3{float32(p.X), y, float32(p.Y)}
		rb.Velocity = mgl32.Vec3{float32(v.X), vy, float32(v.Y)}

		if !rb.LockRotation && info.kind == components.BodyDynamic {
			transform.Rotation = mgl32.QuatRotate(-float32(info.body.Angle()), engine.WorldUp)
		}
	}
}

func (pw *PhysicsWorld) cleanupEntities(w *ecs.World) {
	for e, info := range pw.bodies {
		if w.Alive(e) {
			continue
		}
		pw.removeBody(info)
		delete(pw.bodies, e)
		pw.logger.Debug("body removed", zap.Any("entity", e))
	}
}

func (pw *PhysicsWorld) removeBody(info *bodyInfo) {
	if pw.space == nil {
		return
	}
	for _, shape := range info.shapes {
		pw.space.RemoveShape(shape)
	}
	if pw.space.ContainsBody(info.body) {
		pw.space.RemoveBody(info.body)
	}
}

func (pw *PhysicsWorld) addBounds() {
	if pw.cfg.GroundSize <= 0 {
		return
	}
	h := pw.cfg.GroundSize / 2
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: -h, Y: -h}, b: cp.Vector{X: h, Y: -h}},
		{a: cp.Vector{X: -h, Y: h}, b: cp.Vector{X: h, Y: h}},
		{a: cp.Vector{X: -h, Y: -h}, b: cp.Vector{X: -h, Y: h}},
		{a: cp.Vector{X: h, Y: -h}, b: cp.Vector{X: h, Y: h}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(pw.space.StaticBody, seg.a, seg.b, boundsRadius)
		shape.SetFriction(0.8)
		pw.space.AddShape(shape)
		pw.bounds = append(pw.bounds, shape)
	}
}

func momentFor(mass float64, c *components.Collider) float64 {
	if c.Shape == components.ColliderBox {
		return cp.MomentForBox(mass, float64(c.Size.X()), float64(c.Size.Y()))
	}
	return cp.MomentForCircle(mass, 0, float64(c.Radius), cp.Vector{})
}

func toPlane(p mgl32.Vec3) cp.Vector {
	return cp.Vector{X: float64(p.X()), Y: float64(p.Z())}
}
