package camera

import (
	"orbitdemo/internal/components"
	"orbitdemo/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
)

// Frustum holds the six planes of a view volume: left, right, bottom, top,
// near, far. Normals point inward.
type Frustum struct {
	planes [6]plane
}

// plane is the set of points p where normal·p + distance = 0.
type plane struct {
	normal   mgl32.Vec3
	distance float32
}

// ViewProjection builds the clip transform for a camera at tr.
func ViewProjection(tr engine.Transform, cam components.Camera, aspect float32) mgl32.Mat4 {
	var proj mgl32.Mat4
	if cam.Projection == components.ProjectionOrthographic {
		halfH := cam.FOV / 2
		halfW := halfH * aspect
		proj = mgl32.Ortho(-halfW, halfW, -halfH, halfH, cam.Near, cam.Far)
	} else {
		proj = mgl32.Perspective(mgl32.DegToRad(cam.FOV), aspect, cam.Near, cam.Far)
	}
	view := mgl32.LookAtV(tr.Position, tr.Position.Add(tr.Forward()), tr.Up())
	return proj.Mul4(view)
}

// ExtractFrustum pulls the planes out of a view-projection matrix
// (Gribb/Hartmann).
func ExtractFrustum(vp mgl32.Mat4) Frustum {
	r0, r1, r2, r3 := vp.Row(0), vp.Row(1), vp.Row(2), vp.Row(3)

	var f Frustum
	f.planes[0] = planeFrom(r3.Add(r0))
	f.planes[1] = planeFrom(r3.Sub(r0))
	f.planes[2] = planeFrom(r3.Add(r1))
	f.planes[3] = planeFrom(r3.Sub(r1))
	f.planes[4] = planeFrom(r3.Add(r2))
	f.planes[5] = planeFrom(r3.Sub(r2))
	return f
}

func planeFrom(v mgl32.Vec4) plane {
	p := plane{normal: v.Vec3(), distance: v.W()}
	length := p.normal.Len()
	if length == 0 {
		return p
	}
	return plane{normal: p.normal.Mul(1 / length), distance: p.distance / length}
}

// ContainsSphere reports whether any part of the sphere is inside the frustum.
func (f *Frustum) ContainsSphere(center mgl32.Vec3, radius float32) bool {
	for i := range f.planes {
		if f.planes[i].normal.Dot(center)+f.planes[i].distance < -radius {
			return false
		}
	}
	return true
}

func (f *Frustum) ContainsPoint(point mgl32.Vec3) bool {
	return f.ContainsSphere(point, 0)
}
