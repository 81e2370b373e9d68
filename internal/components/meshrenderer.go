package components

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

// MeshRenderer draws a built-in primitive at the entity's Transform.
type MeshRenderer struct {
	MeshType MeshType
	Color    color.RGBA
	Size     mgl32.Vec3
}

func NewMeshRenderer(meshType MeshType, c color.RGBA, size mgl32.Vec3) MeshRenderer {
	return MeshRenderer{
		MeshType: meshType,
		Color:    c,
		Size:     size,
	}
}
