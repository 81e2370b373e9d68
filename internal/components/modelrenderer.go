package components

import (
	"image/color"
	"orbitdemo/internal/assets"

	"github.com/go-gl/mathgl/mgl32"
)

// Primitive is drawn in place of a model that is still pending or failed to load.
type Primitive int

const (
	PrimitiveNone Primitive = iota
	PrimitiveCapsule
	PrimitiveTree
	PrimitiveCube
)

type ModelRenderer struct {
	Model    assets.Handle
	Tint     color.RGBA
	Fallback Primitive
	// FallbackSize is width, height, depth of the stand-in primitive.
	FallbackSize mgl32.Vec3
}

func NewModelRenderer(model assets.Handle, fallback Primitive, size mgl32.Vec3) ModelRenderer {
	return ModelRenderer{
		Model:        model,
		Tint:         color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Fallback:     fallback,
		FallbackSize: size,
	}
}

// Player tags the entity driven by locomotion input.
type Player struct{}
