package components

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

type DirectionalLight struct {
	Direction mgl32.Vec3
	Color     color.RGBA
	Intensity float32
}

func NewDirectionalLight() DirectionalLight {
	return DirectionalLight{
		Direction: mgl32.Vec3{0.35, -1.0, -0.35}.Normalize(),
		Color:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Intensity: 1.0,
	}
}

// ColorFloat returns the light color premultiplied by intensity, as a shader vec4.
func (l DirectionalLight) ColorFloat() []float32 {
	return []float32{
		float32(l.Color.R) / 255.0 * l.Intensity,
		float32(l.Color.G) / 255.0 * l.Intensity,
		float32(l.Color.B) / 255.0 * l.Intensity,
		1.0,
	}
}

// AmbientLight is a scene-level resource lighting every surface evenly.
type AmbientLight struct {
	Color      color.RGBA
	Brightness float32
}

func (a AmbientLight) ColorFloat() []float32 {
	return []float32{
		float32(a.Color.R) / 255.0 * a.Brightness,
		float32(a.Color.G) / 255.0 * a.Brightness,
		float32(a.Color.B) / 255.0 * a.Brightness,
		1.0,
	}
}
