// Package scene holds the passive scene description a canvas renders:
// one-shot fixed-function state (fog, material, lighting), between-frame
// callbacks, a camera and the objects drawn by the default draw routine.
package scene

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/glcanvas/engine/colors"
)

type FogMode int

const (
	FogUnset FogMode = iota
	FogLinear
	FogExp
	FogExp2
)

type Face int

const (
	FaceUnset Face = iota
	FaceFront
	FaceBack
	FaceFrontAndBack
)

type ColorMaterialMode int

const (
	ModeUnset ColorMaterialMode = iota
	ModeEmission
	ModeAmbient
	ModeDiffuse
	ModeSpecular
	ModeAmbientAndDiffuse
)

// Scene is read by the render loop and never mutated by it. Fields are
// expected to be configured before the scene is bound to a canvas; between
// renderers may be added at any time.
type Scene struct {
	FogMode    FogMode
	FogDensity float32 // identity 1
	FogStart   float32 // identity 0
	FogEnd     float32 // identity 1
	FogIndex   float32 // identity 0
	FogColor   *colors.Color

	AmbientLight *colors.Color

	ColorMaterialFace Face
	ColorMaterialMode ColorMaterialMode
	MaterialAmbient   *colors.Color
	MaterialDiffuse   *colors.Color
	MaterialSpecular  *colors.Color
	MaterialEmission  *colors.Color
	MaterialShininess *float32 // nil when unset

	Camera  *Camera
	Objects []*Object

	mu               sync.Mutex
	betweenRenderers []func()
}

// New returns a scene with every fog scalar at its identity value and a
// default camera.
func New() *Scene {
	return &Scene{
		FogDensity: 1,
		FogEnd:     1,
		Camera:     NewCamera(),
	}
}

// SetShininess sets the material shininess; a negative value clears it.
func (s *Scene) SetShininess(v float32) {
	if v < 0 {
		s.MaterialShininess = nil
		return
	}
	s.MaterialShininess = &v
}

// AddBetweenRenderer registers fn to run once per frame before drawing.
func (s *Scene) AddBetweenRenderer(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.betweenRenderers = append(s.betweenRenderers, fn)
}

// BetweenRenderers returns the callbacks in registration order.
func (s *Scene) BetweenRenderers() []func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]func(), len(s.betweenRenderers))
	copy(out, s.betweenRenderers)
	return out
}

// Object is a triangle list drawn in a single color.
type Object struct {
	Transform mgl32.Mat4
	Color     colors.Color
	Triangles []mgl32.Vec3
}

// Cube returns a cube of the given edge length centered on the origin.
func Cube(size float32, c colors.Color) *Object {
	h := size / 2
	v := [8]mgl32.Vec3{
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
	}
	quads := [6][4]int{
		{0, 1, 2, 3}, // front
		{5, 4, 7, 6}, // back
		{4, 0, 3, 7}, // left
		{1, 5, 6, 2}, // right
		{3, 2, 6, 7}, // top
		{4, 5, 1, 0}, // bottom
	}
	tris := make([]mgl32.Vec3, 0, 36)
	for _, q := range quads {
		tris = append(tris, v[q[0]], v[q[1]], v[q[2]], v[q[0]], v[q[2]], v[q[3]])
	}
	return &Object{Transform: mgl32.Ident4(), Color: c, Triangles: tris}
}
