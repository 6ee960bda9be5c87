package canvas

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/glcanvas/engine/colors"
	"github.com/hubastard/glcanvas/engine/scene"
)

// Capability is a fixed-function server-side capability.
type Capability int

const (
	CapDepthTest Capability = iota
	CapLighting
	CapColorMaterial
	CapFog
)

// MaterialParam selects a material color slot.
type MaterialParam int

const (
	MaterialAmbient MaterialParam = iota
	MaterialDiffuse
	MaterialSpecular
	MaterialEmission
)

// FogParam selects a scalar fog parameter.
type FogParam int

const (
	FogDensity FogParam = iota
	FogStart
	FogEnd
	FogIndex
)

// Graphics is the fixed-function context the render loop drives. It is
// bound to the render thread's current context; every method must be
// called from that thread.
type Graphics interface {
	ClearColor(c colors.Color)
	PerspectiveCorrectionNicest()
	ClearDepth(d float64)
	LineWidth(w float32)
	Enable(c Capability)

	LightModelAmbient(c colors.Color)
	ColorMaterial(face scene.Face, mode scene.ColorMaterialMode)
	Material(face scene.Face, p MaterialParam, c colors.Color)
	Shininess(face scene.Face, v float32)
	FogMode(m scene.FogMode)
	Fog(p FogParam, v float32)
	FogColor(c colors.Color)

	SetViewport(x, y, w, h int32)
	Viewport() [4]int32
	ModelView() mgl32.Mat4
	Projection() mgl32.Mat4
	ReadDepth(x, y int32) float32
}

// DrawFunc submits one frame of geometry for s.
type DrawFunc func(width, height int, nowMillis int64, s *scene.Scene)
