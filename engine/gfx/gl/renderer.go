package glbackend

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/glcanvas/engine/canvas"
	"github.com/hubastard/glcanvas/engine/colors"
	"github.com/hubastard/glcanvas/engine/glu"
	"github.com/hubastard/glcanvas/engine/scene"
)

// RendererGL drives the fixed-function pipeline of the current GL 2.1
// compatibility context.
type RendererGL struct {
	frustum
	Version string
}

var (
	_ canvas.Graphics   = (*RendererGL)(nil)
	_ glu.FrustumLoader = (*RendererGL)(nil)
)

// NewRendererGL loads GL entry points; a context must be current on the
// calling thread.
func NewRendererGL() (*RendererGL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glbackend: init: %w", err)
	}
	r := &RendererGL{Version: gl.GoStr(gl.GetString(gl.VERSION))}
	log.Printf("GL: %s\n", r.Version)
	return r, nil
}

// Graphics is NewRendererGL shaped as a canvas graphics factory.
func Graphics() (canvas.Graphics, error) {
	r, err := NewRendererGL()
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) ClearColor(c colors.Color) { gl.ClearColor(c[0], c[1], c[2], c[3]) }
func (r *RendererGL) ClearDepth(d float64)      { gl.ClearDepth(d) }
func (r *RendererGL) LineWidth(w float32)       { gl.LineWidth(w) }

func (r *RendererGL) PerspectiveCorrectionNicest() {
	gl.Hint(gl.PERSPECTIVE_CORRECTION_HINT, gl.NICEST)
}

func (r *RendererGL) Enable(c canvas.Capability) {
	if e, ok := glCapability(c); ok {
		gl.Enable(e)
	}
}

func (r *RendererGL) LightModelAmbient(c colors.Color) {
	gl.LightModelfv(gl.LIGHT_MODEL_AMBIENT, c.Ptr())
}

func (r *RendererGL) ColorMaterial(face scene.Face, mode scene.ColorMaterialMode) {
	f, ok := glFace(face)
	if !ok {
		return
	}
	if m, ok := glColorMaterialMode(mode); ok {
		gl.ColorMaterial(f, m)
	}
}

func (r *RendererGL) Material(face scene.Face, p canvas.MaterialParam, c colors.Color) {
	f, ok := glFace(face)
	if !ok {
		return
	}
	if pname, ok := glMaterialParam(p); ok {
		gl.Materialfv(f, pname, c.Ptr())
	}
}

func (r *RendererGL) Shininess(face scene.Face, v float32) {
	if f, ok := glFace(face); ok {
		gl.Materialf(f, gl.SHININESS, v)
	}
}

func (r *RendererGL) FogMode(m scene.FogMode) {
	if mode, ok := glFogMode(m); ok {
		gl.Fogi(gl.FOG_MODE, int32(mode))
	}
}

func (r *RendererGL) Fog(p canvas.FogParam, v float32) {
	if pname, ok := glFogParam(p); ok {
		gl.Fogf(pname, v)
	}
}

func (r *RendererGL) FogColor(c colors.Color) { gl.Fogfv(gl.FOG_COLOR, c.Ptr()) }

func (r *RendererGL) SetViewport(x, y, w, h int32) { gl.Viewport(x, y, w, h) }

func (r *RendererGL) Viewport() [4]int32 {
	var vp [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &vp[0])
	return vp
}

func (r *RendererGL) ModelView() mgl32.Mat4 {
	var m mgl32.Mat4
	gl.GetFloatv(gl.MODELVIEW_MATRIX, &m[0])
	return m
}

func (r *RendererGL) Projection() mgl32.Mat4 {
	var m mgl32.Mat4
	gl.GetFloatv(gl.PROJECTION_MATRIX, &m[0])
	return m
}

// ReadDepth reads one depth-buffer texel in window coordinates.
func (r *RendererGL) ReadDepth(x, y int32) float32 {
	var z float32
	gl.ReadPixels(x, y, 1, 1, gl.DEPTH_COMPONENT, gl.FLOAT, gl.Ptr(&z))
	return z
}

// frustum multiplies the current matrix by a perspective frustum.
type frustum struct{}

func (frustum) Frustum(left, right, bottom, top, near, far float64) {
	gl.Frustum(left, right, bottom, top, near, far)
}
