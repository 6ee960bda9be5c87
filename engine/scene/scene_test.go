package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/glcanvas/engine/colors"
	"github.com/hubastard/glcanvas/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSceneIdentityFog(t *testing.T) {
	s := New()
	assert.Equal(t, FogUnset, s.FogMode)
	assert.Equal(t, float32(1), s.FogDensity)
	assert.Equal(t, float32(0), s.FogStart)
	assert.Equal(t, float32(1), s.FogEnd)
	assert.Equal(t, float32(0), s.FogIndex)
	assert.Nil(t, s.MaterialShininess)
	assert.NotNil(t, s.Camera)
}

func TestShininessOptional(t *testing.T) {
	s := New()
	s.SetShininess(0)
	require.NotNil(t, s.MaterialShininess)
	assert.Equal(t, float32(0), *s.MaterialShininess)

	s.SetShininess(-1)
	assert.Nil(t, s.MaterialShininess)
}

func TestBetweenRenderersSnapshot(t *testing.T) {
	s := New()
	var order []int
	s.AddBetweenRenderer(func() { order = append(order, 1) })
	s.AddBetweenRenderer(func() { order = append(order, 2) })

	fns := s.BetweenRenderers()
	s.AddBetweenRenderer(func() { order = append(order, 3) })
	for _, fn := range fns {
		fn()
	}
	assert.Equal(t, []int{1, 2}, order)
	assert.Len(t, s.BetweenRenderers(), 3)
}

func TestCubeGeometry(t *testing.T) {
	c := Cube(2, colors.Red)
	assert.Len(t, c.Triangles, 36)
	for _, v := range c.Triangles {
		for _, x := range v {
			assert.Equal(t, float32(1), abs(x))
		}
	}
	assert.Equal(t, mgl32.Ident4(), c.Transform)
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestCameraEyeDistance(t *testing.T) {
	c := NewCamera()
	eye := c.Eye()
	assert.InDelta(t, c.Distance, eye.Sub(c.Target).Len(), 1e-4)

	c.Zoom(0.5)
	assert.InDelta(t, 3, c.Distance, 1e-5)
	c.Zoom(0.0001)
	assert.Equal(t, float32(minDistance), c.Distance)

	c.Orbit(0, 10)
	assert.Equal(t, float32(maxPitch), c.Pitch)
}

func TestCameraViewLooksAtTarget(t *testing.T) {
	c := NewCamera()
	c.Target = mgl32.Vec3{1, 2, 3}
	c.Recalculate()
	p := c.View().Mul4x1(c.Target.Vec4(1))
	assert.InDelta(t, 0, p[0], 1e-4)
	assert.InDelta(t, 0, p[1], 1e-4)
	assert.InDelta(t, -c.Distance, p[2], 1e-4)
}

func TestOrbitControllerDrag(t *testing.T) {
	cam := NewCamera()
	oc := NewOrbitController(cam)
	yaw, pitch := cam.Yaw, cam.Pitch

	oc.MousePressed(core.MouseEvent{ID: core.MousePressed, X: 10, Y: 10, Button: core.Button1})
	oc.MouseDragged(core.MouseEvent{ID: core.MouseDragged, X: 20, Y: 15, Buttons: core.Button1})
	assert.InDelta(t, yaw-0.1, cam.Yaw, 1e-6)
	assert.InDelta(t, pitch+0.05, cam.Pitch, 1e-6)

	oc.MouseReleased(core.MouseEvent{ID: core.MouseReleased, X: 20, Y: 15, Button: core.Button1})
	oc.MouseDragged(core.MouseEvent{ID: core.MouseDragged, X: 40, Y: 40, Buttons: core.Button1})
	assert.InDelta(t, yaw-0.1, cam.Yaw, 1e-6)
}

func TestOrbitControllerWheelAndKeys(t *testing.T) {
	cam := NewCamera()
	oc := NewOrbitController(cam)
	d := cam.Distance

	oc.MouseWheelMoved(core.MouseWheelEvent{ScrollAmount: 240, WheelRotation: 2})
	assert.InDelta(t, d/1.1/1.1, cam.Distance, 1e-4)

	oc.MouseWheelMoved(core.MouseWheelEvent{ScrollAmount: -240, WheelRotation: -2})
	assert.InDelta(t, d, cam.Distance, 1e-4)

	oc.KeyPressed(core.KeyEvent{ID: core.KeyPressed, Code: core.KeyS})
	assert.InDelta(t, d*1.1, cam.Distance, 1e-4)
}
