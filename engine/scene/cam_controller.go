package scene

import "github.com/hubastard/glcanvas/engine/core"

// OrbitController: left-drag orbits, wheel zooms, W/S without modifiers
// dolly in and out.
// Register it with a canvas as mouse, mouse-motion, mouse-wheel and key
// listener. Events arrive on the render thread, which also reads the camera.
type OrbitController struct {
	RotSpeed  float32 // radians per pixel
	ZoomSpeed float32 // factor per wheel detent
	Camera    *Camera

	lastX, lastY int
	dragging     bool
}

var (
	_ core.MouseListener       = (*OrbitController)(nil)
	_ core.MouseMotionListener = (*OrbitController)(nil)
	_ core.MouseWheelListener  = (*OrbitController)(nil)
	_ core.KeyListener         = (*OrbitController)(nil)
)

func NewOrbitController(cam *Camera) *OrbitController {
	return &OrbitController{
		RotSpeed:  0.01,
		ZoomSpeed: 1.1,
		Camera:    cam,
	}
}

func (oc *OrbitController) MousePressed(e core.MouseEvent) {
	if e.Button == core.Button1 {
		oc.lastX, oc.lastY = e.X, e.Y
		oc.dragging = true
	}
}

func (oc *OrbitController) MouseReleased(e core.MouseEvent) {
	if e.Button == core.Button1 {
		oc.dragging = false
	}
}

func (oc *OrbitController) MouseMoved(e core.MouseEvent) {}

func (oc *OrbitController) MouseDragged(e core.MouseEvent) {
	if !oc.dragging || !e.Buttons.Has(core.Button1) {
		return
	}
	dx, dy := e.X-oc.lastX, e.Y-oc.lastY
	oc.lastX, oc.lastY = e.X, e.Y
	oc.Camera.Orbit(-float32(dx)*oc.RotSpeed, float32(dy)*oc.RotSpeed)
}

func (oc *OrbitController) MouseWheelMoved(e core.MouseWheelEvent) {
	detents := float32(e.ScrollAmount) / 120
	switch {
	case detents > 0:
		for i := float32(0); i < detents; i++ {
			oc.Camera.Zoom(1 / oc.ZoomSpeed)
		}
	case detents < 0:
		for i := float32(0); i > detents; i-- {
			oc.Camera.Zoom(oc.ZoomSpeed)
		}
	}
}

func (oc *OrbitController) KeyPressed(e core.KeyEvent) {
	if e.Modifiers != core.ModNone {
		return
	}
	switch e.Code {
	case core.KeyW:
		oc.Camera.Zoom(1 / oc.ZoomSpeed)
	case core.KeyS:
		oc.Camera.Zoom(oc.ZoomSpeed)
	}
}

func (oc *OrbitController) KeyReleased(e core.KeyEvent) {}
func (oc *OrbitController) KeyTyped(e core.KeyEvent)    {}
