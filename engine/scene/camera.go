package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera orbiting a target point.
type Camera struct {
	FovY      float32 // degrees
	Near, Far float32
	Target    mgl32.Vec3
	Yaw       float32 // radians around +Y
	Pitch     float32 // radians, clamped short of the poles
	Distance  float32
	view      mgl32.Mat4
	dirty     bool
}

const (
	minDistance = 0.5
	maxPitch    = 1.5
)

func NewCamera() *Camera {
	c := &Camera{
		FovY:     45,
		Near:     1,
		Far:      100,
		Yaw:      0.6,
		Pitch:    0.4,
		Distance: 6,
	}
	c.Recalculate()
	return c
}

func (c *Camera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
	c.dirty = true
}

// Zoom scales the orbit distance by f.
func (c *Camera) Zoom(f float32) {
	d := c.Distance * f
	if d < minDistance {
		d = minDistance
	}
	if d > c.Far/2 {
		d = c.Far / 2
	}
	c.Distance = d
	c.dirty = true
}

func (c *Camera) Eye() mgl32.Vec3 {
	cp := math32.Cos(c.Pitch)
	return mgl32.Vec3{
		c.Target[0] + c.Distance*cp*math32.Sin(c.Yaw),
		c.Target[1] + c.Distance*math32.Sin(c.Pitch),
		c.Target[2] + c.Distance*cp*math32.Cos(c.Yaw),
	}
}

// View returns the modelview matrix for the camera.
func (c *Camera) View() mgl32.Mat4 {
	if c.dirty {
		c.Recalculate()
	}
	return c.view
}

func (c *Camera) Recalculate() {
	c.view = mgl32.LookAtV(c.Eye(), c.Target, mgl32.Vec3{0, 1, 0})
	c.dirty = false
}
