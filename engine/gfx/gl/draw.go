package glbackend

import (
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/glcanvas/engine/canvas"
	"github.com/hubastard/glcanvas/engine/glu"
	"github.com/hubastard/glcanvas/engine/profiler"
	"github.com/hubastard/glcanvas/engine/scene"
)

var _ canvas.DrawFunc = DrawScene

// DrawScene clears the frame, loads the scene camera into the projection
// and modelview matrices, and submits every object in immediate mode.
func DrawScene(width, height int, nowMillis int64, s *scene.Scene) {
	defer profiler.Start("glbackend.DrawScene")()

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if s.Camera == nil || width <= 0 || height <= 0 {
		return
	}

	cam := s.Camera
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	glu.SetupPerspective(frustum{}, cam.FovY, float32(width)/float32(height), cam.Near, cam.Far)

	gl.MatrixMode(gl.MODELVIEW)
	view := cam.View()
	gl.LoadMatrixf(&view[0])

	for _, o := range s.Objects {
		drawObject(o)
	}
}

func drawObject(o *scene.Object) {
	gl.PushMatrix()
	defer gl.PopMatrix()
	gl.MultMatrixf(&o.Transform[0])
	gl.Color4f(o.Color[0], o.Color[1], o.Color[2], o.Color[3])

	gl.Begin(gl.TRIANGLES)
	tris := o.Triangles
	for i := 0; i+2 < len(tris); i += 3 {
		n := faceNormal(tris[i], tris[i+1], tris[i+2])
		gl.Normal3f(n[0], n[1], n[2])
		for _, v := range tris[i : i+3] {
			gl.Vertex3f(v[0], v[1], v[2])
		}
	}
	gl.End()
}

func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return mgl32.Vec3{0, 0, 1}
	}
	return n.Normalize()
}
