package glbackend

import (
	"image"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/hubastard/glcanvas/engine/assets"
)

// Capture reads the last presented frame from the front buffer. It must
// run on the render thread, e.g. from a between-frame callback.
func Capture(width, height int) (*image.NRGBA, error) {
	pix := make([]byte, width*height*4)
	if len(pix) > 0 {
		gl.ReadBuffer(gl.FRONT)
		defer gl.ReadBuffer(gl.BACK)
		gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
		gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	}
	return assets.FromGL(width, height, pix)
}
