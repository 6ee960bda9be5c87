package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromColor(t *testing.T) {
	assert.Equal(t, White, FromColor(color.White))
	assert.Equal(t, Color{1, 0, 0, 1}, FromColor(color.NRGBA{R: 255, A: 255}))

	half := FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 0})
	assert.Equal(t, float32(0), half[3])
}

func TestFloatsAndPtr(t *testing.T) {
	c := Color{0.1, 0.2, 0.3, 0.4}
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 0.4}, c.Floats())
	p := c.Ptr()
	assert.Equal(t, float32(0.1), *p)
	assert.Equal(t, Color{0.1, 0.2, 0.3, 0.5}, c.WithAlpha(0.5))
}
