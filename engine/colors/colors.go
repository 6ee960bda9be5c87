package colors

import "image/color"

// Color is a straight RGBA quadruple in [0..1], the layout fixed-function
// GL calls expect.
type Color [4]float32

var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
	Red   = Color{1, 0, 0, 1}
	Green = Color{0, 1, 0, 1}
	Blue  = Color{0, 0, 1, 1}
	Gray  = Color{0.5, 0.5, 0.5, 1}
	Fog   = Color{0.8, 0.85, 0.9, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Floats returns the color as the float quadruple handed to glXxxfv calls.
func (c Color) Floats() [4]float32 { return [4]float32(c) }

// Ptr returns a pointer to a copy of the color's first component.
func (c Color) Ptr() *float32 {
	f := c.Floats()
	return &f[0]
}

// FromColor converts any image/color value, un-premultiplying alpha.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		float32(n.R) / 255,
		float32(n.G) / 255,
		float32(n.B) / 255,
		float32(n.A) / 255,
	}
}

// New returns a pointer to c, for optional scene colors.
func New(r, g, b, a float32) *Color {
	return &Color{r, g, b, a}
}
