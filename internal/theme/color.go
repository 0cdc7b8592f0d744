package theme

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight-alpha RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGBA builds a Color from float channels.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Clamped returns c with every channel forced into [0, 1].
func (c Color) Clamped() Color {
	cf := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped()
	return Color{R: float32(cf.R), G: float32(cf.G), B: float32(cf.B), A: clamp01(c.A)}
}

// Scale multiplies all four channels by f and clamps the result.
// Alpha is scaled as well, so a darker accent is also more transparent.
func (c Color) Scale(f float32) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A * f}.Clamped()
}

// Channel returns channel i (0=R, 1=G, 2=B, 3=A).
func (c Color) Channel(i int) float32 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	default:
		return c.A
	}
}

// WithChannel returns a copy of c with channel i replaced by v, clamped.
func (c Color) WithChannel(i int, v float32) Color {
	switch i {
	case 0:
		c.R = v
	case 1:
		c.G = v
	case 2:
		c.B = v
	default:
		c.A = v
	}
	return c.Clamped()
}

// NRGBA packs the color into 8 bits per channel, rounding to nearest.
func (c Color) NRGBA() color.NRGBA {
	c = c.Clamped()
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

func to8(v float32) uint8 {
	return uint8(v*255 + 0.5)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
