package render

import (
	"image/color"
	"math"
)

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorSpace = color.RGBA{0x33, 0x33, 0x55, 255}
)

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// RGBA creates a color from RGBA values.
func RGBA(r, g, b, a uint8) color.RGBA {
	return color.RGBA{r, g, b, a}
}

// Hex creates an opaque color from a packed 0xRRGGBB value.
func Hex(v uint32) color.RGBA {
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}

// FromFloat creates an opaque color from normalized [0,1] channels.
func FromFloat(r, g, b float64) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(r) * 255),
		G: uint8(clamp01(g) * 255),
		B: uint8(clamp01(b) * 255),
		A: 255,
	}
}

// LerpColor linearly interpolates between two colors. The factor is clamped
// to [0,1] so noise values slightly out of range cannot wrap channels.
func LerpColor(a, b Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t),
	}
}

// MultiplyColor scales a color by a scalar, saturating at white.
func MultiplyColor(c Color, intensity float64) Color {
	if intensity < 0 {
		intensity = 0
	}
	return Color{
		R: uint8(math.Min(255, float64(c.R)*intensity)),
		G: uint8(math.Min(255, float64(c.G)*intensity)),
		B: uint8(math.Min(255, float64(c.B)*intensity)),
		A: c.A,
	}
}

// BlendAdd adds two colors channel-wise, saturating at white.
func BlendAdd(a, b Color) Color {
	return Color{
		R: saturate(int(a.R) + int(b.R)),
		G: saturate(int(a.G) + int(b.G)),
		B: saturate(int(a.B) + int(b.B)),
		A: a.A,
	}
}

func saturate(v int) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
