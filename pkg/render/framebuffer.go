// Package render provides the software rasterization pipeline for orrery.
package render

import (
	"image"
	"image/png"
	"math"
	"os"
)

// FarDepth is the depth sentinel written by Clear. Any finite fragment depth
// passes the depth test against it.
const FarDepth = math.MaxFloat64

// Framebuffer owns a color buffer and a parallel depth buffer. The depth
// test in Point is the sole visibility mechanism: a pixel is overwritten
// only when the incoming fragment is nearer than what is stored.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []Color   // Row-major pixel data
	depth  []float64 // Row-major depth data, FarDepth when empty

	background Color
	current    Color
}

// NewFramebuffer creates a cleared framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
		depth:  make([]float64, width*height),
	}
	fb.background = ColorBlack
	fb.current = ColorWhite
	fb.Clear()
	return fb
}

// SetBackground sets the color used by Clear.
func (fb *Framebuffer) SetBackground(c Color) {
	fb.background = c
}

// Background returns the clear color.
func (fb *Framebuffer) Background() Color {
	return fb.background
}

// SetCurrentColor sets the color written by subsequent Point calls.
func (fb *Framebuffer) SetCurrentColor(c Color) {
	fb.current = c
}

// CurrentColor returns the color written by Point.
func (fb *Framebuffer) CurrentColor() Color {
	return fb.current
}

// Clear resets every pixel to the background color and every depth slot to
// FarDepth. Uses copy-doubling for fast fills.
func (fb *Framebuffer) Clear() {
	n := len(fb.Pixels)
	if n == 0 {
		return
	}
	fb.Pixels[0] = fb.background
	fb.depth[0] = FarDepth
	for i := 1; i < n; i *= 2 {
		copy(fb.Pixels[i:], fb.Pixels[:i])
		copy(fb.depth[i:], fb.depth[:i])
	}
}

// Point writes the current color at (x, y) iff depth is nearer than the
// stored depth. Color and depth update together. Out-of-bounds coordinates
// are rejected; callers are expected to bounds-check first.
// Returns whether the pixel was written.
func (fb *Framebuffer) Point(x, y int, depth float64) bool {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return false
	}
	i := y*fb.Width + x
	if depth >= fb.depth[i] {
		return false
	}
	fb.Pixels[i] = fb.current
	fb.depth[i] = depth
	return true
}

// DepthAt returns the stored depth at (x, y), or FarDepth if out of bounds.
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return FarDepth
	}
	return fb.depth[y*fb.Width+x]
}

// SetPixel sets a pixel at (x, y) ignoring the depth buffer.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Color{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's
// algorithm, ignoring the depth buffer. Used for wireframe overlays.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
