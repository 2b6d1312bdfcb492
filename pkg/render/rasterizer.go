package render

import (
	"fmt"
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
)

// Fragment is one covered pixel emitted by the rasterizer, carrying
// attributes interpolated from the triangle's three vertices. A fragment is
// consumed by exactly one shader call and then discarded.
type Fragment struct {
	X, Y      int         // Pixel coordinates
	Depth     float64     // Interpolated NDC depth
	Normal    math3d.Vec3 // Interpolated transformed normal
	Intensity float64     // Interpolated lighting/alpha multiplier
	Position  math3d.Vec3 // Interpolated object-space position (noise domain)
	Color     Color       // Interpolated vertex color
}

// ShadeFunc turns a fragment into a final color. A non-nil error aborts the
// render call; it signals numeric corruption, never a recoverable miss.
type ShadeFunc func(frag Fragment, u *Uniforms) (Color, error)

// Rasterizer fills triangles into a framebuffer using barycentric
// (edge-function) coverage with affine attribute interpolation.
// Both windings render; there is no backface culling.
type Rasterizer struct {
	fb *Framebuffer

	// LightDir drives the per-vertex intensity carried on fragments.
	LightDir math3d.Vec3
}

// NewRasterizer creates a rasterizer writing into fb.
func NewRasterizer(fb *Framebuffer) *Rasterizer {
	return &Rasterizer{
		fb:       fb,
		LightDir: math3d.V3(0, 0, 1),
	}
}

// Framebuffer returns the target framebuffer.
func (r *Rasterizer) Framebuffer() *Framebuffer {
	return r.fb
}

// DrawVertices transforms and rasterizes a flat vertex stream grouped into
// consecutive triples. A trailing partial triple is silently dropped, as is
// any triangle whose clip-space w degenerates to zero.
func (r *Rasterizer) DrawVertices(verts []Vertex, u *Uniforms, shade ShadeFunc) error {
	for i := 0; i+2 < len(verts); i += 3 {
		v0, ok0 := TransformVertex(verts[i], u)
		v1, ok1 := TransformVertex(verts[i+1], u)
		v2, ok2 := TransformVertex(verts[i+2], u)
		if !ok0 || !ok1 || !ok2 {
			continue
		}
		if err := r.fillTriangle(v0, v1, v2, u, shade); err != nil {
			return fmt.Errorf("triangle %d: %w", i/3, err)
		}
	}
	return nil
}

// FillTriangle rasterizes three already-screen-transformed vertices.
func (r *Rasterizer) FillTriangle(v0, v1, v2 Vertex, u *Uniforms, shade ShadeFunc) error {
	return r.fillTriangle(v0, v1, v2, u, shade)
}

func (r *Rasterizer) fillTriangle(v0, v1, v2 Vertex, u *Uniforms, shade ShadeFunc) error {
	x0, y0 := v0.Screen.X, v0.Screen.Y
	x1, y1 := v1.Screen.X, v1.Screen.Y
	x2, y2 := v2.Screen.X, v2.Screen.Y

	// Signed area of the triangle (doubled). Dividing the three edge
	// functions by it yields normalized barycentric weights for either
	// winding, so front and back faces both fill.
	area := (x1-x0)*(y2-y0) - (y1-y0)*(x2-x0)
	if math.Abs(area) < 1e-8 {
		return nil // degenerate, emits nothing
	}
	invArea := 1.0 / area

	minX := int(math.Max(0, math.Floor(min3(x0, x1, x2))))
	maxX := int(math.Min(float64(r.fb.Width-1), math.Ceil(max3(x0, x1, x2))))
	minY := int(math.Max(0, math.Floor(min3(y0, y1, y2))))
	maxY := int(math.Min(float64(r.fb.Height-1), math.Ceil(max3(y0, y1, y2))))

	// Per-vertex diffuse intensity, interpolated like every other attribute
	light := r.LightDir.Normalize()
	i0 := math.Max(0, v0.WorldNormal.Normalize().Dot(light))
	i1 := math.Max(0, v1.WorldNormal.Normalize().Dot(light))
	i2 := math.Max(0, v2.WorldNormal.Normalize().Dot(light))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5

			w0 := ((x2-x1)*(py-y1) - (y2-y1)*(px-x1)) * invArea
			w1 := ((x0-x2)*(py-y2) - (y0-y2)*(px-x2)) * invArea
			w2 := 1 - w0 - w1

			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			// Affine interpolation in screen space, deliberately not
			// perspective-correct: the shaders only need smoothly
			// varying noise inputs.
			frag := Fragment{
				X:     x,
				Y:     y,
				Depth: w0*v0.Screen.Z + w1*v1.Screen.Z + w2*v2.Screen.Z,
				Normal: v0.WorldNormal.Scale(w0).
					Add(v1.WorldNormal.Scale(w1)).
					Add(v2.WorldNormal.Scale(w2)),
				Intensity: w0*i0 + w1*i1 + w2*i2,
				Position: v0.Position.Scale(w0).
					Add(v1.Position.Scale(w1)).
					Add(v2.Position.Scale(w2)),
				Color: interpolateColor3(v0.Color, v1.Color, v2.Color, w0, w1, w2),
			}

			c, err := shade(frag, u)
			if err != nil {
				return fmt.Errorf("shade pixel (%d,%d): %w", x, y, err)
			}
			r.fb.SetCurrentColor(c)
			r.fb.Point(x, y, frag.Depth)
		}
	}
	return nil
}

// DrawWireframe draws the edges of each vertex triple as depth-ignoring
// lines, for the debug overlay.
func (r *Rasterizer) DrawWireframe(verts []Vertex, u *Uniforms, c Color) {
	for i := 0; i+2 < len(verts); i += 3 {
		v0, ok0 := TransformVertex(verts[i], u)
		v1, ok1 := TransformVertex(verts[i+1], u)
		v2, ok2 := TransformVertex(verts[i+2], u)
		if !ok0 || !ok1 || !ok2 {
			continue
		}
		r.fb.DrawLine(int(v0.Screen.X), int(v0.Screen.Y), int(v1.Screen.X), int(v1.Screen.Y), c)
		r.fb.DrawLine(int(v1.Screen.X), int(v1.Screen.Y), int(v2.Screen.X), int(v2.Screen.Y), c)
		r.fb.DrawLine(int(v2.Screen.X), int(v2.Screen.Y), int(v0.Screen.X), int(v0.Screen.Y), c)
	}
}

// interpolateColor3 interpolates between 3 colors using barycentric weights.
func interpolateColor3(c0, c1, c2 Color, w0, w1, w2 float64) Color {
	return RGB(
		uint8(float64(c0.R)*w0+float64(c1.R)*w1+float64(c2.R)*w2),
		uint8(float64(c0.G)*w0+float64(c1.G)*w1+float64(c2.G)*w2),
		uint8(float64(c0.B)*w0+float64(c1.B)*w1+float64(c2.B)*w2),
	)
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
