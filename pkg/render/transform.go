package render

import (
	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/noise"
)

// Vertex carries object-space attributes in, and screen-space results out of,
// the vertex transform stage. Transformation never mutates a vertex in place;
// it returns a filled-in copy.
type Vertex struct {
	Position math3d.Vec3 // Object-space position
	Normal   math3d.Vec3 // Object-space normal
	UV       math3d.Vec2 // Texture coordinates
	Color    Color       // Vertex color

	// Filled by TransformVertex
	Screen      math3d.Vec3 // x,y in pixels, z is NDC depth
	WorldNormal math3d.Vec3 // Normal after the model's inverse-transpose
}

// Uniforms is the per-render-call parameter bundle. It is built fresh for
// each body each frame and treated as read-only by every pipeline stage.
type Uniforms struct {
	Model      math3d.Mat4
	View       math3d.Mat4
	Projection math3d.Mat4
	Viewport   math3d.Mat4

	Time int // Frame counter driving animated materials

	Noise      *noise.FBM // Primary surface noise, seeded per body
	CloudNoise *noise.FBM // Optional second field (cloud layers)
}

// TransformVertex maps an object-space vertex to screen space through the
// model, view, projection and viewport matrices. Returns ok=false when the
// clip-space w is zero; no geometric clipping is performed, so the caller
// skips the whole triangle instead.
func TransformVertex(v Vertex, u *Uniforms) (Vertex, bool) {
	clip := u.Projection.Mul(u.View).Mul(u.Model).MulVec4(math3d.V4FromV3(v.Position, 1))
	if clip.W == 0 {
		return v, false
	}

	ndc := clip.PerspectiveDivide()
	v.Screen = u.Viewport.MulVec4(math3d.V4FromV3(ndc, 1)).Vec3()

	// Inverse-transpose of the model's linear part keeps normals correct
	// under non-uniform scale. Inverse falls back to identity when singular.
	normalMat := u.Model.Linear().Transpose().Inverse()
	v.WorldNormal = normalMat.MulVec3Dir(v.Normal)

	return v, true
}
