package models

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
)

// Sphere builds a UV sphere of the given radius with stacks latitude rows
// and slices longitude columns. Normals point outward and UVs wrap the
// usual equirectangular way.
func Sphere(radius float64, stacks, slices int) *Mesh {
	if stacks < 2 {
		stacks = 2
	}
	if slices < 3 {
		slices = 3
	}

	mesh := NewMesh("sphere")

	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		sinPhi, cosPhi := math.Sincos(phi)

		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			sinTheta, cosTheta := math.Sincos(theta)

			n := math3d.V3(sinPhi*cosTheta, cosPhi, sinPhi*sinTheta)
			mesh.Vertices = append(mesh.Vertices, MeshVertex{
				Position: n.Scale(radius),
				Normal:   n,
				UV:       math3d.V2(float64(j)/float64(slices), float64(i)/float64(stacks)),
			})
		}
	}

	cols := slices + 1
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := i*cols + j
			b := a + cols

			// Skip the degenerate triangle at each pole
			if i > 0 {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{a, b, a + 1}, Material: -1})
			}
			if i < stacks-1 {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{a + 1, b, b + 1}, Material: -1})
			}
		}
	}

	mesh.CalculateBounds()
	return mesh
}

// RingDisc builds a flat annulus in the xz plane between the inner and
// outer radii, split into the given number of angular segments. The normal
// faces +y; both sides render since the rasterizer does not cull.
func RingDisc(inner, outer float64, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if inner > outer {
		inner, outer = outer, inner
	}

	mesh := NewMesh("ring")
	up := math3d.Up()

	for j := 0; j <= segments; j++ {
		theta := 2 * math.Pi * float64(j) / float64(segments)
		sinTheta, cosTheta := math.Sincos(theta)
		u := float64(j) / float64(segments)

		mesh.Vertices = append(mesh.Vertices,
			MeshVertex{
				Position: math3d.V3(inner*cosTheta, 0, inner*sinTheta),
				Normal:   up,
				UV:       math3d.V2(u, 0),
			},
			MeshVertex{
				Position: math3d.V3(outer*cosTheta, 0, outer*sinTheta),
				Normal:   up,
				UV:       math3d.V2(u, 1),
			},
		)
	}

	for j := 0; j < segments; j++ {
		a := j * 2 // inner vertex of this spoke
		mesh.Faces = append(mesh.Faces,
			Face{V: [3]int{a, a + 2, a + 1}, Material: -1},
			Face{V: [3]int{a + 1, a + 2, a + 3}, Material: -1},
		)
	}

	mesh.CalculateBounds()
	return mesh
}
