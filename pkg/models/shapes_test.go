package models

import (
	"math"
	"testing"
)

func TestSphereGeometry(t *testing.T) {
	const (
		radius = 2.0
		stacks = 8
		slices = 12
	)
	mesh := Sphere(radius, stacks, slices)

	wantVerts := (stacks + 1) * (slices + 1)
	if mesh.VertexCount() != wantVerts {
		t.Errorf("vertices = %d, want %d", mesh.VertexCount(), wantVerts)
	}

	// Two triangles per quad, one per pole row quad
	wantFaces := 2*(stacks-2)*slices + 2*slices
	if mesh.TriangleCount() != wantFaces {
		t.Errorf("triangles = %d, want %d", mesh.TriangleCount(), wantFaces)
	}

	for i, v := range mesh.Vertices {
		if r := v.Position.Len(); math.Abs(r-radius) > 0.001 {
			t.Fatalf("vertex %d at radius %v, want %v", i, r, radius)
		}
		if l := v.Normal.Len(); math.Abs(l-1) > 0.001 {
			t.Fatalf("vertex %d normal length %v, want 1", i, l)
		}
		// Outward normal matches the position direction
		if d := v.Normal.Dot(v.Position.Normalize()); d < 0.999 {
			t.Fatalf("vertex %d normal not outward (dot %v)", i, d)
		}
	}
}

func TestSphereClampsDegenerateArgs(t *testing.T) {
	mesh := Sphere(1, 0, 0)
	if mesh.VertexCount() == 0 || mesh.TriangleCount() == 0 {
		t.Error("degenerate stack/slice counts should still build a mesh")
	}
}

func TestSphereBounds(t *testing.T) {
	mesh := Sphere(1.5, 16, 16)
	bMin, bMax := mesh.GetBounds()
	for _, v := range []float64{bMax.X, bMax.Y, bMax.Z} {
		if v > 1.5+0.001 {
			t.Errorf("bounds exceed radius: %v", v)
		}
	}
	if math.Abs(bMin.Y+1.5) > 0.001 || math.Abs(bMax.Y-1.5) > 0.001 {
		t.Errorf("y bounds = [%v, %v], want [-1.5, 1.5]", bMin.Y, bMax.Y)
	}
}

func TestRingDiscGeometry(t *testing.T) {
	const (
		inner    = 0.8
		outer    = 1.5
		segments = 24
	)
	mesh := RingDisc(inner, outer, segments)

	if want := (segments + 1) * 2; mesh.VertexCount() != want {
		t.Errorf("vertices = %d, want %d", mesh.VertexCount(), want)
	}
	if want := segments * 2; mesh.TriangleCount() != want {
		t.Errorf("triangles = %d, want %d", mesh.TriangleCount(), want)
	}

	for i, v := range mesh.Vertices {
		if v.Position.Y != 0 {
			t.Fatalf("vertex %d off the xz plane: %v", i, v.Position)
		}
		r := math.Hypot(v.Position.X, v.Position.Z)
		if r < inner-0.001 || r > outer+0.001 {
			t.Fatalf("vertex %d at radius %v, outside [%v, %v]", i, r, inner, outer)
		}
		if v.Normal.Y != 1 {
			t.Fatalf("vertex %d normal %v, want +y", i, v.Normal)
		}
	}
}

func TestRingDiscSwapsInvertedRadii(t *testing.T) {
	mesh := RingDisc(2.0, 0.5, 8)
	for _, v := range mesh.Vertices {
		r := math.Hypot(v.Position.X, v.Position.Z)
		if r < 0.5-0.001 || r > 2.0+0.001 {
			t.Fatalf("radius %v outside swapped range", r)
		}
	}
}
