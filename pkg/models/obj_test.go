package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeOBJ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.obj")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write obj: %v", err)
	}
	return path
}

func TestLoadOBJTriangle(t *testing.T) {
	path := writeOBJ(t, `
# comment
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vt 0 0
vt 1 0
vt 0 1
f 1/1/1 2/2/1 3/3/1
`)

	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}
	if mesh.VertexCount() != 3 {
		t.Errorf("vertices = %d, want 3", mesh.VertexCount())
	}
	if mesh.TriangleCount() != 1 {
		t.Errorf("triangles = %d, want 1", mesh.TriangleCount())
	}
	if n := mesh.Vertices[0].Normal; n.Z != 1 {
		t.Errorf("normal = %v, want +z from file", n)
	}
	if uv := mesh.Vertices[1].UV; uv.X != 1 || uv.Y != 0 {
		t.Errorf("uv = %v, want (1,0)", uv)
	}
}

func TestLoadOBJQuadFanTriangulation(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`)

	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}
	if mesh.TriangleCount() != 2 {
		t.Fatalf("triangles = %d, want 2 from quad", mesh.TriangleCount())
	}
	// Fan shares the first corner
	if mesh.Faces[0].V[0] != mesh.Faces[1].V[0] {
		t.Error("fan triangles do not share the first corner")
	}
}

func TestLoadOBJNegativeIndices(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`)

	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}
	if mesh.TriangleCount() != 1 {
		t.Fatalf("triangles = %d, want 1", mesh.TriangleCount())
	}
	if p := mesh.Vertices[mesh.Faces[0].V[2]].Position; p.Y != 1 {
		t.Errorf("last corner position = %v, want the third vertex", p)
	}
}

func TestLoadOBJComputesNormalsWhenAbsent(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`)

	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}
	for i, v := range mesh.Vertices {
		if v.Normal.Len() < 0.999 {
			t.Errorf("vertex %d normal %v is not unit length", i, v.Normal)
		}
	}
}

func TestLoadOBJErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"bad float", "v 0 zero 0\n", "line 1"},
		{"short vertex", "v 1 2\n", "expected 3 components"},
		{"face before vertices", "f 1 2 3\n", "out of range"},
		{"malformed corner", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1/1/1 2 3\n", "malformed"},
		{"degenerate face", "v 0 0 0\nv 1 0 0\nf 1 2\n", "corners"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadOBJ(writeOBJ(t, tc.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.errPart) {
				t.Errorf("error %q does not mention %q", err, tc.errPart)
			}
		})
	}
}

func TestLoadOBJMissingFile(t *testing.T) {
	if _, err := LoadOBJ("/nonexistent/sphere.obj"); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoadOBJSharedCornersDeduplicated(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3
f 1 3 4
`)

	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}
	if mesh.VertexCount() != 4 {
		t.Errorf("vertices = %d, want 4 (shared corners merged)", mesh.VertexCount())
	}
}
