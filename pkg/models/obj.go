package models

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/orrery/pkg/math3d"
)

// LoadOBJ loads a Wavefront OBJ file and returns a Mesh. Supported
// statements are v, vn, vt and f; faces with more than three corners are
// fan-triangulated and negative indices resolve from the end of the
// respective list. Everything else (groups, materials, smoothing) is
// ignored.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh := NewMesh(filepath.Base(path))
	p := objParser{mesh: mesh}

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		if err := p.parseLine(scanner.Text()); err != nil {
			return nil, fmt.Errorf("obj: line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	if !p.hasNormals {
		mesh.CalculateSmoothNormals()
	}
	mesh.CalculateBounds()

	return mesh, nil
}

// objParser accumulates OBJ statements. OBJ indexes positions, normals and
// UVs independently, so distinct index triples become distinct mesh
// vertices, deduplicated through corners.
type objParser struct {
	mesh *Mesh

	positions []math3d.Vec3
	normals   []math3d.Vec3
	uvs       []math3d.Vec2

	corners    map[[3]int]int
	hasNormals bool
}

func (p *objParser) parseLine(raw string) error {
	text := strings.TrimSpace(raw)
	if text == "" || strings.HasPrefix(text, "#") {
		return nil
	}

	fields := strings.Fields(text)
	switch fields[0] {
	case "v":
		v, err := parseFloats3(fields[1:])
		if err != nil {
			return fmt.Errorf("vertex: %w", err)
		}
		p.positions = append(p.positions, v)
	case "vn":
		v, err := parseFloats3(fields[1:])
		if err != nil {
			return fmt.Errorf("normal: %w", err)
		}
		p.normals = append(p.normals, v)
	case "vt":
		if len(fields) < 3 {
			return fmt.Errorf("uv: expected 2 components, got %d", len(fields)-1)
		}
		u, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return fmt.Errorf("uv: %w", err)
		}
		v, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return fmt.Errorf("uv: %w", err)
		}
		p.uvs = append(p.uvs, math3d.V2(u, v))
	case "f":
		return p.parseFace(fields[1:])
	}
	// Unknown statements are skipped, same as groups and materials
	return nil
}

func (p *objParser) parseFace(refs []string) error {
	if len(refs) < 3 {
		return fmt.Errorf("face has %d corners, need at least 3", len(refs))
	}

	idx := make([]int, len(refs))
	for i, ref := range refs {
		v, err := p.corner(ref)
		if err != nil {
			return err
		}
		idx[i] = v
	}

	// Fan triangulation for quads and larger polygons
	for i := 1; i+1 < len(idx); i++ {
		p.mesh.Faces = append(p.mesh.Faces, Face{
			V:        [3]int{idx[0], idx[i], idx[i+1]},
			Material: -1,
		})
	}
	return nil
}

// corner resolves one v/vt/vn reference to a mesh vertex index.
func (p *objParser) corner(ref string) (int, error) {
	parts := strings.Split(ref, "/")
	if len(parts) > 3 {
		return 0, fmt.Errorf("malformed face corner %q", ref)
	}

	pi, err := resolveIndex(parts[0], len(p.positions))
	if err != nil {
		return 0, fmt.Errorf("face corner %q: %w", ref, err)
	}

	ti := -1
	if len(parts) > 1 && parts[1] != "" {
		ti, err = resolveIndex(parts[1], len(p.uvs))
		if err != nil {
			return 0, fmt.Errorf("face corner %q: %w", ref, err)
		}
	}

	ni := -1
	if len(parts) > 2 && parts[2] != "" {
		ni, err = resolveIndex(parts[2], len(p.normals))
		if err != nil {
			return 0, fmt.Errorf("face corner %q: %w", ref, err)
		}
	}

	key := [3]int{pi, ti, ni}
	if p.corners == nil {
		p.corners = make(map[[3]int]int)
	}
	if i, ok := p.corners[key]; ok {
		return i, nil
	}

	v := MeshVertex{Position: p.positions[pi]}
	if ti >= 0 {
		v.UV = p.uvs[ti]
	}
	if ni >= 0 {
		v.Normal = p.normals[ni]
		p.hasNormals = true
	}

	i := len(p.mesh.Vertices)
	p.mesh.Vertices = append(p.mesh.Vertices, v)
	p.corners[key] = i
	return i, nil
}

// resolveIndex converts a 1-based (or negative, from-the-end) OBJ index
// into a 0-based slice index.
func resolveIndex(s string, n int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad index %q", s)
	}
	switch {
	case v > 0 && v <= n:
		return v - 1, nil
	case v < 0 && -v <= n:
		return n + v, nil
	default:
		return 0, fmt.Errorf("index %d out of range (have %d)", v, n)
	}
}

func parseFloats3(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var out [3]float64
	for i := range 3 {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, err
		}
		out[i] = v
	}
	return math3d.V3(out[0], out[1], out[2]), nil
}
