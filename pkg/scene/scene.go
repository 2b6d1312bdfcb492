// Package scene composes bodies, camera and materials into rendered frames.
// A scene owns its framebuffer; viewers drive it with Advance/Render and
// present the pixels however they like.
package scene

import (
	"fmt"
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/models"
	"github.com/taigrr/orrery/pkg/noise"
	"github.com/taigrr/orrery/pkg/render"
	"github.com/taigrr/orrery/pkg/shader"
)

// Moon orbit parameters, relative to its planet.
const (
	MoonScale      = 0.5
	MoonDistance   = 2.5
	MoonOrbitSpeed = 0.001 // radians per frame
)

// Ring disc parameters in body object space (the planet sphere has radius 1
// before the body scale applies).
const (
	ringInner = 1.1
	ringOuter = 1.5
	ringTilt  = 0.35
)

// Body is one renderable object: a mesh shaded by a material, with its own
// noise fields and placement.
type Body struct {
	Name     string
	Material shader.Material

	Seed      int64
	Frequency float64
	CloudSeed int64 // 0 means no cloud field

	Scale       float64
	Translation math3d.Vec3
	Rotation    math3d.Vec3
	Spin        float64 // y rotation per frame

	noise  *noise.FBM
	clouds *noise.FBM
}

// bodyFor builds the body configuration for a selectable material, with the
// noise seed and frequency each surface was tuned against.
func bodyFor(m shader.Material) Body {
	b := Body{
		Name:      m.Name(),
		Material:  m,
		Scale:     2,
		Frequency: 0.005,
		Spin:      0.005,
	}

	switch m.Name() {
	case "sun":
		b.Seed, b.Frequency = 42, 0.002
	case "mars":
		b.Seed, b.Frequency = 5678, 0.005
	case "moon":
		b.Seed, b.Frequency = 42, 0.005
	case "earth":
		b.Seed, b.Frequency = 1117, 0.8
		b.CloudSeed = 2412
	case "jupiter", "saturn":
		b.Seed, b.Frequency = 31, 0.9
	case "uranus":
		b.Seed, b.Frequency = 77, 1.4
	case "mercury", "mercury-cratered":
		b.Seed, b.Frequency = 19, 0.9
	}

	b.buildNoise()
	return b
}

func (b *Body) buildNoise() {
	b.noise = noise.NewFBM(b.Seed, b.Frequency)
	if b.CloudSeed != 0 {
		b.clouds = noise.NewFBM(b.CloudSeed, b.Frequency)
	}
}

// MoonPosition returns the moon's orbital offset from its planet at the
// given frame.
func MoonPosition(time int, distance, speed float64) math3d.Vec3 {
	angle := float64(time) * speed
	return math3d.V3(distance*math.Cos(angle), 0, distance*math.Sin(angle))
}

// Scene renders a primary body (plus companions) into a framebuffer.
type Scene struct {
	Camera *render.OrbitCamera

	fb     *render.Framebuffer
	raster *render.Rasterizer

	primary Body
	moon    Body
	verts   []render.Vertex

	rings     shader.Material
	ringVerts []render.Vertex

	time      int
	paused    bool
	wireframe bool
}

// NewScene creates a scene rendering into a fresh width x height
// framebuffer, with a procedural sphere mesh and the sun selected.
func NewScene(width, height int) *Scene {
	fb := render.NewFramebuffer(width, height)
	fb.SetBackground(render.ColorSpace)
	fb.Clear()

	cam := render.NewOrbitCamera(3)
	cam.SetAspectRatio(float64(width) / float64(height))

	s := &Scene{
		Camera: cam,
		fb:     fb,
		raster: render.NewRasterizer(fb),
		rings:  shader.SaturnRings{},
	}
	s.SetMesh(models.Sphere(1, 32, 48))
	s.ringVerts = FlattenMesh(models.RingDisc(ringInner, ringOuter, 64))
	s.Select(shader.Sun{})

	moon := bodyFor(shader.Moon)
	moon.Scale = MoonScale
	s.moon = moon

	return s
}

// Resize returns a scene rendering at the new dimensions with the same
// mesh, bodies, camera pose and playback state.
func (s *Scene) Resize(width, height int) *Scene {
	n := NewScene(width, height)
	n.verts = s.verts
	n.primary = s.primary
	n.moon = s.moon
	n.time = s.time
	n.paused = s.paused
	n.wireframe = s.wireframe
	n.Camera.Distance = s.Camera.Distance
	n.Camera.SetOrbit(s.Camera.Yaw, s.Camera.Pitch)
	return n
}

// SetMesh replaces the body mesh used for every planet.
func (s *Scene) SetMesh(m *models.Mesh) {
	s.verts = FlattenMesh(m)
}

// Select makes the given material the primary body's surface.
func (s *Scene) Select(m shader.Material) {
	s.primary = bodyFor(m)
}

// MaterialName returns the primary body's material name.
func (s *Scene) MaterialName() string {
	return s.primary.Name
}

// Framebuffer returns the scene's render target.
func (s *Scene) Framebuffer() *render.Framebuffer {
	return s.fb
}

// Time returns the current frame counter.
func (s *Scene) Time() int {
	return s.time
}

// Seek jumps the frame counter to an absolute value. Headless exports use
// this to render frames out of order.
func (s *Scene) Seek(time int) {
	s.time = time
}

// Paused reports whether Advance is currently a no-op.
func (s *Scene) Paused() bool {
	return s.paused
}

// TogglePause flips the animation pause state.
func (s *Scene) TogglePause() {
	s.paused = !s.paused
}

// Wireframe reports whether the debug edge overlay is enabled.
func (s *Scene) Wireframe() bool {
	return s.wireframe
}

// ToggleWireframe flips the debug edge overlay.
func (s *Scene) ToggleWireframe() {
	s.wireframe = !s.wireframe
}

// Advance steps the frame counter, which drives body spin, the moon orbit
// and every animated material.
func (s *Scene) Advance() {
	if !s.paused {
		s.time++
	}
}

// Render draws the current frame into the framebuffer: the primary body,
// the moon when Mars is selected, and the ring disc when Saturn is.
func (s *Scene) Render() error {
	s.fb.Clear()

	if err := s.renderBody(&s.primary, s.verts); err != nil {
		return fmt.Errorf("render %s: %w", s.primary.Name, err)
	}

	if s.primary.Name == "mars" {
		s.moon.Translation = MoonPosition(s.time, MoonDistance, MoonOrbitSpeed)
		if err := s.renderBody(&s.moon, s.verts); err != nil {
			return fmt.Errorf("render moon: %w", err)
		}
	}

	if s.primary.Name == "saturn" {
		ringBody := s.primary
		ringBody.Material = s.rings
		ringBody.Rotation = math3d.V3(ringTilt, 0, 0)
		if err := s.renderBody(&ringBody, s.ringVerts); err != nil {
			return fmt.Errorf("render rings: %w", err)
		}
	}

	return nil
}

// Uniforms builds the per-render-call parameter bundle for a body at the
// current time.
func (s *Scene) Uniforms(b *Body) *render.Uniforms {
	rotation := b.Rotation.Add(math3d.V3(0, b.Spin*float64(s.time), 0))
	return &render.Uniforms{
		Model:      math3d.ModelMatrix(b.Translation, b.Scale, rotation),
		View:       s.Camera.ViewMatrix(),
		Projection: s.Camera.ProjectionMatrix(),
		Viewport:   math3d.Viewport(float64(s.fb.Width), float64(s.fb.Height)),
		Time:       s.time,
		Noise:      b.noise,
		CloudNoise: b.clouds,
	}
}

func (s *Scene) renderBody(b *Body, verts []render.Vertex) error {
	u := s.Uniforms(b)
	if err := s.raster.DrawVertices(verts, u, b.Material.Shade); err != nil {
		return err
	}
	if s.wireframe {
		s.raster.DrawWireframe(verts, u, render.ColorWhite)
	}
	return nil
}

// FlattenMesh expands a mesh's indexed faces into the flat vertex-triple
// stream the rasterizer consumes. Face material base colors become vertex
// colors; faces without a material default to white.
func FlattenMesh(m *models.Mesh) []render.Vertex {
	verts := make([]render.Vertex, 0, m.TriangleCount()*3)
	for i := range m.Faces {
		f := &m.Faces[i]
		col := render.ColorWhite
		if mat := m.GetMaterial(f.Material); mat != nil {
			col = render.FromFloat(mat.BaseColor[0], mat.BaseColor[1], mat.BaseColor[2])
		}
		for _, vi := range f.V {
			v := m.Vertices[vi]
			verts = append(verts, render.Vertex{
				Position: v.Position,
				Normal:   v.Normal,
				UV:       v.UV,
				Color:    col,
			})
		}
	}
	return verts
}
