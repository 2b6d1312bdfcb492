package render

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
)

// OrbitCamera orbits a center point at a spherical (yaw, pitch, distance)
// offset and exposes the (eye, center, up) triple through its view matrix.
type OrbitCamera struct {
	Center math3d.Vec3
	Up     math3d.Vec3

	// Spherical coordinates around Center
	Yaw      float64 // Rotation around Y (radians)
	Pitch    float64 // Elevation (radians), clamped short of the poles
	Distance float64

	// Projection parameters
	FOV         float64 // Vertical field of view in radians
	AspectRatio float64 // Width / Height
	Near        float64
	Far         float64

	// Cached matrices (computed on demand)
	viewMatrix math3d.Mat4
	projMatrix math3d.Mat4
	viewDirty  bool
	projDirty  bool
}

const (
	maxPitch    = math.Pi/2 - 0.01
	minDistance = 0.5
)

// NewOrbitCamera creates a camera orbiting the origin with the projection
// parameters the planet viewer uses: 70 degree FOV, near 0.1, far 1000.
func NewOrbitCamera(distance float64) *OrbitCamera {
	return &OrbitCamera{
		Center:      math3d.Zero3(),
		Up:          math3d.Up(),
		Distance:    math.Max(minDistance, distance),
		FOV:         70 * math.Pi / 180,
		AspectRatio: 4.0 / 3.0,
		Near:        0.1,
		Far:         1000,
		viewDirty:   true,
		projDirty:   true,
	}
}

// Eye returns the camera position derived from the orbit parameters.
func (c *OrbitCamera) Eye() math3d.Vec3 {
	cp := math.Cos(c.Pitch)
	offset := math3d.V3(
		math.Sin(c.Yaw)*cp,
		math.Sin(c.Pitch),
		math.Cos(c.Yaw)*cp,
	).Scale(c.Distance)
	return c.Center.Add(offset)
}

// Orbit rotates the camera around the center. Pitch is clamped to keep the
// up vector valid at the poles.
func (c *OrbitCamera) Orbit(deltaYaw, deltaPitch float64) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
	c.viewDirty = true
}

// SetOrbit places the camera at an absolute yaw and pitch.
func (c *OrbitCamera) SetOrbit(yaw, pitch float64) {
	c.Yaw = yaw
	c.Pitch = pitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
	c.viewDirty = true
}

// Zoom moves the camera toward (positive delta) or away from the center,
// clamped to a near floor.
func (c *OrbitCamera) Zoom(delta float64) {
	c.Distance -= delta
	if c.Distance < minDistance {
		c.Distance = minDistance
	}
	c.viewDirty = true
}

// MoveCenter translates the orbit target.
func (c *OrbitCamera) MoveCenter(delta math3d.Vec3) {
	c.Center = c.Center.Add(delta)
	c.viewDirty = true
}

// SetAspectRatio sets the aspect ratio.
func (c *OrbitCamera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
	c.projDirty = true
}

// SetFOV sets the field of view (in radians).
func (c *OrbitCamera) SetFOV(fov float64) {
	c.FOV = fov
	c.projDirty = true
}

// SetClipPlanes sets the near and far planes.
func (c *OrbitCamera) SetClipPlanes(near, far float64) {
	c.Near = near
	c.Far = far
	c.projDirty = true
}

// ViewMatrix returns the look-at view matrix, recomputed only when the
// orbit parameters changed.
func (c *OrbitCamera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		c.viewMatrix = math3d.LookAt(c.Eye(), c.Center, c.Up)
		c.viewDirty = false
	}
	return c.viewMatrix
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *OrbitCamera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.projMatrix = math3d.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
		c.projDirty = false
	}
	return c.projMatrix
}
