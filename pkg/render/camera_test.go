package render

import (
	"math"
	"testing"

	"github.com/taigrr/orrery/pkg/math3d"
)

func vecNear(t *testing.T, got, want math3d.Vec3, tol float64) {
	t.Helper()
	if math.Abs(got.X-want.X) > tol || math.Abs(got.Y-want.Y) > tol || math.Abs(got.Z-want.Z) > tol {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOrbitCameraDefaultEye(t *testing.T) {
	cam := NewOrbitCamera(3)
	vecNear(t, cam.Eye(), math3d.V3(0, 0, 3), 0.001)
}

func TestOrbitMovesEyeAroundCenter(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float64
		want       math3d.Vec3
	}{
		{"quarter turn", math.Pi / 2, 0, math3d.V3(3, 0, 0)},
		{"half turn", math.Pi, 0, math3d.V3(0, 0, -3)},
		{"looking down", 0, math.Pi / 4, math3d.V3(0, 3*math.Sqrt2/2, 3*math.Sqrt2/2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewOrbitCamera(3)
			cam.Orbit(tt.yaw, tt.pitch)
			vecNear(t, cam.Eye(), tt.want, 0.001)

			// Distance from center must be preserved by orbiting
			if d := cam.Eye().Len(); math.Abs(d-3) > 0.001 {
				t.Errorf("orbit changed distance: %f", d)
			}
		})
	}
}

func TestOrbitClampsPitchAtPoles(t *testing.T) {
	cam := NewOrbitCamera(3)
	cam.Orbit(0, 10)
	if cam.Pitch >= math.Pi/2 {
		t.Errorf("pitch not clamped below the pole: %f", cam.Pitch)
	}
	cam.Orbit(0, -20)
	if cam.Pitch <= -math.Pi/2 {
		t.Errorf("pitch not clamped above the south pole: %f", cam.Pitch)
	}
}

func TestSetOrbitIsAbsolute(t *testing.T) {
	cam := NewOrbitCamera(3)
	cam.Orbit(1.0, 0.5)
	cam.SetOrbit(math.Pi/2, 0)
	vecNear(t, cam.Eye(), math3d.V3(3, 0, 0), 0.001)
}

func TestZoomClampsMinDistance(t *testing.T) {
	cam := NewOrbitCamera(3)
	cam.Zoom(1)
	if math.Abs(cam.Distance-2) > 0.001 {
		t.Errorf("zoom in: distance = %f, want 2", cam.Distance)
	}
	cam.Zoom(100)
	if cam.Distance < 0.5-0.001 {
		t.Errorf("distance fell below floor: %f", cam.Distance)
	}
}

func TestViewMatrixCachedUntilDirty(t *testing.T) {
	cam := NewOrbitCamera(3)
	before := cam.ViewMatrix()
	if got := cam.ViewMatrix(); got != before {
		t.Error("view matrix changed without a camera update")
	}
	cam.Orbit(0.5, 0)
	if got := cam.ViewMatrix(); got == before {
		t.Error("view matrix not recomputed after Orbit")
	}
}

func TestViewMatrixTransformsEyeToOrigin(t *testing.T) {
	cam := NewOrbitCamera(3)
	cam.Orbit(0.7, 0.3)

	eye := cam.Eye()
	p := cam.ViewMatrix().MulVec4(math3d.V4(eye.X, eye.Y, eye.Z, 1))
	if math.Abs(p.X) > 0.001 || math.Abs(p.Y) > 0.001 || math.Abs(p.Z) > 0.001 {
		t.Errorf("eye maps to %v, want origin", p)
	}
}

func TestProjectionRespondsToAspect(t *testing.T) {
	cam := NewOrbitCamera(3)
	wide := cam.ProjectionMatrix()
	cam.SetAspectRatio(2.0)
	if cam.ProjectionMatrix() == wide {
		t.Error("projection not recomputed after aspect change")
	}
}
