// Package shader implements the procedural surface materials. Each material
// turns one rasterized fragment into a final color using the noise fields
// and frame counter carried in the uniforms.
package shader

import (
	"errors"
	"fmt"
	"math"

	"github.com/taigrr/orrery/pkg/render"
)

// ErrNonFiniteDiffuse reports a NaN or infinite diffuse term, which means a
// degenerate normal or light vector reached the shading stage. The render
// call that hit it aborts.
var ErrNonFiniteDiffuse = errors.New("non-finite diffuse intensity")

// Material shades fragments for one body surface. Implementations are pure
// functions of (fragment, uniforms); identical inputs always produce the
// same color.
type Material interface {
	// Name is the stable identifier shown in the viewers' status line.
	Name() string
	// Shade computes the fragment's final color. An error aborts the
	// whole render call; see ErrNonFiniteDiffuse.
	Shade(frag render.Fragment, u *render.Uniforms) (render.Color, error)
}

// Catalog returns every material, planets first in their key order, then
// the toy patterns. The slice is freshly allocated on each call.
func Catalog() []Material {
	return []Material{
		Sun{},
		Mars,
		Moon,
		Earth{},
		Jupiter,
		Saturn,
		Uranus{},
		Mercury{},
		MercuryCratered,
		SaturnRings{},
		Stripes{},
		PolkaDots{},
		Disco{},
		ColorCycle{},
		VertexColor{},
	}
}

// checkDiffuse validates a diffuse term before it scales a color.
func checkDiffuse(d float64, name string) error {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return fmt.Errorf("%s: %w", name, ErrNonFiniteDiffuse)
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
