package shader

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/render"
)

// SaturnRings renders concentric bands over the x,z plane of a flattened
// disc mesh, with soft edges between bands and a touch of radial noise.
type SaturnRings struct{}

func (SaturnRings) Name() string { return "saturn-rings" }

func (SaturnRings) Shade(frag render.Fragment, u *render.Uniforms) (render.Color, error) {
	rx := frag.Position.X
	rz := frag.Position.Z
	dist := math.Hypot(rx, rz)

	const (
		numBands    = 8
		maxDistance = 1.5
	)
	bandWidth := maxDistance / float64(numBands)
	bandIndex := int(math.Floor(dist / bandWidth))

	bandColors := []render.Color{
		render.RGB(225, 190, 160),
		render.RGB(245, 230, 200),
		render.RGB(255, 255, 240),
		render.RGB(200, 180, 150),
		render.RGB(230, 210, 190),
	}
	base := bandColors[mod(bandIndex, len(bandColors))]

	edge := math.Mod(dist, bandWidth) / bandWidth
	smoothEdge := clamp01(1 - edge)

	lightDir := math3d.V3(1, 1, 3).Sub(frag.Position).Normalize()
	diffuse := math.Max(0, frag.Normal.Normalize().Dot(lightDir))

	const ambient = 0.3
	lightFactor := ambient + (1-ambient)*diffuse

	lit := render.MultiplyColor(base, smoothEdge*lightFactor)
	n := u.Noise.Sample2(rx*10, rz*10) * 0.1
	return render.MultiplyColor(lit, 1+n), nil
}
