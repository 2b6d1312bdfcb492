package shader

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/render"
)

// GasBands renders a banded gas giant: a latitude sine wave, distorted by
// low-frequency noise so the bands wander, indexes into a small color ramp.
// Jupiter and Saturn are presets sharing the band algorithm.
type GasBands struct {
	Label  string
	Colors [3]render.Color

	BandFrequency  float64
	NoiseIntensity float64
	// Turbulence washes the band color toward white to suggest storms.
	Turbulence float64

	LampPos math3d.Vec3
	Ambient float64
}

var (
	Jupiter = &GasBands{
		Label: "jupiter",
		Colors: [3]render.Color{
			render.Hex(0xc6bcad),
			render.Hex(0x955d36),
			render.Hex(0xc7c7cf),
		},
		BandFrequency:  10,
		NoiseIntensity: 0.2,
		Turbulence:     0.3,
		LampPos:        math3d.V3(0, 8, 9),
		Ambient:        0.15,
	}

	Saturn = &GasBands{
		Label: "saturn",
		Colors: [3]render.Color{
			render.Hex(0xc6bcad),
			render.Hex(0x955d36),
			render.Hex(0xc7c7cf),
		},
		BandFrequency:  10,
		NoiseIntensity: 0.2,
		Turbulence:     0.3,
		LampPos:        math3d.V3(0, 8, 9),
		Ambient:        0.15,
	}
)

func (g *GasBands) Name() string { return g.Label }

func (g *GasBands) Shade(frag render.Fragment, u *render.Uniforms) (render.Color, error) {
	latitude := frag.Position.Y
	bandNoise := u.Noise.Sample2(frag.Position.X*2, frag.Position.Y*2)
	distorted := latitude + bandNoise*g.NoiseIntensity
	pattern := math.Sin(distorted * g.BandFrequency)

	// Map [-1,1] onto the ramp and blend between neighboring stops.
	normalized := (pattern + 1) / 2 * float64(len(g.Colors)-1)
	idx := int(math.Floor(normalized))
	t := normalized - math.Floor(normalized)
	c1 := g.Colors[mod(idx, len(g.Colors))]
	c2 := g.Colors[mod(idx+1, len(g.Colors))]
	base := render.LerpColor(c1, c2, t)

	turbulent := render.LerpColor(base, render.ColorWhite, g.Turbulence)

	lightDir := g.LampPos.Sub(frag.Position).Normalize()
	diffuse := math.Max(0, frag.Normal.Normalize().Dot(lightDir))
	if err := checkDiffuse(diffuse, g.Label); err != nil {
		return render.Color{}, err
	}

	ambient := render.MultiplyColor(turbulent, g.Ambient)
	lit := render.MultiplyColor(turbulent, diffuse)
	return render.BlendAdd(ambient, lit), nil
}

// Uranus renders a smooth pale-blue atmosphere whose features drift on the
// y axis over time.
type Uranus struct{}

func (Uranus) Name() string { return "uranus" }

func (Uranus) Shade(frag render.Fragment, u *render.Uniforms) (render.Color, error) {
	t := float64(u.Time) * 0.001
	n := u.Noise.Sample3(frag.Position.X, frag.Position.Y+t, frag.Position.Z)

	base := render.FromFloat(0.2, 0.5, 0.9)
	varied := render.MultiplyColor(base, clamp01(n*0.5+0.5))

	lightDir := math3d.V3(1, 1, 1).Normalize()
	diffuse := math.Max(0, frag.Normal.Normalize().Dot(lightDir))
	if err := checkDiffuse(diffuse, "uranus"); err != nil {
		return render.Color{}, err
	}

	const ambient = 0.3
	return render.MultiplyColor(varied, ambient+(1-ambient)*diffuse), nil
}

// Mercury renders a plain rocky surface from a single 2D noise sample run
// through a gray-to-brown ramp; the cratered preset lives in terrain.go.
type Mercury struct{}

func (Mercury) Name() string { return "mercury" }

func (Mercury) Shade(frag render.Fragment, u *render.Uniforms) (render.Color, error) {
	n := clamp01(u.Noise.Sample2(frag.Position.X, frag.Position.Y))

	grayLight := render.FromFloat(0.7, 0.7, 0.7)
	grayDark := render.FromFloat(0.4, 0.4, 0.4)
	brown := render.FromFloat(0.5, 0.4, 0.3)
	base := render.LerpColor(render.LerpColor(grayLight, grayDark, n), brown, n*0.5)

	lightDir := math3d.V3(0, 8, 9).Sub(frag.Position).Normalize()
	diffuse := math.Max(0, frag.Normal.Normalize().Dot(lightDir))
	if err := checkDiffuse(diffuse, "mercury"); err != nil {
		return render.Color{}, err
	}

	lit := render.MultiplyColor(base, diffuse)
	ambient := render.MultiplyColor(base, 0.2)
	return render.BlendAdd(ambient, lit), nil
}

func mod(i, n int) int {
	return ((i % n) + n) % n
}
