package shader

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/render"
)

// Earth renders continents and oceans from a 2D slice of the surface noise,
// with a second noise field scrolled over time as a translucent cloud layer.
type Earth struct{}

func (Earth) Name() string { return "earth" }

func (Earth) Shade(frag render.Fragment, u *render.Uniforms) (render.Color, error) {
	x := frag.Position.X
	y := frag.Position.Y
	t := float64(u.Time)

	clouds := u.CloudNoise
	if clouds == nil {
		clouds = u.Noise
	}

	base := u.Noise.Sample2(x, y)
	cloud := clouds.Sample2((x+t*0.2)*100, (y+t*0.1)*100)

	water1 := render.FromFloat(0.0, 0.1, 0.6)
	water2 := render.FromFloat(0.0, 0.3, 0.7)
	land1 := render.FromFloat(0.1, 0.5, 0.0)
	land2 := render.FromFloat(0.2, 0.8, 0.2)
	cloudColor := render.FromFloat(0.9, 0.9, 0.9)

	const landThreshold = 0.3
	var baseColor render.Color
	if base > landThreshold {
		baseColor = render.LerpColor(land1, land2, (base-landThreshold)/(1-landThreshold))
	} else {
		baseColor = render.LerpColor(water1, water2, base/landThreshold)
	}

	lightDir := math3d.V3(1, 1, 3).Sub(frag.Position).Normalize()
	diffuse := math.Max(0, frag.Normal.Normalize().Dot(lightDir))
	lit := render.MultiplyColor(baseColor, 0.1+0.9*diffuse)

	const cloudThreshold = 0.1
	if cloud <= cloudThreshold {
		return lit, nil
	}
	opacity := 0.8 + 0.2*math.Abs(math.Sin(t/1000*0.5))
	intensity := clamp01((cloud - cloudThreshold) / (1 - cloudThreshold))
	return render.BlendAdd(lit, render.MultiplyColor(cloudColor, intensity*opacity)), nil
}
