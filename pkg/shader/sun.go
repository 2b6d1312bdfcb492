package shader

import (
	"math"

	"github.com/taigrr/orrery/pkg/render"
)

// Sun renders a boiling lava surface: two offset samples of the 3D noise
// field averaged for smoother cells, with a slow sine pulsate on the depth
// axis so the spots grow and shrink over time.
type Sun struct{}

func (Sun) Name() string { return "sun" }

func (Sun) Shade(frag render.Fragment, u *render.Uniforms) (render.Color, error) {
	bright := render.RGB(255, 240, 0)
	dark := render.RGB(130, 20, 0)

	x := frag.Position.X
	y := frag.Position.Y
	z := frag.Depth

	const (
		zoom             = 1000.0
		baseFrequency    = 0.2
		pulsateAmplitude = 0.5
	)
	t := float64(u.Time) * 0.30
	pulsate := math.Sin(t*baseFrequency) * pulsateAmplitude

	n1 := u.Noise.Sample3(x*zoom, y*zoom, (z+pulsate)*zoom)
	n2 := u.Noise.Sample3((x+1000)*zoom, (y+1000)*zoom, (z+1000+pulsate)*zoom)
	n := (n1 + n2) * 0.5

	c := render.LerpColor(dark, bright, n)
	return render.MultiplyColor(c, frag.Intensity), nil
}
