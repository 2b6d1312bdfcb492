package shader

import (
	"math"

	"github.com/taigrr/orrery/pkg/render"
)

// The toy materials are simple animated test patterns, useful for checking
// interpolation and timing without any noise field involved.

// Stripes scrolls horizontal red/blue bands across the surface.
type Stripes struct{}

func (Stripes) Name() string { return "stripes" }

func (Stripes) Shade(frag render.Fragment, u *render.Uniforms) (render.Color, error) {
	const (
		stripeWidth = 0.2
		speed       = 0.002
	)
	movingY := frag.Position.Y + float64(u.Time)*speed
	factor := math.Sin(movingY/stripeWidth*math.Pi)*0.5 + 0.5
	c := render.LerpColor(render.RGB(255, 0, 0), render.RGB(0, 0, 255), factor)
	return render.MultiplyColor(c, frag.Intensity), nil
}

// PolkaDots drifts a grid of red dots over a light background.
type PolkaDots struct{}

func (PolkaDots) Name() string { return "polka" }

func (PolkaDots) Shade(frag render.Fragment, u *render.Uniforms) (render.Color, error) {
	const (
		dotSize    = 0.1
		dotSpacing = 0.3
		speed      = 0.001
	)
	t := float64(u.Time)
	movingX := frag.Position.X + t*speed
	movingY := frag.Position.Y - t*speed*0.5

	patternX := math.Cos(movingX / dotSpacing * 2 * math.Pi)
	patternY := math.Cos(movingY / dotSpacing * 2 * math.Pi)
	dotPattern := math.Max(0, patternX*patternY)
	dotFactor := math.Max(0, dotPattern-(1-dotSize)) / dotSize

	c := render.LerpColor(render.RGB(250, 250, 250), render.RGB(255, 0, 0), dotFactor)
	return render.MultiplyColor(c, frag.Intensity), nil
}

// Disco tiles the surface with mirror facets and sweeps colored spotlights
// around it.
type Disco struct{}

func (Disco) Name() string { return "disco" }

func (Disco) Shade(frag render.Fragment, u *render.Uniforms) (render.Color, error) {
	base := render.RGB(100, 100, 210)
	light := render.ColorWhite

	const (
		tileFreqX = 20.0
		tileFreqY = 40.0
		tileFreqZ = 20.0
		tileScale = 0.05

		lightSpeed = 0.05
		numLights  = 5
		lightSize  = 0.15
	)

	x := frag.Position.X
	y := frag.Position.Y
	z := frag.Position.Z

	tile := math.Min(1,
		(math.Abs(math.Sin(x*tileFreqX))*0.5+0.5)*
			(math.Abs(math.Sin(y*tileFreqY))*0.8+0.2)*
			(math.Abs(math.Sin(z*tileFreqZ))*0.5+0.5)*
			tileScale)

	normal := frag.Normal.Normalize()
	intensity := math.Max(0, -normal.Z)

	lightFactor := 0.0
	for i := range numLights {
		angle := 2*math.Pi*float64(i)/numLights + float64(u.Time)*lightSpeed
		lx := (math.Cos(angle)*0.5+0.5)*0.8 + 0.1
		ly := (math.Sin(angle)*0.5+0.5)*0.8 + 0.1
		dist := math.Hypot(x-lx, y-ly)
		lightFactor += math.Max(0, 1-math.Min(1, dist/lightSize))
	}
	lightFactor = math.Min(1, lightFactor)

	tileColor := render.LerpColor(base, light, tile*intensity)
	c := render.LerpColor(tileColor, light, lightFactor*0.7)
	return render.MultiplyColor(c, frag.Intensity), nil
}

// ColorCycle fades the whole surface through a fixed palette over time.
type ColorCycle struct{}

func (ColorCycle) Name() string { return "cycle" }

func (ColorCycle) Shade(frag render.Fragment, u *render.Uniforms) (render.Color, error) {
	colors := []render.Color{
		render.RGB(255, 0, 0),
		render.RGB(0, 255, 0),
		render.RGB(0, 0, 255),
		render.RGB(255, 255, 0),
		render.RGB(255, 0, 255),
		render.RGB(0, 255, 255),
	}

	const framesPerColor = 100
	idx := u.Time / framesPerColor % len(colors)
	progress := float64(u.Time%framesPerColor) / framesPerColor

	c := render.LerpColor(colors[idx], colors[(idx+1)%len(colors)], progress)
	return render.MultiplyColor(c, frag.Intensity), nil
}

// VertexColor passes the interpolated vertex color through, scaled by the
// fragment intensity. Used for meshes that carry their own colors.
type VertexColor struct{}

func (VertexColor) Name() string { return "vertex" }

func (VertexColor) Shade(frag render.Fragment, _ *render.Uniforms) (render.Color, error) {
	return render.MultiplyColor(frag.Color, frag.Intensity), nil
}
