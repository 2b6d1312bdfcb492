package shader

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/render"
)

// TerrainLighting selects how a cratered surface is lit.
type TerrainLighting int

const (
	// LightingDrift modulates brightness with slow time-driven sweeps,
	// as if thin atmosphere moved across the surface.
	LightingDrift TerrainLighting = iota
	// LightingLamp lights the surface from a fixed point with an
	// ambient floor.
	LightingLamp
)

// Terrain is a configurable cratered rocky surface: layered noise fields
// pick a point on a three-stop color ramp, a sin·cos interference term digs
// craters, and extra high-frequency fields add fine texture, fractures and
// shadowing. Mars, the moon and cratered Mercury are presets of this one
// algorithm.
type Terrain struct {
	Label string

	Bright render.Color
	Mid    render.Color
	Dark   render.Color

	// Zoom scales fragment positions into the base noise field; a second
	// sample offset by SampleOffset is averaged in for smoother blotches.
	Zoom         float64
	SampleOffset float64

	CraterFrequency float64
	CraterAmplitude float64
	// ClampCrater keeps the crater term non-negative so craters only
	// brighten ridges, never darken below the base surface.
	ClampCrater bool

	FineZoom       float64
	FineWeight     float64
	FractureZoom   float64
	FractureWeight float64
	ShadowZoom     float64
	ShadowWeight   float64

	// BrightRamp stretches the upper half of the combined value onto the
	// Mid→Bright segment of the ramp.
	BrightRamp float64

	PulsateFrequency float64
	PulsateAmplitude float64

	Lighting TerrainLighting
	LampPos  math3d.Vec3 // LightingLamp only
	Ambient  float64     // LightingLamp only
}

// Preset terrain materials.
var (
	Mars = &Terrain{
		Label:            "mars",
		Bright:           render.RGB(150, 70, 30),
		Mid:              render.RGB(160, 80, 30),
		Dark:             render.RGB(100, 40, 20),
		Zoom:             1200,
		SampleOffset:     400,
		CraterFrequency:  3.0,
		CraterAmplitude:  0.6,
		FineZoom:         2500,
		FineWeight:       0.5,
		FractureZoom:     3000,
		FractureWeight:   0.3,
		ShadowZoom:       3500,
		ShadowWeight:     0.4,
		BrightRamp:       1.5,
		PulsateFrequency: 0.05,
		PulsateAmplitude: 0.1,
		Lighting:         LightingDrift,
	}

	MercuryCratered = &Terrain{
		Label:            "mercury-cratered",
		Bright:           render.FromFloat(0.9, 0.9, 0.9),
		Mid:              render.FromFloat(0.6, 0.55, 0.4),
		Dark:             render.FromFloat(0.3, 0.2, 0.1),
		Zoom:             1200,
		SampleOffset:     400,
		CraterFrequency:  3.5,
		CraterAmplitude:  0.5,
		ClampCrater:      true,
		FineZoom:         2500,
		FineWeight:       0.5,
		FractureZoom:     3000,
		FractureWeight:   0.3,
		ShadowZoom:       3500,
		ShadowWeight:     0.4,
		BrightRamp:       2.0,
		PulsateFrequency: 0.05,
		PulsateAmplitude: 0.08,
		Lighting:         LightingLamp,
		LampPos:          math3d.V3(0, 0, 5),
		Ambient:          0.3,
	}

	Moon = &Terrain{
		Label:           "moon",
		Bright:          render.FromFloat(0.85, 0.85, 0.85),
		Mid:             render.FromFloat(0.55, 0.55, 0.55),
		Dark:            render.FromFloat(0.25, 0.25, 0.25),
		Zoom:            1200,
		SampleOffset:    400,
		CraterFrequency: 3.5,
		CraterAmplitude: 0.5,
		ClampCrater:     true,
		FineZoom:        2500,
		FineWeight:      0.5,
		FractureZoom:    3000,
		FractureWeight:  0.3,
		ShadowZoom:      3500,
		ShadowWeight:    0.4,
		BrightRamp:      2.0,
		Lighting:        LightingLamp,
		LampPos:         math3d.V3(0, 0, 5),
		Ambient:         0.3,
	}
)

func (t *Terrain) Name() string { return t.Label }

func (t *Terrain) Shade(frag render.Fragment, u *render.Uniforms) (render.Color, error) {
	x := frag.Position.X
	y := frag.Position.Y
	z := frag.Depth

	n1 := u.Noise.Sample3(x*t.Zoom, y*t.Zoom, z*t.Zoom)
	n2 := u.Noise.Sample3((x+t.SampleOffset)*t.Zoom, (y+t.SampleOffset)*t.Zoom, (z+t.SampleOffset)*t.Zoom)
	n := (n1 + n2) * 0.5

	crater := math.Sin(x*t.CraterFrequency) * math.Cos(y*t.CraterFrequency) * t.CraterAmplitude
	if t.ClampCrater {
		crater = clamp01(crater)
	}
	combined := clamp01(n + crater)

	fine := u.Noise.Sample3(x*t.FineZoom, y*t.FineZoom, z*t.FineZoom) * t.FineWeight
	combined = clamp01(combined + fine)

	fracture := u.Noise.Sample3(x*t.FractureZoom, y*t.FractureZoom, z*t.FractureZoom) * t.FractureWeight
	combined = clamp01(combined + fracture)

	var base render.Color
	if combined > 0.5 {
		base = render.LerpColor(t.Mid, t.Bright, (combined-0.5)*t.BrightRamp)
	} else {
		base = render.LerpColor(t.Dark, t.Mid, combined*2)
	}

	shadow := u.Noise.Sample3(x*t.ShadowZoom, y*t.ShadowZoom, z*t.ShadowZoom) * t.ShadowWeight
	pulsate := math.Sin(float64(u.Time)*t.PulsateFrequency+x*0.02+y*0.02) * t.PulsateAmplitude

	switch t.Lighting {
	case LightingLamp:
		lightDir := t.LampPos.Sub(frag.Position).Normalize()
		diffuse := math.Max(0, frag.Normal.Normalize().Dot(lightDir))
		if err := checkDiffuse(diffuse, t.Label); err != nil {
			return render.Color{}, err
		}
		c := render.MultiplyColor(base, t.Ambient+(1-t.Ambient)*diffuse)
		c = render.MultiplyColor(c, 1-shadow)
		c = render.MultiplyColor(c, 1+pulsate)
		return render.MultiplyColor(c, frag.Intensity), nil

	default: // LightingDrift
		tt := float64(u.Time)
		lightFactor := math.Sin(y*0.5+tt*0.0015)*0.1 + 1
		directional := math.Cos(x*0.3+tt*0.002)*0.05 + 1
		c := render.MultiplyColor(base, lightFactor*directional)
		c = render.MultiplyColor(c, 1+pulsate)
		c = render.MultiplyColor(c, 1-shadow)
		return render.MultiplyColor(c, frag.Intensity), nil
	}
}
