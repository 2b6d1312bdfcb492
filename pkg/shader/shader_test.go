package shader

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/noise"
	"github.com/taigrr/orrery/pkg/render"
)

func testUniforms(time int) *render.Uniforms {
	return &render.Uniforms{
		Time:       time,
		Noise:      noise.NewFBM(42, 0.002),
		CloudNoise: noise.NewFBM(1234, 0.005),
	}
}

func testFragment() render.Fragment {
	return render.Fragment{
		X: 4, Y: 7,
		Depth:     0.5,
		Normal:    math3d.V3(0, 0, 1),
		Intensity: 1,
		Position:  math3d.V3(0.3, 0.2, 0.1),
		Color:     render.ColorWhite,
	}
}

func TestCatalogNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Catalog() {
		name := m.Name()
		if name == "" {
			t.Errorf("material %T has empty name", m)
		}
		if seen[name] {
			t.Errorf("duplicate material name %q", name)
		}
		seen[name] = true
	}
}

func TestCatalogCovers(t *testing.T) {
	want := []string{
		"sun", "mars", "moon", "mercury", "mercury-cratered",
		"earth", "jupiter", "saturn", "saturn-rings", "uranus",
		"stripes", "polka", "disco", "cycle", "vertex",
	}
	have := map[string]bool{}
	for _, m := range Catalog() {
		have[m.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("material %q missing", name)
		}
	}
}

func TestShadeDeterministic(t *testing.T) {
	frag := testFragment()
	for _, m := range Catalog() {
		t.Run(m.Name(), func(t *testing.T) {
			u1 := testUniforms(37)
			u2 := testUniforms(37)
			c1, err1 := m.Shade(frag, u1)
			c2, err2 := m.Shade(frag, u2)
			if err1 != nil || err2 != nil {
				t.Fatalf("shade errors: %v, %v", err1, err2)
			}
			if c1 != c2 {
				t.Errorf("not deterministic: %v vs %v", c1, c2)
			}
		})
	}
}

func TestShadeVariesOverSurface(t *testing.T) {
	// Noise-driven materials must not paint a flat color.
	materials := []Material{Sun{}, Mars, Earth{}, Jupiter, Uranus{}}
	for _, m := range materials {
		t.Run(m.Name(), func(t *testing.T) {
			u := testUniforms(0)
			colors := map[render.Color]bool{}
			for i := range 32 {
				frag := testFragment()
				frag.Position = math3d.V3(float64(i)*0.7, float64(i)*0.3, 0.1)
				c, err := m.Shade(frag, u)
				if err != nil {
					t.Fatalf("shade: %v", err)
				}
				colors[c] = true
			}
			if len(colors) < 2 {
				t.Error("all sampled fragments shaded identically")
			}
		})
	}
}

func TestNonFiniteDiffuse(t *testing.T) {
	// Jupiter, Saturn and Mercury derive their light direction from the
	// fragment position, so a non-finite position poisons the diffuse
	// term. Uranus lights along a constant direction; only a corrupt
	// normal reaches its guard.
	tests := []struct {
		material Material
		position math3d.Vec3
		normal   math3d.Vec3
	}{
		{Jupiter, math3d.V3(math.NaN(), 0.2, 0.1), math3d.V3(0.3, 0.4, 0.8)},
		{Saturn, math3d.V3(math.Inf(1), 0.2, 0.1), math3d.V3(0.3, 0.4, 0.8)},
		{Mercury{}, math3d.V3(math.NaN(), 0.2, 0.1), math3d.V3(0.3, 0.4, 0.8)},
		{Uranus{}, math3d.V3(0.3, 0.2, 0.1), math3d.V3(math.NaN(), 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.material.Name(), func(t *testing.T) {
			frag := testFragment()
			frag.Position = tc.position
			frag.Normal = tc.normal
			_, err := tc.material.Shade(frag, testUniforms(0))
			if !errors.Is(err, ErrNonFiniteDiffuse) {
				t.Fatalf("error = %v, want ErrNonFiniteDiffuse", err)
			}
			if !strings.Contains(err.Error(), tc.material.Name()) {
				t.Errorf("error %q does not name the material", err)
			}
		})
	}
}

func TestIntensityScaling(t *testing.T) {
	materials := []Material{Sun{}, Mars, Stripes{}, ColorCycle{}, VertexColor{}}
	for _, m := range materials {
		t.Run(m.Name(), func(t *testing.T) {
			u := testUniforms(10)

			dark := testFragment()
			dark.Intensity = 0
			c, err := m.Shade(dark, u)
			if err != nil {
				t.Fatalf("shade: %v", err)
			}
			if c.R != 0 || c.G != 0 || c.B != 0 {
				t.Errorf("zero intensity shaded %v, want black", c)
			}

			full := testFragment()
			half := testFragment()
			half.Intensity = 0.5
			cf, _ := m.Shade(full, u)
			ch, _ := m.Shade(half, u)
			if ch.R > cf.R || ch.G > cf.G || ch.B > cf.B {
				t.Errorf("half intensity %v brighter than full %v", ch, cf)
			}
		})
	}
}

func TestTerrainAnimates(t *testing.T) {
	frag := testFragment()
	c0, err := Mars.Shade(frag, testUniforms(0))
	if err != nil {
		t.Fatalf("shade: %v", err)
	}
	c1, err := Mars.Shade(frag, testUniforms(500))
	if err != nil {
		t.Fatalf("shade: %v", err)
	}
	if c0 == c1 {
		t.Error("surface light did not change over time")
	}
}

func TestEarthCloudNoiseFallback(t *testing.T) {
	u := testUniforms(0)
	u.CloudNoise = nil
	if _, err := (Earth{}).Shade(testFragment(), u); err != nil {
		t.Fatalf("shade without cloud field: %v", err)
	}
}

func TestSaturnRingsBandsByRadius(t *testing.T) {
	u := testUniforms(0)
	rings := SaturnRings{}

	// Two fragments in neighboring bands get different base colors.
	inner := testFragment()
	inner.Position = math3d.V3(0.05, 0, 0)
	outer := testFragment()
	outer.Position = math3d.V3(0.25, 0, 0)

	ci, err := rings.Shade(inner, u)
	if err != nil {
		t.Fatalf("shade: %v", err)
	}
	co, err := rings.Shade(outer, u)
	if err != nil {
		t.Fatalf("shade: %v", err)
	}
	if ci == co {
		t.Error("different ring bands shaded identically")
	}
}

func TestColorCyclePalette(t *testing.T) {
	frag := testFragment()
	cycle := ColorCycle{}

	// At exact multiples of the cycle period the palette color shows
	// unblended.
	c, err := cycle.Shade(frag, testUniforms(0))
	if err != nil {
		t.Fatalf("shade: %v", err)
	}
	if c != render.RGB(255, 0, 0) {
		t.Errorf("frame 0 = %v, want pure red", c)
	}
	c, _ = cycle.Shade(frag, testUniforms(100))
	if c != render.RGB(0, 255, 0) {
		t.Errorf("frame 100 = %v, want pure green", c)
	}
}

func BenchmarkMarsShade(b *testing.B) {
	u := testUniforms(10)
	frag := testFragment()
	for b.Loop() {
		_, _ = Mars.Shade(frag, u)
	}
}

func BenchmarkSunShade(b *testing.B) {
	u := testUniforms(10)
	frag := testFragment()
	for b.Loop() {
		_, _ = Sun{}.Shade(frag, u)
	}
}
