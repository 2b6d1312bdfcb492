package noise

import "math"

// Kind selects the fractal layering applied to the base noise.
type Kind int

const (
	// KindFBM sums octaves of plain Perlin noise.
	KindFBM Kind = iota
	// KindRidged folds each octave around zero for sharp crest lines.
	KindRidged
)

// FBM samples fractal (multi-octave) coherent noise. Each octave doubles in
// frequency by Lacunarity and shrinks in amplitude by Gain; the sum is
// renormalized so results stay in approximately [-1, 1].
type FBM struct {
	Octaves    int
	Lacunarity float64
	Gain       float64
	Frequency  float64
	Kind       Kind

	perlin *Perlin
}

// NewFBM creates a fractal noise field with the given seed and the defaults
// used by the planet materials: 6 octaves, lacunarity 2, gain 0.5.
func NewFBM(seed int64, frequency float64) *FBM {
	return &FBM{
		Octaves:    6,
		Lacunarity: 2.0,
		Gain:       0.5,
		Frequency:  frequency,
		Kind:       KindFBM,
		perlin:     NewPerlin(seed),
	}
}

// Sample3 returns the fractal noise value at a 3D coordinate.
func (f *FBM) Sample3(x, y, z float64) float64 {
	freq := f.Frequency
	amp := 1.0
	sum := 0.0
	norm := 0.0

	for range f.Octaves {
		n := f.perlin.Noise3D(x*freq, y*freq, z*freq)
		if f.Kind == KindRidged {
			n = 1 - 2*math.Abs(n)
		}
		sum += n * amp
		norm += amp
		freq *= f.Lacunarity
		amp *= f.Gain
	}

	if norm == 0 {
		return 0
	}
	return sum / norm
}

// Sample2 returns the fractal noise value at a 2D coordinate.
func (f *FBM) Sample2(x, y float64) float64 {
	return f.Sample3(x, y, 0)
}
