// Package noise provides seeded coherent noise for procedural surfaces.
package noise

import (
	"math"
	"math/rand"
)

// Perlin generates improved Perlin noise from a seeded permutation table.
// Values are deterministic for a given seed and coordinate.
type Perlin struct {
	perm [512]int
}

// NewPerlin creates a Perlin noise generator seeded with the given value.
func NewPerlin(seed int64) *Perlin {
	p := &Perlin{}
	rng := rand.New(rand.NewSource(seed))

	var perm [256]int
	for i := range perm {
		perm[i] = i
	}

	// Fisher-Yates shuffle
	for i := len(perm) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	// Duplicate so index arithmetic never wraps
	for i := 0; i < 256; i++ {
		p.perm[i] = perm[i]
		p.perm[i+256] = perm[i]
	}

	return p
}

// Noise3D returns a noise value in approximately [-1, 1] for 3D coordinates.
func (p *Perlin) Noise3D(x, y, z float64) float64 {
	// Unit cube containing the point
	X := int(math.Floor(x)) & 255
	Y := int(math.Floor(y)) & 255
	Z := int(math.Floor(z)) & 255

	// Relative position within the cube
	x -= math.Floor(x)
	y -= math.Floor(y)
	z -= math.Floor(z)

	u := fade(x)
	v := fade(y)
	w := fade(z)

	// Hash coordinates of the cube corners
	A := p.perm[X] + Y
	AA := p.perm[A] + Z
	AB := p.perm[A+1] + Z
	B := p.perm[X+1] + Y
	BA := p.perm[B] + Z
	BB := p.perm[B+1] + Z

	// Blend gradients from the 8 corners
	return lerp(w, lerp(v, lerp(u, grad(p.perm[AA], x, y, z),
		grad(p.perm[BA], x-1, y, z)),
		lerp(u, grad(p.perm[AB], x, y-1, z),
			grad(p.perm[BB], x-1, y-1, z))),
		lerp(v, lerp(u, grad(p.perm[AA+1], x, y, z-1),
			grad(p.perm[BA+1], x-1, y, z-1)),
			lerp(u, grad(p.perm[AB+1], x, y-1, z-1),
				grad(p.perm[BB+1], x-1, y-1, z-1))))
}

// Noise2D returns a noise value for 2D coordinates.
func (p *Perlin) Noise2D(x, y float64) float64 {
	return p.Noise3D(x, y, 0)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
