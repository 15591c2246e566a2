// Package noise implements the gradient noise samplers the terrain pipeline
// is built from. All samplers are constructed from a rand.Random stream and
// are pure functions of their input coordinates afterwards, which makes them
// safe to share by reference between concurrent callers.
package noise

import (
	"math"

	"github.com/df-mc/terragen/worldgen/rand"
)

// Perlin is a classic 3D Perlin gradient noise sampler. The permutation
// table and origin offsets are drawn from the Random passed at construction;
// sampling mutates no state.
type Perlin struct {
	perm       [512]uint8
	ox, oy, oz float64
}

// NewPerlin constructs a Perlin sampler, consuming draws from r. The three
// origin offsets in [0, 256) decorrelate independently constructed samplers
// even when queried at identical coordinates.
func NewPerlin(r *rand.Random) *Perlin {
	p := &Perlin{
		ox: r.Float64() * 256,
		oy: r.Float64() * 256,
		oz: r.Float64() * 256,
	}

	var base [256]uint8
	for i := range base {
		base[i] = uint8(i)
	}
	for i := int32(255); i > 0; i-- {
		j := r.Int31n(i + 1)
		base[i], base[j] = base[j], base[i]
	}
	for i := 0; i < 256; i++ {
		p.perm[i] = base[i]
		p.perm[i+256] = base[i]
	}
	return p
}

// Sample3 returns the noise value at (x, y, z), roughly within [-1, 1].
// Gradient noise is not tightly bounded; callers must tolerate mild
// overshoot.
func (p *Perlin) Sample3(x, y, z float64) float64 {
	x += p.ox
	y += p.oy
	z += p.oz

	xf := math.Floor(x)
	yf := math.Floor(y)
	zf := math.Floor(z)
	xi := int(xf) & 255
	yi := int(yf) & 255
	zi := int(zf) & 255
	x -= xf
	y -= yf
	z -= zf

	u := fade(x)
	v := fade(y)
	w := fade(z)

	a := int(p.perm[xi]) + yi
	aa := int(p.perm[a]) + zi
	ab := int(p.perm[a+1]) + zi
	b := int(p.perm[xi+1]) + yi
	ba := int(p.perm[b]) + zi
	bb := int(p.perm[b+1]) + zi

	x1 := lerp(u, grad(p.perm[aa], x, y, z), grad(p.perm[ba], x-1, y, z))
	x2 := lerp(u, grad(p.perm[ab], x, y-1, z), grad(p.perm[bb], x-1, y-1, z))
	y1 := lerp(v, x1, x2)

	x1 = lerp(u, grad(p.perm[aa+1], x, y, z-1), grad(p.perm[ba+1], x-1, y, z-1))
	x2 = lerp(u, grad(p.perm[ab+1], x, y-1, z-1), grad(p.perm[bb+1], x-1, y-1, z-1))
	y2 := lerp(v, x1, x2)

	return lerp(w, y1, y2)
}

// Sample2 returns the noise value at (x, z) with y fixed to 0.
func (p *Perlin) Sample2(x, z float64) float64 {
	return p.Sample3(x, 0, z)
}

// fade is the quintic smoothing curve t³(t(6t−15)+10).
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad selects one of 16 gradient directions from the low bits of the hash
// and returns its dot product with the distance vector.
func grad(hash uint8, x, y, z float64) float64 {
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
