package noise

import (
	"math"

	"github.com/df-mc/terragen/worldgen/rand"
)

// Skew factors for 2D simplex noise.
var (
	f2 = (math.Sqrt(3) - 1) / 2
	g2 = (3 - math.Sqrt(3)) / 6
)

// grad3 holds the 12 gradient directions simplex noise selects from. Only
// the x/y components are used in 2D sampling.
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// Simplex is a 2D simplex noise sampler. Compared to Perlin it has no
// directional grid artefacts, which is why the climate sampler uses it for
// coordinate warping.
type Simplex struct {
	perm      [512]uint8
	permMod12 [512]uint8
}

// NewSimplex constructs a simplex sampler, shuffling its permutation table
// with draws from r.
func NewSimplex(r *rand.Random) *Simplex {
	var base [256]uint8
	for i := range base {
		base[i] = uint8(i)
	}
	for i := int32(255); i > 0; i-- {
		j := r.Int31n(i + 1)
		base[i], base[j] = base[j], base[i]
	}

	s := &Simplex{}
	for i := 0; i < 512; i++ {
		s.perm[i] = base[i&255]
		s.permMod12[i] = s.perm[i] % 12
	}
	return s
}

// Sample2 returns simplex noise at (x, y), normalised to roughly [-1, 1].
func (s *Simplex) Sample2(x, y float64) float64 {
	// Skew the input cell onto the simplex grid.
	sk := (x + y) * f2
	i := math.Floor(x + sk)
	j := math.Floor(y + sk)

	t := (i + j) * g2
	x0 := x - (i - t)
	y0 := y - (j - t)

	// Lower or upper triangle of the skewed cell.
	var i1, j1 float64
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - i1 + g2
	y1 := y0 - j1 + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	ii := int(i) & 255
	jj := int(j) & 255

	var n0, n1, n2 float64
	if t0 := 0.5 - x0*x0 - y0*y0; t0 > 0 {
		g := grad3[s.permMod12[ii+int(s.perm[jj])]]
		t0 *= t0
		n0 = t0 * t0 * (g[0]*x0 + g[1]*y0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1; t1 > 0 {
		g := grad3[s.permMod12[ii+int(i1)+int(s.perm[jj+int(j1)])]]
		t1 *= t1
		n1 = t1 * t1 * (g[0]*x1 + g[1]*y1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2; t2 > 0 {
		g := grad3[s.permMod12[ii+1+int(s.perm[jj+1])]]
		t2 *= t2
		n2 = t2 * t2 * (g[0]*x2 + g[1]*y2)
	}

	return 70 * (n0 + n1 + n2)
}
