package noise

import "github.com/df-mc/terragen/worldgen/rand"

const (
	defaultPersistence = 0.5
	defaultLacunarity  = 2.0
)

// Octave sums several independently constructed Perlin samplers into
// fractal noise. The octaves consume draws from the same Random in order,
// so octave count is part of the reproducibility contract.
type Octave struct {
	octaves     []*Perlin
	persistence float64
	lacunarity  float64
}

// NewOctave constructs fractal noise with n octaves, persistence 0.5 and
// lacunarity 2.0, drawing all construction randomness from r.
func NewOctave(r *rand.Random, n int) *Octave {
	o := &Octave{persistence: defaultPersistence, lacunarity: defaultLacunarity}
	for i := 0; i < n; i++ {
		o.octaves = append(o.octaves, NewPerlin(r))
	}
	return o
}

// Sample3 returns the amplitude-normalised octave sum at (x, y, z). The
// magnitude stays within the single-octave range regardless of octave
// count.
func (o *Octave) Sample3(x, y, z float64) float64 {
	var sum, denom float64
	amp, freq := 1.0, 1.0
	for _, p := range o.octaves {
		sum += p.Sample3(x*freq, y*freq, z*freq) * amp
		denom += amp
		amp *= o.persistence
		freq *= o.lacunarity
	}
	if denom == 0 {
		return 0
	}
	return sum / denom
}

// Sample2 returns the octave sum at (x, z) with y fixed to 0.
func (o *Octave) Sample2(x, z float64) float64 {
	return o.Sample3(x, 0, z)
}
