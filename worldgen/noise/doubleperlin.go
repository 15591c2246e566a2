package noise

import "github.com/df-mc/terragen/worldgen/rand"

// doubleRatio is the fixed frequency ratio between the two stacks of a
// DoublePerlin sampler. The slightly detuned second stack breaks up the
// grid-aligned artefacts a single octave stack produces.
const doubleRatio = 337.0 / 331.0

// doubleOffset shifts the second stack's input so the two stacks do not
// share a zero crossing at the origin.
const doubleOffset = 337.0

// DoublePerlin sums two octave stacks, the second sampled at a fixed scale
// ratio and offset, and rescales the sum by a per-octave-count amplitude.
type DoublePerlin struct {
	a, b      *Octave
	amplitude float64
}

// NewDoublePerlin constructs a double noise sampler with n octaves per
// stack. firstOctave shifts the conceptual octave window; a negative value
// makes construction discard draws from r first so the draw position stays
// aligned with reference generators that allocate the skipped octaves. The
// skip is a compatibility requirement, not an optimisation.
func NewDoublePerlin(r *rand.Random, n, firstOctave int) *DoublePerlin {
	if firstOctave < 0 {
		// A skipped octave would have consumed 3 origin draws and a
		// 255-swap permutation shuffle.
		r.Skip(-firstOctave * 258)
	}
	return &DoublePerlin{
		a:         NewOctave(r, n),
		b:         NewOctave(r, n),
		amplitude: (10.0 / 6.0) * float64(n+1) / float64(n+2),
	}
}

// Sample2 returns the combined noise value at (x, z).
func (d *DoublePerlin) Sample2(x, z float64) float64 {
	v := d.a.Sample2(x, z) + d.b.Sample2(x*doubleRatio+doubleOffset, z*doubleRatio+doubleOffset)
	return v * d.amplitude
}

// Sample3 returns the combined noise value at (x, y, z).
func (d *DoublePerlin) Sample3(x, y, z float64) float64 {
	v := d.a.Sample3(x, y, z) + d.b.Sample3(x*doubleRatio+doubleOffset, y*doubleRatio+doubleOffset, z*doubleRatio+doubleOffset)
	return v * d.amplitude
}
