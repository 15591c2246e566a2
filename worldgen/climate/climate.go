// Package climate samples the five noise-driven climate axes that drive
// biome classification and terrain height.
package climate

import (
	"github.com/df-mc/terragen/worldgen/noise"
	"github.com/df-mc/terragen/worldgen/rand"
	"github.com/go-gl/mathgl/mgl64"
)

// Point is the climate vector of a single world column. The five noise
// axes are nominally in [-1, 1] but may overshoot mildly; consumers must
// not rely on a hard bound. Depth is derived from the vertical coordinate,
// not from noise.
type Point struct {
	Temperature     float64
	Humidity        float64
	Continentalness float64
	Erosion         float64
	Weirdness       float64
	Depth           float64
}

// Axis scales. Continentalness varies over far larger features than the
// other axes, erosion sits in between.
const (
	scaleTemperature = 0.0025
	scaleHumidity    = 0.0025
	scaleWeirdness   = 0.0025
	scaleContinents  = 0.00065
	scaleErosion     = 0.00125

	warpScale    = 0.0025
	warpStrength = 32
	// The Z warp component samples the same simplex table at an offset so
	// the two components are decorrelated.
	warpZOffset = 100
)

// Sampler produces climate Points for world columns. It is read-only after
// construction and safe for concurrent use.
type Sampler struct {
	temperature *noise.Octave
	humidity    *noise.Octave
	continents  *noise.Octave
	erosion     *noise.Octave
	weirdness   *noise.Octave
	warp        *noise.Simplex

	seaLevel float64
}

// NewSampler constructs a climate sampler for the seed passed. Each axis is
// seeded at a fixed small offset from the world seed; the offsetting, not
// independent reseeding, is what decorrelates the axes while keeping the
// whole sampler a function of one seed.
func NewSampler(seed int64, seaLevel int) *Sampler {
	return &Sampler{
		temperature: noise.NewOctave(rand.NewRandom(seed), 4),
		humidity:    noise.NewOctave(rand.NewRandom(seed+1), 4),
		continents:  noise.NewOctave(rand.NewRandom(seed+2), 6),
		erosion:     noise.NewOctave(rand.NewRandom(seed+3), 4),
		weirdness:   noise.NewOctave(rand.NewRandom(seed+4), 4),
		warp:        noise.NewSimplex(rand.NewRandom(seed + 5)),
		seaLevel:    float64(seaLevel),
	}
}

// Sample returns the climate Point of the column at world coordinates
// (wx, wz), with Depth taken at sea level.
func (s *Sampler) Sample(wx, wz float64) Point {
	return s.SampleY(wx, wz, int(s.seaLevel))
}

// SampleY returns the climate Point at (wx, wz) with Depth derived from the
// vertical coordinate y.
func (s *Sampler) SampleY(wx, wz float64, y int) Point {
	warp := mgl64.Vec2{
		s.warp.Sample2(wx*warpScale, wz*warpScale),
		s.warp.Sample2(wx*warpScale+warpZOffset, wz*warpScale+warpZOffset),
	}.Mul(warpStrength)

	x := wx + warp[0]
	z := wz + warp[1]

	return Point{
		Temperature:     s.temperature.Sample2(x*scaleTemperature, z*scaleTemperature),
		Humidity:        s.humidity.Sample2(x*scaleHumidity, z*scaleHumidity),
		Continentalness: s.continents.Sample2(x*scaleContinents, z*scaleContinents),
		Erosion:         s.erosion.Sample2(x*scaleErosion, z*scaleErosion),
		Weirdness:       s.weirdness.Sample2(x*scaleWeirdness, z*scaleWeirdness),
		Depth:           (float64(y) - s.seaLevel) / 64,
	}
}
