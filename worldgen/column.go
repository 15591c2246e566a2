package worldgen

import (
	"math"

	"github.com/brentp/intintmap"
	"github.com/df-mc/terragen/worldgen/biome"
	"github.com/df-mc/terragen/worldgen/block"
	"github.com/df-mc/terragen/worldgen/climate"
	"github.com/df-mc/terragen/worldgen/noise"
	"github.com/df-mc/terragen/worldgen/rand"
)

// maxHeight is the top of the world; heights clamp to [0, maxHeight].
const maxHeight = 255

// heightSpline maps continentalness to the base terrain height. The dense
// cluster of points around 0 pins the coastline transition to sea level.
var heightSpline = Spline{
	{-1.2, 30}, {-0.6, 35}, {-0.2, 50}, {-0.05, 58},
	{0, 62}, {0.1, 66}, {0.35, 72}, {0.6, 80}, {1.0, 100},
}

// erosionSpline scales the deviation of the base height from sea level.
// High erosion flattens terrain towards the coast without moving the
// coastline itself.
var erosionSpline = Spline{
	{-1, 1.5}, {-0.5, 1.25}, {0, 1.0}, {0.5, 0.8}, {1, 0.6},
}

// weirdnessAmplitude is the block range the weirdness axis adds on top of
// the spline height.
const weirdnessAmplitude = 8

// swampWaterThreshold is tuned so roughly a third of swamp area is shallow
// water patches; swampPatchScale stretches the patch noise so patches span
// many columns instead of speckling per block.
const (
	swampWaterThreshold = 0.3
	swampPatchScale     = 0.02
)

// columnResolver turns world coordinates into classified, height-resolved
// columns. It is read-only after construction and shared by all chunk
// generations of a Generator.
type columnResolver struct {
	climate  *climate.Sampler
	swamp    *noise.DoublePerlin
	surface  *intintmap.Map
	seaLevel int
}

// swampSeedOffset keeps the swamp patch noise decorrelated from the six
// climate noises, which are seeded at offsets 0 through 5.
const swampSeedOffset = 6

func newColumnResolver(seed int64, seaLevel int) *columnResolver {
	return &columnResolver{
		climate:  climate.NewSampler(seed, seaLevel),
		swamp:    noise.NewDoublePerlin(rand.NewRandom(seed+swampSeedOffset), 2, -7),
		surface:  buildSurfaceTable(),
		seaLevel: seaLevel,
	}
}

// classify returns the biome of the column at world coordinates (wx, wz).
func (cr *columnResolver) classify(wx, wz int) biome.ID {
	return biome.Classify(cr.climate.Sample(float64(wx), float64(wz)))
}

// rawHeight computes the unsmoothed terrain height of a column from its
// climate point. Erosion scales the deviation from sea level rather than
// the height itself so that the coastline stays where continentalness puts
// it.
func (cr *columnResolver) rawHeight(p climate.Point) int {
	sea := float64(cr.seaLevel)
	h := sea + (heightSpline.At(p.Continentalness)-sea)*erosionSpline.At(p.Erosion)
	h += p.Weirdness * weirdnessAmplitude
	hi := int(math.Floor(h))
	if hi < 0 {
		return 0
	}
	if hi > maxHeight {
		return maxHeight
	}
	return hi
}

// swampWater reports whether the column at (wx, wz) lies in a swamp water
// patch. The patch noise is far lower frequency than the terrain noise so
// patches span multiple columns.
func (cr *columnResolver) swampWater(wx, wz int) bool {
	return cr.swamp.Sample2(float64(wx)*swampPatchScale, float64(wz)*swampPatchScale) > swampWaterThreshold
}

// buildSurfaceTable builds the biome→surface block table. A flat int map
// beats a Go map for a few hundred lookups per column row; biomes absent
// from the table fall back to grass.
func buildSurfaceTable() *intintmap.Map {
	m := intintmap.New(64, 0.6)
	put := func(id biome.ID, t block.Type) {
		m.Put(int64(id), int64(t))
	}

	for _, id := range biome.All() {
		switch {
		case biome.IsOceanic(id):
			put(id, block.Gravel)
		case biome.IsSnowy(id):
			put(id, block.Snow)
		}
	}

	put(biome.Desert, block.Sand)
	put(biome.Beach, block.Sand)
	put(biome.SnowyBeach, block.Sand)
	put(biome.WarmOcean, block.Sand)
	put(biome.LukewarmOcean, block.Sand)
	put(biome.DeepLukewarmOcean, block.Sand)
	put(biome.StonyShore, block.Stone)
	put(biome.StonyPeaks, block.Stone)
	put(biome.JaggedPeaks, block.Stone)
	put(biome.FrozenPeaks, block.Snow)
	put(biome.WindsweptGravellyHills, block.Gravel)
	put(biome.Badlands, block.Terracotta)
	put(biome.WoodedBadlands, block.Terracotta)
	put(biome.ErodedBadlands, block.Terracotta)
	put(biome.MangroveSwamp, block.Mud)
	put(biome.SnowyTaiga, block.Podzol)
	put(biome.River, block.Dirt)
	put(biome.FrozenRiver, block.Ice)
	return m
}

// surfaceBlock returns the dry-land surface block of the biome.
func (cr *columnResolver) surfaceBlock(id biome.ID) block.Type {
	if t, ok := cr.surface.Get(int64(id)); ok {
		return block.Type(t)
	}
	return block.Grass
}

// floorBlock returns the block found under standing water: the first
// underground layer of the biome's surface block, or the deeper layer once
// more than eight blocks of water sit on top.
func (cr *columnResolver) floorBlock(id biome.ID, depth int) block.Type {
	layers := block.Lookup(cr.surfaceBlock(id)).Underground
	if depth > 8 {
		return layers[1]
	}
	return layers[0]
}
