// Package worldgen generates deterministic voxel terrain: a seeded noise
// and climate pipeline classifies world columns into biomes, resolves their
// heights, smooths height steps across chunk borders and plants vegetation.
// All output is a pure function of the seed and the coordinates queried.
package worldgen

import (
	"log/slog"

	"github.com/df-mc/terragen/worldgen/biome"
	"github.com/df-mc/terragen/worldgen/block"
	"github.com/df-mc/terragen/worldgen/climate"
	"github.com/df-mc/terragen/worldgen/vegetation"
)

// Generator produces terrain chunks. It holds no mutable state after New
// and is safe for concurrent use from multiple goroutines.
type Generator struct {
	log      *slog.Logger
	resolver *columnResolver
	placer   *vegetation.Placer
	metrics  *Metrics

	seed        int64
	seaLevel    int
	relaxPasses int
}

// New creates a Generator using the Config passed.
func New(c Config) *Generator {
	c = c.withDefaults()
	g := &Generator{
		log:         c.Log.With("seed", c.Seed),
		resolver:    newColumnResolver(c.Seed, c.SeaLevel),
		placer:      vegetation.NewPlacer(c.Seed, c.SeaLevel),
		metrics:     c.Metrics,
		seed:        c.Seed,
		seaLevel:    c.SeaLevel,
		relaxPasses: c.RelaxPasses,
	}
	g.log.Debug("generator created", "sea_level", c.SeaLevel, "relax_passes", c.RelaxPasses)
	return g
}

// Seed returns the world seed the generator was created with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SeaLevel returns the configured water surface height.
func (g *Generator) SeaLevel() int {
	return g.seaLevel
}

// Metrics returns the metrics registry the generator reports to, nil when
// counting is disabled.
func (g *Generator) Metrics() *Metrics {
	return g.metrics
}

// GenerateChunk generates the chunk at chunk coordinates (cx, cz). The
// result depends only on the seed and the coordinates, never on which
// chunks were generated before.
func (g *Generator) GenerateChunk(cx, cz int32) *ChunkData {
	c := &ChunkData{X: cx, Z: cz}

	heights := g.relaxedHeights(cx, cz)
	for z := 0; z < 16; z++ {
		for x := 0; x < 16; x++ {
			wx, wz := int(cx)*16+x, int(cz)*16+z
			b := g.resolver.classify(wx, wz)
			i := columnIndex(x, z)
			c.Biomes[i] = b
			c.Heights[i] = heights.at(x, z)
			g.metrics.IncBiome(biome.Name(b))
		}
	}
	for i := 0; i < 16; i++ {
		c.BorderX[i] = heights.at(16, i)
		c.BorderZ[i] = heights.at(i, 16)
	}

	g.resolveSurface(c)

	c.Trees = g.placer.PopulateChunk(cx, cz, c)
	for _, t := range c.Trees {
		g.metrics.AddTrees(t.Kind.String(), 1)
	}

	g.metrics.IncChunks()
	g.metrics.AddColumns(256)
	return c
}

// relaxMargin is the extra ring of columns resolved around a chunk so that
// every smoothing pass of a border column sees the same neighbourhood it
// would see when generated from the adjacent chunk.
func (g *Generator) relaxMargin() int {
	return g.relaxPasses + 1
}

// heightGrid is a square height field covering a chunk plus its relaxation
// margin. Coordinates are chunk-local; the margin extends into negative
// indices.
type heightGrid struct {
	h      []int
	margin int
	size   int
}

func (hg *heightGrid) at(x, z int) int {
	return hg.h[(x+hg.margin)+(z+hg.margin)*hg.size]
}

func (hg *heightGrid) set(x, z, v int) {
	hg.h[(x+hg.margin)+(z+hg.margin)*hg.size] = v
}

// relaxedHeights resolves the raw heights of the chunk at (cx, cz) plus a
// margin ring and runs the smoothing passes over them. Each pass clamps a
// column towards its four neighbours so adjacent columns never differ by
// more than one block; the valid window shrinks by one ring per pass, and
// the margin is sized so the chunk's own columns and its +X/+Z border
// strips all receive every pass. The final height of any column is a pure
// function of the raw heights within the margin radius, which is what makes
// borders agree between neighbouring chunks.
func (g *Generator) relaxedHeights(cx, cz int32) *heightGrid {
	margin := g.relaxMargin()
	size := 16 + 1 + 2*margin
	cur := &heightGrid{h: make([]int, size*size), margin: margin, size: size}
	next := &heightGrid{h: make([]int, size*size), margin: margin, size: size}

	for z := -margin; z <= 16+margin-1; z++ {
		for x := -margin; x <= 16+margin-1; x++ {
			wx, wz := int(cx)*16+x, int(cz)*16+z
			p := g.resolver.climate.Sample(float64(wx), float64(wz))
			cur.set(x, z, g.resolver.rawHeight(p))
		}
	}

	for pass := 1; pass <= g.relaxPasses; pass++ {
		lo, hi := -margin+pass, 16+margin-1-pass
		copy(next.h, cur.h)
		for z := lo; z <= hi; z++ {
			for x := lo; x <= hi; x++ {
				next.set(x, z, relaxColumn(cur, x, z))
			}
		}
		cur, next = next, cur
	}
	return cur
}

// relaxColumn clamps the height at (x, z) into the band its four
// neighbours allow. When the neighbours themselves disagree by more than
// two blocks the band is empty and the column settles on its midpoint;
// later passes tighten the neighbours and close the gap.
func relaxColumn(hg *heightGrid, x, z int) int {
	h := hg.at(x, z)
	minN, maxN := hg.at(x+1, z), hg.at(x+1, z)
	for _, d := range [3][2]int{{-1, 0}, {0, 1}, {0, -1}} {
		n := hg.at(x+d[0], z+d[1])
		if n < minN {
			minN = n
		}
		if n > maxN {
			maxN = n
		}
	}
	lo, hi := maxN-1, minN+1
	if lo > hi {
		return (lo + hi) / 2
	}
	if h < lo {
		return lo
	}
	if h > hi {
		return hi
	}
	return h
}

// resolveSurface fills in the top and floor blocks and water depths of a
// chunk whose biomes and heights are already resolved.
func (g *Generator) resolveSurface(c *ChunkData) {
	for z := 0; z < 16; z++ {
		for x := 0; x < 16; x++ {
			i := columnIndex(x, z)
			b, h := c.Biomes[i], c.Heights[i]
			if !biome.Known(b) {
				g.log.Warn("unknown biome id, using fallback surface", "id", int32(b), "cx", c.X, "cz", c.Z, "x", x, "z", z)
			}

			if h < g.seaLevel {
				depth := g.seaLevel - h
				c.WaterDepth[i] = depth
				c.Floors[i] = g.resolver.floorBlock(b, depth)
				if biome.IsSnowy(b) {
					c.TopBlocks[i] = block.Ice
				} else {
					c.TopBlocks[i] = block.Water
				}
				continue
			}

			wx, wz := int(c.X)*16+x, int(c.Z)*16+z
			if swampish(b) && h <= g.seaLevel+1 && g.resolver.swampWater(wx, wz) {
				c.WaterDepth[i] = 1
				c.Floors[i] = g.resolver.floorBlock(b, 1)
				c.TopBlocks[i] = block.Water
				continue
			}

			top := g.resolver.surfaceBlock(b)
			c.TopBlocks[i] = top
			c.Floors[i] = top
		}
	}
}

func swampish(b biome.ID) bool {
	return b == biome.Swamp || b == biome.MangroveSwamp
}

// BiomeAt returns the biome of the column at world coordinates (wx, wz)
// without generating the containing chunk.
func (g *Generator) BiomeAt(wx, wz int) biome.ID {
	return g.resolver.classify(wx, wz)
}

// ClimateAt returns the climate point of the column at world coordinates
// (wx, wz), with depth taken at sea level.
func (g *Generator) ClimateAt(wx, wz int) climate.Point {
	return g.resolver.climate.Sample(float64(wx), float64(wz))
}

// HeightAt returns the smoothed terrain height of the column at world
// coordinates (wx, wz). It generates the containing chunk's height field,
// so callers iterating an area are better served by GenerateChunk.
func (g *Generator) HeightAt(wx, wz int) int {
	cx, cz := int32(floorDiv(wx, 16)), int32(floorDiv(wz, 16))
	heights := g.relaxedHeights(cx, cz)
	return heights.at(wx-int(cx)*16, wz-int(cz)*16)
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}
