package worldgen

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/df-mc/terragen/worldgen/biome"
	"github.com/df-mc/terragen/worldgen/block"
	"github.com/df-mc/terragen/worldgen/vegetation"
)

// ChunkData is the generated state of a single 16×16 chunk. The column
// arrays are indexed x + z*16 in chunk-local coordinates. BorderX and
// BorderZ hold the smoothed heights of the first column row of the +X and
// +Z neighbour chunks, which the relaxation pass matched against.
type ChunkData struct {
	X, Z int32

	Heights   [256]int
	Biomes    [256]biome.ID
	TopBlocks [256]block.Type
	// Floors holds the solid block under the water column where WaterDepth
	// is non-zero; elsewhere it equals TopBlocks.
	Floors     [256]block.Type
	WaterDepth [256]int

	BorderX [16]int
	BorderZ [16]int

	Trees []vegetation.Tree
}

func columnIndex(x, z int) int {
	return x + z*16
}

// Biome returns the biome of the chunk-local column (x, z).
func (c *ChunkData) Biome(x, z int) biome.ID {
	return c.Biomes[columnIndex(x, z)]
}

// Height returns the terrain height of the chunk-local column (x, z).
func (c *ChunkData) Height(x, z int) int {
	return c.Heights[columnIndex(x, z)]
}

// TopBlock returns the surface block of the chunk-local column (x, z).
func (c *ChunkData) TopBlock(x, z int) block.Type {
	return c.TopBlocks[columnIndex(x, z)]
}

// Digest returns a hash over the full chunk state. Two chunks generated
// from the same seed and coordinates hash identically, so the digest
// doubles as a determinism check and a cache validity stamp.
func (c *ChunkData) Digest() uint64 {
	d := xxhash.New()
	var buf [8]byte

	put32 := func(v int32) {
		binary.LittleEndian.PutUint32(buf[:4], uint32(v))
		_, _ = d.Write(buf[:4])
	}
	put := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		_, _ = d.Write(buf[:])
	}

	put32(c.X)
	put32(c.Z)
	for i := range c.Heights {
		put(c.Heights[i])
		put32(int32(c.Biomes[i]))
		put32(int32(c.TopBlocks[i]))
		put32(int32(c.Floors[i]))
		put(c.WaterDepth[i])
	}
	for i := 0; i < 16; i++ {
		put(c.BorderX[i])
		put(c.BorderZ[i])
	}
	for _, t := range c.Trees {
		put32(int32(t.Kind))
		put(t.X)
		put(t.Y)
		put(t.Z)
		put(t.TrunkHeight)
		put(t.FoliageRadius)
		for _, b := range t.Blocks {
			put(b.X)
			put(b.Y)
			put(b.Z)
			put32(int32(b.Role))
		}
	}
	return d.Sum64()
}
