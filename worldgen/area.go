package worldgen

import (
	"github.com/df-mc/terragen/worldgen/biome"
)

// BiomeArea holds the biomes of a rectangular region of world columns in
// row-major order, one entry per column.
type BiomeArea struct {
	X, Z          int
	Width, Height int
	Biomes        []biome.ID
}

// At returns the biome of the column at world coordinates (wx, wz), which
// must lie inside the area.
func (a *BiomeArea) At(wx, wz int) biome.ID {
	return a.Biomes[(wx-a.X)+(wz-a.Z)*a.Width]
}

// GenerateBiomeArea classifies the width×height region of columns whose
// north-west corner is at world coordinates (wx, wz). It samples columns
// directly and is far cheaper than generating the covering chunks when only
// biomes are needed.
func (g *Generator) GenerateBiomeArea(wx, wz, width, height int) *BiomeArea {
	a := &BiomeArea{
		X: wx, Z: wz,
		Width: width, Height: height,
		Biomes: make([]biome.ID, width*height),
	}
	for z := 0; z < height; z++ {
		for x := 0; x < width; x++ {
			a.Biomes[x+z*width] = g.BiomeAt(wx+x, wz+z)
		}
	}
	g.metrics.AddColumns(uint64(width * height))
	return a
}
