package worldgen

import (
	"testing"

	"github.com/df-mc/terragen/worldgen/biome"
	"github.com/df-mc/terragen/worldgen/block"
	"github.com/df-mc/terragen/worldgen/climate"
)

func TestSurfaceBlockTable(t *testing.T) {
	cr := newColumnResolver(1, 62)
	tests := []struct {
		biome biome.ID
		want  block.Type
	}{
		{biome.Desert, block.Sand},
		{biome.Beach, block.Sand},
		{biome.Badlands, block.Terracotta},
		{biome.Ocean, block.Gravel},
		{biome.MangroveSwamp, block.Mud},
		{biome.SnowyPlains, block.Snow},
		{biome.StonyShore, block.Stone},
		{biome.FrozenRiver, block.Ice},
		{biome.Forest, block.Grass},
		{biome.Plains, block.Grass},
	}
	for _, tc := range tests {
		if got := cr.surfaceBlock(tc.biome); got != tc.want {
			t.Errorf("surface of %v = %v, want %v", tc.biome, block.Name(got), block.Name(tc.want))
		}
	}
}

func TestSurfaceBlockUnknownFallsBack(t *testing.T) {
	cr := newColumnResolver(1, 62)
	if got := cr.surfaceBlock(biome.ID(9999)); got != block.Grass {
		t.Fatalf("unknown biome surface = %v, want grass", block.Name(got))
	}
}

func TestFloorBlockFollowsUndergroundLayers(t *testing.T) {
	cr := newColumnResolver(1, 62)
	tests := []struct {
		biome biome.ID
		depth int
		want  block.Type
	}{
		// Shallow water exposes the first underground layer of the biome's
		// surface block, deep water the second.
		{biome.Desert, 3, block.Sand},
		{biome.Desert, 12, block.Sandstone},
		{biome.Forest, 3, block.Dirt},
		{biome.Forest, 12, block.Stone},
		{biome.Ocean, 3, block.Gravel},
		{biome.Ocean, 30, block.Stone},
		{biome.MangroveSwamp, 1, block.Mud},
		{biome.FrozenRiver, 2, block.Gravel},
	}
	for _, tc := range tests {
		if got := cr.floorBlock(tc.biome, tc.depth); got != tc.want {
			t.Errorf("floor of %v at depth %d = %v, want %v", tc.biome, tc.depth, block.Name(got), block.Name(tc.want))
		}
		layers := block.Lookup(cr.surfaceBlock(tc.biome)).Underground
		if tc.want != layers[0] && tc.want != layers[1] {
			t.Errorf("floor of %v not drawn from its surface block's underground layers", tc.biome)
		}
	}
}

func TestRawHeightNeutralClimate(t *testing.T) {
	cr := newColumnResolver(1, 62)
	if got := cr.rawHeight(climate.Point{}); got != 62 {
		t.Fatalf("neutral climate height = %d, want sea level 62", got)
	}
	if got := cr.rawHeight(climate.Point{Weirdness: 1}); got != 70 {
		t.Fatalf("full weirdness height = %d, want 70", got)
	}
}

func TestRawHeightFollowsContinentalness(t *testing.T) {
	cr := newColumnResolver(1, 62)
	inland := cr.rawHeight(climate.Point{Continentalness: 1})
	oceanic := cr.rawHeight(climate.Point{Continentalness: -1})
	if inland != 100 {
		t.Errorf("full continentalness height = %d, want 100", inland)
	}
	if oceanic >= 62 {
		t.Errorf("oceanic height %d not below sea level", oceanic)
	}
}
