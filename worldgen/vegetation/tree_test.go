package vegetation

import (
	"testing"

	"github.com/df-mc/terragen/worldgen/biome"
	"github.com/df-mc/terragen/worldgen/block"
	"github.com/df-mc/terragen/worldgen/rand"
)

// flatTerrain is a uniform chunk view for placement tests.
type flatTerrain struct {
	biome  biome.ID
	height int
	top    block.Type
}

func (f flatTerrain) Biome(x, z int) biome.ID      { return f.biome }
func (f flatTerrain) Height(x, z int) int          { return f.height }
func (f flatTerrain) TopBlock(x, z int) block.Type { return f.top }

func TestDedupLogWinsOverLeaf(t *testing.T) {
	blocks := []TreeBlock{
		{0, 2, 0, RoleLeaves},
		{0, 2, 0, RoleLog},
	}
	out := dedupe(blocks)
	if len(out) != 1 {
		t.Fatalf("dedupe kept %d blocks, want 1", len(out))
	}
	if out[0].Role != RoleLog {
		t.Fatalf("log did not win over leaf: role %v", out[0].Role)
	}
}

func TestDedupCactusWinsOverLeaf(t *testing.T) {
	out := dedupe([]TreeBlock{{1, 0, 1, RoleLeaves}, {1, 0, 1, RoleCactus}})
	if len(out) != 1 || out[0].Role != RoleCactus {
		t.Fatalf("cactus did not win over leaf: %+v", out)
	}
}

func TestDedupFirstLeafWins(t *testing.T) {
	out := dedupe([]TreeBlock{{0, 5, 0, RoleLeaves}, {0, 5, 0, RoleLeaves}})
	if len(out) != 1 {
		t.Fatalf("dedupe kept %d blocks, want 1", len(out))
	}
}

func TestDedupLogNotReplacedByLeaf(t *testing.T) {
	out := dedupe([]TreeBlock{{0, 1, 0, RoleLog}, {0, 1, 0, RoleLeaves}})
	if len(out) != 1 || out[0].Role != RoleLog {
		t.Fatalf("leaf replaced log: %+v", out)
	}
}

func TestPopulateChunkDeterministic(t *testing.T) {
	ter := flatTerrain{biome: biome.Forest, height: 70, top: block.Grass}
	p := NewPlacer(42, 62)
	a := p.PopulateChunk(3, -7, ter)
	b := p.PopulateChunk(3, -7, ter)
	if len(a) != len(b) {
		t.Fatalf("tree counts differ: %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i].X != b[i].X || a[i].Z != b[i].Z || a[i].TrunkHeight != b[i].TrunkHeight ||
			len(a[i].Blocks) != len(b[i].Blocks) {
			t.Fatalf("tree %d differs between runs", i)
		}
	}
}

func TestPopulateChunkIndependentOfNeighbours(t *testing.T) {
	// Different chunk coordinates must yield different placement, same
	// coordinates must not be affected by other chunks having been
	// populated first.
	ter := flatTerrain{biome: biome.Forest, height: 70, top: block.Grass}
	p := NewPlacer(42, 62)
	p.PopulateChunk(0, 0, ter)
	after := p.PopulateChunk(3, -7, ter)
	fresh := NewPlacer(42, 62).PopulateChunk(3, -7, ter)
	if len(after) != len(fresh) {
		t.Fatal("population of one chunk affected another")
	}
	for i := range after {
		if after[i].X != fresh[i].X || after[i].Z != fresh[i].Z {
			t.Fatal("population of one chunk affected another")
		}
	}
}

func TestPopulateRespectsMarginAndSpacing(t *testing.T) {
	ter := flatTerrain{biome: biome.Forest, height: 70, top: block.Grass}
	trees := NewPlacer(7, 62).PopulateChunk(0, 0, ter)
	if len(trees) == 0 {
		t.Fatal("forest chunk grew no trees")
	}
	for i, tr := range trees {
		if tr.X < edgeMargin || tr.X > 15-edgeMargin || tr.Z < edgeMargin || tr.Z > 15-edgeMargin {
			t.Fatalf("tree %d at (%d,%d) violates edge margin", i, tr.X, tr.Z)
		}
		for j := 0; j < i; j++ {
			dx, dz := trees[j].X-tr.X, trees[j].Z-tr.Z
			if dx*dx+dz*dz < 9 {
				t.Fatalf("trees %d and %d closer than minimum spacing", i, j)
			}
		}
	}
}

func TestPopulateRejectsWaterAndShore(t *testing.T) {
	p := NewPlacer(7, 62)
	if trees := p.PopulateChunk(0, 0, flatTerrain{biome: biome.Forest, height: 70, top: block.Water}); len(trees) != 0 {
		t.Fatalf("grew %d trees on water", len(trees))
	}
	if trees := p.PopulateChunk(0, 0, flatTerrain{biome: biome.Beach, height: 64, top: block.Sand}); len(trees) != 0 {
		t.Fatalf("grew %d trees on a beach", len(trees))
	}
	if trees := p.PopulateChunk(0, 0, flatTerrain{biome: biome.Forest, height: 40, top: block.Grass}); len(trees) != 0 {
		t.Fatalf("grew %d trees below sea level", len(trees))
	}
	if trees := p.PopulateChunk(0, 0, flatTerrain{biome: biome.Ocean, height: 45, top: block.Gravel}); len(trees) != 0 {
		t.Fatalf("grew %d trees in the ocean", len(trees))
	}
}

func TestClipChunkTruncatesAtBorder(t *testing.T) {
	tr := Tree{X: 2, Z: 2, Blocks: []TreeBlock{
		{-3, 5, 0, RoleLeaves},
		{-2, 5, 0, RoleLeaves},
		{0, 0, 0, RoleLog},
		{0, 5, 13, RoleLeaves},
		{0, 5, 14, RoleLeaves},
	}}
	out := clipChunk(tr)
	if len(out.Blocks) != 3 {
		t.Fatalf("kept %d blocks, want 3", len(out.Blocks))
	}
	for _, b := range out.Blocks {
		x, z := out.X+b.X, out.Z+b.Z
		if x < 0 || x > 15 || z < 0 || z > 15 {
			t.Fatalf("block at (%d,%d) survived clipping", x, z)
		}
	}
}

func TestGrowShapes(t *testing.T) {
	for kind := KindOak; kind <= KindCactus; kind++ {
		tr := grow(kind, rand.NewRandom(int64(kind)+99), 8, 71, 8)
		c := kindConstants[kind]
		if tr.TrunkHeight < c.base || tr.TrunkHeight > c.base+c.randA+c.randB {
			t.Errorf("kind %d trunk height %d outside [%d,%d]", kind, tr.TrunkHeight, c.base, c.base+c.randA+c.randB)
		}
		if len(tr.Blocks) == 0 {
			t.Errorf("kind %d produced no blocks", kind)
		}
		seen := make(map[[3]int]bool)
		for _, b := range tr.Blocks {
			key := [3]int{b.X, b.Y, b.Z}
			if seen[key] {
				t.Errorf("kind %d emits duplicate offset %v after dedup", kind, key)
			}
			seen[key] = true
		}
		if kind == KindCactus {
			for _, b := range tr.Blocks {
				if b.Role != RoleCactus {
					t.Errorf("cactus emitted role %v", b.Role)
				}
			}
		}
	}
}

func TestThickTrunkFootprint(t *testing.T) {
	tr := grow(KindDarkOak, rand.NewRandom(1), 8, 71, 8)
	found := map[[2]int]bool{}
	for _, b := range tr.Blocks {
		if b.Role == RoleLog && b.Y == 0 {
			found[[2]int{b.X, b.Z}] = true
		}
	}
	for _, c := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if !found[c] {
			t.Fatalf("dark oak trunk missing base column at %v", c)
		}
	}
}

func TestAcaciaBends(t *testing.T) {
	tr := grow(KindAcacia, rand.NewRandom(5), 8, 71, 8)
	bent := false
	for _, b := range tr.Blocks {
		if b.Role == RoleLog && (b.X != 0 || b.Z != 0) {
			bent = true
		}
	}
	if !bent {
		t.Fatal("acacia trunk did not bend")
	}
}
