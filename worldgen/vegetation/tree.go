// Package vegetation places trees on generated terrain. Placement is
// seeded per chunk from the world seed and a positional hash, so the trees
// of a chunk are reproducible regardless of the order chunks are generated
// in.
package vegetation

import (
	"github.com/df-mc/terragen/worldgen/biome"
	"github.com/df-mc/terragen/worldgen/block"
	"github.com/df-mc/terragen/worldgen/rand"
	"github.com/segmentio/fasthash/fnv1a"
)

// Role is the function of a single tree block.
type Role uint8

const (
	RoleLog Role = iota
	RoleLeaves
	RoleCactus
)

// BlockType returns the block type a role materialises as.
func (r Role) BlockType() block.Type {
	switch r {
	case RoleLog:
		return block.Log
	case RoleCactus:
		return block.Cactus
	}
	return block.Leaves
}

// TreeBlock is one block of a synthesised tree, at an offset local to the
// tree's base position.
type TreeBlock struct {
	X, Y, Z int
	Role    Role
}

// Kind is the shape family of a tree.
type Kind uint8

const (
	KindOak Kind = iota
	KindBirch
	KindSpruce
	KindJungle
	KindDarkOak
	KindAcacia
	KindCherry
	KindCactus
)

var kindNames = [KindCactus + 1]string{
	KindOak:     "oak",
	KindBirch:   "birch",
	KindSpruce:  "spruce",
	KindJungle:  "jungle",
	KindDarkOak: "dark_oak",
	KindAcacia:  "acacia",
	KindCherry:  "cherry",
	KindCactus:  "cactus",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "oak"
}

// Tree is a synthesised tree: its shape parameters plus the deduplicated
// local block list. Coordinates X/Z are the column within the chunk and Y
// the world height of the base.
type Tree struct {
	Kind          Kind
	X, Y, Z       int
	TrunkHeight   int
	FoliageRadius int
	Blocks        []TreeBlock
}

// placement couples a tree kind with the target tree count of a biome.
type placement struct {
	kind  Kind
	count int
}

// placements is the biome→density table. Biomes absent here never grow
// anything, which short-circuits vegetation for oceans, peaks and the
// like.
var placements = map[biome.ID]placement{
	biome.Forest:          {KindOak, 6},
	biome.FlowerForest:    {KindOak, 4},
	biome.BirchForest:     {KindBirch, 6},
	biome.DarkForest:      {KindDarkOak, 8},
	biome.PaleGarden:      {KindDarkOak, 3},
	biome.Taiga:           {KindSpruce, 7},
	biome.SnowyTaiga:      {KindSpruce, 5},
	biome.Grove:           {KindSpruce, 4},
	biome.WindsweptForest: {KindSpruce, 3},
	biome.Jungle:          {KindJungle, 8},
	biome.BambooJungle:    {KindJungle, 5},
	biome.SparseJungle:    {KindJungle, 2},
	biome.Swamp:           {KindOak, 3},
	biome.MangroveSwamp:   {KindOak, 4},
	biome.WoodedBadlands:  {KindOak, 3},
	biome.CherryGrove:     {KindCherry, 4},
	biome.Plains:          {KindOak, 1},
	biome.Meadow:          {KindOak, 1},
	biome.Savanna:         {KindAcacia, 2},
	biome.SavannaPlateau:  {KindAcacia, 2},
	biome.Desert:          {KindCactus, 3},
}

// Terrain is the read-only view of a generated chunk the placer needs.
type Terrain interface {
	Biome(x, z int) biome.ID
	Height(x, z int) int
	TopBlock(x, z int) block.Type
}

// Placer places trees on generated chunks. It is stateless apart from the
// seed and safe for concurrent use.
type Placer struct {
	seed     int64
	seaLevel int
}

// NewPlacer creates a Placer for the world seed and sea level passed.
func NewPlacer(seed int64, seaLevel int) *Placer {
	return &Placer{seed: seed, seaLevel: seaLevel}
}

// edgeMargin keeps trunks away from chunk borders. Canopies may still
// reach past the border; clipChunk trims those blocks so a chunk never
// writes outside itself.
const edgeMargin = 2

// PopulateChunk synthesises the trees of the chunk at (cx, cz). The target
// count comes from the centre column's biome; each candidate site is then
// validated against its own column.
func (p *Placer) PopulateChunk(cx, cz int32, t Terrain) []Tree {
	pl, ok := placements[t.Biome(7, 7)]
	if !ok || pl.count == 0 {
		return nil
	}

	r := rand.NewRandom(p.seed ^ chunkHash(cx, cz))

	var trees []Tree
	for attempt := 0; attempt < pl.count*3 && len(trees) < pl.count; attempt++ {
		x := int(r.Range(edgeMargin, 15-edgeMargin))
		z := int(r.Range(edgeMargin, 15-edgeMargin))

		b := t.Biome(x, z)
		site, ok := placements[b]
		if !ok || biome.IsShore(b) {
			continue
		}
		if top := t.TopBlock(x, z); top == block.Water || top == block.Ice {
			continue
		}
		h := t.Height(x, z)
		if h < p.seaLevel {
			continue
		}
		if tooClose(trees, x, z, site.kind) {
			continue
		}
		trees = append(trees, clipChunk(grow(site.kind, r, x, h+1, z)))
	}
	return trees
}

// clipChunk drops the blocks of a tree that fall outside its chunk. Wide
// canopies truncate at the border instead of leaking into the neighbour,
// keeping every chunk self-contained.
func clipChunk(t Tree) Tree {
	kept := t.Blocks[:0]
	for _, b := range t.Blocks {
		x, z := t.X+b.X, t.Z+b.Z
		if x < 0 || x > 15 || z < 0 || z > 15 {
			continue
		}
		kept = append(kept, b)
	}
	t.Blocks = kept
	return t
}

// tooClose reports whether (x, z) is within the minimum spacing of an
// already placed tree. Jungle canopies are wide enough to need an extra
// block of clearance.
func tooClose(trees []Tree, x, z int, kind Kind) bool {
	minDist := 3
	if kind == KindJungle {
		minDist = 4
	}
	for _, t := range trees {
		dx, dz := t.X-x, t.Z-z
		if dx*dx+dz*dz < minDist*minDist {
			return true
		}
	}
	return false
}

// grow synthesises a single tree: trunk, foliage, then a deduplication
// pass over the combined block list.
func grow(kind Kind, r *rand.Random, x, y, z int) Tree {
	c := kindConstants[kind]
	height := c.base + int(r.Int31n(int32(c.randA)+1)) + int(r.Int31n(int32(c.randB)+1))

	blocks, bendX, bendZ := placeTrunk(kind, r, height)
	foliage, radius := placeFoliage(kind, r, height, bendX, bendZ)
	blocks = append(blocks, foliage...)

	return Tree{
		Kind:          kind,
		X:             x,
		Y:             y,
		Z:             z,
		TrunkHeight:   height,
		FoliageRadius: radius,
		Blocks:        dedupe(blocks),
	}
}

// kindConstants hold the trunk height formula per kind:
// base + rand(randA+1) + rand(randB+1).
var kindConstants = [KindCactus + 1]struct {
	base, randA, randB int
}{
	KindOak:     {4, 2, 0},
	KindBirch:   {5, 2, 0},
	KindSpruce:  {6, 3, 0},
	KindJungle:  {7, 3, 3},
	KindDarkOak: {6, 2, 3},
	KindAcacia:  {5, 2, 2},
	KindCherry:  {4, 2, 0},
	KindCactus:  {1, 2, 0},
}

// dedupe collapses blocks that collide at the same offset. It runs as a
// final pass because the placers may emit overlapping leaves. The
// first-inserted block wins, except that logs and cacti always replace
// leaves.
func dedupe(blocks []TreeBlock) []TreeBlock {
	index := make(map[[3]int]int, len(blocks))
	out := make([]TreeBlock, 0, len(blocks))
	for _, b := range blocks {
		key := [3]int{b.X, b.Y, b.Z}
		if i, ok := index[key]; ok {
			if b.Role != RoleLeaves && out[i].Role == RoleLeaves {
				out[i] = b
			}
			continue
		}
		index[key] = len(out)
		out = append(out, b)
	}
	return out
}

// chunkHash mixes a chunk coordinate into a value XORed onto the world
// seed. A cheap positional hash is all that is needed; it only has to
// decorrelate neighbouring chunks.
func chunkHash(cx, cz int32) int64 {
	h := fnv1a.AddUint64(fnv1a.Init64, uint64(uint32(cx)))
	return int64(fnv1a.AddUint64(h, uint64(uint32(cz))))
}
