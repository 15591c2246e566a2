package vegetation

import "github.com/df-mc/terragen/worldgen/rand"

// placeTrunk emits the trunk blocks of a tree of the kind and height
// passed. The returned bendX/bendZ give the horizontal displacement of the
// trunk top, which is only non-zero for acacia.
func placeTrunk(kind Kind, r *rand.Random, height int) (blocks []TreeBlock, bendX, bendZ int) {
	switch kind {
	case KindDarkOak, KindJungle:
		// Thick-trunk kinds place a 2×2 column.
		for y := 0; y < height; y++ {
			blocks = append(blocks,
				TreeBlock{0, y, 0, RoleLog},
				TreeBlock{1, y, 0, RoleLog},
				TreeBlock{0, y, 1, RoleLog},
				TreeBlock{1, y, 1, RoleLog},
			)
		}
	case KindAcacia:
		// Straight segment, then a diagonal bend for the top two levels.
		dir := diagonals[r.Int31n(4)]
		for y := 0; y < height-2; y++ {
			blocks = append(blocks, TreeBlock{0, y, 0, RoleLog})
		}
		for i := 0; i < 2; i++ {
			blocks = append(blocks, TreeBlock{dir[0] * (i + 1), height - 2 + i, dir[1] * (i + 1), RoleLog})
		}
		bendX, bendZ = dir[0]*2, dir[1]*2
	case KindCactus:
		for y := 0; y < height; y++ {
			blocks = append(blocks, TreeBlock{0, y, 0, RoleCactus})
		}
	default:
		for y := 0; y < height; y++ {
			blocks = append(blocks, TreeBlock{0, y, 0, RoleLog})
		}
	}
	return blocks, bendX, bendZ
}

var diagonals = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
