package vegetation

import "github.com/df-mc/terragen/worldgen/rand"

// placeFoliage emits the leaf blocks of a tree. Each kind has its own
// shape algorithm; all of them may emit overlapping offsets, which the
// dedup pass resolves afterwards. The returned radius is the widest layer
// placed.
func placeFoliage(kind Kind, r *rand.Random, height, bendX, bendZ int) ([]TreeBlock, int) {
	switch kind {
	case KindSpruce:
		return spruceFoliage(r, height)
	case KindAcacia:
		return acaciaFoliage(r, height, bendX, bendZ)
	case KindDarkOak:
		return darkOakFoliage(r, height)
	case KindCherry:
		return cherryFoliage(r, height)
	case KindJungle:
		return jungleFoliage(r, height)
	case KindCactus:
		return nil, 0
	}
	return blobFoliage(r, height)
}

// blobFoliage is the oak/birch shape: a rounded blob around the trunk top
// with randomly culled corners.
func blobFoliage(r *rand.Random, height int) ([]TreeBlock, int) {
	var blocks []TreeBlock
	radii := [4]int{2, 2, 1, 1}
	for i, radius := range radii {
		y := height - 3 + i
		top := i == len(radii)-1
		blocks = append(blocks, layer(r, y, radius, top)...)
	}
	return blocks, 2
}

// spruceFoliage is the conical spruce shape: the layer radius grows
// downwards from the tip, resets, and grows again with a raised floor,
// producing the characteristic stacked skirts.
func spruceFoliage(r *rand.Random, height int) ([]TreeBlock, int) {
	topSize := height - 1 - int(r.Int31n(2))
	maxRadius := 2 + int(r.Int31n(2))

	var blocks []TreeBlock
	radius := int(r.Int31n(2))
	minR, maxR := 0, 1
	widest := radius
	for y := 0; y <= topSize; y++ {
		yy := height - y
		blocks = append(blocks, layer(r, yy, radius, radius == 0)...)
		if radius > widest {
			widest = radius
		}
		if radius >= maxR {
			radius = minR
			minR = 1
			if maxR++; maxR > maxRadius {
				maxR = maxRadius
			}
		} else {
			radius++
		}
	}
	return blocks, widest
}

// acaciaFoliage is the flat umbrella: a wide disc over the bent trunk top
// and a smaller one above it.
func acaciaFoliage(r *rand.Random, height, bendX, bendZ int) ([]TreeBlock, int) {
	var blocks []TreeBlock
	for _, l := range []struct{ dy, radius int }{{-1, 3}, {0, 2}} {
		for _, b := range layer(r, height+l.dy, l.radius, true) {
			b.X += bendX
			b.Z += bendZ
			blocks = append(blocks, b)
		}
	}
	return blocks, 3
}

// darkOakFoliage is a thick multi-layer canopy over the 2×2 trunk.
func darkOakFoliage(r *rand.Random, height int) ([]TreeBlock, int) {
	var blocks []TreeBlock
	layers := []struct{ dy, radius int }{{-2, 3}, {-1, 3}, {0, 2}, {1, 1}}
	for _, l := range layers {
		// Offset by the trunk's second column so the canopy is centred
		// over the 2×2 footprint.
		for _, corner := range [2][2]int{{0, 0}, {1, 1}} {
			for _, b := range layer(r, height+l.dy, l.radius, l.dy >= 0) {
				b.X += corner[0]
				b.Z += corner[1]
				blocks = append(blocks, b)
			}
		}
	}
	return blocks, 3
}

// cherryFoliage places a few displaced spherical clusters instead of a
// single canopy.
func cherryFoliage(r *rand.Random, height int) ([]TreeBlock, int) {
	clusters := 2 + int(r.Int31n(2))
	var blocks []TreeBlock
	for i := 0; i < clusters; i++ {
		cx := int(r.Int31n(5)) - 2
		cz := int(r.Int31n(5)) - 2
		cy := height - 1 - int(r.Int31n(2))
		for dy := -1; dy <= 1; dy++ {
			radius := 2 - abs(dy)
			for _, b := range layer(r, cy+dy, radius, dy != 0) {
				b.X += cx
				b.Z += cz
				blocks = append(blocks, b)
			}
		}
	}
	return blocks, 4
}

// jungleFoliage is a single large blob sitting on the thick trunk.
func jungleFoliage(r *rand.Random, height int) ([]TreeBlock, int) {
	var blocks []TreeBlock
	layers := []struct{ dy, radius int }{{-1, 3}, {0, 3}, {1, 2}}
	for _, l := range layers {
		for _, b := range layer(r, height+l.dy, l.radius, l.dy > 0) {
			blocks = append(blocks, b)
		}
	}
	return blocks, 3
}

// layer emits one square leaf layer of the radius passed at height y.
// Corners are culled outright on top layers and culled randomly elsewhere,
// rounding the silhouette.
func layer(r *rand.Random, y, radius int, top bool) []TreeBlock {
	var blocks []TreeBlock
	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			if radius > 0 && abs(dx) == radius && abs(dz) == radius {
				if top || r.Int31n(2) == 0 {
					continue
				}
			}
			blocks = append(blocks, TreeBlock{dx, y, dz, RoleLeaves})
		}
	}
	return blocks
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
