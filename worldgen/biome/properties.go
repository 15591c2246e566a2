package biome

// The property tables below are pure lookups keyed by ID. Unknown IDs fall
// back to plains-like defaults rather than failing: rendering and surface
// resolution must proceed for partially known biome sets, and the caller is
// the right place to warn about the fallback.

// RGB is a packed 0xRRGGBB colour.
type RGB uint32

const (
	defaultColor      RGB = 0x808080
	defaultGrassColor RGB = 0x8DB360
)

var colors = map[ID]RGB{
	Ocean:                  0x000070,
	DeepOcean:              0x000030,
	FrozenOcean:            0x7070D6,
	DeepFrozenOcean:        0x404090,
	ColdOcean:              0x202070,
	DeepColdOcean:          0x202050,
	LukewarmOcean:          0x0000AC,
	DeepLukewarmOcean:      0x000080,
	WarmOcean:              0x0000FF,
	Plains:                 0x8DB360,
	SunflowerPlains:        0xB5DB88,
	Forest:                 0x056621,
	FlowerForest:           0x2D8E49,
	BirchForest:            0x307444,
	DarkForest:             0x40511A,
	Taiga:                  0x0B6659,
	SnowyTaiga:             0x31554A,
	Jungle:                 0x537B09,
	BambooJungle:           0x768E14,
	SparseJungle:           0x628B17,
	Swamp:                  0x07F9B2,
	MangroveSwamp:          0x67352B,
	Desert:                 0xFA9418,
	Savanna:                0xBDB25F,
	SavannaPlateau:         0xA79D64,
	Badlands:               0xD94515,
	WoodedBadlands:         0xB09765,
	ErodedBadlands:         0xFF6D3D,
	SnowyPlains:            0xFFFFFF,
	IceSpikes:              0xB4DCDC,
	SnowyBeach:             0xFAF0C0,
	FrozenRiver:            0xA0A0FF,
	SnowySlopes:            0xA8A8A8,
	FrozenPeaks:            0xA0A0FF,
	JaggedPeaks:            0xC0C0C0,
	StonyPeaks:             0x888888,
	Grove:                  0x4E8A4E,
	Beach:                  0xFADE55,
	StonyShore:             0xA2A284,
	River:                  0x0000FF,
	WindsweptHills:         0x606060,
	WindsweptForest:        0x507050,
	WindsweptGravellyHills: 0x888888,
	Meadow:                 0x58B858,
	MushroomFields:         0xFF00FF,
	CherryGrove:            0xFFB7C5,
	DripstoneCaves:         0x866043,
	LushCaves:              0x7BA331,
	DeepDark:               0x0F252F,
	PaleGarden:             0xD5CEC7,
}

var grassColors = map[ID]RGB{
	Swamp:          0x6A7039,
	MangroveSwamp:  0x8DB127,
	Jungle:         0x59C93C,
	BambooJungle:   0x59C93C,
	SparseJungle:   0x59C93C,
	Badlands:       0x90814D,
	WoodedBadlands: 0x90814D,
	ErodedBadlands: 0x90814D,
	DarkForest:     0x507A32,
}

var baseHeights = map[ID]int{
	Ocean:                  45,
	DeepOcean:              30,
	FrozenOcean:            45,
	DeepFrozenOcean:        30,
	ColdOcean:              45,
	DeepColdOcean:          30,
	LukewarmOcean:          45,
	DeepLukewarmOcean:      30,
	WarmOcean:              48,
	Beach:                  63,
	SnowyBeach:             63,
	StonyShore:             64,
	River:                  56,
	FrozenRiver:            56,
	Plains:                 68,
	SunflowerPlains:        68,
	Meadow:                 72,
	Forest:                 70,
	FlowerForest:           70,
	BirchForest:            68,
	DarkForest:             68,
	CherryGrove:            70,
	PaleGarden:             68,
	Taiga:                  68,
	SnowyTaiga:             68,
	Grove:                  75,
	Jungle:                 72,
	BambooJungle:           70,
	SparseJungle:           70,
	Swamp:                  62,
	MangroveSwamp:          61,
	Desert:                 68,
	Badlands:               80,
	WoodedBadlands:         82,
	ErodedBadlands:         75,
	Savanna:                70,
	SavannaPlateau:         85,
	SnowyPlains:            68,
	IceSpikes:              68,
	SnowySlopes:            90,
	FrozenPeaks:            110,
	WindsweptHills:         90,
	WindsweptForest:        85,
	WindsweptGravellyHills: 88,
	JaggedPeaks:            120,
	StonyPeaks:             115,
	MushroomFields:         66,
}

// treed maps biomes to tree density classes: 1 for forested biomes, 2 for
// sparsely treed ones. Everything absent has no trees.
var treed = map[ID]int{
	Forest:          1,
	FlowerForest:    1,
	BirchForest:     1,
	DarkForest:      1,
	Taiga:           1,
	SnowyTaiga:      1,
	Jungle:          1,
	BambooJungle:    1,
	SparseJungle:    1,
	Swamp:           1,
	MangroveSwamp:   1,
	Grove:           1,
	WindsweptForest: 1,
	CherryGrove:     1,
	PaleGarden:      1,
	WoodedBadlands:  1,
	Plains:          2,
	Meadow:          2,
	Savanna:         2,
}

// IsOceanic reports whether the biome is part of the ocean family.
func IsOceanic(id ID) bool {
	switch id {
	case Ocean, DeepOcean, FrozenOcean, DeepFrozenOcean, ColdOcean,
		DeepColdOcean, LukewarmOcean, DeepLukewarmOcean, WarmOcean:
		return true
	}
	return false
}

// IsSnowy reports whether the biome has a permanently frozen surface.
func IsSnowy(id ID) bool {
	switch id {
	case FrozenOcean, DeepFrozenOcean, FrozenRiver, SnowyPlains, IceSpikes,
		SnowyBeach, SnowyTaiga, SnowySlopes, FrozenPeaks, Grove:
		return true
	}
	return false
}

// IsShore reports whether the biome is a beach or shore variant.
func IsShore(id ID) bool {
	switch id {
	case Beach, SnowyBeach, StonyShore:
		return true
	}
	return false
}

// BaseHeight returns the typical terrain height of the biome in blocks,
// 64 for unknown IDs.
func BaseHeight(id ID) int {
	if h, ok := baseHeights[id]; ok {
		return h
	}
	return 64
}

// Trees returns 0 for treeless biomes, 1 for forested biomes and 2 for
// sparsely treed ones.
func Trees(id ID) int {
	return treed[id]
}

// Color returns the map colour of the biome, gray for unknown IDs.
func Color(id ID) RGB {
	if c, ok := colors[id]; ok {
		return c
	}
	return defaultColor
}

// GrassColor returns the grass tint of the biome. Most biomes share the
// default tint.
func GrassColor(id ID) RGB {
	if c, ok := grassColors[id]; ok {
		return c
	}
	return defaultGrassColor
}
