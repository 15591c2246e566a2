// Package biome defines the closed set of biome identifiers, the climate
// decision tree that classifies world columns into them, and the static
// per-biome property lookups consumed by the rest of the pipeline.
package biome

// ID identifies a biome. The numbering follows the conventional overworld
// biome IDs; mangrove swamp is canonically 184.
type ID int32

const (
	Ocean                  ID = 0
	Plains                 ID = 1
	Desert                 ID = 2
	WindsweptHills         ID = 3
	Forest                 ID = 4
	Taiga                  ID = 5
	Swamp                  ID = 6
	River                  ID = 7
	FrozenOcean            ID = 10
	FrozenRiver            ID = 11
	SnowyPlains            ID = 12
	IceSpikes              ID = 13
	MushroomFields         ID = 14
	Beach                  ID = 16
	Jungle                 ID = 21
	SparseJungle           ID = 23
	DeepOcean              ID = 24
	StonyShore             ID = 25
	SnowyBeach             ID = 26
	BirchForest            ID = 27
	DarkForest             ID = 29
	SnowyTaiga             ID = 30
	WindsweptForest        ID = 34
	Savanna                ID = 35
	SavannaPlateau         ID = 36
	Badlands               ID = 37
	WoodedBadlands         ID = 38
	WarmOcean              ID = 44
	LukewarmOcean          ID = 45
	ColdOcean              ID = 46
	DeepLukewarmOcean      ID = 48
	DeepColdOcean          ID = 49
	DeepFrozenOcean        ID = 50
	SunflowerPlains        ID = 129
	WindsweptGravellyHills ID = 131
	FlowerForest           ID = 132
	ErodedBadlands         ID = 165
	BambooJungle           ID = 168
	DripstoneCaves         ID = 174
	LushCaves              ID = 175
	Meadow                 ID = 177
	Grove                  ID = 178
	SnowySlopes            ID = 179
	FrozenPeaks            ID = 180
	JaggedPeaks            ID = 181
	StonyPeaks             ID = 182
	DeepDark               ID = 183
	MangroveSwamp          ID = 184
	CherryGrove            ID = 185
	PaleGarden             ID = 186
)

var names = map[ID]string{
	Ocean:                  "ocean",
	Plains:                 "plains",
	Desert:                 "desert",
	WindsweptHills:         "windswept_hills",
	Forest:                 "forest",
	Taiga:                  "taiga",
	Swamp:                  "swamp",
	River:                  "river",
	FrozenOcean:            "frozen_ocean",
	FrozenRiver:            "frozen_river",
	SnowyPlains:            "snowy_plains",
	IceSpikes:              "ice_spikes",
	MushroomFields:         "mushroom_fields",
	Beach:                  "beach",
	Jungle:                 "jungle",
	SparseJungle:           "sparse_jungle",
	DeepOcean:              "deep_ocean",
	StonyShore:             "stony_shore",
	SnowyBeach:             "snowy_beach",
	BirchForest:            "birch_forest",
	DarkForest:             "dark_forest",
	SnowyTaiga:             "snowy_taiga",
	WindsweptForest:        "windswept_forest",
	Savanna:                "savanna",
	SavannaPlateau:         "savanna_plateau",
	Badlands:               "badlands",
	WoodedBadlands:         "wooded_badlands",
	WarmOcean:              "warm_ocean",
	LukewarmOcean:          "lukewarm_ocean",
	ColdOcean:              "cold_ocean",
	DeepLukewarmOcean:      "deep_lukewarm_ocean",
	DeepColdOcean:          "deep_cold_ocean",
	DeepFrozenOcean:        "deep_frozen_ocean",
	SunflowerPlains:        "sunflower_plains",
	WindsweptGravellyHills: "windswept_gravelly_hills",
	FlowerForest:           "flower_forest",
	ErodedBadlands:         "eroded_badlands",
	BambooJungle:           "bamboo_jungle",
	DripstoneCaves:         "dripstone_caves",
	LushCaves:              "lush_caves",
	Meadow:                 "meadow",
	Grove:                  "grove",
	SnowySlopes:            "snowy_slopes",
	FrozenPeaks:            "frozen_peaks",
	JaggedPeaks:            "jagged_peaks",
	StonyPeaks:             "stony_peaks",
	DeepDark:               "deep_dark",
	MangroveSwamp:          "mangrove_swamp",
	CherryGrove:            "cherry_grove",
	PaleGarden:             "pale_garden",
}

// Known reports whether id is part of the closed biome set.
func Known(id ID) bool {
	_, ok := names[id]
	return ok
}

// Name returns the lowercase identifier of the biome, or "plains" for an
// unknown ID so that downstream consumers always have a usable value.
func Name(id ID) string {
	if n, ok := names[id]; ok {
		return n
	}
	return names[Plains]
}

// All returns every known biome ID. The slice is freshly allocated per
// call.
func All() []ID {
	ids := make([]ID, 0, len(names))
	for id := range names {
		ids = append(ids, id)
	}
	return ids
}

func (id ID) String() string {
	return Name(id)
}
