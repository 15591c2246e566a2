package biome

import "github.com/df-mc/terragen/worldgen/climate"

// Classify maps a climate point to exactly one biome. The rule groups are
// evaluated in a fixed priority order — ocean, shore, river, mountain, land
// — and earlier groups shadow later ones, so reordering them moves biome
// boundaries. Every branch ends in a threshold ladder with an
// unconditional tail, which keeps the function total even for climate
// values that overshoot the nominal [-1, 1] band.
func Classify(p climate.Point) ID {
	switch {
	case p.Continentalness < -0.1:
		return classifyOcean(p)
	case p.Continentalness < 0.1:
		return classifyShore(p)
	case abs(p.Weirdness) < 0.05 && p.Erosion > 0.3:
		if p.Temperature < -0.3 {
			return FrozenRiver
		}
		return River
	case p.Continentalness > 0.6 && p.Erosion < -0.2:
		return classifyMountain(p)
	}
	return classifyLand(p)
}

// classifyOcean splits the ocean family into five temperature bands, each
// with a deep variant below continentalness -0.5. Warm oceans have no deep
// variant.
func classifyOcean(p climate.Point) ID {
	deep := p.Continentalness < -0.5
	switch {
	case p.Temperature < -0.45:
		if deep {
			return DeepFrozenOcean
		}
		return FrozenOcean
	case p.Temperature < -0.15:
		if deep {
			return DeepColdOcean
		}
		return ColdOcean
	case p.Temperature < 0.2:
		if deep {
			return DeepOcean
		}
		return Ocean
	case p.Temperature < 0.55:
		if deep {
			return DeepLukewarmOcean
		}
		return LukewarmOcean
	}
	return WarmOcean
}

// classifyShore covers the near-zero continentalness band between ocean and
// inland terrain: beaches right at the coast, swamps and plains slightly
// further in.
func classifyShore(p climate.Point) ID {
	if p.Continentalness < 0 {
		switch {
		case p.Temperature < -0.3:
			return SnowyBeach
		case p.Humidity < -0.35:
			return StonyShore
		}
		return Beach
	}
	if p.Humidity > 0.3 && p.Temperature > 0 {
		if p.Temperature > 0.6 {
			return MangroveSwamp
		}
		return Swamp
	}
	return Plains
}

// classifyMountain covers high continentalness with low erosion. The peak
// tag derived from weirdness picks the peak type wherever the nested
// thresholds land on an actual peak.
func classifyMountain(p climate.Point) ID {
	peak := FrozenPeaks
	if p.Weirdness > 0.5 {
		peak = JaggedPeaks
	} else if p.Weirdness < -0.3 {
		peak = StonyPeaks
	}

	switch {
	case p.Erosion < -0.45:
		if p.Temperature > 0.55 {
			// Hot climate never freezes a summit over.
			return StonyPeaks
		}
		return peak
	case p.Temperature < -0.15:
		if p.Humidity > 0 {
			return Grove
		}
		return SnowySlopes
	case p.Humidity < -0.3:
		return WindsweptGravellyHills
	case p.Humidity < 0.2:
		return WindsweptHills
	}
	return WindsweptForest
}

// classifyLand covers everything left: inland terrain in five temperature
// bands, each split further by humidity and weirdness.
func classifyLand(p climate.Point) ID {
	switch {
	case p.Temperature < -0.45:
		switch {
		case p.Weirdness > 0.5:
			return IceSpikes
		case p.Humidity > 0.3:
			return SnowyTaiga
		}
		return SnowyPlains
	case p.Temperature < -0.15:
		switch {
		case p.Humidity > 0.4:
			return SnowyTaiga
		case p.Humidity > 0:
			return Taiga
		case p.Weirdness < -0.5:
			return Meadow
		}
		return Plains
	case p.Temperature < 0.2:
		switch {
		case p.Weirdness > 0.65 && p.Humidity > 0.1:
			return CherryGrove
		case p.Humidity > 0.6 && p.Weirdness < -0.5:
			return PaleGarden
		case p.Humidity > 0.55:
			return DarkForest
		case p.Humidity > 0.3:
			if p.Weirdness > 0.25 {
				return FlowerForest
			}
			return Forest
		case p.Humidity > 0:
			if p.Weirdness > 0.4 {
				return BirchForest
			}
			return Forest
		case p.Weirdness < -0.5:
			return Meadow
		case p.Weirdness > 0.5:
			return SunflowerPlains
		}
		return Plains
	case p.Temperature < 0.55:
		switch {
		case p.Humidity > 0.55:
			switch {
			case p.Weirdness > 0.4:
				return BambooJungle
			case p.Weirdness < -0.3:
				return SparseJungle
			}
			return Jungle
		case p.Humidity > 0.2:
			return Forest
		case p.Humidity > -0.1:
			if p.Weirdness > 0.3 {
				return SunflowerPlains
			}
			return Plains
		case p.Humidity > -0.35:
			return Savanna
		}
		return Desert
	}
	// Hot band.
	switch {
	case p.Humidity > 0.4:
		return Jungle
	case p.Humidity > 0:
		if p.Weirdness > 0.4 {
			return SavannaPlateau
		}
		return Savanna
	case p.Humidity > -0.3:
		switch {
		case p.Weirdness > 0.3:
			return ErodedBadlands
		case p.Humidity > -0.15:
			return WoodedBadlands
		}
		return Badlands
	}
	return Desert
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
