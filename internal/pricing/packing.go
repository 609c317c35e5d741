package pricing

import "math"

// footprint is a piece as placed on the deck for one orientation.
type footprint struct {
	alongM  float64 // dimension along the deck length
	acrossM float64 // dimension across the deck width
	vertM   float64 // dimension stacked vertically
}

func orient(p Piece, o Orientation) []footprint {
	flat := footprint{alongM: p.LengthM, acrossM: p.WidthM, vertM: p.HeightM}
	upright := footprint{alongM: p.LengthM, acrossM: p.HeightM, vertM: p.WidthM}
	switch o {
	case OrientationFlat:
		return []footprint{flat}
	case OrientationUpright:
		return []footprint{upright}
	default:
		return []footprint{flat, upright}
	}
}

func validateTruck(t TruckType) error {
	if t.CapacityTons <= 0 {
		return configurationf("truck "+t.Code, "capacity must be positive, got %v t", t.CapacityTons)
	}
	if t.DeckLengthM <= 0 || t.DeckWidthM <= 0 || t.MaxStackHeightM <= 0 {
		return configurationf("truck "+t.Code, "deck dimensions must be positive, got %vx%vx%v m",
			t.DeckLengthM, t.DeckWidthM, t.MaxStackHeightM)
	}
	if t.UsableVolumeFactor <= 0 || t.UsableVolumeFactor > 1 {
		return configurationf("truck "+t.Code, "usable volume factor must be within (0,1], got %v", t.UsableVolumeFactor)
	}
	return nil
}

// UnitsPerTruck computes how many units of a piece fit on one truck.
//
// With an explicit packing rule carrying PiecesPerTruck, that count
// wins. Otherwise the count is derived from geometry: units along the
// deck times units across it times stack layers, under the rule's
// orientation and stacking constraints (or unconstrained geometry when
// there is no rule at all).
func UnitsPerTruck(piece Piece, truck TruckType, rule *PackingRule) (int, error) {
	if err := validateTruck(truck); err != nil {
		return 0, err
	}
	if rule != nil && rule.PiecesPerTruck > 0 {
		return rule.PiecesPerTruck, nil
	}
	if piece.LengthM <= 0 || piece.WidthM <= 0 || piece.HeightM <= 0 {
		return 0, configurationf("piece "+piece.Code, "dimensions must be positive, got %vx%vx%v m",
			piece.LengthM, piece.WidthM, piece.HeightM)
	}

	orientation := OrientationAny
	stacking := true
	maxLayers := 0
	if rule != nil {
		if rule.Orientation != "" {
			orientation = rule.Orientation
		}
		stacking = rule.StackingAllowed
		maxLayers = rule.MaxStackLayers
	}

	best := 0
	for _, f := range orient(piece, orientation) {
		along := int(math.Floor(truck.DeckLengthM / (f.alongM + truck.MinGapM)))
		across := int(math.Floor(truck.DeckWidthM / (f.acrossM + truck.MinGapM)))
		layers := 1
		if stacking {
			layers = int(math.Floor(truck.MaxStackHeightM / f.vertM))
			if maxLayers > 0 && layers > maxLayers {
				layers = maxLayers
			}
		}
		if n := along * across * layers; n > best {
			best = n
		}
	}
	if best <= 0 {
		return 0, configurationf("piece "+piece.Code, "does not fit truck %s in any allowed orientation", truck.Code)
	}
	return best, nil
}

// CalculateTrips returns the number of truck trips needed to move
// quantity units of a piece.
//
// The trip count is the maximum of three independently rounded-up
// bounds: total weight over truck capacity, total units over units per
// truck, and total volume over usable deck volume. Taking the maximum
// is deliberate policy: every constraint must hold at once, and trips
// are never fractional.
func CalculateTrips(piece Piece, quantity int, truck TruckType, rule *PackingRule) (int, error) {
	if quantity < 0 {
		return 0, validationf("quantity", "must not be negative, got %d", quantity)
	}
	if quantity == 0 {
		return 0, nil
	}
	if err := validateTruck(truck); err != nil {
		return 0, err
	}

	unitsPerTruck, err := UnitsPerTruck(piece, truck, rule)
	if err != nil {
		return 0, err
	}

	totalWeightTons := float64(quantity) * piece.WeightKg / 1000
	weightBound := int(math.Ceil(totalWeightTons / truck.CapacityTons))

	unitBound := int(math.Ceil(float64(quantity) / float64(unitsPerTruck)))

	usableVolumeM3 := truck.DeckLengthM * truck.DeckWidthM * truck.MaxStackHeightM * truck.UsableVolumeFactor
	totalVolumeM3 := float64(quantity) * piece.VolumeM3
	volumeBound := int(math.Ceil(totalVolumeM3 / usableVolumeM3))

	trips := weightBound
	if unitBound > trips {
		trips = unitBound
	}
	if volumeBound > trips {
		trips = volumeBound
	}
	return trips, nil
}
