package pricing

// ResolveUnitPrice computes the price of one unit of measure of a piece
// from its bill of materials, the effective material prices, and the
// process parameter set.
//
// A piece without BOM lines is priced with the manual override when one
// is supplied; this is the explicit path for pieces priced by hand. A
// missing material price also falls back to the override, and is a
// PricingError when there is none.
func ResolveUnitPrice(piece Piece, bom []BOMLine, prices MaterialPriceIndex, params ProcessParameters, override *float64) (float64, error) {
	if piece.WeightKg < 0 {
		return 0, validationf("piece.weightKg", "must not be negative, got %v", piece.WeightKg)
	}

	if len(bom) == 0 {
		if override != nil {
			return *override, nil
		}
		return 0, &PricingError{Piece: piece.Code, Reason: "no BOM lines and no manual price"}
	}

	var materialCost float64
	for _, line := range bom {
		if line.QuantityPerUM < 0 {
			return 0, validationf("bom.quantityPerUM", "material %s: must not be negative, got %v", line.MaterialCode, line.QuantityPerUM)
		}
		if line.ScrapFraction < 0 || line.ScrapFraction > 1 {
			return 0, validationf("bom.scrapFraction", "material %s: must be within [0,1], got %v", line.MaterialCode, line.ScrapFraction)
		}
		price, ok := prices[line.MaterialCode]
		if !ok {
			if override != nil {
				return *override, nil
			}
			return 0, &PricingError{Piece: piece.Code, Material: line.MaterialCode, Reason: "no effective price for calculation date"}
		}
		materialCost += line.QuantityPerUM * price * (1 + line.ScrapFraction)
	}

	hoursPerUM := piece.KgSteelPerUM/1000*params.LaborHoursPerTonSteel +
		piece.M3ConcretePerUM*params.LaborHoursPerM3Concrete
	laborCost := hoursPerUM * params.HourlyLaborRate

	tonsPerUM := piece.WeightKg / 1000
	perTonRates := params.CuringEnergyPerTon +
		params.FactoryOverheadPerTon +
		params.CompanyOverheadPerTon +
		params.ProfitPerTon +
		params.EngineeringPerTon
	overheads := perTonRates * tonsPerUM

	return materialCost + laborCost + overheads, nil
}
