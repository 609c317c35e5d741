package pricing

import "math"

// Round2 rounds a monetary value to 2 decimal places. It is applied at
// the final composition step only, never on intermediate sums.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sumWorkLines(lines []WorkLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Quantity * l.UnitPrice
	}
	return total
}

func ruleFor(family string, truck TruckType, rules []PackingRule) *PackingRule {
	for i := range rules {
		if rules[i].Family == family && rules[i].TruckCode == truck.Code {
			return &rules[i]
		}
	}
	return nil
}

// CalculateQuotationTotals composes priced items, transport, mounting,
// and complementary works into the final quotation figures.
//
// Each line is adjusted by its family scale before summing. Transport
// prices the summed per-line trip counts through the tariff table and
// only when requested; mounting likewise. Monetary outputs are rounded
// to 2 decimals at this composition step only.
func CalculateQuotationTotals(in TotalsInput) (QuotationResult, error) {
	if in.TaxRate < 0 {
		return QuotationResult{}, validationf("taxRate", "must not be negative, got %v", in.TaxRate)
	}

	var result QuotationResult
	var materials float64
	for _, item := range in.Items {
		if item.Quantity < 0 {
			return QuotationResult{}, validationf("item.quantity", "piece %s: must not be negative, got %d", item.PieceCode, item.Quantity)
		}
		adj, err := EvaluateAdjustment(item.Family, float64(item.Quantity), item.Category, in.Scales)
		if err != nil {
			return QuotationResult{}, err
		}
		lineTotal := item.UnitPrice * float64(item.Quantity) * (1 + adj.Total())
		materials += lineTotal
		result.Lines = append(result.Lines, LineResult{
			PieceCode:     item.PieceCode,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			AdjustmentPct: adj.Total(),
			Total:         Round2(lineTotal),
		})
	}

	var transport float64
	if in.Transport.Enabled {
		trips := 0
		for _, item := range in.Items {
			piece, ok := in.Pieces[item.PieceCode]
			if !ok {
				return QuotationResult{}, configurationf("piece "+item.PieceCode, "no geometry available for transport calculation")
			}
			rule := ruleFor(item.Family, in.Transport.Truck, in.Transport.Rules)
			n, err := CalculateTrips(piece, item.Quantity, in.Transport.Truck, rule)
			if err != nil {
				return QuotationResult{}, err
			}
			trips += n
		}
		cost, err := CalculateFreight(trips, in.Transport.DistanceKm, in.Transport.Tariffs, in.Transport.OverheadPct)
		if err != nil {
			return QuotationResult{}, err
		}
		result.Trips = trips
		transport = cost
	}

	var mounting float64
	if in.Mounting.Enabled {
		m := in.Mounting
		mounting = m.CraneDays*m.DailyCraneRate +
			m.ExtraCraneDays*m.ExtraCraneRate +
			m.TransferKm*m.TransferKmRate
	}

	complementary := sumWorkLines(in.TC1) + sumWorkLines(in.TC2)

	totals := QuotationTotals{
		Materials:     Round2(materials),
		Transport:     Round2(transport),
		Mounting:      Round2(mounting),
		Complementary: Round2(complementary),
	}
	totals.PreTax = Round2(totals.Materials + totals.Transport + totals.Mounting + totals.Complementary)
	totals.Tax = Round2(totals.PreTax * in.TaxRate)
	totals.GrandTotal = Round2(totals.PreTax + totals.Tax)

	result.Totals = totals
	return result, nil
}
