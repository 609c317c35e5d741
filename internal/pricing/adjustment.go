package pricing

import "sort"

// Adjustment is the outcome of a scale lookup: a tiered discount (or
// surcharge) plus a separate additive adjustment, both decimals of the
// pre-adjustment price.
type Adjustment struct {
	Discount   float64 `json:"discount"`
	Adjustment float64 `json:"adjustment"`
}

// Total is the combined percentage applied to a line.
func (a Adjustment) Total() float64 { return a.Discount + a.Adjustment }

// EvaluateAdjustment finds the scale tier covering quantity for the
// given family and returns its percentages for the requested category.
//
// A quantity outside every configured tier is not an error: it yields a
// zero adjustment. When tiers overlap (a data-integrity defect the
// engine does not own), the first match by ascending QuantityFrom wins.
func EvaluateAdjustment(family string, quantity float64, category AdjustmentCategory, scales []AdjustmentScale) (Adjustment, error) {
	if quantity < 0 {
		return Adjustment{}, validationf("quantity", "must not be negative, got %v", quantity)
	}
	if category != CategoryGeneral && category != CategorySpecial {
		return Adjustment{}, validationf("category", "unknown category %q", category)
	}

	candidates := make([]AdjustmentScale, 0, len(scales))
	for _, s := range scales {
		if s.Family == family && s.QuantityFrom <= quantity && quantity <= s.QuantityTo {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return Adjustment{}, nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].QuantityFrom < candidates[j].QuantityFrom
	})

	row := candidates[0]
	if category == CategorySpecial {
		return Adjustment{Discount: row.DiscountSpecial, Adjustment: row.AdjustmentSpecial}, nil
	}
	return Adjustment{Discount: row.DiscountGeneral, Adjustment: row.AdjustmentGeneral}, nil
}
