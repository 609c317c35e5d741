package pricing

import "math"

// coefficientTolerance is the accepted deviation of the coefficient sum
// from 1.0.
const coefficientTolerance = 0.001

// Validate checks that the formula coefficients sum to one within
// tolerance. The engine never normalizes a bad formula silently.
func (f PolynomialFormula) Validate() error {
	sum := f.Steel + f.Labor + f.Concrete + f.Fuel
	if math.Abs(sum-1) > coefficientTolerance {
		return validationf("formula", "coefficients must sum to 1.0 (±%v), got %v", coefficientTolerance, sum)
	}
	return nil
}

// CalculateEscalation computes the contract price adjustment between a
// base period and a target period as a percentage.
//
// Each index component contributes its target/base ratio weighted by
// the formula coefficient; the adjustment is (weighted factor − 1)×100.
// A base period with a zero or negative index component cannot be
// escalated against and is a ValidationError.
func CalculateEscalation(base, target MonthlyIndex, formula PolynomialFormula) (float64, error) {
	if err := formula.Validate(); err != nil {
		return 0, err
	}

	components := []struct {
		name        string
		coefficient float64
		base        float64
		target      float64
	}{
		{"steel", formula.Steel, base.Steel, target.Steel},
		{"labor", formula.Labor, base.Labor, target.Labor},
		{"concrete", formula.Concrete, base.Concrete, target.Concrete},
		{"fuel", formula.Fuel, base.Fuel, target.Fuel},
	}

	var factor float64
	for _, c := range components {
		if c.base <= 0 {
			return 0, validationf("baseIndex."+c.name, "base period index must be positive, got %v", c.base)
		}
		factor += c.coefficient * (c.target / c.base)
	}
	return (factor - 1) * 100, nil
}
