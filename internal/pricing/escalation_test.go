package pricing

import (
	"errors"
	"math"
	"testing"
)

var standardFormula = PolynomialFormula{Steel: 0.4, Labor: 0.3, Concrete: 0.2, Fuel: 0.1}

func TestCalculateEscalation(t *testing.T) {
	base := MonthlyIndex{Month: 1, Year: 2025, Steel: 100, Labor: 200, Concrete: 50, Fuel: 80, ExchangeRate: 1}
	target := MonthlyIndex{Month: 7, Year: 2025, Steel: 110, Labor: 210, Concrete: 55, Fuel: 96, ExchangeRate: 1}

	got, err := CalculateEscalation(base, target, standardFormula)
	if err != nil {
		t.Fatalf("CalculateEscalation: %v", err)
	}
	// 0.4*1.10 + 0.3*1.05 + 0.2*1.10 + 0.1*1.20 = 1.095
	want := 9.5
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v%%, want %v%%", got, want)
	}
}

func TestCalculateEscalationIdentity(t *testing.T) {
	// Escalating a period against itself yields zero for any valid
	// formula, within float tolerance.
	idx := MonthlyIndex{Month: 3, Year: 2025, Steel: 131.2, Labor: 245.7, Concrete: 88.4, Fuel: 120.9}
	formulas := []PolynomialFormula{
		standardFormula,
		{Steel: 1},
		{Steel: 0.25, Labor: 0.25, Concrete: 0.25, Fuel: 0.25},
		{Steel: 0.55, Labor: 0.15, Concrete: 0.2, Fuel: 0.1},
	}
	for _, f := range formulas {
		got, err := CalculateEscalation(idx, idx, f)
		if err != nil {
			t.Fatalf("formula %+v: %v", f, err)
		}
		if math.Abs(got) > 1e-9 {
			t.Errorf("formula %+v: got %v%%, want 0", f, got)
		}
	}
}

func TestCalculateEscalationCoefficientSum(t *testing.T) {
	base := MonthlyIndex{Steel: 100, Labor: 100, Concrete: 100, Fuel: 100}

	tests := []struct {
		name    string
		formula PolynomialFormula
		wantErr bool
	}{
		{"sums to one", standardFormula, false},
		{"within tolerance", PolynomialFormula{Steel: 0.4005, Labor: 0.3, Concrete: 0.2, Fuel: 0.1}, false},
		{"too low", PolynomialFormula{Steel: 0.4, Labor: 0.3, Concrete: 0.2}, true},
		{"too high", PolynomialFormula{Steel: 0.5, Labor: 0.3, Concrete: 0.2, Fuel: 0.1}, true},
		{"zero formula", PolynomialFormula{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateEscalation(base, base, tt.formula)
			if tt.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("want ValidationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CalculateEscalation: %v", err)
			}
		})
	}
}

func TestCalculateEscalationZeroBaseIndex(t *testing.T) {
	base := MonthlyIndex{Steel: 100, Labor: 0, Concrete: 50, Fuel: 80}
	target := MonthlyIndex{Steel: 110, Labor: 210, Concrete: 55, Fuel: 96}

	_, err := CalculateEscalation(base, target, standardFormula)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}
