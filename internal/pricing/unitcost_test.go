package pricing

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestResolveUnitPriceMaterialOnly(t *testing.T) {
	// One BOM line, 1.2 m3 of concrete at 100/m3 with 5% scrap and no
	// labor or overheads: 1.2 * 100 * 1.05 = 126.00.
	piece := Piece{Code: "V-120", Family: "beams"}
	bom := []BOMLine{{MaterialCode: "H30", QuantityPerUM: 1.2, ScrapFraction: 0.05}}
	prices := MaterialPriceIndex{"H30": 100}

	got, err := ResolveUnitPrice(piece, bom, prices, ProcessParameters{}, nil)
	if err != nil {
		t.Fatalf("ResolveUnitPrice: %v", err)
	}
	if !almostEqual(got, 126.00) {
		t.Errorf("got %v, want 126.00", got)
	}
}

func TestResolveUnitPriceFullCosting(t *testing.T) {
	piece := Piece{
		Code:            "TT-50",
		WeightKg:        2400, // 2.4 t per UM
		KgSteelPerUM:    120,
		M3ConcretePerUM: 0.96,
	}
	bom := []BOMLine{
		{MaterialCode: "H30", QuantityPerUM: 0.96, ScrapFraction: 0.02},
		{MaterialCode: "ADN420", QuantityPerUM: 120, ScrapFraction: 0.05},
	}
	prices := MaterialPriceIndex{"H30": 110, "ADN420": 1.4}
	params := ProcessParameters{
		CuringEnergyPerTon:      8,
		FactoryOverheadPerTon:   22,
		CompanyOverheadPerTon:   15,
		ProfitPerTon:            30,
		EngineeringPerTon:       5,
		HourlyLaborRate:         18,
		LaborHoursPerTonSteel:   12,
		LaborHoursPerM3Concrete: 1.5,
	}

	got, err := ResolveUnitPrice(piece, bom, prices, params, nil)
	if err != nil {
		t.Fatalf("ResolveUnitPrice: %v", err)
	}

	material := 0.96*110*1.02 + 120*1.4*1.05
	hours := 120.0/1000*12 + 0.96*1.5
	labor := hours * 18
	overheads := (8 + 22 + 15 + 30 + 5) * 2.4
	want := material + labor + overheads
	if !almostEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestResolveUnitPriceIdempotent(t *testing.T) {
	piece := Piece{Code: "P-1", WeightKg: 900, KgSteelPerUM: 40, M3ConcretePerUM: 0.4}
	bom := []BOMLine{{MaterialCode: "H21", QuantityPerUM: 0.4, ScrapFraction: 0.03}}
	prices := MaterialPriceIndex{"H21": 95}
	params := ProcessParameters{HourlyLaborRate: 20, LaborHoursPerTonSteel: 10, LaborHoursPerM3Concrete: 2, ProfitPerTon: 25}

	first, err := ResolveUnitPrice(piece, bom, prices, params, nil)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := ResolveUnitPrice(piece, bom, prices, params, nil)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if first != second {
		t.Errorf("identical inputs gave %v then %v", first, second)
	}
}

func TestResolveUnitPriceOverride(t *testing.T) {
	override := 1500.0

	tests := []struct {
		name     string
		bom      []BOMLine
		prices   MaterialPriceIndex
		override *float64
		want     float64
		wantErr  bool
	}{
		{"no BOM with override", nil, nil, &override, 1500, false},
		{"no BOM without override", nil, nil, nil, 0, true},
		{"unpriced material with override", []BOMLine{{MaterialCode: "X", QuantityPerUM: 1}}, MaterialPriceIndex{}, &override, 1500, false},
		{"unpriced material without override", []BOMLine{{MaterialCode: "X", QuantityPerUM: 1}}, MaterialPriceIndex{}, nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveUnitPrice(Piece{Code: "M-1"}, tt.bom, tt.prices, ProcessParameters{}, tt.override)
			if tt.wantErr {
				var perr *PricingError
				if !errors.As(err, &perr) {
					t.Fatalf("want PricingError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveUnitPrice: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveUnitPriceValidation(t *testing.T) {
	prices := MaterialPriceIndex{"H30": 100}

	tests := []struct {
		name string
		bom  []BOMLine
	}{
		{"negative quantity", []BOMLine{{MaterialCode: "H30", QuantityPerUM: -1}}},
		{"scrap above one", []BOMLine{{MaterialCode: "H30", QuantityPerUM: 1, ScrapFraction: 1.2}}},
		{"negative scrap", []BOMLine{{MaterialCode: "H30", QuantityPerUM: 1, ScrapFraction: -0.1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveUnitPrice(Piece{Code: "B-1"}, tt.bom, prices, ProcessParameters{}, nil)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("want ValidationError, got %v", err)
			}
		})
	}
}
