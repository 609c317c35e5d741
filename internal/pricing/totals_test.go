package pricing

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestCalculateQuotationTotalsComposition(t *testing.T) {
	// Materials 1000, transport 200, no mounting, no complementary
	// works, 21% tax: preTax 1200, tax 252, grand total 1452.
	in := TotalsInput{
		Items: []QuotationItem{
			{PieceCode: "V-620", Family: "beams", Quantity: 10, UnitPrice: 100, WeightKg: 600, Category: CategoryGeneral},
		},
		Pieces: map[string]Piece{
			"V-620": {Code: "V-620", Family: "beams", LengthM: 6.2, WidthM: 0.4, HeightM: 0.6, WeightKg: 600, VolumeM3: 1.1},
		},
		Transport: TransportParams{
			Enabled:    true,
			Truck:      semiTrailer,
			Tariffs:    []TransportTariff{{FromKm: 0, PricePerTrip: 200}},
			DistanceKm: 30,
		},
		TaxRate: 0.21,
	}

	got, err := CalculateQuotationTotals(in)
	if err != nil {
		t.Fatalf("CalculateQuotationTotals: %v", err)
	}
	if got.Trips != 1 {
		t.Fatalf("got %d trips, want 1", got.Trips)
	}
	want := QuotationTotals{
		Materials: 1000, Transport: 200,
		PreTax: 1200, Tax: 252, GrandTotal: 1452,
	}
	if got.Totals != want {
		t.Errorf("got %+v, want %+v", got.Totals, want)
	}
}

func TestCalculateQuotationTotalsWithAdjustments(t *testing.T) {
	in := TotalsInput{
		Items: []QuotationItem{
			{PieceCode: "V-620", Family: "beams", Quantity: 25, UnitPrice: 100, Category: CategoryGeneral},
			{PieceCode: "PL-600", Family: "panels", Quantity: 8, UnitPrice: 50, Category: CategorySpecial},
		},
		Scales: beamScales,
	}

	got, err := CalculateQuotationTotals(in)
	if err != nil {
		t.Fatalf("CalculateQuotationTotals: %v", err)
	}
	// beams: 25*100*(1-0.05+0.01) = 2400; panels: 8*50*(1-0.03) = 388.
	if !almostEqual(got.Totals.Materials, 2788) {
		t.Errorf("materials = %v, want 2788", got.Totals.Materials)
	}
	if len(got.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(got.Lines))
	}
	if !almostEqual(got.Lines[0].AdjustmentPct, -0.04) {
		t.Errorf("line 0 adjustment = %v, want -0.04", got.Lines[0].AdjustmentPct)
	}
}

func TestCalculateQuotationTotalsMountingAndWorks(t *testing.T) {
	in := TotalsInput{
		Mounting: MountingParams{
			Enabled:        true,
			CraneDays:      3,
			DailyCraneRate: 900,
			ExtraCraneDays: 1,
			ExtraCraneRate: 1200,
			TransferKm:     120,
			TransferKmRate: 2.5,
		},
		TC1: []WorkLine{
			{Description: "joint sealing", Quantity: 40, UnitPrice: 12.5},
		},
		TC2: []WorkLine{
			{Description: "anchor grouting", Quantity: 16, UnitPrice: 31.25},
		},
		TaxRate: 0.21,
	}

	got, err := CalculateQuotationTotals(in)
	if err != nil {
		t.Fatalf("CalculateQuotationTotals: %v", err)
	}
	if !almostEqual(got.Totals.Mounting, 4200) { // 2700 + 1200 + 300
		t.Errorf("mounting = %v, want 4200", got.Totals.Mounting)
	}
	if !almostEqual(got.Totals.Complementary, 1000) { // 500 + 500
		t.Errorf("complementary = %v, want 1000", got.Totals.Complementary)
	}
	if !almostEqual(got.Totals.GrandTotal, 6292) { // 5200 * 1.21
		t.Errorf("grand total = %v, want 6292", got.Totals.GrandTotal)
	}
}

func TestCalculateQuotationTotalsMountingDisabled(t *testing.T) {
	in := TotalsInput{
		Mounting: MountingParams{CraneDays: 3, DailyCraneRate: 900},
	}
	got, err := CalculateQuotationTotals(in)
	if err != nil {
		t.Fatalf("CalculateQuotationTotals: %v", err)
	}
	if got.Totals.Mounting != 0 {
		t.Errorf("mounting = %v, want 0 when disabled", got.Totals.Mounting)
	}
}

func TestCalculateQuotationTotalsStableUnderReordering(t *testing.T) {
	items := make([]QuotationItem, 0, 30)
	for i := 0; i < 30; i++ {
		items = append(items, QuotationItem{
			PieceCode: "P",
			Family:    "beams",
			Quantity:  1 + i%7,
			UnitPrice: 13.07 * float64(i+1),
			Category:  CategoryGeneral,
		})
	}
	ref, err := CalculateQuotationTotals(TotalsInput{Items: items, TaxRate: 0.21})
	if err != nil {
		t.Fatalf("CalculateQuotationTotals: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := append([]QuotationItem(nil), items...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got, err := CalculateQuotationTotals(TotalsInput{Items: shuffled, TaxRate: 0.21})
		if err != nil {
			t.Fatalf("shuffle %d: %v", i, err)
		}
		if math.Abs(got.Totals.GrandTotal-ref.Totals.GrandTotal) > 1e-6 {
			t.Errorf("shuffle %d: grand total %v, want %v", i, got.Totals.GrandTotal, ref.Totals.GrandTotal)
		}
	}
}

func TestCalculateQuotationTotalsErrors(t *testing.T) {
	t.Run("negative tax rate", func(t *testing.T) {
		_, err := CalculateQuotationTotals(TotalsInput{TaxRate: -0.1})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("want ValidationError, got %v", err)
		}
	})
	t.Run("transport without geometry", func(t *testing.T) {
		in := TotalsInput{
			Items:     []QuotationItem{{PieceCode: "GHOST", Family: "beams", Quantity: 1, UnitPrice: 10, Category: CategoryGeneral}},
			Transport: TransportParams{Enabled: true, Truck: semiTrailer, Tariffs: roadTariffs},
		}
		_, err := CalculateQuotationTotals(in)
		var cerr *ConfigurationError
		if !errors.As(err, &cerr) {
			t.Fatalf("want ConfigurationError, got %v", err)
		}
	})
}
