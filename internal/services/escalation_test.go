package services

import (
	"math"
	"testing"

	"github.com/dovela/quoting/internal/models"
	"github.com/dovela/quoting/internal/pricing"
)

func TestEscalationServiceEscalate(t *testing.T) {
	db := setupTestDB(t, t.Name())
	for _, row := range []models.MonthlyIndex{
		{Month: 1, Year: 2025, Steel: 100, Labor: 200, Concrete: 50, Fuel: 80, ExchangeRate: 1},
		{Month: 7, Year: 2025, Steel: 110, Labor: 210, Concrete: 55, Fuel: 96, ExchangeRate: 1},
	} {
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed index: %v", err)
		}
	}
	svc := NewEscalationService(db)
	formula := pricing.PolynomialFormula{Steel: 0.4, Labor: 0.3, Concrete: 0.2, Fuel: 0.1}

	got, err := svc.Escalate(100000, Period{Month: 1, Year: 2025}, Period{Month: 7, Year: 2025}, formula)
	if err != nil {
		t.Fatalf("Escalate: %v", err)
	}
	if math.Abs(got.AdjustmentPct-9.5) > 1e-9 {
		t.Errorf("adjustment = %v%%, want 9.5%%", got.AdjustmentPct)
	}
	if got.AdjustedTotal != 109500 {
		t.Errorf("adjusted total = %v, want 109500", got.AdjustedTotal)
	}
}

func TestEscalationServiceMissingPeriod(t *testing.T) {
	db := setupTestDB(t, t.Name())
	if err := db.Create(&models.MonthlyIndex{Month: 1, Year: 2025, Steel: 100, Labor: 200, Concrete: 50, Fuel: 80, ExchangeRate: 1}).Error; err != nil {
		t.Fatalf("seed index: %v", err)
	}
	svc := NewEscalationService(db)
	formula := pricing.PolynomialFormula{Steel: 0.4, Labor: 0.3, Concrete: 0.2, Fuel: 0.1}

	if _, err := svc.Escalate(1000, Period{Month: 1, Year: 2025}, Period{Month: 2, Year: 2025}, formula); err == nil {
		t.Fatal("want error for missing target period")
	}
}
