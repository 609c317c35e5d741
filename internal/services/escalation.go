package services

import (
	"gorm.io/gorm"

	"github.com/dovela/quoting/internal/pricing"
	"github.com/dovela/quoting/internal/refdata"
)

// EscalationService re-prices an existing quotation total against new
// monthly index data using a polynomial formula.
type EscalationService struct {
	provider *refdata.Provider
}

func NewEscalationService(db *gorm.DB) *EscalationService {
	return &EscalationService{provider: refdata.NewProvider(db)}
}

// Period identifies one month of index data.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// EscalationResult is the outcome of re-pricing a total between two
// periods.
type EscalationResult struct {
	AdjustmentPct float64 `json:"adjustmentPct"`
	OriginalTotal float64 `json:"originalTotal"`
	AdjustedTotal float64 `json:"adjustedTotal"`
}

// Escalate loads the index rows for both periods and applies the
// formula to the given total. The adjusted total is rounded to 2
// decimals; the percentage is returned unrounded.
func (s *EscalationService) Escalate(total float64, base, target Period, formula pricing.PolynomialFormula) (EscalationResult, error) {
	baseIdx, err := s.provider.MonthlyIndexFor(base.Month, base.Year)
	if err != nil {
		return EscalationResult{}, err
	}
	targetIdx, err := s.provider.MonthlyIndexFor(target.Month, target.Year)
	if err != nil {
		return EscalationResult{}, err
	}

	pct, err := pricing.CalculateEscalation(baseIdx, targetIdx, formula)
	if err != nil {
		return EscalationResult{}, err
	}
	return EscalationResult{
		AdjustmentPct: pct,
		OriginalTotal: total,
		AdjustedTotal: pricing.Round2(total * (1 + pct/100)),
	}, nil
}
