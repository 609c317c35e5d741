// Package refdata is the read-only reference-data provider for the
// calculation engine. It resolves as-of-date lookups (material prices,
// process parameters) and fetches packing, tariff, scale, and index
// tables, translating stored rows into the engine's value types. The
// engine itself never touches the database.
package refdata

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/dovela/quoting/internal/models"
	"github.com/dovela/quoting/internal/pricing"
)

type Provider struct {
	db *gorm.DB
}

func NewProvider(db *gorm.DB) *Provider { return &Provider{db: db} }

// MaterialPricesAsOf returns the effective price per material code for
// the given date: the most recent EffectiveDate on or before date, with
// zone-specific rows winning over zone-less ones.
func (p *Provider) MaterialPricesAsOf(date time.Time, zone string) (pricing.MaterialPriceIndex, error) {
	var rows []models.MaterialPrice
	// Oldest first, zone-less before zoned on date ties, so that the
	// last row seen per material is the one in force.
	q := p.db.Preload("Material").
		Where("effective_date <= ?", date).
		Order("effective_date ASC, zone ASC, id ASC")
	if zone != "" {
		q = q.Where("zone = ? OR zone = ''", zone)
	} else {
		q = q.Where("zone = ''")
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load material prices: %w", err)
	}

	index := make(pricing.MaterialPriceIndex, len(rows))
	for _, r := range rows {
		index[r.Material.Code] = r.Price
	}
	return index, nil
}

// PieceWithBOM loads a piece and its BOM lines by catalog code.
func (p *Provider) PieceWithBOM(code string) (models.Piece, error) {
	var piece models.Piece
	err := p.db.Preload("Family").Preload("BOMLines.Material").
		Where("code = ?", code).First(&piece).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Piece{}, fmt.Errorf("piece %s: not in catalog", code)
	}
	if err != nil {
		return models.Piece{}, fmt.Errorf("load piece %s: %w", code, err)
	}
	return piece, nil
}

// ProcessParamsAsOf returns the parameter set in force on date.
func (p *Provider) ProcessParamsAsOf(date time.Time) (pricing.ProcessParameters, error) {
	var row models.ProcessParameterSet
	err := p.db.Where("effective_date <= ?", date).
		Order("effective_date DESC, id DESC").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pricing.ProcessParameters{}, fmt.Errorf("no process parameter set effective on %s", date.Format("2006-01-02"))
	}
	if err != nil {
		return pricing.ProcessParameters{}, fmt.Errorf("load process parameters: %w", err)
	}
	return pricing.ProcessParameters{
		CuringEnergyPerTon:      row.CuringEnergyPerTon,
		FactoryOverheadPerTon:   row.FactoryOverheadPerTon,
		CompanyOverheadPerTon:   row.CompanyOverheadPerTon,
		ProfitPerTon:            row.ProfitPerTon,
		EngineeringPerTon:       row.EngineeringPerTon,
		HourlyLaborRate:         row.HourlyLaborRate,
		LaborHoursPerTonSteel:   row.LaborHoursPerTonSteel,
		LaborHoursPerM3Concrete: row.LaborHoursPerM3Concrete,
	}, nil
}

// TruckType fetches a vehicle class by code.
func (p *Provider) TruckType(code string) (pricing.TruckType, error) {
	var row models.TruckType
	err := p.db.Where("code = ?", code).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pricing.TruckType{}, fmt.Errorf("truck type %s: not configured", code)
	}
	if err != nil {
		return pricing.TruckType{}, fmt.Errorf("load truck type %s: %w", code, err)
	}
	return pricing.TruckType{
		Code:               row.Code,
		CapacityTons:       row.CapacityTons,
		DeckLengthM:        row.DeckLengthM,
		DeckWidthM:         row.DeckWidthM,
		MaxStackHeightM:    row.MaxStackHeightM,
		UsableVolumeFactor: row.UsableVolumeFactor,
		MinGapM:            row.MinGapM,
	}, nil
}

// PackingRules returns every rule configured for a truck type, keyed to
// the engine's family/truck codes. An empty result is normal.
func (p *Provider) PackingRules(truckCode string) ([]pricing.PackingRule, error) {
	var rows []models.PackingRule
	err := p.db.Preload("Family").Preload("TruckType").
		Joins("JOIN truck_types ON truck_types.id = packing_rules.truck_type_id").
		Where("truck_types.code = ?", truckCode).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load packing rules: %w", err)
	}
	rules := make([]pricing.PackingRule, 0, len(rows))
	for _, r := range rows {
		rules = append(rules, pricing.PackingRule{
			Family:          r.Family.Code,
			TruckCode:       r.TruckType.Code,
			PiecesPerTruck:  r.PiecesPerTruck,
			MaxStackLayers:  r.MaxStackLayers,
			Orientation:     pricing.Orientation(r.Orientation),
			StackingAllowed: r.StackingAllowed,
			Notes:           r.Notes,
		})
	}
	return rules, nil
}

// Tariffs returns the freight brackets of one tariff category.
func (p *Provider) Tariffs(category string) ([]pricing.TransportTariff, error) {
	var rows []models.TransportTariff
	err := p.db.Where("category = ?", category).Order("from_km ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load tariffs %s: %w", category, err)
	}
	tariffs := make([]pricing.TransportTariff, 0, len(rows))
	for _, r := range rows {
		tariffs = append(tariffs, pricing.TransportTariff{
			Category:     r.Category,
			FromKm:       r.FromKm,
			PricePerTrip: r.PricePerTrip,
		})
	}
	return tariffs, nil
}

// ScalesForFamilies returns the adjustment tiers for the given family
// codes. Families without tiers simply contribute nothing.
func (p *Provider) ScalesForFamilies(families []string) ([]pricing.AdjustmentScale, error) {
	if len(families) == 0 {
		return nil, nil
	}
	var rows []models.AdjustmentScale
	err := p.db.Preload("Family").
		Joins("JOIN piece_families ON piece_families.id = adjustment_scales.family_id").
		Where("piece_families.code IN ?", families).
		Order("quantity_from ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load adjustment scales: %w", err)
	}
	scales := make([]pricing.AdjustmentScale, 0, len(rows))
	for _, r := range rows {
		scales = append(scales, pricing.AdjustmentScale{
			Family:            r.Family.Code,
			QuantityFrom:      r.QuantityFrom,
			QuantityTo:        r.QuantityTo,
			DiscountGeneral:   r.DiscountGeneral,
			DiscountSpecial:   r.DiscountSpecial,
			AdjustmentGeneral: r.AdjustmentGeneral,
			AdjustmentSpecial: r.AdjustmentSpecial,
		})
	}
	return scales, nil
}

// MonthlyIndexFor fetches one month of index data. A missing month is
// an error: escalation cannot run on a partial period pair.
func (p *Provider) MonthlyIndexFor(month, year int) (pricing.MonthlyIndex, error) {
	var row models.MonthlyIndex
	err := p.db.Where("month = ? AND year = ?", month, year).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pricing.MonthlyIndex{}, fmt.Errorf("no index data for %d/%d", month, year)
	}
	if err != nil {
		return pricing.MonthlyIndex{}, fmt.Errorf("load index %d/%d: %w", month, year, err)
	}
	return pricing.MonthlyIndex{
		Month:        row.Month,
		Year:         row.Year,
		Steel:        row.Steel,
		Labor:        row.Labor,
		Concrete:     row.Concrete,
		Fuel:         row.Fuel,
		ExchangeRate: row.ExchangeRate,
	}, nil
}
