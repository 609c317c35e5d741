package models

import "time"

// Material reference models
type Material struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"size:40;not null;unique"`
	Name      string `gorm:"not null"`
	Unit      string `gorm:"not null"` // purchasing unit: m3, kg, l
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MaterialPrice is one effective-dated price row. Rows are immutable;
// a price change inserts a new row and the lookup takes the most recent
// EffectiveDate on or before the calculation date. Zone-specific rows
// win over zone-less ones.
type MaterialPrice struct {
	ID         uint     `gorm:"primaryKey"`
	MaterialID uint     `gorm:"not null;index"`
	Material   Material `gorm:"foreignKey:MaterialID"`

	Price         float64   `gorm:"not null"`
	EffectiveDate time.Time `gorm:"not null;index"`
	Zone          string    `gorm:"size:40;index"` // empty = all zones

	CreatedAt time.Time
}

// ProcessParameterSet is one version of the production cost parameters.
// The newest EffectiveDate on or before the calculation date is in
// force; the row itself is treated as an immutable value.
type ProcessParameterSet struct {
	ID            uint      `gorm:"primaryKey"`
	EffectiveDate time.Time `gorm:"not null;index"`

	CuringEnergyPerTon    float64 `gorm:"not null"`
	FactoryOverheadPerTon float64 `gorm:"not null"`
	CompanyOverheadPerTon float64 `gorm:"not null"`
	ProfitPerTon          float64 `gorm:"not null"`
	EngineeringPerTon     float64 `gorm:"not null"`

	HourlyLaborRate         float64 `gorm:"not null"`
	LaborHoursPerTonSteel   float64 `gorm:"not null"`
	LaborHoursPerM3Concrete float64 `gorm:"not null"`

	CreatedAt time.Time
}
