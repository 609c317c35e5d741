package models

import "time"

// MonthlyIndex is one month of commodity/labor index data. One row per
// (month, year); used in base/target pairs by the escalation formula.
type MonthlyIndex struct {
	ID    uint `gorm:"primaryKey"`
	Month int  `gorm:"not null;index:idx_month_year,unique,priority:1"`
	Year  int  `gorm:"not null;index:idx_month_year,unique,priority:2"`

	Steel        float64 `gorm:"not null"`
	Labor        float64 `gorm:"not null"`
	Concrete     float64 `gorm:"not null"`
	Fuel         float64 `gorm:"not null"`
	ExchangeRate float64 `gorm:"not null;default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
