package models

import "time"

// AdjustmentScale is one quantity tier of the commercial discount table
// for a family. Percentages are decimals of the pre-adjustment price;
// negative values are discounts. Non-overlapping ranges per family are
// the data owner's responsibility, not enforced here.
type AdjustmentScale struct {
	ID       uint        `gorm:"primaryKey"`
	FamilyID uint        `gorm:"not null;index"`
	Family   PieceFamily `gorm:"foreignKey:FamilyID"`

	QuantityFrom float64 `gorm:"not null"`
	QuantityTo   float64 `gorm:"not null"`

	DiscountGeneral   float64 `gorm:"not null;default:0"`
	DiscountSpecial   float64 `gorm:"not null;default:0"`
	AdjustmentGeneral float64 `gorm:"not null;default:0"`
	AdjustmentSpecial float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
