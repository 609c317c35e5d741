package models

import "time"

// Transport reference models
type TruckType struct {
	ID   uint   `gorm:"primaryKey"`
	Code string `gorm:"size:40;not null;unique"`
	Name string `gorm:"not null"`

	CapacityTons       float64 `gorm:"not null"`
	DeckLengthM        float64 `gorm:"not null"`
	DeckWidthM         float64 `gorm:"not null"`
	MaxStackHeightM    float64 `gorm:"not null"`
	UsableVolumeFactor float64 `gorm:"not null;default:1"` // 0..1
	MinGapM            float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PackingRule overrides geometric packing for one family on one truck
// type. Absence of a rule is normal: the calculator derives a load plan
// from piece and deck geometry.
type PackingRule struct {
	ID          uint        `gorm:"primaryKey"`
	FamilyID    uint        `gorm:"not null;index:idx_family_truck,unique,priority:1"`
	Family      PieceFamily `gorm:"foreignKey:FamilyID"`
	TruckTypeID uint        `gorm:"not null;index:idx_family_truck,unique,priority:2"`
	TruckType   TruckType   `gorm:"foreignKey:TruckTypeID"`

	PiecesPerTruck  int    `gorm:"not null;default:0"`             // 0 = derive from geometry
	MaxStackLayers  int    `gorm:"not null;default:0"`             // 0 = height-bounded only
	Orientation     string `gorm:"size:10;not null;default:'any'"` // flat, upright, any
	StackingAllowed bool   `gorm:"not null;default:true"`
	Notes           string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TransportTariff is one distance bracket of the freight price table.
type TransportTariff struct {
	ID       uint   `gorm:"primaryKey"`
	Category string `gorm:"size:40;not null;index"` // tariff family, e.g. standard, oversize

	FromKm       float64 `gorm:"not null"`
	PricePerTrip float64 `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
