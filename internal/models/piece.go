package models

import (
	"time"

	"gorm.io/gorm"
)

// Piece catalog models
type PieceFamily struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"size:40;not null;unique"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Piece is one catalog product. Dimensions are meters; weight and
// volume are per unit of measure, as are the technical factors used for
// labor costing.
type Piece struct {
	ID       uint        `gorm:"primaryKey"`
	Code     string      `gorm:"size:40;not null;unique"`
	Name     string      `gorm:"not null"`
	FamilyID uint        `gorm:"not null;index"`
	Family   PieceFamily `gorm:"foreignKey:FamilyID"`
	Unit     string      `gorm:"not null;default:'unit'"` // unit of measure: unit, linear meter, m2

	LengthM  float64 `gorm:"not null"`
	WidthM   float64 `gorm:"not null"`
	HeightM  float64 `gorm:"not null"`
	WeightKg float64 `gorm:"not null"`
	VolumeM3 float64 `gorm:"not null"`

	M3ConcretePerUM float64
	KgSteelPerUM    float64

	// ManualUnitPrice prices the piece when it carries no BOM. Null
	// means the piece must be priced from materials.
	ManualUnitPrice *float64

	BOMLines []BOMLine `gorm:"foreignKey:PieceID"`

	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BOMLine is one (piece, material) consumption entry.
type BOMLine struct {
	ID         uint     `gorm:"primaryKey"`
	PieceID    uint     `gorm:"not null;index:idx_piece_material,unique,priority:1"`
	MaterialID uint     `gorm:"not null;index:idx_piece_material,unique,priority:2"`
	Material   Material `gorm:"foreignKey:MaterialID"`

	QuantityPerUM float64 `gorm:"not null"`
	ScrapFraction float64 `gorm:"not null;default:0"` // 0..1

	CreatedAt time.Time
	UpdatedAt time.Time
}
