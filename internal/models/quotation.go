package models

import "time"

// Quotation draft models. Drafts are the auto-save flow of the
// quotation wizard: the computed result is stored as a snapshot and
// never read back into the calculation engine.
type QuotationDraft struct {
	ID     uint   `gorm:"primaryKey"`
	Status string `gorm:"not null;default:'draft'"` // draft, issued, expired

	Zone       string    `gorm:"size:40"`
	Date       time.Time `gorm:"not null"`
	Currency   string    `gorm:"not null;default:'USD'"`
	TaxRate    float64   `gorm:"not null"`
	DistanceKm float64

	Items []QuotationDraftItem `gorm:"foreignKey:DraftID"`

	MaterialsTotal     float64
	TransportTotal     float64
	MountingTotal      float64
	ComplementaryTotal float64
	PreTaxTotal        float64
	TaxTotal           float64
	GrandTotal         float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

type QuotationDraftItem struct {
	ID      uint  `gorm:"primaryKey"`
	DraftID uint  `gorm:"not null;index"`
	PieceID uint  `gorm:"not null"`
	Piece   Piece `gorm:"foreignKey:PieceID"`

	Quantity  int     `gorm:"not null"`
	UnitPrice float64 `gorm:"not null"`
	Category  string  `gorm:"size:10;not null;default:'GENERAL'"`
	LineTotal float64 `gorm:"not null"`
}
