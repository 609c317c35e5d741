package db

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/dovela/quoting/internal/models"
)

// Seed inserts a baseline reference-data set when the tables are empty:
// common truck types, a standard tariff table, and an initial process
// parameter set. Catalog data (pieces, materials, prices) comes from
// imports, not seeding.
func Seed(db *gorm.DB) {
	trucks := []models.TruckType{
		{Code: "SEMI-26", Name: "Semi trailer 26 t", CapacityTons: 26, DeckLengthM: 13.6, DeckWidthM: 2.45, MaxStackHeightM: 2.6, UsableVolumeFactor: 0.8, MinGapM: 0.05},
		{Code: "RIGID-12", Name: "Rigid truck 12 t", CapacityTons: 12, DeckLengthM: 7.2, DeckWidthM: 2.45, MaxStackHeightM: 2.4, UsableVolumeFactor: 0.75, MinGapM: 0.05},
		{Code: "LOWBOY-40", Name: "Lowboy 40 t", CapacityTons: 40, DeckLengthM: 12.0, DeckWidthM: 2.9, MaxStackHeightM: 3.0, UsableVolumeFactor: 0.85, MinGapM: 0.1},
	}
	for _, t := range trucks {
		var existing models.TruckType
		if err := db.Where("code = ?", t.Code).First(&existing).Error; err == gorm.ErrRecordNotFound {
			db.Create(&t)
		}
	}

	tariffs := []models.TransportTariff{
		{Category: "standard", FromKm: 0, PricePerTrip: 180},
		{Category: "standard", FromKm: 50, PricePerTrip: 310},
		{Category: "standard", FromKm: 150, PricePerTrip: 720},
		{Category: "standard", FromKm: 400, PricePerTrip: 1500},
		{Category: "oversize", FromKm: 0, PricePerTrip: 420},
		{Category: "oversize", FromKm: 150, PricePerTrip: 1350},
	}
	for _, t := range tariffs {
		var existing models.TransportTariff
		if err := db.Where("category = ? AND from_km = ?", t.Category, t.FromKm).First(&existing).Error; err == gorm.ErrRecordNotFound {
			db.Create(&t)
		}
	}

	var count int64
	db.Model(&models.ProcessParameterSet{}).Count(&count)
	if count == 0 {
		db.Create(&models.ProcessParameterSet{
			EffectiveDate:           time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			CuringEnergyPerTon:      8,
			FactoryOverheadPerTon:   22,
			CompanyOverheadPerTon:   15,
			ProfitPerTon:            30,
			EngineeringPerTon:       5,
			HourlyLaborRate:         18,
			LaborHoursPerTonSteel:   12,
			LaborHoursPerM3Concrete: 1.5,
		})
	}
	log.Println("[DB] seed completed")
}
