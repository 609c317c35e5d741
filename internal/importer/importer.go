// Package importer loads reference data from the xlsx workbooks the
// estimating department maintains: a "Precios" sheet with effective-
// dated material prices and an "Indices" sheet with monthly index
// values. Rows are validated before anything is written; a malformed
// row aborts the import with its row number.
package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/dovela/quoting/internal/models"
)

const (
	pricesSheet  = "Precios"
	indicesSheet = "Indices"
)

// dateLayouts covers the formats the estimating sheets arrive with.
var dateLayouts = []string{"2006-01-02", "02/01/2006", "01-02-06"}

// Summary reports what an import run wrote.
type Summary struct {
	MaterialsCreated int
	PricesImported   int
	IndicesImported  int
}

// ImportWorkbook reads both known sheets from the workbook at path. A
// workbook may carry either sheet or both; carrying neither is an
// error.
func ImportWorkbook(db *gorm.DB, path string) (Summary, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("cannot open workbook %q: %w", path, err)
	}
	defer f.Close()

	var summary Summary
	found := false

	if idx, err := f.GetSheetIndex(pricesSheet); err == nil && idx != -1 {
		found = true
		if err := importPrices(db, f, &summary); err != nil {
			return Summary{}, err
		}
	}
	if idx, err := f.GetSheetIndex(indicesSheet); err == nil && idx != -1 {
		found = true
		if err := importIndices(db, f, &summary); err != nil {
			return Summary{}, err
		}
	}
	if !found {
		return Summary{}, fmt.Errorf("workbook %q has neither %q nor %q sheet", path, pricesSheet, indicesSheet)
	}
	return summary, nil
}

// importPrices reads rows of: code, name, unit, price, effective date,
// zone (optional). The header row is skipped.
func importPrices(db *gorm.DB, f *excelize.File, summary *Summary) error {
	rows, err := f.GetRows(pricesSheet)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", pricesSheet, err)
	}
	for i, row := range rows {
		if i == 0 || isBlank(row) {
			continue
		}
		rowNum := i + 1
		if len(row) < 5 {
			return fmt.Errorf("%s row %d: expected at least 5 columns, got %d", pricesSheet, rowNum, len(row))
		}
		code := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		unit := strings.TrimSpace(row[2])
		if code == "" {
			return fmt.Errorf("%s row %d: material code is empty", pricesSheet, rowNum)
		}
		price, err := parseFloat(row[3])
		if err != nil {
			return fmt.Errorf("%s row %d: price: %w", pricesSheet, rowNum, err)
		}
		if price < 0 {
			return fmt.Errorf("%s row %d: price must not be negative, got %v", pricesSheet, rowNum, price)
		}
		effective, err := parseDate(row[4])
		if err != nil {
			return fmt.Errorf("%s row %d: effective date: %w", pricesSheet, rowNum, err)
		}
		zone := ""
		if len(row) > 5 {
			zone = strings.TrimSpace(row[5])
		}

		material, created, err := findOrCreateMaterial(db, code, name, unit)
		if err != nil {
			return fmt.Errorf("%s row %d: %w", pricesSheet, rowNum, err)
		}
		if created {
			summary.MaterialsCreated++
		}
		priceRow := models.MaterialPrice{
			MaterialID:    material.ID,
			Price:         price,
			EffectiveDate: effective,
			Zone:          zone,
		}
		if err := db.Create(&priceRow).Error; err != nil {
			return fmt.Errorf("%s row %d: insert price: %w", pricesSheet, rowNum, err)
		}
		summary.PricesImported++
	}
	return nil
}

// importIndices reads rows of: month, year, steel, labor, concrete,
// fuel, exchange rate. A row for an already-loaded month replaces it.
func importIndices(db *gorm.DB, f *excelize.File, summary *Summary) error {
	rows, err := f.GetRows(indicesSheet)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", indicesSheet, err)
	}
	for i, row := range rows {
		if i == 0 || isBlank(row) {
			continue
		}
		rowNum := i + 1
		if len(row) < 7 {
			return fmt.Errorf("%s row %d: expected 7 columns, got %d", indicesSheet, rowNum, len(row))
		}
		month, err := parseInt(row[0])
		if err != nil || month < 1 || month > 12 {
			return fmt.Errorf("%s row %d: month must be 1..12, got %q", indicesSheet, rowNum, row[0])
		}
		year, err := parseInt(row[1])
		if err != nil || year < 1900 {
			return fmt.Errorf("%s row %d: invalid year %q", indicesSheet, rowNum, row[1])
		}
		values := make([]float64, 5)
		names := []string{"steel", "labor", "concrete", "fuel", "exchange rate"}
		for j := 0; j < 5; j++ {
			v, err := parseFloat(row[2+j])
			if err != nil {
				return fmt.Errorf("%s row %d: %s: %w", indicesSheet, rowNum, names[j], err)
			}
			if v <= 0 {
				return fmt.Errorf("%s row %d: %s must be positive, got %v", indicesSheet, rowNum, names[j], v)
			}
			values[j] = v
		}

		idx := models.MonthlyIndex{Month: month, Year: year}
		err = db.Where("month = ? AND year = ?", month, year).First(&idx).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return fmt.Errorf("%s row %d: lookup: %w", indicesSheet, rowNum, err)
		}
		idx.Steel, idx.Labor, idx.Concrete, idx.Fuel, idx.ExchangeRate =
			values[0], values[1], values[2], values[3], values[4]
		if err := db.Save(&idx).Error; err != nil {
			return fmt.Errorf("%s row %d: save index: %w", indicesSheet, rowNum, err)
		}
		summary.IndicesImported++
	}
	return nil
}

func findOrCreateMaterial(db *gorm.DB, code, name, unit string) (models.Material, bool, error) {
	var material models.Material
	err := db.Where("code = ?", code).First(&material).Error
	if err == nil {
		return material, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return models.Material{}, false, fmt.Errorf("lookup material %s: %w", code, err)
	}
	material = models.Material{Code: code, Name: name, Unit: unit}
	if err := db.Create(&material).Error; err != nil {
		return models.Material{}, false, fmt.Errorf("create material %s: %w", code, err)
	}
	return material, true, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return v, nil
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
