package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/dovela/quoting/internal/models"
	"github.com/dovela/quoting/internal/pricing"
	"github.com/dovela/quoting/internal/refdata"
)

// QuotationService assembles engine inputs from reference data and runs
// the calculation. All database reads go through the refdata provider;
// the pricing package stays pure.
type QuotationService struct {
	db       *gorm.DB
	provider *refdata.Provider
}

func NewQuotationService(db *gorm.DB) *QuotationService {
	return &QuotationService{db: db, provider: refdata.NewProvider(db)}
}

// QuoteRequestItem is one requested line. UnitPriceOverride, when set,
// prices the line manually instead of resolving it from the BOM.
type QuoteRequestItem struct {
	PieceCode         string                     `json:"pieceCode"`
	Quantity          int                        `json:"quantity"`
	Category          pricing.AdjustmentCategory `json:"category"`
	UnitPriceOverride *float64                   `json:"unitPriceOverride,omitempty"`
}

// TransportRequest asks for freight to be quoted.
type TransportRequest struct {
	TruckCode      string  `json:"truckCode"`
	TariffCategory string  `json:"tariffCategory"`
	DistanceKm     float64 `json:"distanceKm"`
	OverheadPct    float64 `json:"overheadPct"`
}

// QuoteRequest is a full quotation calculation request.
type QuoteRequest struct {
	Date     time.Time          `json:"date"`
	Zone     string             `json:"zone"`
	Currency string             `json:"currency"`
	TaxRate  float64            `json:"taxRate"`
	Items    []QuoteRequestItem `json:"items"`

	Transport *TransportRequest      `json:"transport,omitempty"`
	Mounting  pricing.MountingParams `json:"mounting"`

	TC1 []pricing.WorkLine `json:"tc1,omitempty"`
	TC2 []pricing.WorkLine `json:"tc2,omitempty"`

	SaveDraft bool `json:"saveDraft"`
}

func toPricingPiece(m models.Piece) pricing.Piece {
	return pricing.Piece{
		Code:            m.Code,
		Family:          m.Family.Code,
		Unit:            m.Unit,
		LengthM:         m.LengthM,
		WidthM:          m.WidthM,
		HeightM:         m.HeightM,
		WeightKg:        m.WeightKg,
		VolumeM3:        m.VolumeM3,
		M3ConcretePerUM: m.M3ConcretePerUM,
		KgSteelPerUM:    m.KgSteelPerUM,
	}
}

func toPricingBOM(lines []models.BOMLine) []pricing.BOMLine {
	bom := make([]pricing.BOMLine, 0, len(lines))
	for _, l := range lines {
		bom = append(bom, pricing.BOMLine{
			MaterialCode:  l.Material.Code,
			QuantityPerUM: l.QuantityPerUM,
			ScrapFraction: l.ScrapFraction,
		})
	}
	return bom
}

// Quote resolves every requested piece against the catalog and the
// prices effective on the request date, evaluates scale adjustments,
// prices transport and mounting when requested, and returns the
// computed result. With SaveDraft set, the result is also persisted as
// a quotation draft snapshot.
func (s *QuotationService) Quote(req QuoteRequest) (pricing.QuotationResult, error) {
	if req.Date.IsZero() {
		return pricing.QuotationResult{}, fmt.Errorf("quotation date is required")
	}
	if len(req.Items) == 0 {
		return pricing.QuotationResult{}, fmt.Errorf("quotation has no items")
	}

	params, err := s.provider.ProcessParamsAsOf(req.Date)
	if err != nil {
		return pricing.QuotationResult{}, err
	}
	prices, err := s.provider.MaterialPricesAsOf(req.Date, req.Zone)
	if err != nil {
		return pricing.QuotationResult{}, err
	}

	items := make([]pricing.QuotationItem, 0, len(req.Items))
	pieces := make(map[string]pricing.Piece, len(req.Items))
	pieceIDs := make(map[string]uint, len(req.Items))
	families := make([]string, 0, len(req.Items))
	seen := make(map[string]bool)

	for _, ri := range req.Items {
		row, err := s.provider.PieceWithBOM(ri.PieceCode)
		if err != nil {
			return pricing.QuotationResult{}, err
		}
		piece := toPricingPiece(row)

		var unitPrice float64
		if ri.UnitPriceOverride != nil {
			unitPrice = *ri.UnitPriceOverride
		} else {
			unitPrice, err = pricing.ResolveUnitPrice(piece, toPricingBOM(row.BOMLines), prices, params, row.ManualUnitPrice)
			if err != nil {
				return pricing.QuotationResult{}, err
			}
		}

		items = append(items, pricing.QuotationItem{
			PieceCode: piece.Code,
			Family:    piece.Family,
			Quantity:  ri.Quantity,
			UnitPrice: unitPrice,
			WeightKg:  piece.WeightKg,
			Category:  ri.Category,
		})
		pieces[piece.Code] = piece
		pieceIDs[piece.Code] = row.ID
		if !seen[piece.Family] {
			seen[piece.Family] = true
			families = append(families, piece.Family)
		}
	}

	scales, err := s.provider.ScalesForFamilies(families)
	if err != nil {
		return pricing.QuotationResult{}, err
	}

	input := pricing.TotalsInput{
		Items:    items,
		Pieces:   pieces,
		Scales:   scales,
		Mounting: req.Mounting,
		TC1:      req.TC1,
		TC2:      req.TC2,
		TaxRate:  req.TaxRate,
	}

	if req.Transport != nil {
		truck, err := s.provider.TruckType(req.Transport.TruckCode)
		if err != nil {
			return pricing.QuotationResult{}, err
		}
		rules, err := s.provider.PackingRules(truck.Code)
		if err != nil {
			return pricing.QuotationResult{}, err
		}
		tariffs, err := s.provider.Tariffs(req.Transport.TariffCategory)
		if err != nil {
			return pricing.QuotationResult{}, err
		}
		input.Transport = pricing.TransportParams{
			Enabled:     true,
			Truck:       truck,
			Rules:       rules,
			Tariffs:     tariffs,
			DistanceKm:  req.Transport.DistanceKm,
			OverheadPct: req.Transport.OverheadPct,
		}
	}

	result, err := pricing.CalculateQuotationTotals(input)
	if err != nil {
		return pricing.QuotationResult{}, err
	}

	if req.SaveDraft {
		if err := s.saveDraft(req, result, pieceIDs); err != nil {
			return pricing.QuotationResult{}, fmt.Errorf("save draft: %w", err)
		}
	}
	return result, nil
}

func (s *QuotationService) saveDraft(req QuoteRequest, result pricing.QuotationResult, pieceIDs map[string]uint) error {
	draft := models.QuotationDraft{
		Status:             "draft",
		Zone:               req.Zone,
		Date:               req.Date,
		Currency:           req.Currency,
		TaxRate:            req.TaxRate,
		MaterialsTotal:     result.Totals.Materials,
		TransportTotal:     result.Totals.Transport,
		MountingTotal:      result.Totals.Mounting,
		ComplementaryTotal: result.Totals.Complementary,
		PreTaxTotal:        result.Totals.PreTax,
		TaxTotal:           result.Totals.Tax,
		GrandTotal:         result.Totals.GrandTotal,
	}
	if req.Transport != nil {
		draft.DistanceKm = req.Transport.DistanceKm
	}
	for i, line := range result.Lines {
		draft.Items = append(draft.Items, models.QuotationDraftItem{
			PieceID:   pieceIDs[line.PieceCode],
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Category:  string(req.Items[i].Category),
			LineTotal: line.Total,
		})
	}
	return s.db.Create(&draft).Error
}
