// Package pricing implements the quotation calculation engine for
// precast-concrete pieces: unit-cost resolution from a bill of
// materials, quantity-scale adjustments, truck packing and trip
// counting, freight costing, polynomial price escalation, and the
// final quotation totals.
//
// Every function in this package is a pure computation over the values
// it receives. Reference data (material prices, truck types, packing
// rules, scales, monthly indices) is fetched by the caller and passed
// in; the package performs no I/O and keeps no state between calls.
package pricing

// AdjustmentCategory selects which column of an adjustment scale
// applies to a quotation line.
type AdjustmentCategory string

const (
	CategoryGeneral AdjustmentCategory = "GENERAL"
	CategorySpecial AdjustmentCategory = "SPECIAL"
)

// Orientation constrains how a piece is placed on a truck deck.
type Orientation string

const (
	// OrientationFlat lays the piece on its largest face: length along
	// the deck, width across it, height stacked vertically.
	OrientationFlat Orientation = "flat"
	// OrientationUpright stands the piece on edge: length along the
	// deck, height across it, width stacked vertically.
	OrientationUpright Orientation = "upright"
	// OrientationAny tries both placements and keeps the one that fits
	// more units per truck.
	OrientationAny Orientation = "any"
)

// Piece is the immutable catalog description of one manufactured
// product. All per-UM values are expressed per unit of measure (one
// cast unit, one linear meter, ...), not per physical piece.
type Piece struct {
	Code   string
	Family string
	Unit   string // unit of measure used for quoting

	LengthM float64
	WidthM  float64
	HeightM float64

	WeightKg float64 // per UM
	VolumeM3 float64 // per UM

	// Technical factors per UM, used for labor costing.
	M3ConcretePerUM float64
	KgSteelPerUM    float64
}

// BOMLine is one raw material consumed by a piece, with the scrap
// fraction (0..1) lost during production.
type BOMLine struct {
	MaterialCode  string
	QuantityPerUM float64
	ScrapFraction float64
}

// MaterialPriceIndex maps a material code to its effective price for
// the calculation date and zone. The reference-data layer resolves the
// "most recent price on or before date" lookup before the engine runs.
type MaterialPriceIndex map[string]float64

// ProcessParameters is the production cost parameter set in force for a
// calculation. All "per ton" rates apply to the piece weight.
type ProcessParameters struct {
	CuringEnergyPerTon    float64
	FactoryOverheadPerTon float64
	CompanyOverheadPerTon float64
	ProfitPerTon          float64
	EngineeringPerTon     float64

	HourlyLaborRate         float64
	LaborHoursPerTonSteel   float64
	LaborHoursPerM3Concrete float64
}

// TruckType describes the geometry and capacity of one vehicle class.
type TruckType struct {
	Code            string
	CapacityTons    float64
	DeckLengthM     float64
	DeckWidthM      float64
	MaxStackHeightM float64
	// UsableVolumeFactor is the fraction (0..1) of the geometric deck
	// volume that can actually be loaded.
	UsableVolumeFactor float64
	// MinGapM is the spacing kept between pieces on the deck.
	MinGapM float64
}

// PackingRule overrides the geometry-derived load plan for one piece
// family on one truck type. A nil rule falls back to pure geometry.
type PackingRule struct {
	Family          string
	TruckCode       string
	PiecesPerTruck  int // 0 = derive from geometry
	MaxStackLayers  int // 0 = bounded by stack height only
	Orientation     Orientation
	StackingAllowed bool
	Notes           string
}

// TransportTariff is one distance bracket of the freight tariff table.
// The bracket whose FromKm is the largest value not exceeding the trip
// distance applies.
type TransportTariff struct {
	Category     string
	FromKm       float64
	PricePerTrip float64
}

// AdjustmentScale is one quantity tier of the commercial discount /
// surcharge table for a piece family. All four percentages are decimals
// of the pre-adjustment price (negative = discount).
type AdjustmentScale struct {
	Family            string
	QuantityFrom      float64
	QuantityTo        float64
	DiscountGeneral   float64
	DiscountSpecial   float64
	AdjustmentGeneral float64
	AdjustmentSpecial float64
}

// MonthlyIndex is one month of commodity and labor index data used by
// the escalation formula.
type MonthlyIndex struct {
	Month        int
	Year         int
	Steel        float64
	Labor        float64
	Concrete     float64
	Fuel         float64
	ExchangeRate float64
}

// PolynomialFormula holds the weighting coefficients of the escalation
// formula. They must sum to 1.0 within a ±0.001 tolerance.
type PolynomialFormula struct {
	Steel    float64
	Labor    float64
	Concrete float64
	Fuel     float64
}

// QuotationItem is one priced line of a quotation request.
type QuotationItem struct {
	PieceCode string             `json:"pieceCode"`
	Family    string             `json:"family"`
	Quantity  int                `json:"quantity"`
	UnitPrice float64            `json:"unitPrice"`
	WeightKg  float64            `json:"weightKg"` // per UM
	Category  AdjustmentCategory `json:"category"`
}

// WorkLine is one free-form complementary work entry.
type WorkLine struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// TransportParams gates and parameterizes the transport subtotal.
type TransportParams struct {
	Enabled     bool
	Truck       TruckType
	Rules       []PackingRule
	Tariffs     []TransportTariff
	DistanceKm  float64
	OverheadPct float64
}

// MountingParams gates and parameterizes the mounting subtotal.
type MountingParams struct {
	Enabled        bool
	CraneDays      float64
	DailyCraneRate float64
	ExtraCraneDays float64
	ExtraCraneRate float64
	TransferKm     float64
	TransferKmRate float64
}

// TotalsInput carries everything the totals aggregator needs. Pieces
// supplies the geometry for items whose transport is being priced,
// keyed by piece code.
type TotalsInput struct {
	Items  []QuotationItem
	Pieces map[string]Piece
	Scales []AdjustmentScale

	Transport TransportParams
	Mounting  MountingParams

	TC1 []WorkLine
	TC2 []WorkLine

	TaxRate float64
}

// LineResult is one computed quotation line.
type LineResult struct {
	PieceCode     string  `json:"pieceCode"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	AdjustmentPct float64 `json:"adjustmentPct"`
	Total         float64 `json:"total"`
}

// QuotationTotals is the monetary roll-up of a quotation. Every field
// is rounded to 2 decimals at composition.
type QuotationTotals struct {
	Materials     float64 `json:"materials"`
	Transport     float64 `json:"transport"`
	Mounting      float64 `json:"mounting"`
	Complementary float64 `json:"complementary"`
	PreTax        float64 `json:"preTax"`
	Tax           float64 `json:"tax"`
	GrandTotal    float64 `json:"grandTotal"`
}

// QuotationResult is the full output of a totals calculation, built
// fresh on every call and safe to serialize as-is.
type QuotationResult struct {
	Lines  []LineResult    `json:"lines"`
	Trips  int             `json:"trips"`
	Totals QuotationTotals `json:"totals"`
}
