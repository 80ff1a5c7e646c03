package entities

import "github.com/shopspring/decimal"

// PartNumber represents a unique part identifier
type PartNumber string

// Category tags a BOM line with its roll-up bucket. The set is fixed;
// the cost and weight summaries fold over these values.
type Category string

const (
	CategoryPanels              Category = "Panels"
	CategorySteelSkid           Category = "Steel Skid"
	CategoryBoltsNuts           Category = "Bolts & Nuts"
	CategoryExternalReinforcing Category = "External Reinforcing"
	CategoryInternalReinforcing Category = "Internal Reinforcing"
	CategoryTieRod              Category = "Internal Tie-rod"
	CategoryEtc                 Category = "ETC"
	CategoryFittings            Category = "Fittings"
)

// PartLine is one physical part requirement produced by a formula
// module: part number, per-tank quantity, roll-up category and a human
// description. Lines with quantity <= 0 are never emitted.
type PartLine struct {
	PartNo      PartNumber
	Quantity    int
	Category    Category
	Description string
}

// PartInfo is the catalog record for one part number. Unresolved parts
// carry zero price and weight with Found=false so the caller can flag
// them for review without failing the calculation.
type PartInfo struct {
	PartNo     PartNumber      `json:"part_no"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"price_usd"`
	UnitWeight decimal.Decimal `json:"weight_kg"`
	Found      bool            `json:"-"`
}

// BOMItem is a PartLine enriched with catalog pricing and weight.
// Totals are unit value times quantity, rounded to 2 decimals.
type BOMItem struct {
	PartNo      PartNumber      `json:"part_no"`
	PartName    string          `json:"part_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price_usd"`
	TotalPrice  decimal.Decimal `json:"total_price_usd"`
	UnitWeight  decimal.Decimal `json:"weight_kg"`
	TotalWeight decimal.Decimal `json:"total_weight_kg"`
	Category    Category        `json:"category"`
	Resolved    bool            `json:"resolved"`
}
