package jsoncatalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/panelworks/tankquote/pkg/domain/entities"
	"github.com/panelworks/tankquote/pkg/domain/repositories"
)

// priceRecord is one row of the prices file.
type priceRecord struct {
	PartNo   string  `json:"part_no"`
	Name     string  `json:"name"`
	PriceUSD float64 `json:"price_usd"`
	Spec     string  `json:"spec,omitempty"`
}

// weightRecord is one row of the weights file.
type weightRecord struct {
	PartNo   string  `json:"part_no"`
	WeightKg float64 `json:"weight_kg"`
}

// snapshot is one immutable catalog generation.
type snapshot struct {
	parts  []entities.PartInfo // sorted by part number
	byPart map[entities.PartNumber]int
}

// CatalogRepository serves the parts master from a pair of JSON files:
// prices and weights, joined by part number. Reload builds a complete
// new snapshot and swaps it atomically, so in-flight calculations keep
// reading the generation they started with.
type CatalogRepository struct {
	pricesPath  string
	weightsPath string
	snap        atomic.Pointer[snapshot]
}

// NewCatalogRepository loads the initial snapshot from the given files.
func NewCatalogRepository(pricesPath, weightsPath string) (*CatalogRepository, error) {
	r := &CatalogRepository{pricesPath: pricesPath, weightsPath: weightsPath}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Verify interface compliance
var _ repositories.PartCatalog = (*CatalogRepository)(nil)

// Reload re-reads both files and swaps in the new snapshot. On any
// error the previous snapshot stays active.
func (r *CatalogRepository) Reload() error {
	var prices []priceRecord
	if err := readJSON(r.pricesPath, &prices); err != nil {
		return fmt.Errorf("load prices: %w", err)
	}
	var weights []weightRecord
	if err := readJSON(r.weightsPath, &weights); err != nil {
		return fmt.Errorf("load weights: %w", err)
	}

	// First non-zero weight wins; the source data carries duplicate
	// rows with zero placeholders.
	weightByPart := make(map[entities.PartNumber]decimal.Decimal, len(weights))
	for _, w := range weights {
		if w.PartNo == "" || w.WeightKg == 0 {
			continue
		}
		partNo := entities.PartNumber(w.PartNo)
		if _, exists := weightByPart[partNo]; !exists {
			weightByPart[partNo] = decimal.NewFromFloat(w.WeightKg)
		}
	}

	snap := &snapshot{byPart: make(map[entities.PartNumber]int, len(prices))}
	for _, p := range prices {
		if p.PartNo == "" || p.PartNo == "#N/A" {
			continue
		}
		partNo := entities.PartNumber(p.PartNo)
		if _, exists := snap.byPart[partNo]; exists {
			continue
		}
		snap.byPart[partNo] = len(snap.parts)
		snap.parts = append(snap.parts, entities.PartInfo{
			PartNo:     partNo,
			Name:       p.Name,
			UnitPrice:  decimal.NewFromFloat(p.PriceUSD),
			UnitWeight: weightByPart[partNo],
			Found:      true,
		})
	}

	// Weight-only parts still resolve, with zero price.
	for partNo, weight := range weightByPart {
		if _, exists := snap.byPart[partNo]; exists {
			continue
		}
		snap.byPart[partNo] = len(snap.parts)
		snap.parts = append(snap.parts, entities.PartInfo{
			PartNo:     partNo,
			UnitWeight: weight,
			Found:      true,
		})
	}

	sort.Slice(snap.parts, func(i, j int) bool { return snap.parts[i].PartNo < snap.parts[j].PartNo })
	for i, p := range snap.parts {
		snap.byPart[p.PartNo] = i
	}

	r.snap.Store(snap)
	return nil
}

// Resolve returns the catalog record for a part number. Unknown parts
// return a zero-valued record with Found=false.
func (r *CatalogRepository) Resolve(partNo entities.PartNumber) entities.PartInfo {
	snap := r.snap.Load()
	if i, exists := snap.byPart[partNo]; exists {
		return snap.parts[i]
	}
	return entities.PartInfo{PartNo: partNo}
}

// List returns up to limit records starting at offset in part-number
// order.
func (r *CatalogRepository) List(offset, limit int) []entities.PartInfo {
	parts := r.snap.Load().parts
	if offset < 0 || offset >= len(parts) {
		return nil
	}
	end := offset + limit
	if limit <= 0 || end > len(parts) {
		end = len(parts)
	}
	out := make([]entities.PartInfo, end-offset)
	copy(out, parts[offset:end])
	return out
}

// Len reports the total record count.
func (r *CatalogRepository) Len() int {
	return len(r.snap.Load().parts)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
