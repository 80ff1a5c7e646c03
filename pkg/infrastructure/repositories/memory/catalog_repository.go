package memory

import (
	"sort"

	"github.com/panelworks/tankquote/pkg/domain/entities"
	"github.com/panelworks/tankquote/pkg/domain/repositories"
)

// CatalogRepository provides in-memory parts master storage. It is
// populated once before serving and is then read-only, so concurrent
// readers need no locking.
type CatalogRepository struct {
	parts   []entities.PartInfo
	partMap map[entities.PartNumber]int
}

// NewCatalogRepository creates a new in-memory catalog repository.
func NewCatalogRepository(expectedParts int) *CatalogRepository {
	return &CatalogRepository{
		parts:   make([]entities.PartInfo, 0, expectedParts),
		partMap: make(map[entities.PartNumber]int, expectedParts),
	}
}

// Verify interface compliance
var _ repositories.PartCatalog = (*CatalogRepository)(nil)

// AddPart adds or replaces a catalog record.
func (r *CatalogRepository) AddPart(part entities.PartInfo) {
	part.Found = true
	if i, exists := r.partMap[part.PartNo]; exists {
		r.parts[i] = part
		return
	}
	r.partMap[part.PartNo] = len(r.parts)
	r.parts = append(r.parts, part)
}

// LoadParts loads a batch of catalog records.
func (r *CatalogRepository) LoadParts(parts []entities.PartInfo) {
	for _, p := range parts {
		r.AddPart(p)
	}
}

// Resolve returns the catalog record for a part number. Unknown parts
// return a zero-valued record with Found=false.
func (r *CatalogRepository) Resolve(partNo entities.PartNumber) entities.PartInfo {
	if i, exists := r.partMap[partNo]; exists {
		return r.parts[i]
	}
	return entities.PartInfo{PartNo: partNo}
}

// List returns up to limit records starting at offset in part-number
// order.
func (r *CatalogRepository) List(offset, limit int) []entities.PartInfo {
	sorted := make([]entities.PartInfo, len(r.parts))
	copy(sorted, r.parts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PartNo < sorted[j].PartNo })

	if offset < 0 || offset >= len(sorted) {
		return nil
	}
	end := offset + limit
	if limit <= 0 || end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end]
}

// Len reports the total record count.
func (r *CatalogRepository) Len() int {
	return len(r.parts)
}
