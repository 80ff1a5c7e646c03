package repositories

import "github.com/panelworks/tankquote/pkg/domain/entities"

// PartCatalog resolves part numbers against the parts master data.
//
// Resolve never fails: unknown part numbers return a zero-valued
// PartInfo with Found=false so a catalog gap degrades one line's
// pricing instead of aborting the calculation. Implementations must be
// safe for concurrent readers; a reload must be an atomic swap so no
// in-flight calculation observes a half-updated catalog.
type PartCatalog interface {
	Resolve(partNo entities.PartNumber) entities.PartInfo

	// List returns up to limit records starting at offset, in stable
	// part-number order. Len reports the total record count.
	List(offset, limit int) []entities.PartInfo
	Len() int
}
