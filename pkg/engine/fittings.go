package engine

import (
	"github.com/panelworks/tankquote/pkg/domain/entities"
)

// CalcFittings aggregates the requested fittings into BOM lines, merging
// duplicate part numbers while preserving request order.
func CalcFittings(specs []entities.FittingSpec) []entities.PartLine {
	idx := make(map[entities.PartNumber]int)
	var lines []entities.PartLine

	for _, f := range specs {
		if f.Quantity <= 0 {
			continue
		}
		partNo := entities.FittingPartNumber(f.Type, f.Size)
		if i, ok := idx[partNo]; ok {
			lines[i].Quantity += f.Quantity
			continue
		}
		idx[partNo] = len(lines)
		lines = append(lines, entities.PartLine{
			PartNo:      partNo,
			Quantity:    f.Quantity,
			Category:    entities.CategoryFittings,
			Description: entities.FittingDescription(f.Type, f.Size),
		})
	}
	return lines
}

// RecommendedFittings suggests a drain, an overflow and an inlet/outlet
// flange pair sized by nominal capacity, one drain and overflow per
// compartment.
func RecommendedFittings(d entities.DerivedDimensions) []entities.FittingSpec {
	capacity := d.FootprintArea() * d.Height
	sections := d.Partitions + 1

	return []entities.FittingSpec{
		{Type: "SD", Size: bucketSize(capacity, drainSizes), Quantity: sections},
		{Type: "SF", Size: bucketSize(capacity, overflowSizes), Quantity: sections},
		{Type: "FL", Size: bucketSize(capacity, flangeSizes), Quantity: 2},
	}
}

// Capacity-bucketed nominal sizes for the recommended fittings. Each
// table pairs an exclusive upper capacity bound with a size; the last
// entry is the open-ended bucket.
type sizeBucket struct {
	Below float64
	Size  int
}

var (
	drainSizes = []sizeBucket{
		{10, 40}, {50, 50}, {100, 65}, {200, 80}, {500, 100}, {0, 150},
	}
	overflowSizes = []sizeBucket{
		{10, 50}, {50, 65}, {100, 80}, {200, 100}, {500, 125}, {0, 150},
	}
	flangeSizes = []sizeBucket{
		{20, 50}, {50, 65}, {100, 80}, {200, 100}, {500, 125}, {0, 150},
	}
)

func bucketSize(capacity float64, buckets []sizeBucket) int {
	for _, b := range buckets[:len(buckets)-1] {
		if capacity < b.Below {
			return b.Size
		}
	}
	return buckets[len(buckets)-1].Size
}
