package engine

import (
	"testing"

	"github.com/panelworks/tankquote/pkg/domain/entities"
)

// deriveDims builds derived dimensions for a single tank.
func deriveDims(t *testing.T, width, l1, l2, l3, l4, height float64) entities.DerivedDimensions {
	t.Helper()
	dims := entities.TankDimensions{
		Width: width, Length1: l1, Length2: l2, Length3: l3, Length4: l4,
		Height: height, Quantity: 1,
	}
	if err := dims.Validate(); err != nil {
		t.Fatalf("test dimensions invalid: %v", err)
	}
	return entities.Derive(dims)
}

// lineQty returns the quantity of partNo in lines, or 0 when absent.
func lineQty(lines []entities.PartLine, partNo entities.PartNumber) int {
	total := 0
	for _, l := range lines {
		if l.PartNo == partNo {
			total += l.Quantity
		}
	}
	return total
}

// requireQty fails the test when partNo is not present with exactly
// want units.
func requireQty(t *testing.T, lines []entities.PartLine, partNo entities.PartNumber, want int) {
	t.Helper()
	if got := lineQty(lines, partNo); got != want {
		t.Errorf("part %s: expected quantity %d, got %d", partNo, want, got)
	}
}

// hasPart reports whether partNo appears in lines.
func hasPart(lines []entities.PartLine, partNo entities.PartNumber) bool {
	return lineQty(lines, partNo) > 0
}
