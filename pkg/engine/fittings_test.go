package engine

import (
	"testing"

	"github.com/panelworks/tankquote/pkg/domain/entities"
)

func TestCalcFittings_Aggregation(t *testing.T) {
	lines := CalcFittings([]entities.FittingSpec{
		{Type: "SD", Size: 50, Quantity: 2},
		{Type: "FL", Size: 100, Quantity: 1},
		{Type: "SD", Size: 50, Quantity: 1},
		{Type: "OF", Size: 80, Quantity: 0},
	})

	requireQty(t, lines, "WSD-050A", 3)
	requireQty(t, lines, "WFL-100A", 1)
	if hasPart(lines, "WOF-080A") {
		t.Error("Expected zero-quantity fittings to be dropped")
	}
	if len(lines) != 2 {
		t.Errorf("Expected 2 aggregated lines, got %d", len(lines))
	}
	for _, l := range lines {
		if l.Category != entities.CategoryFittings {
			t.Errorf("Expected Fittings category, got %s", l.Category)
		}
	}
}

func TestCalcFittings_Empty(t *testing.T) {
	if lines := CalcFittings(nil); len(lines) != 0 {
		t.Errorf("Expected no lines, got %d", len(lines))
	}
}

func TestRecommendedFittings(t *testing.T) {
	testCases := []struct {
		name         string
		width        float64
		length       float64
		height       float64
		wantDrain    int
		wantOverflow int
		wantFlange   int
	}{
		{"small tank", 2, 2, 2, 40, 50, 50},
		{"50m3 tank", 5, 5, 2, 65, 80, 80},
		{"240m3 tank", 10, 8, 3, 100, 125, 125},
		{"600m3 tank", 10, 15, 4, 150, 150, 150},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := deriveDims(t, tc.width, tc.length, 0, 0, 0, tc.height)
			specs := RecommendedFittings(d)

			bySize := map[string]int{}
			for _, s := range specs {
				bySize[s.Type] = s.Size
			}
			if bySize["SD"] != tc.wantDrain {
				t.Errorf("Expected drain size %d, got %d", tc.wantDrain, bySize["SD"])
			}
			if bySize["SF"] != tc.wantOverflow {
				t.Errorf("Expected overflow size %d, got %d", tc.wantOverflow, bySize["SF"])
			}
			if bySize["FL"] != tc.wantFlange {
				t.Errorf("Expected flange size %d, got %d", tc.wantFlange, bySize["FL"])
			}
		})
	}
}

func TestRecommendedFittings_PerCompartment(t *testing.T) {
	d := deriveDims(t, 10, 4, 2, 2, 0, 3)
	specs := RecommendedFittings(d)

	for _, s := range specs {
		switch s.Type {
		case "SD", "SF":
			if s.Quantity != 3 {
				t.Errorf("Expected one %s per compartment (3), got %d", s.Type, s.Quantity)
			}
		case "FL":
			if s.Quantity != 2 {
				t.Errorf("Expected an inlet/outlet flange pair, got %d", s.Quantity)
			}
		}
	}
}
