package engine

import (
	"testing"
)

func TestCalcReinforcing_Below2m(t *testing.T) {
	d := deriveDims(t, 5, 5, 0, 0, 0, 1.5)
	var diag Diagnostics
	lines, sum := CalcReinforcing(d, &diag)

	if hasPart(lines, "WCP-1760SA4") {
		t.Error("Expected no internal reinforcing below 2 m")
	}
	if sum.HasPartitionParts {
		t.Error("Expected no partition parts")
	}
	// The external set is still present.
	requireQty(t, lines, "WFB-0950ZP", 20)
}

func TestCalcReinforcing_Simple5x5x2(t *testing.T) {
	d := deriveDims(t, 5, 5, 0, 0, 0, 2)
	var diag Diagnostics
	lines, _ := CalcReinforcing(d, &diag)

	requireQty(t, lines, "WCP-1760SA4", 16)
	requireQty(t, lines, "WFB-0950ZP", 20)
	requireQty(t, lines, "WFB-1200Z", 16)
	requireQty(t, lines, "WCF-2000Z", 4)
	requireQty(t, lines, "WCP-1780Z", 16)

	if hasPart(lines, "WCP-17160SA4") || hasPart(lines, "WBR-9090SA4") {
		t.Error("Expected no double brackets or corner brackets below 3 m")
	}
}

func TestCalcReinforcing_Simple5x5x3(t *testing.T) {
	d := deriveDims(t, 5, 5, 0, 0, 0, 3)
	var diag Diagnostics
	lines, sum := CalcReinforcing(d, &diag)

	requireQty(t, lines, "WCP-1760SA4", 16)
	requireQty(t, lines, "WCP-17160SA4", 16)
	requireQty(t, lines, "WBR-9090SA4", 4)
	requireQty(t, lines, "WFB-0950ZP", 44)
	requireQty(t, lines, "WFB-0950Z", 36)
	requireQty(t, lines, "WCF-1000Z", 4)
	requireQty(t, lines, "WCF-2000Z", 4)
	requireQty(t, lines, "WCP-1780Z", 24)
	requireQty(t, lines, "WCP-1616Z", 16)

	if sum.CornerBrackets != 4 {
		t.Errorf("Expected 4 corner brackets in the summary, got %d", sum.CornerBrackets)
	}
}

func TestCalcReinforcing_CornerBracketTable(t *testing.T) {
	testCases := []struct {
		name   string
		height float64
		want   int
	}{
		{"3m", 3, 4},
		{"3.5m", 3.5, 8},
		{"4m", 4, 8},
		{"5m", 5, 12},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := deriveDims(t, 5, 5, 0, 0, 0, tc.height)
			var diag Diagnostics
			lines, _ := CalcReinforcing(d, &diag)
			requireQty(t, lines, "WBR-9090SA4", tc.want)
		})
	}
}

func TestCalcReinforcing_PartitionSet(t *testing.T) {
	d := deriveDims(t, 10, 4, 2, 2, 0, 3)
	var diag Diagnostics
	lines, sum := CalcReinforcing(d, &diag)

	if !sum.HasPartitionParts {
		t.Fatal("Expected partition parts for a partitioned 3 m tank")
	}
	requireQty(t, lines, "WCP-1616SA4", 18)
	requireQty(t, lines, "WCP-1780SA4", 18)
	requireQty(t, lines, "WFB-0880SA4", 18)
	requireQty(t, lines, "WFB-0880PSA4", 22)
	requireQty(t, lines, "WFB-0950SA4", 40)
	requireQty(t, lines, "WFB-1200SA4", 18)
	requireQty(t, lines, "WFB-0880ZP", 4)

	if hasPart(lines, "WFB-0950PSA4") {
		t.Error("Expected no partition plate variant below 4 m")
	}
}

func TestCalcReinforcing_TallPartitionedCornerBrackets(t *testing.T) {
	d := deriveDims(t, 10, 5, 5, 5, 0, 4)
	var diag Diagnostics
	lines, sum := CalcReinforcing(d, &diag)

	// Table value for 4 m plus 13 per partition.
	requireQty(t, lines, "WBR-9090SA4", 34)
	if sum.CornerBrackets != 34 {
		t.Errorf("Expected 34 corner brackets in the summary, got %d", sum.CornerBrackets)
	}
	requireQty(t, lines, "WCF-2000Z", 8)
	if hasPart(lines, "WCF-1000Z") {
		t.Error("Expected only stacked 2 m corner frames at 4 m")
	}
}
