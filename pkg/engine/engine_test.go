package engine

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/panelworks/tankquote/pkg/domain/entities"
	"github.com/panelworks/tankquote/pkg/infrastructure/repositories/memory"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	catalog := memory.NewCatalogRepository(8)
	catalog.LoadParts([]entities.PartInfo{
		{PartNo: "RF00M", Name: "Roof Panel 1x1m", UnitPrice: decimal.NewFromFloat(25.50), UnitWeight: decimal.NewFromFloat(6.5)},
		{PartNo: "MF00M", Name: "Manhole Panel", UnitPrice: decimal.NewFromFloat(60), UnitWeight: decimal.NewFromFloat(8)},
		{PartNo: "SL20S", Name: "Side Panel 2.0m", UnitPrice: decimal.NewFromFloat(48), UnitWeight: decimal.NewFromFloat(11)},
		{PartNo: "TR-12M4880SA4", Name: "Tie Rod 4880mm", UnitPrice: decimal.NewFromFloat(14.2), UnitWeight: decimal.NewFromFloat(2.1)},
		{PartNo: "WST-0120RO", Name: "Sealing Tape 120mm", UnitPrice: decimal.NewFromFloat(9.8), UnitWeight: decimal.NewFromFloat(0.4)},
		{PartNo: "WSD-050A", Name: "Suction/Drain 50mm", UnitPrice: decimal.NewFromFloat(31), UnitWeight: decimal.NewFromFloat(0.9)},
	})
	return New(catalog, zap.NewNop())
}

func baseInput(height float64) Input {
	return Input{
		Dimensions:   entities.TankDimensions{Width: 5, Length1: 5, Height: height, Quantity: 1},
		ExchangeRate: 3.75,
	}
}

func bomQty(items []entities.BOMItem, partNo entities.PartNumber) int {
	for _, it := range items {
		if it.PartNo == partNo {
			return it.Quantity
		}
	}
	return 0
}

func TestEngine_Calculate_Capacity(t *testing.T) {
	eng := newTestEngine(t)
	res, err := eng.Calculate(baseInput(2))
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	if res.Capacity.NominalCapacityM3 != 50 {
		t.Errorf("Expected nominal capacity 50, got %g", res.Capacity.NominalCapacityM3)
	}
	if res.Capacity.ActualCapacityM3 != 45 {
		t.Errorf("Expected actual capacity 45, got %g", res.Capacity.ActualCapacityM3)
	}
	if res.Capacity.SurfaceAreaM2 != 90 {
		t.Errorf("Expected surface area 90, got %g", res.Capacity.SurfaceAreaM2)
	}
	if res.Capacity.NumPartitions != 0 {
		t.Errorf("Expected 0 partitions, got %d", res.Capacity.NumPartitions)
	}
}

func TestEngine_Calculate_InvalidDimensions(t *testing.T) {
	eng := newTestEngine(t)
	in := baseInput(2)
	in.Dimensions.Height = 2.3
	if _, err := eng.Calculate(in); err == nil {
		t.Error("Expected an error for off-grid height")
	}
}

func TestEngine_Calculate_GoldenParts5x5x2(t *testing.T) {
	eng := newTestEngine(t)
	in := baseInput(2)
	in.Fittings = []entities.FittingSpec{{Type: "SD", Size: 50, Quantity: 1}}

	res, err := eng.Calculate(in)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	if got := bomQty(res.BOM, "RF00M"); got != 24 {
		t.Errorf("Expected 24 roof panels, got %d", got)
	}
	if got := bomQty(res.BOM, "SL20S"); got != 20 {
		t.Errorf("Expected 20 side panels, got %d", got)
	}
	if got := bomQty(res.BOM, "TR-12M4880SA4"); got != 8 {
		t.Errorf("Expected 8 tie rods, got %d", got)
	}
	if got := bomQty(res.BOM, "WST-0120RO"); got != 9 {
		t.Errorf("Expected 9 tape rolls, got %d", got)
	}
	if got := bomQty(res.BOM, "WSD-050A"); got != 1 {
		t.Errorf("Expected 1 drain fitting, got %d", got)
	}
}

func TestEngine_Calculate_Pricing(t *testing.T) {
	eng := newTestEngine(t)
	res, err := eng.Calculate(baseInput(2))
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	for _, it := range res.BOM {
		if it.PartNo != "RF00M" {
			continue
		}
		if !it.Resolved {
			t.Error("Expected RF00M to resolve against the catalog")
		}
		wantTotal := decimal.NewFromFloat(25.50).Mul(decimal.NewFromInt(24)).Round(2)
		if !it.TotalPrice.Equal(wantTotal) {
			t.Errorf("Expected total price %s, got %s", wantTotal, it.TotalPrice)
		}
		wantWeight := decimal.NewFromFloat(6.5).Mul(decimal.NewFromInt(24)).Round(2)
		if !it.TotalWeight.Equal(wantWeight) {
			t.Errorf("Expected total weight %s, got %s", wantWeight, it.TotalWeight)
		}
	}

	// Category totals fold into the grand total.
	sum := res.Cost.Panels.Add(res.Cost.SteelSkid).Add(res.Cost.BoltsNuts).
		Add(res.Cost.ExternalReinforcing).Add(res.Cost.InternalReinforcing).
		Add(res.Cost.InternalTieRod).Add(res.Cost.Etc).Add(res.Cost.Fittings)
	if !sum.Round(2).Equal(res.Cost.TotalUSD) {
		t.Errorf("Category totals %s do not fold to grand total %s", sum, res.Cost.TotalUSD)
	}
	wantConverted := res.Cost.TotalUSD.Mul(decimal.NewFromFloat(3.75)).Round(2)
	if !res.Cost.TotalConverted.Equal(wantConverted) {
		t.Errorf("Expected converted total %s, got %s", wantConverted, res.Cost.TotalConverted)
	}

	wantKg := res.Weight.PanelsKg.Add(res.Weight.SteelKg).Add(res.Weight.AccessoriesKg)
	if !wantKg.Round(2).Equal(res.Weight.TotalKg) {
		t.Errorf("Weight buckets %s do not fold to total %s", wantKg, res.Weight.TotalKg)
	}
}

func TestEngine_Calculate_UnresolvedParts(t *testing.T) {
	eng := newTestEngine(t)
	res, err := eng.Calculate(baseInput(2))
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	if len(res.Diagnostics.UnresolvedParts) == 0 {
		t.Fatal("Expected unresolved parts with a sparse catalog")
	}
	for _, it := range res.BOM {
		if it.PartNo == "BF20M" {
			if it.Resolved {
				t.Error("Expected BF20M to be flagged unresolved")
			}
			if !it.TotalPrice.IsZero() {
				t.Errorf("Expected zero price for unresolved part, got %s", it.TotalPrice)
			}
		}
	}
}

func TestEngine_Calculate_Deterministic(t *testing.T) {
	eng := newTestEngine(t)
	in := baseInput(3)
	in.Dimensions = entities.TankDimensions{Width: 10, Length1: 4, Length2: 2, Length3: 2, Height: 3, Quantity: 1}

	first, err := eng.Calculate(in)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := eng.Calculate(in)
		if err != nil {
			t.Fatalf("Calculate failed on run %d: %v", i, err)
		}
		if !reflect.DeepEqual(first.BOM, again.BOM) {
			t.Fatalf("BOM differs between identical runs")
		}
	}
}

func TestEngine_Calculate_QuantityScaling(t *testing.T) {
	eng := newTestEngine(t)

	one, err := eng.Calculate(baseInput(2))
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	in := baseInput(2)
	in.Dimensions.Quantity = 3
	three, err := eng.Calculate(in)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	if len(one.BOM) != len(three.BOM) {
		t.Fatalf("Expected identical line sets, got %d vs %d", len(one.BOM), len(three.BOM))
	}
	for i := range one.BOM {
		if three.BOM[i].Quantity != one.BOM[i].Quantity*3 {
			t.Errorf("Part %s: expected quantity %d, got %d",
				one.BOM[i].PartNo, one.BOM[i].Quantity*3, three.BOM[i].Quantity)
		}
	}
	wantTotal := one.Cost.TotalUSD.Mul(decimal.NewFromInt(3)).Round(2)
	if !three.Cost.TotalUSD.Equal(wantTotal) {
		t.Errorf("Expected total %s for three tanks, got %s", wantTotal, three.Cost.TotalUSD)
	}
}
