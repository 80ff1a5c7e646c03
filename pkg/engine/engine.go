package engine

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/panelworks/tankquote/pkg/domain/entities"
	"github.com/panelworks/tankquote/pkg/domain/repositories"
)

// freeboardM is the unusable depth below the roof subtracted from the
// nominal water column when reporting actual capacity.
const freeboardM = 0.2

// Input is one fully decoded calculation request. The transport layer
// validates dimensions and decodes option strings before building it;
// the engine assumes every field is in range.
type Input struct {
	Dimensions  entities.TankDimensions
	Panel       entities.PanelOptions
	Skid        entities.SkidType
	Bolts       entities.BoltOption
	TieRodSpec  entities.TieRodSpec
	Accessories entities.AccessoryOptions
	Fittings    []entities.FittingSpec

	// ExchangeRate converts the USD total into the customer currency.
	ExchangeRate float64
}

// Result is the complete calculation output: capacity figures, the
// priced BOM, the category roll-ups and the diagnostics of the run.
type Result struct {
	Capacity    entities.CapacityInfo
	BOM         []entities.BOMItem
	Cost        entities.CostSummary
	Weight      entities.WeightSummary
	Diagnostics Diagnostics
}

// Engine computes quotations. It is stateless apart from the injected
// part catalog and safe for concurrent use; every Calculate call works
// on its own derived data.
type Engine struct {
	catalog repositories.PartCatalog
	logger  *zap.Logger
}

// New builds an Engine around a part catalog.
func New(catalog repositories.PartCatalog, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{catalog: catalog, logger: logger}
}

// Calculate runs every formula module for one request and prices the
// result. A defect in one module is isolated: its lines are dropped,
// the failure is recorded in the diagnostics and the remaining modules
// still run.
func (e *Engine) Calculate(in Input) (Result, error) {
	if err := in.Dimensions.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid dimensions: %w", err)
	}
	d := entities.Derive(in.Dimensions)

	var res Result
	diag := &res.Diagnostics
	res.Capacity = capacityInfo(d)

	var reinfLines []entities.PartLine
	var reinfSum ReinforcingSummary
	e.runModule("reinforcing", diag, func() []entities.PartLine {
		reinfLines, reinfSum = CalcReinforcing(d, diag)
		return nil
	})

	var lines []entities.PartLine
	lines = append(lines, e.runModule("panels", diag, func() []entities.PartLine {
		return CalcPanels(d, in.Panel, diag)
	})...)
	lines = append(lines, e.runModule("steel_skid", diag, func() []entities.PartLine {
		return CalcSteelSkid(d, in.Skid)
	})...)
	lines = append(lines, e.runModule("bolts_nuts", diag, func() []entities.PartLine {
		return CalcBolts(d, in.Bolts, reinfSum, diag)
	})...)
	lines = append(lines, reinfLines...)
	lines = append(lines, e.runModule("tie_rods", diag, func() []entities.PartLine {
		return CalcTieRods(d, in.TieRodSpec, diag)
	})...)
	lines = append(lines, e.runModule("etc", diag, func() []entities.PartLine {
		return CalcEtc(d, in.Accessories, res.Capacity.NominalCapacityM3)
	})...)
	lines = append(lines, e.runModule("fittings", diag, func() []entities.PartLine {
		return CalcFittings(in.Fittings)
	})...)

	res.BOM = e.price(lines, in.Dimensions.Quantity, diag)
	res.Cost = costSummary(res.BOM, in.ExchangeRate)
	res.Weight = weightSummary(res.BOM)

	if len(diag.ModuleFailures) > 0 || len(diag.UnresolvedParts) > 0 || diag.ClampedQuantities > 0 {
		e.logger.Warn("calculation completed with diagnostics",
			zap.Strings("module_failures", diag.ModuleFailures),
			zap.Int("unresolved_parts", len(diag.UnresolvedParts)),
			zap.Int("clamped_quantities", diag.ClampedQuantities),
		)
	}
	return res, nil
}

// runModule executes one formula module, converting a panic into a
// recorded module failure with no lines.
func (e *Engine) runModule(name string, diag *Diagnostics, fn func() []entities.PartLine) (lines []entities.PartLine) {
	defer func() {
		if r := recover(); r != nil {
			diag.ModuleFailures = append(diag.ModuleFailures, name)
			e.logger.Error("formula module failed",
				zap.String("module", name),
				zap.Any("panic", r),
			)
			lines = nil
		}
	}()
	return fn()
}

// price resolves every line against the catalog, scales by the tank
// count and computes the per-line totals.
func (e *Engine) price(lines []entities.PartLine, tanks int, diag *Diagnostics) []entities.BOMItem {
	items := make([]entities.BOMItem, 0, len(lines))
	for _, l := range lines {
		info := e.catalog.Resolve(l.PartNo)
		if !info.Found {
			diag.UnresolvedParts = append(diag.UnresolvedParts, l.PartNo)
		}
		qty := l.Quantity * tanks
		qtyDec := decimal.NewFromInt(int64(qty))
		name := info.Name
		if name == "" {
			name = l.Description
		}
		items = append(items, entities.BOMItem{
			PartNo:      l.PartNo,
			PartName:    name,
			Quantity:    qty,
			UnitPrice:   info.UnitPrice,
			TotalPrice:  info.UnitPrice.Mul(qtyDec).Round(2),
			UnitWeight:  info.UnitWeight,
			TotalWeight: info.UnitWeight.Mul(qtyDec).Round(2),
			Category:    l.Category,
			Resolved:    info.Found,
		})
	}
	return items
}

func capacityInfo(d entities.DerivedDimensions) entities.CapacityInfo {
	nominal := d.FootprintArea() * d.Height
	actual := d.FootprintArea() * (d.Height - freeboardM)
	if actual < 0 {
		actual = 0
	}
	surface := 2*(d.FootprintArea()+d.Width*d.Height+d.LengthTotal*d.Height) +
		d.Width*d.Height*float64(d.Partitions)

	return entities.CapacityInfo{
		NominalCapacityM3: round2(nominal),
		ActualCapacityM3:  round2(actual),
		SurfaceAreaM2:     round2(surface),
		TotalLength:       d.LengthTotal,
		NumPartitions:     d.Partitions,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func costSummary(items []entities.BOMItem, exchangeRate float64) entities.CostSummary {
	var s entities.CostSummary
	for _, it := range items {
		switch it.Category {
		case entities.CategoryPanels:
			s.Panels = s.Panels.Add(it.TotalPrice)
		case entities.CategorySteelSkid:
			s.SteelSkid = s.SteelSkid.Add(it.TotalPrice)
		case entities.CategoryBoltsNuts:
			s.BoltsNuts = s.BoltsNuts.Add(it.TotalPrice)
		case entities.CategoryExternalReinforcing:
			s.ExternalReinforcing = s.ExternalReinforcing.Add(it.TotalPrice)
		case entities.CategoryInternalReinforcing:
			s.InternalReinforcing = s.InternalReinforcing.Add(it.TotalPrice)
		case entities.CategoryTieRod:
			s.InternalTieRod = s.InternalTieRod.Add(it.TotalPrice)
		case entities.CategoryEtc:
			s.Etc = s.Etc.Add(it.TotalPrice)
		case entities.CategoryFittings:
			s.Fittings = s.Fittings.Add(it.TotalPrice)
		}
		s.TotalUSD = s.TotalUSD.Add(it.TotalPrice)
	}
	s.TotalUSD = s.TotalUSD.Round(2)
	s.TotalConverted = s.TotalUSD.Mul(decimal.NewFromFloat(exchangeRate)).Round(2)
	return s
}

func weightSummary(items []entities.BOMItem) entities.WeightSummary {
	var s entities.WeightSummary
	for _, it := range items {
		switch it.Category {
		case entities.CategoryPanels:
			s.PanelsKg = s.PanelsKg.Add(it.TotalWeight)
		case entities.CategorySteelSkid, entities.CategoryBoltsNuts,
			entities.CategoryExternalReinforcing, entities.CategoryInternalReinforcing,
			entities.CategoryTieRod:
			s.SteelKg = s.SteelKg.Add(it.TotalWeight)
		case entities.CategoryEtc, entities.CategoryFittings:
			s.AccessoriesKg = s.AccessoriesKg.Add(it.TotalWeight)
		}
		s.TotalKg = s.TotalKg.Add(it.TotalWeight)
	}
	s.PanelsKg = s.PanelsKg.Round(2)
	s.SteelKg = s.SteelKg.Round(2)
	s.AccessoriesKg = s.AccessoriesKg.Round(2)
	s.TotalKg = s.TotalKg.Round(2)
	return s
}
