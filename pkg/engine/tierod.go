package engine

import (
	"fmt"

	"github.com/panelworks/tankquote/pkg/domain/entities"
)

// rodConfig aggregates tie-rod stock lines by length while keeping the
// first-seen order stable for deterministic BOM output.
type rodConfig struct {
	lengths []int
	qty     map[int]int
}

func (c *rodConfig) add(length, qty int) {
	if c.qty == nil {
		c.qty = make(map[int]int)
	}
	if _, ok := c.qty[length]; !ok {
		c.lengths = append(c.lengths, length)
	}
	c.qty[length] += qty
}

// CalcTieRods computes the internal tie-rod set: rod stock, connectors
// for spans above 5 m, and the nut/washer accessories. Tanks below 2 m
// of water column need no rods at all.
func CalcTieRods(d entities.DerivedDimensions, spec entities.TieRodSpec, diag *Diagnostics) []entities.PartLine {
	tiers := tieRodTiers(d.HeightStep, d.HeightInt)
	if tiers == 0 {
		return nil
	}
	prefix := spec.PartPrefix()

	var cfg rodConfig
	var connectors int
	if d.Width > 5 {
		connectors = calcWideRods(d, tiers, &cfg)
	} else {
		cfg.add(nearestRodLength(int((d.Width-0.12)*1000)), simpleRodQuantity(d, tiers))
	}

	var lines []entities.PartLine
	for _, l := range cfg.lengths {
		if cfg.qty[l] <= 0 {
			continue
		}
		lines = append(lines, entities.PartLine{
			PartNo:      entities.PartNumber(fmt.Sprintf("TR-%s%d%s", prefix, l, internalMaterialSuffix)),
			Quantity:    cfg.qty[l],
			Category:    entities.CategoryTieRod,
			Description: fmt.Sprintf("Tie Rod %dmm", l),
		})
	}

	if connectors > 0 {
		lines = append(lines, entities.PartLine{
			PartNo:      entities.PartNumber("TC-" + prefix + "60" + internalMaterialSuffix),
			Quantity:    connectors,
			Category:    entities.CategoryTieRod,
			Description: "Tie Rod Connector",
		})
	}

	assemblies := diag.clamp(rodAssemblies(d, tiers))
	if assemblies > 0 {
		size := prefix[:2]
		lines = append(lines,
			entities.PartLine{
				PartNo: "NUT(" + internalMaterialSuffix + ")", Quantity: assemblies * 4,
				Category: entities.CategoryTieRod, Description: "T/Rod Nut M" + size,
			},
			entities.PartLine{
				PartNo: "BW(" + internalMaterialSuffix + ")", Quantity: assemblies * 4,
				Category: entities.CategoryTieRod, Description: "T/Rod Washer M" + size,
			},
		)
	}

	return dropEmpty(lines)
}

// calcWideRods fills cfg for tanks wider than 5 m, which span the width
// with 4 m segments joined by connectors, and returns the connector
// count. Compartments of 5 m and above tile with a fixed 2880+1880
// pattern; mixed compartment sizes take per-compartment rod lengths.
func calcWideRods(d entities.DerivedDimensions, tiers int, cfg *rodConfig) int {
	tr4000 := (d.LengthPositions())*tiers*2 +
		int(float64(d.Partitions)*float64(tiers)*(tieRodPartitionSlope*float64(tiers)+tieRodPartitionIntercept))
	cfg.add(4000, tr4000)

	if d.Partitions > 0 && allCompartmentsLarge(d) {
		cfg.add(2880, (d.Partitions+1)*3*tiers)
		cfg.add(1880, d.LengthPositions()*tiers+d.Partitions*2)
		return tr4000
	}

	// First compartment rods, unless its span already matches the 5 m
	// stock covered by the segment pattern.
	l1Positions := maxPositions(d.LengthInt[0])
	l1Rod := nearestRodLength(int((d.Segment(0) - 0.12) * 1000))
	if l1Positions > 0 && l1Rod != 4880 {
		cfg.add(l1Rod, l1Positions*tiers*3)
	}

	// Remaining compartments group by rod length; each group carries the
	// partition wall contribution once.
	grouped := rodConfig{}
	for i := 1; i < 4; i++ {
		if d.Segment(i) <= 0 {
			continue
		}
		rod := nearestRodLength(int((d.Segment(i) - 0.12) * 1000))
		grouped.add(rod, maxPositions(d.LengthInt[i]))
	}
	for _, rod := range grouped.lengths {
		qty := grouped.qty[rod] * tiers * 3
		if d.Partitions > 0 {
			qty += d.Partitions*tiers - 1
		}
		cfg.add(rod, qty)
	}
	return tr4000
}

// simpleRodQuantity is the rod count for tanks 5 m wide or narrower:
// two rods per interior length line per tier, plus a partition run.
func simpleRodQuantity(d entities.DerivedDimensions, tiers int) int {
	qty := d.LengthPositions() * 2 * tiers
	if d.Partitions > 0 {
		qty += d.Partitions * 2 * tiers
	}
	return qty
}

// rodAssemblies counts complete rod assemblies, each of which takes four
// nuts and four washers.
func rodAssemblies(d entities.DerivedDimensions, tiers int) int {
	if d.Partitions > 0 && d.Width > 5 {
		if allCompartmentsLarge(d) {
			return int(float64(d.LengthPositions()*tiers) + float64(d.Partitions)*float64(tiers)*tieRodAssemblyLargeComp)
		}
		return d.LengthPositions()*tiers*2 + d.Partitions*4
	}
	return simpleRodQuantity(d, tiers)
}

// allCompartmentsLarge reports whether every present compartment spans
// at least 5 m.
func allCompartmentsLarge(d entities.DerivedDimensions) bool {
	if d.Segment(0) < 5 {
		return false
	}
	for i := 1; i < 4; i++ {
		if l := d.Segment(i); l > 0 && l < 5 {
			return false
		}
	}
	return true
}

func maxPositions(lengthInt int) int {
	if lengthInt < 1 {
		return 0
	}
	return lengthInt - 1
}
