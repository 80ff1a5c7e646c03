package engine

import (
	"fmt"
	"math"

	"github.com/panelworks/tankquote/pkg/domain/entities"
)

// CalcEtc computes the miscellaneous accessory set: air vents, roof
// supporters, ladders, silicon sealant, the level indicator and the
// sealing tapes. nominalCapacity selects the air vent size.
func CalcEtc(d entities.DerivedDimensions, acc entities.AccessoryOptions, nominalCapacity float64) []entities.PartLine {
	lines := []entities.PartLine{
		calcAirVent(d, nominalCapacity),
		calcRoofSupporter(d),
		calcInternalLadder(d, acc.InternalLadder),
		calcExternalLadder(d, acc.ExternalLadder),
		calcSilicon(d),
	}
	if lvl := calcLevelIndicator(d, acc.LevelIndicator); lvl != nil {
		lines = append(lines, *lvl)
	}
	lines = append(lines, calcSealingTape50(d), calcSealingTape120(d))
	return dropEmpty(lines)
}

// calcAirVent sizes the vent by nominal capacity and counts one per
// compartment, or one per 30 m2 of roof for large footprints.
func calcAirVent(d entities.DerivedDimensions, nominalCapacity float64) entities.PartLine {
	partNo, desc := "WAV-0100A", "Air Vent 100mm"
	if nominalCapacity < 100 {
		partNo, desc = "WAV-0050A", "Air Vent 50mm"
	}
	qty := 1 + d.Partitions
	if areaQty := int(math.Ceil(d.FootprintArea() / 30)); areaQty > qty {
		qty = areaQty
	}
	return entities.PartLine{
		PartNo: entities.PartNumber(partNo), Quantity: qty,
		Category: entities.CategoryEtc, Description: desc,
	}
}

// calcRoofSupporter props the roof grid. Partitioned tanks take one per
// 5 m2 of integer footprint; simple tanks count per compartment section
// with the edge rows netted out.
func calcRoofSupporter(d entities.DerivedDimensions) entities.PartLine {
	heightMM := d.HeightMM()

	var qty int
	if d.Partitions > 0 {
		qty = d.WidthInt * d.LengthIntTotal / 5
		if d.LengthTotal > 10 {
			qty += 2
		}
	} else {
		if d.Segment(0) > 1 {
			qty += int(math.Ceil((d.Width - 1) * (d.Segment(0) - 1) / 4))
		}
		if l := d.Segment(1); l > 0 {
			qty += int(math.Ceil((d.Width - 1) * (l - 1) / 4))
		}
		for i := 2; i < 4; i++ {
			if l := d.Segment(i); l > 0 {
				qty += int(math.Floor((d.Width - 2) * (l - 2) / 4))
			}
		}
		if qty < 0 {
			qty = 0
		}
	}

	return entities.PartLine{
		PartNo:   entities.PartNumber(fmt.Sprintf("WRS-%dF", heightMM)),
		Quantity: qty,
		Category: entities.CategoryEtc, Description: fmt.Sprintf("Roof Supporter %dmm", heightMM),
	}
}

func calcInternalLadder(d entities.DerivedDimensions, mat entities.LadderMaterial) entities.PartLine {
	heightMM := d.HeightMM()
	return entities.PartLine{
		PartNo:   entities.PartNumber(fmt.Sprintf("WLD-%d%s", heightMM, mat.InternalLadderSuffix())),
		Quantity: d.Partitions + 1,
		Category: entities.CategoryEtc, Description: fmt.Sprintf("Internal Ladder %dmm", heightMM),
	}
}

func calcExternalLadder(d entities.DerivedDimensions, mat entities.LadderMaterial) entities.PartLine {
	heightMM := d.HeightMM()
	return entities.PartLine{
		PartNo:   entities.PartNumber(fmt.Sprintf("WLD-%d%s", heightMM, mat.ExternalLadderSuffix())),
		Quantity: 1,
		Category: entities.CategoryEtc, Description: fmt.Sprintf("External Ladder %dmm", heightMM),
	}
}

// calcSilicon allots one tube per 10 m2 of footprint, rounded up.
func calcSilicon(d entities.DerivedDimensions) entities.PartLine {
	qty := int(math.Ceil(0.1 * d.FootprintArea()))
	if qty < 1 {
		qty = 1
	}
	return entities.PartLine{
		PartNo: "Silicon", Quantity: qty,
		Category: entities.CategoryEtc, Description: "Silicon Sealant (Tubes)",
	}
}

func calcLevelIndicator(d entities.DerivedDimensions, typ entities.LevelIndicatorType) *entities.PartLine {
	switch typ {
	case entities.LevelIndicatorGlass:
		heightMM := d.HeightMM()
		return &entities.PartLine{
			PartNo:   entities.PartNumber(fmt.Sprintf("WLV-%dSET(G)", heightMM)),
			Quantity: d.Partitions + 1,
			Category: entities.CategoryEtc, Description: fmt.Sprintf("Level Indicator Glass Type %dmm", heightMM),
		}
	case entities.LevelIndicatorSensor:
		return &entities.PartLine{
			PartNo:   "WLV-0000SET(S)",
			Quantity: d.Partitions + 1,
			Category: entities.CategoryEtc, Description: "Level Indicator Sensor Type",
		}
	}
	return nil
}

// calcSealingTape50 covers the panel joints. Partitioned tanks scale by
// floor area and wall rows; simple tanks take a perimeter base plus a
// per-meter-of-height run, with a mid-panel allowance from 4 m up.
func calcSealingTape50(d entities.DerivedDimensions) entities.PartLine {
	hp := d.HalfPerimeter()
	floorArea := d.WidthInt * d.LengthIntTotal

	var qty int
	if d.Partitions > 0 {
		qty = floorArea*tape50PartitionAreaFactor + hp*d.HeightInt*tape50PartitionPerimFactor
		if d.LengthTotal > 10 && d.HeightStep >= midTierStep {
			qty += int((d.LengthTotal - 10) * tape50LongTallFactor)
		}
	} else {
		qty = hp*8 + (floorArea*4+2)*d.HeightInt
		if d.HeightStep >= midTierStep {
			qty += (hp - 3) * (d.HeightInt - 3)
		}
	}
	if qty < 1 {
		qty = 1
	}

	return entities.PartLine{
		PartNo: "WST-0050RO", Quantity: qty,
		Category: entities.CategoryEtc, Description: "Sealing Tape 50mm (Meters)",
	}
}

// calcSealingTape120 seals the corners, two rolls per meter of height
// plus one.
func calcSealingTape120(d entities.DerivedDimensions) entities.PartLine {
	return entities.PartLine{
		PartNo: "WST-0120RO", Quantity: d.HeightStep*2 + 1,
		Category: entities.CategoryEtc, Description: "Sealing Tape 120mm (Roll)",
	}
}
