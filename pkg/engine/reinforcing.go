package engine

import (
	"strconv"

	"github.com/panelworks/tankquote/pkg/domain/entities"
)

// ReinforcingSummary exposes the reinforcing results other modules key
// on: the bolts module fastens partition rubber seals to the partition
// reinforcing plates. Threading this summary keeps the cross-module
// dependency a data dependency instead of duplicated arithmetic.
type ReinforcingSummary struct {
	CornerBrackets    int
	PartitionPlateQty int // internal partition reinforcing plates/angles
	HasPartitionParts bool
}

// Internal reinforcing parts always carry the SA4 material code: the
// reference model reports stainless internals under SS304 part numbers
// regardless of the selected grade.
const internalMaterialSuffix = "SA4"

// CalcReinforcing computes both reinforcing sub-families: internal
// stainless brackets/plates and external galvanized frames/plates.
func CalcReinforcing(d entities.DerivedDimensions, diag *Diagnostics) ([]entities.PartLine, ReinforcingSummary) {
	var sum ReinforcingSummary
	lines := calcInternalReinforcing(d, &sum)
	lines = append(lines, calcExternalReinforcing(d, diag)...)
	return dropEmpty(lines), sum
}

// calcInternalReinforcing emits the stainless tie-rod brackets, corner
// brackets and, for partitioned tanks, the partition plate set. Nothing
// is needed below the 2 m tie-rod threshold.
func calcInternalReinforcing(d entities.DerivedDimensions, sum *ReinforcingSummary) []entities.PartLine {
	if d.HeightStep < 4 {
		return nil
	}
	var lines []entities.PartLine
	long := d.LengthTotal > 10
	tall := d.HeightStep >= midTierStep

	// Single tie-rod brackets, one set per interior length line.
	base := d.LengthPositions() * 4
	oneTier := base
	if d.Partitions > 0 {
		oneTier += int(float64(d.Partitions) * float64(d.WidthInt) * pick(long, reinf1760FactorLong, reinf1760Factor))
	}
	lines = append(lines, entities.PartLine{
		PartNo:   entities.PartNumber("WCP-1760" + internalMaterialSuffix),
		Quantity: oneTier,
		Category: entities.CategoryInternalReinforcing, Description: "IN-BRKT (1 tierod)",
	})

	if d.HeightStep >= 6 {
		// Double tie-rod brackets scale with the extra height tiers.
		tiers := d.HeightInt - 2
		twoTier := oneTier * tiers
		if d.Partitions > 0 {
			twoTier = (base + int(float64(d.Partitions)*float64(d.WidthInt)*pick(long, reinf17160FactorLong, reinf17160Factor))) * tiers
		}
		lines = append(lines, entities.PartLine{
			PartNo:   entities.PartNumber("WCP-17160" + internalMaterialSuffix),
			Quantity: twoTier,
			Category: entities.CategoryInternalReinforcing, Description: "IN-BRKT (2 tierod)",
		})

		corner := cornerBrackets(d.HeightStep)
		if tall && d.Partitions > 0 {
			corner += d.Partitions * 13
		}
		sum.CornerBrackets = corner
		lines = append(lines, entities.PartLine{
			PartNo:   entities.PartNumber("WBR-9090" + internalMaterialSuffix),
			Quantity: corner,
			Category: entities.CategoryInternalReinforcing, Description: "Corner BRKT",
		})
	}

	if d.Partitions > 0 && d.HeightStep >= tieredSideStep {
		pw := float64(d.Partitions) * float64(d.WidthInt)
		partition := []entities.PartLine{
			{PartNo: entities.PartNumber("WCP-1616" + internalMaterialSuffix), Quantity: int(pw * pick(tall, reinf1616FactorTall, reinf1616Factor)),
				Category: entities.CategoryInternalReinforcing, Description: "Cross Plate(4 Hole) Partition"},
			{PartNo: entities.PartNumber("WCP-1780" + internalMaterialSuffix), Quantity: int(pw * reinf1780Factor),
				Category: entities.CategoryInternalReinforcing, Description: "Cross Plate(2 Hole) Partition"},
			{PartNo: entities.PartNumber("WFB-0880" + internalMaterialSuffix), Quantity: int(pw * reinf0880AngleFactor),
				Category: entities.CategoryInternalReinforcing, Description: "F/L Reinforcing Angle Partition"},
			{PartNo: entities.PartNumber("WFB-0880P" + internalMaterialSuffix), Quantity: int(pw * reinf0880PlateFactor),
				Category: entities.CategoryInternalReinforcing, Description: "F/L Reinforcing Plate Partition"},
			{PartNo: entities.PartNumber("WFB-0950" + internalMaterialSuffix), Quantity: int(pw * pick(tall, reinf0950FactorTall, reinf0950Factor)),
				Category: entities.CategoryInternalReinforcing, Description: "F/L Reinforcing Angle Partition"},
		}
		if tall {
			partition = append(partition, entities.PartLine{
				PartNo: entities.PartNumber("WFB-0950P" + internalMaterialSuffix), Quantity: int(pw * reinf0950PlateFactor),
				Category: entities.CategoryInternalReinforcing, Description: "F/L Reinforcing Plate Partition"})
		}
		partition = append(partition, entities.PartLine{
			PartNo: entities.PartNumber("WFB-1200" + internalMaterialSuffix), Quantity: int(pw * reinf1200Factor),
			Category: entities.CategoryInternalReinforcing, Description: "F/L Reinforcing Angle Partition"})

		for _, p := range partition {
			sum.PartitionPlateQty += p.Quantity
		}
		sum.HasPartitionParts = sum.PartitionPlateQty > 0
		lines = append(lines, partition...)
	}

	return lines
}

// calcExternalReinforcing emits the galvanized plate, angle, corner
// frame and cross-plate bracket set.
func calcExternalReinforcing(d entities.DerivedDimensions, diag *Diagnostics) []entities.PartLine {
	var lines []entities.PartLine
	halfPer := d.HalfPerimeter()
	joints := d.InternalJoints()
	positions := d.LengthPositions()
	long := d.LengthTotal > 10
	tall := d.HeightStep >= midTierStep

	// F/L reinforcing plates wrap the base row, then one row per extra
	// height tier.
	plates := 2 * halfPer
	if d.HeightStep >= 6 {
		plates += (2*halfPer + 4) * (d.HeightInt - 2)
		if tall {
			plates += 4 * (d.HeightInt - 3)
		}
	}
	if d.Partitions > 0 {
		plates += int(float64(d.Partitions) * float64(d.WidthInt) * pick(long, extPlateFactorLong, extPlateFactor))
	}
	lines = append(lines, entities.PartLine{
		PartNo: "WFB-0950ZP", Quantity: plates,
		Category: entities.CategoryExternalReinforcing, Description: "F/L Reinforcing plate",
	})

	if d.Partitions > 0 && d.HeightStep >= tieredSideStep {
		lines = append(lines, entities.PartLine{
			PartNo: "WFB-0880ZP", Quantity: d.Partitions * 2,
			Category: entities.CategoryExternalReinforcing, Description: "F/L Reinforcing plate Partition",
		})
	}

	if d.HeightStep >= 6 {
		lines = append(lines, entities.PartLine{
			PartNo: "WFB-0950Z", Quantity: diag.clamp(4 * (halfPer - 1) * (d.HeightInt - 2)),
			Category: entities.CategoryExternalReinforcing, Description: "F/L Reinforcing Angle",
		})
	}
	if tall {
		lines = append(lines, entities.PartLine{
			PartNo: "WFB-0950ZL", Quantity: 2 * joints,
			Category: entities.CategoryExternalReinforcing, Description: "F/L Reinforcing Angle",
		})
	}
	lines = append(lines, entities.PartLine{
		PartNo: "WFB-1200Z", Quantity: 2 * joints,
		Category: entities.CategoryExternalReinforcing, Description: "F/L Reinforcing Angle",
	})

	// Corner frames by height bucket: short tanks take one full-height
	// frame per corner, 3-3.5 m tanks stack a 1 m and a 2 m frame, and
	// tall tanks stack 2 m frames only.
	switch {
	case tall:
		lines = append(lines, entities.PartLine{
			PartNo: "WCF-2000Z", Quantity: 4 * (d.HeightInt - 2),
			Category: entities.CategoryExternalReinforcing, Description: "Corner Frame 2000mm",
		})
	case d.HeightStep >= 6:
		lines = append(lines,
			entities.PartLine{PartNo: "WCF-1000Z", Quantity: 4, Category: entities.CategoryExternalReinforcing, Description: "Corner Frame 1000mm"},
			entities.PartLine{PartNo: "WCF-2000Z", Quantity: 4, Category: entities.CategoryExternalReinforcing, Description: "Corner Frame 2000mm"},
		)
	default:
		lines = append(lines, entities.PartLine{
			PartNo:   entities.PartNumber("WCF-" + strconv.Itoa(d.HeightMM()) + "Z"),
			Quantity: 4,
			Category: entities.CategoryExternalReinforcing, Description: "Corner Frame",
		})
	}

	if d.HeightStep >= 4 {
		cross := positions * 4
		if d.Partitions > 0 {
			cross += d.Partitions * 2
		}
		if d.HeightStep >= 6 {
			cross += 8 * (d.HeightInt - 2) * (d.HeightInt - 2)
		}
		if long && tall {
			cross += int((d.LengthTotal - 10) * extCrossPlateLongFactor)
		}
		lines = append(lines, entities.PartLine{
			PartNo: "WCP-1780Z", Quantity: cross,
			Category: entities.CategoryExternalReinforcing, Description: "Cross Plate BKT(2 Hole)",
		})
	}

	if d.HeightStep >= 6 {
		factor := 4
		if long {
			factor = 3
		}
		lines = append(lines, entities.PartLine{
			PartNo: "WCP-1616Z", Quantity: positions * factor * (d.HeightInt - 2),
			Category: entities.CategoryExternalReinforcing, Description: "Cross Plate BKT(4 Hole)",
		})
	}

	return lines
}

// pick chooses a by cond, the two-way coefficient selector used across
// the partition formulas.
func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
