package engine

import (
	"strconv"

	"github.com/panelworks/tankquote/pkg/domain/entities"
)

// CalcPanels computes every panel line for one tank: manhole, roof,
// bottom, drain, side and partition panels. Roof, floor and walls tile
// from 1x1 m, 0.5x1 m and 0.5x0.5 m panels; manholes and drains are
// netted out of the full-panel counts, which clamp at zero when a small
// footprint is fully absorbed by them.
func CalcPanels(d entities.DerivedDimensions, opts entities.PanelOptions, diag *Diagnostics) []entities.PartLine {
	var lines []entities.PartLine

	step := clampHeightStep(d.HeightStep)
	manholes := 1 + d.Partitions

	lines = append(lines, entities.PartLine{
		PartNo: "MF00M", Quantity: manholes,
		Category: entities.CategoryPanels, Description: "Manhole Panel",
	})

	lines = append(lines, calcRoofPanels(d, manholes, diag)...)
	lines = append(lines, calcBottomPanels(d, step, diag)...)

	lines = append(lines, entities.PartLine{
		PartNo:   entities.PartNumber("DN" + bottomSuffix(step)),
		Quantity: 1 + d.Partitions,
		Category: entities.CategoryPanels, Description: "Drain Panel",
	})

	lines = append(lines, calcSidePanels(d, step, opts)...)

	if d.Partitions > 0 {
		lines = append(lines, calcPartitionPanels(d, step, opts)...)
	}

	return dropEmpty(lines)
}

// calcRoofPanels nets manholes and quarter panels out of the full roof
// grid. A quarter roof panel appears only when both the width and at
// least one length segment carry a half-meter remainder.
func calcRoofPanels(d entities.DerivedDimensions, manholes int, diag *Diagnostics) []entities.PartLine {
	quarter := 0
	if d.WidthFracCount() == 1 && d.LengthFracCount() > 0 {
		quarter = d.LengthFracCount()
	}
	half := d.WidthInt*d.LengthFracCount() + d.WidthFracCount()*d.LengthIntTotal
	full := diag.clamp(d.WidthInt*d.LengthIntTotal - manholes - quarter)

	return []entities.PartLine{
		{PartNo: "RF00M", Quantity: full, Category: entities.CategoryPanels, Description: "Roof Panel 1x1m"},
		{PartNo: "RH10M", Quantity: half, Category: entities.CategoryPanels, Description: "Half Roof Panel 0.5x1m"},
		{PartNo: "RQ10M", Quantity: quarter, Category: entities.CategoryPanels, Description: "Quarter Roof Panel 0.5x0.5m"},
	}
}

// calcBottomPanels nets drains and the partition rows out of the full
// bottom grid. Partition walls sit on their own bottom panel row with a
// P-suffixed part.
func calcBottomPanels(d entities.DerivedDimensions, step int, diag *Diagnostics) []entities.PartLine {
	suffix := bottomSuffix(step)

	partitionRow := d.WidthInt * d.Partitions
	drains := 1 + d.Partitions

	halfAdjust := 0
	if d.WidthFracCount() == 1 {
		halfAdjust = d.Partitions
	}
	quarter := 0
	if d.WidthFracCount() == 1 && d.LengthFracCount() > 0 {
		quarter = d.LengthFracCount()
	}
	half := diag.clamp(d.WidthInt*d.LengthFracCount() + d.WidthFracCount()*d.LengthIntTotal - halfAdjust)
	full := diag.clamp(d.WidthInt*d.LengthIntTotal - partitionRow - drains)

	lines := []entities.PartLine{
		{PartNo: entities.PartNumber("BF" + suffix), Quantity: full, Category: entities.CategoryPanels, Description: "Bottom Panel 1x1m"},
		{PartNo: entities.PartNumber("BH" + suffix), Quantity: half, Category: entities.CategoryPanels, Description: "Half Bottom Panel 0.5x1m"},
		{PartNo: entities.PartNumber("BQ" + suffix), Quantity: quarter, Category: entities.CategoryPanels, Description: "Quarter Bottom Panel 0.5x0.5m"},
	}
	if partitionRow > 0 {
		// BF30M -> BF30P: the partition row replaces the trailing
		// material code with the partition marker.
		lines = append(lines, entities.PartLine{
			PartNo:   entities.PartNumber("BF" + suffix[:len(suffix)-1] + "P"),
			Quantity: partitionRow,
			Category: entities.CategoryPanels, Description: "Partition Bottom Panel",
		})
	}
	return lines
}

// calcSidePanels emits the wall panels. Tanks at or above 2.5 m split
// into top/low tiers (plus a mid tier at 4 m and above); partitioned
// tanks get left/right corner variants on every tier.
func calcSidePanels(d entities.DerivedDimensions, step int, opts entities.PanelOptions) []entities.PartLine {
	suffix := sideSuffix(step)
	prefix := "SL"
	if opts.UseSidePanel1x1 {
		prefix = "SF"
	}

	corners := d.Partitions // one left and one right per partition
	full := (d.WidthInt+d.LengthIntTotal)*2 - 2*corners
	half := (d.WidthFracCount() + d.LengthFracCount()) * 2
	heightNum := suffix[:2]

	var lines []entities.PartLine
	if step >= tieredSideStep {
		lines = append(lines,
			entities.PartLine{PartNo: entities.PartNumber(prefix + suffix), Quantity: full, Category: entities.CategoryPanels, Description: "Side Panel (Top)"},
			entities.PartLine{PartNo: entities.PartNumber(prefix + suffix + "L"), Quantity: corners, Category: entities.CategoryPanels, Description: "Corner Side Panel (Top Left)"},
			entities.PartLine{PartNo: entities.PartNumber(prefix + suffix + "R"), Quantity: corners, Category: entities.CategoryPanels, Description: "Corner Side Panel (Top Right)"},
		)
		if step >= midTierStep {
			lines = append(lines,
				entities.PartLine{PartNo: "SF30M", Quantity: full, Category: entities.CategoryPanels, Description: "Side Panel (Mid)"},
				entities.PartLine{PartNo: "SF30ML", Quantity: corners, Category: entities.CategoryPanels, Description: "Corner Side Panel (Mid Left)"},
				entities.PartLine{PartNo: "SF30MR", Quantity: corners, Category: entities.CategoryPanels, Description: "Corner Side Panel (Mid Right)"},
			)
		}
		code := strconv.Itoa(step * 5)
		lines = append(lines,
			entities.PartLine{PartNo: entities.PartNumber("SF" + code + "L"), Quantity: full, Category: entities.CategoryPanels, Description: "Side Panel (Low)"},
			entities.PartLine{PartNo: entities.PartNumber("SF" + code + "LL"), Quantity: corners, Category: entities.CategoryPanels, Description: "Corner Side Panel (Low Left)"},
			entities.PartLine{PartNo: entities.PartNumber("SF" + code + "LR"), Quantity: corners, Category: entities.CategoryPanels, Description: "Corner Side Panel (Low Right)"},
		)
	} else {
		lines = append(lines,
			entities.PartLine{PartNo: entities.PartNumber(prefix + suffix), Quantity: full, Category: entities.CategoryPanels, Description: "Side Panel"},
			entities.PartLine{PartNo: entities.PartNumber(prefix + suffix + "L"), Quantity: corners, Category: entities.CategoryPanels, Description: "Corner Side Panel (Left)"},
			entities.PartLine{PartNo: entities.PartNumber(prefix + suffix + "R"), Quantity: corners, Category: entities.CategoryPanels, Description: "Corner Side Panel (Right)"},
		)
	}

	lines = append(lines, entities.PartLine{
		PartNo:   entities.PartNumber("SH" + heightNum + "M"),
		Quantity: half,
		Category: entities.CategoryPanels, Description: "Half Side Panel 0.5x1m",
	})
	return lines
}

// calcPartitionPanels emits the internal dividing walls. Tiered tanks
// use the dedicated partition top/mid/low parts; single-tier tanks tile
// the wall from side panels.
func calcPartitionPanels(d entities.DerivedDimensions, step int, opts entities.PanelOptions) []entities.PartLine {
	var lines []entities.PartLine
	row := d.WidthInt * d.Partitions

	if step >= tieredSideStep {
		lines = append(lines, entities.PartLine{
			PartNo: "PL20TCB", Quantity: row,
			Category: entities.CategoryPanels, Description: "Partition Panel (Top)",
		})
		if step >= midTierStep {
			lines = append(lines, entities.PartLine{
				PartNo: "SN30M", Quantity: row,
				Category: entities.CategoryPanels, Description: "Partition Panel (Mid)",
			})
		}
		lines = append(lines, entities.PartLine{
			PartNo:   entities.PartNumber("PF" + strconv.Itoa(step*5) + "M"),
			Quantity: row,
			Category: entities.CategoryPanels, Description: "Partition Panel (Low)",
		})
		return lines
	}

	prefix := "SL"
	if opts.UsePartition1x1 {
		prefix = "SF"
	}
	suffix := sideSuffix(step)

	full := d.WidthInt * d.HeightInt * d.Partitions
	half := int(d.WidthFrac * float64(d.HeightInt) * float64(d.Partitions))
	if d.HeightFrac > 0 {
		full += d.WidthInt * d.Partitions
		half += int(d.WidthFrac * float64(d.Partitions))
	}

	lines = append(lines,
		entities.PartLine{PartNo: entities.PartNumber(prefix + suffix), Quantity: full, Category: entities.CategoryPanels, Description: "Partition Panel"},
		entities.PartLine{PartNo: entities.PartNumber("SH" + suffix[:2] + "M"), Quantity: half, Category: entities.CategoryPanels, Description: "Half Partition Panel"},
	)
	return lines
}

// dropEmpty filters lines whose quantity is not positive.
func dropEmpty(lines []entities.PartLine) []entities.PartLine {
	out := lines[:0]
	for _, l := range lines {
		if l.Quantity > 0 {
			out = append(out, l)
		}
	}
	return out
}
