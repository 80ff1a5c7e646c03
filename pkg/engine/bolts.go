package engine

import (
	"github.com/panelworks/tankquote/pkg/domain/entities"
)

// CalcBolts computes the fastener set. External bolts clamp the shell
// from outside in the selected material; internal bolts and the rubber
// seal bolts fasten partition reinforcing and are always stainless.
// The reinforcing summary gates the partition rubber bolts: they only
// appear when partition plates exist to receive them.
func CalcBolts(d entities.DerivedDimensions, opt entities.BoltOption, reinf ReinforcingSummary, diag *Diagnostics) []entities.PartLine {
	var lines []entities.PartLine
	if ext := opt.ExternalMaterial(); ext != entities.BoltMaterialNone {
		lines = append(lines, calcExternalBolts(d, ext, diag)...)
	}
	if in := opt.InternalMaterial(); in != entities.BoltMaterialNone {
		lines = append(lines, calcInternalBolts(d, in, reinf)...)
	}
	return dropEmpty(lines)
}

func calcExternalBolts(d entities.DerivedDimensions, mat entities.BoltMaterial, diag *Diagnostics) []entities.PartLine {
	suffix := mat.PartSuffix()
	hp := d.HalfPerimeter()
	perimeter := d.Perimeter()
	joints := d.InternalJoints()
	long := d.LengthTotal > 10
	tall := d.HeightStep >= midTierStep

	// M14x40 bolts the vertical shell seams. The base row follows the
	// footprint; the column bolts step up per meter of height, with the
	// per-meter rate dropping once the 4 m reinforcing takes the load.
	m1440 := hp + 2*joints
	if d.HeightInt >= 4 {
		m1440 += 96 + 10*(d.HeightInt-3)
	} else {
		m1440 += 32 * d.HeightInt
	}
	if d.Partitions > 0 {
		m1440 *= 2
	}
	if tall && long {
		m1440 += int(float64(d.Partitions) * (d.LengthTotal - 10) * bolt1440LongTallFactor)
	}

	// M10x35 joins the roof and bottom panels along the internal grid
	// lines; extra height adds one row per meter above 2 m.
	var m1035 int
	if d.Partitions > 0 {
		m1035 = 10 * hp
		if long {
			m1035 += 14
		} else {
			m1035 += 16
		}
	} else {
		m1035 = 8 * joints * 2
		if d.HeightInt > 2 {
			m1035 += (8*(hp-2) + 4) * (d.HeightInt - 2)
		}
	}

	m1050 := 8*perimeter + 8*(perimeter+2*joints)*d.HeightInt
	if d.Partitions > 0 {
		m1050 += 28 * d.Partitions * d.WidthInt
		if tall {
			m1050 += d.Partitions * d.WidthInt * 21 * (d.HeightInt - 2)
		}
	}

	m1240 := 4 * hp

	// M14x120 round-head bolts carry the corner frames and the tall-tank
	// reinforcing rows.
	m14120 := 32
	if d.HeightInt > 2 {
		m14120 += 8 * hp * (d.HeightInt - 2)
	}
	if d.HeightInt > 3 {
		m14120 += 8 * (hp - 2) * (d.HeightInt - 3)
	}
	m14120 += d.Partitions * 8
	if tall && long {
		m14120 += d.Partitions * 2
	}

	return []entities.PartLine{
		{PartNo: entities.PartNumber("WBT-1440" + suffix), Quantity: diag.clamp(m1440), Category: entities.CategoryBoltsNuts, Description: "Bolt M14x40"},
		{PartNo: entities.PartNumber("WBT-1035" + suffix), Quantity: diag.clamp(m1035), Category: entities.CategoryBoltsNuts, Description: "Bolt M10x35"},
		{PartNo: entities.PartNumber("WBT-1050" + suffix), Quantity: diag.clamp(m1050), Category: entities.CategoryBoltsNuts, Description: "Bolt M10x50"},
		{PartNo: entities.PartNumber("WBT-1240" + suffix), Quantity: m1240, Category: entities.CategoryBoltsNuts, Description: "Bolt M12x40"},
		{PartNo: "WBT-14120RD", Quantity: m14120, Category: entities.CategoryBoltsNuts, Description: "Bolt M14x120 Round Head"},
	}
}

func calcInternalBolts(d entities.DerivedDimensions, mat entities.BoltMaterial, reinf ReinforcingSummary) []entities.PartLine {
	suffix := mat.PartSuffix()
	hp := d.HalfPerimeter()
	perimeter := d.Perimeter()
	tall := d.HeightStep >= midTierStep
	long := d.LengthTotal > 10

	if d.Partitions == 0 {
		return []entities.PartLine{
			{PartNo: entities.PartNumber("WBT-1035" + suffix), Quantity: 8 * perimeter, Category: entities.CategoryBoltsNuts, Description: "Bolt M10x35"},
			{PartNo: entities.PartNumber("WBT-1050" + suffix), Quantity: 8 * hp, Category: entities.CategoryBoltsNuts, Description: "Bolt M10x50"},
		}
	}

	pw := d.Partitions * d.WidthInt

	m1035 := 8*perimeter + pw*10
	if tall {
		m1035 += int(float64(d.Partitions) * float64(hp) * float64(d.HeightInt-2) * bolt1035PartitionTallFactor)
	}

	m1050 := 8*hp + pw*d.HeightInt*16 + d.Partitions*16
	if tall && long {
		m1050 += int(float64(pw) * bolt1050PartitionTallFactor * float64(d.HeightInt-2))
	}

	lines := []entities.PartLine{
		{PartNo: entities.PartNumber("WBT-1035" + suffix), Quantity: m1035, Category: entities.CategoryBoltsNuts, Description: "Bolt M10x35"},
		{PartNo: entities.PartNumber("WBT-1050" + suffix), Quantity: m1050, Category: entities.CategoryBoltsNuts, Description: "Bolt M10x50"},
	}

	// Rubber seal bolts fasten the partition sealing rubber onto the
	// partition reinforcing plates, so they drop out together.
	if reinf.HasPartitionParts {
		lines = append(lines,
			entities.PartLine{
				PartNo:   "WBT-1058RSA4",
				Quantity: int(float64(pw) * pick(tall, boltRubber1058FactorTall, boltRubber1058Factor)),
				Category: entities.CategoryBoltsNuts, Description: "Bolt M10x58 with Rubber Seal",
			},
			entities.PartLine{
				PartNo:   "WBT-14120RSA4",
				Quantity: int(float64(pw) * pick(tall, boltRubber14120FactorTall, boltRubber14120Factor)),
				Category: entities.CategoryBoltsNuts, Description: "Bolt M14x120 with Rubber Seal",
			},
		)
	}

	return lines
}
