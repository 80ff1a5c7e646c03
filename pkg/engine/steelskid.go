package engine

import (
	"fmt"
	"math"

	"github.com/panelworks/tankquote/pkg/domain/entities"
)

// resolveSkidProfile maps the skid selection to an actual profile. The
// default selection auto-picks by height: above 4.3 m the heavy 150
// channel, above 2.5 m the 125 channel, otherwise the light 75 angle.
func resolveSkidProfile(sel entities.SkidType, heightStep int) skidProfile {
	switch sel {
	case entities.SkidNone:
		return skidProfileNone
	case entities.SkidAngle75:
		return skidProfileAngle75
	case entities.SkidChannel125:
		return skidProfileChannel125
	case entities.SkidChannel150:
		return skidProfileChannel150
	}
	switch {
	case heightStep > 8: // > 4.3 m on the half-meter grid
		return skidProfileChannel150
	case heightStep > 5: // > 2.5 m
		return skidProfileChannel125
	case heightStep > 0:
		return skidProfileAngle75
	}
	return skidProfileNone
}

// CalcSteelSkid computes the structural base frame: connectors, main
// longitudinal frames, width frames, sub-frames, the liner and anchor
// brackets. The "except" selection contributes nothing to the BOM.
func CalcSteelSkid(d entities.DerivedDimensions, sel entities.SkidType) []entities.PartLine {
	profile := resolveSkidProfile(sel, d.HeightStep)
	if profile == skidProfileNone {
		return nil
	}
	parts := skidParts[profile]

	var lines []entities.PartLine

	mainBeams := int((d.Width + 1) * 2)
	lines = append(lines, entities.PartLine{
		PartNo: parts.MainConnector, Quantity: mainBeams,
		Category: entities.CategorySteelSkid, Description: "Steel Skid Connector",
	})

	crossBeams := 4
	if d.Width > 5 || d.LengthTotal > 5 {
		crossBeams = 8
	}
	lines = append(lines, entities.PartLine{
		PartNo: parts.CrossConnector, Quantity: crossBeams,
		Category: entities.CategorySteelSkid, Description: "Steel Skid Connector",
	})

	// Main longitudinal frames: 2 m stock for every full pair of
	// meters, 1 m stock for the odd remainder, one run per width line.
	runs := d.WidthInt + 1
	long2m := int(math.Floor(d.LengthTotal/2)) * runs
	long1m := int(math.Mod(d.LengthTotal, 2) * float64(runs))
	lines = append(lines,
		entities.PartLine{
			PartNo:   entities.PartNumber("WFF-1990" + parts.LongSuffix + "Z"),
			Quantity: long2m, Category: entities.CategorySteelSkid, Description: "Steel Skid(Main-L)",
		},
		entities.PartLine{
			PartNo:   entities.PartNumber("WFF-0990" + parts.LongSuffix + "Z"),
			Quantity: long1m, Category: entities.CategorySteelSkid, Description: "Steel Skid(Main-L)",
		},
	)

	lines = append(lines, calcWidthFrames(d, profile, parts)...)
	lines = append(lines, calcSubFrames(d, parts)...)

	liner := int(d.FootprintArea() * linerFactor(d.FootprintArea()))
	lines = append(lines, entities.PartLine{
		PartNo: "LNR-3.0T", Quantity: liner,
		Category: entities.CategorySteelSkid, Description: "Liner",
	})

	anchors := int(d.Width + d.LengthTotal)
	if d.HeightStep >= midTierStep {
		anchors *= 2
	}
	lines = append(lines, entities.PartLine{
		PartNo: "WBR-5010Z", Quantity: anchors,
		Category: entities.CategorySteelSkid, Description: "Anchor Bracket with bolt and nut set",
	})

	return dropEmpty(lines)
}

// calcWidthFrames emits the cross-width frames: a center frame row plus
// handed right/left side frames whose stock length depends on the
// profile and on whether the tank exceeds 5 m of width.
func calcWidthFrames(d entities.DerivedDimensions, profile skidProfile, parts skidProfileParts) []entities.PartLine {
	if d.Width < 2 {
		return nil
	}

	sideStock := 1560
	if d.Width > 5 {
		sideStock = 2060
	} else if profile == skidProfileAngle75 {
		sideStock = 1570
	}

	centerQty := 2
	if d.Width > 5 {
		centerQty = int(2 + (d.Width-5)*0.8)
	}

	lines := []entities.PartLine{{
		PartNo:   entities.PartNumber("WFF-2000" + parts.ShortSuffix + "Z"),
		Quantity: centerQty,
		Category: entities.CategorySteelSkid, Description: "Steel Skid(Main-W)",
	}}
	if d.Width >= 3 {
		lines = append(lines,
			entities.PartLine{
				PartNo:   entities.PartNumber(fmt.Sprintf("WFF-%d%sZR", sideStock, parts.ShortSuffix)),
				Quantity: 2, Category: entities.CategorySteelSkid, Description: "Steel Skid(Main-W)",
			},
			entities.PartLine{
				PartNo:   entities.PartNumber(fmt.Sprintf("WFF-%d%sZL", sideStock, parts.ShortSuffix)),
				Quantity: 2, Category: entities.CategorySteelSkid, Description: "Steel Skid(Main-W)",
			},
		)
	}
	return lines
}

// calcSubFrames emits the side, corner and center sub-frames. Counts
// switch formula at the 5 m and 10 m footprint marks, matching the
// reference sheet's piecewise rules.
func calcSubFrames(d entities.DerivedDimensions, parts skidProfileParts) []entities.PartLine {
	var side int
	if d.Width > 5 {
		side = (d.WidthInt - 3) * 2
		if d.LengthTotal > 10 {
			side *= 2
		}
	} else {
		side = (d.WidthInt - 1) * 2
	}

	var corner int
	switch {
	case d.LengthTotal > 10:
		corner = 4 + int(math.Ceil(d.LengthTotal/1.5))
	case d.LengthTotal > 5:
		corner = 4 + int(math.Ceil(d.LengthTotal/3))
	default:
		corner = 4
	}

	var center int
	if d.Width > 5 || d.LengthTotal > 5 {
		factor := 0.68
		if d.LengthTotal > 10 {
			factor = 0.726
		}
		center = int(math.Round(float64(d.WidthInt-1) * d.LengthTotal * factor))
	} else {
		center = (d.WidthInt - 1) * 2
	}

	return []entities.PartLine{
		{PartNo: parts.SidePart, Quantity: side, Category: entities.CategorySteelSkid, Description: "Steel Skid(Sub)"},
		{PartNo: parts.CornerPart, Quantity: corner, Category: entities.CategorySteelSkid, Description: "Steel Skid(Sub)"},
		{PartNo: "WFF-0994AMZ", Quantity: center, Category: entities.CategorySteelSkid, Description: "Steel Skid(Sub)"},
	}
}
