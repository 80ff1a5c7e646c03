package engine

import (
	"strconv"

	"github.com/panelworks/tankquote/pkg/domain/entities"
)

// Coefficient and lookup tables for every formula module. The control
// flow in the module files is fixed; recalibrating against the
// reference model should only ever touch values in this file.
//
// Heights are keyed by step index: step = round(height * 2), so 2.5 m
// is step 5 and 5.0 m is step 10.

// Panel height steps run from 1.0 m to 5.0 m in 0.5 m increments.
// Heights outside the table round to the nearest key.
const (
	minHeightStep = 2
	maxHeightStep = 10

	// Tanks at or above this step get top/low side tiers.
	tieredSideStep = 5
	// Tanks at or above this step additionally get a mid side tier.
	midTierStep = 8
)

// clampHeightStep snaps a step index to the supported panel table range.
func clampHeightStep(step int) int {
	if step < minHeightStep {
		return minHeightStep
	}
	if step > maxHeightStep {
		return maxHeightStep
	}
	return step
}

// bottomSuffix is the height-keyed suffix for bottom and drain panels:
// 10M, 15M, ... 50M.
func bottomSuffix(step int) string {
	return strconv.Itoa(clampHeightStep(step)*5) + "M"
}

// sideSuffix is the height-keyed suffix for side panels. Below the
// tiered range the suffix encodes the full height (10S..20S); tiered
// tanks alternate 15T/20T top panels by whether the height lands on a
// half meter.
func sideSuffix(step int) string {
	step = clampHeightStep(step)
	if step < tieredSideStep {
		return strconv.Itoa(step*5) + "S"
	}
	if step%2 == 1 {
		return "15T"
	}
	return "20T"
}

// cornerBracketQty is the shared WBR-9090-class corner bracket count,
// keyed by height step. Reused by the internal and external reinforcing
// sub-families and, through the reinforcing summary, by the bolts
// module.
var cornerBracketQty = map[int]int{
	5:  4,  // 2.5 m
	6:  4,  // 3.0 m
	7:  8,  // 3.5 m
	8:  8,  // 4.0 m
	9:  8,  // 4.5 m
	10: 12, // 5.0 m
}

// cornerBrackets looks up the corner bracket count for a height step,
// snapping to the nearest table key.
func cornerBrackets(step int) int {
	return cornerBracketQty[clampHeightStep(step)]
}

// tieRodTiers is the height-step to tier-multiplier rule: no rods below
// 2 m of standing water pressure, then roughly two extra runs per
// half-meter of height.
func tieRodTiers(step, heightInt int) int {
	switch {
	case step < 4:
		return 0
	case step == 4:
		return 1
	case step == 5:
		return 2
	default:
		return 2*heightInt - 3
	}
}

// standardRodLengths is the catalog of tie-rod stock lengths in
// millimeters. Dimensions snap to the nearest entry.
var standardRodLengths = []int{
	1880, 2280, 2380, 2780, 2880,
	3280, 3380, 3780, 3880,
	4000, 4280, 4380, 4780, 4880,
	5000,
}

// nearestRodLength snaps a span in millimeters to the closest stock
// length.
func nearestRodLength(mm int) int {
	best := standardRodLengths[0]
	for _, l := range standardRodLengths[1:] {
		if abs(l-mm) < abs(best-mm) {
			best = l
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// skidProfile is the resolved structural base-frame profile.
type skidProfile int

const (
	skidProfileNone skidProfile = iota
	skidProfileAngle75
	skidProfileChannel125
	skidProfileChannel150
)

// skidProfileParts carries the per-profile part-number fragments.
type skidProfileParts struct {
	LongSuffix     string // main longitudinal frames
	ShortSuffix    string // width frames
	MainConnector  entities.PartNumber
	CrossConnector entities.PartNumber
	SidePart       entities.PartNumber // side sub-frame
	CornerPart     entities.PartNumber // corner sub-frame
}

var skidParts = map[skidProfile]skidProfileParts{
	skidProfileAngle75: {
		LongSuffix:     "AL",
		ShortSuffix:    "AS",
		MainConnector:  "WBR-7575Z",
		CrossConnector: "WBR-0240Z",
		SidePart:       "WFF-0957AMZ",
		CornerPart:     "WFF-1063AMZ",
	},
	skidProfileChannel125: {
		LongSuffix:     "CL",
		ShortSuffix:    "CS",
		MainConnector:  "WBR-0120Z",
		CrossConnector: "WBR-21590Z",
		SidePart:       "WFF-0962AMZ",
		CornerPart:     "WFF-1053AMZ",
	},
	skidProfileChannel150: {
		LongSuffix:     "HCL",
		ShortSuffix:    "HCS",
		MainConnector:  "WBR-0150Z",
		CrossConnector: "WBR-22310Z",
		SidePart:       "WFF-0962AMZ",
		CornerPart:     "WFF-1053AMZ",
	},
}

// Liner coverage factors by footprint area bucket.
var linerFactors = []struct {
	AreaAbove float64
	Factor    float64
}{
	{100, 5.4},
	{50, 5.7},
	{0, 6.64},
}

// linerFactor picks the liner coverage factor for a footprint area.
func linerFactor(area float64) float64 {
	for _, b := range linerFactors {
		if area > b.AreaAbove {
			return b.Factor
		}
	}
	return linerFactors[len(linerFactors)-1].Factor
}

// Partition coefficient sets for the bolts and reinforcing modules.
// Names follow the reference sheet's part numbers.
const (
	boltRubber1058FactorTall    = 14.4
	boltRubber1058Factor        = 12.8
	boltRubber14120FactorTall   = 18.0
	boltRubber14120Factor       = 10.8
	bolt1035PartitionTallFactor = 4.2
	bolt1050PartitionTallFactor = 3.6
	bolt1440LongTallFactor      = 12.4

	reinf1760FactorLong     = 1.5
	reinf1760Factor         = 2.0
	reinf17160FactorLong    = 1.1
	reinf17160Factor        = 1.8
	reinf1616FactorTall     = 1.8
	reinf1616Factor         = 0.9
	reinf1780Factor         = 0.9
	reinf0880AngleFactor    = 0.9
	reinf0880PlateFactor    = 1.1
	reinf0950FactorTall     = 4.9
	reinf0950Factor         = 2.0
	reinf0950PlateFactor    = 2.1
	reinf1200Factor         = 0.9
	extPlateFactorLong      = 1.6
	extPlateFactor          = 1.4
	extCrossPlateLongFactor = 3.2

	tieRodPartitionSlope     = 4.565
	tieRodPartitionIntercept = -8.525
	tieRodAssemblyLargeComp  = 4.9

	tape50PartitionAreaFactor  = 6
	tape50PartitionPerimFactor = 10
	tape50LongTallFactor       = 5.8
)
