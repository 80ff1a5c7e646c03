package entities

// Option enumerations. Every selector the request carries as a string
// decodes here into a closed variant type; unknown strings fail closed
// to the documented default and report ok=false so the boundary can log
// a configuration warning. The engine only ever sees decoded values.

// SkidType selects the structural base-frame profile.
type SkidType int

const (
	SkidDefault SkidType = iota // height-based auto selection
	SkidAngle75
	SkidChannel125
	SkidChannel150
	SkidNone // "Except SKB": tank ships without a skid
)

// String method for SkidType enum
func (s SkidType) String() string {
	switch s {
	case SkidDefault:
		return "Default"
	case SkidAngle75:
		return "Angle 75"
	case SkidChannel125:
		return "Channel 125"
	case SkidChannel150:
		return "Channel 150"
	case SkidNone:
		return "Except SKB"
	default:
		return "Unknown"
	}
}

// ParseSkidType decodes a skid selection string. Unknown values
// default to SkidDefault.
func ParseSkidType(s string) (SkidType, bool) {
	switch s {
	case "Default":
		return SkidDefault, true
	case "Angle 75":
		return SkidAngle75, true
	case "Channel 125":
		return SkidChannel125, true
	case "Channel 150":
		return SkidChannel150, true
	case "Except SKB":
		return SkidNone, true
	}
	return SkidDefault, false
}

// SkidTypeNames lists the accepted skid selection strings.
func SkidTypeNames() []string {
	return []string{"Default", "Angle 75", "Channel 125", "Channel 150", "Except SKB"}
}

// BoltMaterial is the fastener material family for one bolt side.
type BoltMaterial int

const (
	BoltMaterialNone BoltMaterial = iota
	BoltMaterialHDG               // hot-dip galvanized, part suffix Z
	BoltMaterialSS304             // stainless, part suffix SA4
)

// PartSuffix returns the part-number material suffix.
func (m BoltMaterial) PartSuffix() string {
	switch m {
	case BoltMaterialHDG:
		return "Z"
	case BoltMaterialSS304:
		return "SA4"
	}
	return ""
}

// BoltOption selects the external/internal fastener material pairing.
// The reference model prices SS316 selections with SA4 (SS304) part
// numbers, so both stainless grades decode to the same material code.
type BoltOption int

const (
	BoltExtHDGIntSS304RFHDG BoltOption = iota + 1
	BoltExtHDGIntSS304RFSS304
	BoltExtSS304IntSS316
	BoltExtHDGIntSS316
	BoltExtSS304IntSS304
	BoltExtSS316IntSS316
	BoltExceptAll       // suppress every bolt line
	BoltExceptAssembly  // suppress external panel assembly bolts only
)

var boltOptionNames = map[BoltOption]string{
	BoltExtHDGIntSS304RFHDG:   "EXT:HDG/INT:SS304+R/F:HDG",
	BoltExtHDGIntSS304RFSS304: "EXT:HDG/INT:SS304+R/F:SS304",
	BoltExtSS304IntSS316:      "EXT:SS304/INT:SS316",
	BoltExtHDGIntSS316:        "EXT:HDG/INT:SS316",
	BoltExtSS304IntSS304:      "EXT:SS304/INT:SS304",
	BoltExtSS316IntSS316:      "EXT:SS316/INT:SS316",
	BoltExceptAll:             "Except All Bolts",
	BoltExceptAssembly:        "Except Panel Assemble Bolts",
}

// String method for BoltOption enum
func (b BoltOption) String() string {
	if name, ok := boltOptionNames[b]; ok {
		return name
	}
	return "Unknown"
}

// ParseBoltOption decodes a bolts/nuts selection string. Unknown values
// default to BoltExtHDGIntSS316 (the reference model's default).
func ParseBoltOption(s string) (BoltOption, bool) {
	for opt, name := range boltOptionNames {
		if name == s {
			return opt, true
		}
	}
	return BoltExtHDGIntSS316, false
}

// BoltOptionNames lists the accepted bolts/nuts selection strings.
func BoltOptionNames() []string {
	names := make([]string, 0, len(boltOptionNames))
	for opt := BoltExtHDGIntSS304RFHDG; opt <= BoltExceptAssembly; opt++ {
		names = append(names, boltOptionNames[opt])
	}
	return names
}

// ExternalMaterial resolves the material for panel assembly bolts.
func (b BoltOption) ExternalMaterial() BoltMaterial {
	switch b {
	case BoltExtSS304IntSS316, BoltExtSS304IntSS304, BoltExtSS316IntSS316:
		return BoltMaterialSS304
	case BoltExceptAll, BoltExceptAssembly:
		return BoltMaterialNone
	default:
		return BoltMaterialHDG
	}
}

// InternalMaterial resolves the material for internal/roof bolts.
func (b BoltOption) InternalMaterial() BoltMaterial {
	switch b {
	case BoltExceptAll, BoltExceptAssembly:
		return BoltMaterialNone
	default:
		return BoltMaterialSS304
	}
}

// TieRodSpec selects the tie-rod thread size.
type TieRodSpec int

const (
	TieRodM12 TieRodSpec = iota
	TieRodM16
)

// PartPrefix returns the rod-size prefix used in tie-rod part numbers.
func (s TieRodSpec) PartPrefix() string {
	if s == TieRodM16 {
		return "16M"
	}
	return "12M"
}

// ParseTieRodSpec decodes a tie-rod spec string. The two staged-rod
// variants of the reference model use M12 stock, so they decode to M12.
// Unknown values default to M12.
func ParseTieRodSpec(s string) (TieRodSpec, bool) {
	switch s {
	case "M12", "3mH_Tie_Rod(1+1)", "3mH_Tie_Rod(2+1)":
		return TieRodM12, true
	case "M16":
		return TieRodM16, true
	}
	return TieRodM12, false
}

// TieRodSpecNames lists the accepted tie-rod spec strings.
func TieRodSpecNames() []string {
	return []string{"M12", "M16", "3mH_Tie_Rod(1+1)", "3mH_Tie_Rod(2+1)"}
}

// LevelIndicatorType selects the level indicator option.
type LevelIndicatorType int

const (
	LevelIndicatorGlass LevelIndicatorType = iota
	LevelIndicatorSensor
	LevelIndicatorNone
)

// ParseLevelIndicator decodes a level indicator selection string.
// Unknown values default to the glass type.
func ParseLevelIndicator(s string) (LevelIndicatorType, bool) {
	switch s {
	case "General":
		return LevelIndicatorGlass, true
	case "Sensor":
		return LevelIndicatorSensor, true
	case "No needed":
		return LevelIndicatorNone, true
	}
	return LevelIndicatorGlass, false
}

// LevelIndicatorNames lists the accepted level indicator strings.
func LevelIndicatorNames() []string {
	return []string{"General", "Sensor", "No needed"}
}

// LadderMaterial selects internal/external ladder construction. The
// selection only changes the part-number suffix, never the count.
type LadderMaterial int

const (
	LadderGRP LadderMaterial = iota // FRP/GRP, internal only
	LadderStainless
	LadderHDG // galvanized, external only
)

// ParseInternalLadderMaterial decodes the internal ladder material.
// Unknown values default to GRP.
func ParseInternalLadderMaterial(s string) (LadderMaterial, bool) {
	switch s {
	case "GRP", "FRP":
		return LadderGRP, true
	case "SS304", "SS316L":
		return LadderStainless, true
	}
	return LadderGRP, false
}

// ParseExternalLadderMaterial decodes the external ladder material.
// Unknown values default to HDG.
func ParseExternalLadderMaterial(s string) (LadderMaterial, bool) {
	switch s {
	case "HDG":
		return LadderHDG, true
	case "SS304", "SS316":
		return LadderStainless, true
	}
	return LadderHDG, false
}

// InternalLadderSuffix is the part-number suffix for an internal
// ladder of this material.
func (m LadderMaterial) InternalLadderSuffix() string {
	if m == LadderGRP {
		return "FI"
	}
	return "SI"
}

// ExternalLadderSuffix is the part-number suffix for an external
// ladder of this material.
func (m LadderMaterial) ExternalLadderSuffix() string {
	if m == LadderStainless {
		return "SO"
	}
	return "ZO"
}

// PanelOptions holds the decoded panel configuration choices.
type PanelOptions struct {
	Insulated          bool
	UseSidePanel1x1    bool // SF side panels instead of SL
	UsePartition1x1    bool // SF partition panels instead of SL
}

// AccessoryOptions holds the decoded accessory choices.
type AccessoryOptions struct {
	LevelIndicator LevelIndicatorType
	InternalLadder LadderMaterial
	ExternalLadder LadderMaterial
}
