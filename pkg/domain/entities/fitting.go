package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// FittingSpec is one customer-specified fitting: a type code from the
// closed fitting table, a nominal size in millimeters and a count.
type FittingSpec struct {
	Type     string `json:"type"`
	Size     int    `json:"size"`
	Quantity int    `json:"quantity"`
}

// FittingTypes is the closed fitting-family table. Unknown type codes
// fail closed to the suction/drain family ("SD").
var FittingTypes = map[string]struct {
	Prefix      string
	Description string
	Sizes       []int
}{
	"SF":  {Prefix: "WSF", Description: "Slant Flange", Sizes: []int{65, 80, 100, 125, 150}},
	"FL":  {Prefix: "WFL", Description: "Flat Flange", Sizes: []int{65, 80, 100, 125, 150, 200}},
	"SD":  {Prefix: "WSD", Description: "Suction/Drain", Sizes: []int{50, 65, 80, 100, 125, 150}},
	"OF":  {Prefix: "WOF", Description: "Overflow", Sizes: []int{50, 65, 80, 100, 125, 150}},
	"SB":  {Prefix: "WSB", Description: "Socket Brass", Sizes: []int{20, 25, 40, 50}},
	"IN":  {Prefix: "WIN", Description: "Inlet", Sizes: []int{50, 65, 80, 100, 125, 150}},
	"OUT": {Prefix: "WOT", Description: "Outlet", Sizes: []int{50, 65, 80, 100, 125, 150}},
}

// DefaultFittingType is the fail-closed family for unknown type codes.
const DefaultFittingType = "SD"

// FittingPartNumber builds the catalog part number for a fitting:
// {prefix}-{size:03d}A, e.g. WSD-050A.
func FittingPartNumber(typeCode string, size int) PartNumber {
	info, ok := FittingTypes[typeCode]
	if !ok {
		info = FittingTypes[DefaultFittingType]
	}
	return PartNumber(fmt.Sprintf("%s-%03dA", info.Prefix, size))
}

// FittingDescription builds the human description for a fitting.
func FittingDescription(typeCode string, size int) string {
	info, ok := FittingTypes[typeCode]
	if !ok {
		info = FittingTypes[DefaultFittingType]
	}
	return fmt.Sprintf("%s %dmm", info.Description, size)
}

// ParseFittingCode splits a request fitting code such as "WSD-050A"
// back into its type code and size. Malformed codes fail closed to a
// 50 mm suction/drain fitting.
func ParseFittingCode(code string) (typeCode string, size int) {
	typeCode, size = DefaultFittingType, 50
	dash := strings.Index(code, "-")
	if !strings.HasPrefix(code, "W") || dash < 0 {
		return typeCode, size
	}
	prefix := code[:dash]
	for tc, info := range FittingTypes {
		if info.Prefix == prefix {
			typeCode = tc
			break
		}
	}
	digits := strings.TrimSuffix(code[dash+1:], "A")
	if n, err := strconv.Atoi(digits); err == nil && n > 0 {
		size = n
	}
	return typeCode, size
}

// FittingCatalog lists every orderable fitting option.
func FittingCatalog() []FittingSpec {
	var out []FittingSpec
	for _, tc := range []string{"SF", "FL", "SD", "OF", "SB", "IN", "OUT"} {
		for _, size := range FittingTypes[tc].Sizes {
			out = append(out, FittingSpec{Type: tc, Size: size})
		}
	}
	return out
}
