package entities

import (
	"fmt"
	"math"
)

// Dimension bounds enforced at the request boundary. The engine assumes
// pre-validated input.
const (
	MaxWidthM  = 20.0
	MaxLengthM = 20.0
	MaxHeightM = 10.0
)

// TankDimensions holds the raw parametric description of one tank.
// All dimensions are meters on a half-meter grid. Length1 is mandatory;
// Length2-4 are optional compartment lengths, each non-zero value adds
// one partition wall.
type TankDimensions struct {
	Width    float64 `json:"width"`
	Length1  float64 `json:"length1"`
	Length2  float64 `json:"length2"`
	Length3  float64 `json:"length3"`
	Length4  float64 `json:"length4"`
	Height   float64 `json:"height"`
	Quantity int     `json:"quantity"`
}

// Validate checks the boundary invariants: positive mandatory fields,
// maximum bounds, half-meter granularity and a positive tank count.
func (d TankDimensions) Validate() error {
	if d.Width <= 0 || d.Width > MaxWidthM {
		return fmt.Errorf("width %.2f out of range (0, %g]", d.Width, MaxWidthM)
	}
	if d.Length1 <= 0 || d.Length1 > MaxLengthM {
		return fmt.Errorf("length1 %.2f out of range (0, %g]", d.Length1, MaxLengthM)
	}
	for i, l := range []float64{d.Length2, d.Length3, d.Length4} {
		if l < 0 || l > MaxLengthM {
			return fmt.Errorf("length%d %.2f out of range [0, %g]", i+2, l, MaxLengthM)
		}
	}
	if d.Height <= 0 || d.Height > MaxHeightM {
		return fmt.Errorf("height %.2f out of range (0, %g]", d.Height, MaxHeightM)
	}
	if d.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", d.Quantity)
	}
	for _, v := range []float64{d.Width, d.Length1, d.Length2, d.Length3, d.Length4, d.Height} {
		if !onHalfMeterGrid(v) {
			return fmt.Errorf("dimension %.3f is not on the 0.5 m grid", v)
		}
	}
	return nil
}

func onHalfMeterGrid(v float64) bool {
	steps := v * 2
	return math.Abs(steps-math.Round(steps)) < 1e-9
}

// Lengths returns the four length segments as a fixed array.
func (d TankDimensions) Lengths() [4]float64 {
	return [4]float64{d.Length1, d.Length2, d.Length3, d.Length4}
}

// DerivedDimensions carries the integer/fraction decomposition of the
// raw dimensions plus the aggregates nearly every formula module keys
// on. It is computed once per calculation and never mutated.
//
// Heights are additionally represented as HeightStep, the number of
// half-meter increments. All height-gated formulas branch on that
// integer step so no module ever compares floating heights for
// equality.
type DerivedDimensions struct {
	Width  float64
	Height float64

	WidthInt  int     // TRUNC(width)
	WidthFrac float64 // width - WidthInt, 0 or 0.5

	LengthInt  [4]int
	LengthFrac [4]float64

	HeightInt  int
	HeightFrac float64
	HeightStep int // round(height * 2)

	LengthTotal    float64 // sum of all segments
	LengthIntTotal int     // sum of integer parts

	Partitions int // count of non-zero optional segments, 0-3

	segments [4]float64
}

// Derive computes the shared dimension data. Integer parts use
// truncation toward zero, matching the reference model's TRUNC.
func Derive(d TankDimensions) DerivedDimensions {
	dd := DerivedDimensions{
		Width:    d.Width,
		Height:   d.Height,
		segments: d.Lengths(),
	}
	dd.WidthInt = int(d.Width)
	dd.WidthFrac = d.Width - float64(dd.WidthInt)

	for i, l := range dd.segments {
		dd.LengthInt[i] = int(l)
		dd.LengthFrac[i] = l - float64(dd.LengthInt[i])
		dd.LengthTotal += l
		dd.LengthIntTotal += dd.LengthInt[i]
	}

	dd.HeightInt = int(d.Height)
	dd.HeightFrac = d.Height - float64(dd.HeightInt)
	dd.HeightStep = int(math.Round(d.Height * 2))

	for _, l := range dd.segments[1:] {
		if l > 0 {
			dd.Partitions++
		}
	}
	return dd
}

// Segment returns the raw length of segment i (0-based).
func (d DerivedDimensions) Segment(i int) float64 { return d.segments[i] }

// WidthFracCount is 1 when the width carries a half-meter remainder.
func (d DerivedDimensions) WidthFracCount() int {
	if d.WidthFrac > 0 {
		return 1
	}
	return 0
}

// LengthFracCount is the number of length segments carrying a
// half-meter remainder.
func (d DerivedDimensions) LengthFracCount() int {
	n := 0
	for _, f := range d.LengthFrac {
		if f > 0 {
			n++
		}
	}
	return n
}

// HalfPerimeter is WidthInt + LengthIntTotal, the aggregate most
// formulas call the perimeter base.
func (d DerivedDimensions) HalfPerimeter() int {
	return d.WidthInt + d.LengthIntTotal
}

// Perimeter is 2 * HalfPerimeter.
func (d DerivedDimensions) Perimeter() int {
	return 2 * d.HalfPerimeter()
}

// InternalJoints counts the interior 1 m grid lines of the footprint.
func (d DerivedDimensions) InternalJoints() int {
	return maxInt(0, d.WidthInt-1) + maxInt(0, d.LengthIntTotal-1)
}

// LengthPositions counts the interior grid lines along the length.
func (d DerivedDimensions) LengthPositions() int {
	return maxInt(0, d.LengthIntTotal-1)
}

// FootprintArea is the raw width x total-length area in square meters.
func (d DerivedDimensions) FootprintArea() float64 {
	return d.Width * d.LengthTotal
}

// HeightMM is the height expressed in millimeters, used in several
// part-number patterns (ladders, roof supporters, level indicators).
func (d DerivedDimensions) HeightMM() int {
	return d.HeightStep * 500
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
