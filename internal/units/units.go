// Package units holds the numeric value types shared by the grammars (length,
// percentage, angle, time) and the readers that build them from single tokens.
package units

import (
	"fmt"
	"math"
	"strconv"

	"bennypowers.dev/cssvalues/internal/collections"
)

// LengthUnit is an absolute, font-relative, viewport or container unit
type LengthUnit string

// AngleUnit is one of deg, rad, grad, turn
type AngleUnit string

// TimeUnit is one of s, ms
type TimeUnit string

const (
	Px LengthUnit = "px"
	Em LengthUnit = "em"

	Deg  AngleUnit = "deg"
	Rad  AngleUnit = "rad"
	Grad AngleUnit = "grad"
	Turn AngleUnit = "turn"

	Seconds      TimeUnit = "s"
	Milliseconds TimeUnit = "ms"
)

var (
	absoluteUnits = []string{"px", "cm", "mm", "Q", "in", "pc", "pt"}
	fontUnits     = []string{"em", "rem", "ex", "rex", "cap", "rcap", "ch", "rch", "ic", "ric", "lh", "rlh"}
	viewportUnits = []string{
		"vw", "vh", "vi", "vb", "vmin", "vmax",
		"svw", "svh", "svi", "svb", "svmin", "svmax",
		"lvw", "lvh", "lvi", "lvb", "lvmin", "lvmax",
		"dvw", "dvh", "dvi", "dvb", "dvmin", "dvmax",
	}
	containerUnits = []string{"cqw", "cqh", "cqi", "cqb", "cqmin", "cqmax"}

	// LengthUnits lists every accepted length unit
	LengthUnits = collections.NewKeywords(concat(absoluteUnits, fontUnits, viewportUnits, containerUnits)...)
	// AngleUnits lists every accepted angle unit
	AngleUnits = collections.NewKeywords(string(Deg), string(Rad), string(Grad), string(Turn))
	// TimeUnits lists every accepted time unit
	TimeUnits = collections.NewKeywords(string(Seconds), string(Milliseconds))
)

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// LengthPercentage is either a Length or a Percentage
type LengthPercentage interface {
	lengthPercentage()
	Number() float64
	String() string
}

// Length is a number with a length unit
type Length struct {
	Value float64
	Unit  LengthUnit
}

// Percentage is a number of hundredths
type Percentage struct {
	Value float64
}

// Angle is a number with an angle unit
type Angle struct {
	Value float64
	Unit  AngleUnit
}

// Time is a number with a time unit
type Time struct {
	Value float64
	Unit  TimeUnit
}

func (Length) lengthPercentage()     {}
func (Percentage) lengthPercentage() {}

// Number returns the numeric part
func (l Length) Number() float64 { return l.Value }

// Number returns the numeric part
func (p Percentage) Number() float64 { return p.Value }

func (l Length) String() string     { return FormatNumber(l.Value) + string(l.Unit) }
func (p Percentage) String() string { return FormatNumber(p.Value) + "%" }
func (a Angle) String() string      { return FormatNumber(a.Value) + string(a.Unit) }
func (t Time) String() string       { return FormatNumber(t.Value) + string(t.Unit) }

// Degrees converts the angle to degrees
func (a Angle) Degrees() float64 {
	switch a.Unit {
	case Rad:
		return a.Value * 180 / math.Pi
	case Grad:
		return a.Value * 0.9
	case Turn:
		return a.Value * 360
	}
	return a.Value
}

// Milliseconds converts the time to milliseconds
func (t Time) Milliseconds() float64 {
	if t.Unit == Seconds {
		return t.Value * 1000
	}
	return t.Value
}

// FormatNumber renders a number in its shortest round-tripping decimal form,
// without exponent and with negative zero printed as 0
func FormatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Validate checks the unit is a known length unit
func (l Length) Validate() error {
	if c, ok := LengthUnits.Lookup(string(l.Unit)); !ok || c != string(l.Unit) {
		return fmt.Errorf("Invalid length unit: %q", string(l.Unit))
	}
	return finite(l.Value)
}

// Validate checks the value is finite
func (p Percentage) Validate() error {
	return finite(p.Value)
}

// Validate checks the unit is a known angle unit
func (a Angle) Validate() error {
	if c, ok := AngleUnits.Lookup(string(a.Unit)); !ok || c != string(a.Unit) {
		return fmt.Errorf("Invalid angle unit: %q", string(a.Unit))
	}
	return finite(a.Value)
}

// Validate checks the unit is a known time unit
func (t Time) Validate() error {
	if c, ok := TimeUnits.Lookup(string(t.Unit)); !ok || c != string(t.Unit) {
		return fmt.Errorf("Invalid time unit: %q", string(t.Unit))
	}
	return finite(t.Value)
}

// ValidateLengthPercentage validates either member of the union
func ValidateLengthPercentage(lp LengthPercentage) error {
	switch v := lp.(type) {
	case Length:
		return v.Validate()
	case Percentage:
		return v.Validate()
	case nil:
		return fmt.Errorf("missing length-percentage")
	}
	return fmt.Errorf("unknown length-percentage %T", lp)
}

func finite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("value must be finite, got %v", v)
	}
	return nil
}

// FormatFraction renders fraction as a percentage using the shortest decimal
// that reads back to exactly the same fraction when divided by 100
func FormatFraction(fraction float64) string {
	scaled := fraction * 100
	for prec := 1; prec <= 17; prec++ {
		p, err := strconv.ParseFloat(strconv.FormatFloat(scaled, 'g', prec, 64), 64)
		if err == nil && p/100 == fraction {
			return FormatNumber(p) + "%"
		}
	}
	return FormatNumber(scaled) + "%"
}
