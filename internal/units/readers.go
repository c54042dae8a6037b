package units

import (
	"fmt"
	"math"

	"bennypowers.dev/cssvalues/internal/stream"
	"bennypowers.dev/cssvalues/internal/token"
)

// ParseNumber reads a unitless number
func ParseNumber(n token.Node) (float64, error) {
	if num, ok := n.(*token.Number); ok {
		return num.Value, nil
	}
	return 0, fmt.Errorf("Expected number, got %s", token.Describe(n))
}

// ParseInteger reads a unitless integer within the 32-bit signed range
func ParseInteger(n token.Node) (int, error) {
	v, err := ParseNumber(n)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("Expected integer, got %s", FormatNumber(v))
	}
	if math.Abs(v) > math.MaxInt32 {
		return 0, fmt.Errorf("Integer out of range, got %s", FormatNumber(v))
	}
	return int(v), nil
}

// ParseLength reads a length dimension. A unitless zero is read as 0px.
func ParseLength(n token.Node) (Length, error) {
	switch v := n.(type) {
	case *token.Dimension:
		unit, ok := LengthUnits.Lookup(v.Unit)
		if !ok {
			return Length{}, fmt.Errorf("Invalid length unit: %s", v.Unit)
		}
		return Length{Value: v.Value, Unit: LengthUnit(unit)}, nil
	case *token.Number:
		if v.Value == 0 {
			return Length{Value: 0, Unit: Px}, nil
		}
		return Length{}, fmt.Errorf("Length requires a unit, got %s", FormatNumber(v.Value))
	}
	return Length{}, fmt.Errorf("Expected length, got %s", token.Describe(n))
}

// ParsePercentage reads a percentage
func ParsePercentage(n token.Node) (Percentage, error) {
	if p, ok := n.(*token.Percentage); ok {
		return Percentage{Value: p.Value}, nil
	}
	return Percentage{}, fmt.Errorf("Expected percentage, got %s", token.Describe(n))
}

// ParseLengthPercentage reads a length or a percentage
func ParseLengthPercentage(n token.Node) (LengthPercentage, error) {
	if p, ok := n.(*token.Percentage); ok {
		return Percentage{Value: p.Value}, nil
	}
	switch n.(type) {
	case *token.Dimension, *token.Number:
		return ParseLength(n)
	}
	return nil, fmt.Errorf("Expected length or percentage, got %s", token.Describe(n))
}

// ParseAngle reads an angle dimension. A unitless zero is read as 0deg.
func ParseAngle(n token.Node) (Angle, error) {
	switch v := n.(type) {
	case *token.Dimension:
		unit, ok := AngleUnits.Lookup(v.Unit)
		if !ok {
			return Angle{}, fmt.Errorf("Invalid angle unit: %s", v.Unit)
		}
		return Angle{Value: v.Value, Unit: AngleUnit(unit)}, nil
	case *token.Number:
		if v.Value == 0 {
			return Angle{Value: 0, Unit: Deg}, nil
		}
		return Angle{}, fmt.Errorf("Angle requires a unit, got %s", FormatNumber(v.Value))
	}
	return Angle{}, fmt.Errorf("Expected angle, got %s", token.Describe(n))
}

// ParseTime reads a time dimension
func ParseTime(n token.Node) (Time, error) {
	if v, ok := n.(*token.Dimension); ok {
		unit, ok := TimeUnits.Lookup(v.Unit)
		if !ok {
			return Time{}, fmt.Errorf("Invalid time unit: %s", v.Unit)
		}
		return Time{Value: v.Value, Unit: TimeUnit(unit)}, nil
	}
	return Time{}, fmt.Errorf("Expected time, got %s", token.Describe(n))
}

// ParseTimeList reads a comma-separated list of single times, e.g. the value
// of transition-delay
func ParseTimeList(nodes []token.Node) ([]Time, error) {
	items, err := stream.ParseCommaSeparatedSingle(nodes)
	if err != nil {
		return nil, err
	}
	out := make([]Time, 0, len(items))
	for _, item := range items {
		t, err := ParseTime(item)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// FormatTimeList renders times joined by `, `
func FormatTimeList(times []Time) string {
	parts := make([]string, len(times))
	for i, t := range times {
		parts[i] = t.String()
	}
	return stream.JoinComma(parts)
}

// RequireNonNegative rejects values below zero for properties that forbid them
func RequireNonNegative(name string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%s must not be negative, got %s", name, FormatNumber(v))
	}
	return nil
}
