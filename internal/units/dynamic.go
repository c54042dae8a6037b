package units

import (
	"bennypowers.dev/cssvalues/internal/document"
)

// DecodeLengthPercentage reads {value, unit} where a unit of "%" selects a
// Percentage. Unit spelling is checked later by Validate.
func DecodeLengthPercentage(v any) (LengthPercentage, error) {
	f, err := document.AsFields(v)
	if err != nil {
		return nil, err
	}
	value, err := f.Float("value")
	if err != nil {
		return nil, err
	}
	unit, err := f.String("unit")
	if err != nil {
		return nil, err
	}
	if unit == "%" {
		return Percentage{Value: value}, nil
	}
	return Length{Value: value, Unit: LengthUnit(unit)}, nil
}

// DecodeLength reads {value, unit} as a Length
func DecodeLength(v any) (Length, error) {
	value, unit, err := decodeDimension(v)
	return Length{Value: value, Unit: LengthUnit(unit)}, err
}

// DecodeAngle reads {value, unit} as an Angle
func DecodeAngle(v any) (Angle, error) {
	value, unit, err := decodeDimension(v)
	return Angle{Value: value, Unit: AngleUnit(unit)}, err
}

// DecodeTime reads {value, unit} as a Time
func DecodeTime(v any) (Time, error) {
	value, unit, err := decodeDimension(v)
	return Time{Value: value, Unit: TimeUnit(unit)}, err
}

func decodeDimension(v any) (float64, string, error) {
	f, err := document.AsFields(v)
	if err != nil {
		return 0, "", err
	}
	value, err := f.Float("value")
	if err != nil {
		return 0, "", err
	}
	unit, err := f.String("unit")
	return value, unit, err
}

// EncodeLengthPercentage renders lp as {value, unit}
func EncodeLengthPercentage(lp LengthPercentage) document.Fields {
	switch v := lp.(type) {
	case Percentage:
		return document.Fields{"value": v.Value, "unit": "%"}
	case Length:
		return EncodeLength(v)
	}
	return nil
}

// EncodeLength renders l as {value, unit}
func EncodeLength(l Length) document.Fields {
	return document.Fields{"value": l.Value, "unit": string(l.Unit)}
}

// EncodeAngle renders a as {value, unit}
func EncodeAngle(a Angle) document.Fields {
	return document.Fields{"value": a.Value, "unit": string(a.Unit)}
}

// EncodeTime renders t as {value, unit}
func EncodeTime(t Time) document.Fields {
	return document.Fields{"value": t.Value, "unit": string(t.Unit)}
}
