package radius

import (
	"fmt"

	"bennypowers.dev/cssvalues/internal/document"
	"bennypowers.dev/cssvalues/internal/units"
)

// Decode builds a BorderRadius from an object such as
// {horizontal: {top-left: {value: 4, unit: px}, ...}, vertical: {...}}
func Decode(f document.Fields) (BorderRadius, error) {
	h, err := f.Object("horizontal")
	if err != nil {
		return BorderRadius{}, err
	}
	br := BorderRadius{}
	if br.Horizontal, err = decodeCorners(h); err != nil {
		return BorderRadius{}, fmt.Errorf("horizontal: %w", err)
	}
	v, err := f.OptionalObject("vertical")
	if err != nil || v == nil {
		return br, err
	}
	vertical, err := decodeCorners(v)
	if err != nil {
		return BorderRadius{}, fmt.Errorf("vertical: %w", err)
	}
	br.Vertical = &vertical
	return br, nil
}

func decodeCorners(f document.Fields) (Corners, error) {
	var values [4]units.LengthPercentage
	for i, name := range cornerNames {
		raw, ok := f[name]
		if !ok {
			return Corners{}, &document.MissingFieldError{Field: name}
		}
		lp, err := units.DecodeLengthPercentage(raw)
		if err != nil {
			return Corners{}, fmt.Errorf("%s: %w", name, err)
		}
		values[i] = lp
	}
	return Corners{TopLeft: values[0], TopRight: values[1], BottomRight: values[2], BottomLeft: values[3]}, nil
}

// Encode renders br as an object, the inverse of Decode
func Encode(br BorderRadius) document.Fields {
	f := document.Fields{"horizontal": encodeCorners(br.Horizontal)}
	if br.Vertical != nil {
		f["vertical"] = encodeCorners(*br.Vertical)
	}
	return f
}

func encodeCorners(c Corners) document.Fields {
	f := document.Fields{}
	for i, lp := range c.list() {
		f[cornerNames[i]] = units.EncodeLengthPercentage(lp)
	}
	return f
}
