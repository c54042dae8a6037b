package color

import (
	"fmt"

	"github.com/mazznoer/csscolorparser"
)

// ToRGBA resolves c to sRGB channels in [0,1]. Keywords whose value depends
// on context (currentcolor and system colors) cannot be resolved.
func ToRGBA(c Color) (csscolorparser.Color, error) {
	switch v := c.(type) {
	case Special:
		if v.Keyword == "transparent" {
			return csscolorparser.Color{R: 0, G: 0, B: 0, A: 0}, nil
		}
		return csscolorparser.Color{}, fmt.Errorf("cannot resolve %s without a context color", v.Keyword)
	case System:
		return csscolorparser.Color{}, fmt.Errorf("cannot resolve system color %s", v.Keyword)
	case nil:
		return csscolorparser.Color{}, fmt.Errorf("cannot resolve a nil color")
	}

	// Use csscolorparser for the notations it understands
	parsed, err := csscolorparser.Parse(ToCSS(c))
	if err != nil {
		return csscolorparser.Color{}, fmt.Errorf("cannot resolve %s color: %w", c.Kind(), err)
	}
	return parsed, nil
}

// ToHex resolves c to a `#rrggbb` or `#rrggbbaa` string
func ToHex(c Color) (string, error) {
	rgba, err := ToRGBA(c)
	if err != nil {
		return "", err
	}
	return rgba.HexString(), nil
}
