package color

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"bennypowers.dev/cssvalues/internal/stream"
	"bennypowers.dev/cssvalues/internal/token"
	"bennypowers.dev/cssvalues/internal/units"
	"github.com/mazznoer/csscolorparser"
)

// ParseString tokenizes css and parses it as a single color
func ParseString(tz token.Tokenizer, css string) (Color, error) {
	nodes, err := token.TokenizeValue(tz, strings.TrimSpace(css))
	if err != nil {
		return nil, err
	}
	return ParseNodes(nodes)
}

// ParseNodes parses a node list holding exactly one color
func ParseNodes(nodes []token.Node) (Color, error) {
	significant := stream.Significant(nodes)
	switch len(significant) {
	case 0:
		return nil, errors.New("Expected a color, got nothing")
	case 1:
		return Parse(significant[0])
	}
	return nil, fmt.Errorf("Expected single value, got %d values", len(significant))
}

// Parse dispatches a single node to the matching color notation
func Parse(n token.Node) (Color, error) {
	switch v := n.(type) {
	case *token.Hash:
		return parseHex(v.Value)
	case *token.Function:
		return parseFunction(v)
	case *token.Ident:
		return parseKeyword(v.Name)
	}
	return nil, fmt.Errorf("Expected color, got %s", token.Describe(n))
}

func parseHex(digits string) (Color, error) {
	if !isHexColor(digits) {
		return nil, fmt.Errorf("Invalid hex color: #%s", digits)
	}
	return Hex{Value: "#" + digits}, nil
}

func isHexColor(digits string) bool {
	switch len(digits) {
	case 3, 4, 6, 8:
		return isHexDigits(digits)
	}
	return false
}

func isHexDigits(s string) bool {
	for _, c := range s {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return s != ""
}

// parseKeyword tries special, then system, then named colors
func parseKeyword(name string) (Color, error) {
	if kw, ok := SpecialKeywords.Lookup(name); ok {
		return Special{Keyword: kw}, nil
	}
	if kw, ok := SystemKeywords.Lookup(name); ok {
		return System{Keyword: kw}, nil
	}
	if lower := strings.ToLower(name); IsNamedColor(lower) {
		return Named{Name: lower}, nil
	}
	return nil, fmt.Errorf("Invalid color keyword: %s", name)
}

// IsNamedColor reports whether name is one of the CSS named colors
func IsNamedColor(name string) bool {
	lower := strings.ToLower(name)
	for _, c := range lower {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	// csscolorparser also reads bare hex digits, which are never names
	if isHexDigits(lower) || SpecialKeywords.Has(lower) {
		return false
	}
	_, err := csscolorparser.Parse(lower)
	return err == nil
}

func parseFunction(fn *token.Function) (Color, error) {
	name := strings.ToLower(fn.Name)
	switch name {
	case "rgb", "rgba":
		return parseRGB(fn, name)
	case "hsl", "hsla":
		return parseHSL(fn, name)
	case "hwb":
		return parseHWB(fn, name)
	case "lab":
		return parseLab(fn, name)
	case "lch":
		return parseLCH(fn, name)
	case "oklab":
		return parseOKLab(fn, name)
	case "oklch":
		return parseOKLCH(fn, name)
	}
	return nil, fmt.Errorf("Unknown color function: %s", fn.Name)
}

// channels splits function arguments into three channels and an optional
// alpha, accepting the legacy comma syntax only when legacy is set
func channels(fn *token.Function, name string, legacy bool) ([3]token.Node, token.Node, error) {
	var out [3]token.Node
	args := stream.Significant(fn.Children)

	hasComma := false
	for _, a := range args {
		if token.IsOperator(a, ",") {
			hasComma = true
			break
		}
	}

	if hasComma {
		if !legacy {
			return out, nil, fmt.Errorf("%s() does not accept comma-separated arguments", name)
		}
		items, err := stream.ParseCommaSeparatedSingle(fn.Children)
		if err != nil {
			return out, nil, fmt.Errorf("%s(): %w", name, err)
		}
		if len(items) != 3 && len(items) != 4 {
			return out, nil, fmt.Errorf("%s() expects 3 or 4 arguments, got %d", name, len(items))
		}
		copy(out[:], items[:3])
		if len(items) == 4 {
			return out, items[3], nil
		}
		return out, nil, nil
	}

	slash := -1
	for i, a := range args {
		if token.IsOperator(a, "/") {
			slash = i
			break
		}
	}
	before := args
	var alpha token.Node
	if slash >= 0 {
		before = args[:slash]
		after := args[slash+1:]
		if len(after) != 1 {
			return out, nil, fmt.Errorf("%s() expects a single alpha value after '/', got %d values", name, len(after))
		}
		alpha = after[0]
	}
	if len(before) != 3 {
		return out, nil, fmt.Errorf("%s() expects 3 channels, got %d", name, len(before))
	}
	copy(out[:], before)
	return out, alpha, nil
}

// WrapHue reduces any angle in degrees to [0,360), matching
// ((h % 360) + 360) % 360. Values already in range are returned unchanged.
func WrapHue(h float64) float64 {
	r := math.Mod(h, 360)
	if r < 0 {
		r += 360
	}
	// tiny negative remainders round up to 360
	if r >= 360 || r == 0 {
		return 0
	}
	return r
}

func parseHue(n token.Node, name string) (float64, error) {
	switch v := n.(type) {
	case *token.Number:
		return WrapHue(v.Value), nil
	case *token.Dimension:
		a, err := units.ParseAngle(v)
		if err != nil {
			return 0, fmt.Errorf("%s() hue: %w", name, err)
		}
		return WrapHue(a.Degrees()), nil
	}
	return 0, fmt.Errorf("%s() hue must be a number or angle, got %s", name, token.Describe(n))
}

// parseAlpha reads a number or percentage, clamps it into [0,1] after
// percentage conversion, and returns nil for exactly 1
func parseAlpha(n token.Node, name string) (*float64, error) {
	if n == nil {
		return nil, nil
	}
	var a float64
	switch v := n.(type) {
	case *token.Number:
		a = v.Value
	case *token.Percentage:
		a = v.Value / 100
	default:
		return nil, fmt.Errorf("%s() alpha must be a number or percentage, got %s", name, token.Describe(n))
	}
	a = units.Clamp(a, 0, 1)
	if a == 1 {
		return nil, nil
	}
	return &a, nil
}

// scaled reads a number as-is or a percentage scaled so that 100% == full
func scaled(n token.Node, full float64, channel, name string) (float64, error) {
	switch v := n.(type) {
	case *token.Number:
		return v.Value, nil
	case *token.Percentage:
		return v.Value * full / 100, nil
	}
	return 0, fmt.Errorf("%s() %s must be a number or percentage, got %s", name, channel, token.Describe(n))
}

// percentOnly reads a mandatory percentage channel clamped to [0,100]
func percentOnly(n token.Node, channel, name string) (float64, error) {
	p, ok := n.(*token.Percentage)
	if !ok {
		return 0, fmt.Errorf("%s() %s must be a percentage, got %s", name, channel, token.Describe(n))
	}
	return units.Clamp(p.Value, 0, 100), nil
}

func parseRGB(fn *token.Function, name string) (Color, error) {
	ch, alphaNode, err := channels(fn, name, true)
	if err != nil {
		return nil, err
	}
	var rgb [3]float64
	for i, label := range []string{"red", "green", "blue"} {
		v, err := scaled(ch[i], 255, label, name)
		if err != nil {
			return nil, err
		}
		rgb[i] = units.Clamp(v, 0, 255)
	}
	alpha, err := parseAlpha(alphaNode, name)
	if err != nil {
		return nil, err
	}
	return RGB{R: rgb[0], G: rgb[1], B: rgb[2], Alpha: alpha}, nil
}

func parseHSL(fn *token.Function, name string) (Color, error) {
	ch, alphaNode, err := channels(fn, name, true)
	if err != nil {
		return nil, err
	}
	h, err := parseHue(ch[0], name)
	if err != nil {
		return nil, err
	}
	s, err := scaled(ch[1], 100, "saturation", name)
	if err != nil {
		return nil, err
	}
	l, err := scaled(ch[2], 100, "lightness", name)
	if err != nil {
		return nil, err
	}
	alpha, err := parseAlpha(alphaNode, name)
	if err != nil {
		return nil, err
	}
	return HSL{H: h, S: units.Clamp(s, 0, 100), L: units.Clamp(l, 0, 100), Alpha: alpha}, nil
}

func parseHWB(fn *token.Function, name string) (Color, error) {
	ch, alphaNode, err := channels(fn, name, false)
	if err != nil {
		return nil, err
	}
	h, err := parseHue(ch[0], name)
	if err != nil {
		return nil, err
	}
	w, err := percentOnly(ch[1], "whiteness", name)
	if err != nil {
		return nil, err
	}
	b, err := percentOnly(ch[2], "blackness", name)
	if err != nil {
		return nil, err
	}
	alpha, err := parseAlpha(alphaNode, name)
	if err != nil {
		return nil, err
	}
	return HWB{H: h, W: w, B: b, Alpha: alpha}, nil
}

func parseLab(fn *token.Function, name string) (Color, error) {
	ch, alphaNode, err := channels(fn, name, false)
	if err != nil {
		return nil, err
	}
	l, err := scaled(ch[0], 100, "lightness", name)
	if err != nil {
		return nil, err
	}
	a, err := scaled(ch[1], 125, "a", name)
	if err != nil {
		return nil, err
	}
	b, err := scaled(ch[2], 125, "b", name)
	if err != nil {
		return nil, err
	}
	alpha, err := parseAlpha(alphaNode, name)
	if err != nil {
		return nil, err
	}
	return Lab{L: units.Clamp(l, 0, 100), A: a, B: b, Alpha: alpha}, nil
}

func parseLCH(fn *token.Function, name string) (Color, error) {
	ch, alphaNode, err := channels(fn, name, false)
	if err != nil {
		return nil, err
	}
	l, err := scaled(ch[0], 100, "lightness", name)
	if err != nil {
		return nil, err
	}
	c, err := scaled(ch[1], 150, "chroma", name)
	if err != nil {
		return nil, err
	}
	h, err := parseHue(ch[2], name)
	if err != nil {
		return nil, err
	}
	alpha, err := parseAlpha(alphaNode, name)
	if err != nil {
		return nil, err
	}
	return LCH{L: units.Clamp(l, 0, 100), C: math.Max(0, c), H: h, Alpha: alpha}, nil
}

func parseOKLab(fn *token.Function, name string) (Color, error) {
	ch, alphaNode, err := channels(fn, name, false)
	if err != nil {
		return nil, err
	}
	l, err := scaled(ch[0], 1, "lightness", name)
	if err != nil {
		return nil, err
	}
	a, err := scaled(ch[1], 0.4, "a", name)
	if err != nil {
		return nil, err
	}
	b, err := scaled(ch[2], 0.4, "b", name)
	if err != nil {
		return nil, err
	}
	alpha, err := parseAlpha(alphaNode, name)
	if err != nil {
		return nil, err
	}
	return OKLab{L: units.Clamp(l, 0, 1), A: a, B: b, Alpha: alpha}, nil
}

func parseOKLCH(fn *token.Function, name string) (Color, error) {
	ch, alphaNode, err := channels(fn, name, false)
	if err != nil {
		return nil, err
	}
	l, err := scaled(ch[0], 1, "lightness", name)
	if err != nil {
		return nil, err
	}
	c, err := scaled(ch[1], 0.4, "chroma", name)
	if err != nil {
		return nil, err
	}
	h, err := parseHue(ch[2], name)
	if err != nil {
		return nil, err
	}
	alpha, err := parseAlpha(alphaNode, name)
	if err != nil {
		return nil, err
	}
	return OKLCH{L: units.Clamp(l, 0, 1), C: math.Max(0, c), H: h, Alpha: alpha}, nil
}
