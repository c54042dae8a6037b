package transform

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/cssvalues/internal/stream"
	"bennypowers.dev/cssvalues/internal/token"
	"bennypowers.dev/cssvalues/internal/units"
)

// ErrEmpty is returned when a transform value holds no functions
var ErrEmpty = errors.New("array cannot be empty")

// ParseString tokenizes css and parses the transform chain
func ParseString(tz token.Tokenizer, css string) (Transform, error) {
	nodes, err := token.TokenizeValue(tz, strings.TrimSpace(css))
	if err != nil {
		return nil, err
	}
	return Parse(nodes)
}

// Parse reads a whitespace-separated chain of transform functions
func Parse(nodes []token.Node) (Transform, error) {
	significant := stream.Significant(nodes)
	if len(significant) == 0 {
		return nil, ErrEmpty
	}
	out := make(Transform, 0, len(significant))
	for _, n := range significant {
		fn, ok := n.(*token.Function)
		if !ok {
			return nil, fmt.Errorf("Expected transform function, got %s", token.Describe(n))
		}
		parsed, err := ParseFunction(fn)
		if err != nil {
			return nil, err
		}
		out = append(out, parsed)
	}
	return out, nil
}

// args holds the comma-separated arguments of one function node
type args struct {
	name  string
	nodes []token.Node
}

func arguments(fn *token.Function, name string) (args, error) {
	a := args{name: name}
	if len(stream.Significant(fn.Children)) == 0 {
		return a, nil
	}
	for _, g := range stream.SplitByComma(fn.Children, stream.SplitOptions{AllowEmpty: true}) {
		switch len(g) {
		case 0:
			return a, fmt.Errorf("%s(): Empty value before comma", name)
		case 1:
			a.nodes = append(a.nodes, g[0])
		default:
			return a, fmt.Errorf("%s(): Expected single value, got %d values", name, len(g))
		}
	}
	return a, nil
}

func (a args) count(lo, hi int) error {
	n := len(a.nodes)
	if n >= lo && n <= hi {
		return nil
	}
	switch {
	case lo == hi && lo == 1:
		return fmt.Errorf("%s() expects 1 argument, got %d", a.name, n)
	case lo == hi:
		return fmt.Errorf("%s() expects %d arguments, got %d", a.name, lo, n)
	default:
		return fmt.Errorf("%s() expects %d or %d arguments, got %d", a.name, lo, hi, n)
	}
}

func (a args) wrap(err error) error {
	return fmt.Errorf("%s(): %w", a.name, err)
}

func (a args) lengthPercentage(i int) (units.LengthPercentage, error) {
	v, err := units.ParseLengthPercentage(a.nodes[i])
	if err != nil {
		return nil, a.wrap(err)
	}
	return v, nil
}

func (a args) length(i int) (units.Length, error) {
	v, err := units.ParseLength(a.nodes[i])
	if err != nil {
		return units.Length{}, a.wrap(err)
	}
	return v, nil
}

func (a args) angle(i int) (units.Angle, error) {
	v, err := units.ParseAngle(a.nodes[i])
	if err != nil {
		return units.Angle{}, a.wrap(err)
	}
	return v, nil
}

func (a args) number(i int) (float64, error) {
	v, err := units.ParseNumber(a.nodes[i])
	if err != nil {
		return 0, a.wrap(err)
	}
	return v, nil
}

// scaleFactor reads a number or a percentage divided by 100
func (a args) scaleFactor(i int) (float64, error) {
	if p, ok := a.nodes[i].(*token.Percentage); ok {
		return p.Value / 100, nil
	}
	return a.number(i)
}

// translation reads matrix e/f, a bare number or a px dimension
func (a args) translation(i int) (float64, error) {
	if d, ok := a.nodes[i].(*token.Dimension); ok {
		if !strings.EqualFold(d.Unit, string(units.Px)) {
			return 0, fmt.Errorf("%s() translation must be a number or px length, got %s", a.name, token.Serialize(d))
		}
		return d.Value, nil
	}
	return a.number(i)
}

// ParseFunction parses a single transform function node
func ParseFunction(fn *token.Function) (Function, error) {
	canonical, ok := Names.Lookup(fn.Name)
	if !ok {
		return nil, fmt.Errorf("Unknown transform function: %s", fn.Name)
	}
	kind := Kind(canonical)
	a, err := arguments(fn, canonical)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindTranslate:
		if err := a.count(1, 2); err != nil {
			return nil, err
		}
		x, err := a.lengthPercentage(0)
		if err != nil {
			return nil, err
		}
		t := Translate{X: x}
		if len(a.nodes) == 2 {
			if t.Y, err = a.lengthPercentage(1); err != nil {
				return nil, err
			}
		}
		return t, nil
	case KindTranslateX, KindTranslateY:
		if err := a.count(1, 1); err != nil {
			return nil, err
		}
		v, err := a.lengthPercentage(0)
		if err != nil {
			return nil, err
		}
		if kind == KindTranslateX {
			return TranslateX{X: v}, nil
		}
		return TranslateY{Y: v}, nil
	case KindTranslateZ:
		if err := a.count(1, 1); err != nil {
			return nil, err
		}
		z, err := a.length(0)
		return TranslateZ{Z: z}, err
	case KindTranslate3d:
		if err := a.count(3, 3); err != nil {
			return nil, err
		}
		x, err := a.lengthPercentage(0)
		if err != nil {
			return nil, err
		}
		y, err := a.lengthPercentage(1)
		if err != nil {
			return nil, err
		}
		z, err := a.length(2)
		if err != nil {
			return nil, err
		}
		return Translate3d{X: x, Y: y, Z: z}, nil

	case KindRotate, KindRotateX, KindRotateY, KindRotateZ:
		if err := a.count(1, 1); err != nil {
			return nil, err
		}
		angle, err := a.angle(0)
		if err != nil {
			return nil, err
		}
		switch kind {
		case KindRotateX:
			return RotateX{Angle: angle}, nil
		case KindRotateY:
			return RotateY{Angle: angle}, nil
		case KindRotateZ:
			return RotateZ{Angle: angle}, nil
		}
		return Rotate{Angle: angle}, nil
	case KindRotate3d:
		if err := a.count(4, 4); err != nil {
			return nil, err
		}
		var v [3]float64
		for i := range v {
			if v[i], err = a.number(i); err != nil {
				return nil, err
			}
		}
		angle, err := a.angle(3)
		if err != nil {
			return nil, err
		}
		return Rotate3d{X: v[0], Y: v[1], Z: v[2], Angle: angle}, nil

	case KindScale:
		if err := a.count(1, 2); err != nil {
			return nil, err
		}
		x, err := a.scaleFactor(0)
		if err != nil {
			return nil, err
		}
		s := Scale{X: x}
		if len(a.nodes) == 2 {
			y, err := a.scaleFactor(1)
			if err != nil {
				return nil, err
			}
			s.Y = &y
		}
		return s, nil
	case KindScaleX, KindScaleY, KindScaleZ:
		if err := a.count(1, 1); err != nil {
			return nil, err
		}
		v, err := a.scaleFactor(0)
		if err != nil {
			return nil, err
		}
		switch kind {
		case KindScaleX:
			return ScaleX{X: v}, nil
		case KindScaleY:
			return ScaleY{Y: v}, nil
		}
		return ScaleZ{Z: v}, nil
	case KindScale3d:
		if err := a.count(3, 3); err != nil {
			return nil, err
		}
		var v [3]float64
		for i := range v {
			if v[i], err = a.scaleFactor(i); err != nil {
				return nil, err
			}
		}
		return Scale3d{X: v[0], Y: v[1], Z: v[2]}, nil

	case KindSkew:
		if err := a.count(1, 2); err != nil {
			return nil, err
		}
		x, err := a.angle(0)
		if err != nil {
			return nil, err
		}
		s := Skew{X: x}
		if len(a.nodes) == 2 {
			y, err := a.angle(1)
			if err != nil {
				return nil, err
			}
			s.Y = &y
		}
		return s, nil
	case KindSkewX, KindSkewY:
		if err := a.count(1, 1); err != nil {
			return nil, err
		}
		angle, err := a.angle(0)
		if err != nil {
			return nil, err
		}
		if kind == KindSkewX {
			return SkewX{Angle: angle}, nil
		}
		return SkewY{Angle: angle}, nil

	case KindMatrix:
		if err := a.count(6, 6); err != nil {
			return nil, err
		}
		var v [6]float64
		for i := range v {
			if i < 4 {
				v[i], err = a.number(i)
			} else {
				v[i], err = a.translation(i)
			}
			if err != nil {
				return nil, err
			}
		}
		return Matrix{A: v[0], B: v[1], C: v[2], D: v[3], E: v[4], F: v[5]}, nil
	case KindMatrix3d:
		if err := a.count(16, 16); err != nil {
			return nil, err
		}
		var m Matrix3d
		for i := range m.Values {
			if m.Values[i], err = a.number(i); err != nil {
				return nil, err
			}
		}
		return m, nil

	case KindPerspective:
		if err := a.count(1, 1); err != nil {
			return nil, err
		}
		if id, ok := a.nodes[0].(*token.Ident); ok && strings.EqualFold(id.Name, "none") {
			return Perspective{}, nil
		}
		d, err := a.length(0)
		if err != nil {
			return nil, err
		}
		if err := units.RequireNonNegative("perspective() distance", d.Value); err != nil {
			return nil, err
		}
		return Perspective{Distance: &d}, nil
	}
	return nil, fmt.Errorf("Unknown transform function: %s", fn.Name)
}
