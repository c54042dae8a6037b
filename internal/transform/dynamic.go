package transform

import (
	"fmt"

	"bennypowers.dev/cssvalues/internal/document"
	"bennypowers.dev/cssvalues/internal/units"
)

func kindNames() []string {
	out := make([]string, len(Kinds))
	for i, k := range Kinds {
		out[i] = string(k)
	}
	return out
}

// Decode builds a Transform from a list of loosely-typed function objects
func Decode(items []any) (Transform, error) {
	out := make(Transform, 0, len(items))
	for i, item := range items {
		f, err := document.AsFields(item)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		fn, err := DecodeFunction(f)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out = append(out, fn)
	}
	return out, nil
}

// fieldReader decodes typed fields, keeping the first error
type fieldReader struct {
	f   document.Fields
	err error
}

func (r *fieldReader) fail(key string, err error) {
	if r.err == nil && err != nil {
		r.err = fmt.Errorf("%s: %w", key, err)
	}
}

func (r *fieldReader) lp(key string) units.LengthPercentage {
	if r.err != nil {
		return nil
	}
	v, ok := r.f[key]
	if !ok {
		r.err = &document.MissingFieldError{Field: key}
		return nil
	}
	lp, err := units.DecodeLengthPercentage(v)
	r.fail(key, err)
	return lp
}

func (r *fieldReader) optionalLP(key string) units.LengthPercentage {
	if !r.f.Has(key) {
		return nil
	}
	return r.lp(key)
}

func (r *fieldReader) length(key string) units.Length {
	if r.err != nil {
		return units.Length{}
	}
	v, ok := r.f[key]
	if !ok {
		r.err = &document.MissingFieldError{Field: key}
		return units.Length{}
	}
	l, err := units.DecodeLength(v)
	r.fail(key, err)
	return l
}

func (r *fieldReader) angle(key string) units.Angle {
	if r.err != nil {
		return units.Angle{}
	}
	v, ok := r.f[key]
	if !ok {
		r.err = &document.MissingFieldError{Field: key}
		return units.Angle{}
	}
	a, err := units.DecodeAngle(v)
	r.fail(key, err)
	return a
}

func (r *fieldReader) number(key string) float64 {
	if r.err != nil {
		return 0
	}
	n, err := r.f.Float(key)
	if err != nil {
		r.err = err
	}
	return n
}

func (r *fieldReader) optionalNumber(key string) *float64 {
	if r.err != nil {
		return nil
	}
	n, err := r.f.OptionalFloat(key)
	if err != nil {
		r.err = err
	}
	return n
}

func (r *fieldReader) numbers(key string, want int) []float64 {
	if r.err != nil {
		return nil
	}
	list, err := r.f.List(key)
	if err != nil {
		r.err = err
		return nil
	}
	if len(list) != want {
		r.err = fmt.Errorf("%s: expected %d numbers, got %d", key, want, len(list))
		return nil
	}
	out := make([]float64, want)
	for i, item := range list {
		n, ok := document.ToFloat(item)
		if !ok {
			r.err = &document.FieldTypeError{Field: fmt.Sprintf("%s[%d]", key, i), Expected: "a number", Found: item}
			return nil
		}
		out[i] = n
	}
	return out
}

// DecodeFunction builds one Function from an object such as
// {kind: rotate3d, x: 0, y: 0, z: 1, angle: {value: 45, unit: deg}}
func DecodeFunction(f document.Fields) (Function, error) {
	kind, err := f.Kind()
	if err != nil {
		return nil, err
	}
	r := &fieldReader{f: f}

	var fn Function
	switch Kind(kind) {
	case KindTranslate:
		fn = Translate{X: r.lp("x"), Y: r.optionalLP("y")}
	case KindTranslateX:
		fn = TranslateX{X: r.lp("x")}
	case KindTranslateY:
		fn = TranslateY{Y: r.lp("y")}
	case KindTranslateZ:
		fn = TranslateZ{Z: r.length("z")}
	case KindTranslate3d:
		fn = Translate3d{X: r.lp("x"), Y: r.lp("y"), Z: r.length("z")}
	case KindRotate:
		fn = Rotate{Angle: r.angle("angle")}
	case KindRotateX:
		fn = RotateX{Angle: r.angle("angle")}
	case KindRotateY:
		fn = RotateY{Angle: r.angle("angle")}
	case KindRotateZ:
		fn = RotateZ{Angle: r.angle("angle")}
	case KindRotate3d:
		fn = Rotate3d{X: r.number("x"), Y: r.number("y"), Z: r.number("z"), Angle: r.angle("angle")}
	case KindScale:
		fn = Scale{X: r.number("x"), Y: r.optionalNumber("y")}
	case KindScaleX:
		fn = ScaleX{X: r.number("x")}
	case KindScaleY:
		fn = ScaleY{Y: r.number("y")}
	case KindScaleZ:
		fn = ScaleZ{Z: r.number("z")}
	case KindScale3d:
		fn = Scale3d{X: r.number("x"), Y: r.number("y"), Z: r.number("z")}
	case KindSkew:
		s := Skew{X: r.angle("x")}
		if f.Has("y") {
			y := r.angle("y")
			s.Y = &y
		}
		fn = s
	case KindSkewX:
		fn = SkewX{Angle: r.angle("angle")}
	case KindSkewY:
		fn = SkewY{Angle: r.angle("angle")}
	case KindMatrix:
		fn = Matrix{A: r.number("a"), B: r.number("b"), C: r.number("c"), D: r.number("d"), E: r.number("e"), F: r.number("f")}
	case KindMatrix3d:
		var m Matrix3d
		copy(m.Values[:], r.numbers("values", 16))
		fn = m
	case KindPerspective:
		p := Perspective{}
		if f.Has("distance") {
			d := r.length("distance")
			p.Distance = &d
		}
		fn = p
	default:
		return nil, document.NewUnknownKindError(kind, kindNames())
	}
	if r.err != nil {
		return nil, r.err
	}
	return fn, nil
}

// Encode renders the chain as a list of objects, the inverse of Decode
func Encode(t Transform) ([]any, error) {
	out := make([]any, len(t))
	for i, fn := range t {
		f, err := EncodeFunction(fn)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

// EncodeFunction renders one function as an object
func EncodeFunction(fn Function) (document.Fields, error) {
	f := document.Fields{}
	switch v := fn.(type) {
	case Translate:
		f["x"] = units.EncodeLengthPercentage(v.X)
		if v.Y != nil {
			f["y"] = units.EncodeLengthPercentage(v.Y)
		}
	case TranslateX:
		f["x"] = units.EncodeLengthPercentage(v.X)
	case TranslateY:
		f["y"] = units.EncodeLengthPercentage(v.Y)
	case TranslateZ:
		f["z"] = units.EncodeLength(v.Z)
	case Translate3d:
		f["x"], f["y"], f["z"] = units.EncodeLengthPercentage(v.X), units.EncodeLengthPercentage(v.Y), units.EncodeLength(v.Z)
	case Rotate:
		f["angle"] = units.EncodeAngle(v.Angle)
	case RotateX:
		f["angle"] = units.EncodeAngle(v.Angle)
	case RotateY:
		f["angle"] = units.EncodeAngle(v.Angle)
	case RotateZ:
		f["angle"] = units.EncodeAngle(v.Angle)
	case Rotate3d:
		f["x"], f["y"], f["z"], f["angle"] = v.X, v.Y, v.Z, units.EncodeAngle(v.Angle)
	case Scale:
		f["x"] = v.X
		if v.Y != nil {
			f["y"] = *v.Y
		}
	case ScaleX:
		f["x"] = v.X
	case ScaleY:
		f["y"] = v.Y
	case ScaleZ:
		f["z"] = v.Z
	case Scale3d:
		f["x"], f["y"], f["z"] = v.X, v.Y, v.Z
	case Skew:
		f["x"] = units.EncodeAngle(v.X)
		if v.Y != nil {
			f["y"] = units.EncodeAngle(*v.Y)
		}
	case SkewX:
		f["angle"] = units.EncodeAngle(v.Angle)
	case SkewY:
		f["angle"] = units.EncodeAngle(v.Angle)
	case Matrix:
		f["a"], f["b"], f["c"], f["d"], f["e"], f["f"] = v.A, v.B, v.C, v.D, v.E, v.F
	case Matrix3d:
		values := make([]any, len(v.Values))
		for i, n := range v.Values {
			values[i] = n
		}
		f["values"] = values
	case Perspective:
		if v.Distance != nil {
			f["distance"] = units.EncodeLength(*v.Distance)
		}
	default:
		return nil, fmt.Errorf("cannot encode transform function %T", fn)
	}
	f["kind"] = string(fn.Kind())
	return f, nil
}
