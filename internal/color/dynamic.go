package color

import (
	"fmt"

	"bennypowers.dev/cssvalues/internal/document"
)

func kindNames() []string {
	out := make([]string, len(Kinds))
	for i, k := range Kinds {
		out[i] = string(k)
	}
	return out
}

// Decode builds a Color from a loosely-typed object such as
// {kind: hwb, h: 90, w: 100, b: 0}. Field types and presence are checked here;
// value ranges are left to Validate.
func Decode(f document.Fields) (Color, error) {
	kind, err := f.Kind()
	if err != nil {
		return nil, err
	}

	switch Kind(kind) {
	case KindNamed:
		name, err := f.String("name")
		return Named{Name: name}, err
	case KindHex:
		value, err := f.String("value")
		return Hex{Value: value}, err
	case KindSpecial:
		kw, err := f.String("keyword")
		return Special{Keyword: kw}, err
	case KindSystem:
		kw, err := f.String("keyword")
		return System{Keyword: kw}, err
	}

	var keys [3]string
	switch Kind(kind) {
	case KindRGB:
		keys = [3]string{"r", "g", "b"}
	case KindHSL:
		keys = [3]string{"h", "s", "l"}
	case KindHWB:
		keys = [3]string{"h", "w", "b"}
	case KindLab, KindOKLab:
		keys = [3]string{"l", "a", "b"}
	case KindLCH, KindOKLCH:
		keys = [3]string{"l", "c", "h"}
	default:
		return nil, document.NewUnknownKindError(kind, kindNames())
	}

	var ch [3]float64
	for i, key := range keys {
		if ch[i], err = f.Float(key); err != nil {
			return nil, err
		}
	}
	alpha, err := f.OptionalFloat("alpha")
	if err != nil {
		return nil, err
	}

	switch Kind(kind) {
	case KindRGB:
		return RGB{R: ch[0], G: ch[1], B: ch[2], Alpha: alpha}, nil
	case KindHSL:
		return HSL{H: ch[0], S: ch[1], L: ch[2], Alpha: alpha}, nil
	case KindHWB:
		return HWB{H: ch[0], W: ch[1], B: ch[2], Alpha: alpha}, nil
	case KindLab:
		return Lab{L: ch[0], A: ch[1], B: ch[2], Alpha: alpha}, nil
	case KindOKLab:
		return OKLab{L: ch[0], A: ch[1], B: ch[2], Alpha: alpha}, nil
	case KindLCH:
		return LCH{L: ch[0], C: ch[1], H: ch[2], Alpha: alpha}, nil
	default:
		return OKLCH{L: ch[0], C: ch[1], H: ch[2], Alpha: alpha}, nil
	}
}

// Encode renders c as a loosely-typed object, the inverse of Decode
func Encode(c Color) (document.Fields, error) {
	f := document.Fields{}
	channels := func(alpha *float64, pairs ...any) {
		for i := 0; i+1 < len(pairs); i += 2 {
			f[pairs[i].(string)] = pairs[i+1]
		}
		if alpha != nil {
			f["alpha"] = *alpha
		}
	}

	switch v := c.(type) {
	case Named:
		f["name"] = v.Name
	case Hex:
		f["value"] = v.Value
	case Special:
		f["keyword"] = v.Keyword
	case System:
		f["keyword"] = v.Keyword
	case RGB:
		channels(v.Alpha, "r", v.R, "g", v.G, "b", v.B)
	case HSL:
		channels(v.Alpha, "h", v.H, "s", v.S, "l", v.L)
	case HWB:
		channels(v.Alpha, "h", v.H, "w", v.W, "b", v.B)
	case Lab:
		channels(v.Alpha, "l", v.L, "a", v.A, "b", v.B)
	case LCH:
		channels(v.Alpha, "l", v.L, "c", v.C, "h", v.H)
	case OKLab:
		channels(v.Alpha, "l", v.L, "a", v.A, "b", v.B)
	case OKLCH:
		channels(v.Alpha, "l", v.L, "c", v.C, "h", v.H)
	default:
		return nil, fmt.Errorf("cannot encode color %T", c)
	}
	f["kind"] = string(c.Kind())
	return f, nil
}
