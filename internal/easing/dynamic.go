package easing

import (
	"fmt"

	"bennypowers.dev/cssvalues/internal/document"
)

var kindNames = []string{string(KindKeyword), string(KindCubicBezier), string(KindSteps), string(KindLinear)}

// Decode builds a Function from a loosely-typed object such as
// {kind: steps, steps: 4, position: jump-start}
func Decode(f document.Fields) (Function, error) {
	kind, err := f.Kind()
	if err != nil {
		return nil, err
	}

	switch Kind(kind) {
	case KindKeyword:
		name, err := f.String("name")
		return Keyword{Name: name}, err
	case KindCubicBezier:
		var v [4]float64
		for i, key := range []string{"x1", "y1", "x2", "y2"} {
			if v[i], err = f.Float(key); err != nil {
				return nil, err
			}
		}
		return CubicBezier{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
	case KindSteps:
		count, err := f.Int("steps")
		if err != nil {
			return nil, err
		}
		pos, err := f.OptionalString("position")
		return Steps{Count: count, Position: StepPosition(pos)}, err
	case KindLinear:
		raw, err := f.List("stops")
		if err != nil {
			return nil, err
		}
		stops := make([]LinearStop, 0, len(raw))
		for i, item := range raw {
			sf, err := document.AsFields(item)
			if err != nil {
				return nil, fmt.Errorf("stops[%d]: %w", i, err)
			}
			output, err := sf.Float("output")
			if err != nil {
				return nil, fmt.Errorf("stops[%d]: %w", i, err)
			}
			input, err := sf.OptionalFloat("input")
			if err != nil {
				return nil, fmt.Errorf("stops[%d]: %w", i, err)
			}
			stops = append(stops, LinearStop{Output: output, Input: input})
		}
		return Linear{Stops: stops}, nil
	}
	return nil, document.NewUnknownKindError(kind, kindNames)
}

// Encode renders fn as a loosely-typed object, the inverse of Decode
func Encode(fn Function) (document.Fields, error) {
	f := document.Fields{}
	switch v := fn.(type) {
	case Keyword:
		f["name"] = v.Name
	case CubicBezier:
		f["x1"], f["y1"], f["x2"], f["y2"] = v.X1, v.Y1, v.X2, v.Y2
	case Steps:
		f["steps"] = v.Count
		if v.Position != "" {
			f["position"] = string(v.Position)
		}
	case Linear:
		stops := make([]any, len(v.Stops))
		for i, s := range v.Stops {
			stop := document.Fields{"output": s.Output}
			if s.Input != nil {
				stop["input"] = *s.Input
			}
			stops[i] = stop
		}
		f["stops"] = stops
	default:
		return nil, fmt.Errorf("cannot encode easing function %T", fn)
	}
	f["kind"] = string(fn.Kind())
	return f, nil
}
