package codec

import (
	"fmt"

	"bennypowers.dev/cssvalues/internal/color"
	"bennypowers.dev/cssvalues/internal/document"
	"bennypowers.dev/cssvalues/internal/easing"
	"bennypowers.dev/cssvalues/internal/radius"
	"bennypowers.dev/cssvalues/internal/transform"
	"bennypowers.dev/cssvalues/internal/units"
)

// DecodeIR builds typed IR from a loosely-typed value, as decoded from YAML
// or JSON. This is the only place untyped input is accepted: shapes and field
// types are checked here, value ranges by Generate.
//
// Colors and border radii are objects; transforms and time lists are lists;
// easing accepts either one function object or a list of them.
func DecodeIR(g Grammar, v any) (any, error) {
	switch g {
	case GrammarColor:
		f, err := document.AsFields(v)
		if err != nil {
			return nil, err
		}
		return color.Decode(f)
	case GrammarEasing:
		if list, ok := v.([]any); ok {
			out := make([]easing.Function, 0, len(list))
			for i, item := range list {
				f, err := document.AsFields(item)
				if err != nil {
					return nil, fmt.Errorf("[%d]: %w", i, err)
				}
				fn, err := easing.Decode(f)
				if err != nil {
					return nil, fmt.Errorf("[%d]: %w", i, err)
				}
				out = append(out, fn)
			}
			return out, nil
		}
		f, err := document.AsFields(v)
		if err != nil {
			return nil, err
		}
		return easing.Decode(f)
	case GrammarTransform:
		list, ok := v.([]any)
		if !ok {
			return nil, &document.FieldTypeError{Field: "transform", Expected: "a list", Found: v}
		}
		return transform.Decode(list)
	case GrammarBorderRadius:
		f, err := document.AsFields(v)
		if err != nil {
			return nil, err
		}
		return radius.Decode(f)
	case GrammarTime:
		list, ok := v.([]any)
		if !ok {
			return nil, &document.FieldTypeError{Field: "time", Expected: "a list", Found: v}
		}
		out := make([]units.Time, 0, len(list))
		for i, item := range list {
			t, err := units.DecodeTime(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out = append(out, t)
		}
		return out, nil
	}
	return nil, &UnknownGrammarError{Name: string(g)}
}

// EncodeIR renders typed IR as plain maps and lists, the inverse of DecodeIR
func EncodeIR(g Grammar, ir any) (any, error) {
	switch v := ir.(type) {
	case color.Color:
		return color.Encode(v)
	case easing.Function:
		return easing.Encode(v)
	case []easing.Function:
		out := make([]any, len(v))
		for i, fn := range v {
			f, err := easing.Encode(fn)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = f
		}
		return out, nil
	case transform.Transform:
		return transform.Encode(v)
	case radius.BorderRadius:
		return radius.Encode(v), nil
	case []units.Time:
		out := make([]any, len(v))
		for i, t := range v {
			out[i] = units.EncodeTime(t)
		}
		return out, nil
	}
	return nil, fmt.Errorf("cannot encode %T as %s", ir, g)
}
