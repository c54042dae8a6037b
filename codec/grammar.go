package codec

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/cssvalues/internal/color"
	"bennypowers.dev/cssvalues/internal/easing"
	"bennypowers.dev/cssvalues/internal/radius"
	"bennypowers.dev/cssvalues/internal/result"
	"bennypowers.dev/cssvalues/internal/transform"
	"bennypowers.dev/cssvalues/internal/units"
)

// Grammar names one of the value grammars the codec handles
type Grammar string

const (
	GrammarColor        Grammar = "color"
	GrammarEasing       Grammar = "easing"
	GrammarTransform    Grammar = "transform"
	GrammarBorderRadius Grammar = "border-radius"
	GrammarTime         Grammar = "time"
)

// Grammars lists every supported grammar
var Grammars = []Grammar{GrammarColor, GrammarEasing, GrammarTransform, GrammarBorderRadius, GrammarTime}

// ErrUnknownGrammar indicates a grammar name ParseGrammar does not know
var ErrUnknownGrammar = errors.New("unknown grammar")

// UnknownGrammarError names the rejected grammar
type UnknownGrammarError struct {
	Name string
}

func (e *UnknownGrammarError) Error() string {
	names := make([]string, len(Grammars))
	for i, g := range Grammars {
		names[i] = string(g)
	}
	return fmt.Sprintf("unknown grammar %q (expected one of %s)", e.Name, strings.Join(names, ", "))
}

func (e *UnknownGrammarError) Unwrap() error {
	return ErrUnknownGrammar
}

// ParseGrammar reads a grammar name, ignoring case. Property names that use
// a grammar directly are accepted as aliases.
func ParseGrammar(name string) (Grammar, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "color", "colour", "background-color", "border-color", "outline-color":
		return GrammarColor, nil
	case "easing", "easing-function", "transition-timing-function", "animation-timing-function":
		return GrammarEasing, nil
	case "transform":
		return GrammarTransform, nil
	case "border-radius", "radius":
		return GrammarBorderRadius, nil
	case "time", "transition-duration", "transition-delay", "animation-duration", "animation-delay":
		return GrammarTime, nil
	}
	return "", &UnknownGrammarError{Name: name}
}

// Parse parses css with the named grammar. Easing values are parsed as a
// list; a single function yields a one-element list.
func (c *Codec) Parse(g Grammar, css string) result.Result[any] {
	switch g {
	case GrammarColor:
		return widen(c.ParseColor(css))
	case GrammarEasing:
		return widen(c.ParseEasingList(css))
	case GrammarTransform:
		return widen(c.ParseTransform(css))
	case GrammarBorderRadius:
		return widen(c.ParseBorderRadius(css))
	case GrammarTime:
		return widen(c.ParseTimeList(css))
	}
	return result.Err[any](&UnknownGrammarError{Name: string(g)})
}

func widen[T any](r result.Result[T]) result.Result[any] {
	return result.Map(r, func(v T) any { return v })
}

// Generate renders ir with the named grammar. An IR value of the wrong type
// for the grammar is reported as an unsupported-kind issue.
func (c *Codec) Generate(g Grammar, ir any) result.GenerateResult {
	switch g {
	case GrammarColor:
		if v, ok := ir.(color.Color); ok || ir == nil {
			return c.GenerateColor(v)
		}
	case GrammarEasing:
		switch v := ir.(type) {
		case []easing.Function:
			return c.GenerateEasingList(v)
		case easing.Function:
			return c.GenerateEasing(v)
		case nil:
			return c.GenerateEasing(nil)
		}
	case GrammarTransform:
		switch v := ir.(type) {
		case transform.Transform:
			return c.GenerateTransform(v)
		case []transform.Function:
			return c.GenerateTransform(v)
		case nil:
			return c.GenerateTransform(nil)
		}
	case GrammarBorderRadius:
		switch v := ir.(type) {
		case radius.BorderRadius:
			return c.GenerateBorderRadius(v)
		case *radius.BorderRadius:
			if v != nil {
				return c.GenerateBorderRadius(*v)
			}
		}
	case GrammarTime:
		if v, ok := ir.([]units.Time); ok {
			return c.GenerateTimeList(v)
		}
	default:
		return result.Failed(result.Issue{
			Severity: result.SeverityError,
			Code:     result.CodeUnsupportedKind,
			Message:  (&UnknownGrammarError{Name: string(g)}).Error(),
		})
	}
	return result.Failed(result.UnsupportedKind(fmt.Sprintf("%T for grammar %s", ir, g)))
}

// Canonicalize parses css and regenerates it in canonical form
func (c *Codec) Canonicalize(g Grammar, css string) result.Result[string] {
	return result.AndThen(c.Parse(g, css), func(ir any) result.Result[string] {
		gen := c.Generate(g, ir)
		if !gen.OK {
			return result.Err[string](gen.Err())
		}
		return result.Ok(gen.Value)
	})
}
