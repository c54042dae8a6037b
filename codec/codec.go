// Package codec is the public entry point: it parses CSS property values into
// typed IR and generates canonical CSS back from IR, for colors, easing
// functions, transforms, border radii and time lists.
//
//	c := codec.Default()
//	r := c.ParseColor("hwb(450 150% -30%)")
//	if col, err := r.Get(); err == nil {
//		fmt.Println(c.GenerateColor(col).Value) // hwb(90 100% 0%)
//	}
package codec

import (
	"fmt"
	"strings"

	"bennypowers.dev/cssvalues/internal/color"
	"bennypowers.dev/cssvalues/internal/easing"
	"bennypowers.dev/cssvalues/internal/lexer"
	"bennypowers.dev/cssvalues/internal/log"
	"bennypowers.dev/cssvalues/internal/radius"
	"bennypowers.dev/cssvalues/internal/result"
	"bennypowers.dev/cssvalues/internal/token"
	"bennypowers.dev/cssvalues/internal/transform"
	"bennypowers.dev/cssvalues/internal/units"
)

// IR and result types re-exported for callers outside this module
type (
	Color          = color.Color
	EasingFunction = easing.Function
	Transform      = transform.Transform
	BorderRadius   = radius.BorderRadius
	Time           = units.Time
	Issue          = result.Issue
	GenerateResult = result.GenerateResult
	Tokenizer      = token.Tokenizer
)

// Option configures a Codec during creation
type Option func(*Codec)

// WithTokenizer replaces the default pure-Go lexer, e.g. with the
// tree-sitter tokenizer
func WithTokenizer(tz token.Tokenizer) Option {
	return func(c *Codec) {
		if tz != nil {
			c.tz = tz
		}
	}
}

// Codec parses and generates values. It holds no mutable state and is safe
// for concurrent use.
type Codec struct {
	tz token.Tokenizer
}

// New creates a Codec
func New(opts ...Option) *Codec {
	c := &Codec{tz: lexer.New()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCodec = New()

// Default returns the shared Codec backed by the pure-Go lexer
func Default() *Codec {
	return defaultCodec
}

// Tokenizer returns the tokenizer this codec parses with
func (c *Codec) Tokenizer() token.Tokenizer {
	return c.tz
}

func parsed[T any](grammar Grammar, css string, v T, err error) result.Result[T] {
	if err != nil {
		log.Debug("%s: %q: %v", grammar, css, err)
	}
	return result.From(v, err)
}

// ParseColor parses one color value
func (c *Codec) ParseColor(css string) result.Result[color.Color] {
	v, err := color.ParseString(c.tz, css)
	return parsed(GrammarColor, css, v, err)
}

// GenerateColor renders the canonical form of a color
func (c *Codec) GenerateColor(v color.Color) result.GenerateResult {
	return color.Generate(v)
}

// ParseEasing parses a single easing function
func (c *Codec) ParseEasing(css string) result.Result[easing.Function] {
	v, err := easing.ParseString(c.tz, css)
	return parsed(GrammarEasing, css, v, err)
}

// ParseEasingList parses a comma-separated list of easing functions
func (c *Codec) ParseEasingList(css string) result.Result[[]easing.Function] {
	v, err := easing.ParseListString(c.tz, css)
	return parsed(GrammarEasing, css, v, err)
}

// GenerateEasing renders the canonical form of an easing function
func (c *Codec) GenerateEasing(fn easing.Function) result.GenerateResult {
	return easing.Generate(fn)
}

// GenerateEasingList renders a comma-separated easing list
func (c *Codec) GenerateEasingList(fns []easing.Function) result.GenerateResult {
	return easing.GenerateList(fns)
}

// ParseTransform parses a transform function chain. An empty value is an
// error.
func (c *Codec) ParseTransform(css string) result.Result[transform.Transform] {
	v, err := transform.ParseString(c.tz, css)
	return parsed(GrammarTransform, css, v, err)
}

// GenerateTransform renders a chain. An empty chain generates "".
func (c *Codec) GenerateTransform(t transform.Transform) result.GenerateResult {
	return transform.Generate(t)
}

// ParseBorderRadius parses the border-radius shorthand
func (c *Codec) ParseBorderRadius(css string) result.Result[radius.BorderRadius] {
	v, err := radius.ParseString(c.tz, css)
	return parsed(GrammarBorderRadius, css, v, err)
}

// GenerateBorderRadius renders the shortest border-radius form
func (c *Codec) GenerateBorderRadius(br radius.BorderRadius) result.GenerateResult {
	return radius.Generate(br)
}

// ParseTimeList parses a comma-separated list of times such as the value of
// transition-duration
func (c *Codec) ParseTimeList(css string) result.Result[[]units.Time] {
	nodes, err := token.TokenizeValue(c.tz, strings.TrimSpace(css))
	if err != nil {
		return parsed[[]units.Time](GrammarTime, css, nil, err)
	}
	v, err := units.ParseTimeList(nodes)
	return parsed(GrammarTime, css, v, err)
}

// GenerateTimeList renders times joined by `, `
func (c *Codec) GenerateTimeList(times []units.Time) result.GenerateResult {
	if len(times) == 0 {
		return result.Failed(result.InvalidIR("time list cannot be empty"))
	}
	var issues []result.Issue
	for i, t := range times {
		if err := t.Validate(); err != nil {
			issues = append(issues, result.InvalidIR("%s", err.Error()).WithPath(fmt.Sprintf("[%d]", i)))
		}
	}
	return result.FromIssues(issues, func() string { return units.FormatTimeList(times) })
}
