package easing

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"bennypowers.dev/cssvalues/internal/stream"
	"bennypowers.dev/cssvalues/internal/token"
	"bennypowers.dev/cssvalues/internal/units"
)

// ParseString tokenizes css and parses a single easing function
func ParseString(tz token.Tokenizer, css string) (Function, error) {
	nodes, err := token.TokenizeValue(tz, strings.TrimSpace(css))
	if err != nil {
		return nil, err
	}
	significant := stream.Significant(nodes)
	switch len(significant) {
	case 0:
		return nil, errors.New("Expected an easing function, got nothing")
	case 1:
		return Parse(significant[0])
	}
	return nil, fmt.Errorf("Expected single value, got %d values", len(significant))
}

// ParseListString tokenizes css and parses a comma-separated easing list,
// e.g. the value of transition-timing-function
func ParseListString(tz token.Tokenizer, css string) ([]Function, error) {
	nodes, err := token.TokenizeValue(tz, strings.TrimSpace(css))
	if err != nil {
		return nil, err
	}
	return ParseList(nodes)
}

// ParseList parses a comma-separated list with one easing function per item
func ParseList(nodes []token.Node) ([]Function, error) {
	items, err := stream.ParseCommaSeparatedSingle(nodes)
	if err != nil {
		return nil, err
	}
	out := make([]Function, 0, len(items))
	for _, item := range items {
		fn, err := Parse(item)
		if err != nil {
			return nil, err
		}
		out = append(out, fn)
	}
	return out, nil
}

// Parse reads one easing keyword or function node
func Parse(n token.Node) (Function, error) {
	switch v := n.(type) {
	case *token.Ident:
		name := strings.ToLower(v.Name)
		if !Keywords.Has(name) {
			return nil, fmt.Errorf("Invalid easing keyword: %s", v.Name)
		}
		return Keyword{Name: name}, nil
	case *token.Function:
		switch strings.ToLower(v.Name) {
		case "cubic-bezier":
			return parseCubicBezier(v)
		case "steps":
			return parseSteps(v)
		case "linear":
			return parseLinear(v)
		}
		return nil, fmt.Errorf("Unknown easing function: %s", v.Name)
	}
	return nil, fmt.Errorf("Expected easing function, got %s", token.Describe(n))
}

func parseCubicBezier(fn *token.Function) (Function, error) {
	if len(stream.Significant(fn.Children)) == 0 {
		return nil, errors.New("cubic-bezier() requires exactly 4 numbers, got 0")
	}
	items, err := stream.ParseCommaSeparatedSingle(fn.Children)
	if err != nil {
		return nil, fmt.Errorf("cubic-bezier(): %w", err)
	}
	if len(items) != 4 {
		return nil, fmt.Errorf("cubic-bezier() requires exactly 4 numbers, got %d", len(items))
	}
	var v [4]float64
	for i, item := range items {
		if v[i], err = units.ParseNumber(item); err != nil {
			return nil, fmt.Errorf("cubic-bezier(): %w", err)
		}
	}
	candidate := CubicBezier{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}
	if err := checkBezier(candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

func checkBezier(c CubicBezier) error {
	for _, x := range []struct {
		name  string
		value float64
	}{{"x1", c.X1}, {"x2", c.X2}} {
		if math.IsNaN(x.value) || x.value < 0 || x.value > 1 {
			return fmt.Errorf("cubic-bezier(): %s must be between 0 and 1, got %s", x.name, units.FormatNumber(x.value))
		}
	}
	return nil
}

func parseSteps(fn *token.Function) (Function, error) {
	groups := stream.SplitByComma(fn.Children, stream.SplitOptions{AllowEmpty: true})
	if len(groups) == 0 || len(groups) > 2 {
		return nil, fmt.Errorf("steps() expects a count and an optional position, got %d arguments", len(groups))
	}
	for _, g := range groups {
		if len(g) != 1 {
			return nil, fmt.Errorf("steps() arguments must be single values, got %d values", len(g))
		}
	}

	count, err := units.ParseNumber(groups[0][0])
	if err != nil {
		return nil, fmt.Errorf("steps(): %w", err)
	}
	n, err := units.ParseInteger(groups[0][0])
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("steps() count must be a positive integer, got %s", units.FormatNumber(count))
	}
	steps := Steps{Count: n}

	if len(groups) == 2 {
		id, ok := groups[1][0].(*token.Ident)
		if !ok {
			return nil, fmt.Errorf("steps() position must be a keyword, got %s", token.Describe(groups[1][0]))
		}
		pos, ok := StepPositions.Lookup(id.Name)
		if !ok {
			return nil, fmt.Errorf("Invalid step position: %s", id.Name)
		}
		steps.Position = StepPosition(pos)
	}
	if err := checkSteps(steps); err != nil {
		return nil, err
	}
	return steps, nil
}

func checkSteps(s Steps) error {
	if s.Position == JumpNone && s.Count < 2 {
		return fmt.Errorf("steps() with jump-none requires at least 2 steps, got %d", s.Count)
	}
	return nil
}

func parseLinear(fn *token.Function) (Function, error) {
	if len(stream.Significant(fn.Children)) == 0 {
		return nil, errors.New("linear() requires at least one stop")
	}
	groups := stream.SplitByComma(fn.Children, stream.SplitOptions{AllowEmpty: true})

	stops := make([]LinearStop, 0, len(groups))
	for i, g := range groups {
		if len(g) == 0 {
			return nil, fmt.Errorf("linear() stop %d is empty", i+1)
		}
		if len(g) > 3 {
			return nil, fmt.Errorf("linear() stop %d has too many values", i+1)
		}
		output, err := units.ParseNumber(g[0])
		if err != nil {
			return nil, fmt.Errorf("linear() stop %d output: %w", i+1, err)
		}
		if len(g) == 1 {
			stops = append(stops, LinearStop{Output: output})
			continue
		}
		// a stop with two positions expands into two stops with the same output
		for _, n := range g[1:] {
			p, err := units.ParsePercentage(n)
			if err != nil {
				return nil, fmt.Errorf("linear() stop %d input: %w", i+1, err)
			}
			input := p.Value / 100
			if input < 0 || input > 1 {
				return nil, fmt.Errorf("linear() stop %d input must be between 0%% and 100%%, got %s%%", i+1, units.FormatNumber(p.Value))
			}
			stops = append(stops, LinearStop{Output: output, Input: &input})
		}
	}
	return Linear{Stops: stops}, nil
}
