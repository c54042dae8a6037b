package easing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"bennypowers.dev/cssvalues/internal/result"
	"bennypowers.dev/cssvalues/internal/stream"
	"bennypowers.dev/cssvalues/internal/units"
)

// Generate validates fn and renders its canonical CSS form
func Generate(fn Function) result.GenerateResult {
	return result.FromIssues(Validate(fn), func() string { return ToCSS(fn) })
}

// GenerateList generates each function and joins them with `, `. An empty
// list is an error since no easing property accepts an empty value.
func GenerateList(fns []Function) result.GenerateResult {
	if len(fns) == 0 {
		return result.Failed(result.InvalidIR("easing list cannot be empty"))
	}
	var issues []result.Issue
	parts := make([]string, len(fns))
	for i, fn := range fns {
		for _, issue := range Validate(fn) {
			issues = append(issues, issue.WithPath(fmt.Sprintf("[%d]", i)))
		}
		parts[i] = ToCSS(fn)
	}
	return result.FromIssues(issues, func() string { return stream.JoinComma(parts) })
}

// ToCSS renders an already-valid easing function
func ToCSS(fn Function) string {
	switch v := fn.(type) {
	case Keyword:
		return v.Name
	case CubicBezier:
		return fmt.Sprintf("cubic-bezier(%s, %s, %s, %s)",
			units.FormatNumber(v.X1), units.FormatNumber(v.Y1),
			units.FormatNumber(v.X2), units.FormatNumber(v.Y2))
	case Steps:
		if v.Position == "" {
			return "steps(" + strconv.Itoa(v.Count) + ")"
		}
		return "steps(" + strconv.Itoa(v.Count) + ", " + string(v.Position) + ")"
	case Linear:
		stops := make([]string, len(v.Stops))
		for i, s := range v.Stops {
			stops[i] = units.FormatNumber(s.Output)
			if s.Input != nil {
				stops[i] += " " + units.FormatFraction(*s.Input)
			}
		}
		return "linear(" + strings.Join(stops, ", ") + ")"
	}
	return ""
}

// Validate reports the IR problems Generate refuses to render
func Validate(fn Function) []result.Issue {
	var issues []result.Issue
	add := func(issue result.Issue) { issues = append(issues, issue) }

	switch v := fn.(type) {
	case Keyword:
		if kw, ok := Keywords.Lookup(v.Name); !ok || kw != v.Name {
			add(result.Issue{
				Severity:   result.SeverityError,
				Code:       result.CodeInvalidIR,
				Message:    fmt.Sprintf("unknown easing keyword %q", v.Name),
				Suggestion: "use one of " + Keywords.String(),
			})
		}
	case CubicBezier:
		for _, x := range []struct {
			field string
			value float64
		}{{"x1", v.X1}, {"x2", v.X2}} {
			if math.IsNaN(x.value) || x.value < 0 || x.value > 1 {
				add(result.OutOfRange(x.field, x.value, "0", "1"))
			}
		}
		for _, y := range []struct {
			field string
			value float64
		}{{"y1", v.Y1}, {"y2", v.Y2}} {
			if math.IsNaN(y.value) || math.IsInf(y.value, 0) {
				add(result.InvalidIR("%s must be a finite number, got %v", y.field, y.value))
			}
		}
	case Steps:
		if v.Count < 1 {
			add(result.InvalidIR("steps must be a positive integer, got %d", v.Count))
		}
		if v.Position != "" {
			if pos, ok := StepPositions.Lookup(string(v.Position)); !ok || pos != string(v.Position) {
				add(result.InvalidIR("unknown step position %q", v.Position))
			}
		}
		if v.Count >= 1 {
			if err := checkSteps(v); err != nil {
				add(result.InvalidIR("%s", err.Error()))
			}
		}
	case Linear:
		if len(v.Stops) == 0 {
			add(result.Issue{
				Severity: result.SeverityError,
				Code:     result.CodeMissingRequiredField,
				Message:  "linear() requires at least one stop",
			})
		}
		for i, s := range v.Stops {
			path := fmt.Sprintf("stops[%d]", i)
			if math.IsNaN(s.Output) || math.IsInf(s.Output, 0) {
				add(result.InvalidIR("output must be a finite number, got %v", s.Output).WithPath(path))
			}
			if s.Input != nil && (math.IsNaN(*s.Input) || *s.Input < 0 || *s.Input > 1) {
				add(result.OutOfRange("input", *s.Input, "0", "1").WithPath(path))
			}
		}
	case nil:
		add(result.MissingField("kind"))
	default:
		add(result.UnsupportedKind(fmt.Sprintf("%T", fn)))
	}
	return issues
}
