package color

import (
	"fmt"
	"math"
	"strings"

	"bennypowers.dev/cssvalues/internal/result"
	"bennypowers.dev/cssvalues/internal/units"
)

// Generate validates c and renders its canonical CSS form
func Generate(c Color) result.GenerateResult {
	issues := Validate(c)
	return result.FromIssues(issues, func() string { return ToCSS(c) })
}

// ToCSS renders the canonical CSS form of an already-valid color.
// Functional notations use the modern space-separated syntax, hues are bare
// degrees, and the alpha suffix is omitted when alpha is absent or 1.
func ToCSS(c Color) string {
	switch v := c.(type) {
	case Named:
		return v.Name
	case Hex:
		return v.Value
	case Special:
		return v.Keyword
	case System:
		return v.Keyword
	case RGB:
		return function("rgb", v.Alpha, num(v.R), num(v.G), num(v.B))
	case HSL:
		return function("hsl", v.Alpha, num(v.H), pct(v.S), pct(v.L))
	case HWB:
		return function("hwb", v.Alpha, num(v.H), pct(v.W), pct(v.B))
	case Lab:
		return function("lab", v.Alpha, num(v.L), num(v.A), num(v.B))
	case LCH:
		return function("lch", v.Alpha, num(v.L), num(v.C), num(v.H))
	case OKLab:
		return function("oklab", v.Alpha, num(v.L), num(v.A), num(v.B))
	case OKLCH:
		return function("oklch", v.Alpha, num(v.L), num(v.C), num(v.H))
	}
	return ""
}

func num(v float64) string { return units.FormatNumber(v) }
func pct(v float64) string { return units.FormatNumber(v) + "%" }

func function(name string, alpha *float64, channels ...string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	b.WriteString(strings.Join(channels, " "))
	if alpha != nil && *alpha != 1 {
		b.WriteString(" / ")
		b.WriteString(units.FormatNumber(*alpha))
	}
	b.WriteByte(')')
	return b.String()
}

// Validate checks c against the invariants parsing guarantees. Hues and clamped
// channels outside their range are errors; an explicit alpha of 1 is a
// warning since it is generated as absent.
func Validate(c Color) []result.Issue {
	var issues []result.Issue
	add := func(issue result.Issue) { issues = append(issues, issue) }

	rng := func(field string, v, lo, hi float64) {
		if math.IsNaN(v) || v < lo || v > hi {
			add(result.OutOfRange(field, v, units.FormatNumber(lo), units.FormatNumber(hi)))
		}
	}
	hue := func(v float64) {
		if math.IsNaN(v) || v < 0 || v >= 360 {
			add(result.Issue{
				Severity:   result.SeverityError,
				Code:       result.CodeOutOfRange,
				Message:    fmt.Sprintf("h must be in [0, 360), got %v", v),
				Suggestion: "wrap the hue with WrapHue",
			})
		}
	}
	nonNegative := func(field string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			add(result.Issue{
				Severity: result.SeverityError,
				Code:     result.CodeOutOfRange,
				Message:  fmt.Sprintf("%s must be a non-negative number, got %v", field, v),
			})
		}
	}
	finite := func(field string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			add(result.InvalidIR("%s must be a finite number, got %v", field, v))
		}
	}
	alpha := func(a *float64) {
		if a == nil {
			return
		}
		rng("alpha", *a, 0, 1)
		if *a == 1 {
			add(result.Issue{
				Severity:   result.SeverityWarning,
				Code:       result.CodeInvalidIR,
				Message:    "alpha of 1 is represented by omitting the field",
				Suggestion: "leave alpha unset for opaque colors",
			})
		}
	}

	switch v := c.(type) {
	case Named:
		if !IsNamedColor(v.Name) || v.Name != strings.ToLower(v.Name) {
			add(result.InvalidIR("unknown named color %q", v.Name))
		}
	case Hex:
		if !strings.HasPrefix(v.Value, "#") || !isHexColor(v.Value[1:]) {
			add(result.InvalidIR("invalid hex color %q", v.Value))
		}
	case Special:
		if kw, ok := SpecialKeywords.Lookup(v.Keyword); !ok || kw != v.Keyword {
			add(result.InvalidIR("unknown special color keyword %q", v.Keyword))
		}
	case System:
		if kw, ok := SystemKeywords.Lookup(v.Keyword); !ok || kw != v.Keyword {
			add(result.InvalidIR("unknown system color keyword %q", v.Keyword))
		}
	case RGB:
		rng("r", v.R, 0, 255)
		rng("g", v.G, 0, 255)
		rng("b", v.B, 0, 255)
		alpha(v.Alpha)
	case HSL:
		hue(v.H)
		rng("s", v.S, 0, 100)
		rng("l", v.L, 0, 100)
		alpha(v.Alpha)
	case HWB:
		hue(v.H)
		rng("w", v.W, 0, 100)
		rng("b", v.B, 0, 100)
		alpha(v.Alpha)
	case Lab:
		rng("l", v.L, 0, 100)
		finite("a", v.A)
		finite("b", v.B)
		alpha(v.Alpha)
	case LCH:
		rng("l", v.L, 0, 100)
		nonNegative("c", v.C)
		hue(v.H)
		alpha(v.Alpha)
	case OKLab:
		rng("l", v.L, 0, 1)
		finite("a", v.A)
		finite("b", v.B)
		alpha(v.Alpha)
	case OKLCH:
		rng("l", v.L, 0, 1)
		nonNegative("c", v.C)
		hue(v.H)
		alpha(v.Alpha)
	case nil:
		add(result.MissingField("kind"))
	default:
		add(result.UnsupportedKind(fmt.Sprintf("%T", c)))
	}
	return issues
}
