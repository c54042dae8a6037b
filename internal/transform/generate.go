package transform

import (
	"fmt"
	"math"
	"strings"

	"bennypowers.dev/cssvalues/internal/result"
	"bennypowers.dev/cssvalues/internal/stream"
	"bennypowers.dev/cssvalues/internal/units"
)

// Generate validates the chain and renders it with a single space between
// functions. An empty chain generates the empty string.
func Generate(t Transform) result.GenerateResult {
	var issues []result.Issue
	for i, fn := range t {
		for _, issue := range ValidateFunction(fn) {
			issues = append(issues, issue.WithPath(fmt.Sprintf("[%d]", i)))
		}
	}
	return result.FromIssues(issues, func() string { return ToCSS(t) })
}

// ToCSS renders an already-valid chain
func ToCSS(t Transform) string {
	parts := make([]string, len(t))
	for i, fn := range t {
		parts[i] = FunctionToCSS(fn)
	}
	return stream.JoinSpace(parts)
}

func call(kind Kind, args ...string) string {
	return string(kind) + "(" + strings.Join(args, ", ") + ")"
}

func num(v float64) string { return units.FormatNumber(v) }

// FunctionToCSS renders one function as name(arg1, arg2, ...)
func FunctionToCSS(fn Function) string {
	switch v := fn.(type) {
	case Translate:
		if v.Y == nil {
			return call(KindTranslate, v.X.String())
		}
		return call(KindTranslate, v.X.String(), v.Y.String())
	case TranslateX:
		return call(KindTranslateX, v.X.String())
	case TranslateY:
		return call(KindTranslateY, v.Y.String())
	case TranslateZ:
		return call(KindTranslateZ, v.Z.String())
	case Translate3d:
		return call(KindTranslate3d, v.X.String(), v.Y.String(), v.Z.String())
	case Rotate:
		return call(KindRotate, v.Angle.String())
	case RotateX:
		return call(KindRotateX, v.Angle.String())
	case RotateY:
		return call(KindRotateY, v.Angle.String())
	case RotateZ:
		return call(KindRotateZ, v.Angle.String())
	case Rotate3d:
		return call(KindRotate3d, num(v.X), num(v.Y), num(v.Z), v.Angle.String())
	case Scale:
		if v.Y == nil {
			return call(KindScale, num(v.X))
		}
		return call(KindScale, num(v.X), num(*v.Y))
	case ScaleX:
		return call(KindScaleX, num(v.X))
	case ScaleY:
		return call(KindScaleY, num(v.Y))
	case ScaleZ:
		return call(KindScaleZ, num(v.Z))
	case Scale3d:
		return call(KindScale3d, num(v.X), num(v.Y), num(v.Z))
	case Skew:
		if v.Y == nil {
			return call(KindSkew, v.X.String())
		}
		return call(KindSkew, v.X.String(), v.Y.String())
	case SkewX:
		return call(KindSkewX, v.Angle.String())
	case SkewY:
		return call(KindSkewY, v.Angle.String())
	case Matrix:
		return call(KindMatrix, num(v.A), num(v.B), num(v.C), num(v.D), num(v.E), num(v.F))
	case Matrix3d:
		values := make([]string, len(v.Values))
		for i, n := range v.Values {
			values[i] = num(n)
		}
		return call(KindMatrix3d, values...)
	case Perspective:
		if v.Distance == nil {
			return call(KindPerspective, "none")
		}
		return call(KindPerspective, v.Distance.String())
	}
	return ""
}

// ValidateFunction reports the problems that keep fn from generating
func ValidateFunction(fn Function) []result.Issue {
	var issues []result.Issue
	check := func(field string, err error) {
		if err != nil {
			issues = append(issues, result.InvalidIR("%s", err.Error()).WithPath(field))
		}
	}
	lp := func(field string, v units.LengthPercentage) {
		if v == nil {
			issues = append(issues, result.MissingField(field))
			return
		}
		check(field, units.ValidateLengthPercentage(v))
	}
	finite := func(field string, vs ...float64) {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				issues = append(issues, result.InvalidIR("%s must be a finite number, got %v", field, v))
				return
			}
		}
	}

	switch v := fn.(type) {
	case Translate:
		lp("x", v.X)
		if v.Y != nil {
			lp("y", v.Y)
		}
	case TranslateX:
		lp("x", v.X)
	case TranslateY:
		lp("y", v.Y)
	case TranslateZ:
		check("z", v.Z.Validate())
	case Translate3d:
		lp("x", v.X)
		lp("y", v.Y)
		check("z", v.Z.Validate())
	case Rotate:
		check("angle", v.Angle.Validate())
	case RotateX:
		check("angle", v.Angle.Validate())
	case RotateY:
		check("angle", v.Angle.Validate())
	case RotateZ:
		check("angle", v.Angle.Validate())
	case Rotate3d:
		finite("x", v.X)
		finite("y", v.Y)
		finite("z", v.Z)
		check("angle", v.Angle.Validate())
	case Scale:
		finite("x", v.X)
		if v.Y != nil {
			finite("y", *v.Y)
		}
	case ScaleX:
		finite("x", v.X)
	case ScaleY:
		finite("y", v.Y)
	case ScaleZ:
		finite("z", v.Z)
	case Scale3d:
		finite("x", v.X)
		finite("y", v.Y)
		finite("z", v.Z)
	case Skew:
		check("x", v.X.Validate())
		if v.Y != nil {
			check("y", v.Y.Validate())
		}
	case SkewX:
		check("angle", v.Angle.Validate())
	case SkewY:
		check("angle", v.Angle.Validate())
	case Matrix:
		finite("values", v.A, v.B, v.C, v.D, v.E, v.F)
	case Matrix3d:
		finite("values", v.Values[:]...)
	case Perspective:
		if v.Distance != nil {
			check("distance", v.Distance.Validate())
			if v.Distance.Value < 0 {
				issues = append(issues, result.Issue{
					Severity:   result.SeverityError,
					Code:       result.CodeOutOfRange,
					Message:    fmt.Sprintf("distance must not be negative, got %v", v.Distance.Value),
					Suggestion: "use perspective(none) to disable perspective",
				})
			}
		}
	case nil:
		issues = append(issues, result.MissingField("kind"))
	default:
		issues = append(issues, result.UnsupportedKind(fmt.Sprintf("%T", fn)))
	}
	return issues
}
