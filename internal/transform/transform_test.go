package transform_test

import (
	"errors"
	"strings"
	"testing"

	"bennypowers.dev/cssvalues/internal/document"
	"bennypowers.dev/cssvalues/internal/lexer"
	"bennypowers.dev/cssvalues/internal/result"
	"bennypowers.dev/cssvalues/internal/transform"
	"bennypowers.dev/cssvalues/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func px(v float64) units.Length      { return units.Length{Value: v, Unit: units.Px} }
func deg(v float64) units.Angle      { return units.Angle{Value: v, Unit: units.Deg} }
func pct(v float64) units.Percentage { return units.Percentage{Value: v} }

func parse(css string) (transform.Transform, error) {
	return transform.ParseString(lexer.New(), css)
}

func TestParseTransform(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected transform.Transform
	}{
		{"translate one arg", "translate(10px)", transform.Transform{transform.Translate{X: px(10)}}},
		{"translate two args", "translate(10px, 5px)", transform.Transform{transform.Translate{X: px(10), Y: px(5)}}},
		{"translate zero y kept", "translate(10px, 0)", transform.Transform{transform.Translate{X: px(10), Y: px(0)}}},
		{"translateX percentage", "translateX(50%)", transform.Transform{transform.TranslateX{X: pct(50)}}},
		{"translate3d", "translate3d(1px, 2%, 3em)", transform.Transform{transform.Translate3d{X: px(1), Y: pct(2), Z: units.Length{Value: 3, Unit: units.Em}}}},
		{"rotate", "rotate(45deg)", transform.Transform{transform.Rotate{Angle: deg(45)}}},
		{"rotate unitless zero", "rotate(0)", transform.Transform{transform.Rotate{Angle: deg(0)}}},
		{"rotateZ turn", "rotateZ(0.25turn)", transform.Transform{transform.RotateZ{Angle: units.Angle{Value: 0.25, Unit: units.Turn}}}},
		{"rotate3d", "rotate3d(1, 0, 0, 45deg)", transform.Transform{transform.Rotate3d{X: 1, Y: 0, Z: 0, Angle: deg(45)}}},
		{"scale", "scale(2)", transform.Transform{transform.Scale{X: 2}}},
		{"scale percentages", "scale(150%, 50%)", transform.Transform{transform.Scale{X: 1.5, Y: transform.Number(0.5)}}},
		{"scale3d", "scale3d(1, 2, 3)", transform.Transform{transform.Scale3d{X: 1, Y: 2, Z: 3}}},
		{"skew", "skew(10deg, 20deg)", transform.Transform{transform.Skew{X: deg(10), Y: transform.AnglePtr(deg(20))}}},
		{"skewY", "skewY(-5deg)", transform.Transform{transform.SkewY{Angle: deg(-5)}}},
		{"matrix", "matrix(1, 0, 0, 1, 10px, 20)", transform.Transform{transform.Matrix{A: 1, D: 1, E: 10, F: 20}}},
		{"perspective", "perspective(100px)", transform.Transform{transform.Perspective{Distance: transform.LengthPtr(px(100))}}},
		{"perspective none", "perspective(none)", transform.Transform{transform.Perspective{}}},
		{"case-insensitive name", "TRANSLATEX(1px)", transform.Transform{transform.TranslateX{X: px(1)}}},
		{"chain keeps order", "rotate(10deg) translate(1px) scale(2)", transform.Transform{
			transform.Rotate{Angle: deg(10)},
			transform.Translate{X: px(1)},
			transform.Scale{X: 2},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("matrix3d", func(t *testing.T) {
		got, err := parse("matrix3d(1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 5, 6, 7, 1)")
		require.NoError(t, err)
		require.Len(t, got, 1)
		m := got[0].(transform.Matrix3d)
		assert.Equal(t, 5.0, m.Values[12])
		assert.Equal(t, 1.0, m.Values[15])
	})
}

func TestParseTransformErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"empty", "", "array cannot be empty"},
		{"whitespace only", "   ", "array cannot be empty"},
		{"unknown function", "shear(1px)", "Unknown transform function: shear"},
		{"not a function", "10px", "Expected transform function, got dimension"},
		{"translate arity", "translate(1px, 2px, 3px)", "translate() expects 1 or 2 arguments, got 3"},
		{"translate no args", "translate()", "translate() expects 1 or 2 arguments, got 0"},
		{"rotate3d arity", "rotate3d(1, 0, 45deg)", "rotate3d() expects 4 arguments, got 3"},
		{"rotate3d angle", "rotate3d(1, 0, 0, 45)", "rotate3d(): Angle requires a unit, got 45"},
		{"matrix arity", "matrix(1, 0, 0, 1, 0)", "matrix() expects 6 arguments, got 5"},
		{"matrix3d arity", "matrix3d(1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0)", "matrix3d() expects 16 arguments, got 15"},
		{"matrix em", "matrix(1, 0, 0, 1, 2em, 0)", "matrix() translation must be a number or px length, got 2em"},
		{"rotate unit", "rotate(10px)", "rotate(): Invalid angle unit: px"},
		{"translateZ percentage", "translateZ(10%)", "translateZ(): Expected length, got percentage"},
		{"rotate arity", "rotate(1deg, 2deg)", "rotate() expects 1 argument, got 2"},
		{"negative perspective", "perspective(-10px)", "perspective() distance must not be negative, got -10"},
		{"empty argument", "translate(1px,, 2px)", "translate(): Empty value before comma"},
		{"space separated arguments", "translate(1px 2px)", "translate(): Expected single value, got 2 values"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}

	_, err := parse("")
	assert.True(t, errors.Is(err, transform.ErrEmpty))
}

func TestGenerateTransform(t *testing.T) {
	tests := []struct {
		name     string
		input    transform.Transform
		expected string
	}{
		{"empty chain", transform.Transform{}, ""},
		{"nil chain", nil, ""},
		{"translate omits absent y", transform.Transform{transform.Translate{X: px(10)}}, "translate(10px)"},
		{"translate keeps zero y", transform.Transform{transform.Translate{X: px(10), Y: px(0)}}, "translate(10px, 0px)"},
		{"rotate3d", transform.Transform{transform.Rotate3d{X: 1, Angle: deg(45)}}, "rotate3d(1, 0, 0, 45deg)"},
		{"chain", transform.Transform{
			transform.TranslateX{X: pct(-50)},
			transform.Scale{X: 1.5, Y: transform.Number(2)},
			transform.Perspective{},
		}, "translateX(-50%) scale(1.5, 2) perspective(none)"},
		{"matrix", transform.Transform{transform.Matrix{A: 1, D: 1, E: 10, F: -5}}, "matrix(1, 0, 0, 1, 10, -5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := transform.Generate(tt.input)
			require.True(t, g.OK, "issues: %v", g.Issues)
			assert.Equal(t, tt.expected, g.Value)
		})
	}

	t.Run("matrix3d", func(t *testing.T) {
		var m transform.Matrix3d
		m.Values[0], m.Values[5], m.Values[10], m.Values[15] = 1, 1, 1, 1
		g := transform.Generate(transform.Transform{m})
		require.True(t, g.OK)
		assert.Equal(t, "matrix3d(1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1)", g.Value)
	})
}

func TestGenerateTransformIssues(t *testing.T) {
	tests := []struct {
		name  string
		input transform.Function
		code  string
	}{
		{"missing x", transform.Translate{}, result.CodeMissingRequiredField},
		{"bad unit", transform.TranslateZ{Z: units.Length{Value: 1, Unit: "parsecs"}}, result.CodeInvalidIR},
		{"bad angle unit", transform.Rotate{Angle: units.Angle{Value: 1, Unit: "DEG"}}, result.CodeInvalidIR},
		{"negative perspective", transform.Perspective{Distance: transform.LengthPtr(px(-1))}, result.CodeOutOfRange},
		{"nil function", nil, result.CodeMissingRequiredField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := transform.Generate(transform.Transform{transform.Rotate{Angle: deg(1)}, tt.input})
			assert.False(t, g.OK)
			require.NotEmpty(t, g.Errors())
			assert.Equal(t, tt.code, g.Errors()[0].Code)
			assert.True(t, strings.HasPrefix(g.Errors()[0].Message, "[1]: "), g.Errors()[0].Message)
		})
	}
}

func TestTransformRoundTrip(t *testing.T) {
	sources := []string{
		"translate(10px)",
		"translate(10px, 0)",
		"translateY(-3.5rem) rotate(1.5rad)",
		"translate3d(0, 50%, 2px)",
		"rotate3d(1, 1, 0, 0.5turn)",
		"scale(50%, 2) scaleZ(3)",
		"skew(10deg) skewX(2grad)",
		"matrix(1, 0.5, -0.5, 1, 10px, 20px)",
		"matrix3d(1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 5, 6, 7, 1)",
		"perspective(0) perspective(none)",
	}
	tz := lexer.New()
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			first, err := transform.ParseString(tz, src)
			require.NoError(t, err)
			g := transform.Generate(first)
			require.True(t, g.OK, "issues: %v", g.Issues)

			second, err := transform.ParseString(tz, g.Value)
			require.NoError(t, err)
			assert.Equal(t, first, second)
			assert.Equal(t, g.Value, transform.ToCSS(second))
		})
	}
}

func TestTransformDecodeEncode(t *testing.T) {
	t.Run("decode", func(t *testing.T) {
		got, err := transform.Decode([]any{
			map[string]any{"kind": "translate", "x": map[string]any{"value": 10, "unit": "px"}},
			map[string]any{"kind": "rotate3d", "x": 0, "y": 0, "z": 1, "angle": map[string]any{"value": 45, "unit": "deg"}},
			map[string]any{"kind": "perspective"},
		})
		require.NoError(t, err)
		assert.Equal(t, transform.Transform{
			transform.Translate{X: px(10)},
			transform.Rotate3d{Z: 1, Angle: deg(45)},
			transform.Perspective{},
		}, got)
	})

	t.Run("missing field", func(t *testing.T) {
		_, err := transform.Decode([]any{map[string]any{"kind": "rotate"}})
		assert.ErrorIs(t, err, document.ErrMissingField)
	})

	t.Run("wrong matrix3d length", func(t *testing.T) {
		_, err := transform.Decode([]any{map[string]any{"kind": "matrix3d", "values": []any{1, 2, 3}}})
		assert.EqualError(t, err, "[0]: values: expected 16 numbers, got 3")
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := transform.Decode([]any{map[string]any{"kind": "shear"}})
		assert.ErrorIs(t, err, document.ErrUnknownKind)
	})

	t.Run("encode then decode", func(t *testing.T) {
		var m transform.Matrix3d
		m.Values[3] = 2
		chain := transform.Transform{
			transform.Translate{X: pct(5), Y: px(1)},
			transform.Scale{X: 2},
			transform.Skew{X: deg(1), Y: transform.AnglePtr(deg(2))},
			transform.Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6},
			m,
			transform.Perspective{Distance: transform.LengthPtr(px(3))},
		}
		encoded, err := transform.Encode(chain)
		require.NoError(t, err)
		back, err := transform.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, chain, back)
	})
}
